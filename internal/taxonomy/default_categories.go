package taxonomy

import "github.com/neerajdhurandher/autofill-engine/internal/model"

// defaultCategories returns the built-in field category table. Keywords are
// matched after normalization (lowercase, non-alphanumerics stripped), so
// entries here use the compact normalized form. Site selectors are exact CSS
// selectors observed on the named sites.
func defaultCategories() []FieldCategory {
	return []FieldCategory{
		{
			Category:        model.CategoryFirstName,
			Keywords:        []string{"firstname", "fname", "first", "givenname", "forename"},
			ContextKeywords: []string{"first name", "given name", "forename"},
			Priority:        10,
			SiteSelectors: map[string][]string{
				"linkedin":   {"input[name='firstName']", "input[id*='first-name']"},
				"greenhouse": {"input[id='first_name']", "input[name='job_application[first_name]']"},
				"lever":      {"input[name='name']"},
				"workday":    {"input[data-automation-id='legalNameSection_firstName']"},
			},
		},
		{
			Category:        model.CategoryLastName,
			Keywords:        []string{"lastname", "lname", "last", "surname", "familyname"},
			ContextKeywords: []string{"last name", "family name", "surname"},
			Priority:        10,
			SiteSelectors: map[string][]string{
				"linkedin":   {"input[name='lastName']", "input[id*='last-name']"},
				"greenhouse": {"input[id='last_name']", "input[name='job_application[last_name]']"},
				"workday":    {"input[data-automation-id='legalNameSection_lastName']"},
			},
		},
		{
			Category:        model.CategoryFullName,
			Keywords:        []string{"fullname", "name", "yourname", "applicantname", "candidatename"},
			ContextKeywords: []string{"full name", "your name", "complete name"},
			Priority:        8,
			SiteSelectors: map[string][]string{
				"lever": {"input[name='name']"},
			},
		},
		{
			Category:        model.CategoryEmail,
			Keywords:        []string{"email", "emailaddress", "mail", "emailid"},
			ContextKeywords: []string{"email", "e-mail", "email address"},
			Priority:        11,
			SiteSelectors: map[string][]string{
				"linkedin":   {"input[name='email']", "input[id*='email']"},
				"greenhouse": {"input[id='email']", "input[name='job_application[email]']"},
				"lever":      {"input[name='email']"},
				"workday":    {"input[data-automation-id='email']"},
				"indeed":     {"input[id='input-email']"},
			},
		},
		{
			Category:        model.CategoryPhone,
			Keywords:        []string{"phone", "phonenumber", "mobile", "telephone", "tel", "cell", "contactnumber"},
			ContextKeywords: []string{"phone", "mobile", "telephone", "contact number"},
			Priority:        10,
			SiteSelectors: map[string][]string{
				"linkedin":   {"input[name='phoneNumber']", "input[id*='phone']"},
				"greenhouse": {"input[id='phone']", "input[name='job_application[phone]']"},
				"lever":      {"input[name='phone']"},
				"workday":    {"input[data-automation-id='phone-number']"},
			},
		},
		{
			Category:        model.CategoryCountryCode,
			Keywords:        []string{"countrycode", "dialcode", "phonecode", "isdcode"},
			ContextKeywords: []string{"country code", "dial code"},
			Priority:        7,
		},
		{
			Category:        model.CategoryAddress,
			Keywords:        []string{"address", "street", "addressline1", "streetaddress", "line1"},
			ContextKeywords: []string{"address", "street"},
			Priority:        7,
			SiteSelectors: map[string][]string{
				"workday": {"input[data-automation-id='addressSection_addressLine1']"},
			},
		},
		{
			Category:        model.CategoryAddressLine2,
			Keywords:        []string{"addressline2", "line2", "apartment", "suite", "unit", "apt"},
			ContextKeywords: []string{"address line 2", "apartment", "suite"},
			Priority:        6,
		},
		{
			Category:        model.CategoryCity,
			Keywords:        []string{"city", "town", "locality"},
			ContextKeywords: []string{"city", "town"},
			Priority:        8,
			SiteSelectors: map[string][]string{
				"workday": {"input[data-automation-id='addressSection_city']"},
			},
		},
		{
			Category:        model.CategoryState,
			Keywords:        []string{"state", "province", "region"},
			ContextKeywords: []string{"state", "province", "region"},
			Priority:        7,
		},
		{
			Category:        model.CategoryZipCode,
			Keywords:        []string{"zip", "zipcode", "postal", "postalcode", "postcode", "pincode"},
			ContextKeywords: []string{"zip", "postal code", "pin code"},
			Priority:        8,
			SiteSelectors: map[string][]string{
				"workday": {"input[data-automation-id='addressSection_postalCode']"},
			},
		},
		{
			Category:        model.CategoryCountry,
			Keywords:        []string{"country", "nation", "nationality"},
			ContextKeywords: []string{"country", "nationality"},
			Priority:        7,
		},
		{
			Category:        model.CategoryCurrentLocation,
			Keywords:        []string{"currentlocation", "location", "basedin", "currentcity"},
			ContextKeywords: []string{"current location", "where are you based"},
			Priority:        6,
			SiteSelectors: map[string][]string{
				"lever": {"input[name='location']"},
			},
		},
		{
			Category:        model.CategoryWillingToRelocate,
			Keywords:        []string{"relocate", "relocation", "willingtorelocate", "openrelocation"},
			ContextKeywords: []string{"willing to relocate", "open to relocation"},
			Priority:        6,
		},
		{
			Category:        model.CategoryJobTitle,
			Keywords:        []string{"jobtitle", "title", "position", "role", "designation", "currenttitle"},
			ContextKeywords: []string{"job title", "current title", "position", "role", "designation"},
			Priority:        9,
			SiteSelectors: map[string][]string{
				"linkedin": {"input[id*='title']"},
				"lever":    {"input[name='org']"},
			},
		},
		{
			Category:        model.CategoryCompany,
			Keywords:        []string{"company", "employer", "organization", "organisation", "companyname", "currentcompany", "firm"},
			ContextKeywords: []string{"company", "employer", "organization", "current company"},
			Priority:        9,
			SiteSelectors: map[string][]string{
				"linkedin": {"input[id*='company']"},
			},
		},
		{
			Category:        model.CategoryJobLocation,
			Keywords:        []string{"joblocation", "worklocation", "officelocation", "worksite"},
			ContextKeywords: []string{"job location", "work location", "office location"},
			Priority:        6,
		},
		{
			Category:        model.CategoryStartDate,
			Keywords:        []string{"startdate", "from", "datefrom", "joined", "joiningdate", "start"},
			ContextKeywords: []string{"start date", "from", "date of joining"},
			Priority:        7,
		},
		{
			Category:        model.CategoryEndDate,
			Keywords:        []string{"enddate", "to", "dateto", "until", "leavingdate", "end"},
			ContextKeywords: []string{"end date", "to", "until"},
			Priority:        7,
		},
		{
			Category:        model.CategoryCurrentlyWorking,
			Keywords:        []string{"currentlyworking", "currentjob", "presentjob", "iscurrent", "stillworking"},
			ContextKeywords: []string{"currently working", "i currently work here", "present"},
			Priority:        6,
		},
		{
			Category:        model.CategoryJobDescription,
			Keywords:        []string{"jobdescription", "responsibilities", "duties", "workdescription", "achievements"},
			ContextKeywords: []string{"job description", "responsibilities", "describe your role"},
			Priority:        6,
		},
		{
			Category:        model.CategorySkills,
			Keywords:        []string{"skills", "skillset", "technologies", "expertise", "competencies", "techstack"},
			ContextKeywords: []string{"skills", "technologies", "tech stack"},
			Priority:        8,
		},
		{
			Category:        model.CategoryCoverLetter,
			Keywords:        []string{"coverletter", "motivation", "whyjoin", "introduction", "aboutyou"},
			ContextKeywords: []string{"cover letter", "why do you want", "tell us about yourself"},
			Priority:        7,
			SiteSelectors: map[string][]string{
				"greenhouse": {"textarea[id='cover_letter_text']"},
				"lever":      {"textarea[name='comments']"},
			},
		},
		{
			Category:        model.CategoryTotalExperience,
			Keywords:        []string{"totalexperience", "yearsofexperience", "experienceyears", "yoe", "totalyears"},
			ContextKeywords: []string{"years of experience", "total experience"},
			Priority:        8,
		},
		{
			Category:        model.CategoryCurrentSalary,
			Keywords:        []string{"currentsalary", "currentctc", "presentsalary", "currentcompensation"},
			ContextKeywords: []string{"current salary", "current ctc", "current compensation"},
			Priority:        8,
		},
		{
			Category:        model.CategoryExpectedSalary,
			Keywords:        []string{"expectedsalary", "expectedctc", "desiredsalary", "salaryexpectation", "expectedcompensation"},
			ContextKeywords: []string{"expected salary", "desired salary", "salary expectation"},
			Priority:        8,
		},
		{
			Category:        model.CategoryNoticePeriod,
			Keywords:        []string{"noticeperiod", "notice", "availability", "joiningtime", "earlieststart"},
			ContextKeywords: []string{"notice period", "when can you start", "earliest start date"},
			Priority:        7,
		},
		{
			Category:        model.CategoryLinkedinURL,
			Keywords:        []string{"linkedin", "linkedinurl", "linkedinprofile"},
			ContextKeywords: []string{"linkedin", "linkedin profile"},
			Priority:        9,
			SiteSelectors: map[string][]string{
				"greenhouse": {"input[id*='linkedin']"},
				"lever":      {"input[name='urls[LinkedIn]']"},
			},
		},
		{
			Category:        model.CategoryGithubURL,
			Keywords:        []string{"github", "githuburl", "githubprofile"},
			ContextKeywords: []string{"github", "github profile"},
			Priority:        9,
			SiteSelectors: map[string][]string{
				"lever": {"input[name='urls[GitHub]']"},
			},
		},
		{
			Category:        model.CategoryPortfolioURL,
			Keywords:        []string{"portfolio", "website", "personalsite", "portfoliourl", "homepage"},
			ContextKeywords: []string{"portfolio", "personal website"},
			Priority:        7,
			SiteSelectors: map[string][]string{
				"lever": {"input[name='urls[Portfolio]']"},
			},
		},
		{
			Category:        model.CategoryResume,
			Keywords:        []string{"resume", "cv", "curriculumvitae", "resumeupload"},
			ContextKeywords: []string{"resume", "cv", "upload your resume"},
			Priority:        12,
			SiteSelectors: map[string][]string{
				"greenhouse": {"input[id='resume']"},
				"lever":      {"input[name='resume']"},
			},
		},
	}
}
