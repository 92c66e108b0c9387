package resolve

import "github.com/neerajdhurandher/autofill-engine/internal/model"

// categoryPaths lists the candidate profile paths per category, evaluated in
// order by the generic first-non-empty resolver. The canonical nested shape
// comes first; flat legacy keys follow so old profiles keep working.
var categoryPaths = map[model.Category][]string{
	model.CategoryFirstName: {"personal.firstName", "firstName", "personal.first_name", "first_name"},
	model.CategoryLastName:  {"personal.lastName", "lastName", "personal.last_name", "last_name"},
	model.CategoryEmail:     {"personal.email", "email"},
	model.CategoryPhone: {
		"personal.phone.full", "personal.phone.number", "personal.phone",
		"phone", "phoneNumber",
	},
	model.CategoryCountryCode:       {"personal.phone.countryCode", "countryCode"},
	model.CategoryAddress:           {"personal.address.line1", "personal.address", "address"},
	model.CategoryAddressLine2:      {"personal.address.line2", "addressLine2"},
	model.CategoryCity:              {"personal.address.city", "city"},
	model.CategoryState:             {"personal.address.state", "state"},
	model.CategoryZipCode:           {"personal.address.postalCode", "postalCode", "zipCode", "zip"},
	model.CategoryCountry:           {"personal.address.country", "country"},
	model.CategoryCurrentLocation:   {"personal.currentLocation", "currentLocation", "location"},
	model.CategoryWillingToRelocate: {"personal.willingToRelocate", "willingToRelocate"},
	model.CategorySkills:            {"professional.skills", "skills"},
	model.CategoryCoverLetter:       {"professional.coverLetter", "coverLetter"},
	model.CategoryTotalExperience:   {"professional.totalExperience", "totalExperience"},
	model.CategoryCurrentSalary:     {"professional.currentSalary", "currentSalary"},
	model.CategoryExpectedSalary:    {"professional.expectedSalary", "expectedSalary"},
	model.CategoryNoticePeriod:      {"professional.noticePeriod", "noticePeriod"},
	model.CategoryLinkedinURL:       {"professional.linkedinUrl", "linkedinUrl", "linkedin"},
	model.CategoryGithubURL:         {"professional.githubUrl", "githubUrl", "github"},
	model.CategoryPortfolioURL:      {"professional.portfolioUrl", "portfolioUrl", "website"},
	model.CategoryResume:            {"documents.resume", "resume", "resumeUrl"},
}

// experienceKeys lists the candidate keys per experience-scoped category,
// looked up inside one experience entry.
var experienceKeys = map[model.Category][]string{
	model.CategoryJobTitle:         {"jobTitle", "title", "position"},
	model.CategoryCompany:          {"company", "employer", "organization"},
	model.CategoryJobLocation:      {"jobLocation", "location"},
	model.CategoryStartDate:        {"startDate", "from"},
	model.CategoryEndDate:          {"endDate", "to"},
	model.CategoryCurrentlyWorking: {"isCurrentJob", "currentlyWorking", "current"},
	model.CategoryJobDescription:   {"jobDescription", "description"},
}
