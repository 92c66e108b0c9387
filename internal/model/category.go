// Package model defines the core domain models used throughout the application.
package model

// Category identifies one semantic field type from the fixed taxonomy.
type Category string

// Personal information categories.
const (
	CategoryFirstName         Category = "firstName"
	CategoryLastName          Category = "lastName"
	CategoryFullName          Category = "fullName"
	CategoryEmail             Category = "email"
	CategoryPhone             Category = "phone"
	CategoryCountryCode       Category = "countryCode"
	CategoryAddress           Category = "address"
	CategoryAddressLine2      Category = "addressLine2"
	CategoryCity              Category = "city"
	CategoryState             Category = "state"
	CategoryZipCode           Category = "zipCode"
	CategoryCountry           Category = "country"
	CategoryCurrentLocation   Category = "currentLocation"
	CategoryWillingToRelocate Category = "willingToRelocate"
)

// Professional categories.
const (
	CategoryJobTitle         Category = "jobTitle"
	CategoryCompany          Category = "company"
	CategoryJobLocation      Category = "jobLocation"
	CategoryStartDate        Category = "startDate"
	CategoryEndDate          Category = "endDate"
	CategoryCurrentlyWorking Category = "currentlyWorking"
	CategoryJobDescription   Category = "jobDescription"
	CategorySkills           Category = "skills"
	CategoryCoverLetter      Category = "coverLetter"
	CategoryTotalExperience  Category = "totalExperience"
	CategoryCurrentSalary    Category = "currentSalary"
	CategoryExpectedSalary   Category = "expectedSalary"
	CategoryNoticePeriod     Category = "noticePeriod"
	CategoryLinkedinURL      Category = "linkedinUrl"
	CategoryGithubURL        Category = "githubUrl"
	CategoryPortfolioURL     Category = "portfolioUrl"
	CategoryResume           Category = "resume"
)

// CategoryUnknown marks a control the classifier could not place above
// threshold. Unknown fields are recorded but never filled.
const CategoryUnknown Category = "unknown"

// experienceScoped lists the categories that resolve against a single
// job-experience entry rather than top-level profile data.
var experienceScoped = map[Category]bool{
	CategoryJobTitle:         true,
	CategoryCompany:          true,
	CategoryJobLocation:      true,
	CategoryStartDate:        true,
	CategoryEndDate:          true,
	CategoryCurrentlyWorking: true,
	CategoryJobDescription:   true,
}

// IsExperienceScoped reports whether c resolves from a job-experience entry.
func (c Category) IsExperienceScoped() bool {
	return experienceScoped[c]
}
