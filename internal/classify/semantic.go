package classify

import (
	"strings"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

const semanticConfidence = 0.85

// semanticPhrases is a small fixed table of multi-word phrases, distinct from
// the taxonomy's single-word keyword lists. Phrases are matched, with spaces,
// against the concatenation of all attributes plus label text.
var semanticPhrases = []struct {
	phrase   string
	category model.Category
}{
	{"given name", model.CategoryFirstName},
	{"first name", model.CategoryFirstName},
	{"family name", model.CategoryLastName},
	{"last name", model.CategoryLastName},
	{"full name", model.CategoryFullName},
	{"legal name", model.CategoryFullName},
	{"e-mail address", model.CategoryEmail},
	{"email address", model.CategoryEmail},
	{"phone number", model.CategoryPhone},
	{"mobile number", model.CategoryPhone},
	{"postal code", model.CategoryZipCode},
	{"zip code", model.CategoryZipCode},
	{"street address", model.CategoryAddress},
	{"current location", model.CategoryCurrentLocation},
	{"willing to relocate", model.CategoryWillingToRelocate},
	{"job title", model.CategoryJobTitle},
	{"current title", model.CategoryJobTitle},
	{"current employer", model.CategoryCompany},
	{"company name", model.CategoryCompany},
	{"years of experience", model.CategoryTotalExperience},
	{"total experience", model.CategoryTotalExperience},
	{"current salary", model.CategoryCurrentSalary},
	{"expected salary", model.CategoryExpectedSalary},
	{"salary expectation", model.CategoryExpectedSalary},
	{"notice period", model.CategoryNoticePeriod},
	{"cover letter", model.CategoryCoverLetter},
	{"linkedin profile", model.CategoryLinkedinURL},
	{"github profile", model.CategoryGithubURL},
	{"personal website", model.CategoryPortfolioURL},
	{"upload resume", model.CategoryResume},
	{"upload your resume", model.CategoryResume},
	{"curriculum vitae", model.CategoryResume},
}

// semanticStrategy matches the fixed phrase table against the control's
// combined search text.
type semanticStrategy struct{}

func (semanticStrategy) Method() model.Method { return model.MethodSemantic }

func (semanticStrategy) Votes(in Input) []model.Vote {
	text := in.Control.Attrs.SearchText()
	if strings.TrimSpace(text) == "" {
		return nil
	}

	var votes []model.Vote
	for _, p := range semanticPhrases {
		if !strings.Contains(text, p.phrase) {
			continue
		}
		votes = append(votes, model.Vote{
			Category:   p.category,
			Confidence: semanticConfidence,
			Method:     model.MethodSemantic,
			Source:     "phrase:" + p.phrase,
			Priority:   in.Taxonomy.Priority(p.category),
		})
	}
	return votes
}
