package classify

import "github.com/neerajdhurandher/autofill-engine/internal/model"

// Site selectors are hand-verified, so they carry the highest confidence of
// any strategy.
const siteConfidence = 0.98

// siteStrategy tests the control against the taxonomy's per-site CSS
// selectors. It stays silent unless the current page's site was recognized.
type siteStrategy struct{}

func (siteStrategy) Method() model.Method { return model.MethodSiteSpecific }

func (siteStrategy) Votes(in Input) []model.Vote {
	if !in.Site.Known() {
		return nil
	}

	var votes []model.Vote
	for _, entry := range in.Taxonomy.All() {
		for _, selector := range entry.SiteSelectors[in.Site.ID] {
			if !in.Control.Sel.Is(selector) {
				continue
			}
			votes = append(votes, model.Vote{
				Category:   entry.Category,
				Confidence: siteConfidence,
				Method:     model.MethodSiteSpecific,
				Source:     in.Site.ID + ":" + selector,
				Priority:   entry.Priority,
			})
		}
	}
	return votes
}
