package classify

import (
	"strings"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

const contextualConfidence = 0.75

// contextualStrategy matches the taxonomy's context keywords against the
// control's resolved label text. Context keywords are a looser signal than
// the primary keyword lists and are consulted nowhere else.
type contextualStrategy struct{}

func (contextualStrategy) Method() model.Method { return model.MethodContextual }

func (contextualStrategy) Votes(in Input) []model.Vote {
	label := normalize(in.Control.Attrs.LabelText)
	if label == "" {
		return nil
	}

	var votes []model.Vote
	for _, entry := range in.Taxonomy.All() {
		for _, keyword := range entry.ContextKeywords {
			kw := normalize(keyword)
			if kw == "" || !strings.Contains(label, kw) {
				continue
			}
			votes = append(votes, model.Vote{
				Category:   entry.Category,
				Confidence: contextualConfidence,
				Method:     model.MethodContextual,
				Source:     "label~" + keyword,
				Priority:   entry.Priority,
			})
		}
	}
	return votes
}
