package classify

import (
	"strings"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// Direct match confidence tiers.
const (
	directExactConfidence    = 0.95
	directContainsConfidence = 0.70
)

// directStrategy compares every normalized attribute value against every
// normalized taxonomy keyword: exact equality scores 0.95, substring
// containment 0.70.
type directStrategy struct{}

func (directStrategy) Method() model.Method { return model.MethodDirect }

func (directStrategy) Votes(in Input) []model.Vote {
	var votes []model.Vote
	attrs := in.Control.Attrs.Values()

	for _, entry := range in.Taxonomy.All() {
		for _, keyword := range entry.Keywords {
			kw := normalize(keyword)
			if kw == "" {
				continue
			}
			for attrName, attrVal := range attrs {
				val := normalize(attrVal)
				if val == "" {
					continue
				}
				switch {
				case val == kw:
					votes = append(votes, model.Vote{
						Category:   entry.Category,
						Confidence: directExactConfidence,
						Method:     model.MethodDirect,
						Source:     attrName + "=" + keyword,
						Priority:   entry.Priority,
					})
				case strings.Contains(val, kw):
					votes = append(votes, model.Vote{
						Category:   entry.Category,
						Confidence: directContainsConfidence,
						Method:     model.MethodDirect,
						Source:     attrName + "~" + keyword,
						Priority:   entry.Priority,
					})
				}
			}
		}
	}
	return votes
}
