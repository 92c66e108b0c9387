package classify

import (
	"github.com/agnivade/levenshtein"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
)

// fuzzyConfidenceScale caps fuzzy matches below the direct tier: even a
// perfect similarity scores 0.8.
const fuzzyConfidenceScale = 0.8

// fuzzyStrategy scores normalized edit-distance similarity between every
// attribute value and every taxonomy keyword. Votes are emitted only above
// the similarity floor.
type fuzzyStrategy struct {
	floor float64
}

func (fuzzyStrategy) Method() model.Method { return model.MethodFuzzy }

func (s fuzzyStrategy) Votes(in Input) []model.Vote {
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
				sim := similarity(val, kw)
				if sim <= s.floor {
					continue
				}
				votes = append(votes, model.Vote{
					Category:   entry.Category,
					Confidence: sim * fuzzyConfidenceScale,
					Method:     model.MethodFuzzy,
					Source:     attrName + "~" + keyword,
					Priority:   entry.Priority,
				})
			}
		}
	}
	return votes
}

// similarity is 1 - levenshtein(a,b)/max(len(a),len(b)), in [0,1].
func similarity(a, b string) float64 {
	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1 - float64(dist)/float64(longest)
}
