// Package classify implements the multi-strategy confidence-scoring field
// classifier: six independent strategies vote on each control and an
// aggregator merges the votes into one best-category decision.
package classify

import (
	"regexp"
	"strings"

	"github.com/neerajdhurandher/autofill-engine/internal/model"
	"github.com/neerajdhurandher/autofill-engine/internal/sites"
	"github.com/neerajdhurandher/autofill-engine/internal/taxonomy"
)

// Input carries everything a strategy may consult for one control. Strategies
// are pure over this input: no strategy depends on another's output, so they
// can run in any order.
type Input struct {
	Control  *model.Control
	Taxonomy *taxonomy.Taxonomy
	Learned  LearnedLookup
	Site     sites.Context
}

// LearnedLookup reads the learned-pattern cache by structural fingerprint.
type LearnedLookup func(fingerprint string) (model.LearnedPattern, bool)

// Strategy scores one control against the taxonomy and emits zero or more
// votes.
type Strategy interface {
	Method() model.Method
	Votes(in Input) []model.Vote
}

// DefaultStrategies returns the full strategy set in a fixed order. Order
// does not affect aggregation results; it only fixes vote listing order.
func DefaultStrategies(fuzzyFloor float64) []Strategy {
	return []Strategy{
		directStrategy{},
		fuzzyStrategy{floor: fuzzyFloor},
		contextualStrategy{},
		semanticStrategy{},
		siteStrategy{},
		learnedStrategy{},
	}
}

var nonAlnumRe = regexp.MustCompile(`[^a-z0-9]+`)

// normalize lowercases and strips every non-alphanumeric rune. Attribute
// values and keywords are normalized identically so "first_name" and
// "firstName" compare equal.
func normalize(s string) string {
	return nonAlnumRe.ReplaceAllString(strings.ToLower(s), "")
}
