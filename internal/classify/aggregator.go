package classify

import "github.com/neerajdhurandher/autofill-engine/internal/model"

// methodWeights are the fixed per-method reliability weights used when
// merging votes.
var methodWeights = map[model.Method]float64{
	model.MethodSiteSpecific: 1.0,
	model.MethodDirect:       0.9,
	model.MethodLearned:      0.85,
	model.MethodSemantic:     0.8,
	model.MethodContextual:   0.7,
	model.MethodFuzzy:        0.6,
}

// rawVoteFloor guards against many weak votes outvoting one strong signal:
// a category can only win if at least one of its raw votes clears it.
const rawVoteFloor = 0.5

type categoryTally struct {
	methods     map[model.Method]bool
	weightedSum float64
	bestRaw     float64
	votes       int
	priority    int
}

// Aggregate merges the votes for one control into a single best-category
// decision. The winner must exceed the aggregation floor on weighted-mean
// confidence and carry at least one raw vote above 0.5; ties break toward
// the higher taxonomy priority. Returns nil when no category qualifies.
func Aggregate(control *model.Control, votes []model.Vote, floor float64) *model.DetectedField {
	if len(votes) == 0 {
		return nil
	}

	tallies := make(map[model.Category]*categoryTally)
	for _, v := range votes {
		t := tallies[v.Category]
		if t == nil {
			t = &categoryTally{methods: make(map[model.Method]bool)}
			tallies[v.Category] = t
		}
		t.weightedSum += v.Confidence * methodWeights[v.Method]
		t.votes++
		t.methods[v.Method] = true
		if v.Confidence > t.bestRaw {
			t.bestRaw = v.Confidence
		}
		if v.Priority > t.priority {
			t.priority = v.Priority
		}
	}

	var (
		winner      model.Category
		winnerMean  float64
		winnerTally *categoryTally
	)
	for cat, t := range tallies {
		mean := t.weightedSum / float64(t.votes)
		if mean <= floor || t.bestRaw <= rawVoteFloor {
			continue
		}
		switch {
		case winnerTally == nil,
			mean > winnerMean,
			mean == winnerMean && t.priority > winnerTally.priority,
			mean == winnerMean && t.priority == winnerTally.priority && cat < winner:
			winner = cat
			winnerMean = mean
			winnerTally = t
		}
	}
	if winnerTally == nil {
		return nil
	}

	// The reported confidence is the winning category's strongest raw vote;
	// the weighted mean only selects the winner.
	conf := clamp01(winnerTally.bestRaw)
	methods := make([]model.Method, 0, len(winnerTally.methods))
	for _, m := range []model.Method{
		model.MethodSiteSpecific, model.MethodDirect, model.MethodLearned,
		model.MethodSemantic, model.MethodContextual, model.MethodFuzzy,
	} {
		if winnerTally.methods[m] {
			methods = append(methods, m)
		}
	}

	return &model.DetectedField{
		Control:    control,
		Category:   winner,
		Confidence: conf,
		Methods:    methods,
		Priority:   winnerTally.priority,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
