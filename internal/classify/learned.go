package classify

import "github.com/neerajdhurandher/autofill-engine/internal/model"

// learnedBoost and learnedCap bound the confidence of cache-driven votes: a
// remembered classification votes slightly above its recorded confidence but
// never above 0.95, so hand-verified site selectors still outrank it.
const (
	learnedBoost = 0.1
	learnedCap   = 0.95
)

// learnedStrategy replays previously successful classifications keyed by the
// control's structural fingerprint.
type learnedStrategy struct{}

func (learnedStrategy) Method() model.Method { return model.MethodLearned }

func (learnedStrategy) Votes(in Input) []model.Vote {
	if in.Learned == nil {
		return nil
	}
	fp := in.Control.Attrs.Fingerprint()
	if fp == "" {
		return nil
	}
	cached, ok := in.Learned(fp)
	if !ok {
		return nil
	}

	conf := cached.Confidence + learnedBoost
	if conf > learnedCap {
		conf = learnedCap
	}
	return []model.Vote{{
		Category:   cached.Category,
		Confidence: conf,
		Method:     model.MethodLearned,
		Source:     "fingerprint:" + fp,
		Priority:   in.Taxonomy.Priority(cached.Category),
	}}
}
