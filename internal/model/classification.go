package model

import "time"

// Method identifies which classification strategy produced a vote.
type Method string

// Classification method constants.
const (
	MethodDirect       Method = "direct"
	MethodFuzzy        Method = "fuzzy"
	MethodContextual   Method = "contextual"
	MethodSemantic     Method = "semantic"
	MethodSiteSpecific Method = "site-specific"
	MethodLearned      Method = "learned"
)

// Vote is one strategy's opinion about a control. Votes are ephemeral: they
// are produced by a strategy and consumed immediately by the aggregator.
type Vote struct {
	Category   Category
	Method     Method
	Source     string
	Confidence float64
	Priority   int
}

// DetectedField is the durable output of classification for one control.
// It lives for the duration of one detect/fill cycle and is wholesale
// replaced on the next detection pass.
type DetectedField struct {
	Control    *Control
	Category   Category
	Methods    []Method
	Confidence float64
	Priority   int
	// CardIndex is the 1-based experience card this field belongs to,
	// or 0 for fields outside any experience block.
	CardIndex int
}

// Classified reports whether the field resolved to a real category.
func (f *DetectedField) Classified() bool {
	return f.Category != CategoryUnknown
}

// LearnedPattern is a persisted cache entry mapping a control's structural
// fingerprint to the last category it successfully classified as. It is an
// optimization cache, not a source of truth: entries are bounded and the
// oldest are evicted past the cap.
type LearnedPattern struct {
	SeenAt      time.Time
	Fingerprint string
	Site        string
	Category    Category
	Confidence  float64
	UseCount    int
}
