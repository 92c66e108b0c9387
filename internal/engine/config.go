package engine

import "time"

// Config holds the tunable thresholds of the detection and fill pipeline.
// The defaults are empirical constants; they are configuration, not law.
type Config struct {
	// AggregationFloor is the weighted-mean confidence a category must
	// exceed to win classification.
	AggregationFloor float64
	// FillFloor is the safety floor below which a classified field is
	// never filled, even when a value is available.
	FillFloor float64
	// FuzzyFloor is the minimum edit-distance similarity for a fuzzy vote.
	FuzzyFloor float64
	// CacheCap bounds the learned-pattern cache; oldest entries are
	// evicted past it.
	CacheCap int
	// Debounce is the quiet window after the last observed DOM mutation
	// before a re-detection pass runs.
	Debounce time.Duration
	// RichEvents switches the writer to the extended synthetic event
	// sequence (focus/keydown/keypress in addition to the standard set).
	RichEvents bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		AggregationFloor: 0.5,
		FillFloor:        0.3,
		FuzzyFloor:       0.7,
		CacheCap:         1000,
		Debounce:         500 * time.Millisecond,
	}
}
