package model

// FillStatus indicates how one field fared during a fill pass.
type FillStatus string

// Fill status constants.
const (
	// StatusFilled means the value was written and events dispatched.
	StatusFilled FillStatus = "FILLED"
	// StatusNoData means classification succeeded but the profile held no
	// usable value for the category.
	StatusNoData FillStatus = "NO_DATA"
	// StatusRejected means the writer declined to write
	// (disabled, read-only, file input, no matching select option).
	StatusRejected FillStatus = "REJECTED"
	// StatusSkipped means the field fell below the fill safety floor or was
	// never classified.
	StatusSkipped FillStatus = "SKIPPED"
	// StatusError means an unexpected failure during DOM manipulation.
	StatusError FillStatus = "ERROR"
)

// FieldOutcome records what happened to a single field during filling.
type FieldOutcome struct {
	Field      *DetectedField
	Status     FillStatus
	Value      string
	Reason     string
	Confidence float64
}

// FillResult is the structured outcome of one fill pass. The orchestrator
// always returns it, never raises: all per-field failures are collected.
type FillResult struct {
	Results     []FieldOutcome
	Errors      []string
	Message     string
	FilledCount int
	TotalFields int
	Success     bool
}
