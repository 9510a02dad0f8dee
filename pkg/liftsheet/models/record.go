package models

// SetRecord is one extracted set row, carrying raw cell text.
type SetRecord struct {
	// WeekDay is the anchor text identifying the session (e.g. "W1D2").
	WeekDay string `json:"week_day"`
	// Exercise is the exercise name, backfilled from a merged span when blank.
	Exercise string `json:"exercise"`
	// SetNumber is the 1-based set index within a run of the same exercise.
	SetNumber int `json:"set_number"`
	// PrescribedReps is the raw prescribed reps text.
	PrescribedReps string `json:"prescribed_reps"`
	// PrescribedRPE is the raw prescribed RPE text.
	PrescribedRPE string `json:"prescribed_rpe"`
	// CompletedWeight is the raw completed weight text.
	CompletedWeight string `json:"completed_weight"`
	// CompletedReps is the raw completed reps text.
	CompletedReps string `json:"completed_reps"`
	// CompletedRPE is the raw completed RPE text.
	CompletedRPE string `json:"completed_rpe"`
	// Notes is the raw notes text.
	Notes string `json:"notes"`
}

// NormalizedSetRecord is a SetRecord whose metric fields have been converted
// to numbers. A nil field means the cell was blank or could not be parsed.
type NormalizedSetRecord struct {
	WeekDay         string   `json:"week_day"`
	Exercise        string   `json:"exercise"`
	SetNumber       int      `json:"set_number"`
	PrescribedReps  *float64 `json:"prescribed_reps"`
	PrescribedRPE   *float64 `json:"prescribed_rpe"`
	CompletedWeight *float64 `json:"completed_weight"`
	CompletedReps   *float64 `json:"completed_reps"`
	CompletedRPE    *float64 `json:"completed_rpe"`
	Notes           string   `json:"notes"`
	// Dropped names the metric fields that had text but did not parse.
	Dropped []string `json:"dropped,omitempty"`
}

// Metric field names, as used in Dropped and in output headers.
const (
	FieldPrescribedReps  = "prescribed_reps"
	FieldPrescribedRPE   = "prescribed_rpe"
	FieldCompletedWeight = "completed_weight"
	FieldCompletedReps   = "completed_reps"
	FieldCompletedRPE    = "completed_rpe"
)
