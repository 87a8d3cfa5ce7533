package models

import "time"

// SchemaMode selects the feature schema for a prediction.
type SchemaMode string

const (
	ModeBasic    SchemaMode = "basic"    // cycle length only
	ModeEnhanced SchemaMode = "enhanced" // full record: symptoms, flow, lifestyle
)

// ConfidenceInterval bounds the prediction by historical uncertainty.
type ConfidenceInterval struct {
	PredictedDays int    `json:"predicted_days"`
	MinDays       int    `json:"min_days"`
	MaxDays       int    `json:"max_days"`
	EarliestDate  string `json:"earliest_date"`
	LatestDate    string `json:"latest_date"`
}

// HistoryStatistics summarizes the cycle lengths used for a prediction.
type HistoryStatistics struct {
	AverageCycleLength  float64 `json:"average_cycle_length"`
	StdDeviation        float64 `json:"std_deviation"`
	MinCycle            int     `json:"min_cycle"`
	MaxCycle            int     `json:"max_cycle"`
	TotalCyclesAnalyzed int     `json:"total_cycles_analyzed"`
}

// PredictionResult is the assembled output of the prediction pipeline.
// Constructed fresh per request and never persisted.
type PredictionResult struct {
	PredictedCycleLength int
	PredictedNextPeriod  time.Time
	Interval             ConfidenceInterval
	Statistics           HistoryStatistics
	UncertaintyDays      float64
	FrameworkUsed        string

	// Enhanced-path fields; zero-valued on the basic path.
	ConfidenceScore   float64
	ConfidenceLevel   string
	DataQuality       string
	Insights          []string
	FeatureImportance map[string]float64
}
