package models

import (
	"github.com/arunsingh-creator/CodeBloom/pkg/util"
)

// Requests and responses for the prediction HTTP endpoints. Defined in
// domain for consistency and reuse.

// PredictRequest is the basic prediction request: lengths only.
type PredictRequest struct {
	PastCycles     []int  `json:"past_cycles" validate:"required,min=4,max=500,dive,gte=15,lte=60"`
	LastPeriodDate string `json:"last_period_date" validate:"required"`
	Framework      string `json:"framework" default:"native" validate:"omitempty,oneof=native pytorch"`
}

// SymptomPayload mirrors SymptomScores with validation tags.
type SymptomPayload struct {
	Cramps      *int `json:"cramps" validate:"omitempty,gte=0,lte=5"`
	MoodChanges *int `json:"mood_changes" validate:"omitempty,gte=0,lte=5"`
	EnergyLevel *int `json:"energy_level" validate:"omitempty,gte=0,lte=5"`
	Bloating    *int `json:"bloating" validate:"omitempty,gte=0,lte=5"`
	Headaches   *int `json:"headaches" validate:"omitempty,gte=0,lte=5"`
}

// LifestylePayload mirrors LifestyleScores with validation tags.
type LifestylePayload struct {
	StressLevel       *int `json:"stress_level" validate:"omitempty,gte=0,lte=5"`
	ExerciseIntensity *int `json:"exercise_intensity" validate:"omitempty,gte=0,lte=5"`
	SleepQuality      *int `json:"sleep_quality" validate:"omitempty,gte=0,lte=5"`
	WeightChange      *int `json:"weight_change" validate:"omitempty,gte=-2,lte=2"`
}

// CycleRecordPayload is one tracked cycle in an enhanced request.
type CycleRecordPayload struct {
	CycleLength   int               `json:"cycle_length" validate:"required,gte=15,lte=60"`
	Date          string            `json:"date" validate:"required"`
	Symptoms      *SymptomPayload   `json:"symptoms"`
	FlowIntensity string            `json:"flow_intensity"`
	Lifestyle     *LifestylePayload `json:"lifestyle"`
}

// ToRecord converts the payload into a domain record. The date must be a
// valid ISO 8601 calendar date.
func (p CycleRecordPayload) ToRecord() (CycleRecord, error) {
	date, err := util.ParseCivilDate(p.Date)
	if err != nil {
		return CycleRecord{}, err
	}

	rec := CycleRecord{
		CycleLength: p.CycleLength,
		Date:        date,
		Flow:        p.FlowIntensity,
	}
	if p.Symptoms != nil {
		rec.Symptoms = &SymptomScores{
			Cramps:      p.Symptoms.Cramps,
			MoodChanges: p.Symptoms.MoodChanges,
			EnergyLevel: p.Symptoms.EnergyLevel,
			Bloating:    p.Symptoms.Bloating,
			Headaches:   p.Symptoms.Headaches,
		}
	}
	if p.Lifestyle != nil {
		rec.Lifestyle = &LifestyleScores{
			StressLevel:       p.Lifestyle.StressLevel,
			ExerciseIntensity: p.Lifestyle.ExerciseIntensity,
			SleepQuality:      p.Lifestyle.SleepQuality,
			WeightChange:      p.Lifestyle.WeightChange,
		}
	}
	return rec, nil
}

// EnhancedPredictRequest is the multi-feature prediction request.
type EnhancedPredictRequest struct {
	CycleRecords   []CycleRecordPayload `json:"cycle_records" validate:"required,min=4,max=500,dive"`
	LastPeriodDate string               `json:"last_period_date" validate:"required"`
	Framework      string               `json:"framework" default:"native" validate:"omitempty,oneof=native pytorch"`
}

// PredictionResponse is the basic prediction response body.
type PredictionResponse struct {
	PredictedCycleLength         int                `json:"predicted_cycle_length"`
	PredictedNextPeriod          string             `json:"predicted_next_period"`
	PredictedNextPeriodFormatted string             `json:"predicted_next_period_formatted"`
	ConfidenceInterval           ConfidenceInterval `json:"confidence_interval"`
	Statistics                   HistoryStatistics  `json:"statistics"`
	UncertaintyDays              float64            `json:"uncertainty_days"`
	FrameworkUsed                string             `json:"framework_used"`
}

// EnhancedPredictionResponse extends the basic response with confidence,
// insights and feature importance.
type EnhancedPredictionResponse struct {
	PredictionResponse

	ConfidenceScore   float64            `json:"confidence_score"`
	ConfidenceLevel   string             `json:"confidence_level"`
	DataQuality       string             `json:"data_quality"`
	Insights          []string           `json:"insights"`
	FeatureImportance map[string]float64 `json:"feature_importance"`
}

// NewPredictionResponse maps a pipeline result onto the basic response body.
func NewPredictionResponse(res *PredictionResult) PredictionResponse {
	return PredictionResponse{
		PredictedCycleLength:         res.PredictedCycleLength,
		PredictedNextPeriod:          util.FormatCivilDate(res.PredictedNextPeriod),
		PredictedNextPeriodFormatted: util.FormatReadableDate(res.PredictedNextPeriod),
		ConfidenceInterval:           res.Interval,
		Statistics:                   res.Statistics,
		UncertaintyDays:              res.UncertaintyDays,
		FrameworkUsed:                res.FrameworkUsed,
	}
}

// NewEnhancedPredictionResponse maps a pipeline result onto the enhanced
// response body.
func NewEnhancedPredictionResponse(res *PredictionResult) EnhancedPredictionResponse {
	return EnhancedPredictionResponse{
		PredictionResponse: NewPredictionResponse(res),
		ConfidenceScore:    res.ConfidenceScore,
		ConfidenceLevel:    res.ConfidenceLevel,
		DataQuality:        res.DataQuality,
		Insights:           res.Insights,
		FeatureImportance:  res.FeatureImportance,
	}
}
