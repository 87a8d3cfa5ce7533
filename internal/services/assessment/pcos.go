// Package assessment implements the PCOS risk heuristic. The score is an
// additive screen over self-reported symptoms, not a medical diagnosis.
package assessment

import (
	"github.com/arunsingh-creator/CodeBloom/internal/domain/models"
)

// Symptom point values.
const (
	pointsIrregularPeriods = 30
	pointsExcessHair       = 20
	pointsWeightGain       = 15
	pointsFamilyHistory    = 15
	pointsAcne             = 10
	pointsDarkSkinPatches  = 10
	pointsAbnormalLength   = 20
)

// Cycle lengths outside this band count as irregular when the caller did
// not already report irregular periods.
const (
	regularMinDays = 21
	regularMaxDays = 35
)

// Risk level thresholds.
const (
	lowMax      = 30
	moderateMax = 60
)

// CalculateRisk scores the reported symptoms and maps the total onto a
// risk level with a fixed advisory recommendation.
func CalculateRisk(req models.PCOSRiskRequest) models.PCOSRiskResponse {
	score := 0

	if req.IrregularPeriods {
		score += pointsIrregularPeriods
	}
	if req.ExcessHairGrowth {
		score += pointsExcessHair
	}
	if req.WeightGain {
		score += pointsWeightGain
	}
	if req.FamilyHistory {
		score += pointsFamilyHistory
	}
	if req.Acne {
		score += pointsAcne
	}
	if req.DarkSkinPatches {
		score += pointsDarkSkinPatches
	}

	if req.CycleLengthAvg != nil && !req.IrregularPeriods {
		if *req.CycleLengthAvg < regularMinDays || *req.CycleLengthAvg > regularMaxDays {
			score += pointsAbnormalLength
		}
	}

	var level, recommendation string
	switch {
	case score <= lowMax:
		level = "Low"
		recommendation = "Your symptoms do not strongly suggest PCOS. Maintain a healthy lifestyle and track your cycles."
	case score <= moderateMax:
		level = "Moderate"
		recommendation = "You have some symptoms associated with PCOS. Consider monitoring your symptoms and consulting a doctor if they persist."
	default:
		level = "High"
		recommendation = "Your reported symptoms are strongly associated with PCOS. It is highly recommended to consult a healthcare provider for a proper evaluation."
	}

	return models.PCOSRiskResponse{
		RiskScore:      score,
		RiskLevel:      level,
		Recommendation: recommendation,
	}
}
