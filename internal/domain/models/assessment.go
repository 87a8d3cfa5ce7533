package models

// PCOSRiskRequest reports symptoms for the PCOS risk heuristic.
type PCOSRiskRequest struct {
	IrregularPeriods bool `json:"irregular_periods"`
	WeightGain       bool `json:"weight_gain"`
	ExcessHairGrowth bool `json:"excess_hair_growth"`
	Acne             bool `json:"acne"`
	FamilyHistory    bool `json:"family_history"`
	DarkSkinPatches  bool `json:"dark_skin_patches"`
	CycleLengthAvg   *int `json:"cycle_length_avg" validate:"omitempty,gte=10,lte=120"`
}

// PCOSRiskResponse carries the heuristic score. It is an advisory screen,
// not a medical diagnosis.
type PCOSRiskResponse struct {
	RiskScore      int    `json:"risk_score"`
	RiskLevel      string `json:"risk_level"`
	Recommendation string `json:"recommendation"`
}
