package assessment

import (
	"testing"

	"github.com/arunsingh-creator/CodeBloom/internal/domain/models"
	"github.com/stretchr/testify/assert"
)

func intp(v int) *int { return &v }

func TestCalculateRiskPointTable(t *testing.T) {
	tests := []struct {
		name      string
		req       models.PCOSRiskRequest
		wantScore int
		wantLevel string
	}{
		{
			name:      "no symptoms",
			req:       models.PCOSRiskRequest{},
			wantScore: 0,
			wantLevel: "Low",
		},
		{
			name:      "irregular periods only",
			req:       models.PCOSRiskRequest{IrregularPeriods: true},
			wantScore: 30,
			wantLevel: "Low",
		},
		{
			name: "moderate combination",
			req: models.PCOSRiskRequest{
				IrregularPeriods: true,
				ExcessHairGrowth: true,
			},
			wantScore: 50,
			wantLevel: "Moderate",
		},
		{
			name: "all symptoms",
			req: models.PCOSRiskRequest{
				IrregularPeriods: true,
				WeightGain:       true,
				ExcessHairGrowth: true,
				Acne:             true,
				FamilyHistory:    true,
				DarkSkinPatches:  true,
			},
			wantScore: 100,
			wantLevel: "High",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateRisk(tt.req)
			assert.Equal(t, tt.wantScore, got.RiskScore)
			assert.Equal(t, tt.wantLevel, got.RiskLevel)
			assert.NotEmpty(t, got.Recommendation)
		})
	}
}

func TestCalculateRiskAbnormalCycleLength(t *testing.T) {
	// Out-of-band average adds points only when irregular periods were
	// not already reported.
	withAvg := CalculateRisk(models.PCOSRiskRequest{CycleLengthAvg: intp(40)})
	assert.Equal(t, 20, withAvg.RiskScore)

	alreadyIrregular := CalculateRisk(models.PCOSRiskRequest{
		IrregularPeriods: true,
		CycleLengthAvg:   intp(40),
	})
	assert.Equal(t, 30, alreadyIrregular.RiskScore)

	normalAvg := CalculateRisk(models.PCOSRiskRequest{CycleLengthAvg: intp(28)})
	assert.Equal(t, 0, normalAvg.RiskScore)
}
