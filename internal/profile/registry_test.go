package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/cryptoadvisor/internal/contracts"
)

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()

	tests := []struct {
		tag      string
		wantTol  contracts.Tolerance
		wantRank int
		wantReg  int
		wantRisk []contracts.RiskLevel
	}{
		{"low", contracts.ToleranceLow, 15, 6, []contracts.RiskLevel{contracts.RiskLow, contracts.RiskMedium}},
		{"medium", contracts.ToleranceMedium, 25, 5, []contracts.RiskLevel{contracts.RiskMedium, contracts.RiskMediumHigh}},
		{"high", contracts.ToleranceHigh, 50, 4, []contracts.RiskLevel{contracts.RiskMediumHigh, contracts.RiskHigh}},
		{"made-up-tag", contracts.ToleranceMedium, 25, 5, []contracts.RiskLevel{contracts.RiskMedium, contracts.RiskMediumHigh}},
		{"", contracts.ToleranceMedium, 25, 5, []contracts.RiskLevel{contracts.RiskMedium, contracts.RiskMediumHigh}},
		{"LOW", contracts.ToleranceMedium, 25, 5, []contracts.RiskLevel{contracts.RiskMedium, contracts.RiskMediumHigh}},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			tol, p := r.Resolve(tt.tag)
			assert.Equal(t, tt.wantTol, tol)
			assert.Equal(t, tt.wantRank, p.MinMarketCapRank)
			assert.Equal(t, tt.wantReg, p.MinRegulatoryClarity)
			assert.Equal(t, tt.wantRisk, p.PreferredRiskLevels)
		})
	}
}

func TestRegistry_MaxVolatility(t *testing.T) {
	r := NewRegistry()

	assert.Equal(t, contracts.VolatilityMedium, r.Profile(contracts.ToleranceLow).MaxVolatility)
	assert.Equal(t, contracts.VolatilityHigh, r.Profile(contracts.ToleranceMedium).MaxVolatility)
	assert.Equal(t, contracts.VolatilityVeryHigh, r.Profile(contracts.ToleranceHigh).MaxVolatility)
}

func TestRegistry_ProfileIsCopy(t *testing.T) {
	r := NewRegistry()

	p := r.Profile(contracts.ToleranceLow)
	p.PreferredRiskLevels[0] = contracts.RiskHigh
	p.MinMarketCapRank = 1

	fresh := r.Profile(contracts.ToleranceLow)
	assert.Equal(t, contracts.RiskLow, fresh.PreferredRiskLevels[0])
	assert.Equal(t, 15, fresh.MinMarketCapRank)
}
