package profile

import (
	"github.com/wonny/cryptoadvisor/internal/contracts"
)

// DefaultTolerance is used for any tag that is not one of the canonical three
const DefaultTolerance = contracts.ToleranceMedium

// Registry maps tolerance tiers to their fixed threshold profiles
// ⭐ SSOT: 리스크 프로파일 상수는 여기서만 정의
type Registry struct {
	profiles map[contracts.Tolerance]contracts.RiskProfile
}

// NewRegistry creates the registry with the three built-in profiles
func NewRegistry() *Registry {
	return &Registry{
		profiles: map[contracts.Tolerance]contracts.RiskProfile{
			contracts.ToleranceLow: {
				MaxVolatility:        contracts.VolatilityMedium,
				MinMarketCapRank:     15,
				MinRegulatoryClarity: 6,
				PreferredRiskLevels:  []contracts.RiskLevel{contracts.RiskLow, contracts.RiskMedium},
			},
			contracts.ToleranceMedium: {
				MaxVolatility:        contracts.VolatilityHigh,
				MinMarketCapRank:     25,
				MinRegulatoryClarity: 5,
				PreferredRiskLevels:  []contracts.RiskLevel{contracts.RiskMedium, contracts.RiskMediumHigh},
			},
			contracts.ToleranceHigh: {
				MaxVolatility:        contracts.VolatilityVeryHigh,
				MinMarketCapRank:     50,
				MinRegulatoryClarity: 4,
				PreferredRiskLevels:  []contracts.RiskLevel{contracts.RiskMediumHigh, contracts.RiskHigh},
			},
		},
	}
}

// Resolve maps any tag to a tier and its profile.
// Unrecognized tags fall back to medium; this is not an error.
func (r *Registry) Resolve(tag string) (contracts.Tolerance, contracts.RiskProfile) {
	tol, ok := contracts.ParseTolerance(tag)
	if !ok {
		tol = DefaultTolerance
	}
	return tol, r.Profile(tol)
}

// Profile returns a copy of the profile bound to tol
func (r *Registry) Profile(tol contracts.Tolerance) contracts.RiskProfile {
	p, ok := r.profiles[tol]
	if !ok {
		p = r.profiles[DefaultTolerance]
	}
	return p.Clone()
}
