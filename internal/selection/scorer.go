package selection

import (
	"github.com/wonny/cryptoadvisor/internal/contracts"
)

// MaxScore is the ceiling every score is clamped to
const MaxScore = 10

// Score returns the 0..10 attractiveness of asset under tol
// ⭐ SSOT: 점수 계산은 여기서만
func Score(asset contracts.AssetRecord, tol contracts.Tolerance) int {
	return Breakdown(asset, tol).Total
}

// Breakdown returns every additive term of the score plus the clamped total
func Breakdown(asset contracts.AssetRecord, tol contracts.Tolerance) contracts.ScoreBreakdown {
	b := contracts.ScoreBreakdown{
		MarketCap:      marketCapPoints(asset.MarketCapRank),
		Momentum:       momentumPoints(asset.PriceChange30d),
		Sustainability: sustainabilityPoints(asset.SustainabilityScore),
		Technology:     technologyPoints(asset.TechnologyMaturity),
		Adoption:       thirdsCapped(asset.AdoptionScore),
		Regulatory:     thirdsCapped(asset.RegulatoryClarity),
		Tolerance:      tolerancePoints(asset.Volatility, tol),
	}

	b.Raw = b.MarketCap + b.Momentum + b.Sustainability + b.Technology +
		b.Adoption + b.Regulatory + b.Tolerance
	b.Total = min(b.Raw, MaxScore)

	return b
}

func marketCapPoints(rank int) int {
	switch {
	case rank <= 5:
		return 3
	case rank <= 15:
		return 2
	default:
		return 1
	}
}

func momentumPoints(change30d float64) int {
	switch {
	case change30d > 20:
		return 2
	case change30d > 0:
		return 1
	default:
		return 0
	}
}

func sustainabilityPoints(score int) int {
	switch {
	case score >= 8:
		return 2
	case score >= 6:
		return 1
	default:
		return 0
	}
}

func technologyPoints(maturity int) int {
	if maturity >= 8 {
		return 1
	}
	return 0
}

// thirdsCapped is floor(v/3) capped at 2
func thirdsCapped(v int) int {
	return min(v/3, 2)
}

func tolerancePoints(vol contracts.Volatility, tol contracts.Tolerance) int {
	switch tol {
	case contracts.ToleranceLow:
		if vol == contracts.VolatilityLow || vol == contracts.VolatilityMedium {
			return 1
		}
	case contracts.ToleranceHigh:
		if vol == contracts.VolatilityVeryHigh {
			return 1
		}
	}
	return 0
}
