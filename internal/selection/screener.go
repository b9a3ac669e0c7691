package selection

import (
	"github.com/wonny/cryptoadvisor/internal/contracts"
	"github.com/wonny/cryptoadvisor/pkg/logger"
)

// Screener implements the eligibility hard cut
// ⭐ SSOT: 적격성 필터 로직은 여기서만
type Screener struct {
	logger *logger.Logger
}

// NewScreener creates a new screener
func NewScreener(log *logger.Logger) *Screener {
	return &Screener{logger: log}
}

// Select returns the assets admissible under profile, in catalog order.
// An empty result is valid; callers decide how to report it.
func (s *Screener) Select(catalog contracts.Catalog, profile contracts.RiskProfile) []contracts.AssetRecord {
	assets := catalog.Assets()
	passed := make([]contracts.AssetRecord, 0, len(assets))
	filtered := make(map[string]int) // filter name -> count

	for _, asset := range assets {
		reason := checkConditions(asset, profile)
		if reason == "" {
			passed = append(passed, asset)
		} else {
			filtered[reason]++
		}
	}

	s.logger.WithFields(map[string]interface{}{
		"catalog_version": catalog.Version(),
		"total_input":     len(assets),
		"passed":          len(passed),
		"filtered_out":    len(assets) - len(passed),
		"filters":         filtered,
	}).Debug("Screening completed")

	return passed
}

// checkConditions returns the first failed filter name, or "" if the asset passes.
// MaxVolatility does not gate eligibility.
func checkConditions(asset contracts.AssetRecord, profile contracts.RiskProfile) string {
	if asset.MarketCapRank > profile.MinMarketCapRank {
		return "market_cap_rank"
	}

	if asset.RegulatoryClarity < profile.MinRegulatoryClarity {
		return "regulatory_clarity"
	}

	if !profile.Prefers(asset.RiskLevel) {
		return "risk_level"
	}

	return ""
}
