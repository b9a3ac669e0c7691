package contracts

// Recommendation is the result of one recommend call
type Recommendation struct {
	Tolerance      Tolerance     `json:"tolerance"`
	Profile        RiskProfile   `json:"profile"`
	Ranked         []RankedAsset `json:"ranked"` // every eligible asset
	Top            []RankedAsset `json:"top"`    // first min(5, len(Ranked))
	Allocation     Allocation    `json:"allocation"`
	CatalogVersion string        `json:"catalog_version"`
}

// AssetAnalysis is the single-asset report, always scored as medium tolerance
type AssetAnalysis struct {
	Asset     AssetRecord    `json:"asset"`
	Score     int            `json:"score"`
	Breakdown ScoreBreakdown `json:"breakdown"`
	Tolerance Tolerance      `json:"tolerance"`
}

// AssetEntry pairs a symbol with its record for ordered listings
type AssetEntry struct {
	Symbol string      `json:"symbol"`
	Asset  AssetRecord `json:"asset"`
}

// CapTierCounts counts catalog assets per market-cap tier
type CapTierCounts struct {
	Large int `json:"large"` // > 50B
	Mid   int `json:"mid"`   // 10B ~ 50B
	Small int `json:"small"` // < 10B
}

// Total returns the number of assets counted
func (c CapTierCounts) Total() int {
	return c.Large + c.Mid + c.Small
}

// MarketSummary is the catalog-wide overview
type MarketSummary struct {
	TopPerformers  []AssetEntry  `json:"top_performers"`
	CapTiers       CapTierCounts `json:"cap_tiers"`
	Sustainable    []AssetEntry  `json:"sustainable"` // sustainability >= 7, catalog order
	CatalogVersion string        `json:"catalog_version"`
}
