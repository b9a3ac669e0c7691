package contracts

// RankedAsset represents an eligible asset with its score, passed from Ranker to Planner
// ⭐ SSOT: Ranker → Planner 랭킹 결과 전달
type RankedAsset struct {
	Rank   int         `json:"rank"` // 1-based ranking
	Symbol string      `json:"symbol"`
	Score  int         `json:"score"` // 0 ~ 10
	Asset  AssetRecord `json:"asset"`
}

// IsTopRanked checks if the asset is in top N ranks
func (r *RankedAsset) IsTopRanked(n int) bool {
	return r.Rank <= n && r.Rank > 0
}

// ScoreBreakdown lists every additive term of an asset score
type ScoreBreakdown struct {
	MarketCap      int `json:"market_cap"`
	Momentum       int `json:"momentum"`
	Sustainability int `json:"sustainability"`
	Technology     int `json:"technology"`
	Adoption       int `json:"adoption"`
	Regulatory     int `json:"regulatory"`
	Tolerance      int `json:"tolerance"`

	Raw   int `json:"raw"`   // sum before clamping
	Total int `json:"total"` // min(Raw, 10)
}
