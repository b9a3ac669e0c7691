package contracts

// Catalog is a read-only, ordered snapshot of asset records
// ⭐ SSOT: 카탈로그 조회 인터페이스
type Catalog interface {
	// Assets returns every record in insertion order
	Assets() []AssetRecord
	// Get looks up one record by symbol
	Get(symbol string) (AssetRecord, bool)
	// Version identifies the snapshot
	Version() string
}

// EligibilityFilter selects assets admissible under a profile
// ⭐ SSOT: 적격성 필터 인터페이스
type EligibilityFilter interface {
	Select(catalog Catalog, profile RiskProfile) []AssetRecord
}

// Ranker orders eligible assets by score
// ⭐ SSOT: 랭킹 인터페이스
type Ranker interface {
	Rank(eligible []AssetRecord, tolerance Tolerance) []RankedAsset
}

// AllocationPlanner maps top ranked assets to fixed percentages
// ⭐ SSOT: 비중 배분 인터페이스
type AllocationPlanner interface {
	Allocate(top []RankedAsset, tolerance Tolerance) Allocation
}
