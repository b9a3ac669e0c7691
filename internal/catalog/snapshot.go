package catalog

import (
	"time"

	"github.com/wonny/cryptoadvisor/internal/contracts"
)

// Snapshot is an immutable, ordered set of asset records
// ⭐ SSOT: 카탈로그 스냅샷은 생성 후 변경 불가
type Snapshot struct {
	assets   []contracts.AssetRecord
	index    map[string]int // symbol -> position
	version  string
	loadedAt time.Time
}

// NewSnapshot validates records and freezes them in the given order
func NewSnapshot(records []contracts.AssetRecord, version string) (*Snapshot, error) {
	if err := ValidateRecords(records); err != nil {
		return nil, err
	}

	assets := make([]contracts.AssetRecord, len(records))
	index := make(map[string]int, len(records))
	for i, rec := range records {
		assets[i] = rec.Clone()
		index[rec.Symbol] = i
	}

	return &Snapshot{
		assets:   assets,
		index:    index,
		version:  version,
		loadedAt: time.Now(),
	}, nil
}

// Assets returns a copy of every record in insertion order
func (s *Snapshot) Assets() []contracts.AssetRecord {
	out := make([]contracts.AssetRecord, len(s.assets))
	for i, a := range s.assets {
		out[i] = a.Clone()
	}
	return out
}

// Get returns the record for symbol, matched case-insensitively
func (s *Snapshot) Get(symbol string) (contracts.AssetRecord, bool) {
	i, ok := s.index[contracts.NormalizeSymbol(symbol)]
	if !ok {
		return contracts.AssetRecord{}, false
	}
	return s.assets[i].Clone(), true
}

// Symbols returns the symbols in insertion order
func (s *Snapshot) Symbols() []string {
	out := make([]string, len(s.assets))
	for i, a := range s.assets {
		out[i] = a.Symbol
	}
	return out
}

// Len returns the number of records
func (s *Snapshot) Len() int {
	return len(s.assets)
}

// Version identifies the snapshot
func (s *Snapshot) Version() string {
	return s.version
}

// LoadedAt returns when the snapshot was built
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

// Sustainable returns records with sustainability_score >= 7, catalog order
func (s *Snapshot) Sustainable() []contracts.AssetRecord {
	return s.where(func(a contracts.AssetRecord) bool {
		return a.SustainabilityScore >= SustainableScoreMin
	})
}

// LowRisk returns Medium / Medium-Low risk records ranked within the top 15
func (s *Snapshot) LowRisk() []contracts.AssetRecord {
	return s.where(func(a contracts.AssetRecord) bool {
		riskOK := a.RiskLevel == contracts.RiskMedium || a.RiskLevel == contracts.RiskMediumLow
		return riskOK && a.MarketCapRank <= LowRiskRankMax
	})
}

func (s *Snapshot) where(keep func(contracts.AssetRecord) bool) []contracts.AssetRecord {
	out := make([]contracts.AssetRecord, 0)
	for _, a := range s.assets {
		if keep(a) {
			out = append(out, a.Clone())
		}
	}
	return out
}

// View thresholds
const (
	SustainableScoreMin = 7
	LowRiskRankMax      = 15
)
