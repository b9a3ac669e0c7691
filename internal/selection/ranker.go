package selection

import (
	"sort"

	"github.com/wonny/cryptoadvisor/internal/contracts"
	"github.com/wonny/cryptoadvisor/pkg/logger"
)

// Ranker orders eligible assets by score
// ⭐ SSOT: 랭킹 로직은 여기서만
type Ranker struct {
	logger *logger.Logger
}

// NewRanker creates a new ranker
func NewRanker(log *logger.Logger) *Ranker {
	return &Ranker{logger: log}
}

// Rank scores every eligible asset and sorts by score descending.
// Equal scores keep their input order (stable sort).
func (r *Ranker) Rank(eligible []contracts.AssetRecord, tol contracts.Tolerance) []contracts.RankedAsset {
	ranked := make([]contracts.RankedAsset, 0, len(eligible))

	for _, asset := range eligible {
		ranked = append(ranked, contracts.RankedAsset{
			Symbol: asset.Symbol,
			Score:  Score(asset, tol),
			Asset:  asset,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	for i := range ranked {
		ranked[i].Rank = i + 1
	}

	if len(ranked) == 0 {
		r.logger.WithField("tolerance", tol).Debug("Ranking skipped: no eligible assets")
		return ranked
	}

	r.logger.WithFields(map[string]interface{}{
		"tolerance":    tol,
		"total_assets": len(ranked),
		"top_score":    ranked[0].Score,
		"top_symbol":   ranked[0].Symbol,
	}).Debug("Ranking completed")

	return ranked
}
