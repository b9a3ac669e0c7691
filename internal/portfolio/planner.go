package portfolio

import (
	"github.com/wonny/cryptoadvisor/internal/contracts"
	"github.com/wonny/cryptoadvisor/pkg/logger"
)

// Planner maps the top ranked assets to fixed percentage weights
// ⭐ SSOT: 포트폴리오 배분 로직은 여기서만
type Planner struct {
	logger *logger.Logger
}

// NewPlanner creates a new allocation planner
func NewPlanner(log *logger.Logger) *Planner {
	return &Planner{logger: log}
}

// SelectTop returns the first min(n, len(ranked)) entries
func SelectTop(ranked []contracts.RankedAsset, n int) []contracts.RankedAsset {
	if n > len(ranked) {
		n = len(ranked)
	}
	if n < 0 {
		n = 0
	}
	out := make([]contracts.RankedAsset, n)
	copy(out, ranked[:n])
	return out
}

// Allocate assigns the tier's percentages positionally.
// With fewer than five assets only the matching prefix is emitted and
// the total is left below 100 (no renormalization).
func (p *Planner) Allocate(top []contracts.RankedAsset, tol contracts.Tolerance) contracts.Allocation {
	weights := WeightsFor(tol)
	top = SelectTop(top, MaxPositions)

	alloc := contracts.Allocation{
		Tolerance: tol,
		Lines:     make([]contracts.AllocationLine, 0, len(top)),
	}

	for i, ra := range top {
		alloc.Lines = append(alloc.Lines, contracts.AllocationLine{
			Symbol:  ra.Symbol,
			Name:    ra.Asset.Name,
			Percent: weights[i],
		})
	}

	fields := map[string]interface{}{
		"tolerance":     tol,
		"positions":     alloc.Count(),
		"total_percent": alloc.TotalPercent(),
	}
	if alloc.Count() < MaxPositions {
		p.logger.WithFields(fields).Debug("Allocation below full size, percentages not renormalized")
	} else {
		p.logger.WithFields(fields).Debug("Allocation completed")
	}

	return alloc
}
