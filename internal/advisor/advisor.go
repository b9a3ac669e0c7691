package advisor

import (
	"fmt"

	"github.com/wonny/cryptoadvisor/internal/contracts"
	"github.com/wonny/cryptoadvisor/internal/metrics"
	"github.com/wonny/cryptoadvisor/internal/portfolio"
	"github.com/wonny/cryptoadvisor/internal/profile"
	"github.com/wonny/cryptoadvisor/internal/selection"
	"github.com/wonny/cryptoadvisor/pkg/logger"
)

// TopN is how many ranked assets feed the allocation
const TopN = portfolio.MaxPositions

// AnalysisTolerance is the fixed tier used by the single-asset report
const AnalysisTolerance = contracts.ToleranceMedium

// CatalogProvider hands out the snapshot visible to new calls
type CatalogProvider interface {
	Catalog() contracts.Catalog
}

// Advisor coordinates profile lookup, screening, ranking and allocation
// ⭐ SSOT: 추천 파이프라인 조율은 여기서만
type Advisor struct {
	catalogs CatalogProvider
	registry *profile.Registry
	screener contracts.EligibilityFilter
	ranker   contracts.Ranker
	planner  contracts.AllocationPlanner
	logger   *logger.Logger
}

// New creates an advisor with the built-in stages
func New(catalogs CatalogProvider, log *logger.Logger) *Advisor {
	return NewWithStages(
		catalogs,
		profile.NewRegistry(),
		selection.NewScreener(log.Component("screener")),
		selection.NewRanker(log.Component("ranker")),
		portfolio.NewPlanner(log.Component("planner")),
		log.Component("advisor"),
	)
}

// NewWithStages creates an advisor from explicit stage implementations
func NewWithStages(
	catalogs CatalogProvider,
	registry *profile.Registry,
	screener contracts.EligibilityFilter,
	ranker contracts.Ranker,
	planner contracts.AllocationPlanner,
	log *logger.Logger,
) *Advisor {
	return &Advisor{
		catalogs: catalogs,
		registry: registry,
		screener: screener,
		ranker:   ranker,
		planner:  planner,
		logger:   log,
	}
}

// Catalog returns the snapshot new calls would use
func (a *Advisor) Catalog() contracts.Catalog {
	return a.catalogs.Catalog()
}

// Recommend runs tag → profile → eligible → ranked → top 5 → allocation.
// Unknown tags resolve to medium before any stage runs.
func (a *Advisor) Recommend(tag string) (*contracts.Recommendation, error) {
	// one snapshot for the whole call
	catalog := a.catalogs.Catalog()

	tol, prof := a.registry.Resolve(tag)
	if string(tol) != tag {
		metrics.UnknownToleranceTags.Inc()
		a.logger.WithFields(map[string]interface{}{
			"requested": tag,
			"resolved":  tol,
		}).Debug("Unrecognized tolerance tag, using default")
	}

	eligible := a.screener.Select(catalog, prof)
	metrics.EligibleAssets.WithLabelValues(string(tol)).Observe(float64(len(eligible)))

	if len(eligible) == 0 {
		metrics.Recommendations.WithLabelValues(string(tol), "no_suitable_assets").Inc()
		return nil, fmt.Errorf("%w: tolerance %s", ErrNoSuitableAssets, tol)
	}

	ranked := a.ranker.Rank(eligible, tol)
	top := portfolio.SelectTop(ranked, TopN)
	alloc := a.planner.Allocate(top, tol)

	metrics.Recommendations.WithLabelValues(string(tol), "success").Inc()

	a.logger.WithFields(map[string]interface{}{
		"tolerance":       tol,
		"catalog_version": catalog.Version(),
		"eligible":        len(eligible),
		"top":             len(top),
		"total_percent":   alloc.TotalPercent(),
	}).Info("Recommendation completed")

	return &contracts.Recommendation{
		Tolerance:      tol,
		Profile:        prof,
		Ranked:         ranked,
		Top:            top,
		Allocation:     alloc,
		CatalogVersion: catalog.Version(),
	}, nil
}

// Analyze scores one asset with the tolerance fixed to medium
func (a *Advisor) Analyze(symbol string) (*contracts.AssetAnalysis, error) {
	asset, ok := a.catalogs.Catalog().Get(symbol)
	if !ok {
		metrics.Analyses.WithLabelValues("unknown_asset").Inc()
		return nil, fmt.Errorf("%w: %s", ErrUnknownAsset, contracts.NormalizeSymbol(symbol))
	}

	b := selection.Breakdown(asset, AnalysisTolerance)
	metrics.Analyses.WithLabelValues("success").Inc()

	a.logger.WithFields(map[string]interface{}{
		"symbol": asset.Symbol,
		"score":  b.Total,
	}).Debug("Asset analysis completed")

	return &contracts.AssetAnalysis{
		Asset:     asset,
		Score:     b.Total,
		Breakdown: b,
		Tolerance: AnalysisTolerance,
	}, nil
}
