package advisor

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/wonny/cryptoadvisor/internal/catalog"
	"github.com/wonny/cryptoadvisor/internal/contracts"
)

// Market summary thresholds
var (
	LargeCapMin = decimal.New(50, 9) // > 50B
	MidCapMin   = decimal.New(10, 9) // >= 10B
)

// TopPerformerCount is the size of the 30d performance list
const TopPerformerCount = 5

// MarketSummary derives performers, cap tiers and the sustainable list from the catalog
func (a *Advisor) MarketSummary() contracts.MarketSummary {
	snap := a.catalogs.Catalog()
	assets := snap.Assets()

	performers := make([]contracts.AssetRecord, len(assets))
	copy(performers, assets)
	sort.SliceStable(performers, func(i, j int) bool {
		return performers[i].PriceChange30d > performers[j].PriceChange30d
	})
	if len(performers) > TopPerformerCount {
		performers = performers[:TopPerformerCount]
	}

	sustainable := make([]contracts.AssetRecord, 0)
	for _, asset := range assets {
		if asset.SustainabilityScore >= catalog.SustainableScoreMin {
			sustainable = append(sustainable, asset)
		}
	}

	return contracts.MarketSummary{
		TopPerformers:  entries(performers),
		CapTiers:       CountCapTiers(assets),
		Sustainable:    entries(sustainable),
		CatalogVersion: snap.Version(),
	}
}

// SustainabilityReport lists assets scoring >= 7, highest first, ties in catalog order
func (a *Advisor) SustainabilityReport() []contracts.AssetEntry {
	assets := a.catalogs.Catalog().Assets()

	report := make([]contracts.AssetRecord, 0, len(assets))
	for _, asset := range assets {
		if asset.SustainabilityScore >= catalog.SustainableScoreMin {
			report = append(report, asset)
		}
	}

	sort.SliceStable(report, func(i, j int) bool {
		return report[i].SustainabilityScore > report[j].SustainabilityScore
	})

	return entries(report)
}

// CountCapTiers buckets assets by market cap: large > 50B, mid in [10B, 50B], small < 10B
func CountCapTiers(assets []contracts.AssetRecord) contracts.CapTierCounts {
	var counts contracts.CapTierCounts
	for _, asset := range assets {
		switch {
		case asset.MarketCap.GreaterThan(LargeCapMin):
			counts.Large++
		case asset.MarketCap.GreaterThanOrEqual(MidCapMin):
			counts.Mid++
		default:
			counts.Small++
		}
	}
	return counts
}

func entries(records []contracts.AssetRecord) []contracts.AssetEntry {
	out := make([]contracts.AssetEntry, len(records))
	for i, r := range records {
		out[i] = contracts.AssetEntry{Symbol: r.Symbol, Asset: r}
	}
	return out
}
