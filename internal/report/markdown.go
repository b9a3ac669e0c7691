package report

import (
	"fmt"
	"strings"

	"github.com/wonny/cryptoadvisor/internal/contracts"
)

// Recommendation renders the top assets, their reasoning and the allocation
func Recommendation(rec *contracts.Recommendation) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## Investment Recommendations for %s Risk Tolerance\n\n", titleCase(string(rec.Tolerance)))

	for i, ra := range rec.Top {
		a := ra.Asset
		fmt.Fprintf(&b, "### %d. %s (%s)\n", i+1, a.Name, a.Symbol)
		fmt.Fprintf(&b, "**Investment Score: %s**\n\n", OutOfTen(ra.Score))
		fmt.Fprintf(&b, "- 📊 **Market Cap Rank**: #%d\n", a.MarketCapRank)
		fmt.Fprintf(&b, "- 💰 **Current Price**: %s\n", Money(a.PriceUSD))
		fmt.Fprintf(&b, "- 📈 **30-day Performance**: %s\n", Percent(a.PriceChange30d))
		fmt.Fprintf(&b, "- ⚡ **Energy Efficiency**: %s\n", a.EnergyConsumption)
		fmt.Fprintf(&b, "- 🛡️ **Risk Level**: %s\n\n", a.RiskLevel)

		fmt.Fprintf(&b, "**Why %s?**\n\n", a.Name)
		reasons := Reasons(a)
		if len(reasons) == 0 {
			b.WriteString("Solid fundamentals across several metrics\n")
		}
		for _, r := range reasons {
			fmt.Fprintf(&b, "- %s\n", r)
		}
		b.WriteString("\n")
	}

	b.WriteString(Allocation(rec.Allocation))
	b.WriteString("\n")
	b.WriteString(Disclaimer)
	b.WriteString("\n")

	return b.String()
}

// Allocation renders the percentage split with its tier wording and guidelines
func Allocation(alloc contracts.Allocation) string {
	var b strings.Builder
	style := StyleFor(alloc.Tolerance)

	b.WriteString("## 💼 Suggested Portfolio Allocation\n\n")
	fmt.Fprintf(&b, "**%s:**\n\n", style.Title)
	for _, n := range style.Notes {
		fmt.Fprintf(&b, "- %s\n", n)
	}
	b.WriteString("\n")

	for _, line := range alloc.Lines {
		fmt.Fprintf(&b, "- **%s (%s)**: %d%%\n", line.Name, line.Symbol, line.Percent)
	}
	if total := alloc.TotalPercent(); alloc.Count() > 0 && total != 100 {
		fmt.Fprintf(&b, "\n_Only %d assets qualified; the listed weights total %d%%._\n", alloc.Count(), total)
	}

	b.WriteString("\n**Portfolio Guidelines:**\n\n")
	for _, g := range Guidelines {
		fmt.Fprintf(&b, "- %s\n", g)
	}

	return b.String()
}

// Analysis renders the single-asset report
func Analysis(an *contracts.AssetAnalysis) string {
	var b strings.Builder
	a := an.Asset

	fmt.Fprintf(&b, "# %s (%s) Analysis\n\n", a.Name, a.Symbol)

	b.WriteString("## 📊 Current Metrics\n\n")
	fmt.Fprintf(&b, "- **Price**: %s\n", Money(a.PriceUSD))
	fmt.Fprintf(&b, "- **Market Cap Rank**: #%d\n", a.MarketCapRank)
	fmt.Fprintf(&b, "- **Market Cap**: %s\n", WholeMoney(a.MarketCap))
	fmt.Fprintf(&b, "- **24h Volume**: %s\n\n", WholeMoney(a.Volume24h))

	b.WriteString("## 📈 Performance\n\n")
	fmt.Fprintf(&b, "- **24h Change**: %s\n", Percent(a.PriceChange24h))
	fmt.Fprintf(&b, "- **7d Change**: %s\n", Percent(a.PriceChange7d))
	fmt.Fprintf(&b, "- **30d Change**: %s\n\n", Percent(a.PriceChange30d))

	b.WriteString("## 🌱 Sustainability & Technology\n\n")
	fmt.Fprintf(&b, "- **Energy Consumption**: %s\n", a.EnergyConsumption)
	fmt.Fprintf(&b, "- **Consensus Mechanism**: %s\n", a.ConsensusMechanism)
	fmt.Fprintf(&b, "- **Sustainability Score**: %s\n", OutOfTen(a.SustainabilityScore))
	fmt.Fprintf(&b, "- **Technology Maturity**: %s\n\n", OutOfTen(a.TechnologyMaturity))

	b.WriteString("## ⚠️ Risk Assessment\n\n")
	fmt.Fprintf(&b, "- **Overall Risk Level**: %s\n", a.RiskLevel)
	fmt.Fprintf(&b, "- **Volatility**: %s\n", a.Volatility)
	fmt.Fprintf(&b, "- **Regulatory Clarity**: %s\n", OutOfTen(a.RegulatoryClarity))
	fmt.Fprintf(&b, "- **Adoption Score**: %s\n\n", OutOfTen(a.AdoptionScore))

	if len(a.UseCases) > 0 {
		b.WriteString("## 🎯 Primary Use Cases\n\n")
		for _, uc := range a.UseCases {
			fmt.Fprintf(&b, "- %s\n", uc)
		}
		b.WriteString("\n")
	}

	bd := an.Breakdown
	b.WriteString("## 🧮 Score Breakdown\n\n")
	b.WriteString("| Factor | Points |\n|---|---|\n")
	fmt.Fprintf(&b, "| Market cap tier | %d |\n", bd.MarketCap)
	fmt.Fprintf(&b, "| 30-day momentum | %d |\n", bd.Momentum)
	fmt.Fprintf(&b, "| Sustainability | %d |\n", bd.Sustainability)
	fmt.Fprintf(&b, "| Technology maturity | %d |\n", bd.Technology)
	fmt.Fprintf(&b, "| Adoption | %d |\n", bd.Adoption)
	fmt.Fprintf(&b, "| Regulatory clarity | %d |\n", bd.Regulatory)
	fmt.Fprintf(&b, "| Risk tolerance | %d |\n", bd.Tolerance)
	fmt.Fprintf(&b, "| **Total** (capped at 10) | **%d** |\n\n", bd.Total)

	v := VerdictFor(an.Score, a.Name)
	fmt.Fprintf(&b, "## 🎯 Investment Verdict (Score: %s)\n\n", OutOfTen(an.Score))
	fmt.Fprintf(&b, "**%s** - %s\n", v.Label, v.Summary)

	return b.String()
}

// Market renders the catalog-wide overview
func Market(sum contracts.MarketSummary) string {
	var b strings.Builder

	b.WriteString("# 📊 Cryptocurrency Market Analysis\n\n")

	b.WriteString("## 🚀 Top Performers (30-day)\n\n")
	for _, e := range sum.TopPerformers {
		fmt.Fprintf(&b, "- **%s**: %s\n", e.Asset.Name, Percent(e.Asset.PriceChange30d))
	}
	b.WriteString("\n")

	b.WriteString("## 💰 Market Cap Analysis\n\n")
	fmt.Fprintf(&b, "- **Large Cap (>$50B)**: %d assets\n", sum.CapTiers.Large)
	fmt.Fprintf(&b, "- **Mid Cap ($10B-$50B)**: %d assets\n", sum.CapTiers.Mid)
	fmt.Fprintf(&b, "- **Small Cap (<$10B)**: %d assets\n\n", sum.CapTiers.Small)

	b.WriteString("## 🌱 Sustainability Trends\n\n")
	fmt.Fprintf(&b, "**%d assets** score 7+/10 on sustainability.\n\n", len(sum.Sustainable))
	if len(sum.Sustainable) > 0 {
		b.WriteString("**Most sustainable options:**\n\n")
		for i, e := range sum.Sustainable {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "- %s: %s (%s)\n", e.Asset.Name, OutOfTen(e.Asset.SustainabilityScore), e.Asset.ConsensusMechanism)
		}
		b.WriteString("\n")
	}

	b.WriteString("## 📈 Market Insights\n\n")
	for _, in := range MarketInsights {
		fmt.Fprintf(&b, "- %s\n", in)
	}

	return b.String()
}

// Sustainability renders the sustainability report entries in the given order
func Sustainability(entries []contracts.AssetEntry) string {
	var b strings.Builder

	b.WriteString("# 🌱 Sustainable Cryptocurrency Analysis\n\n")
	b.WriteString("Environmental impact matters more every year. These are the most sustainable options in the catalog:\n\n")

	for _, e := range entries {
		a := e.Asset
		fmt.Fprintf(&b, "## %s (%s)\n\n", a.Name, e.Symbol)
		fmt.Fprintf(&b, "**Sustainability Score: %s**\n\n", OutOfTen(a.SustainabilityScore))
		fmt.Fprintf(&b, "- **Consensus**: %s\n", a.ConsensusMechanism)
		fmt.Fprintf(&b, "- **Energy Use**: %s\n", a.EnergyConsumption)
		fmt.Fprintf(&b, "- **Market Cap**: %s (rank #%d)\n", ShortMoney(a.MarketCap), a.MarketCapRank)
		fmt.Fprintf(&b, "- **Why It's Sustainable**: %s\n\n", SustainabilityRationale(a.ConsensusMechanism))
	}

	b.WriteString("## 🌍 Why Sustainability Matters\n\n")
	for _, s := range SustainabilityMatters {
		fmt.Fprintf(&b, "- %s\n", s)
	}

	return b.String()
}

// AssetList renders a compact catalog table
func AssetList(title string, assets []contracts.AssetRecord) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("| Rank | Symbol | Name | Price | Market Cap | 30d | Risk | Sustainability |\n")
	b.WriteString("|---|---|---|---|---|---|---|---|\n")
	for _, a := range assets {
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %s | %s | %s | %s |\n",
			a.MarketCapRank, a.Symbol, a.Name, Money(a.PriceUSD), ShortMoney(a.MarketCap),
			Percent(a.PriceChange30d), a.RiskLevel, OutOfTen(a.SustainabilityScore))
	}

	return b.String()
}

// NoSuitableAssets explains an empty eligible set
func NoSuitableAssets(tol contracts.Tolerance) string {
	return fmt.Sprintf("No suitable cryptocurrencies found for a %s risk profile. Please try a different risk level.\n", tol)
}

// UnknownAsset explains a missing symbol
func UnknownAsset(symbol string) string {
	return fmt.Sprintf("Sorry, there is no information about %s. Please try another cryptocurrency.\n", contracts.NormalizeSymbol(symbol))
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
