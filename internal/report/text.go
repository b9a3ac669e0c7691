package report

import (
	"strings"

	"github.com/wonny/cryptoadvisor/internal/contracts"
)

// Disclaimer closes every recommendation
const Disclaimer = "⚠️ **Important**: This output is educational only. Do your own research and never invest more than you can afford to lose."

// Verdict is the investment label derived from a score
type Verdict struct {
	Label   string `json:"label"`
	Summary string `json:"summary"`
}

// VerdictFor maps a 0..10 score to a verdict: >=8, >=6, >=4, else
func VerdictFor(score int, name string) Verdict {
	switch {
	case score >= 8:
		return Verdict{"Strong Buy", name + " scores well on both profitability and sustainability. Suited to long-term holding."}
	case score >= 6:
		return Verdict{"Buy", name + " balances risk and return reasonably. Worth considering for diversification."}
	case score >= 4:
		return Verdict{"Hold/Cautious", name + " sends mixed signals. Better left to investors who understand the risks."}
	default:
		return Verdict{"Avoid", name + " shows weak metrics for a cautious investor. High risk, uncertain return."}
	}
}

// Reasons lists why an asset made the shortlist
func Reasons(a contracts.AssetRecord) []string {
	reasons := make([]string, 0, 5)

	switch {
	case a.MarketCapRank <= 5:
		reasons = append(reasons, "Top 5 market cap gives stability and liquidity")
	case a.MarketCapRank <= 15:
		reasons = append(reasons, "Established market position with good liquidity")
	}

	switch {
	case a.SustainabilityScore >= 8:
		reasons = append(reasons, "Excellent sustainability profile for long-term viability")
	case a.SustainabilityScore >= 6:
		reasons = append(reasons, "Good environmental credentials")
	}

	switch {
	case a.PriceChange30d > 15:
		reasons = append(reasons, "Strong 30-day performance signals positive momentum")
	case a.PriceChange30d > 0:
		reasons = append(reasons, "Positive price trend over the past month")
	}

	if a.TechnologyMaturity >= 8 {
		reasons = append(reasons, "Mature, battle-tested technology")
	}

	if a.RegulatoryClarity >= 7 {
		reasons = append(reasons, "Clear regulatory status lowers compliance risk")
	}

	return reasons
}

// SustainabilityRationale explains an asset's footprint from its consensus mechanism
func SustainabilityRationale(consensus string) string {
	switch {
	case consensus == "Proof of Stake":
		return "Proof of Stake needs a tiny fraction of the energy of Proof of Work mining"
	case strings.Contains(consensus, "Proof of History"):
		return "Consensus design built for throughput and efficiency"
	case consensus == "Stellar Consensus Protocol":
		return "Federated consensus tuned for fast, low-energy settlement"
	default:
		return "Designed with energy efficiency in mind"
	}
}

// PortfolioStyle describes the allocation tier in words
type PortfolioStyle struct {
	Title string
	Notes []string
}

// StyleFor returns the wording for a tolerance tier
func StyleFor(tol contracts.Tolerance) PortfolioStyle {
	switch tol {
	case contracts.ToleranceLow:
		return PortfolioStyle{
			Title: "Conservative Portfolio (Low Risk)",
			Notes: []string{
				"Focus on established, liquid assets",
				"Weight stability and regulatory clarity",
			},
		}
	case contracts.ToleranceHigh:
		return PortfolioStyle{
			Title: "Aggressive Portfolio (High Risk)",
			Notes: []string{
				"Larger weights on growth-oriented assets",
				"Accept higher volatility for higher potential return",
			},
		}
	default:
		return PortfolioStyle{
			Title: "Balanced Portfolio (Medium Risk)",
			Notes: []string{
				"Mix large-cap stability with mid-cap growth",
				"Balance safety against opportunity",
			},
		}
	}
}

// Guidelines are appended under every allocation
var Guidelines = []string{
	"Never invest more than you can afford to lose",
	"Rebalance quarterly or when a weight drifts more than 5%",
	"Keep some cash in reserve",
	"Consider dollar-cost averaging into positions",
}

// MarketInsights are static observations shown in the market overview
var MarketInsights = []string{
	"Proof of Stake networks keep gaining adoption on energy efficiency",
	"Smart contract and DeFi platforms continue to grow",
	"Regulatory clarity is improving for established assets",
	"Institutional adoption supports large-cap stability",
}

// SustainabilityMatters closes the sustainability report
var SustainabilityMatters = []string{
	"**Environmental impact**: efficient consensus uses far less energy",
	"**Regulation**: policy increasingly favors low-footprint technology",
	"**Corporate adoption**: enterprises prefer sustainable chains",
	"**Long-term viability**: lower running costs and regulatory risk",
}
