package intent

import (
	"strings"

	"github.com/wonny/cryptoadvisor/internal/contracts"
	"github.com/wonny/cryptoadvisor/internal/report"
)

// Kind is the category a question was routed to
type Kind string

// Intent kinds, in matching priority order
const (
	KindEducation      Kind = "education"
	KindRecommendation Kind = "recommendation"
	KindAnalysis       Kind = "analysis"
	KindMarket         Kind = "market"
	KindSustainability Kind = "sustainability"
	KindHelp           Kind = "help"
)

// Intent is the routed request with whatever parameter the keywords supplied
type Intent struct {
	Kind      Kind                `json:"kind"`
	Topic     report.Topic        `json:"topic,omitempty"`
	Tolerance contracts.Tolerance `json:"tolerance,omitempty"`
	Symbol    string              `json:"symbol,omitempty"`
}

var (
	educationWords      = []string{"what is", "explain", "help", "learn", "beginner"}
	recommendationWords = []string{"recommend", "invest", "buy", "portfolio", "suggestion"}
	lowRiskWords        = []string{"conservative", "safe", "low risk", "careful"}
	highRiskWords       = []string{"aggressive", "high risk", "risky"}
	marketWords         = []string{"market", "trend", "analysis", "performance"}
	sustainabilityWords = []string{"green", "sustainable", "energy", "environment", "eco"}
)

// assetNames maps names and tickers to catalog symbols, checked in order
var assetNames = []struct {
	word   string
	symbol string
}{
	{"bitcoin", "BTC"}, {"btc", "BTC"},
	{"ethereum", "ETH"}, {"eth", "ETH"},
	{"cardano", "ADA"}, {"ada", "ADA"},
	{"solana", "SOL"}, {"sol", "SOL"},
	{"polygon", "MATIC"}, {"matic", "MATIC"},
	{"chainlink", "LINK"}, {"link", "LINK"},
	{"polkadot", "DOT"}, {"dot", "DOT"},
	{"litecoin", "LTC"}, {"ltc", "LTC"},
	{"avalanche", "AVAX"}, {"avax", "AVAX"},
	{"stellar", "XLM"}, {"xlm", "XLM"},
}

// Route classifies a free-text question by substring keyword matching.
// The first matching category wins; nothing matching means help.
func Route(question string) Intent {
	q := strings.ToLower(question)

	switch {
	case containsAny(q, educationWords):
		return Intent{Kind: KindEducation, Topic: educationTopic(q)}

	case containsAny(q, recommendationWords):
		return Intent{Kind: KindRecommendation, Tolerance: toleranceFrom(q)}

	case symbolFrom(q) != "":
		return Intent{Kind: KindAnalysis, Symbol: symbolFrom(q)}

	case containsAny(q, marketWords):
		return Intent{Kind: KindMarket}

	case containsAny(q, sustainabilityWords):
		return Intent{Kind: KindSustainability}

	default:
		return Intent{Kind: KindHelp}
	}
}

func educationTopic(q string) report.Topic {
	switch {
	case strings.Contains(q, "bitcoin") || strings.Contains(q, "btc"):
		return report.TopicBitcoin
	case strings.Contains(q, "ethereum") || strings.Contains(q, "eth"):
		return report.TopicEthereum
	case strings.Contains(q, "risk"):
		return report.TopicRisk
	default:
		return report.TopicGeneral
	}
}

func toleranceFrom(q string) contracts.Tolerance {
	switch {
	case containsAny(q, lowRiskWords):
		return contracts.ToleranceLow
	case containsAny(q, highRiskWords):
		return contracts.ToleranceHigh
	default:
		return contracts.ToleranceMedium
	}
}

func symbolFrom(q string) string {
	for _, n := range assetNames {
		if strings.Contains(q, n.word) {
			return n.symbol
		}
	}
	return ""
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
