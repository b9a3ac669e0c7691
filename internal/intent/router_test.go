package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wonny/cryptoadvisor/internal/contracts"
	"github.com/wonny/cryptoadvisor/internal/report"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name     string
		question string
		want     Intent
	}{
		{"education bitcoin", "What is Bitcoin?", Intent{Kind: KindEducation, Topic: report.TopicBitcoin}},
		{"education ethereum", "Explain ETH to me", Intent{Kind: KindEducation, Topic: report.TopicEthereum}},
		{"education risk", "I am a beginner, what about risk?", Intent{Kind: KindEducation, Topic: report.TopicRisk}},
		{"education general", "help me learn", Intent{Kind: KindEducation, Topic: report.TopicGeneral}},
		{"recommend low", "Recommend something safe", Intent{Kind: KindRecommendation, Tolerance: contracts.ToleranceLow}},
		{"recommend high", "I want an aggressive portfolio", Intent{Kind: KindRecommendation, Tolerance: contracts.ToleranceHigh}},
		{"recommend medium", "What should I buy", Intent{Kind: KindRecommendation, Tolerance: contracts.ToleranceMedium}},
		{"analysis name", "Tell me about Cardano", Intent{Kind: KindAnalysis, Symbol: "ADA"}},
		{"analysis ticker", "avax?", Intent{Kind: KindAnalysis, Symbol: "AVAX"}},
		{"market", "Show the market trend", Intent{Kind: KindMarket}},
		{"sustainability", "Which coins are green?", Intent{Kind: KindSustainability}},
		{"fallback", "hello there", Intent{Kind: KindHelp}},
		{"empty", "", Intent{Kind: KindHelp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Route(tt.question))
		})
	}
}

func TestRoute_Precedence(t *testing.T) {
	// education words beat everything else
	assert.Equal(t, KindEducation, Route("explain how to invest in bitcoin").Kind)

	// recommendation beats asset names
	got := Route("should I invest in solana, risky or not")
	assert.Equal(t, KindRecommendation, got.Kind)
	assert.Equal(t, contracts.ToleranceHigh, got.Tolerance)

	// low wording is checked before high wording
	assert.Equal(t, contracts.ToleranceLow, Route("buy safe, not high risk").Tolerance)

	// asset names beat market words
	assert.Equal(t, Intent{Kind: KindAnalysis, Symbol: "BTC"}, Route("bitcoin market analysis"))

	// market beats sustainability
	assert.Equal(t, KindMarket, Route("green market").Kind)
}

func TestRoute_SubstringMatching(t *testing.T) {
	// tickers match inside other words, as substring matching implies
	assert.Equal(t, Intent{Kind: KindAnalysis, Symbol: "DOT"}, Route("anecdote"))
	assert.Equal(t, Intent{Kind: KindSustainability}, Route("ECO friendly"))
}
