package report

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/wonny/cryptoadvisor/internal/advisor"
	"github.com/wonny/cryptoadvisor/internal/catalog"
	"github.com/wonny/cryptoadvisor/internal/contracts"
	"github.com/wonny/cryptoadvisor/pkg/logger"
)

func newAdvisor(t *testing.T) *advisor.Advisor {
	t.Helper()
	snap, err := catalog.Reference()
	require.NoError(t, err)
	store, err := catalog.NewStore(snap)
	require.NoError(t, err)
	return advisor.New(store, logger.Nop())
}

// headings parses markdown and returns every heading text by level
func headings(t *testing.T, md string) map[int][]string {
	t.Helper()

	source := []byte(md)
	root := goldmark.DefaultParser().Parse(text.NewReader(source))

	out := make(map[int][]string)
	err := ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok {
			var sb strings.Builder
			for i := 0; i < h.Lines().Len(); i++ {
				line := h.Lines().At(i)
				sb.Write(line.Value(source))
			}
			out[h.Level] = append(out[h.Level], sb.String())
		}
		return ast.WalkContinue, nil
	})
	require.NoError(t, err)
	return out
}

func TestVerdictFor(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{10, "Strong Buy"},
		{8, "Strong Buy"},
		{7, "Buy"},
		{6, "Buy"},
		{5, "Hold/Cautious"},
		{4, "Hold/Cautious"},
		{3, "Avoid"},
		{0, "Avoid"},
	}

	for _, tt := range tests {
		v := VerdictFor(tt.score, "Coin")
		assert.Equal(t, tt.want, v.Label, "score %d", tt.score)
		assert.Contains(t, v.Summary, "Coin")
	}
}

func TestReasons(t *testing.T) {
	snap, err := catalog.Reference()
	require.NoError(t, err)

	btc, _ := snap.Get("BTC")
	assert.Equal(t, []string{
		"Top 5 market cap gives stability and liquidity",
		"Strong 30-day performance signals positive momentum",
		"Mature, battle-tested technology",
		"Clear regulatory status lowers compliance risk",
	}, Reasons(btc))

	ltc, _ := snap.Get("LTC")
	assert.Equal(t, []string{
		"Established market position with good liquidity",
		"Positive price trend over the past month",
		"Mature, battle-tested technology",
		"Clear regulatory status lowers compliance risk",
	}, Reasons(ltc))

	assert.Empty(t, Reasons(contracts.AssetRecord{MarketCapRank: 40, PriceChange30d: -5, SustainabilityScore: 2}))
}

func TestSustainabilityRationale(t *testing.T) {
	assert.Contains(t, SustainabilityRationale("Proof of Stake"), "Proof of Stake")
	assert.Contains(t, SustainabilityRationale("Proof of History + Proof of Stake"), "throughput")
	assert.Contains(t, SustainabilityRationale("Stellar Consensus Protocol"), "settlement")
	assert.Equal(t, "Designed with energy efficiency in mind", SustainabilityRationale("Oracle Network"))
	// only an exact match counts as plain Proof of Stake
	assert.Equal(t, "Designed with energy efficiency in mind", SustainabilityRationale("Nominated Proof of Stake"))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "$43,500.00", Money(decimal.NewFromInt(43500)))
	assert.Equal(t, "$0.52", Money(decimal.RequireFromString("0.52")))
	assert.Equal(t, "$850,000,000,000", WholeMoney(decimal.NewFromInt(850_000_000_000)))
	assert.Equal(t, "$850B", ShortMoney(decimal.NewFromInt(850_000_000_000)))
	assert.Equal(t, "$8.5B", ShortMoney(decimal.NewFromInt(8_500_000_000)))
	assert.Equal(t, "+15.8%", Percent(15.8))
	assert.Equal(t, "-3.0%", Percent(-3))
	assert.Equal(t, "9/10", OutOfTen(9))
}

func TestRecommendation(t *testing.T) {
	a := newAdvisor(t)

	rec, err := a.Recommend("medium")
	require.NoError(t, err)

	md := Recommendation(rec)
	h := headings(t, md)

	assert.Equal(t, []string{"Investment Recommendations for Medium Risk Tolerance", "💼 Suggested Portfolio Allocation"}, h[2])
	assert.Equal(t, []string{
		"1. Ethereum (ETH)",
		"2. Bitcoin (BTC)",
		"3. Cardano (ADA)",
		"4. Chainlink (LINK)",
		"5. Polkadot (DOT)",
	}, h[3])

	assert.Contains(t, md, "**Investment Score: 10/10**")
	assert.Contains(t, md, "**Balanced Portfolio (Medium Risk):**")
	assert.Contains(t, md, "- **Ethereum (ETH)**: 30%")
	assert.Contains(t, md, "- **Polkadot (DOT)**: 10%")
	assert.NotContains(t, md, "weights total")
	assert.True(t, strings.HasSuffix(md, Disclaimer+"\n"))
}

func TestRecommendation_PartialAllocationNote(t *testing.T) {
	a := newAdvisor(t)

	rec, err := a.Recommend("low")
	require.NoError(t, err)

	md := Recommendation(rec)
	assert.Contains(t, md, "**Conservative Portfolio (Low Risk):**")
	assert.Contains(t, md, "- **Cardano (ADA)**: 40%")
	assert.Contains(t, md, "- **Litecoin (LTC)**: 15%")
	assert.Contains(t, md, "weights total 85%")
}

func TestAnalysis(t *testing.T) {
	a := newAdvisor(t)

	an, err := a.Analyze("BTC")
	require.NoError(t, err)

	md := Analysis(an)
	h := headings(t, md)

	assert.Equal(t, []string{"Bitcoin (BTC) Analysis"}, h[1])
	assert.Contains(t, h[2], "🎯 Investment Verdict (Score: 9/10)")
	assert.Contains(t, md, "- **Price**: $43,500.00")
	assert.Contains(t, md, "- **Market Cap**: $850,000,000,000")
	assert.Contains(t, md, "- Digital Gold")
	assert.Contains(t, md, "**Strong Buy** - Bitcoin")
	assert.Contains(t, md, "| **Total** (capped at 10) | **9** |")
}

func TestMarket(t *testing.T) {
	a := newAdvisor(t)

	md := Market(a.MarketSummary())

	assert.Contains(t, md, "- **Solana**: +28.7%")
	assert.Contains(t, md, "- **Large Cap (>$50B)**: 2 assets")
	assert.Contains(t, md, "- **Mid Cap ($10B-$50B)**: 3 assets")
	assert.Contains(t, md, "- **Small Cap (<$10B)**: 5 assets")
	assert.Contains(t, md, "**8 assets** score 7+/10")
	// first three sustainable assets in catalog order
	assert.Contains(t, md, "- Ethereum: 8/10 (Proof of Stake)\n- Cardano: 9/10 (Proof of Stake)\n- Solana: 7/10")
}

func TestSustainability(t *testing.T) {
	a := newAdvisor(t)

	md := Sustainability(a.SustainabilityReport())
	h := headings(t, md)

	require.Len(t, h[2], 9)
	assert.Equal(t, "Cardano (ADA)", h[2][0])
	assert.Equal(t, "Chainlink (LINK)", h[2][7])
	assert.Equal(t, "🌍 Why Sustainability Matters", h[2][8])
}

func TestAssetList(t *testing.T) {
	snap, err := catalog.Reference()
	require.NoError(t, err)

	md := AssetList("Catalog", snap.Assets())
	assert.Contains(t, md, "| 1 | BTC | Bitcoin | $43,500.00 | $850B | +15.8% | Medium-High | 3/10 |")
	assert.Equal(t, 10+3, strings.Count(md, "\n")-1)
}

func TestEducation(t *testing.T) {
	assert.Contains(t, headings(t, Education(TopicBitcoin))[1][0], "Bitcoin")
	assert.Contains(t, headings(t, Education(TopicEthereum))[1][0], "Ethereum")
	assert.Contains(t, headings(t, Education(TopicRisk))[1][0], "Risks")
	assert.Equal(t, Education(TopicGeneral), Education("astrology"))
	assert.Contains(t, Help(), "What is Bitcoin?")
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatMarkdown, false},
		{"md", FormatMarkdown, false},
		{"Markdown", FormatMarkdown, false},
		{"terminal", FormatTerminal, false},
		{"html", FormatHTML, false},
		{"json", FormatJSON, false},
		{"pdf", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestRender(t *testing.T) {
	md := "# Title\n\n| A | B |\n|---|---|\n| 1 | 2 |\n"

	out, err := Render(md, FormatMarkdown)
	require.NoError(t, err)
	assert.Equal(t, md, out)

	html, err := Render(md, FormatHTML)
	require.NoError(t, err)
	assert.Contains(t, html, "<h1>Title</h1>")
	assert.Contains(t, html, "<table>")

	term, err := ToTerminal(md, "notty")
	require.NoError(t, err)
	assert.Contains(t, term, "Title")

	_, err = Render(md, FormatJSON)
	assert.Error(t, err)
}
