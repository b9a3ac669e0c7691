package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/cryptoadvisor/internal/catalog"
	"github.com/wonny/cryptoadvisor/internal/contracts"
)

// run executes the root command with args and returns stdout
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	t.Setenv("CATALOG_SOURCE", "embedded")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("LOG_LEVEL", "error")

	// flags are package globals; reset between runs
	outputFormat = "markdown"
	catalogSource = ""
	catalogPath = ""
	verbose = false
	tolerance = "medium"
	catalogView = viewAll
	seedFrom = ""

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRecommendCommand_JSON(t *testing.T) {
	out, err := run(t, "recommend", "--tolerance", "low", "--format", "json")
	require.NoError(t, err)

	var rec contracts.Recommendation
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, contracts.ToleranceLow, rec.Tolerance)

	symbols := make([]string, 0, len(rec.Top))
	for _, ra := range rec.Top {
		symbols = append(symbols, ra.Symbol)
	}
	assert.Equal(t, []string{"ADA", "LINK", "LTC"}, symbols)
	assert.Equal(t, 85, rec.Allocation.TotalPercent())
}

func TestRecommendCommand_Markdown(t *testing.T) {
	out, err := run(t, "recommend", "-t", "high")
	require.NoError(t, err)
	assert.Contains(t, out, "## Investment Recommendations for High Risk Tolerance")
	assert.Contains(t, out, "**Aggressive Portfolio (High Risk):**")
}

func TestAnalyzeCommand(t *testing.T) {
	out, err := run(t, "analyze", "btc")
	require.NoError(t, err)
	assert.Contains(t, out, "# Bitcoin (BTC) Analysis")
	assert.Contains(t, out, "(Score: 9/10)")

	out, err = run(t, "analyze", "doge")
	require.NoError(t, err)
	assert.Contains(t, out, "no information about DOGE")

	_, err = run(t, "analyze")
	assert.Error(t, err)
}

func TestMarketCommands(t *testing.T) {
	out, err := run(t, "market", "--format", "json")
	require.NoError(t, err)

	var sum contracts.MarketSummary
	require.NoError(t, json.Unmarshal([]byte(out), &sum))
	assert.Equal(t, contracts.CapTierCounts{Large: 2, Mid: 3, Small: 5}, sum.CapTiers)

	out, err = run(t, "sustainability")
	require.NoError(t, err)
	assert.Contains(t, out, "# 🌱 Sustainable Cryptocurrency Analysis")
}

func TestAskCommand(t *testing.T) {
	out, err := run(t, "ask", "recommend", "something", "safe", "--format", "json")
	require.NoError(t, err)

	var res askResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, contracts.ToleranceLow, res.Intent.Tolerance)
	assert.Contains(t, res.Markdown, "Low Risk Tolerance")
}

func TestCatalogList(t *testing.T) {
	out, err := run(t, "catalog", "list", "--view", "low-risk", "--format", "json")
	require.NoError(t, err)

	var assets []contracts.AssetRecord
	require.NoError(t, json.Unmarshal([]byte(out), &assets))
	require.Len(t, assets, 3)
	assert.Equal(t, "ADA", assets[0].Symbol)

	_, err = run(t, "catalog", "list", "--view", "moon")
	assert.Error(t, err)
}

func TestCatalogValidate(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "good.yaml")
	require.NoError(t, os.WriteFile(good, catalog.ReferenceYAML(), 0o644))

	out, err := run(t, "catalog", "validate", good, "--format", "json")
	require.NoError(t, err)
	var res validationResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.True(t, res.Valid)
	assert.Equal(t, 10, res.Assets)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("assets: []\n"), 0o644))

	out, err = run(t, "catalog", "validate", bad)
	assert.Error(t, err)
	assert.Contains(t, out, "is invalid")
	assert.Contains(t, out, "catalog is empty")
}

func TestCatalogFlagUsesFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, catalog.ReferenceYAML(), 0o644))

	out, err := run(t, "recommend", "--catalog", path, "--format", "json")
	require.NoError(t, err)

	var rec contracts.Recommendation
	require.NoError(t, json.Unmarshal([]byte(out), &rec))
	assert.Equal(t, "ETH", rec.Top[0].Symbol)

	_, err = run(t, "recommend", "--catalog", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestHTTPCatalogSource(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/yaml")
		w.Write(catalog.ReferenceYAML())
	}))
	defer server.Close()

	t.Setenv("CATALOG_URL", server.URL)

	out, err := run(t, "catalog", "list", "--source", "http", "--format", "json")
	require.NoError(t, err)

	var assets []contracts.AssetRecord
	require.NoError(t, json.Unmarshal([]byte(out), &assets))
	assert.Len(t, assets, 10)
}

func TestUnknownFormat(t *testing.T) {
	_, err := run(t, "market", "--format", "pdf")
	assert.Error(t, err)
}
