package catalog

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/cryptoadvisor/internal/contracts"
)

func record(symbol string, rank int) contracts.AssetRecord {
	return contracts.AssetRecord{
		Symbol:              symbol,
		Name:                symbol + " Coin",
		MarketCapRank:       rank,
		MarketCap:           decimal.NewFromInt(1_000_000_000),
		PriceUSD:            decimal.NewFromFloat(1.5),
		Volume24h:           decimal.NewFromInt(10_000_000),
		EnergyConsumption:   contracts.EnergyLow,
		ConsensusMechanism:  "Proof of Stake",
		SustainabilityScore: 7,
		Volatility:          contracts.VolatilityMedium,
		AdoptionScore:       6,
		TechnologyMaturity:  6,
		RegulatoryClarity:   6,
		UseCases:            []string{"Payments"},
		RiskLevel:           contracts.RiskMedium,
	}
}

func TestReference(t *testing.T) {
	snap, err := Reference()
	require.NoError(t, err)

	assert.Equal(t, "reference-v1-"+Hash(ReferenceYAML()), snap.Version())
	assert.Equal(t, 10, snap.Len())
	assert.Equal(t,
		[]string{"BTC", "ETH", "ADA", "SOL", "MATIC", "LINK", "DOT", "LTC", "AVAX", "XLM"},
		snap.Symbols())

	btc, ok := snap.Get("BTC")
	require.True(t, ok)
	assert.Equal(t, "Bitcoin", btc.Name)
	assert.True(t, btc.MarketCap.Equal(decimal.NewFromInt(850_000_000_000)))
	assert.Equal(t, contracts.RiskMediumHigh, btc.RiskLevel)
	assert.Equal(t, []string{"Store of Value", "Digital Gold", "Payment"}, btc.UseCases)
}

func TestSnapshot_GetCaseInsensitive(t *testing.T) {
	snap, err := Reference()
	require.NoError(t, err)

	for _, sym := range []string{"eth", "Eth", " ETH "} {
		rec, ok := snap.Get(sym)
		require.True(t, ok, sym)
		assert.Equal(t, "ETH", rec.Symbol)
	}

	_, ok := snap.Get("DOGE")
	assert.False(t, ok)
}

func TestSnapshot_RecordsAreCopies(t *testing.T) {
	snap, err := Reference()
	require.NoError(t, err)

	assets := snap.Assets()
	assets[0].Name = "changed"
	assets[0].UseCases[0] = "changed"

	btc, _ := snap.Get("BTC")
	assert.Equal(t, "Bitcoin", btc.Name)
	assert.Equal(t, "Store of Value", btc.UseCases[0])
}

func TestSnapshot_Views(t *testing.T) {
	snap, err := Reference()
	require.NoError(t, err)

	symbols := func(recs []contracts.AssetRecord) []string {
		out := make([]string, len(recs))
		for i, r := range recs {
			out[i] = r.Symbol
		}
		return out
	}

	assert.Equal(t,
		[]string{"ETH", "ADA", "SOL", "MATIC", "LINK", "DOT", "AVAX", "XLM"},
		symbols(snap.Sustainable()))
	assert.Equal(t, []string{"ADA", "LINK", "LTC"}, symbols(snap.LowRisk()))
}

func TestValidateRecords(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func([]contracts.AssetRecord) []contracts.AssetRecord
		field   string
		wantErr bool
	}{
		{
			name:   "valid",
			mutate: func(r []contracts.AssetRecord) []contracts.AssetRecord { return r },
		},
		{
			name: "score out of range",
			mutate: func(r []contracts.AssetRecord) []contracts.AssetRecord {
				r[0].TechnologyMaturity = 11
				return r
			},
			field:   "TechnologyMaturity",
			wantErr: true,
		},
		{
			name: "rank below one",
			mutate: func(r []contracts.AssetRecord) []contracts.AssetRecord {
				r[1].MarketCapRank = 0
				return r
			},
			field:   "MarketCapRank",
			wantErr: true,
		},
		{
			name: "duplicate rank",
			mutate: func(r []contracts.AssetRecord) []contracts.AssetRecord {
				r[1].MarketCapRank = r[0].MarketCapRank
				return r
			},
			field:   "MarketCapRank",
			wantErr: true,
		},
		{
			name: "duplicate symbol",
			mutate: func(r []contracts.AssetRecord) []contracts.AssetRecord {
				r[1].Symbol = r[0].Symbol
				return r
			},
			field:   "Symbol",
			wantErr: true,
		},
		{
			name: "unknown risk level",
			mutate: func(r []contracts.AssetRecord) []contracts.AssetRecord {
				r[0].RiskLevel = "Extreme"
				return r
			},
			field:   "RiskLevel",
			wantErr: true,
		},
		{
			name: "view-only risk level rejected",
			mutate: func(r []contracts.AssetRecord) []contracts.AssetRecord {
				r[0].RiskLevel = contracts.RiskMediumLow
				return r
			},
			field:   "RiskLevel",
			wantErr: true,
		},
		{
			name: "unknown volatility",
			mutate: func(r []contracts.AssetRecord) []contracts.AssetRecord {
				r[0].Volatility = "Wild"
				return r
			},
			field:   "Volatility",
			wantErr: true,
		},
		{
			name: "non-positive market cap",
			mutate: func(r []contracts.AssetRecord) []contracts.AssetRecord {
				r[0].MarketCap = decimal.Zero
				return r
			},
			field:   "MarketCap",
			wantErr: true,
		},
		{
			name: "lower case symbol",
			mutate: func(r []contracts.AssetRecord) []contracts.AssetRecord {
				r[0].Symbol = "aaa"
				return r
			},
			field:   "Symbol",
			wantErr: true,
		},
		{
			name: "symbol with surrounding spaces",
			mutate: func(r []contracts.AssetRecord) []contracts.AssetRecord {
				r[0].Symbol = "BTC "
				return r
			},
			field:   "Symbol",
			wantErr: true,
		},
		{
			name: "symbol with leading tab",
			mutate: func(r []contracts.AssetRecord) []contracts.AssetRecord {
				r[1].Symbol = "\tBBB"
				return r
			},
			field:   "Symbol",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := tt.mutate([]contracts.AssetRecord{record("AAA", 1), record("BBB", 2)})
			err := ValidateRecords(records)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
			fields := make([]string, 0, len(verrs))
			for _, v := range verrs {
				fields = append(fields, v.Field)
			}
			assert.Contains(t, fields, tt.field)
		})
	}
}

func TestNewSnapshot_RejectsInvalid(t *testing.T) {
	bad := record("AAA", 1)
	bad.SustainabilityScore = 0

	snap, err := NewSnapshot([]contracts.AssetRecord{bad}, "v")
	assert.Nil(t, snap)
	assert.Error(t, err)
}

func TestParseYAML(t *testing.T) {
	t.Run("unknown field", func(t *testing.T) {
		doc := []byte(`
assets:
  - symbol: AAA
    name: Test
    market_cap_rnk: 1
`)
		_, err := ParseYAML(doc)
		assert.Error(t, err)
	})

	t.Run("padded symbol rejected", func(t *testing.T) {
		doc := bytes.Replace(ReferenceYAML(), []byte("symbol: BTC"), []byte(`symbol: "BTC "`), 1)
		_, err := ParseYAML(doc)

		var verrs ValidationErrors
		require.True(t, errors.As(err, &verrs), "expected ValidationErrors, got %v", err)
		assert.Equal(t, "Symbol", verrs[0].Field)
		assert.Equal(t, "BTC ", verrs[0].Symbol)
	})

	t.Run("empty catalog", func(t *testing.T) {
		_, err := ParseYAML([]byte("version: x\nassets: []\n"))
		var verrs ValidationErrors
		assert.True(t, errors.As(err, &verrs))
	})

	t.Run("version defaults to content hash", func(t *testing.T) {
		data := ReferenceYAML()
		stripped := data[len("version: reference-v1\n"):]

		snap, err := ParseYAML(stripped)
		require.NoError(t, err)
		assert.Equal(t, Hash(stripped), snap.Version())
		assert.Len(t, snap.Version(), 16)
	})

	t.Run("edit under same declared version changes identity", func(t *testing.T) {
		original, err := ParseYAML(ReferenceYAML())
		require.NoError(t, err)

		edited := bytes.Replace(ReferenceYAML(), []byte("price_change_30d: 15.8"), []byte("price_change_30d: -40.0"), 1)
		snap, err := ParseYAML(edited)
		require.NoError(t, err)

		assert.NotEqual(t, original.Version(), snap.Version())
		assert.True(t, strings.HasPrefix(snap.Version(), "reference-v1-"))
	})
}

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yaml")
	require.NoError(t, os.WriteFile(path, ReferenceYAML(), 0o644))

	src := FileSource{Path: path}
	assert.Equal(t, "file", src.Name())

	snap, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, snap.Len())

	_, err = FileSource{}.Load(context.Background())
	assert.Error(t, err)

	_, err = FileSource{Path: filepath.Join(dir, "missing.yaml")}.Load(context.Background())
	assert.Error(t, err)
}

type stubFetcher struct {
	data []byte
	err  error
	urls []string
}

func (f *stubFetcher) GetBytes(ctx context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.data, f.err
}

func TestHTTPSource(t *testing.T) {
	fetcher := &stubFetcher{data: ReferenceYAML()}
	src := HTTPSource{URL: "https://example.com/catalog.yaml", Fetcher: fetcher}
	assert.Equal(t, "http", src.Name())

	snap, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 10, snap.Len())
	assert.Equal(t, []string{"https://example.com/catalog.yaml"}, fetcher.urls)

	_, err = HTTPSource{Fetcher: fetcher}.Load(context.Background())
	assert.Error(t, err)

	_, err = HTTPSource{URL: "https://example.com/catalog.yaml"}.Load(context.Background())
	assert.Error(t, err)

	boom := errors.New("boom")
	_, err = HTTPSource{URL: "u", Fetcher: &stubFetcher{err: boom}}.Load(context.Background())
	assert.ErrorIs(t, err, boom)

	_, err = HTTPSource{URL: "u", Fetcher: &stubFetcher{data: []byte("assets: []\n")}}.Load(context.Background())
	assert.Error(t, err)
}

func TestStore_Replace(t *testing.T) {
	first, err := Reference()
	require.NoError(t, err)

	_, err = NewStore(nil)
	assert.Error(t, err)

	store, err := NewStore(first)
	require.NoError(t, err)

	held := store.Catalog()

	second, err := NewSnapshot([]contracts.AssetRecord{record("AAA", 1)}, "v2")
	require.NoError(t, err)

	prev, err := store.Replace(second)
	require.NoError(t, err)
	assert.Same(t, first, prev)

	// callers that captured the old catalog keep a consistent view
	assert.Len(t, held.Assets(), 10)
	assert.Equal(t, "reference-v1-"+Hash(ReferenceYAML()), held.Version())

	assert.Equal(t, "v2", store.Current().Version())
	assert.Len(t, store.Catalog().Assets(), 1)

	_, err = store.Replace(nil)
	assert.Error(t, err)
}
