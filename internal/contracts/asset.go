package contracts

import (
	"strings"

	"github.com/shopspring/decimal"
)

// AssetRecord is one catalog entry, keyed by Symbol
// ⭐ SSOT: Catalog → Engine 자산 레코드
type AssetRecord struct {
	Symbol        string          `json:"symbol" yaml:"symbol" validate:"required,symbol"`
	Name          string          `json:"name" yaml:"name" validate:"required"`
	MarketCapRank int             `json:"market_cap_rank" yaml:"market_cap_rank" validate:"gte=1"`
	MarketCap     decimal.Decimal `json:"market_cap" yaml:"market_cap"`
	PriceUSD      decimal.Decimal `json:"price_usd" yaml:"price_usd"`

	PriceChange24h float64 `json:"price_change_24h" yaml:"price_change_24h"` // %
	PriceChange7d  float64 `json:"price_change_7d" yaml:"price_change_7d"`   // %
	PriceChange30d float64 `json:"price_change_30d" yaml:"price_change_30d"` // %

	Volume24h          decimal.Decimal   `json:"volume_24h" yaml:"volume_24h"`
	EnergyConsumption  EnergyConsumption `json:"energy_consumption" yaml:"energy_consumption" validate:"energy"`
	ConsensusMechanism string            `json:"consensus_mechanism" yaml:"consensus_mechanism" validate:"required"`

	SustainabilityScore int        `json:"sustainability_score" yaml:"sustainability_score" validate:"min=1,max=10"`
	Volatility          Volatility `json:"volatility" yaml:"volatility" validate:"volatility"`
	AdoptionScore       int        `json:"adoption_score" yaml:"adoption_score" validate:"min=1,max=10"`
	TechnologyMaturity  int        `json:"technology_maturity" yaml:"technology_maturity" validate:"min=1,max=10"`
	RegulatoryClarity   int        `json:"regulatory_clarity" yaml:"regulatory_clarity" validate:"min=1,max=10"`

	UseCases  []string  `json:"use_cases" yaml:"use_cases"`
	RiskLevel RiskLevel `json:"risk_level" yaml:"risk_level" validate:"risk_level"`
}

// Clone returns a deep copy so callers never share the UseCases backing array
func (a AssetRecord) Clone() AssetRecord {
	out := a
	if a.UseCases != nil {
		out.UseCases = append([]string(nil), a.UseCases...)
	}
	return out
}

// Volatility is the ordinal volatility category
type Volatility string

const (
	VolatilityLow      Volatility = "Low"
	VolatilityMedium   Volatility = "Medium"
	VolatilityHigh     Volatility = "High"
	VolatilityVeryHigh Volatility = "Very High"
)

// Valid reports whether v is a known category
func (v Volatility) Valid() bool {
	switch v {
	case VolatilityLow, VolatilityMedium, VolatilityHigh, VolatilityVeryHigh:
		return true
	}
	return false
}

// RiskLevel is the ordinal risk category of an asset
type RiskLevel string

const (
	RiskLow        RiskLevel = "Low"
	RiskMedium     RiskLevel = "Medium"
	RiskMediumHigh RiskLevel = "Medium-High"
	RiskHigh       RiskLevel = "High"

	// RiskMediumLow is only matched by the low-risk catalog view; records never carry it
	RiskMediumLow RiskLevel = "Medium-Low"
)

// Valid reports whether r is a category an AssetRecord may carry
func (r RiskLevel) Valid() bool {
	switch r {
	case RiskLow, RiskMedium, RiskMediumHigh, RiskHigh:
		return true
	}
	return false
}

// EnergyConsumption is the ordinal energy usage category
type EnergyConsumption string

const (
	EnergyVeryLow EnergyConsumption = "Very Low"
	EnergyLow     EnergyConsumption = "Low"
	EnergyMedium  EnergyConsumption = "Medium"
	EnergyHigh    EnergyConsumption = "High"
)

// Valid reports whether e is a known category
func (e EnergyConsumption) Valid() bool {
	switch e {
	case EnergyVeryLow, EnergyLow, EnergyMedium, EnergyHigh:
		return true
	}
	return false
}

// NormalizeSymbol upper-cases and trims a user supplied ticker
func NormalizeSymbol(symbol string) string {
	return strings.ToUpper(strings.TrimSpace(symbol))
}
