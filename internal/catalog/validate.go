package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/wonny/cryptoadvisor/internal/contracts"
)

// ValidationError describes one rejected record field
type ValidationError struct {
	Symbol  string
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Symbol == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("%s.%s: %s", e.Symbol, e.Field, e.Message)
}

// ValidationErrors collects every problem found in one snapshot
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, v := range e {
		msgs = append(msgs, v.Error())
	}
	return "invalid catalog: " + strings.Join(msgs, "; ")
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

// recordValidator returns the shared validator with enum tags registered
func recordValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		_ = v.RegisterValidation("volatility", validateVolatility)
		_ = v.RegisterValidation("risk_level", validateRiskLevel)
		_ = v.RegisterValidation("energy", validateEnergy)
		_ = v.RegisterValidation("symbol", validateSymbol)
		validate = v
	})
	return validate
}

func validateVolatility(fl validator.FieldLevel) bool {
	return contracts.Volatility(fl.Field().String()).Valid()
}

func validateRiskLevel(fl validator.FieldLevel) bool {
	return contracts.RiskLevel(fl.Field().String()).Valid()
}

func validateEnergy(fl validator.FieldLevel) bool {
	return contracts.EnergyConsumption(fl.Field().String()).Valid()
}

// validateSymbol accepts only symbols that lookups can reach unchanged
func validateSymbol(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == contracts.NormalizeSymbol(s)
}

// ValidateRecord checks field ranges and enumerations of a single record
func ValidateRecord(rec contracts.AssetRecord) ValidationErrors {
	var out ValidationErrors

	if err := recordValidator().Struct(rec); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return ValidationErrors{{Symbol: rec.Symbol, Field: "record", Message: err.Error()}}
		}
		for _, fe := range fieldErrs {
			out = append(out, ValidationError{
				Symbol:  rec.Symbol,
				Field:   fe.Field(),
				Message: describe(fe),
			})
		}
	}

	// decimal.Decimal is a struct, so the amount checks live here
	if !rec.MarketCap.IsPositive() {
		out = append(out, ValidationError{rec.Symbol, "MarketCap", "must be > 0"})
	}
	if rec.PriceUSD.IsNegative() {
		out = append(out, ValidationError{rec.Symbol, "PriceUSD", "must be >= 0"})
	}
	if rec.Volume24h.IsNegative() {
		out = append(out, ValidationError{rec.Symbol, "Volume24h", "must be >= 0"})
	}

	return out
}

// ValidateRecords checks every record plus the catalog-wide uniqueness rules
func ValidateRecords(records []contracts.AssetRecord) error {
	var out ValidationErrors

	seenSymbol := make(map[string]bool, len(records))
	seenRank := make(map[int]string, len(records))

	for _, rec := range records {
		out = append(out, ValidateRecord(rec)...)

		if seenSymbol[rec.Symbol] {
			out = append(out, ValidationError{rec.Symbol, "Symbol", "duplicate symbol"})
		}
		seenSymbol[rec.Symbol] = true

		if other, dup := seenRank[rec.MarketCapRank]; dup {
			out = append(out, ValidationError{rec.Symbol, "MarketCapRank",
				fmt.Sprintf("rank %d already used by %s", rec.MarketCapRank, other)})
		} else {
			seenRank[rec.MarketCapRank] = rec.Symbol
		}
	}

	if len(out) > 0 {
		return out
	}
	return nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required"
	case "symbol":
		return fmt.Sprintf("must be upper case without surrounding spaces, got %q", fe.Value())
	case "min", "gte":
		return fmt.Sprintf("must be >= %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be <= %s, got %v", fe.Param(), fe.Value())
	case "volatility", "risk_level", "energy":
		return fmt.Sprintf("unknown category %q", fe.Value())
	default:
		return fmt.Sprintf("failed %s", fe.Tag())
	}
}
