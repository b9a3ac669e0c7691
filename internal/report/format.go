package report

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// Money formats a price with thousands separators and two decimals
func Money(d decimal.Decimal) string {
	return "$" + humanize.FormatFloat("#,###.##", d.Round(2).InexactFloat64())
}

// WholeMoney formats large amounts (market cap, volume) without decimals
func WholeMoney(d decimal.Decimal) string {
	return "$" + humanize.Comma(d.Round(0).IntPart())
}

// ShortMoney formats large amounts in SI form, e.g. $850B
func ShortMoney(d decimal.Decimal) string {
	value, prefix := humanize.ComputeSI(d.InexactFloat64())
	suffix := prefix
	if prefix == "G" {
		suffix = "B"
	}
	return fmt.Sprintf("$%s%s", humanize.FtoaWithDigits(value, 1), suffix)
}

// Percent formats a signed percentage change with one decimal
func Percent(change float64) string {
	return fmt.Sprintf("%+.1f%%", change)
}

// OutOfTen formats a bounded score
func OutOfTen(v int) string {
	return fmt.Sprintf("%d/10", v)
}
