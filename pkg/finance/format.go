package finance

import (
	"math"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Currency is the ISO code amounts are displayed in.
var Currency = money.EUR

// FormatCurrency renders d in Currency.
func FormatCurrency(d decimal.Decimal) string {
	fraction := int32(money.New(0, Currency).Currency().Fraction)
	return money.New(d.Shift(fraction).Round(0).IntPart(), Currency).Display()
}

// FormatSigned prefixes non-zero amounts with + or -.
func FormatSigned(d decimal.Decimal) string {
	switch {
	case d.IsZero():
		return FormatCurrency(decimal.Zero)
	case d.IsPositive():
		return "+" + FormatCurrency(d)
	default:
		return "-" + FormatCurrency(d.Abs())
	}
}

// FormatPercent renders a signed percentage with at most one decimal.
func FormatPercent(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "0 %"
	}
	d := decimal.NewFromFloat(v).Round(1)
	switch {
	case d.IsZero():
		return "0 %"
	case d.IsPositive():
		return "+" + d.String() + " %"
	default:
		return "-" + d.Abs().String() + " %"
	}
}
