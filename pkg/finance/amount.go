package finance

import (
	"strings"

	"github.com/shopspring/decimal"

	"tableflip.dev/planner/pkg/validation"
)

// ParseAmount reads a decimal amount written with a dot or a comma and rounds
// it to cents.
func ParseAmount(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, validation.New("amount", "is required")
	}
	s = strings.Replace(s, ",", ".", 1)
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, validation.New("amount", "%q is not a number", raw)
	}
	return d.Round(2), nil
}
