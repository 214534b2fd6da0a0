package exchange

import (
	"currency-converter/domain"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Service interface for converting an amount typed in one field into the amount shown in the other
type Service interface {
	Convert(input string, from domain.Currency, to domain.Currency, dir domain.Direction) domain.Exchanged
}

// LookupFunc for looking up the rate of a conversion pair.
// Implementations must be total: unknown pairs resolve to some rate rather than failing.
type LookupFunc func(from domain.Currency, to domain.Currency) domain.Rate

// service conversion engine backed by a rate lookup
type service struct {
	// lookup to look up exchange rates
	lookup LookupFunc
}

// NewService constructs a valid Service
func NewService(lookup LookupFunc) Service {
	return &service{
		lookup: lookup,
	}
}

// Convert computes the counterpart of input. Forward multiplies by the from->to rate,
// reverse divides by the same rate. Empty input clears the counterpart; anything that
// is not a non-negative number is skipped. The rate summary is always filled in.
func (s *service) Convert(input string, from domain.Currency, to domain.Currency, dir domain.Direction) domain.Exchanged {
	rate := s.lookup(from, to)
	result := domain.Exchanged{
		Rate:    rate,
		Summary: Summary(from, to, rate),
		Outcome: domain.Skipped,
	}

	if input == "" {
		result.Outcome = domain.Cleared
		return result
	}

	amount, ok := ParseAmount(input)
	if !ok {
		return result
	}

	var converted float64
	if dir == domain.Reverse {
		converted = float64(amount) / float64(rate)
	} else {
		converted = float64(amount) * float64(rate)
	}
	if math.IsInf(converted, 0) || math.IsNaN(converted) {
		return result
	}

	result.Amount = FormatAmount(domain.Amount(converted))
	result.Outcome = domain.Converted
	return result
}

// ParseAmount parses text typed into an amount field.
// Only finite, non-negative numbers are amounts.
func ParseAmount(text string) (domain.Amount, bool) {
	f, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}
	return domain.Amount(f), true
}

// FormatAmount renders an amount with exactly two decimals, rounding half away from zero.
func FormatAmount(amount domain.Amount) string {
	return decimal.NewFromFloat(float64(amount)).StringFixed(2)
}

// FormatRate renders a rate unrounded, keeping at least one fractional digit (110.0, 0.93).
func FormatRate(rate domain.Rate) string {
	d := decimal.NewFromFloat(float64(rate))
	if d.Exponent() >= 0 {
		return d.StringFixed(1)
	}
	return d.String()
}

// Summary the human readable rate line, e.g. "1 USD = 0.93 EUR"
func Summary(from domain.Currency, to domain.Currency, rate domain.Rate) string {
	return fmt.Sprintf("1 %v = %v %v", from, FormatRate(rate), to)
}
