package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Currency a currency code
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	AUD Currency = "AUD"
)

// Currencies the supported currencies, in display order
var Currencies = []Currency{USD, EUR, GBP, JPY, AUD}

var (
	ErrUnknownCurrency  = errors.New("unknown currency")
	ErrUnknownDirection = errors.New("unknown direction")
)

// Valid reports whether c is one of the supported currencies
func (c Currency) Valid() bool {
	for _, s := range Currencies {
		if c == s {
			return true
		}
	}
	return false
}

// ParseCurrency converts a user supplied code, in any case, to a supported Currency.
func ParseCurrency(code string) (Currency, error) {
	c := Currency(strings.ToUpper(strings.TrimSpace(code)))
	if !c.Valid() {
		return "", fmt.Errorf("parse currency [%v]: %w", code, ErrUnknownCurrency)
	}
	return c, nil
}

// Amount a monetary amount... which is still a float
type Amount float64

// Rate an exchange rate
type Rate float64

// Pair an ordered conversion pair
type Pair struct {
	From Currency
	To   Currency
}

func (p Pair) String() string {
	return string(p.From) + "-" + string(p.To)
}

// Direction tells which amount field the user edited
type Direction int

const (
	// Forward converts the source amount into the target amount
	Forward Direction = iota
	// Reverse converts the target amount back into the source amount
	Reverse
)

func (d Direction) String() string {
	if d == Reverse {
		return "reverse"
	}
	return "forward"
}

// ParseDirection accepts "forward" or "reverse"; an empty string means forward.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "forward":
		return Forward, nil
	case "reverse":
		return Reverse, nil
	}
	return Forward, fmt.Errorf("parse direction [%v]: %w", s, ErrUnknownDirection)
}

// Outcome of a single conversion
type Outcome int

const (
	// Skipped the input was not a number, nothing should be written
	Skipped Outcome = iota
	// Cleared the input was empty, the counterpart should be cleared
	Cleared
	// Converted the counterpart amount was computed
	Converted
)

func (o Outcome) String() string {
	switch o {
	case Cleared:
		return "cleared"
	case Converted:
		return "converted"
	}
	return "skipped"
}

type Exchanged struct {
	Rate    Rate
	Amount  string
	Summary string
	Outcome Outcome
}

// Field identifies one of the two amount fields
type Field int

const (
	Source Field = iota
	Target
)

func (f Field) String() string {
	if f == Target {
		return "target"
	}
	return "source"
}

// Other returns the counterpart field
func (f Field) Other() Field {
	if f == Source {
		return Target
	}
	return Source
}

// Direction returns the conversion direction implied by editing f
func (f Field) Direction() Direction {
	if f == Target {
		return Reverse
	}
	return Forward
}
