package rates

import (
	"currency-converter/domain"
	"fmt"
	"sort"
)

// passThrough is the rate used for same-currency pairs and pairs the table does not know.
const passThrough domain.Rate = 1.0

// Table an immutable lookup table of exchange rates keyed by conversion pair.
// A Table is safe for concurrent reads.
type Table struct {
	rates map[domain.Pair]domain.Rate
}

// New constructs a Table from a copy of rates. Every rate must be positive.
func New(rates map[domain.Pair]domain.Rate) (*Table, error) {
	t := &Table{
		rates: make(map[domain.Pair]domain.Rate, len(rates)),
	}
	for pair, rate := range rates {
		if rate <= 0 {
			return nil, fmt.Errorf("rate for [%v]: must be positive, got %v", pair, rate)
		}
		t.rates[pair] = rate
	}
	return t, nil
}

// Default returns the built-in table covering every ordered pair of distinct supported currencies.
func Default() *Table {
	t, err := New(defaultRates)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns the multiplier converting from into to.
// It never fails: same-currency and unknown pairs pass through at 1.0.
func (t *Table) Lookup(from domain.Currency, to domain.Currency) domain.Rate {
	if from == to {
		return passThrough
	}
	rate, ok := t.rates[domain.Pair{From: from, To: to}]
	if !ok {
		return passThrough
	}
	return rate
}

// Entry a single stored rate
type Entry struct {
	Pair domain.Pair
	Rate domain.Rate
}

// Pairs lists the stored rates ordered by the display order of the currencies.
func (t *Table) Pairs() []Entry {
	entries := make([]Entry, 0, len(t.rates))
	for pair, rate := range t.rates {
		entries = append(entries, Entry{Pair: pair, Rate: rate})
	}
	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Pair, entries[j].Pair
		if a.From != b.From {
			return order(a.From) < order(b.From)
		}
		return order(a.To) < order(b.To)
	})
	return entries
}

func order(c domain.Currency) int {
	for i, s := range domain.Currencies {
		if s == c {
			return i
		}
	}
	return len(domain.Currencies)
}

var defaultRates = map[domain.Pair]domain.Rate{
	{From: domain.USD, To: domain.EUR}: 0.93, {From: domain.EUR, To: domain.USD}: 1.08,
	{From: domain.USD, To: domain.GBP}: 0.77, {From: domain.GBP, To: domain.USD}: 1.30,
	{From: domain.USD, To: domain.JPY}: 110.0, {From: domain.JPY, To: domain.USD}: 0.0091,
	{From: domain.USD, To: domain.AUD}: 1.4, {From: domain.AUD, To: domain.USD}: 0.71,
	{From: domain.EUR, To: domain.GBP}: 0.88, {From: domain.GBP, To: domain.EUR}: 1.14,
	{From: domain.EUR, To: domain.JPY}: 118.0, {From: domain.JPY, To: domain.EUR}: 0.0085,
	{From: domain.EUR, To: domain.AUD}: 1.51, {From: domain.AUD, To: domain.EUR}: 0.66,
	{From: domain.GBP, To: domain.JPY}: 135.0, {From: domain.JPY, To: domain.GBP}: 0.0074,
	{From: domain.GBP, To: domain.AUD}: 1.8, {From: domain.AUD, To: domain.GBP}: 0.56,
	{From: domain.JPY, To: domain.AUD}: 0.0127, {From: domain.AUD, To: domain.JPY}: 79.0,
}
