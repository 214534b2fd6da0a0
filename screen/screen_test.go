package screen

import (
	"bytes"
	"currency-converter/domain"
	"currency-converter/exchange"
	"currency-converter/rates"
	"strings"
	"testing"

	"github.com/go-kit/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counting decorates an exchange.Service and counts conversions per direction
type counting struct {
	next    exchange.Service
	forward int
	reverse int
}

func (c *counting) Convert(input string, from domain.Currency, to domain.Currency, dir domain.Direction) domain.Exchanged {
	if dir == domain.Reverse {
		c.reverse++
	} else {
		c.forward++
	}
	return c.next.Convert(input, from, to, dir)
}

func (c *counting) total() int {
	return c.forward + c.reverse
}

type notifications struct {
	messages []string
}

func (n *notifications) Notify(message string) {
	n.messages = append(n.messages, message)
}

func newScreen(t *testing.T, from domain.Currency, to domain.Currency) (*Screen, *counting, *notifications) {
	t.Helper()
	service := &counting{next: exchange.NewService(rates.Default().Lookup)}
	n := &notifications{}
	s, err := New(service, n, log.NewNopLogger(), from, to)
	require.NoError(t, err)
	service.forward, service.reverse = 0, 0
	return s, service, n
}

func TestNew(t *testing.T) {
	s, _, _ := newScreen(t, domain.USD, domain.EUR)

	assert.Equal(t, domain.USD, s.From.Selected())
	assert.Equal(t, domain.EUR, s.To.Selected())
	assert.Equal(t, "1 USD = 0.93 EUR", s.Rate.Text())
	assert.Equal(t, "", s.Source.Text())
	assert.Equal(t, "", s.Target.Text())
	assert.Equal(t, Idle, s.State().Mode)
}

func TestNew_UnknownCurrency(t *testing.T) {
	_, err := New(exchange.NewService(rates.Default().Lookup), NotifierFunc(func(string) {}), log.NewNopLogger(), "CHF", domain.EUR)
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
}

func TestScreen_SourceEdit(t *testing.T) {
	s, service, _ := newScreen(t, domain.USD, domain.EUR)

	s.Source.SetText("100")

	assert.Equal(t, "93.00", s.Target.Text())
	assert.Equal(t, "1 USD = 0.93 EUR", s.Rate.Text())
	assert.Equal(t, 1, service.forward)
	assert.Equal(t, 0, service.reverse)
	assert.Equal(t, Idle, s.State().Mode)
}

func TestScreen_TargetEdit(t *testing.T) {
	s, service, _ := newScreen(t, domain.EUR, domain.JPY)

	s.Target.SetText("50")

	assert.Equal(t, "0.42", s.Source.Text())
	assert.Equal(t, "1 EUR = 118.0 JPY", s.Rate.Text())
	assert.Equal(t, 0, service.forward)
	assert.Equal(t, 1, service.reverse)
	assert.Equal(t, Idle, s.State().Mode)
}

func TestScreen_SameCurrency(t *testing.T) {
	s, _, _ := newScreen(t, domain.JPY, domain.JPY)

	s.Source.SetText("50")

	assert.Equal(t, "50.00", s.Target.Text())
	assert.Equal(t, "1 JPY = 1.0 JPY", s.Rate.Text())
}

func TestScreen_Keystrokes(t *testing.T) {
	s, service, _ := newScreen(t, domain.USD, domain.EUR)

	for _, r := range "100" {
		s.Source.Type(r)
	}
	assert.Equal(t, "93.00", s.Target.Text())
	assert.Equal(t, 3, service.total())

	s.Source.Backspace()
	assert.Equal(t, "9.30", s.Target.Text())
	assert.Equal(t, 4, service.total())
	assert.Equal(t, Idle, s.State().Mode)
}

func TestScreen_GuardedWriteDoesNotReenter(t *testing.T) {
	s, service, _ := newScreen(t, domain.GBP, domain.AUD)

	var seen []State
	s.Target.Watch(func(string) { seen = append(seen, s.State()) })
	s.Source.Watch(func(string) { seen = append(seen, s.State()) })

	s.Source.SetText("10")

	assert.Equal(t, "18.00", s.Target.Text())
	assert.Equal(t, 1, service.total())
	assert.Equal(t, []State{
		{Mode: ProgrammaticUpdate, Field: domain.Target},
		{Mode: Idle},
	}, seen)

	seen = nil
	s.Target.SetText("36")

	assert.Equal(t, "20.00", s.Source.Text())
	assert.Equal(t, 2, service.total())
	assert.Equal(t, []State{
		{Mode: ProgrammaticUpdate, Field: domain.Source},
		{Mode: Idle},
	}, seen)
	assert.Equal(t, Idle, s.State().Mode)
}

func TestScreen_Clearing(t *testing.T) {
	s, _, _ := newScreen(t, domain.USD, domain.EUR)

	s.Source.SetText("100")
	require.Equal(t, "93.00", s.Target.Text())
	s.Source.SetText("")
	assert.Equal(t, "", s.Target.Text())

	s.Target.SetText("93")
	require.Equal(t, "100.00", s.Source.Text())
	s.Target.SetText("")
	assert.Equal(t, "", s.Source.Text())
	assert.Equal(t, Idle, s.State().Mode)
}

func TestScreen_NotANumber(t *testing.T) {
	s, service, _ := newScreen(t, domain.USD, domain.EUR)

	s.Source.SetText("100")
	s.Source.SetText("abc")

	assert.Equal(t, "abc", s.Source.Text())
	assert.Equal(t, "93.00", s.Target.Text())
	assert.Equal(t, "1 USD = 0.93 EUR", s.Rate.Text())
	assert.Equal(t, 2, service.total())
}

func TestScreen_CurrencyChange(t *testing.T) {
	s, service, _ := newScreen(t, domain.USD, domain.EUR)

	s.Source.SetText("100")
	require.NoError(t, s.To.Select(domain.GBP))

	assert.Equal(t, "100", s.Source.Text())
	assert.Equal(t, "77.00", s.Target.Text())
	assert.Equal(t, "1 USD = 0.77 GBP", s.Rate.Text())
	assert.Equal(t, 2, service.forward)

	s.Target.SetText("135")
	require.Equal(t, "175.32", s.Source.Text())
	require.NoError(t, s.From.Select(domain.GBP))

	assert.Equal(t, "175.32", s.Source.Text())
	assert.Equal(t, "175.32", s.Target.Text())
	assert.Equal(t, "1 GBP = 1.0 GBP", s.Rate.Text())
	assert.Equal(t, 3, service.forward)
	assert.Equal(t, 1, service.reverse)
	assert.Equal(t, Idle, s.State().Mode)
}

func TestScreen_CurrencyChangeConvertsFromSource(t *testing.T) {
	s, _, _ := newScreen(t, domain.USD, domain.GBP)

	s.Target.SetText("135")
	require.Equal(t, "175.32", s.Source.Text())

	require.NoError(t, s.From.Select(domain.GBP))

	assert.Equal(t, "175.32", s.Source.Text())
	assert.Equal(t, "175.32", s.Target.Text())
}

func TestScreen_CurrencyChangeReplacesUnparseableTarget(t *testing.T) {
	s, _, _ := newScreen(t, domain.USD, domain.EUR)

	s.Source.SetText("100")
	s.Target.SetText("93.00x")
	require.Equal(t, "100", s.Source.Text())

	require.NoError(t, s.To.Select(domain.GBP))

	assert.Equal(t, "100", s.Source.Text())
	assert.Equal(t, "77.00", s.Target.Text())
	assert.Equal(t, "1 USD = 0.77 GBP", s.Rate.Text())
}

func TestScreen_ReselectingCurrency(t *testing.T) {
	s, service, _ := newScreen(t, domain.USD, domain.EUR)

	s.Source.SetText("100")
	require.NoError(t, s.To.Select(domain.EUR))

	assert.Equal(t, 1, service.total())
	assert.Equal(t, "93.00", s.Target.Text())
}

func TestScreen_CurrencyChangeWithEmptyFields(t *testing.T) {
	s, _, _ := newScreen(t, domain.USD, domain.EUR)

	require.NoError(t, s.From.Select(domain.AUD))

	assert.Equal(t, "", s.Source.Text())
	assert.Equal(t, "", s.Target.Text())
	assert.Equal(t, "1 AUD = 0.66 EUR", s.Rate.Text())

	err := s.To.Select("XYZ")
	assert.ErrorIs(t, err, domain.ErrUnknownCurrency)
	assert.Equal(t, domain.EUR, s.To.Selected())
}

func TestScreen_UpdateRates(t *testing.T) {
	var buf bytes.Buffer
	n := &notifications{}
	s, err := New(exchange.NewService(rates.Default().Lookup), n, log.NewLogfmtLogger(&buf), domain.USD, domain.EUR)
	require.NoError(t, err)

	s.Source.SetText("100")
	s.UpdateRates()

	assert.Equal(t, []string{RatesUpdated}, n.messages)
	assert.Equal(t, "93.00", s.Target.Text())
	assert.Equal(t, "1 USD = 0.93 EUR", s.Rate.Text())
	assert.True(t, strings.Contains(buf.String(), `msg="rates update requested"`), buf.String())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "idle", State{}.String())
	assert.Equal(t, "user_editing(source)", State{Mode: UserEditing, Field: domain.Source}.String())
	assert.Equal(t, "programmatic_update(target)", State{Mode: ProgrammaticUpdate, Field: domain.Target}.String())
}
