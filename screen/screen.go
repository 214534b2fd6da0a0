package screen

import (
	"currency-converter/domain"
	"currency-converter/exchange"
	"fmt"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// RatesUpdated acknowledgment shown when the user asks for fresh rates.
// Rates are static, nothing is actually refreshed.
const RatesUpdated = "Rates updated"

// Mode of the field pair
type Mode int

const (
	Idle Mode = iota
	UserEditing
	ProgrammaticUpdate
)

// State of the field pair. Field is meaningless while Idle.
type State struct {
	Mode  Mode
	Field domain.Field
}

func (s State) String() string {
	switch s.Mode {
	case UserEditing:
		return fmt.Sprintf("user_editing(%v)", s.Field)
	case ProgrammaticUpdate:
		return fmt.Sprintf("programmatic_update(%v)", s.Field)
	}
	return "idle"
}

// Screen the converter screen: two amount fields kept consistent through an exchange.Service.
//
// Every write the Screen makes to a field goes through write, which tags the state as
// ProgrammaticUpdate for that field; the watcher on that field ignores changes while tagged,
// so a conversion never triggers the opposite conversion.
// A Screen is driven from a single event loop and is not safe for concurrent use.
type Screen struct {
	Source *TextField
	Target *TextField
	From   *Spinner
	To     *Spinner
	Rate   *Label

	service  exchange.Service
	notifier Notifier
	logger   log.Logger

	state State
}

// New constructs a Screen with from and to preselected and the rate label filled in.
func New(service exchange.Service, notifier Notifier, logger log.Logger, from domain.Currency, to domain.Currency) (*Screen, error) {
	s := &Screen{
		Source:   &TextField{},
		Target:   &TextField{},
		From:     NewSpinner(domain.Currencies),
		To:       NewSpinner(domain.Currencies),
		Rate:     &Label{},
		service:  service,
		notifier: notifier,
		logger:   logger,
	}

	if err := s.From.Select(from); err != nil {
		return nil, fmt.Errorf("source currency: %w", err)
	}
	if err := s.To.Select(to); err != nil {
		return nil, fmt.Errorf("target currency: %w", err)
	}

	s.Source.Watch(func(text string) { s.onAmountChanged(domain.Source, text) })
	s.Target.Watch(func(text string) { s.onAmountChanged(domain.Target, text) })
	s.From.OnSelect(s.onCurrencyChanged)
	s.To.OnSelect(s.onCurrencyChanged)

	s.recompute()
	return s, nil
}

// State the current state of the field pair
func (s *Screen) State() State {
	return s.state
}

// UpdateRates acknowledges a refresh request. The rate table is left untouched.
func (s *Screen) UpdateRates() {
	level.Info(s.logger).Log("msg", "rates update requested", "refreshed", false)
	s.notifier.Notify(RatesUpdated)
}

func (s *Screen) field(f domain.Field) *TextField {
	if f == domain.Target {
		return s.Target
	}
	return s.Source
}

func (s *Screen) onAmountChanged(f domain.Field, text string) {
	if s.state.Mode == ProgrammaticUpdate && s.state.Field == f {
		return
	}

	prev := s.state
	s.state = State{Mode: UserEditing, Field: f}
	defer func() { s.state = prev }()

	ex := s.service.Convert(text, s.From.Selected(), s.To.Selected(), f.Direction())
	switch ex.Outcome {
	case domain.Cleared:
		s.write(f.Other(), "")
	case domain.Converted:
		s.write(f.Other(), ex.Amount)
	}
	s.Rate.SetText(ex.Summary)
}

func (s *Screen) onCurrencyChanged(domain.Currency) {
	s.recompute()
}

// recompute refreshes the label and converts the source amount forward into the target.
// A source that is empty or not a number leaves the target alone.
func (s *Screen) recompute() {
	ex := s.service.Convert(s.Source.Text(), s.From.Selected(), s.To.Selected(), domain.Forward)
	if ex.Outcome == domain.Converted {
		s.write(domain.Target, ex.Amount)
	}
	s.Rate.SetText(ex.Summary)
}

// write is the only way the Screen mutates an amount field
func (s *Screen) write(f domain.Field, text string) {
	prev := s.state
	s.state = State{Mode: ProgrammaticUpdate, Field: f}
	defer func() { s.state = prev }()

	s.field(f).SetText(text)
}
