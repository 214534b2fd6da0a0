package screen

import (
	"currency-converter/domain"
	"fmt"
)

// TextField an editable text field. Watchers run synchronously on every change,
// whether the change came from the user or from SetText.
type TextField struct {
	text     string
	watchers []func(text string)
}

func (f *TextField) Text() string {
	return f.text
}

// Watch registers w to run after every change of the text
func (f *TextField) Watch(w func(text string)) {
	f.watchers = append(f.watchers, w)
}

// SetText replaces the text and notifies every watcher.
func (f *TextField) SetText(text string) {
	f.text = text
	for _, w := range f.watchers {
		w(text)
	}
}

// Type appends a single keystroke.
func (f *TextField) Type(r rune) {
	f.SetText(f.text + string(r))
}

// Backspace removes the last character, if any.
func (f *TextField) Backspace() {
	runes := []rune(f.text)
	if len(runes) == 0 {
		return
	}
	f.SetText(string(runes[:len(runes)-1]))
}

// Spinner a drop down of currencies with exactly one selected item
type Spinner struct {
	items     []domain.Currency
	selected  int
	listeners []func(c domain.Currency)
}

// NewSpinner constructs a Spinner selecting the first item
func NewSpinner(items []domain.Currency) *Spinner {
	return &Spinner{
		items: append([]domain.Currency(nil), items...),
	}
}

func (s *Spinner) Selected() domain.Currency {
	return s.items[s.selected]
}

func (s *Spinner) Items() []domain.Currency {
	return append([]domain.Currency(nil), s.items...)
}

// OnSelect registers l to run after every selection
func (s *Spinner) OnSelect(l func(c domain.Currency)) {
	s.listeners = append(s.listeners, l)
}

// Select selects c and notifies listeners.
// Selecting the item that is already selected notifies nobody.
func (s *Spinner) Select(c domain.Currency) error {
	for i, item := range s.items {
		if item == c {
			if i == s.selected {
				return nil
			}
			s.selected = i
			for _, l := range s.listeners {
				l(c)
			}
			return nil
		}
	}
	return fmt.Errorf("select [%v]: %w", c, domain.ErrUnknownCurrency)
}

// Label read-only text
type Label struct {
	text string
}

func (l *Label) Text() string {
	return l.text
}

func (l *Label) SetText(text string) {
	l.text = text
}

// Notifier shows short-lived messages to the user
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to a Notifier
type NotifierFunc func(message string)

func (f NotifierFunc) Notify(message string) {
	f(message)
}
