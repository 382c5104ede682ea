// Package prefs holds user-facing interface preferences: theme, language,
// display currency, and the exchange rate. Preferences are independent of
// financial data and survive restarts through a write-through repository.
package prefs

import (
	"sync"

	"zenfinance/internal/i18n"
	"zenfinance/internal/report"
)

// Theme is the interface color scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Valid reports whether t is a known theme.
func (t Theme) Valid() bool { return t == ThemeLight || t == ThemeDark }

// DefaultRate is used until the rate fetcher has run.
const DefaultRate = 90

// State is the full preference blob.
type State struct {
	Theme    Theme           `json:"theme"`
	Lang     i18n.Lang       `json:"lang"`
	Currency report.Currency `json:"currency"`
	Rate     float64         `json:"rate"`
}

// defaulted fills in zero-valued fields. Language defaults come from the
// process locale so a first run greets the user in their own language.
func (s State) defaulted() State {
	if !s.Theme.Valid() {
		s.Theme = ThemeDark
	}
	if !s.Lang.Valid() {
		s.Lang = i18n.Detect()
	}
	if s.Currency != report.CurrencyBase && s.Currency != report.CurrencyDisplay {
		s.Currency = report.CurrencyBase
	}
	if s.Rate <= 0 {
		s.Rate = DefaultRate
	}
	return s
}

// Store keeps preferences in memory and flushes every mutation to the
// repository synchronously. Setters are plain assignments and idempotent.
type Store struct {
	mu    sync.Mutex
	state State
	repo  Repository
}

// NewStore loads persisted preferences from the repository, applying
// defaults for anything missing. This runs before any rendering decision
// so the saved theme is known up front.
func NewStore(repo Repository) (*Store, error) {
	state, err := repo.Load()
	if err != nil {
		return nil, err
	}
	return &Store{state: state.defaulted(), repo: repo}, nil
}

// Snapshot returns a copy of the current preference state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// SetTheme sets the color scheme.
func (s *Store) SetTheme(t Theme) {
	s.mutate(func(st *State) { st.Theme = t })
}

// SetLang sets the interface language.
func (s *Store) SetLang(l i18n.Lang) {
	s.mutate(func(st *State) { st.Lang = l })
}

// SetCurrency sets the display currency.
func (s *Store) SetCurrency(c report.Currency) {
	s.mutate(func(st *State) { st.Currency = c })
}

// SetRate sets the base-per-display exchange rate.
func (s *Store) SetRate(r float64) {
	s.mutate(func(st *State) { st.Rate = r })
}

// mutate applies fn and writes the whole blob through to the repository.
// Persistence failures are deliberately dropped: losing a preference write
// degrades to a default on next start, nothing worse.
func (s *Store) mutate(fn func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.state)
	_ = s.repo.Save(s.state)
}
