// Package store is the single source of truth for session state: locale,
// currency, the active profile, navigation position and notification count.
// Screens read through it and mutate through it; none of them re-derive
// formatting or translation on their own.
package store

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/kobofi/kobo-cli/internal/domain"
	"github.com/kobofi/kobo-cli/internal/i18n"
	"github.com/kobofi/kobo-cli/internal/money"
)

// Store holds one session. Construct per consumer (tests get isolated
// instances); nothing here is a package-level singleton.
type Store struct {
	mu      sync.RWMutex
	session domain.Session

	// onDirection is told the new reading direction whenever the language
	// changes. Applying it to the environment is the caller's job; the store
	// never touches the terminal or document itself.
	onDirection func(rtl bool)
}

func New() *Store {
	return &Store{session: domain.NewSession()}
}

// Restore replaces the whole session, e.g. from a persisted snapshot.
func (s *Store) Restore(session domain.Session) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = session
}

// SetDirectionObserver registers the callback fired on language change.
func (s *Store) SetDirectionObserver(fn func(rtl bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onDirection = fn
}

// Session returns a copy of the current state. The profile is cloned so a
// caller cannot mutate store state through the snapshot.
func (s *Store) Session() domain.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneSession(s.session)
}

func cloneSession(session domain.Session) domain.Session {
	if session.User != nil {
		user := *session.User
		if user.Goal != nil {
			goal := *user.Goal
			user.Goal = &goal
		}
		session.User = &user
	}
	return session
}

// SetLanguage assigns the language unconditionally; an unsupported code is
// not rejected, it just makes every lookup echo its key. Fires the direction
// observer after the assignment.
func (s *Store) SetLanguage(lang domain.Language) {
	s.mu.Lock()
	s.session.Language = lang
	fn := s.onDirection
	s.mu.Unlock()

	if fn != nil {
		fn(lang.RTL())
	}
}

func (s *Store) Language() domain.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Language
}

// SetCurrency is a pure assignment, no validation.
func (s *Store) SetCurrency(c domain.Currency) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.Currency = c
}

func (s *Store) Currency() domain.Currency {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.Currency
}

// Translate resolves key in the active language, echoing the key on a miss.
func (s *Store) Translate(key string) string {
	return i18n.Translate(s.Language(), key)
}

// FormatCurrency renders amount with the active currency's fixed symbol, two
// decimals and en-US grouping. NaN and infinities render as zero.
func (s *Store) FormatCurrency(amount float64) string {
	return money.Format(s.Currency(), amount)
}

// FormatAmount is FormatCurrency for exact decimals.
func (s *Store) FormatAmount(amount decimal.Decimal) string {
	return money.FormatDecimal(s.Currency(), amount)
}

// SetUser replaces the active profile wholesale.
func (s *Store) SetUser(p domain.Profile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.User = &p
}

// User returns a copy of the active profile, or false when logged out.
func (s *Store) User() (domain.Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.session.User == nil {
		return domain.Profile{}, false
	}
	return *cloneSession(s.session).User, true
}

// UpdateBalance applies the transaction's deltas and swaps in the resulting
// profile as one assignment. Silent no-op when nobody is logged in; no floor
// keeps the balance from going negative. Reports whether anything changed.
func (s *Store) UpdateBalance(amount decimal.Decimal, kind domain.TransactionKind) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.User == nil {
		return false
	}

	updated := kind.Apply(*s.session.User, amount)
	s.session.User = &updated
	return true
}

// Logout clears the profile, resets the onboarding flag and lands on the
// welcome screen. Transient selections are dropped with the user.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.session.User = nil
	s.session.IsOnboarded = false
	s.session.SelectedArticleID = ""
	s.session.SelectedCircleID = ""
	s.session.PreviousScreen = s.session.CurrentScreen
	s.session.CurrentScreen = domain.ScreenWelcome
}

// Navigate moves to screen, remembering exactly one previous screen. The
// target is not validated; history never grows past one entry.
func (s *Store) Navigate(screen domain.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.PreviousScreen = s.session.CurrentScreen
	s.session.CurrentScreen = screen
}

// GoBack swaps current and previous screen. A second GoBack returns forward
// again; that is the whole depth of the history.
func (s *Store) GoBack() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.CurrentScreen, s.session.PreviousScreen = s.session.PreviousScreen, s.session.CurrentScreen
}

func (s *Store) CurrentScreen() domain.Screen {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.CurrentScreen
}

// CompleteOnboarding flips the one-shot flag. Reports whether this call was
// the transition; repeat calls change nothing and report false.
func (s *Store) CompleteOnboarding() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session.IsOnboarded {
		return false
	}
	s.session.IsOnboarded = true
	return true
}

func (s *Store) IsOnboarded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.IsOnboarded
}

func (s *Store) AddNotification() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.UnreadNotifications++
}

// MarkNotificationsRead zeroes the unread count. The count never goes below
// zero.
func (s *Store) MarkNotificationsRead() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.UnreadNotifications = 0
}

func (s *Store) UnreadNotifications() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session.UnreadNotifications
}

func (s *Store) SelectArticle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SelectedArticleID = id
}

func (s *Store) SelectCircle(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session.SelectedCircleID = id
}
