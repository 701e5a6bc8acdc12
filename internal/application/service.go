package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/kobofi/kobo-cli/internal/catalog"
	"github.com/kobofi/kobo-cli/internal/domain"
	"github.com/kobofi/kobo-cli/internal/ports"
	"github.com/kobofi/kobo-cli/internal/store"
)

// Service drives the session store on behalf of the commands and snapshots
// it through the repository after every mutation, so the next invocation of
// the binary resumes the same session.
type Service struct {
	store *store.Store
	repo  ports.SessionRepository
}

func NewService(st *store.Store, repo ports.SessionRepository) *Service {
	return &Service{store: st, repo: repo}
}

func (s *Service) Store() *store.Store { return s.store }

// LoadSession hydrates the store from the last snapshot. A missing snapshot
// is not an error; the store keeps its logged-out defaults.
func (s *Service) LoadSession(ctx context.Context) error {
	session, err := s.repo.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrSessionNotFound) {
			return nil
		}
		return fmt.Errorf("load session: %w", err)
	}

	s.store.Restore(session)
	return nil
}

func (s *Service) persist(ctx context.Context) error {
	if err := s.repo.Save(ctx, s.store.Session()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Login replaces the active profile and lands on the dashboard.
func (s *Service) Login(ctx context.Context, profile domain.Profile) error {
	s.store.SetUser(profile)
	s.store.Navigate(domain.ScreenDashboard)
	return s.persist(ctx)
}

// Logout clears the profile and onboarding flag and lands on welcome.
func (s *Service) Logout(ctx context.Context) error {
	s.store.Logout()
	return s.persist(ctx)
}

// Onboard runs the goal-setting step: it creates the profile with zeroed
// counters, attaches the goal and fires the one-shot onboarding transition.
// A session that already completed onboarding gets ErrAlreadyOnboarded.
func (s *Service) Onboard(ctx context.Context, name string, goal domain.SavingsGoal) error {
	if s.store.IsOnboarded() {
		return domain.ErrAlreadyOnboarded
	}

	s.store.SetUser(domain.Profile{
		Name:           name,
		Balance:        decimal.Zero,
		Savings:        decimal.Zero,
		PortfolioValue: decimal.Zero,
		Goal:           &goal,
	})
	s.store.CompleteOnboarding()
	s.store.Navigate(domain.ScreenDashboard)

	return s.persist(ctx)
}

// Transact applies one wallet operation. ErrNotLoggedIn when no profile is
// active; the underlying store treats that as a no-op and we surface it here
// because a human asked for the transaction explicitly.
func (s *Service) Transact(ctx context.Context, amount decimal.Decimal, kind domain.TransactionKind) error {
	if !s.store.UpdateBalance(amount, kind) {
		return domain.ErrNotLoggedIn
	}
	s.store.AddNotification()

	return s.persist(ctx)
}

// ContributeToCircle records a contribution to a known circle, tracking the
// selected circle id for the circles screen.
func (s *Service) ContributeToCircle(ctx context.Context, circleID string, amount decimal.Decimal) (catalog.Circle, error) {
	circle, ok := catalog.FindCircle(circleID)
	if !ok {
		return catalog.Circle{}, fmt.Errorf("circle %q not found", circleID)
	}

	s.store.SelectCircle(circleID)
	if err := s.Transact(ctx, amount, domain.TransactionCircle); err != nil {
		return catalog.Circle{}, err
	}

	return circle, nil
}

// OpenArticle marks an article as the current selection and moves to the
// learn screen.
func (s *Service) OpenArticle(ctx context.Context, articleID string) (catalog.Article, error) {
	article, ok := catalog.FindArticle(articleID)
	if !ok {
		return catalog.Article{}, fmt.Errorf("article %q not found", articleID)
	}

	s.store.SelectArticle(articleID)
	s.store.Navigate(domain.ScreenLearn)
	if err := s.persist(ctx); err != nil {
		return catalog.Article{}, err
	}

	return article, nil
}

func (s *Service) SetLanguage(ctx context.Context, lang domain.Language) error {
	s.store.SetLanguage(lang)
	return s.persist(ctx)
}

func (s *Service) SetCurrency(ctx context.Context, currency domain.Currency) error {
	s.store.SetCurrency(currency)
	return s.persist(ctx)
}

// BeginRiskQuiz moves the session onto the quiz screen. The quiz result
// itself is display-only and deliberately not written into the profile.
func (s *Service) BeginRiskQuiz(ctx context.Context) error {
	s.store.Navigate(domain.ScreenRiskQuiz)
	return s.persist(ctx)
}

// MarkNotificationsRead zeroes the unread counter.
func (s *Service) MarkNotificationsRead(ctx context.Context) error {
	s.store.MarkNotificationsRead()
	s.store.Navigate(domain.ScreenNotifications)
	return s.persist(ctx)
}
