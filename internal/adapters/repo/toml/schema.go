package toml

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/kobofi/kobo-cli/internal/domain"
)

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	SavedAt string        `toml:"saved_at,omitempty"`
	Session sessionSchema `toml:"session"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
	if s.Session.Language == "" {
		s.Session.Language = string(domain.DefaultLanguage)
	}
	if s.Session.Currency == "" {
		s.Session.Currency = string(domain.DefaultCurrency)
	}
	if s.Session.CurrentScreen == "" {
		s.Session.CurrentScreen = string(domain.ScreenWelcome)
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type sessionSchema struct {
	Language            string         `toml:"language"`
	Currency            string         `toml:"currency"`
	CurrentScreen       string         `toml:"current_screen"`
	PreviousScreen      string         `toml:"previous_screen,omitempty"`
	Onboarded           bool           `toml:"onboarded"`
	UnreadNotifications int            `toml:"unread_notifications"`
	SelectedArticle     string         `toml:"selected_article,omitempty"`
	SelectedCircle      string         `toml:"selected_circle,omitempty"`
	User                *profileSchema `toml:"user,omitempty"`
}

type profileSchema struct {
	Name           string      `toml:"name"`
	Email          string      `toml:"email,omitempty"`
	Phone          string      `toml:"phone,omitempty"`
	Avatar         string      `toml:"avatar,omitempty"`
	Balance        string      `toml:"balance"`
	Savings        string      `toml:"savings"`
	PortfolioValue string      `toml:"portfolio_value"`
	Goal           *goalSchema `toml:"goal,omitempty"`
}

type goalSchema struct {
	Name         string `toml:"name"`
	TargetAmount string `toml:"target_amount"`
	Horizon      string `toml:"horizon,omitempty"`
}

func toSchema(session domain.Session, savedAt time.Time) fileSchema {
	file := fileSchema{
		Version: currentSchemaVersion,
		Session: sessionSchema{
			Language:            string(session.Language),
			Currency:            string(session.Currency),
			CurrentScreen:       string(session.CurrentScreen),
			PreviousScreen:      string(session.PreviousScreen),
			Onboarded:           session.IsOnboarded,
			UnreadNotifications: session.UnreadNotifications,
			SelectedArticle:     session.SelectedArticleID,
			SelectedCircle:      session.SelectedCircleID,
		},
	}
	if !savedAt.IsZero() {
		file.SavedAt = savedAt.UTC().Format(time.RFC3339)
	}
	if session.User != nil {
		file.Session.User = toProfileSchema(*session.User)
	}

	return file
}

func toProfileSchema(p domain.Profile) *profileSchema {
	schema := &profileSchema{
		Name:           p.Name,
		Email:          p.Email,
		Phone:          p.Phone,
		Avatar:         p.Avatar,
		Balance:        p.Balance.String(),
		Savings:        p.Savings.String(),
		PortfolioValue: p.PortfolioValue.String(),
	}
	if p.Goal != nil {
		schema.Goal = &goalSchema{
			Name:         p.Goal.Name,
			TargetAmount: p.Goal.TargetAmount.String(),
			Horizon:      p.Goal.Horizon,
		}
	}

	return schema
}

func fromSchema(file fileSchema) (domain.Session, error) {
	session := domain.Session{
		Language:            domain.Language(file.Session.Language),
		Currency:            domain.Currency(file.Session.Currency),
		CurrentScreen:       domain.Screen(file.Session.CurrentScreen),
		PreviousScreen:      domain.Screen(file.Session.PreviousScreen),
		IsOnboarded:         file.Session.Onboarded,
		UnreadNotifications: file.Session.UnreadNotifications,
		SelectedArticleID:   file.Session.SelectedArticle,
		SelectedCircleID:    file.Session.SelectedCircle,
	}
	if session.UnreadNotifications < 0 {
		session.UnreadNotifications = 0
	}

	if file.Session.User != nil {
		profile, err := fromProfileSchema(*file.Session.User)
		if err != nil {
			return domain.Session{}, err
		}
		session.User = &profile
	}

	return session, nil
}

func fromProfileSchema(schema profileSchema) (domain.Profile, error) {
	balance, err := parseAmount(schema.Balance, "balance")
	if err != nil {
		return domain.Profile{}, err
	}
	savings, err := parseAmount(schema.Savings, "savings")
	if err != nil {
		return domain.Profile{}, err
	}
	portfolio, err := parseAmount(schema.PortfolioValue, "portfolio_value")
	if err != nil {
		return domain.Profile{}, err
	}

	profile := domain.Profile{
		Name:           schema.Name,
		Email:          schema.Email,
		Phone:          schema.Phone,
		Avatar:         schema.Avatar,
		Balance:        balance,
		Savings:        savings,
		PortfolioValue: portfolio,
	}

	if schema.Goal != nil {
		target, err := parseAmount(schema.Goal.TargetAmount, "goal.target_amount")
		if err != nil {
			return domain.Profile{}, err
		}
		profile.Goal = &domain.SavingsGoal{
			Name:         schema.Goal.Name,
			TargetAmount: target,
			Horizon:      schema.Goal.Horizon,
		}
	}

	return profile, nil
}

func parseAmount(raw, field string) (decimal.Decimal, error) {
	if raw == "" {
		return decimal.Zero, nil
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse %s %q: %w", field, raw, err)
	}

	return amount, nil
}
