package application

import (
	"github.com/kobofi/kobo-cli/internal/domain"
)

// Overview is everything the dashboard needs, with money already formatted
// and labels already translated so renderers never touch those rules
// themselves.
type Overview struct {
	Language domain.Language
	Currency domain.Currency
	Screen   domain.Screen
	RTL      bool

	LoggedIn  bool
	Name      string
	Onboarded bool

	Balance   string
	Savings   string
	Portfolio string

	GoalName   string
	GoalTarget string

	Unread int
	Labels OverviewLabels
}

type OverviewLabels struct {
	Title         string
	Balance       string
	Savings       string
	Portfolio     string
	Notifications string
}

func (s *Service) Overview() Overview {
	session := s.store.Session()

	overview := Overview{
		Language:  session.Language,
		Currency:  session.Currency,
		Screen:    session.CurrentScreen,
		RTL:       session.Language.RTL(),
		Onboarded: session.IsOnboarded,
		Unread:    session.UnreadNotifications,
		Labels: OverviewLabels{
			Title:         s.store.Translate("nav.dashboard"),
			Balance:       s.store.Translate("dashboard.balance"),
			Savings:       s.store.Translate("dashboard.savings"),
			Portfolio:     s.store.Translate("dashboard.portfolio"),
			Notifications: s.store.Translate("dashboard.notifications"),
		},
	}

	if session.User != nil {
		overview.LoggedIn = true
		overview.Name = session.User.Name
		overview.Balance = s.store.FormatAmount(session.User.Balance)
		overview.Savings = s.store.FormatAmount(session.User.Savings)
		overview.Portfolio = s.store.FormatAmount(session.User.PortfolioValue)
		if session.User.Goal != nil {
			overview.GoalName = session.User.Goal.Name
			overview.GoalTarget = s.store.FormatAmount(session.User.Goal.TargetAmount)
		}
	}

	return overview
}
