package domain

type Screen string

const (
	ScreenWelcome       Screen = "welcome"
	ScreenOnboarding    Screen = "onboarding"
	ScreenDashboard     Screen = "dashboard"
	ScreenWallet        Screen = "wallet"
	ScreenInvest        Screen = "invest"
	ScreenCircles       Screen = "circles"
	ScreenLearn         Screen = "learn"
	ScreenRiskQuiz      Screen = "risk-quiz"
	ScreenNotifications Screen = "notifications"
	ScreenSettings      Screen = "settings"
)

// Session is the whole of the per-run application state. It is plain data;
// every mutation goes through the store so the one-level navigation history,
// the one-shot onboarding flag and the notification floor hold everywhere.
type Session struct {
	Language            Language
	Currency            Currency
	User                *Profile
	CurrentScreen       Screen
	PreviousScreen      Screen
	IsOnboarded         bool
	UnreadNotifications int
	SelectedArticleID   string
	SelectedCircleID    string
}

// NewSession returns the logged-out default state: English, naira, landing on
// the welcome screen.
func NewSession() Session {
	return Session{
		Language:      DefaultLanguage,
		Currency:      DefaultCurrency,
		CurrentScreen: ScreenWelcome,
	}
}
