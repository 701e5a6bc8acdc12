package dashboard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobofi/kobo-cli/internal/application"
	"github.com/kobofi/kobo-cli/internal/domain"
)

func TestRenderLoggedOut(t *testing.T) {
	output, err := Render(application.Overview{
		Language: domain.LanguageEnglish,
		Currency: domain.CurrencyNGN,
		Labels:   application.OverviewLabels{Title: "Dashboard"},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Dashboard")
	assert.Contains(t, output, "Not logged in")
}

func TestRenderWalletAmountsAndGoal(t *testing.T) {
	output, err := Render(application.Overview{
		Language:   domain.LanguageEnglish,
		Currency:   domain.CurrencyNGN,
		LoggedIn:   true,
		Name:       "Ada",
		Balance:    "₦90,000.00",
		Savings:    "₦10,000.00",
		Portfolio:  "₦50,000.00",
		GoalName:   "New laptop",
		GoalTarget: "₦450,000.00",
		Unread:     2,
		Labels: application.OverviewLabels{
			Title:         "Dashboard",
			Balance:       "Wallet balance",
			Savings:       "Total savings",
			Portfolio:     "Portfolio value",
			Notifications: "Unread notifications",
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "Ada")
	assert.Contains(t, output, "Wallet balance: ₦90,000.00")
	assert.Contains(t, output, "goal: New laptop (₦450,000.00)")
	assert.Contains(t, output, "Unread notifications: 2")
}

func TestRenderNegativeBalanceStillShown(t *testing.T) {
	output, err := Render(application.Overview{
		Language:  domain.LanguageEnglish,
		Currency:  domain.CurrencyNGN,
		LoggedIn:  true,
		Name:      "Ada",
		Balance:   "-₦400.00",
		Savings:   "₦0.00",
		Portfolio: "₦300.00",
		Labels: application.OverviewLabels{
			Title:   "Dashboard",
			Balance: "Wallet balance",
		},
	})

	require.NoError(t, err)
	assert.Contains(t, output, "-₦400.00")
}
