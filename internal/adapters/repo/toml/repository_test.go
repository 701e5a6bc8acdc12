package toml

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kobofi/kobo-cli/internal/domain"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func newTestRepository(t *testing.T) (*Repository, string) {
	t.Helper()

	sessionPath := filepath.Join(t.TempDir(), "session.toml")
	config := viper.New()
	config.Set("session.path", sessionPath)

	repo, err := NewRepository(config, fixedClock{now: time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)})
	require.NoError(t, err)

	return repo, sessionPath
}

func TestRepositoryRoundTrip(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	session := domain.NewSession()
	session.Language = domain.LanguageSwahili
	session.Currency = domain.CurrencyKES
	session.CurrentScreen = domain.ScreenDashboard
	session.PreviousScreen = domain.ScreenWallet
	session.IsOnboarded = true
	session.UnreadNotifications = 3
	session.SelectedArticleID = "art-2"
	session.User = &domain.Profile{
		Name:           "Wanjiru",
		Email:          "wanjiru@example.com",
		Balance:        decimal.RequireFromString("12500.75"),
		Savings:        decimal.RequireFromString("4000"),
		PortfolioValue: decimal.RequireFromString("-150.25"),
		Goal: &domain.SavingsGoal{
			Name:         "Emergency fund",
			TargetAmount: decimal.RequireFromString("50000"),
			Horizon:      "12m",
		},
	}

	require.NoError(t, repo.Save(context.Background(), session))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, session.Language, got.Language)
	assert.Equal(t, session.Currency, got.Currency)
	assert.Equal(t, session.CurrentScreen, got.CurrentScreen)
	assert.Equal(t, session.PreviousScreen, got.PreviousScreen)
	assert.True(t, got.IsOnboarded)
	assert.Equal(t, 3, got.UnreadNotifications)
	assert.Equal(t, "art-2", got.SelectedArticleID)
	require.NotNil(t, got.User)
	assert.Equal(t, "Wanjiru", got.User.Name)
	assert.True(t, got.User.Balance.Equal(session.User.Balance))
	assert.True(t, got.User.PortfolioValue.Equal(session.User.PortfolioValue), "negative values survive the round trip")
	require.NotNil(t, got.User.Goal)
	assert.True(t, got.User.Goal.TargetAmount.Equal(decimal.RequireFromString("50000")))
}

func TestRepositoryLoadMissingFile(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestRepositorySaveStampsTimeAndTightensMode(t *testing.T) {
	t.Parallel()

	repo, sessionPath := newTestRepository(t)

	require.NoError(t, repo.Save(context.Background(), domain.NewSession()))

	info, err := os.Stat(sessionPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(sessionPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "saved_at")
	assert.Contains(t, string(data), "2026-03-01T09:30:00Z")
}

func TestRepositoryClear(t *testing.T) {
	t.Parallel()

	repo, _ := newTestRepository(t)

	require.NoError(t, repo.Save(context.Background(), domain.NewSession()))
	require.NoError(t, repo.Clear(context.Background()))

	_, err := repo.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	// clearing an already-empty repository is fine
	require.NoError(t, repo.Clear(context.Background()))
}

func TestRepositoryRejectsNewerSchemaVersion(t *testing.T) {
	t.Parallel()

	repo, sessionPath := newTestRepository(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(sessionPath), 0o700))
	require.NoError(t, os.WriteFile(sessionPath, []byte("version = 99\n"), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "unsupported session schema version"))
}

func TestRepositoryLoadDefaultsEmptyFields(t *testing.T) {
	t.Parallel()

	repo, sessionPath := newTestRepository(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(sessionPath), 0o700))
	require.NoError(t, os.WriteFile(sessionPath, []byte("[session]\nonboarded = false\n"), 0o600))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultLanguage, got.Language)
	assert.Equal(t, domain.DefaultCurrency, got.Currency)
	assert.Equal(t, domain.ScreenWelcome, got.CurrentScreen)
	assert.Nil(t, got.User)
}
