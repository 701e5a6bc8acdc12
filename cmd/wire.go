package cmd

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/kobofi/kobo-cli/internal/adapters/render/dashboard"
	tomlrepo "github.com/kobofi/kobo-cli/internal/adapters/repo/toml"
	"github.com/kobofi/kobo-cli/internal/application"
	"github.com/kobofi/kobo-cli/internal/ports"
	"github.com/kobofi/kobo-cli/internal/store"
)

type app struct {
	service           *application.Service
	store             *store.Store
	dashboardRenderer func(application.Overview) (string, error)

	// rtl mirrors the store's direction callback; the terminal has no
	// document direction attribute to flip, so commands surface it as text.
	rtl bool
}

func wireApp() (*app, error) {
	repo, err := tomlrepo.NewRepository(viper.New(), ports.SystemClock{})
	if err != nil {
		return nil, fmt.Errorf("wire session repository: %w", err)
	}

	st := store.New()

	a := &app{
		service:           application.NewService(st, repo),
		store:             st,
		dashboardRenderer: dashboard.Render,
	}
	st.SetDirectionObserver(func(rtl bool) { a.rtl = rtl })

	return a, nil
}

func (a *app) direction() string {
	if a.rtl {
		return "rtl"
	}
	return "ltr"
}
