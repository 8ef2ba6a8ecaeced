// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"gallerydeck/internal/api"
	"gallerydeck/internal/config"
	"gallerydeck/internal/nav"
	"gallerydeck/internal/session"
	"gallerydeck/internal/token"
)

// App bundles the wired-up client state every command works against.
type App struct {
	Config  *config.Config
	Client  *api.Client
	Session *session.Store
	Guard   *nav.Guard
}

// newApp loads configuration, builds the API client over the persisted
// token store and restores the saved session when one exists. A failed
// restore is not fatal: the user is simply signed out.
func newApp(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	hooks := api.Hooks{
		OnUnauthorized: func() {
			fmt.Fprintln(os.Stderr, "session expired, please log in again")
		},
	}

	tokens := token.NewFileStore(cfg.TokenFile)
	client := api.New(cfg.APIBaseURL, cfg.Timeout, tokens, hooks)
	sess := session.NewStore(client, tokens)

	if err := sess.Restore(ctx); err != nil {
		slog.Debug("no restorable session", "error", err)
	}

	return &App{
		Config:  cfg,
		Client:  client,
		Session: sess,
		Guard:   nav.NewGuard(sess),
	}, nil
}

// requireAccess runs the navigation guard for the screen a command maps
// onto, turning a redirect decision into a command error.
func (a *App) requireAccess(path string) error {
	decision := a.Guard.Check(path)
	if decision.Allow {
		return nil
	}
	switch decision.Reason {
	case nav.ReasonLoginRequired:
		return fmt.Errorf("login required, run 'gallerydeck login' first")
	case nav.ReasonInsufficientRole:
		return fmt.Errorf("your account does not have access to this command")
	default:
		return fmt.Errorf("access denied: %s", decision.Reason)
	}
}
