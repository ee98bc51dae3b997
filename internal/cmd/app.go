package cmd

import (
	"context"
	"os"

	"github.com/admitly/admitctl/internal/api"
	"github.com/admitly/admitctl/internal/authz"
	"github.com/admitly/admitctl/internal/branding"
	"github.com/admitly/admitctl/internal/config"
	"github.com/admitly/admitctl/internal/log"
	"github.com/admitly/admitctl/internal/session"
	"github.com/admitly/admitctl/internal/state"
	"github.com/admitly/admitctl/internal/tenant"
	"github.com/admitly/admitctl/internal/tui"
)

// app wires the full client stack for one invocation. Built once in the
// root command's PersistentPreRunE; every subcommand reaches it through
// getApp.
type app struct {
	cfg      *config.Config
	logger   *log.Logger
	store    *state.Store
	resolver *tenant.Resolver
	client   *api.Client
	manager  *session.Manager
	theme    *branding.TerminalTheme
	render   *tui.Renderer
}

var currentApp *app

func initApp() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if flagAPIURL != "" {
		cfg.APIURL = flagAPIURL
	}
	if flagTenantSlug != "" {
		cfg.TenantSlug = flagTenantSlug
	}
	if flagNoInput {
		cfg.NoInput = true
	}

	logCfg := log.Config{
		Level:  log.ParseLevel(cfg.Log.Level),
		Format: log.ParseFormat(cfg.Log.Format),
		Output: os.Stderr,
	}
	if flagVerbose {
		logCfg = log.VerboseConfig()
	}
	logger := log.New(logCfg)
	log.SetDefaultLogger(logger)

	store, err := state.Open(config.Dir(), cfg.APIURL)
	if err != nil {
		return err
	}

	resolver := tenant.NewResolver(store, cfg.TenantSlug, cfg.APIHost())
	client := api.NewClient(cfg.APIURL, cfg.Timeout(), resolver, store)
	theme := branding.NewTerminalTheme()
	manager := session.NewManager(client, store, theme, logger)

	currentApp = &app{
		cfg:      cfg,
		logger:   logger,
		store:    store,
		resolver: resolver,
		client:   client,
		manager:  manager,
		theme:    theme,
		render:   tui.NewRenderer(theme),
	}
	return nil
}

func getApp() *app {
	return currentApp
}

// bootstrap restores the session, behind a spinner when the terminal is
// interactive.
func (a *app) bootstrap(ctx context.Context) {
	if a.cfg.NoInput {
		a.manager.Bootstrap(ctx)
		return
	}
	tui.RunWithSpinner(ctx, "Restoring session...", func(ctx context.Context) {
		a.manager.Bootstrap(ctx)
	})
}

// requireSession bootstraps and enforces the guard, returning the
// session on success.
func (a *app) requireSession(ctx context.Context, guard authz.Guard) (session.Session, error) {
	a.bootstrap(ctx)
	sess := a.manager.Current()
	if err := guard.Check(sess); err != nil {
		return session.Session{}, err
	}
	return sess, nil
}
