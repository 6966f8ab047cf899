package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/btccrack27/ai-reels/internal/api"
	"github.com/btccrack27/ai-reels/internal/config"
	"github.com/btccrack27/ai-reels/internal/export"
	"github.com/btccrack27/ai-reels/internal/history"
	"github.com/btccrack27/ai-reels/internal/logging"
	"github.com/btccrack27/ai-reels/internal/session"
)

var errNotLoggedIn = errors.New("not logged in; run `reels login` first")

type commandContext struct {
	configFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger

	sessionOnce sync.Once
	manager     *session.Manager
	client      *api.Client
	sessionErr  error

	historyOnce  sync.Once
	historyStore *history.Store
	historyErr   error
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		if err := cfg.EnsureDirectories(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

func (c *commandContext) ensureLogger() *slog.Logger {
	c.loggerOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		logger, err := logging.NewFromConfig(cfg)
		if err != nil {
			c.logger = logging.NewNop()
			return
		}
		c.logger = logger
	})
	return c.logger
}

// ensureSession wires the token store, API client, and auth manager together.
// The client pushes 401s into the manager, which refreshes or expires the
// stored session; the manager drives the same client for auth calls.
func (c *commandContext) ensureSession() (*session.Manager, *api.Client, error) {
	c.sessionOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.sessionErr = err
			return
		}
		logger := c.ensureLogger()

		storage := session.NewFileStorage(filepath.Join(cfg.Paths.StateDir, "session.json"))
		store, err := session.NewStore(storage)
		if err != nil {
			c.sessionErr = fmt.Errorf("open session store: %w", err)
			return
		}

		var mgr *session.Manager
		client := api.NewClient(
			api.Config{BaseURL: cfg.API.BaseURL, TimeoutSeconds: cfg.API.TimeoutSeconds},
			api.WithTokenSource(store),
			api.WithLogger(logger),
			api.WithUnauthorizedHandler(func(ctx context.Context) {
				mgr.HandleUnauthorized(ctx)
			}),
		)
		mgr = session.NewManager(store, client, session.WithLogger(logger))

		c.manager = mgr
		c.client = client
	})
	return c.manager, c.client, c.sessionErr
}

// requireUser resolves the stored session and fails when no valid account
// remains. Commands behind this gate never run half-authenticated.
func (c *commandContext) requireUser(ctx context.Context) (*api.Client, error) {
	mgr, client, err := c.ensureSession()
	if err != nil {
		return nil, err
	}
	if err := mgr.LoadUser(ctx); err != nil {
		return nil, err
	}
	snap := mgr.Snapshot()
	if !snap.Authenticated {
		if mgr.State() == session.StateExpired {
			return nil, fmt.Errorf("session expired; run `reels login` again")
		}
		return nil, errNotLoggedIn
	}
	return client, nil
}

func (c *commandContext) ensureHistoryStore() (*history.Store, error) {
	c.historyOnce.Do(func() {
		cfg, err := c.ensureConfig()
		if err != nil {
			c.historyErr = err
			return
		}
		store, err := history.Open(cfg)
		if err != nil {
			c.historyErr = fmt.Errorf("open history cache: %w", err)
			return
		}
		c.historyStore = store
	})
	return c.historyStore, c.historyErr
}

func (c *commandContext) exportWriter() (*export.Writer, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}
	return export.NewWriter(cfg.Paths.DownloadDir), nil
}
