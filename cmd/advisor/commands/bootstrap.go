package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/cryptoadvisor/internal/advisor"
	"github.com/wonny/cryptoadvisor/internal/catalog"
	"github.com/wonny/cryptoadvisor/pkg/config"
	"github.com/wonny/cryptoadvisor/pkg/database"
	"github.com/wonny/cryptoadvisor/pkg/httputil"
	"github.com/wonny/cryptoadvisor/pkg/logger"
)

// app holds the wired components every command needs
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	db      *database.DB // nil unless the catalog lives in postgres
	source  catalog.Source
	store   *catalog.Store
	advisor *advisor.Advisor
}

// loadConfig reads env config and applies the global flag overrides.
// quiet lowers logging to warnings unless --verbose is set.
func loadConfig(quiet bool) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	if catalogPath != "" {
		cfg.Catalog.Source = config.CatalogSourceFile
		cfg.Catalog.Path = catalogPath
	}
	if catalogSource != "" {
		cfg.Catalog.Source = catalogSource
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch {
	case verbose:
		cfg.LogLevel = "debug"
	case quiet:
		cfg.LogLevel = "warn"
	}

	return cfg, nil
}

// bootstrap loads config, opens the catalog source and builds the advisor
func bootstrap(ctx context.Context, quiet bool) (*app, error) {
	cfg, err := loadConfig(quiet)
	if err != nil {
		return nil, err
	}

	log := logger.New(cfg)
	a := &app{cfg: cfg, log: log}

	source, err := a.openSource(ctx)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.source = source

	snap, err := source.Load(ctx)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("load catalog from %s: %w", source.Name(), err)
	}

	store, err := catalog.NewStore(snap)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.store = store
	a.advisor = advisor.New(store, log)

	log.WithFields(map[string]interface{}{
		"source":  source.Name(),
		"version": snap.Version(),
		"assets":  snap.Len(),
	}).Info("Catalog loaded")

	return a, nil
}

func (a *app) openSource(ctx context.Context) (catalog.Source, error) {
	switch a.cfg.Catalog.Source {
	case config.CatalogSourceFile:
		return catalog.FileSource{Path: a.cfg.Catalog.Path}, nil

	case config.CatalogSourceHTTP:
		client := httputil.NewWithTimeout(a.log, 15*time.Second)
		return catalog.HTTPSource{URL: a.cfg.Catalog.URL, Fetcher: client}, nil

	case config.CatalogSourcePostgres:
		repo, err := a.openRepository(ctx)
		if err != nil {
			return nil, err
		}
		return repo, nil

	default:
		return catalog.EmbeddedSource{}, nil
	}
}

// openRepository connects to postgres and makes sure the catalog tables exist
func (a *app) openRepository(ctx context.Context) (*catalog.Repository, error) {
	if a.db == nil {
		db, err := database.New(ctx, a.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("connect to database: %w", err)
		}
		a.db = db
		a.log.Info("Connected to database")
	}

	repo := catalog.NewRepository(a.db.Pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		return nil, fmt.Errorf("ensure catalog schema: %w", err)
	}
	return repo, nil
}

// Close releases the database pool, if any
func (a *app) Close() {
	if a.db != nil {
		a.db.Close()
	}
}
