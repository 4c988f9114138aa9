package cmd

import (
	"fmt"

	"github.com/go-git/go-billy/v5/osfs"
	"go.uber.org/zap"

	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/cache"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/config"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/effecttype"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/finder"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/logging"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/store"
	"github.com/TheStaticMage/firebot-disabled-effect-finder/internal/variable"
)

// app holds everything a command needs, wired from one Config.
type app struct {
	cfg    config.Config
	logger *zap.Logger
	opener *store.Opener
	finder *finder.Finder
	vars   *variable.Manager
}

func newApp(cfg config.Config) (*app, error) {
	logger, err := logging.New(logging.Options{Verbose: cfg.Verbose})
	if err != nil {
		return nil, err
	}
	log := logger.Sugar()

	types := effecttype.Default()
	if cfg.EffectCatalog != "" {
		extra, err := effecttype.LoadFile(cfg.EffectCatalog)
		if err != nil {
			return nil, err
		}
		types = types.Merge(extra)
		log.Debugf("Loaded %d effect types from %s", extra.Len(), cfg.EffectCatalog)
	}

	a := &app{
		cfg:    cfg,
		logger: logger,
		opener: store.NewOpener(osfs.New(cfg.Profile()), cache.New[*store.Document](cfg.CacheTTL), log),
		vars:   variable.NewManager(),
	}
	a.finder = finder.New(a.opener, types, cache.New[[]finder.DisabledEffect](cfg.CacheTTL), log)
	if err := a.finder.RegisterVariables(a.vars); err != nil {
		return nil, fmt.Errorf("register variables: %w", err)
	}

	log.Debugf("Using %s", cfg)
	return a, nil
}

// invalidate forgets cached copies of the given stores and the aggregate.
func (a *app) invalidate(stores []string) {
	for _, s := range stores {
		a.opener.Invalidate(s)
	}
	a.finder.Invalidate()
}
