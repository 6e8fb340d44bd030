package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	faqschema "github.com/goliatone/go-faqschema"
	"github.com/goliatone/go-faqschema/internal/config"
	"github.com/goliatone/go-faqschema/internal/logging"
	"github.com/goliatone/go-faqschema/pkg/fields"
	"github.com/goliatone/go-faqschema/pkg/fields/sqlstore"
	"github.com/goliatone/go-faqschema/pkg/page"
	"github.com/goliatone/go-faqschema/pkg/render"
	"github.com/goliatone/go-faqschema/pkg/render/template/pongo"
	"github.com/goliatone/go-faqschema/pkg/site"
)

type commandContext struct {
	configFlag  *string
	siteFlag    *string
	logModeFlag *string

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag, siteFlag, logModeFlag *string) *commandContext {
	return &commandContext{
		configFlag:  configFlag,
		siteFlag:    siteFlag,
		logModeFlag: logModeFlag,
	}
}

// ensureConfig loads the configuration once and applies flag overrides.
func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		cfg, err := config.Load(flagValue(c.configFlag))
		if err != nil {
			c.configErr = err
			return
		}
		if value := flagValue(c.siteFlag); value != "" {
			cfg.Site = value
		}
		if value := flagValue(c.logModeFlag); value != "" {
			cfg.Log.Mode = strings.ToLower(value)
		}
		if err := cfg.Validate(); err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}

// environment is everything a command needs to render pages.
type environment struct {
	cfg      *config.Config
	logger   *zap.Logger
	site     *site.Site
	store    fields.Store
	renderer *page.Renderer
	closers  []func() error
}

func (e *environment) Close() error {
	var errs []error
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// buildEnvironment wires config, logger, site fixture, field store, pipeline
// and page renderer.
func (c *commandContext) buildEnvironment(ctx context.Context) (*environment, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cfg.Log.Mode)
	if err != nil {
		return nil, err
	}
	env := &environment{cfg: cfg, logger: logger}
	env.closers = append(env.closers, func() error {
		_ = logger.Sync()
		return nil
	})

	s, err := loadSite(cfg)
	if err != nil {
		_ = env.Close()
		return nil, err
	}
	env.site = s

	store, err := openFieldStore(ctx, cfg, s)
	if err != nil {
		_ = env.Close()
		return nil, err
	}
	env.store = store
	if closer, ok := store.(interface{ Close() error }); ok {
		env.closers = append(env.closers, closer.Close)
	}

	pipeline := render.NewPipeline(render.WithLogger(logger))
	if _, err := faqschema.Register(pipeline, store,
		faqschema.WithLogger(logger),
		faqschema.WithPriority(cfg.FAQ.Priority),
	); err != nil {
		_ = env.Close()
		return nil, err
	}

	opts := []page.Option{page.WithLogger(logger)}
	if cfg.Templates != "" {
		engine, err := pongo.New(
			pongo.WithBaseDir(cfg.Templates),
			pongo.WithFS(faqschema.EmbeddedTemplates()),
		)
		if err != nil {
			_ = env.Close()
			return nil, err
		}
		opts = append(opts, page.WithTemplates(engine))
	}

	renderer, err := page.NewRenderer(s, pipeline, opts...)
	if err != nil {
		_ = env.Close()
		return nil, err
	}
	env.renderer = renderer

	logger.Debug("environment ready",
		zap.String("site", cfg.Site),
		zap.String("fields_backend", cfg.Fields.Backend),
		zap.Strings("extensions", pipeline.List()),
	)
	return env, nil
}

func loadSite(cfg *config.Config) (*site.Site, error) {
	if strings.TrimSpace(cfg.Site) == "" {
		return nil, errors.New("no site fixture configured; pass --site or set site in the config file")
	}
	return site.LoadFile(cfg.Site)
}

// openFieldStore returns the configured field store. The memory backend is
// seeded from the site fixture; the sqlite backend reads what import wrote.
func openFieldStore(ctx context.Context, cfg *config.Config, s *site.Site) (fields.Store, error) {
	switch cfg.Fields.Backend {
	case config.BackendSQLite:
		store, err := sqlstore.Open(ctx, cfg.Fields.SQLitePath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case config.BackendMemory:
		store := fields.NewMap()
		s.SeedFields(store)
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported fields backend %q", cfg.Fields.Backend)
	}
}

func flagValue(value *string) string {
	if value == nil {
		return ""
	}
	return strings.TrimSpace(*value)
}
