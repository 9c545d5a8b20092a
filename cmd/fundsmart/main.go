package main

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"

	"fundsmart/internal/amqp"
	"fundsmart/internal/backend"
	"fundsmart/internal/cache"
	"fundsmart/internal/cli"
	apphttp "fundsmart/internal/http"
	applog "fundsmart/internal/log"
	"fundsmart/internal/metrics"
	"fundsmart/internal/reveal"
	"fundsmart/internal/routes"
	"fundsmart/internal/theme"
	"fundsmart/internal/widgets"
)

const (
	pageCacheSize        = 100
	cacheCleanupInterval = 5 * time.Minute
	shutdownTimeout      = 30 * time.Second
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger(os.Getenv("LOG_LEVEL"))
	if err := run(logger); err != nil {
		logger.Error("fundsmart stopped with error", applog.FieldError, err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}

// run owns every resource it opens, so deferred cleanups always execute
// before main exits.
func run(logger *applog.Logger) error {
	cfg := cli.LoadAndValidateConfig(logger)
	data := cli.LoadFixtures(logger, cfg.FixturesFile)

	recs, err := widgets.GetRecommendationsPresenter(cfg.RecommendationsView)
	if err != nil {
		return fmt.Errorf("recommendations view: %w", err)
	}
	sidebar, err := widgets.GetSidebarPresenter(cfg.SidebarView)
	if err != nil {
		return fmt.Errorf("sidebar view: %w", err)
	}
	backendCfg, err := backend.FromAppConfig(cfg)
	if err != nil {
		return fmt.Errorf("backend configuration: %w", err)
	}

	ctx, stop := cli.SignalContext(logger)
	defer stop()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	recorder := metrics.New(reg)

	prefs, err := backend.NewFactory(logger).CreateBackend(ctx, backendCfg)
	if err != nil {
		return fmt.Errorf("create %s preference backend: %w", backendCfg.Type, err)
	}
	defer func() {
		if err := prefs.Cleanup(); err != nil {
			logger.Error("Preference backend cleanup failed", applog.FieldError, err)
		}
	}()

	themeOpts := []theme.Option{theme.WithRecorder(recorder), theme.WithLogger(logger)}
	if cfg.AMQPURL != "" {
		publisher, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue, logger)
		if err != nil {
			logger.Warn("AMQP unavailable, theme changes will not be published", applog.FieldError, err)
		} else {
			defer publisher.Close()
			themeOpts = append(themeOpts, theme.WithPublisher(publisher))
		}
	}
	themeService := theme.NewService(prefs.Store, backendCfg.Type.String(), themeOpts...)

	builder := widgets.NewBuilder(data,
		widgets.WithRecommendations(recs),
		widgets.WithSidebar(sidebar),
		widgets.WithCurrency(cfg.DefaultCurrency))

	pageCache := cache.NewLRUCache[widgets.Page](pageCacheSize, cfg.CacheTTL).Observe(recorder.CacheObserver())
	cacheManager := cache.NewManager(logger.Logger.With(applog.FieldComponent, applog.ComponentCache))
	cacheManager.Register(pageCache)
	cacheManager.StartCleanup(cacheCleanupInterval)
	defer cacheManager.Stop()

	ready := reveal.After(cfg.ReadyDelay)

	srv := apphttp.NewServer(":"+cfg.Port, apphttp.Deps{
		Resolver:           routes.NewResolver(routes.DefaultRegistry()),
		Pages:              widgets.NewCachedBuilder(builder, pageCache),
		Builder:            builder,
		Theme:              themeService,
		Metrics:            recorder,
		Logger:             logger,
		Ready:              ready,
		StoreHealth:        prefs.Health,
		Currency:           cmp.Or(cfg.DefaultCurrency, data.Currency),
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("Starting fundsmart server",
			applog.FieldOperation, applog.OpStartup,
			"port", cfg.Port,
			applog.FieldBackend, backendCfg.Type,
			"ready_delay", cfg.ReadyDelay.String())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen on port %s: %w", cfg.Port, err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("Shutting down server", applog.FieldOperation, applog.OpShutdown)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
