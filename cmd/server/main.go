package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"golang.org/x/net/netutil"
	"golang.org/x/sync/errgroup"

	httpadapter "nestquest/internal/adapters/http"
	"nestquest/internal/adapters/llm"
	"nestquest/internal/adapters/memory"
	pg "nestquest/internal/adapters/postgres"
	redisadapter "nestquest/internal/adapters/redis"
	"nestquest/internal/calc"
	"nestquest/internal/config"
	"nestquest/internal/logging"
	"nestquest/internal/ports"
	"nestquest/internal/services/comparisons"
	"nestquest/internal/services/narrative"
	"nestquest/internal/services/offers"
	"nestquest/internal/taxtable"
	"nestquest/internal/workers/narrativerunner"
)

// store is what the server needs from a storage backend.
type store interface {
	ports.OfferRepository
	ports.SelectionRepository
	ports.NarrativeJobRepository
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	if err := config.LoadDotenv(); err != nil {
		return err
	}
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	logger, err := logging.New(cfg.Env, cfg.LogVerbose)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tables, err := loadTables(cfg.TaxTablePath)
	if err != nil {
		return err
	}
	logger.Info("reference tables loaded", zap.Int("locations", len(tables.Locations())))
	calculator := calc.New(tables)

	var repo store
	if cfg.DatabaseURL == "" {
		logger.Warn("DATABASE_URL not set; using in-memory store")
		repo = memory.New()
	} else {
		db, err := pg.Connect(ctx, cfg.DatabaseURL, int32(min(cfg.MaxConns, 64)))
		if err != nil {
			return fmt.Errorf("db connect: %w", err)
		}
		defer db.Close()
		if err := db.Migrate(ctx); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
		repo = db
	}

	var (
		cache  ports.NarrativeCache = memory.NewCache()
		events ports.EventPublisher
	)
	if cfg.RedisURL != "" {
		rdb, err := redisadapter.NewClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer rdb.Close()
		cache = redisadapter.NewCache(rdb)
		events = redisadapter.NewPublisher(rdb)
	}

	narrator, err := newNarrator(ctx, cfg)
	if err != nil {
		return err
	}
	if c, ok := narrator.(interface{ Close() error }); ok {
		defer c.Close()
	}
	logger.Info("narrative provider", zap.String("provider", cfg.NarrativeProvider))

	generator := narrative.New(repo, repo, calculator, narrator, cache, events, narrative.Options{
		Timeout:  cfg.NarrativeTimeout,
		Attempts: cfg.NarrativeAttempts,
		Backoff:  2 * time.Second,
		CacheTTL: cfg.NarrativeCacheTTL,
	}, logger)

	srv := httpadapter.New(
		offers.New(repo, calculator),
		comparisons.New(repo, repo, calculator),
		repo, generator, tables, logger,
	)
	httpServer := &http.Server{
		Handler:           srv.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.ListenAddr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", cfg.ListenAddr, err)
	}
	ln = netutil.LimitListener(ln, cfg.MaxConns)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", zap.String("addr", cfg.ListenAddr), zap.Int("max_conns", cfg.MaxConns))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	if cfg.NarrativeWorkers > 0 {
		g.Go(func() error {
			logger.Info("narrative workers started", zap.Int("workers", cfg.NarrativeWorkers))
			narrativerunner.Run(gctx, repo, generator, cfg.NarrativeWorkers, 500*time.Millisecond, logger)
			return nil
		})
		sweeper := narrativerunner.NewSweeper(repo, cfg.SweepSpec, 2*cfg.NarrativeTimeout*time.Duration(max(cfg.NarrativeAttempts, 1)), 3, logger)
		g.Go(func() error { return sweeper.Run(gctx) })
	}
	return g.Wait()
}

func loadTables(path string) (*taxtable.Tables, error) {
	if path == "" {
		return taxtable.Default()
	}
	return taxtable.Load(path)
}

func newNarrator(ctx context.Context, cfg config.Config) (ports.Narrator, error) {
	switch cfg.NarrativeProvider {
	case config.ProviderGemini:
		return llm.NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	case config.ProviderOpenAI:
		return llm.NewOpenAI(cfg.LLMEndpoint, cfg.LLMAPIKey, cfg.LLMModel), nil
	default:
		return llm.Disabled{}, nil
	}
}
