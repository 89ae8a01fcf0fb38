package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/soerensenkarl/DrawTruss/internal/api"
	"github.com/soerensenkarl/DrawTruss/pkg/cache"
	"github.com/soerensenkarl/DrawTruss/pkg/config"
	"github.com/soerensenkarl/DrawTruss/pkg/pipeline"
	"github.com/soerensenkarl/DrawTruss/pkg/store"
)

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the DrawTruss HTTP API server",
		Long: `Run the DrawTruss HTTP API server.

The server exposes sketch vectorization and graph persistence over REST.
Cache and store backends are selected in the config file: the cache can
be file-based, Redis, or disabled; graphs persist in memory or MongoDB.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			return c.runServe(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "drawtruss.toml", "config file path")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// runServe wires config → cache → store → server and blocks until the
// context is cancelled, then shuts down gracefully.
func (c *CLI) runServe(ctx context.Context, cfg config.Config) error {
	cc, err := c.serveCache(ctx, cfg.Cache)
	if err != nil {
		return fmt.Errorf("initialize cache: %w", err)
	}

	graphs, err := serveStore(ctx, cfg.Store)
	if err != nil {
		return fmt.Errorf("initialize store: %w", err)
	}
	defer func() { _ = graphs.Close(context.Background()) }()

	runner := pipeline.NewRunner(cc, nil, c.Logger)
	defer runner.Close()

	server := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           api.NewServer(runner, graphs, c.Logger).Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", cfg.Server.Addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// serveCache builds the cache backend named in the config.
func (c *CLI) serveCache(ctx context.Context, cfg config.CacheConfig) (cache.Cache, error) {
	switch cfg.Backend {
	case "", "file":
		dir := cfg.Dir
		if dir == "" {
			var err error
			if dir, err = cacheDir(); err != nil {
				return nil, err
			}
		}
		return cache.NewFileCache(dir)
	case "redis":
		return cache.NewRedisCache(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	case "none":
		return cache.NewNullCache(), nil
	default:
		return nil, fmt.Errorf("unknown cache backend: %s", cfg.Backend)
	}
}

// serveStore builds the graph store named in the config.
func serveStore(ctx context.Context, cfg config.StoreConfig) (store.GraphStore, error) {
	switch cfg.Backend {
	case "", "memory":
		return store.NewMemoryStore(), nil
	case "mongo":
		return store.NewMongoStore(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Backend)
	}
}
