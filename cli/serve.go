package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"investsim/config"
	httpLayer "investsim/http"
	"investsim/repository"
	"investsim/service"
)

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", os.Getenv("INVESTSIM_CONFIG"), "Path to a TOML config file")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	level, _ := cfg.LogLevel()
	logger := newLogger(level)
	slog.SetDefault(logger)
	bootLog := logger.With("module", "bootstrap")

	cache, closeCache := buildCache(cmd.Context(), cfg.Cache, bootLog)
	defer closeCache()

	marketService := service.NewMarketService(service.MarketConfig{
		CDIRate:    cfg.Market.CDIRate,
		SelicRate:  cfg.Market.SelicRate,
		HistoryTTL: cfg.Market.HistoryTTL.Duration,
	}, cache, logger)

	articleService := service.NewArticleService(repository.NewFileArticleRepository(cfg.Articles.DataDir), logger)

	var rateLimiter *httpLayer.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = httpLayer.NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window.Duration)
		defer rateLimiter.Stop()
	}

	router := httpLayer.NewRouter(
		httpLayer.RouterConfig{
			AllowedOrigins: cfg.Server.AllowedOrigins,
			MetricsEnabled: cfg.Metrics.Enabled,
			RequestTimeout: cfg.Server.WriteTimeout.Duration,
		},
		httpLayer.NewSimulationHandler(logger),
		httpLayer.NewMarketHandler(marketService, logger),
		httpLayer.NewArticleHandler(articleService, logger),
		rateLimiter,
		logger,
	)

	server := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  cfg.Server.IdleTimeout.Duration,
	}

	serverErr := make(chan error, 1)
	go func() {
		bootLog.Info("API listening", "addr", "http://"+cfg.Addr(), "origins", cfg.Server.AllowedOrigins)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case err := <-serverErr:
		return fmt.Errorf("start server: %w", err)
	case sig := <-quit:
		bootLog.Info("shutting down server", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Duration)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	bootLog.Info("server exited")
	return nil
}

// buildCache returns the configured cache. An unreachable redis falls back to
// the in-memory cache: cached CDI histories are not critical.
func buildCache(ctx context.Context, cfg config.CacheConfig, logger *slog.Logger) (repository.CacheRepository, func()) {
	if cfg.Backend != config.CacheRedis {
		return repository.NewMemoryCache(), func() {}
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.KeyPrefix)

	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := redisCache.Ping(pingCtx); err != nil {
		logger.Warn("redis unavailable, using in-memory cache", "addr", cfg.RedisAddr, "error", err)
		redisCache.Close()
		return repository.NewMemoryCache(), func() {}
	}

	logger.Info("using redis cache", "addr", cfg.RedisAddr)
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			logger.Warn("failed to close redis client", "error", err)
		}
	}
}
