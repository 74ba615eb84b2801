package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/pflag"

	"grandstay/internal/api"
	"grandstay/internal/assistant"
	"grandstay/internal/assistant/providers"
	"grandstay/internal/config"
	"grandstay/internal/hotel"
	"grandstay/internal/jobs"
	"grandstay/internal/latency"
	"grandstay/internal/monitoring"
	"grandstay/internal/notify"
)

var (
	configFile  = pflag.String("config", "configs/config.yaml", "Path to configuration file")
	port        = pflag.Int("port", 0, "API server port (overrides config)")
	metricsPort = pflag.Int("metrics-port", 0, "Metrics server port (overrides config)")
	permissive  = pflag.Bool("permissive", false, "Accept every status change without transition checks")
)

func main() {
	pflag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *port != 0 {
		cfg.Server.Port = *port
	}
	if *metricsPort != 0 {
		cfg.Metrics.Port = *metricsPort
	}
	if *permissive {
		cfg.Workflow.Strict = false
	}

	logger := newLogger(cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		l = slog.LevelInfo
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: l}))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hub := notify.NewHub(logger.With("component", "notify"))
	defer hub.Close()
	feed := notify.NewFeed(cfg.Workflow.NotificationTTL, hub)

	metrics := monitoring.NewMetrics(monitoring.NewMonitor(), hub.Clients)

	store, err := hotel.NewStore(hotel.DefaultSeed(),
		hotel.WithStrict(cfg.Workflow.Strict),
		hotel.WithLogger(logger.With("component", "hotel")),
		hotel.WithObserver(metrics),
	)
	if err != nil {
		return fmt.Errorf("seed store: %w", err)
	}

	asst, closeHistory := initializeAssistant(ctx, cfg, logger, metrics)
	defer closeHistory()

	sessions := api.NewSessionManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	gin.SetMode(gin.ReleaseMode)
	hotelAPI := api.NewHotelAPI(api.Options{
		Store:       store,
		Assistant:   asst,
		Feed:        feed,
		Hub:         hub,
		Latency:     latency.NewRunner(),
		Sessions:    sessions,
		Metrics:     metrics,
		Logger:      logger.With("component", "api"),
		CORSOrigins: cfg.Server.CORSOrigins,
		Delays:      api.Delays{Booking: cfg.Workflow.BookingDelay, Report: cfg.Workflow.ReportDelay},
	})

	scheduler := jobs.NewScheduler(store, jobs.PublisherFunc(func(msg string) { feed.Publish(msg) }), logger.With("component", "jobs"))
	if err := scheduler.Start(cfg.Workflow.DailyCleaningSchedule); err != nil {
		return err
	}
	defer func() { <-scheduler.Stop().Done() }()

	var metricsServer *http.Server
	if cfg.Metrics.Enabled {
		metricsServer = startMetricsServer(cfg.Metrics.Port, cfg.Metrics.Path, metrics, logger)
	}

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: hotelAPI.Router,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting API server", "port", cfg.Server.Port, "strict", cfg.Workflow.Strict)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("API server: %w", err)
		}
	case <-ctx.Done():
	}

	logger.Info("shutting down servers")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("API server shutdown error", "error", err)
	}
	if metricsServer != nil {
		if err := metricsServer.Shutdown(shutdownCtx); err != nil {
			logger.Error("metrics server shutdown error", "error", err)
		}
	}
	return nil
}

// initializeAssistant builds the chat assistant. A provider that cannot be
// built leaves the assistant answering with its fallback reply.
func initializeAssistant(ctx context.Context, cfg *config.Config, logger *slog.Logger, metrics *monitoring.Metrics) (*assistant.Assistant, func()) {
	var provider providers.Provider
	if cfg.Chat.Provider != "none" {
		p, err := providers.New(ctx, providers.Config{
			Type:        cfg.Chat.Provider,
			Model:       cfg.Chat.Model,
			APIKey:      cfg.Chat.APIKey,
			BaseURL:     cfg.Chat.BaseURL,
			Endpoint:    cfg.Chat.Endpoint,
			Deployment:  cfg.Chat.Deployment,
			Temperature: cfg.Chat.Temperature,
			MaxTokens:   cfg.Chat.MaxTokens,
		})
		if err != nil {
			logger.Warn("chat provider unavailable, assistant will use fallback replies", "provider", cfg.Chat.Provider, "error", err)
		} else {
			provider = p
		}
	}

	closeHistory := func() {}
	var history assistant.History = assistant.NewMemoryHistory(cfg.Chat.History.Limit)
	if addr := cfg.Chat.History.RedisAddr; addr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: cfg.Chat.History.RedisPassword,
			DB:       cfg.Chat.History.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unavailable, keeping chat history in memory", "addr", addr, "error", err)
			rdb.Close()
		} else {
			history = assistant.NewRedisHistory(rdb, cfg.Chat.History.Limit, cfg.Chat.History.TTL)
			closeHistory = func() { rdb.Close() }
		}
	}

	return assistant.New(provider, history,
		assistant.WithTimeout(cfg.Chat.Timeout),
		assistant.WithLogger(logger.With("component", "assistant")),
		assistant.WithRecorder(metrics),
		assistant.WithSessionTTL(cfg.Auth.TokenTTL),
	), closeHistory
}

func startMetricsServer(port int, path string, metrics *monitoring.Metrics, logger *slog.Logger) *http.Server {
	router := gin.New()
	router.GET(path, gin.WrapH(metrics.Handler()))

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: router,
	}
	go func() {
		logger.Info("starting metrics server", "port", port, "path", path)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server error", "error", err)
		}
	}()
	return server
}
