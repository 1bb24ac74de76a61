package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/net/netutil"
	"k8s.io/utils/clock"

	"pizzametrics/internal/config"
	"pizzametrics/internal/export"
	"pizzametrics/internal/handler"
	"pizzametrics/internal/logging"
	"pizzametrics/internal/metrics"
	custommiddleware "pizzametrics/internal/middleware"
	"pizzametrics/internal/prom"
	"pizzametrics/internal/repository"
	"pizzametrics/internal/service"
	"pizzametrics/internal/session"
	"pizzametrics/internal/token"
	"pizzametrics/internal/validation"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	base := slog.NewJSONHandler(os.Stdout, nil)

	if err := run(ctx, base); err != nil {
		slog.New(base).Error("application failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, base slog.Handler) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	clk := clock.RealClock{}

	logger := slog.New(base)
	var shipper *logging.Shipper
	if cfg.Logging.ShippingEnabled() {
		shipper = logging.NewShipper(&cfg.Logging, clk, base)
		shipper.Start(ctx)
		defer shipper.Close()

		logger = slog.New(logging.NewHandler(base, shipper))
		logger.Info("log shipping enabled", slog.String("url", cfg.Logging.URL))
	}

	repo, err := repository.NewPizzaRepository(ctx, &cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to create repository: %w", err)
	}
	defer repo.Close()

	sessions, err := session.New(&cfg.Session)
	if err != nil {
		return fmt.Errorf("failed to create session store: %w", err)
	}
	defer sessions.Close()

	minter, err := token.New(cfg.Session.TokenLength)
	if err != nil {
		return fmt.Errorf("failed to create token minter: %w", err)
	}

	store := metrics.NewStore(&cfg.Metrics, clk, metrics.NewProcSampler())

	maintainer := metrics.NewMaintainer(store, cfg.Metrics.PruneInterval, clk, logger)
	maintainer.Start(ctx)
	defer maintainer.Close()

	exporter := export.NewExporter(store, &cfg.Metrics, clk, logger)
	exporter.Start(ctx)
	defer exporter.Close()

	registry := prometheus.NewRegistry()
	if err := registry.Register(prom.NewCollector(store, cfg.Metrics.Source)); err != nil {
		return fmt.Errorf("failed to register collector: %w", err)
	}

	var drops prom.DropSource
	if shipper != nil {
		drops = shipper
	}
	if err := prom.RegisterInfra(registry, repo, sessions, drops); err != nil {
		return err
	}

	authService := service.NewAuthService(repo, minter, sessions, store, cfg.Validation.BcryptCost)
	orderService := service.NewOrderService(repo, store, clk, cfg.Orders.PageSize)

	if cfg.Admin.Enabled() {
		adminID, err := authService.EnsureAdmin(ctx, cfg.Admin.Name, cfg.Admin.Email, cfg.Admin.Password)
		if err != nil {
			return fmt.Errorf("failed to bootstrap admin: %w", err)
		}
		logger.Info("admin account ready",
			slog.Int64("user_id", adminID),
			slog.String("email", cfg.Admin.Email))
	}

	h := handler.New(
		authService,
		orderService,
		validation.NewCredentialsValidator(cfg.Validation.MinPasswordLength),
		validation.NewOrderValidator(cfg.Validation.MaxOrderItems),
		store,
		repo,
		logger,
		cfg.Server.Version,
	)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(custommiddleware.CORS(&cfg.CORS))
	e.Use(middleware.BodyLimit(cfg.Validation.MaxRequestBodySize))
	e.Use(custommiddleware.RequestLogger(logger))
	e.Use(custommiddleware.Auth(sessions))
	e.Use(custommiddleware.Metrics(store, clk))

	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{})))
	h.Register(e, custommiddleware.LoginRateLimit(&cfg.RateLimit, store, logger))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("starting HTTP server",
		slog.String("addr", addr),
		slog.String("version", cfg.Server.Version),
		slog.Int("max_connections", cfg.Server.MaxConnections))

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to create HTTP listener: %w", err)
	}
	if cfg.Server.MaxConnections > 0 {
		listener = netutil.LimitListener(listener, cfg.Server.MaxConnections)
	}

	server := &http.Server{
		Handler:        e,
		ReadTimeout:    5 * time.Second,
		WriteTimeout:   10 * time.Second,
		IdleTimeout:    120 * time.Second,
		MaxHeaderBytes: 1 << 14,
	}

	go func() {
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.String("error", err.Error()))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown failed: %w", err)
	}

	return nil
}
