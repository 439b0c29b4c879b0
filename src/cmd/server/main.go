package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/api-sage/bankwire/src/internal/adapter/events"
	"github.com/api-sage/bankwire/src/internal/adapter/http/controller"
	"github.com/api-sage/bankwire/src/internal/adapter/http/router"
	"github.com/api-sage/bankwire/src/internal/adapter/repository/memory"
	"github.com/api-sage/bankwire/src/internal/config"
	"github.com/api-sage/bankwire/src/internal/logger"
	"github.com/api-sage/bankwire/src/internal/usecase/services"
	"golang.org/x/sync/errgroup"
)

// transferPublisher is what the process owns: a publisher it must close on
// shutdown.
type transferPublisher interface {
	services.TransferPublisher
	io.Closer
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "bankwire: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg.Env, cfg.LogLevel); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	publisher := newPublisher(ctx, cfg.Kafka)
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("close transfer publisher failed", err, nil)
		}
	}()

	accountRepo := memory.NewAccountRepository()
	transferRepo := memory.NewTransferRepository()

	engine := services.NewTransferEngine(accountRepo, transferRepo, cfg.Transfer)
	accountService := services.NewAccountService(accountRepo)
	transferService := services.NewTransferService(accountRepo, transferRepo, engine, publisher)

	handler := router.New(
		controller.NewAccountController(accountService),
		controller.NewTransferController(transferService),
	)

	server := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server starting", logger.Fields{
			"address":         server.Addr,
			"env":             cfg.Env,
			"transferTimeout": cfg.Transfer.Timeout.String(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("http server shutting down", nil)

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http server shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", err, nil)
		return err
	}

	logger.Info("server stopped", nil)
	return nil
}

func newPublisher(ctx context.Context, cfg config.KafkaConfig) transferPublisher {
	if !cfg.Enabled() {
		logger.Info("kafka brokers not configured, committed transfers will not be published", nil)
		return events.NopPublisher{}
	}

	ensureCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := events.EnsureTopic(ensureCtx, cfg.Brokers, cfg.TransferTopic); err != nil {
		logger.Warn("kafka topic check failed", logger.Fields{
			"topic":  cfg.TransferTopic,
			"reason": err.Error(),
		})
	}

	logger.Info("kafka transfer publisher configured", logger.Fields{
		"brokers": cfg.Brokers,
		"topic":   cfg.TransferTopic,
	})
	return events.NewKafkaPublisher(cfg.Brokers, cfg.TransferTopic)
}
