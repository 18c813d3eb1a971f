package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"bakery-storefront/internal/changefeed"
	"bakery-storefront/internal/client"
	"bakery-storefront/internal/notify"
	"bakery-storefront/internal/repository"
	"bakery-storefront/internal/server"
	"bakery-storefront/internal/service"
	"bakery-storefront/internal/session"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

const (
	sessionIdleTimeout = 24 * time.Hour
	sessionPruneEvery  = 10 * time.Minute
	shutdownTimeout    = 30 * time.Second
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	db, err := client.InitDBClient(cfg.Database)
	if err != nil {
		return err
	}
	if err := client.Migrate(db); err != nil {
		return err
	}

	emailClient := client.NewEmailClient(&cfg.Email)
	if !emailClient.Configured() {
		logger.Warn("EMAIL_API_KEY is not set; order emails will fail and be logged")
	}
	notifier := notify.NewNotifier(emailClient, cfg.Email, cfg.Store)

	itemRepo := repository.NewItemRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	settingRepo := repository.NewSettingRepository(db)

	catalogService := service.NewCatalogService(itemRepo)
	settingService := service.NewSettingService(settingRepo, cfg.AdminEmail)
	orderService := service.NewOrderService(
		orderRepo,
		settingService,
		notifier,
		changefeed.NewBroker(),
		logger,
		time.Now,
	)
	storefrontService := service.NewStorefrontService(catalogService, orderService, settingService, time.Now)

	sessions := session.NewStore(time.Now)

	srv := server.NewServer(server.Services{
		Catalog:    catalogService,
		Orders:     orderService,
		Settings:   settingService,
		Storefront: storefrontService,
		Notifier:   notifier,
	}, sessions, emailClient, cfg.AdminPassword, logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	go pruneSessions(ctx, sessions)

	serverAddr := cfg.HTTP.Address()
	errCh := make(chan error, 1)

	logger.Info("Starting HTTP server", zap.String("address", serverAddr))
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("Signal received, starting graceful shutdown...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("HTTP server shutdown", zap.Error(err))
		_ = srv.Close()
	}

	// let queued order emails go out before the process exits
	orderService.Wait()

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("Shutdown complete")
	return nil
}

func pruneSessions(ctx context.Context, sessions *session.Store) {
	ticker := time.NewTicker(sessionPruneEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := sessions.Prune(sessionIdleTimeout); n > 0 {
				logger.Debug("pruned idle sessions", zap.Int("count", n))
			}
		}
	}
}
