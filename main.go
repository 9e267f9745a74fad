package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pethotel/api"
	"pethotel/internal/bootstrap"
	"pethotel/internal/shared/config"
	"pethotel/internal/shared/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("❌ Configuration error:", err)
	}

	zapLogger, err := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		log.Fatal("❌ Logger error:", err)
	}
	appLogger := logger.NewZapAdapter(zapLogger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, cfg, appLogger)
	stop()
	zapLogger.Sync()

	if err != nil {
		os.Exit(1)
	}
}

// run sert l'API jusqu'à l'annulation de ctx; toute erreur retournée a déjà été journalisée
func run(ctx context.Context, cfg *config.Config, appLogger logger.Logger) error {
	app, err := bootstrap.New(ctx, cfg, appLogger)
	if err != nil {
		appLogger.WithError(err).Error("failed to initialize data source", map[string]interface{}{
			"source": cfg.Source.Describe(),
		})
		return err
	}
	defer app.Close()

	handlers := api.NewHandlers(app.Matcher, app.Executor, api.ServiceInfo{
		Name:    cfg.App.Name,
		Version: cfg.App.Version,
		Debug:   cfg.App.Environment == "development",
	}, appLogger)

	server := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      handlers.Routes(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	serveErr := make(chan error, 1)
	go func() {
		appLogger.Info("server started", map[string]interface{}{
			"address": cfg.Server.Address,
			"source":  cfg.Source.Describe(),
		})
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		appLogger.WithError(err).Error("server stopped unexpectedly", nil)
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		appLogger.WithError(err).Error("graceful shutdown failed", nil)
		return err
	}
	appLogger.Info("server stopped", nil)
	return nil
}
