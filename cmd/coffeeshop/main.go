package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"coffeeshop/internal/config"
	"coffeeshop/internal/database"
	"coffeeshop/internal/handler"
	"coffeeshop/internal/service"
	"coffeeshop/internal/storage"
)

func main() {
	cfg, err := config.New(os.Args[1:])
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(2)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel})))

	store, db, err := openStore(cfg)
	if err != nil {
		slog.Error("failed to open order store", "error", err)
		os.Exit(1)
	}
	if db != nil {
		defer database.CloseDB(db)
	}

	// Services
	menuSvc := service.NewMenuService(service.DefaultMenu())
	orderSvc := service.NewOrderService(store)

	srv := &http.Server{
		Addr:         cfg.RunAddress,
		Handler:      handler.NewRouter(menuSvc, orderSvc),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	slog.Info("starting server", "addr", cfg.RunAddress)
	slog.Info("available endpoints",
		"routes", []string{
			"GET    /api/menu",
			"POST   /api/orders",
			"GET    /api/orders",
			"GET    /api/orders/{id}",
			"PUT    /api/orders/{id}",
			"DELETE /api/orders/{id}",
			"GET    /health",
		})

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "error", err)
			select {
			case quit <- syscall.SIGTERM:
			default:
			}
		}
	}()

	<-quit
	slog.Info("shutting down...")

	ctxShut, cancelShut := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShut()

	if err := srv.Shutdown(ctxShut); err != nil {
		slog.Error("server shutdown failed", "error", err)
	}

	slog.Info("server stopped")
}

// openStore picks PostgreSQL when a database URI is configured and the
// in-memory store otherwise. The returned *sql.DB is nil for the latter.
func openStore(cfg *config.Config) (service.OrderStore, *sql.DB, error) {
	if cfg.DatabaseURI == "" {
		slog.Info("using in-memory order store")
		return storage.NewMemoryStore(), nil, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.NewDB(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, nil, err
	}
	if err := database.InitSchema(ctx, db); err != nil {
		database.CloseDB(db)
		return nil, nil, err
	}

	slog.Info("using postgres order store")
	return database.NewOrderStore(db), db, nil
}
