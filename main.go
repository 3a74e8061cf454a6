package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"

	"github.com/Abinet16/Mulu-Asset-Managment-template/config"
	"github.com/Abinet16/Mulu-Asset-Managment-template/database"
	"github.com/Abinet16/Mulu-Asset-Managment-template/handlers"
	"github.com/Abinet16/Mulu-Asset-Managment-template/middleware"
	"github.com/Abinet16/Mulu-Asset-Managment-template/routes"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found")
	}

	config.LoadConfig()

	if err := database.Connect(); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := database.EnsureIndexes(); err != nil {
		slog.Error("failed to create indexes", "error", err)
		os.Exit(1)
	}

	handlers.InitCollections()

	if err := handlers.SeedAdmin(); err != nil {
		slog.Error("failed to seed admin user", "error", err)
		os.Exit(1)
	}

	router := mux.NewRouter()
	routes.RegisterRoutes(router)

	// Global middlewares (order matters!)
	router.Use(middleware.LoggingMiddleware)
	router.Use(middleware.RecoveryMiddleware)
	router.Use(middleware.CorsMiddleware)

	srv := &http.Server{
		Addr:         ":" + config.Port,
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("asset management API running", "addr", "http://localhost:"+config.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	<-quit
	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Warn("server forced shutdown", "error", err)
	}

	database.Disconnect()
	slog.Info("server stopped gracefully")
}
