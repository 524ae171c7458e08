package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"elsabor_server/api"
	"elsabor_server/config"
	"elsabor_server/database"
	"elsabor_server/services"
	"elsabor_server/structs"

	"github.com/MonkyMars/gecho"
	"github.com/joho/godotenv"
)

var logger *gecho.Logger
var cfg *structs.Config

func main() {
	envErr := godotenv.Load()

	cfg = config.GetConfig()
	logger = config.InitializeLogger()

	if envErr != nil {
		logger.Warn("No .env file found or error loading .env file, proceeding with system environment variables")
	}

	if cfg.Database.User == "" || cfg.Database.Password == "" {
		logger.Fatal("Database credentials are not configured, refusing to start")
	}

	if err := database.Initialize(); err != nil {
		logger.Fatal("Failed to initialize database", gecho.Field("error", err))
	}

	// Setup graceful shutdown BEFORE starting the server
	setupGracefulShutdown(logger)

	seedAdminCredential()

	srv := newServer(cfg, api.App())

	logger.Info(fmt.Sprintf("Starting server (%s) on %s", cfg.Server.AppName, cfg.Server.Port))

	if err := srv.ListenAndServe(); err != nil {
		logger.Error("Failed to start server", gecho.Field("error", err))
	}
}

// newServer builds the HTTP server with the configured timeouts and limits.
func newServer(cfg *structs.Config, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:           cfg.Server.Port,
		Handler:        handler,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
	}
}

// seedAdminCredential makes sure an admin login row exists. Failure is logged
// but never fatal; login falls back to the built-in credentials.
func seedAdminCredential() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	authService := services.NewAuthService(logger, database.GetInstance())
	if err := authService.EnsureAdminCredential(ctx); err != nil {
		logger.Error("Failed to seed admin credential", gecho.Field("error", err))
	}
}

// setupGracefulShutdown sets up signal handling for graceful application shutdown
func setupGracefulShutdown(logger *gecho.Logger) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	logger.Info("Graceful shutdown handler initialized")

	go func() {
		sig := <-c
		logger.Info("Received shutdown signal", "signal", sig)
		if err := database.CloseInstance(); err != nil {
			logger.Error("Failed to close database", gecho.Field("error", err))
		}
		os.Exit(0)
	}()
}
