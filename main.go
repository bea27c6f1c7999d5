// main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/afsarahmad786/basicValidation/internal/config"
	"github.com/afsarahmad786/basicValidation/internal/server"
	"github.com/afsarahmad786/basicValidation/internal/utils"
	"github.com/afsarahmad786/basicValidation/internal/validation"
	"go.uber.org/zap"
)

func main() {
	// Configuration carries the log settings, so it is loaded before the logger
	appConfig, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	if err := utils.Init(utils.LogOptions{Level: appConfig.LogLevel, File: appConfig.LogFile}); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logging: %v\n", err)
		os.Exit(1)
	}
	defer utils.Sync()
	utils.Logger.Info("Configuration loaded successfully",
		zap.String("register_fields", strings.Join(appConfig.RegisterFields, ",")))

	// Unknown field names are a startup error, not a silent no-op
	dispatcher, err := validation.NewDispatcher(
		validation.NewRegistry(),
		appConfig.RegisterFields,
		validation.WithLogger(utils.WithComponent("validation")),
	)
	if err != nil {
		utils.Logger.Fatal("Invalid registration validator", zap.Error(err))
	}

	router := server.NewRouter(appConfig, dispatcher)
	startServer(router, appConfig)
}

// startServer binds the HTTP server and handles graceful shutdown signals.
func startServer(router http.Handler, appConfig *config.Config) {
	httpServer := &http.Server{
		Addr:         appConfig.Addr(),
		Handler:      router,
		ReadTimeout:  config.DefaultReadTimeout,
		WriteTimeout: config.DefaultWriteTimeout,
		IdleTimeout:  config.DefaultIdleTimeout,
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		utils.Logger.Info("Shutdown signal received", zap.String(utils.FieldSignal, sig.String()))
		ctx, cancel := context.WithTimeout(context.Background(), config.DefaultShutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			utils.Logger.Error("Server shutdown error", zap.Error(err))
		}
	}()

	utils.Logger.Info("Server starting",
		zap.String(utils.FieldHost, appConfig.APIHost),
		zap.String(utils.FieldPort, strconv.Itoa(appConfig.Port)))

	if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		utils.Logger.Fatal("Server failed to start", zap.Error(err))
	}

	utils.Logger.Info("Server stopped")
}
