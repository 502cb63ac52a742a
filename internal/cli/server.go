package cli

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"uploadhub/internal/api"
	"uploadhub/internal/api/handlers"
	"uploadhub/internal/audit"
	"uploadhub/internal/logging"
	"uploadhub/internal/services"
	"uploadhub/internal/storage"
)

// runServer contains the logic to start the HTTP server with graceful shutdown.
func runServer() error {
	// The save directory must exist before the first request arrives.
	if err := os.MkdirAll(cfg.Storage.SaveDir, 0o755); err != nil {
		return fmt.Errorf("failed to create save directory %s: %w", cfg.Storage.SaveDir, err)
	}

	// Service Initialization
	ownerSetter := &storage.ChownOwnerSetter{Helper: cfg.Storage.ChownHelper}
	storageService := services.NewStorageService(cfg, ownerSetter)
	infoService := services.NewInfoService(Version, StartTime, storageService)

	// Auditor Initialization
	loggerAuditor := audit.NewLoggerAuditor(cfg.Logging.AuditEnabled)

	uploadService := services.NewUploadService(cfg.Storage.SaveDir, storageService, loggerAuditor)

	h := handlers.NewHandlers(uploadService, infoService, cfg)
	r := api.SetupRouter(h)

	serverAddr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// --- Graceful Shutdown Setup ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		logging.Log.Infof("Server starting on %s (save dir: %s)", serverAddr, cfg.Storage.SaveDir)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Block until a signal is received
	<-stop
	logging.Log.Info("Shutting down server...")

	// Create a deadline for existing requests to complete (30 seconds)
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Log.Errorf("Server forced to shutdown: %v", err)
		return err
	}

	logging.Log.Info("Server exiting")
	return nil
}
