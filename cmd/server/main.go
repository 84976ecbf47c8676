package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dispatch-portal-backend/internal/api/routes"
	"dispatch-portal-backend/internal/config"
	"dispatch-portal-backend/internal/database"
	"dispatch-portal-backend/internal/jobs"
	"dispatch-portal-backend/internal/metrics"
	"dispatch-portal-backend/internal/monitoring"
	"dispatch-portal-backend/internal/repository"
	"dispatch-portal-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "dispatch-portal-backend/docs" // This is needed for swag
)

//	@title			Dispatch Portal Backend API
//	@version		1.0
//	@description	This is the backend API for the Dispatch Portal, providing endpoints for managing organizations, workers, teams, calendars and availability scheduling.
//	@termsOfService	http://swagger.io/terms/

//	@contact.name	API Support
//	@contact.url	http://www.example.com/support
//	@contact.email	support@example.com

//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT

//	@host		localhost:7010
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Set up logging
	setupLogging(cfg.LogLevel)

	// Initialize error reporting
	if cfg.SentryDSN != "" {
		monitor, err := monitoring.NewSentryMonitor(cfg)
		if err != nil {
			logrus.Warnf("Sentry initialization failed: %v", err)
		} else {
			monitoring.Init(monitor)
		}
	}

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		logrus.Fatal("Failed to initialize database:", err)
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize router
	router := routes.SetupRoutes(db, cfg)

	// Start the background sync scheduler. The Prometheus sink reuses the
	// collectors registered by SetupRoutes, so cron runs and HTTP traffic
	// report into the same metrics.
	var sink metrics.Sink
	if promSink, err := metrics.NewPromSink(); err != nil {
		logrus.Warnf("Prometheus metrics registration failed: %v", err)
		sink = metrics.NopSink{}
	} else {
		sink = promSink
	}
	externalTeamService := service.NewExternalTeamService(cfg, repository.NewExternalTeamRepository(db), service.NewFieldServiceClient(cfg), sink)
	scheduler := jobs.NewScheduler(cfg, externalTeamService)
	if err := scheduler.Start(); err != nil {
		logrus.Fatal("Failed to start background scheduler:", err)
	}

	// Start server
	port := cfg.Port
	if port == "" {
		port = "7010"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for an interrupt, then drain in-flight work before exiting
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logrus.Info("Shutting down server")

	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Fatal("Forced shutdown:", err)
	}

	monitoring.Flush(2 * time.Second)
	logrus.Info("Server exited")
}

func setupLogging(level string) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)

	switch level {
	case "debug":
		logrus.SetLevel(logrus.DebugLevel)
	case "info":
		logrus.SetLevel(logrus.InfoLevel)
	case "warn":
		logrus.SetLevel(logrus.WarnLevel)
	case "error":
		logrus.SetLevel(logrus.ErrorLevel)
	default:
		logrus.SetLevel(logrus.InfoLevel)
	}
}
