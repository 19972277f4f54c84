package main

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"survey-backend/internal/config"
	"survey-backend/internal/database"
	"survey-backend/internal/handlers"
	"survey-backend/internal/repository"
	"survey-backend/internal/server"

	log "github.com/sirupsen/logrus"
)

func main() {
	if err := run(); err != nil {
		log.WithError(err).Fatal("server failed")
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	cfg.ConfigureLogger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Connect to MongoDB
	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		return fmt.Errorf("failed to connect to MongoDB: %w", err)
	}
	// Runs after Serve has drained every in-flight request.
	defer func() {
		disconnectCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			log.WithError(err).Error("mongo disconnect")
		}
	}()
	db := client.Database(cfg.DBName)

	// Initialize repositories
	preSurveyRepo := repository.NewPreSurveyRepo(db)
	responseRepo := repository.NewResponseRepo(db)
	postSurveyRepo := repository.NewPostSurveyRepo(db)

	// Initialize handlers
	surveyHandler := handlers.NewSurveyHandler(preSurveyRepo, responseRepo, postSurveyRepo)
	healthHandler := handlers.NewHealthHandler(database.NewPinger(client))

	srv := &http.Server{
		Handler:           server.NewRouter(surveyHandler, healthHandler),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", cfg.Addr())
	if err != nil {
		return fmt.Errorf("listen on %s: %w", cfg.Addr(), err)
	}

	log.WithFields(log.Fields{
		"port":     cfg.Port,
		"database": cfg.DBName,
	}).Info("server is running")

	return server.Serve(ctx, srv, ln, cfg.ShutdownTimeout)
}
