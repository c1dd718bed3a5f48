package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"switchboard/auth"
	"switchboard/classify"
	"switchboard/delegation"
	"switchboard/httpapi"
	"switchboard/internal"
	"switchboard/runtime"
	"switchboard/runtime/workers"
	"switchboard/services"
	"switchboard/storage"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer (database cleanup included)
// executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Storage (BadgerDB + Bluge index)
	db, err := badger.Open(badger.DefaultOptions(config.BadgerFilepath).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	blugeWriter, err := bluge.OpenWriter(bluge.DefaultConfig(config.BlugeFilepath))
	if err != nil {
		return fmt.Errorf("search index opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing Bluge index...")
		_ = blugeWriter.Close()
	}()

	// 3. Repositories
	users := storage.NewUserRepository(db, log)
	sessions := storage.NewSessionRepository(db)
	conversations := storage.NewConversationRepository(db, log)
	messages := storage.NewMessageRepository(db, blugeWriter, log)
	metadata := storage.NewMetadataRepository(db)
	readState := storage.NewReadStateRepository(db)
	posts := storage.NewPostRepository(db)
	delegations := storage.NewDelegationRepository(db)

	// 4. Fan-out runtime & services
	registry := runtime.NewRegistry(config.ChannelCapacity)
	broadcaster := runtime.NewBroadcaster(registry, log)
	engine := delegation.NewEngine(delegations, conversations)
	classifier := classify.NewHTTPClassifier(config.ClassifierURL, config.ClassifierTimeout, log)
	categorizer := services.NewCategorizer(classifier, metadata, broadcaster,
		config.CategorizationWorkers, config.ClassifierTimeout, log)

	authSvc := services.NewAuthService(users, sessions)
	messaging := services.NewMessagingService(conversations, messages, metadata,
		readState, users, engine, broadcaster, categorizer, log)
	postSvc := services.NewPostService(posts, delegations, engine, broadcaster, log)
	validator := auth.NewSessionValidator(sessions, users)

	server := httpapi.NewServer(authSvc, messaging, postSvc, validator, registry,
		config.KeepAlive, log)

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Supervised background workers
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(workers.NewMonitoringWorker(log, registry, config.MonitorInterval))
	go sup.Run(ctx)

	// 7. HTTP server
	httpServer := &http.Server{Addr: config.HTTPAddr, Handler: server.Router()}

	errChan := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "address", config.HTTPAddr, "at", time.Now().UTC())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server error: %w", err)
		}
	}()

	// 8. Wait for Stop or Error
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
	case err := <-errChan:
		return err
	}

	// 9. Final Cleanup
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("HTTP shutdown incomplete", "err", err)
	}
	categorizer.Drain()
	sup.Stop()
	log.Info("Program stopped cleanly")

	return nil
}
