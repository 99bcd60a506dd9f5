package main

import (
	"context"
	"fmt"
	"notification-lab/console"
	"notification-lab/internal"
	"notification-lab/moderation"
	"notification-lab/repositories"
	"notification-lab/runtime"
	"notification-lab/search"
	"notification-lab/services"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const shutdownGrace = 2 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires every component and returns once the console stops, so deferred
// cleanup always executes before the process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config internal.Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	replacement, err := internal.CharacterRune(config.CharReplacement)
	if err != nil {
		return err
	}

	// 2. Channel storage, memory only
	db, err := repositories.OpenInMemory()
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	channel, err := repositories.NewChannelRepository(db, log, config.LimitMessages)
	if err != nil {
		return err
	}
	defer func() { _ = channel.Close() }()

	index, err := search.NewChannelIndex(log)
	if err != nil {
		return err
	}
	defer func() { _ = index.Close() }()

	// 3. Core and service
	censor, err := moderation.NewCensor(config.Words(), replacement)
	if err != nil {
		return fmt.Errorf("moderation setup failed: %w", err)
	}
	registry := runtime.NewRegistry(log, channel)
	svc := services.NewNotificationService(log, registry, censor, index, config.SearchLimit)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Console, returns only once no command touches storage anymore
	if err = console.NewConsole(log, svc, os.Stdout, config.Colours).Serve(ctx, os.Stdin, shutdownGrace); err != nil {
		return fmt.Errorf("console error: %w", err)
	}
	if ctx.Err() != nil {
		log.Info("Shutting down gracefully...")
	}
	log.Info("Program stopped cleanly")
	return nil
}
