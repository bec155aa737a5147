package main

import (
	"chat-formatter/config"
	"chat-formatter/contract"
	"chat-formatter/domain"
	"chat-formatter/providers"
	"chat-formatter/repositories"
	"chat-formatter/runtime"
	"chat-formatter/runtime/workers"
	"chat-formatter/services"
	"chat-formatter/sink"
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

const owner = "chat-formatter"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run wires the formatter, then decorates chat lines read on stdin until
// the input ends or a signal arrives.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var cfg Config
	if _, err := env.UnmarshalFromEnviron(&cfg); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(cfg.LogLevel)

	// 2. Database (BadgerDB)
	db, err := badger.Open(badger.DefaultOptions(cfg.BadgerFilepath).
		WithLogger(runtime.NewStorageLogger(log, "metadata")).
		WithLoggingLevel(badger.WARNING))
	if err != nil {
		return fmt.Errorf("database opening failed: %w", err)
	}
	defer func() {
		log.Info("Closing BadgerDB...")
		_ = db.Close()
	}()

	// 3. Services & chat provider
	manager := runtime.NewServicesManager(log)
	metadataRepository := repositories.NewMetadataRepository(db, log)
	provider := providers.NewMetadataProvider(cfg.ProviderName, metadataRepository)
	if err = manager.Register(domain.ChatServiceKind, provider, owner, domain.PriorityNormal); err != nil {
		return fmt.Errorf("chat provider registration failed: %w", err)
	}
	defer manager.UnregisterAll(owner)

	// 4. Formatter
	loader, err := config.NewLoader(cfg.ConfigFilepath)
	if err != nil {
		return err
	}
	formatter := services.NewFormatterService(log, loader, manager)
	if err = formatter.Enable(); err != nil {
		return fmt.Errorf("formatter failed to start: %w", err)
	}

	// 5. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 6. Workers
	messages := make(chan domain.Message, cfg.BufferSize)
	console := sink.NewConsoleSink(os.Stdout, log, cfg.Colours)
	sup := workers.NewSupervisor(log, cfg.RestartInterval)
	sup.Add(workers.NewChatInputWorker(log, os.Stdin, formatter, messages))
	for i := 0; i < max(cfg.NumberOfWorkers, 1); i++ {
		sup.Add(workers.NewChatDecoratorWorker(log, formatter, messages, console))
	}

	done := make(chan struct{})
	go func(s contract.ISupervisor) {
		s.Run(ctx)
		close(done)
	}(sup)

	// 7. Wait for Stop or end of input
	select {
	case <-ctx.Done():
		log.Info("Shutting down gracefully...")
		<-done
	case <-done:
		log.Info("Input closed")
	}

	log.Info("Program stopped cleanly")
	return nil
}
