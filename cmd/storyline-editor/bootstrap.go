package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lebronisbest/ootp-storyline-generator/pkg/adapter"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/catalog"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/cli"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/config"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/data"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/log"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/model"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/session"
	"github.com/lebronisbest/ootp-storyline-generator/pkg/storage"
)

// bootstrap initializes every component in dependency order and runs the
// interactive loop until the user exits or the process receives a signal.
func bootstrap() error {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// Load configuration
	if err := config.ConfigLoad(); err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := config.ConfigGet()
	if cfg == nil {
		return fmt.Errorf("failed to get configuration")
	}

	// Initialize logger
	logger, err := log.NewLogger(cfg, log.LevelInfo)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Close()

	// Initialize storage
	store, err := storage.NewStorage(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "failed to close storage: %v\n", err)
		}
	}()

	// Initialize attribute catalog
	cat := catalog.NewManager(cfg.CatalogFile, logger)

	// Initialize data manager
	dataManager, err := data.NewDataManager(store, store, cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize data manager: %w", err)
	}

	// Initialize session manager
	sessionManager := session.NewSessionManager(dataManager, cat, logger)
	defer sessionManager.StopCleanupRoutine()

	// Initialize adapter manager
	adapterManager := adapter.NewAdapterManager(sessionManager, logger)
	defer adapterManager.Shutdown()

	// Create the CLI adapter and its session
	sessionID, instance, err := adapterManager.AdapterAdd("cli")
	if err != nil {
		return fmt.Errorf("failed to create cli adapter: %w", err)
	}
	cliAdapter, ok := instance.(*adapter.CLIAdapter)
	if !ok {
		return fmt.Errorf("unexpected adapter type for cli")
	}
	if err := cliAdapter.SessionRegister(sessionID); err != nil {
		return fmt.Errorf("failed to register cli session: %w", err)
	}

	// Select the default profile so the editor is usable immediately
	if cfg.DefaultProfileActive {
		selectCmd := model.Command{
			Scope:     "profile",
			Operation: "select",
			Args:      []string{cfg.DefaultProfile, cfg.DefaultProfilePassword},
		}
		if _, err := cliAdapter.CommandProcess(sessionID, selectCmd); err != nil {
			fmt.Fprintf(os.Stderr, "failed to select default profile: %v\n", err)
		}
	}

	cliInstance, err := cli.NewCLI(cliAdapter, sessionID, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize cli: %w", err)
	}

	// Handle graceful shutdown on interrupt
	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal. Shutting down...")
		cliInstance.Stop()
	}()

	if err := cliInstance.Run(); err != nil {
		return fmt.Errorf("cli error: %w", err)
	}

	fmt.Println("Goodbye!")
	return nil
}
