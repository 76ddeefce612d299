package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"kwscout/internal/config"
	"kwscout/internal/eventbus"
	"kwscout/internal/provider"
	"kwscout/internal/search"
	"kwscout/internal/ui"
	"kwscout/internal/ui/services/bookmarks"
	"kwscout/internal/ui/services/debounce"
)

func main() {
	var country string
	flag.StringVar(&country, "country", "", "Two-letter country code for volume data")
	flag.StringVar(&country, "c", "", "Two-letter country code (shorthand)")
	flag.Parse()

	// Set up logging
	logFile, err := os.OpenFile("kwscout.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		log.Printf("Could not open log file: %v", err)
	} else {
		defer logFile.Close()
		log.SetOutput(logFile)
	}

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	// Create event bus
	bus := eventbus.New()
	defer bus.Close()

	// Load configuration
	configSvc := config.NewConfigServiceWithBus(bus)
	cfg, err := configSvc.Load()
	if err != nil {
		log.Printf("Error loading config: %v", err)
		cfg = config.DefaultConfig()
	}
	if country != "" {
		cfg.Country = country
	}

	// The credential is read once at startup and injected; a missing key
	// permanently disables search rather than erroring per query.
	creds := config.CredentialsFromEnv()
	if creds.Missing() {
		log.Printf("No API key in %s; search is disabled", config.EnvAPIKey)
	}

	// Initialize services
	client := provider.NewClient(creds)
	orchestrator := search.NewOrchestrator(client, bus, creds, cfg.Country)
	debouncer := debounce.NewService(bus, time.Duration(cfg.QuietIntervalMs)*time.Millisecond)
	marks := bookmarks.NewService()

	// Create UI model
	uiModel := ui.NewModel(ctx, cfg, orchestrator, debouncer, marks)

	// Create Bubble Tea program
	p := tea.NewProgram(uiModel, tea.WithAltScreen())
	uiModel.SetProgram(p)

	// Set up event forwarding to UI
	eventChan := make(chan eventbus.DomainEvent, 100)
	forward := func(e eventbus.DomainEvent) {
		select {
		case eventChan <- e:
		default:
			log.Println("Event channel full, dropping event")
		}
	}
	for _, eventType := range []eventbus.EventType{
		eventbus.EventQueryCommitted,
		eventbus.EventSearchStarted,
		eventbus.EventSearchCompleted,
		eventbus.EventSearchFailed,
		eventbus.EventSearchCleared,
		eventbus.EventError,
	} {
		bus.Subscribe(eventType, forward)
	}

	// Start forwarding events to UI in background
	go func() {
		for event := range eventChan {
			p.Send(ui.EventMsg{Event: event})
		}
	}()

	// Run the UI
	if _, err := p.Run(); err != nil {
		fmt.Printf("Error running program: %v\n", err)
		os.Exit(1)
	}

	// Cleanup
	debouncer.Stop()
	close(eventChan)
	cancel()
}
