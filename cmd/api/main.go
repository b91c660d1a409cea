package main

import (
	"fmt"
	"log"
	"os"

	"github.com/Praashon/devtrackr/internal/api"
	"github.com/Praashon/devtrackr/internal/config"
	"github.com/Praashon/devtrackr/internal/source"
	"github.com/Praashon/devtrackr/internal/store/memory"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Initialize stores with development fixtures
	stores := api.Stores{
		Events:       memory.NewEventStore(),
		Reviews:      memory.NewReviewStore(memory.SeedReviews(cfg.UserID)),
		Goals:        memory.NewGoalStore(memory.SeedGoals(cfg.UserID)),
		Habits:       memory.NewHabitStore(memory.SeedHabits(cfg.UserID)),
		Repositories: memory.NewRepositoryStore(memory.SeedRepositories(cfg.UserID)),
		Connections:  memory.NewConnectionStore(memory.SeedConnection()),
	}

	// Select the event source
	var src source.Source
	switch cfg.EventSource {
	case "github":
		src = source.NewGitHubSource(cfg.GitHubToken, cfg.GitHubUser)
	default:
		src = source.NewMockSource()
	}

	// Initialize handler and routes
	handler := api.NewHandler(cfg, stores, src)
	router := api.SetupRoutes(handler)

	// Start server
	addr := fmt.Sprintf("%s:%s", cfg.APIHost, cfg.APIPort)
	fmt.Printf("Starting API server on %s\n", addr)
	fmt.Printf("Event source: %s\n", cfg.EventSource)

	if err := router.Run(addr); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
