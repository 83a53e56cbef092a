// Command github-browser lists the most recently created GitHub repositories.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/nikola-miljkovic/github-browser/internal/adapters/driven/config/file"
	"github.com/nikola-miljkovic/github-browser/internal/adapters/driven/config/memory"
	"github.com/nikola-miljkovic/github-browser/internal/adapters/driving/cli"
	"github.com/nikola-miljkovic/github-browser/internal/connectors/github"
	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driven"
	"github.com/nikola-miljkovic/github-browser/internal/core/services"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = ""

func main() {
	os.Exit(run())
}

func run() int {
	// A missing .env file is not an error.
	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	settingsService := services.NewSettingsService(openConfigStore())

	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitError
	}
	if err := settings.Validate(); err != nil {
		// Keep going so "settings set" can repair the file.
		fmt.Fprintf(os.Stderr, "Warning: %v, using defaults\n", err)
		settings = withDefaults(settings)
	}

	client, err := github.NewClient(ctx, github.Options{
		BaseURL:           settings.GitHub.BaseURL,
		Token:             settings.GitHub.Token,
		Timeout:           settings.GitHub.Timeout,
		RequestsPerSecond: settings.GitHub.RequestsPerSecond,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return cli.ExitError
	}

	loc, err := settings.Output.Location()
	if err != nil {
		loc = time.Local
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		List:      services.NewListService(client, client.BaseURL(), settings.Search.Policy()),
		Formatter: services.NewReportFormatter(loc),
		RateLimit: services.NewRateLimitService(client),
		Settings:  settingsService,
	})

	return cli.Execute(ctx)
}

// openConfigStore opens the TOML config file, or an in-memory store when
// the config directory cannot be used.
func openConfigStore() driven.ConfigStore {
	store, err := file.NewConfigStore("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, settings will not be saved\n", err)
		return memory.NewConfigStore()
	}
	return store
}

// withDefaults keeps the token and falls back to defaults for everything else.
func withDefaults(settings *domain.AppSettings) *domain.AppSettings {
	defaults := domain.DefaultAppSettings()
	defaults.GitHub.Token = settings.GitHub.Token
	return &defaults
}
