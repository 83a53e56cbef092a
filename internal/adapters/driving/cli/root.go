// Package cli provides the github-browser command line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nikola-miljkovic/github-browser/internal/adapters/driving/tui/styles"
	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
	"github.com/nikola-miljkovic/github-browser/internal/core/ports/driving"
	"github.com/nikola-miljkovic/github-browser/internal/logger"
)

// Exit codes returned by Execute.
const (
	ExitOK       = 0
	ExitError    = 1
	ExitAPIError = 2
)

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Services wired in by main.
var (
	listService      driving.ListService
	formatter        driving.Formatter
	rateLimitService driving.RateLimitService
	settingsService  driving.SettingsService
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "github-browser",
	Short: "List the most recently created GitHub repositories",
	Long: `github-browser lists the most recently created public repositories on GitHub.

The search API cannot sort by creation date, so repositories are collected
from creation-date windows that move backwards in time until enough have
been found, then sorted locally.

Set GITHUB_TOKEN or run "github-browser settings token" to raise the
search rate limit.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	// cobra prints to stderr unless an output is set.
	rootCmd.SetOut(os.Stdout)
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
}

// Services holds the driving ports used by the commands.
type Services struct {
	List      driving.ListService
	Formatter driving.Formatter
	RateLimit driving.RateLimitService
	Settings  driving.SettingsService
}

// SetServices wires the driving ports into the commands.
func SetServices(s Services) {
	listService = s.List
	formatter = s.Formatter
	rateLimitService = s.RateLimit
	settingsService = s.Settings
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	err := rootCmd.ExecuteContext(ctx)
	if err == nil {
		return ExitOK
	}
	printError(rootCmd, err)
	return ExitCode(err)
}

// ExitCode maps an error to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case domain.IsAPIFailure(err):
		return ExitAPIError
	default:
		return ExitError
	}
}

func printError(cmd *cobra.Command, err error) {
	st := styles.ForWriter(cmd.ErrOrStderr())
	w := cmd.ErrOrStderr()

	if domain.IsAPIFailure(err) {
		fmt.Fprintln(w, st.Error("Error, API limit is most likely exceeded, try again in a bit."))
		fmt.Fprintln(w, st.Muted("Here is the message:"))
		fmt.Fprintln(w, apiMessage(err))
		return
	}
	fmt.Fprintln(w, st.Error("Error: "+err.Error()))
}

// apiMessage returns the API's own message when the error carries one.
func apiMessage(err error) string {
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return err.Error()
}
