package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikola-miljkovic/github-browser/internal/adapters/driving/tui/styles"
)

var rateLimitJSON bool

var rateLimitCmd = &cobra.Command{
	Use:   "ratelimit",
	Short: "Show the remaining search API quota",
	Long: `Shows how many search requests remain in the current rate limit window
and when the window resets. Checking the quota does not consume it.`,
	Args: cobra.NoArgs,
	RunE: runRateLimit,
}

func init() {
	rateLimitCmd.Flags().BoolVar(&rateLimitJSON, "json", false, "output quota as JSON")
	rootCmd.AddCommand(rateLimitCmd)
}

func runRateLimit(cmd *cobra.Command, _ []string) error {
	if rateLimitService == nil {
		return errors.New("rate limit service not configured")
	}

	status, err := rateLimitService.SearchRateLimit(cmd.Context())
	if err != nil {
		return err
	}

	if rateLimitJSON {
		data, err := json.MarshalIndent(map[string]any{
			"limit":     status.Limit,
			"remaining": status.Remaining,
			"reset":     status.Reset.UTC().Format(time.RFC3339),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal rate limit: %w", err)
		}
		cmd.Println(string(data))
		return nil
	}

	st := styles.ForWriter(cmd.OutOrStdout())
	cmd.Println(st.Title("Search rate limit"))
	cmd.Printf("  %s %d of %d\n", st.Label("Remaining:"), status.Remaining, status.Limit)
	cmd.Printf("  %s %s\n", st.Label("Resets at:"), status.Reset.Local().Format(time.RFC1123))
	if status.Exhausted(time.Now()) {
		cmd.Println(st.Warning(fmt.Sprintf("  Exhausted, try again in %s",
			time.Until(status.Reset).Round(time.Second))))
	}
	return nil
}
