package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/nikola-miljkovic/github-browser/internal/adapters/driving/tui/styles"
	"github.com/nikola-miljkovic/github-browser/internal/core/domain"
)

var (
	listLanguage string
	listSort     string
	listExtended bool
	listJSON     bool
	listUntil    string
)

var listCmd = &cobra.Command{
	Use:   "list N",
	Short: "List the N most recently created repositories",
	Long: `Lists the N most recently created repositories, newest first.

With --sort other than "default" a single request is made and the API's
ordering is kept instead.

Examples:
  github-browser list 10
  github-browser list 50 --lang go --extended
  github-browser list 5 --until 2024-01-01T00:00:00Z --json`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func init() {
	listCmd.Flags().StringVarP(&listLanguage, "lang", "l", "", "only repositories in this language")
	listCmd.Flags().StringVarP(&listSort, "sort", "s", string(domain.SortDefault),
		"sort mode: "+strings.Join(sortModeNames(), ", "))
	listCmd.Flags().BoolVarP(&listExtended, "extended", "e", false, "show index and creation date")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "output repositories as JSON")
	listCmd.Flags().StringVar(&listUntil, "until", "", "newest creation time to consider (RFC3339, default now)")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	if listService == nil {
		return errors.New("list service not configured")
	}

	count, err := strconv.Atoi(args[0])
	if err != nil || count <= 0 {
		return fmt.Errorf("%w: N must be a positive integer, got %q", domain.ErrInvalidInput, args[0])
	}

	sort := domain.SortMode(listSort)
	if !sort.IsValid() {
		return fmt.Errorf("%w: unknown sort mode %q (valid: %s)",
			domain.ErrInvalidInput, listSort, strings.Join(sortModeNames(), ", "))
	}

	var until time.Time
	if listUntil != "" {
		until, err = domain.ParseTimestamp(listUntil)
		if err != nil {
			return err
		}
	}

	opts := domain.ListOptions{
		Count:    count,
		Language: listLanguage,
		Sort:     sort,
		Until:    until,
	}

	result, err := listService.List(cmd.Context(), opts)
	if err != nil {
		return fmt.Errorf("list failed: %w", err)
	}

	if result.Degraded && sort == domain.SortDefault {
		st := styles.ForWriter(cmd.ErrOrStderr())
		fmt.Fprintln(cmd.ErrOrStderr(), st.Warning(
			fmt.Sprintf("Warning: only %d of %d repositories could be found", len(result.Items), count)))
	}

	if listJSON {
		return outputListJSON(cmd, result.Items)
	}
	return outputListText(cmd, result.Items)
}

func outputListJSON(cmd *cobra.Command, items []domain.RepositoryItem) error {
	if items == nil {
		items = []domain.RepositoryItem{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal repositories: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputListText(cmd *cobra.Command, items []domain.RepositoryItem) error {
	if formatter == nil {
		return errors.New("formatter not configured")
	}
	cmd.Println(formatter.Format(items, listExtended))
	return nil
}

func sortModeNames() []string {
	modes := domain.AllSortModes()
	names := make([]string, 0, len(modes))
	for _, m := range modes {
		names = append(names, m.String())
	}
	return names
}
