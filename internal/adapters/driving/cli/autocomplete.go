package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var autocompleteLimit int

var autocompleteCmd = &cobra.Command{
	Use:   "autocomplete [prefix]",
	Short: "Suggest document titles for a prefix",
	Long: `Suggests titles that start with, or nearly match, a prefix.
Prefixes shorter than three characters return nothing.`,
	Args: cobra.ExactArgs(1),
	RunE: runAutocomplete,
}

func init() {
	autocompleteCmd.Flags().IntVarP(&autocompleteLimit, "limit", "n", 10, "maximum number of suggestions")
	rootCmd.AddCommand(autocompleteCmd)
}

func runAutocomplete(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return errors.New("search service not configured")
	}

	suggestions, err := searchService.Autocomplete(cmd.Context(), args[0], autocompleteLimit)
	if err != nil {
		return fmt.Errorf("autocomplete failed: %w", err)
	}

	if len(suggestions) == 0 {
		cmd.Println("No suggestions.")
		return nil
	}
	for _, s := range suggestions {
		cmd.Printf("  %s %s\n", s.Title, render(cmd, mutedStyle, fmt.Sprintf("(%.2f)", s.Score)))
	}
	return nil
}
