package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var reindexCmd = &cobra.Command{
	Use:   "reindex",
	Short: "Rebuild the index from the document journal",
	Long: `Re-runs enrichment on the original copy of every indexed document and
writes the results to the index. Use this after changing the gazetteer,
the recogniser or the geocoder.

With --recreate the index is dropped and created again first, which also
applies mapping changes.`,
	Args: cobra.NoArgs,
	RunE: runReindex,
}

func init() {
	reindexCmd.Flags().Bool("recreate", false, "drop and recreate the index first")
	addEnrichFlags(reindexCmd)
	rootCmd.AddCommand(reindexCmd)
}

func runReindex(cmd *cobra.Command, _ []string) error {
	if ingestService == nil {
		return errIngestNotConfigured
	}

	recreate, err := cmd.Flags().GetBool("recreate")
	if err != nil {
		return err
	}
	opts, err := enrichOptions(cmd)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := prepareIndex(ctx, recreate); err != nil {
		return err
	}

	res, err := ingestService.Reindex(ctx, opts)
	if err != nil {
		return fmt.Errorf("reindex failed: %w", err)
	}

	printBulkResult(cmd, res)
	return nil
}
