package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

// maxReportedErrors bounds the per-document errors printed after indexing.
const maxReportedErrors = 10

var indexCmd = &cobra.Command{
	Use:   "index [file|dir]",
	Short: "Enrich and index a file or directory",
	Long: `Reads documents from a file, or from every supported file directly inside
a directory, fills in missing dates and places, and indexes them.

Supported formats: JSON (one document or a list), newswire SGML (.sgm),
HTML, Markdown and plain text.

Use --geocode to resolve place names into coordinates. Lookups are
rate limited and cached, so the first run over a large corpus is slow.`,
	Args: cobra.ExactArgs(1),
	RunE: runIndex,
}

func init() {
	addEnrichFlags(indexCmd)
	rootCmd.AddCommand(indexCmd)
}

// addEnrichFlags adds the per-run enrichment options to cmd.
func addEnrichFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("geocode", false, "resolve place names into coordinates (default from geocode.enabled)")
	cmd.Flags().Int("geocode-limit", 0, "maximum places geocoded per document (default from geocode.limit)")
}

// enrichOptions reads the enrichment flags, falling back to settings.
func enrichOptions(cmd *cobra.Command) (domain.EnrichOptions, error) {
	opts := domain.EnrichOptions{
		Geocode:      appSettings.Geocoder.Enabled,
		GeocodeLimit: appSettings.Geocoder.Limit,
	}
	if cmd.Flags().Changed("geocode") {
		v, err := cmd.Flags().GetBool("geocode")
		if err != nil {
			return opts, err
		}
		opts.Geocode = v
	}
	if cmd.Flags().Changed("geocode-limit") {
		v, err := cmd.Flags().GetInt("geocode-limit")
		if err != nil {
			return opts, err
		}
		if v < 0 {
			return opts, fmt.Errorf("--geocode-limit must not be negative")
		}
		opts.GeocodeLimit = v
	}
	return opts, nil
}

func runIndex(cmd *cobra.Command, args []string) error {
	path := args[0]

	if ingestService == nil {
		return errIngestNotConfigured
	}

	opts, err := enrichOptions(cmd)
	if err != nil {
		return err
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("index %s: %w", path, err)
	}

	ctx := cmd.Context()
	if err := prepareIndex(ctx, false); err != nil {
		return err
	}

	var res domain.BulkResult
	if info.IsDir() {
		res, err = ingestService.IndexDirectory(ctx, path, opts)
	} else {
		res, err = ingestService.IndexFile(ctx, path, opts)
	}
	if err != nil {
		return fmt.Errorf("index failed: %w", err)
	}

	printBulkResult(cmd, res)
	return nil
}

func printBulkResult(cmd *cobra.Command, res domain.BulkResult) {
	summary := fmt.Sprintf("Indexed %d of %d documents", res.Success, res.Total)
	if res.Failed == 0 {
		cmd.Println(render(cmd, successStyle, summary))
		return
	}

	cmd.Println(render(cmd, errorStyle, fmt.Sprintf("%s (%d failed)", summary, res.Failed)))
	for i, e := range res.Errors {
		if i == maxReportedErrors {
			cmd.Printf("  ... and %d more\n", len(res.Errors)-maxReportedErrors)
			break
		}
		cmd.Printf("  - %s\n", e)
	}
}
