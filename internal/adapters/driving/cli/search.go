package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
	searchTime  string
	searchGeo   string
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search indexed documents",
	Long: `Runs a smart search that blends three signals:

  text   matched against titles (exact, phrase, fuzzy) and content
  --time a date, a year, or a phrase such as "last year" or "1987"
  --geo  a place name, matched against the places each document mentions

Any combination may be given; at least one is required.`,
	Example: `  smartdocs search cocoa
  smartdocs search "interest rates" --time 1987 --geo Japan
  smartdocs search --geo "New York" -n 5 --json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", 10, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().StringVar(&searchTime, "time", "", "temporal expression to favour")
	searchCmd.Flags().StringVar(&searchGeo, "geo", "", "place name to favour")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) > 0 {
		text = args[0]
	}

	spec := domain.QuerySpec{
		Text:         text,
		TemporalHint: searchTime,
		GeoHint:      searchGeo,
		Limit:        searchLimit,
	}
	if spec.IsEmpty() {
		return errors.New("provide a query, --time or --geo")
	}

	if searchService == nil {
		return errors.New("search service not configured")
	}

	results, err := searchService.Search(cmd.Context(), spec)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}

	return outputSearchTable(cmd, results)
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	data, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println(render(cmd, headerStyle, "Results:"))
	cmd.Println()
	width := termWidth(cmd) - 6
	for i := range results {
		doc := &results[i].Document

		// Format: [N] Title (Score)
		title := doc.Title
		if title == "" {
			title = doc.ID
		}
		cmd.Printf("  [%d] %s %s\n", i+1,
			render(cmd, titleStyle, title),
			render(cmd, scoreStyle, fmt.Sprintf("(%.2f)", results[i].Score)))

		var meta []string
		if doc.Date != "" {
			meta = append(meta, doc.Date)
		}
		if len(doc.Georeferences) > 0 {
			meta = append(meta, strings.Join(doc.Georeferences, ", "))
		}
		if len(meta) > 0 {
			cmd.Printf("      %s\n", render(cmd, mutedStyle, strings.Join(meta, " | ")))
		}
		if doc.Content != "" {
			cmd.Printf("      %s\n", snippet(doc.Content, min(snippetRunes, max(width, 20))))
		}
		cmd.Println()
	}

	return nil
}
