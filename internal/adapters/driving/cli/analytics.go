package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

const barWidth = 40

var (
	analyticsJSON    bool
	topPlacesLimit   int
	timelineInterval string
)

var errNoAnalytics = errors.New("analytics service not configured")

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Aggregate statistics over the index",
}

var analyticsTopPlacesCmd = &cobra.Command{
	Use:   "top-places",
	Short: "Most frequently mentioned places",
	Args:  cobra.NoArgs,
	RunE:  runTopPlaces,
}

var analyticsTimelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Documents per time period",
	Long: `Counts documents per calendar bucket of their canonical date.
Empty buckets between the first and last date are included.

Intervals: day, week, month, quarter, year (or 1d, 1w, 1M, 1q, 1y).`,
	Args: cobra.NoArgs,
	RunE: runTimeline,
}

var analyticsDashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Totals, top places and monthly timeline",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

func init() {
	analyticsCmd.PersistentFlags().BoolVar(&analyticsJSON, "json", false, "output as JSON")
	analyticsTopPlacesCmd.Flags().IntVarP(&topPlacesLimit, "limit", "n", 10, "number of places")
	analyticsTimelineCmd.Flags().StringVarP(&timelineInterval, "interval", "i", "month", "bucket width")

	analyticsCmd.AddCommand(analyticsTopPlacesCmd)
	analyticsCmd.AddCommand(analyticsTimelineCmd)
	analyticsCmd.AddCommand(analyticsDashboardCmd)
	rootCmd.AddCommand(analyticsCmd)
}

func runTopPlaces(cmd *cobra.Command, _ []string) error {
	if analyticsService == nil {
		return errNoAnalytics
	}

	terms, err := analyticsService.TopGeoreferences(cmd.Context(), topPlacesLimit)
	if err != nil {
		return fmt.Errorf("top places failed: %w", err)
	}
	if analyticsJSON {
		return printJSON(cmd, terms)
	}

	printTerms(cmd, terms)
	return nil
}

func runTimeline(cmd *cobra.Command, _ []string) error {
	if analyticsService == nil {
		return errNoAnalytics
	}

	interval, err := domain.ParseCalendarInterval(timelineInterval)
	if err != nil {
		return err
	}

	buckets, err := analyticsService.TimeDistribution(cmd.Context(), interval)
	if err != nil {
		return fmt.Errorf("timeline failed: %w", err)
	}
	if analyticsJSON {
		return printJSON(cmd, buckets)
	}

	printTimeline(cmd, buckets)
	return nil
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	if analyticsService == nil {
		return errNoAnalytics
	}

	d, err := analyticsService.Dashboard(cmd.Context())
	if err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	if analyticsJSON {
		return printJSON(cmd, d)
	}

	cmd.Println(render(cmd, headerStyle, "Dashboard"))
	cmd.Println("=========")
	cmd.Printf("  Documents:         %d\n", d.TotalDocuments)
	cmd.Printf("  Distinct places:   %d\n", d.DistinctGeoreferences)
	cmd.Println()
	cmd.Println(render(cmd, headerStyle, "Top places"))
	printTerms(cmd, d.TopGeoreferences)
	cmd.Println()
	cmd.Println(render(cmd, headerStyle, "Documents per month"))
	printTimeline(cmd, d.Timeline)
	return nil
}

func printTerms(cmd *cobra.Command, terms []domain.TermCount) {
	if len(terms) == 0 {
		cmd.Println("  No places indexed.")
		return
	}
	var peak int64
	for _, t := range terms {
		peak = max(peak, t.Count)
	}
	for i, t := range terms {
		cmd.Printf("  %2d. %-24s %6d %s\n", i+1, t.Key, t.Count, render(cmd, barStyle, bar(t.Count, peak, barWidth)))
	}
}

func printTimeline(cmd *cobra.Command, buckets []domain.DateCount) {
	if len(buckets) == 0 {
		cmd.Println("  No dated documents.")
		return
	}
	var peak int64
	for _, b := range buckets {
		peak = max(peak, b.Count)
	}
	for _, b := range buckets {
		cmd.Printf("  %s %6d %s\n", b.Date, b.Count, render(cmd, barStyle, bar(b.Count, peak, barWidth)))
	}
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
