package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/jana0025/IR-PROJECT/internal/connectors/filesystem"
	"github.com/jana0025/IR-PROJECT/internal/core/domain"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Index files as they appear in a directory",
	Long: `Watches a directory and indexes supported files when they are created
or written. Subdirectories, hidden files and deletions are ignored.
Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().Bool("initial", false, "index existing files before watching")
	watchCmd.Flags().Duration("debounce", filesystem.DefaultDebounce, "quiet period before a changed file is indexed")
	addEnrichFlags(watchCmd)
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := args[0]

	if ingestService == nil {
		return errIngestNotConfigured
	}

	opts, err := enrichOptions(cmd)
	if err != nil {
		return err
	}
	initial, err := cmd.Flags().GetBool("initial")
	if err != nil {
		return err
	}
	debounce, err := cmd.Flags().GetDuration("debounce")
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := prepareIndex(ctx, false); err != nil {
		return err
	}

	watchOpts := []filesystem.Option{filesystem.WithDebounce(debounce)}
	if supportsFile != nil {
		watchOpts = append(watchOpts, filesystem.WithFilter(supportsFile))
	}
	watcher, err := filesystem.NewWatcher(dir, watchOpts...)
	if err != nil {
		return err
	}
	defer watcher.Close()

	if initial {
		res, err := ingestService.IndexDirectory(ctx, dir, opts)
		if err != nil {
			return fmt.Errorf("initial index failed: %w", err)
		}
		printBulkResult(cmd, res)
	}

	cmd.Printf("Watching %s (Ctrl-C to stop)\n", dir)
	return watcher.Run(ctx, func(ctx context.Context, change domain.FileChange) error {
		res, err := ingestService.IndexFile(ctx, change.Path, opts)
		if err != nil {
			return err
		}
		cmd.Printf("%s %s: %d/%d documents\n",
			render(cmd, mutedStyle, change.Type.String()), change.Path, res.Success, res.Total)
		return nil
	})
}
