package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/agentsync-labs/agentsync/internal/config"
	"github.com/agentsync-labs/agentsync/internal/syncer"
	"github.com/agentsync-labs/agentsync/internal/watcher"
	"github.com/spf13/cobra"
)

var watchForce bool

func init() {
	watchCmd.Flags().BoolVar(&watchForce, "force", false, "Repair links pointing somewhere other than AGENTS.md")
	rootCmd.AddCommand(watchCmd)
}

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and keep its agent links in sync",
	Long: `Watch the directory for writes to AGENTS.md and recreate any missing
agent-specific links as soon as the canonical file appears or changes.
Runs until interrupted.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir(args)
		if err != nil {
			return err
		}

		opts := syncer.Options{
			Force:     watchForce,
			Gitignore: config.GetBool(config.KeyGitignore),
		}

		// Catch up before watching; a missing canonical file is fine here,
		// the watcher will sync once it appears.
		if result, err := syncer.Sync(dir, opts); err == nil {
			printSyncResult(result)
		}

		debounce := time.Duration(config.GetInt(config.KeyWatchDebounce)) * time.Millisecond
		w, err := watcher.New(dir, func(event watcher.Event) {
			result, err := syncer.HandleEvent(event.Dir, event.Name, opts)
			if err != nil {
				fmt.Fprintf(os.Stderr, "sync failed: %v\n", err)
				return
			}
			if result != nil && result.Changed() {
				printSyncResult(result)
			}
		}, watcher.Options{
			Debounce: debounce,
			ErrorHandler: func(err error) {
				fmt.Fprintf(os.Stderr, "watch error: %v\n", err)
			},
		})
		if err != nil {
			return fmt.Errorf("starting watcher: %w", err)
		}
		defer w.Close()

		fmt.Printf("Watching %s for AGENTS.md changes. Ctrl-C to stop.\n", dir)

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
		<-stop
		fmt.Println("\nStopped.")
		return nil
	},
}
