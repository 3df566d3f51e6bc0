package cli

import (
	"fmt"
	"os"

	"github.com/agentsync-labs/agentsync/internal/config"
	"github.com/agentsync-labs/agentsync/internal/syncer"
	"github.com/spf13/cobra"
)

var (
	syncForce     bool
	syncGitignore bool
)

func init() {
	syncCmd.Flags().BoolVar(&syncForce, "force", false, "Repair links pointing somewhere other than AGENTS.md")
	syncCmd.Flags().BoolVar(&syncGitignore, "gitignore", false, "Add created links to .gitignore")
	rootCmd.AddCommand(syncCmd)
}

var syncCmd = &cobra.Command{
	Use:   "sync [dir]",
	Short: "Mirror AGENTS.md to every agent-specific filename",
	Long: `Create the agent-specific alias links (CLAUDE.md, GEMINI.md, ...) next to
the directory's AGENTS.md. Links that already point at AGENTS.md are left
alone; real files with a target name are reported and never touched.

Example:
  agentsync sync
  agentsync sync ~/src/myproject --gitignore`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir(args)
		if err != nil {
			return err
		}

		opts := syncer.Options{
			Force:     syncForce,
			Gitignore: syncGitignore || config.GetBool(config.KeyGitignore),
		}
		result, err := syncer.Sync(dir, opts)
		if err != nil {
			return err
		}

		printSyncResult(result)
		return nil
	},
}

// resolveDir returns the optional positional directory or the working dir.
func resolveDir(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}
	return dir, nil
}

func printSyncResult(result *syncer.Result) {
	for _, name := range result.Created {
		fmt.Printf("  linked   %s -> AGENTS.md\n", name)
	}
	for _, name := range result.Repaired {
		fmt.Printf("  repaired %s -> AGENTS.md\n", name)
	}
	for _, name := range result.Present {
		fmt.Printf("  ok       %s\n", name)
	}
	for _, name := range result.Skipped {
		fmt.Printf("  skipped  %s (deselected in .agentsync.yaml)\n", name)
	}
	for _, name := range result.Conflicts {
		fmt.Printf("  conflict %s exists and is not a link to AGENTS.md\n", name)
	}
	if !result.Changed() && len(result.Conflicts) == 0 {
		fmt.Println("Everything in sync.")
	}
}
