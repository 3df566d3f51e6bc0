package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentsync-labs/agentsync/internal/link"
	"github.com/agentsync-labs/agentsync/internal/project"
	"github.com/agentsync-labs/agentsync/internal/syncer"
	"github.com/spf13/cobra"
)

// seedContent is written to a fresh AGENTS.md so agents have something to
// load before the user fills it in.
const seedContent = `# Project instructions

Describe your project conventions here. This file is the single source of
truth; agent-specific files (CLAUDE.md, GEMINI.md, ...) are links to it.
`

var initManifest bool

func init() {
	initCmd.Flags().BoolVar(&initManifest, "manifest", false, "Also write a starter .agentsync.yaml")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Create AGENTS.md and link it for every agent",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir(args)
		if err != nil {
			return err
		}

		canonical := filepath.Join(dir, link.CanonicalFilename)
		if _, err := os.Stat(canonical); os.IsNotExist(err) {
			if err := os.WriteFile(canonical, []byte(seedContent), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", canonical, err)
			}
			fmt.Printf("Created %s\n", canonical)
		} else {
			fmt.Printf("%s already exists, leaving it alone\n", canonical)
		}

		if initManifest {
			path := filepath.Join(dir, project.ManifestFilename)
			if _, err := os.Stat(path); os.IsNotExist(err) {
				if err := project.Save(dir, project.Default()); err != nil {
					return err
				}
				fmt.Printf("Created %s\n", path)
			}
		}

		result, err := syncer.Sync(dir, syncer.Options{})
		if err != nil {
			return err
		}
		printSyncResult(result)
		return nil
	},
}
