package cli

import (
	"os"

	"github.com/agentsync-labs/agentsync/internal/branding"
	"github.com/agentsync-labs/agentsync/internal/config"
	"github.com/agentsync-labs/agentsync/internal/updater"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` mirrors a project's canonical AGENTS.md instructions file to
every agent-specific filename your installed coding agents expect (CLAUDE.md,
GEMINI.md, ...) and teaches agents to use the external agent-swarm spawner.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Commands that manage their own update state skip the banner.
		if name := cmd.Name(); name == "update" || name == "version" {
			return
		}

		// Non-blocking banner from the cached version check.
		u := updater.New(buildVersion)
		u.CheckAndPrintBanner(os.Stderr, config.Dir())
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
