package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentsync-labs/agentsync/internal/agent"
	"github.com/agentsync-labs/agentsync/internal/instructions"
	"github.com/spf13/cobra"
)

var installForce bool

func init() {
	installCmd.Flags().BoolVar(&installForce, "force", false, "Overwrite an existing command file")
	rootCmd.AddCommand(installCmd)
}

var installCmd = &cobra.Command{
	Use:   "install <agent> [name]",
	Short: "Install the orchestration slash command for an agent",
	Long: `Install writes the orchestration instructions as a reusable command
under the agent's home configuration:

  claude  ~/.claude/commands/<name>.md
  codex   ~/.codex/prompts/<name>.md
  gemini  ~/.gemini/commands/<name>.toml

The name defaults to "swarm".`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, ok := agent.Parse(args[0])
		if !ok {
			return fmt.Errorf("unknown agent %q (expected one of claude, codex, gemini)", args[0])
		}
		name := "swarm"
		if len(args) == 2 {
			name = args[1]
		}

		path, err := a.CommandPath(name)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil && !installForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		body := instructions.CommandFile(a.Ext())
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("Installed /%s for %s at %s\n", name, a, path)

		if installed, _ := a.CLIInstalled(); !installed {
			fmt.Printf("Note: %s CLI (%q) not found on PATH\n", a, a.Binary())
		}
		return nil
	},
}
