package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentsync-labs/agentsync/internal/agent"
	"github.com/agentsync-labs/agentsync/internal/instructions"
	"github.com/agentsync-labs/agentsync/internal/project"
	"github.com/spf13/cobra"
)

var (
	injectAgent  string
	injectDryRun bool
)

func init() {
	injectCmd.Flags().StringVar(&injectAgent, "agent", string(agent.Claude), "Agent whose memory file to target")
	injectCmd.Flags().BoolVar(&injectDryRun, "dry-run", false, "Report what would change without writing")
	rootCmd.AddCommand(injectCmd)
}

var injectCmd = &cobra.Command{
	Use:   "inject [file]",
	Short: "Prepend orchestration instructions to an agent memory file",
	Long: `Inject prepends the embedded orchestration instructions to a memory file.

Without an argument the target is the selected agent's home memory file
(for claude that is ~/.claude/CLAUDE.md). A project manifest with a
memory_file entry overrides the default. Files that already carry the
instructions are left untouched.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := injectTarget(args)
		if err != nil {
			return err
		}

		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("reading %s: %w", path, err)
		}
		content := string(data)

		if instructions.Has(content) {
			fmt.Printf("%s already contains the orchestration instructions\n", path)
			return nil
		}

		if injectDryRun {
			fmt.Printf("Would inject instructions into %s\n", path)
			return nil
		}

		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return fmt.Errorf("creating %s: %w", filepath.Dir(path), err)
		}
		if err := os.WriteFile(path, []byte(instructions.Inject(content)), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
		fmt.Printf("Injected instructions into %s\n", path)
		return nil
	},
}

// injectTarget resolves the memory file to modify: explicit argument, then
// the project manifest override, then the agent's home memory file.
func injectTarget(args []string) (string, error) {
	if len(args) == 1 {
		return filepath.Abs(args[0])
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolving working directory: %w", err)
	}
	manifest, err := project.Load(cwd)
	if err != nil {
		return "", err
	}
	if manifest.MemoryFile != "" {
		return filepath.Abs(manifest.MemoryFile)
	}

	a, ok := agent.Parse(injectAgent)
	if !ok {
		return "", fmt.Errorf("unknown agent %q (expected one of claude, codex, gemini)", injectAgent)
	}
	return a.MemoryPath()
}
