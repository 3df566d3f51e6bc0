package cli

import (
	"fmt"
	"os"

	"github.com/agentsync-labs/agentsync/internal/agent"
	"github.com/agentsync-labs/agentsync/internal/instructions"
	"github.com/agentsync-labs/agentsync/internal/link"
	"github.com/agentsync-labs/agentsync/internal/platform"
	"github.com/agentsync-labs/agentsync/internal/syncer"
	"github.com/spf13/cobra"
)

// swarmBinary is the external process spawner the injected instructions
// direct agents to use.
const swarmBinary = "agent-swarm"

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor [dir]",
	Short: "Check the environment and the directory's link health",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir(args)
		if err != nil {
			return err
		}

		healthy := true
		check := func(ok bool, label, detail string) {
			if ok {
				fmt.Printf("  [ OK ] %-28s %s\n", label, detail)
			} else {
				healthy = false
				fmt.Printf("  [MISS] %-28s %s\n", label, detail)
			}
		}

		fmt.Println("Environment:")
		check(platform.IsSymlinkSupported(), "symlinks", "symlink creation available")
		for _, result := range agent.DetectInstalled() {
			detail := result.Path
			if !result.Installed {
				detail = result.Agent.Binary() + " not on PATH"
			}
			check(result.Installed, string(result.Agent)+" CLI", detail)
		}
		check(agent.IsCommandInstalled(swarmBinary), swarmBinary, "external agent spawner")

		fmt.Printf("\nLinks in %s:\n", dir)
		report, err := syncer.Status(dir)
		if err != nil {
			return err
		}
		check(report.CanonicalPresent, link.CanonicalFilename, "canonical instructions file")
		for _, target := range report.Targets {
			detail := string(target.State)
			if target.Dest != "" {
				detail += " -> " + target.Dest
			}
			check(target.State == syncer.StateLinked || target.State == syncer.StateSkipped, target.Name, detail)
		}

		fmt.Println("\nMemory files:")
		for _, a := range agent.All() {
			path, err := a.MemoryPath()
			if err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if os.IsNotExist(err) {
				check(false, a.MemoryFilename(), path+" missing (run 'agentsync inject --agent "+string(a)+"')")
				continue
			}
			if err != nil {
				return fmt.Errorf("reading %s: %w", path, err)
			}
			check(instructions.Has(string(data)), a.MemoryFilename(), path)
		}

		if !healthy {
			fmt.Println("\nSome checks failed.")
		}
		return nil
	},
}
