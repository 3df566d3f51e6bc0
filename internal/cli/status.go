package cli

import (
	"fmt"

	"github.com/agentsync-labs/agentsync/internal/agent"
	"github.com/agentsync-labs/agentsync/internal/link"
	"github.com/agentsync-labs/agentsync/internal/syncer"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(statusCmd)
}

var statusCmd = &cobra.Command{
	Use:   "status [dir]",
	Short: "Show link state and installed agent CLIs",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := resolveDir(args)
		if err != nil {
			return err
		}

		report, err := syncer.Status(dir)
		if err != nil {
			return err
		}

		fmt.Printf("Directory: %s\n", dir)
		if report.CanonicalPresent {
			fmt.Printf("  %s present\n", link.CanonicalFilename)
		} else {
			fmt.Printf("  %s missing (run 'agentsync init')\n", link.CanonicalFilename)
		}
		for _, target := range report.Targets {
			if target.Dest != "" {
				fmt.Printf("  %-10s %s -> %s\n", target.State, target.Name, target.Dest)
			} else {
				fmt.Printf("  %-10s %s\n", target.State, target.Name)
			}
		}

		fmt.Println("\nInstalled agent CLIs:")
		for _, result := range agent.DetectInstalled() {
			if result.Installed {
				fmt.Printf("  [ OK ] %-6s %s\n", result.Agent, result.Path)
			} else {
				fmt.Printf("  [MISS] %-6s not on PATH\n", result.Agent)
			}
		}
		return nil
	},
}
