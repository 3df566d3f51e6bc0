package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/agentsync-labs/agentsync/internal/config"
	"github.com/agentsync-labs/agentsync/internal/updater"
	"github.com/spf13/cobra"
)

var (
	updateCheck   bool
	updateVersion string
)

func init() {
	updateCmd.Flags().BoolVar(&updateCheck, "check", false, "Only check whether an update is available")
	updateCmd.Flags().StringVar(&updateVersion, "version", "", "Install a specific version instead of the latest")
	rootCmd.AddCommand(updateCmd)
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update to the latest release",
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []updater.Option
		if mirror := config.Get(config.KeyMirrorURL); mirror != "" {
			opts = append(opts, updater.WithMirror(mirror))
		}
		u := updater.New(buildVersion, opts...)

		var release *updater.Release
		var err error
		if updateVersion != "" {
			release, err = u.CheckSpecificVersion(updateVersion)
		} else {
			release, err = u.CheckLatestVersion()
		}
		if err != nil {
			return fmt.Errorf("checking for updates: %w", err)
		}

		available, err := updater.IsUpdateAvailable(buildVersion, release.Version)
		if err != nil {
			return fmt.Errorf("comparing versions: %w", err)
		}

		// Record the check so the startup banner stays quiet for a day.
		_ = updater.SaveCache(config.Dir(), &updater.VersionCache{
			LatestVersion:   release.Version,
			CurrentVersion:  buildVersion,
			CheckedAt:       time.Now(),
			UpdateAvailable: available,
		})

		if updateVersion == "" && !available {
			fmt.Printf("Already up to date (%s)\n", buildVersion)
			return nil
		}
		if updateCheck {
			fmt.Printf("Update available: %s -> %s\n", buildVersion, release.Version)
			return nil
		}

		fmt.Printf("Updating %s -> %s\n", buildVersion, release.Version)

		tmpDir, err := os.MkdirTemp("", "agentsync-update-*")
		if err != nil {
			return fmt.Errorf("creating temp directory: %w", err)
		}
		defer os.RemoveAll(tmpDir)

		archivePath, err := u.DownloadArchive(release, tmpDir)
		if err != nil {
			return fmt.Errorf("downloading release: %w", err)
		}
		if err := u.VerifyChecksum(release, archivePath); err != nil {
			return fmt.Errorf("verifying download: %w", err)
		}
		binaryPath, err := updater.ExtractBinary(archivePath, tmpDir)
		if err != nil {
			return fmt.Errorf("extracting binary: %w", err)
		}

		currentPath, err := os.Executable()
		if err != nil {
			return fmt.Errorf("locating current binary: %w", err)
		}
		if err := updater.ReplaceBinary(binaryPath, currentPath); err != nil {
			return fmt.Errorf("installing update: %w", err)
		}

		fmt.Printf("Updated to %s\n", release.Version)
		return nil
	},
}
