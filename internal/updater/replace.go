package updater

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"time"

	"github.com/agentsync-labs/agentsync/internal/branding"
)

// ReplaceBinary swaps the running binary for a freshly extracted one. It
// keeps a backup, verifies the new binary answers `version --short`, and
// rolls back on failure.
func ReplaceBinary(newPath, currentPath string) error {
	if runtime.GOOS == "windows" {
		return fmt.Errorf("self-update is not supported on Windows; download the latest release from https://github.com/%s/releases", branding.GitHubRepo())
	}

	info, err := os.Stat(currentPath)
	if err != nil {
		return fmt.Errorf("stat current binary: %w", err)
	}
	origPerm := info.Mode().Perm()

	backupPath := currentPath + ".backup"
	if err := move(currentPath, backupPath); err != nil {
		return fmt.Errorf("creating backup: %w", err)
	}

	if err := move(newPath, currentPath); err != nil {
		rollback(backupPath, currentPath)
		return fmt.Errorf("installing new binary: %w", err)
	}
	_ = os.Chmod(currentPath, origPerm)

	if err := verifyBinary(currentPath); err != nil {
		rollback(backupPath, currentPath)
		return fmt.Errorf("verification failed, rolled back: %w", err)
	}

	os.Remove(backupPath)
	return nil
}

// verifyBinary runs the new binary once and requires a clean exit.
func verifyBinary(binaryPath string) error {
	cmd := exec.Command(binaryPath, "version", "--short")

	done := make(chan error, 1)
	go func() { done <- cmd.Run() }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("new binary exited with error: %w", err)
		}
		return nil
	case <-time.After(5 * time.Second):
		cmd.Process.Kill()
		return fmt.Errorf("new binary timed out after 5 seconds")
	}
}

func rollback(backupPath, currentPath string) {
	_ = move(backupPath, currentPath)
}

// move renames src to dst, copying across filesystems when rename fails.
func move(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}
	if err := copyFile(src, dst); err != nil {
		return err
	}
	return os.Remove(src)
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
