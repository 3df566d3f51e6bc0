package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// sidecarSuffix marks the companion file that records a copied link's
// intended target on Windows.
const sidecarSuffix = ".target"

// CreateSymlink creates a symbolic link at link pointing to target. On
// Windows, if native symlinks are unavailable (developer mode off), it
// copies the target file and writes a sidecar so the target can still be
// recovered.
func CreateSymlink(target, link string) error {
	err := os.Symlink(target, link)
	if err == nil || runtime.GOOS != "windows" {
		return err
	}

	if copyErr := copyLinkTarget(target, link); copyErr != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", copyErr)
	}

	// Best-effort sidecar; the copy itself already succeeded.
	_ = os.WriteFile(link+sidecarSuffix, []byte(target), 0o644)
	return nil
}

// RemoveSymlink removes a symlink, or its fallback copy plus sidecar.
func RemoveSymlink(path string) error {
	err := os.Remove(path)
	_ = os.Remove(path + sidecarSuffix)
	return err
}

// ReadSymlinkTarget returns the target a link points to. On Windows, when
// the link is a copy fallback, the target is read from the sidecar instead.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err == nil {
		return target, nil
	}
	if runtime.GOOS != "windows" {
		return "", err
	}

	data, sidecarErr := os.ReadFile(path + sidecarSuffix)
	if sidecarErr != nil {
		return "", fmt.Errorf("readlink failed and no %s sidecar found: %w", sidecarSuffix, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// IsSymlinkSupported reports whether the platform can create native
// symlinks. On Windows this probes with a throwaway link in the temp dir.
func IsSymlinkSupported() bool {
	if runtime.GOOS != "windows" {
		return true
	}

	probe := filepath.Join(os.TempDir(), ".agentsync-symlink-probe")
	defer os.Remove(probe)
	return os.Symlink(os.TempDir(), probe) == nil
}

// copyLinkTarget copies the link target to dst. Relative targets, the usual
// case for in-directory alias links, resolve against dst's directory.
func copyLinkTarget(target, dst string) error {
	src := target
	if !filepath.IsAbs(src) {
		src = filepath.Join(filepath.Dir(dst), src)
	}

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
