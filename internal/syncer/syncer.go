package syncer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentsync-labs/agentsync/internal/link"
	"github.com/agentsync-labs/agentsync/internal/platform"
	"github.com/agentsync-labs/agentsync/internal/project"
)

// Options tunes a sync run.
type Options struct {
	// Force repairs links that point somewhere other than the canonical file.
	Force bool
	// Gitignore adds managed links to the directory's .gitignore. The
	// project manifest can also enable this.
	Gitignore bool
}

// Result summarizes one sync run.
type Result struct {
	Created   []string // links created this run
	Present   []string // already linked to the canonical file
	Repaired  []string // links re-pointed at the canonical file
	Conflicts []string // real files with the target name, left untouched
	Skipped   []string // deselected by the project manifest
}

// Changed reports whether the run modified the directory.
func (r *Result) Changed() bool {
	return len(r.Created) > 0 || len(r.Repaired) > 0
}

// HandleEvent runs a sync when name is the canonical trigger filename.
// For any other filename it returns (nil, nil): nothing to do.
func HandleEvent(dir, name string, opts Options) (*Result, error) {
	if !link.IsCanonicalFilename(name) {
		return nil, nil
	}
	return Sync(dir, opts)
}

// Sync ensures every managed alias link in dir mirrors the canonical file.
// The canonical file must exist; links are created relative, pointing at the
// bare basename, so the directory can move without breaking them.
func Sync(dir string, opts Options) (*Result, error) {
	canonical := filepath.Join(dir, link.CanonicalFilename)
	if _, err := os.Stat(canonical); err != nil {
		return nil, fmt.Errorf("canonical file %s: %w", canonical, err)
	}

	manifest, err := project.Load(dir)
	if err != nil {
		return nil, err
	}
	if manifest.Gitignore {
		opts.Gitignore = true
	}

	existing, err := listNames(dir)
	if err != nil {
		return nil, err
	}

	result := &Result{}
	var managed []string
	for _, target := range link.TargetsFor(link.CanonicalFilename) {
		if !manifest.ManagesTarget(target) {
			result.Skipped = append(result.Skipped, target)
			continue
		}
		managed = append(managed, target)
	}

	for _, target := range link.MissingTargets(managed, existing) {
		if err := platform.CreateSymlink(link.CanonicalFilename, filepath.Join(dir, target)); err != nil {
			return nil, fmt.Errorf("linking %s: %w", target, err)
		}
		result.Created = append(result.Created, target)
	}

	// Classify targets that already existed.
	missing := make(map[string]struct{}, len(result.Created))
	for _, name := range result.Created {
		missing[name] = struct{}{}
	}
	for _, target := range managed {
		if _, justCreated := missing[target]; justCreated {
			continue
		}
		if err := classifyExisting(dir, target, opts, result); err != nil {
			return nil, err
		}
	}

	if opts.Gitignore {
		for _, target := range managed {
			if contains(result.Conflicts, target) {
				continue
			}
			if err := AddToGitignore(dir, target); err != nil {
				return nil, err
			}
		}
	}

	return result, nil
}

// classifyExisting inspects an already-present target and repairs it when
// allowed. Real files are reported as conflicts and never touched.
func classifyExisting(dir, target string, opts Options, result *Result) error {
	path := filepath.Join(dir, target)

	info, err := os.Lstat(path)
	if err != nil {
		return fmt.Errorf("inspecting %s: %w", path, err)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		result.Conflicts = append(result.Conflicts, target)
		return nil
	}

	dest, err := platform.ReadSymlinkTarget(path)
	if err == nil && linksToCanonical(dir, dest) {
		result.Present = append(result.Present, target)
		return nil
	}

	if !opts.Force {
		result.Conflicts = append(result.Conflicts, target)
		return nil
	}

	if err := platform.RemoveSymlink(path); err != nil {
		return fmt.Errorf("removing stale link %s: %w", path, err)
	}
	if err := platform.CreateSymlink(link.CanonicalFilename, path); err != nil {
		return fmt.Errorf("relinking %s: %w", path, err)
	}
	result.Repaired = append(result.Repaired, target)
	return nil
}

// linksToCanonical reports whether a link destination resolves to the
// canonical file in dir, accepting both relative and absolute forms.
func linksToCanonical(dir, dest string) bool {
	if dest == link.CanonicalFilename {
		return true
	}
	if !filepath.IsAbs(dest) {
		dest = filepath.Join(dir, dest)
	}
	return filepath.Clean(dest) == filepath.Join(dir, link.CanonicalFilename)
}

// listNames returns the basenames present in dir, links included.
func listNames(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

func contains(slice []string, val string) bool {
	for _, s := range slice {
		if s == val {
			return true
		}
	}
	return false
}
