package syncer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentsync-labs/agentsync/internal/link"
	"github.com/agentsync-labs/agentsync/internal/platform"
	"github.com/agentsync-labs/agentsync/internal/project"
)

// TargetState classifies one alias filename in a directory.
type TargetState string

const (
	StateLinked   TargetState = "linked"   // symlink to the canonical file
	StateMissing  TargetState = "missing"  // nothing with that name
	StateStale    TargetState = "stale"    // symlink pointing elsewhere
	StateConflict TargetState = "conflict" // real file, never touched
	StateSkipped  TargetState = "skipped"  // deselected by the manifest
)

// TargetStatus is the state of one alias target.
type TargetStatus struct {
	Name  string
	State TargetState
	Dest  string // link destination, when the target is a symlink
}

// Report is the full link state of a directory.
type Report struct {
	CanonicalPresent bool
	Targets          []TargetStatus
}

// Status inspects dir without modifying it.
func Status(dir string) (*Report, error) {
	manifest, err := project.Load(dir)
	if err != nil {
		return nil, err
	}

	report := &Report{}
	if _, err := os.Stat(filepath.Join(dir, link.CanonicalFilename)); err == nil {
		report.CanonicalPresent = true
	}

	for _, target := range link.TargetsFor(link.CanonicalFilename) {
		status := TargetStatus{Name: target}
		switch {
		case !manifest.ManagesTarget(target):
			status.State = StateSkipped
		default:
			status.State, status.Dest, err = inspectTarget(dir, target)
			if err != nil {
				return nil, err
			}
		}
		report.Targets = append(report.Targets, status)
	}
	return report, nil
}

// inspectTarget classifies a single target name in dir.
func inspectTarget(dir, target string) (TargetState, string, error) {
	path := filepath.Join(dir, target)

	info, err := os.Lstat(path)
	if os.IsNotExist(err) {
		return StateMissing, "", nil
	}
	if err != nil {
		return "", "", fmt.Errorf("inspecting %s: %w", path, err)
	}

	if info.Mode()&os.ModeSymlink == 0 {
		return StateConflict, "", nil
	}

	dest, err := platform.ReadSymlinkTarget(path)
	if err != nil {
		return StateStale, "", nil
	}
	if linksToCanonical(dir, dest) {
		return StateLinked, dest, nil
	}
	return StateStale, dest, nil
}
