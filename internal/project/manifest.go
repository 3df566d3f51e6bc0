package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentsync-labs/agentsync/internal/agent"
	"go.yaml.in/yaml/v3"
)

// ManifestFilename is the per-project manifest basename.
const ManifestFilename = ".agentsync.yaml"

// Manifest holds the per-project settings. A missing manifest means
// defaults: every agent managed, no gitignore maintenance.
type Manifest struct {
	// Agents narrows which agents' alias files are managed in this
	// project. Empty means all supported agents.
	Agents []string `yaml:"agents,omitempty" json:"agents,omitempty"`

	// Gitignore enables adding created alias links to .gitignore.
	Gitignore bool `yaml:"gitignore,omitempty" json:"gitignore,omitempty"`

	// MemoryFile overrides the memory file targeted by instructions
	// injection for this project.
	MemoryFile string `yaml:"memory_file,omitempty" json:"memory_file,omitempty"`
}

// Default returns the manifest used when a project has none.
func Default() *Manifest {
	return &Manifest{}
}

// Load reads and validates dir's manifest. A missing file yields Default.
func Load(dir string) (*Manifest, error) {
	path := filepath.Join(dir, ManifestFilename)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}
	if !result.Valid {
		return nil, fmt.Errorf("invalid manifest %s: %s", path, result.Issues[0].Message)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	for _, name := range m.Agents {
		if _, ok := agent.Parse(name); !ok {
			return nil, fmt.Errorf("invalid manifest %s: unsupported agent %q", path, name)
		}
	}
	return &m, nil
}

// Save writes the manifest to dir.
func Save(dir string, m *Manifest) error {
	data, err := yaml.Marshal(m)
	if err != nil {
		return fmt.Errorf("marshaling manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFilename)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ManagesTarget reports whether the alias filename should be managed under
// this manifest. A target owned by an agent outside the Agents selection is
// skipped; unknown filenames are managed (the fixed target set already
// bounds them).
func (m *Manifest) ManagesTarget(filename string) bool {
	if len(m.Agents) == 0 {
		return true
	}
	owner, ok := targetOwner(filename)
	if !ok {
		return true
	}
	for _, name := range m.Agents {
		if a, valid := agent.Parse(name); valid && a == owner {
			return true
		}
	}
	return false
}

// targetOwner maps an alias filename back to the agent that reads it.
func targetOwner(filename string) (agent.Agent, bool) {
	for _, a := range agent.All() {
		if a.MemoryFilename() == filename {
			return a, true
		}
	}
	return "", false
}
