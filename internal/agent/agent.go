package agent

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

// Agent identifies a supported coding-agent CLI.
type Agent string

const (
	Claude Agent = "claude"
	Codex  Agent = "codex"
	Gemini Agent = "gemini"
)

// layout maps an agent to its per-user configuration surfaces.
type layout struct {
	ConfigRoot string // dot-directory under $HOME
	CommandDir string // subdirectory holding named command files
	Ext        string // extension for stored command files
	Binary     string // executable name on PATH
	MemoryFile string // instructions file the agent auto-loads
}

// layouts is the fixed per-agent lookup table. Changing a row here is a
// compatibility-relevant configuration change, not a runtime input.
var layouts = map[Agent]layout{
	Claude: {
		ConfigRoot: ".claude",
		CommandDir: "commands",
		Ext:        "md",
		Binary:     "claude",
		MemoryFile: "CLAUDE.md",
	},
	Codex: {
		ConfigRoot: ".codex",
		CommandDir: "prompts",
		Ext:        "md",
		Binary:     "codex",
		MemoryFile: "AGENTS.md",
	},
	Gemini: {
		ConfigRoot: ".gemini",
		CommandDir: "commands",
		Ext:        "toml",
		Binary:     "gemini",
		MemoryFile: "GEMINI.md",
	},
}

// All returns the supported agents in display order.
func All() []Agent {
	return []Agent{Claude, Codex, Gemini}
}

// Parse converts a string to an Agent, returning false if unsupported.
func Parse(s string) (Agent, bool) {
	switch s {
	case "claude":
		return Claude, true
	case "codex":
		return Codex, true
	case "gemini":
		return Gemini, true
	default:
		return "", false
	}
}

// ConfigRoot returns the agent's dot-directory name under $HOME.
func (a Agent) ConfigRoot() string { return layouts[a].ConfigRoot }

// CommandDir returns the subdirectory holding the agent's command files.
func (a Agent) CommandDir() string { return layouts[a].CommandDir }

// Ext returns the file extension for the agent's stored commands.
func (a Agent) Ext() string { return layouts[a].Ext }

// Binary returns the agent's executable name on PATH.
func (a Agent) Binary() string { return layouts[a].Binary }

// MemoryFilename returns the basename of the instructions file the agent
// auto-loads (e.g. "CLAUDE.md").
func (a Agent) MemoryFilename() string { return layouts[a].MemoryFile }

// CommandPathIn builds the path to the named command file under an explicit
// home directory. It performs no file-system access.
func (a Agent) CommandPathIn(home, command string) string {
	spec := layouts[a]
	return filepath.Join(home, spec.ConfigRoot, spec.CommandDir, command+"."+spec.Ext)
}

// CommandPath builds the absolute path to the named command file. The home
// directory is resolved fresh on every call so tests and callers that change
// it mid-process observe the new value.
func (a Agent) CommandPath(command string) (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return a.CommandPathIn(home, command), nil
}

// MemoryPathIn builds the path to the agent's memory file under an explicit
// home directory.
func (a Agent) MemoryPathIn(home string) string {
	spec := layouts[a]
	return filepath.Join(home, spec.ConfigRoot, spec.MemoryFile)
}

// MemoryPath builds the absolute path to the memory file the agent
// auto-loads (e.g. ~/.claude/CLAUDE.md).
func (a Agent) MemoryPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return a.MemoryPathIn(home), nil
}

// CLIInstalled probes the PATH for the agent's own executable. It returns
// the resolved path when installed and an empty string otherwise.
func (a Agent) CLIInstalled() (bool, string) {
	path, err := exec.LookPath(layouts[a].Binary)
	if err != nil {
		return false, ""
	}
	return true, path
}

// IsCommandInstalled reports whether an executable named command can be
// resolved on the current PATH. It returns false for any unresolvable name,
// including the empty string; it never fails.
func IsCommandInstalled(command string) bool {
	_, err := exec.LookPath(command)
	return err == nil
}

// DetectResult describes one agent's installation state.
type DetectResult struct {
	Agent     Agent
	Installed bool
	Path      string
}

// DetectInstalled probes every supported agent CLI and reports its state,
// in display order.
func DetectInstalled() []DetectResult {
	results := make([]DetectResult, 0, len(layouts))
	for _, a := range All() {
		installed, path := a.CLIInstalled()
		results = append(results, DetectResult{Agent: a, Installed: installed, Path: path})
	}
	return results
}
