// Package instructions holds the multi-agent spawning instructions block
// injected into an agent's memory file, plus the marker detection that keeps
// injection idempotent. Detection and application are separate on purpose:
// Inject never checks for prior presence, callers run Has first.
package instructions

import (
	_ "embed"
	"strings"
)

//go:embed swarm.md
var block string

// markers are the case-insensitive substrings that indicate the block (or an
// equivalent announcement of the spawning capability) is already present.
var markers = []string{
	"agent-swarm",
	"agent swarm",
	"spawn_agent",
}

// Block returns the fixed instructions payload.
func Block() string {
	return block
}

// Has reports whether content already carries the instructions block,
// matching any marker in any letter case.
func Has(content string) bool {
	lower := strings.ToLower(content)
	for _, marker := range markers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}

// Inject returns the instructions block prepended to content. It is
// unconditional: injecting into content that already has the block
// duplicates it. Callers check Has first.
func Inject(content string) string {
	return Block() + content
}

// CommandFile renders the instructions as a slash-command file body for the
// given extension: raw markdown for "md", a Gemini command wrapper for
// "toml".
func CommandFile(ext string) string {
	if ext != "toml" {
		return Block()
	}
	var b strings.Builder
	b.WriteString("description = \"Orchestrate background agents\"\n")
	b.WriteString("prompt = \"\"\"\n")
	b.WriteString(strings.ReplaceAll(Block(), `"""`, `\"\"\"`))
	b.WriteString("\"\"\"\n")
	return b.String()
}

