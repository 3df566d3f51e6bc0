package agent

import (
	"fmt"
	"path/filepath"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input string
		want  Agent
		ok    bool
	}{
		{"claude", Claude, true},
		{"codex", Codex, true},
		{"gemini", Gemini, true},
		{"cursor", "", false},
		{"Claude", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := Parse(tt.input)
			if ok != tt.ok || got != tt.want {
				t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.input, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCommandPathIn(t *testing.T) {
	home := filepath.Join("/", "home", "dev")

	tests := []struct {
		agent   Agent
		command string
		want    string
	}{
		{Claude, "plan", filepath.Join(home, ".claude", "commands", "plan.md")},
		{Codex, "plan", filepath.Join(home, ".codex", "prompts", "plan.md")},
		{Gemini, "plan", filepath.Join(home, ".gemini", "commands", "plan.toml")},
	}

	for _, tt := range tests {
		t.Run(string(tt.agent), func(t *testing.T) {
			if got := tt.agent.CommandPathIn(home, tt.command); got != tt.want {
				t.Errorf("CommandPathIn = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCommandPath_ResolvesHomeFresh(t *testing.T) {
	t.Setenv("HOME", "/tmp/home-a")
	first, err := Gemini.CommandPath("plan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join("/tmp/home-a", ".gemini", "commands", "plan.toml"); first != want {
		t.Errorf("CommandPath = %q, want %q", first, want)
	}

	// Changing the home directory between calls changes the result without
	// restarting the process.
	t.Setenv("HOME", "/tmp/home-b")
	second, err := Gemini.CommandPath("plan")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := filepath.Join("/tmp/home-b", ".gemini", "commands", "plan.toml"); second != want {
		t.Errorf("CommandPath after home change = %q, want %q", second, want)
	}
}

func TestMemoryPathIn(t *testing.T) {
	home := "/home/dev"
	tests := []struct {
		agent Agent
		want  string
	}{
		{Claude, filepath.Join(home, ".claude", "CLAUDE.md")},
		{Codex, filepath.Join(home, ".codex", "AGENTS.md")},
		{Gemini, filepath.Join(home, ".gemini", "GEMINI.md")},
	}

	for _, tt := range tests {
		if got := tt.agent.MemoryPathIn(home); got != tt.want {
			t.Errorf("MemoryPathIn(%s) = %q, want %q", tt.agent, got, tt.want)
		}
	}
}

func TestIsCommandInstalled_AbsentName(t *testing.T) {
	name := fmt.Sprintf("agentsync-no-such-cli-%d", time.Now().UnixNano())
	if IsCommandInstalled(name) {
		t.Errorf("expected %q to be reported as not installed", name)
	}
}

func TestIsCommandInstalled_EmptyAndInvalidNames(t *testing.T) {
	for _, name := range []string{"", "no/such/binary", "bad\x00name"} {
		if IsCommandInstalled(name) {
			t.Errorf("expected %q to be reported as not installed", name)
		}
	}
}

func TestDetectInstalled_CoversAllAgents(t *testing.T) {
	results := DetectInstalled()
	if len(results) != len(All()) {
		t.Fatalf("expected %d results, got %d", len(All()), len(results))
	}
	for i, a := range All() {
		if results[i].Agent != a {
			t.Errorf("result %d: expected agent %s, got %s", i, a, results[i].Agent)
		}
		if results[i].Installed && results[i].Path == "" {
			t.Errorf("agent %s reported installed with empty path", a)
		}
	}
}
