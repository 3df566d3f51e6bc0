package project

import (
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, ManifestFilename), []byte(content), 0o644); err != nil {
		t.Fatalf("writing manifest: %v", err)
	}
}

func TestLoad_MissingFileYieldsDefault(t *testing.T) {
	m, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Agents) != 0 || m.Gitignore || m.MemoryFile != "" {
		t.Errorf("expected default manifest, got %+v", m)
	}
}

func TestLoad_ValidManifest(t *testing.T) {
	tmp := t.TempDir()
	writeManifest(t, tmp, "agents:\n  - claude\ngitignore: true\nmemory_file: docs/MEMORY.md\n")

	m, err := Load(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(m.Agents) != 1 || m.Agents[0] != "claude" {
		t.Errorf("agents = %v, want [claude]", m.Agents)
	}
	if !m.Gitignore {
		t.Error("expected gitignore enabled")
	}
	if m.MemoryFile != "docs/MEMORY.md" {
		t.Errorf("memory_file = %q", m.MemoryFile)
	}
}

func TestLoad_EmptyManifest(t *testing.T) {
	tmp := t.TempDir()
	writeManifest(t, tmp, "")

	m, err := Load(tmp)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !m.ManagesTarget("CLAUDE.md") {
		t.Error("default manifest should manage every target")
	}
}

func TestLoad_RejectsUnknownAgent(t *testing.T) {
	tmp := t.TempDir()
	writeManifest(t, tmp, "agents:\n  - cursor\n")

	if _, err := Load(tmp); err == nil {
		t.Fatal("expected error for unsupported agent")
	}
}

func TestLoad_RejectsUnknownKeys(t *testing.T) {
	tmp := t.TempDir()
	writeManifest(t, tmp, "agnts:\n  - claude\n")

	if _, err := Load(tmp); err == nil {
		t.Fatal("expected schema error for misspelled key")
	}
}

func TestValidate_Issues(t *testing.T) {
	result, err := Validate([]byte("gitignore: \"yes\"\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result for non-boolean gitignore")
	}
	if len(result.Issues) == 0 {
		t.Fatal("expected at least one issue")
	}
	if result.Issues[0].Path != "/gitignore" {
		t.Errorf("issue path = %q, want /gitignore", result.Issues[0].Path)
	}
}

func TestSaveThenLoadRoundTrip(t *testing.T) {
	tmp := t.TempDir()
	in := &Manifest{Agents: []string{"claude", "gemini"}, Gitignore: true}

	if err := Save(tmp, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	out, err := Load(tmp)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(out.Agents) != 2 || out.Agents[0] != "claude" || out.Agents[1] != "gemini" {
		t.Errorf("agents = %v", out.Agents)
	}
	if !out.Gitignore {
		t.Error("gitignore flag lost in round trip")
	}
}

func TestManagesTarget(t *testing.T) {
	m := &Manifest{Agents: []string{"claude"}}

	if !m.ManagesTarget("CLAUDE.md") {
		t.Error("expected CLAUDE.md to be managed")
	}
	if m.ManagesTarget("GEMINI.md") {
		t.Error("expected GEMINI.md to be skipped when gemini is not selected")
	}
	// Filenames owned by no agent stay managed.
	if !m.ManagesTarget("OTHER.md") {
		t.Error("expected unowned filenames to be managed")
	}
}
