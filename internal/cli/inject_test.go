package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/agentsync-labs/agentsync/internal/project"
)

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (which requires Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	orig, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd() error = %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q) error = %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(orig); err != nil {
			t.Errorf("Chdir(%q) error = %v", orig, err)
		}
	})
}

func TestInjectTarget_ExplicitArgument(t *testing.T) {
	got, err := injectTarget([]string{"notes/memory.md"})
	if err != nil {
		t.Fatalf("injectTarget() error = %v", err)
	}
	if !filepath.IsAbs(got) {
		t.Errorf("injectTarget() = %q, want absolute path", got)
	}
	if filepath.Base(got) != "memory.md" {
		t.Errorf("injectTarget() = %q, want basename memory.md", got)
	}
}

func TestInjectTarget_DefaultAgentMemoryFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	chdir(t, t.TempDir())

	got, err := injectTarget(nil)
	if err != nil {
		t.Fatalf("injectTarget() error = %v", err)
	}
	want := filepath.Join(home, ".claude", "CLAUDE.md")
	if got != want {
		t.Errorf("injectTarget() = %q, want %q", got, want)
	}
}

func TestInjectTarget_ManifestOverride(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	m := project.Default()
	m.MemoryFile = "docs/MEMORY.md"
	if err := project.Save(dir, m); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := injectTarget(nil)
	if err != nil {
		t.Fatalf("injectTarget() error = %v", err)
	}
	want, _ := filepath.Abs("docs/MEMORY.md")
	if got != want {
		t.Errorf("injectTarget() = %q, want %q", got, want)
	}
}

func TestInjectTarget_UnknownAgent(t *testing.T) {
	chdir(t, t.TempDir())

	orig := injectAgent
	injectAgent = "copilot"
	defer func() { injectAgent = orig }()

	if _, err := injectTarget(nil); err == nil {
		t.Error("injectTarget() with unknown agent should fail")
	}
}

func TestResolveDir(t *testing.T) {
	if got, err := resolveDir([]string{"/tmp/x"}); err != nil || got != "/tmp/x" {
		t.Errorf("resolveDir([/tmp/x]) = %q, %v", got, err)
	}

	cwd, _ := os.Getwd()
	if got, err := resolveDir(nil); err != nil || got != cwd {
		t.Errorf("resolveDir(nil) = %q, %v; want %q", got, err, cwd)
	}
}
