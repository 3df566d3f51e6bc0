package link

import (
	"reflect"
	"testing"
)

func TestIsCanonicalFilename(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"AGENTS.md", true},
		{"agents.md", false},
		{"Agents.md", false},
		{"AGENTS.MD", false},
		{"AGENTS", false},
		{"AGENTS.md.bak", false},
		{"docs/AGENTS.md", false},
		{"CLAUDE.md", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsCanonicalFilename(tt.name); got != tt.want {
				t.Errorf("IsCanonicalFilename(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestTargetsFor_Canonical(t *testing.T) {
	targets := TargetsFor("AGENTS.md")
	want := []string{"CLAUDE.md", "GEMINI.md"}
	if !reflect.DeepEqual(targets, want) {
		t.Errorf("TargetsFor(AGENTS.md) = %v, want %v", targets, want)
	}
}

func TestTargetsFor_NonCanonical(t *testing.T) {
	for _, name := range []string{"agents.md", "CLAUDE.md", "README.md", ""} {
		if targets := TargetsFor(name); targets != nil {
			t.Errorf("TargetsFor(%q) = %v, want nil", name, targets)
		}
	}
}

func TestTargetsFor_ReturnsCopy(t *testing.T) {
	first := TargetsFor("AGENTS.md")
	first[0] = "MUTATED.md"

	second := TargetsFor("AGENTS.md")
	if second[0] != "CLAUDE.md" {
		t.Errorf("mutation of a returned slice leaked into the target set: %v", second)
	}
}

func TestMissingTargets(t *testing.T) {
	tests := []struct {
		name       string
		candidates []string
		existing   []string
		want       []string
	}{
		{
			name:       "partial overlap",
			candidates: []string{"CLAUDE.md", "GEMINI.md", "OTHER.md"},
			existing:   []string{"CLAUDE.md"},
			want:       []string{"GEMINI.md", "OTHER.md"},
		},
		{
			name:       "empty candidates and existing",
			candidates: []string{},
			existing:   []string{},
			want:       []string{},
		},
		{
			name:       "empty existing reports all",
			candidates: []string{"X.md"},
			existing:   []string{},
			want:       []string{"X.md"},
		},
		{
			name:       "all present",
			candidates: []string{"CLAUDE.md", "GEMINI.md"},
			existing:   []string{"CLAUDE.md", "GEMINI.md"},
			want:       []string{},
		},
		{
			name:       "existing entries outside candidates are ignored",
			candidates: []string{"CLAUDE.md"},
			existing:   []string{"README.md", "main.go", "GEMINI.md"},
			want:       []string{"CLAUDE.md"},
		},
		{
			name:       "case-sensitive membership",
			candidates: []string{"CLAUDE.md"},
			existing:   []string{"claude.md"},
			want:       []string{"CLAUDE.md"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MissingTargets(tt.candidates, tt.existing)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MissingTargets(%v, %v) = %v, want %v", tt.candidates, tt.existing, got, tt.want)
			}
		})
	}
}

func TestMissingTargets_DoesNotMutateInputs(t *testing.T) {
	candidates := []string{"CLAUDE.md", "GEMINI.md"}
	existing := []string{"CLAUDE.md"}

	MissingTargets(candidates, existing)

	if !reflect.DeepEqual(candidates, []string{"CLAUDE.md", "GEMINI.md"}) {
		t.Errorf("candidates mutated: %v", candidates)
	}
	if !reflect.DeepEqual(existing, []string{"CLAUDE.md"}) {
		t.Errorf("existing mutated: %v", existing)
	}
}

func TestMissingTargets_SelfDiffIsEmpty(t *testing.T) {
	targets := TargetsFor("AGENTS.md")
	if got := MissingTargets(targets, targets); len(got) != 0 {
		t.Errorf("MissingTargets(C, C) = %v, want empty", got)
	}
}
