package syncer

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// AddToGitignore appends an ignore line for a managed alias link to the
// directory's .gitignore, so generated links stay out of version control.
// If the line already exists, this is a no-op.
func AddToGitignore(dir, name string) error {
	gitignorePath := filepath.Join(dir, ".gitignore")

	content, err := os.ReadFile(gitignorePath)
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("reading .gitignore: %w", err)
	}

	for _, l := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(l) == name {
			return nil // already present
		}
	}

	// Append, making sure the previous content still ends with a newline.
	suffix := name + "\n"
	if len(content) > 0 && !strings.HasSuffix(string(content), "\n") {
		suffix = "\n" + suffix
	}

	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening .gitignore for append: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(suffix); err != nil {
		return fmt.Errorf("writing to .gitignore: %w", err)
	}
	return nil
}

// RemoveFromGitignore removes the ignore line for an alias link. If the line
// is not present, this is a no-op.
func RemoveFromGitignore(dir, name string) error {
	gitignorePath := filepath.Join(dir, ".gitignore")

	content, err := os.ReadFile(gitignorePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading .gitignore: %w", err)
	}

	var kept []string
	found := false
	for _, l := range strings.Split(string(content), "\n") {
		if strings.TrimSpace(l) == name {
			found = true
			continue
		}
		kept = append(kept, l)
	}
	if !found {
		return nil
	}

	if err := os.WriteFile(gitignorePath, []byte(strings.Join(kept, "\n")), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}
