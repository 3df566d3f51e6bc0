package link

// CanonicalFilename is the exact basename that triggers synchronization.
// Matching is case-sensitive: "agents.md" is not canonical.
const CanonicalFilename = "AGENTS.md"

// symlinkTargets is the fixed, ordered set of agent-specific filenames that
// must mirror the canonical file. codex reads AGENTS.md natively and needs
// no alias.
var symlinkTargets = []string{
	"CLAUDE.md",
	"GEMINI.md",
}

// IsCanonicalFilename reports whether name is exactly the canonical
// trigger filename. No path normalization or case folding is applied.
func IsCanonicalFilename(name string) bool {
	return name == CanonicalFilename
}

// TargetsFor returns the filenames that must mirror name. For the canonical
// filename this is a copy of the fixed target set; for every other name it
// is nil. Callers may mutate the returned slice freely.
func TargetsFor(name string) []string {
	if !IsCanonicalFilename(name) {
		return nil
	}
	targets := make([]string, len(symlinkTargets))
	copy(targets, symlinkTargets)
	return targets
}

// MissingTargets filters candidates, in their given order, to those not
// present in existing. Neither input is mutated; entries in existing that
// are not candidates are ignored.
func MissingTargets(candidates, existing []string) []string {
	present := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		present[name] = struct{}{}
	}

	missing := make([]string, 0, len(candidates))
	for _, name := range candidates {
		if _, ok := present[name]; !ok {
			missing = append(missing, name)
		}
	}
	return missing
}
