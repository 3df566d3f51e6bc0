// Package syncer performs the file-system effects the link resolver decides
// on: creating and repairing alias symlinks next to AGENTS.md, reporting
// per-target state, and optionally keeping created links out of version
// control via .gitignore.
package syncer
