// Package project reads and validates the optional per-project
// .agentsync.yaml manifest. The manifest can narrow which agents' alias
// files are managed in a project and tune orchestration behavior; it can
// never extend the fixed symlink target set.
package project
