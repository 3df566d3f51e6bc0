// Package cli wires the agentsync commands: one-shot and watched alias
// synchronization, instructions injection, per-agent command installation,
// diagnostics, configuration, and self-update.
package cli
