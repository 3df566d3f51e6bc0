// Package agent defines the closed set of supported coding-agent CLIs and
// locates their per-user configuration surfaces: the config root under the
// home directory, the command/prompt storage path for a named command, and
// the memory file each agent auto-loads. It also probes the PATH to report
// which agent CLIs are installed.
package agent
