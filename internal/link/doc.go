// Package link decides which agent-specific filenames must mirror the
// canonical AGENTS.md instructions file. It is pure decision logic: callers
// supply a filename and a fresh directory listing, and the package reports
// which symlinks still need to be created. It never touches the file system.
package link
