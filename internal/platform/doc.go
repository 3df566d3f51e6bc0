// Package platform provides cross-platform symlink operations. On Unix it
// uses native symlinks directly. On Windows it falls back to copying the
// target file and recording the intended target in a .target sidecar when
// developer-mode symlinks are unavailable.
package platform
