//go:build unix

package tools

import "golang.org/x/sys/unix"

// pathWritable reports whether the current user can write to path.
func pathWritable(path string) bool {
	return unix.Access(path, unix.W_OK) == nil
}
