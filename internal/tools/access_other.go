//go:build !unix

package tools

// pathWritable is best-effort on platforms without access(2); the build
// command surfaces the real error if the write fails.
func pathWritable(string) bool {
	return true
}
