//go:build !unix

package lockfile

// Acquire is a no-op on platforms without flock semantics.
func Acquire(path string) (func() error, error) {
	return func() error { return nil }, nil
}
