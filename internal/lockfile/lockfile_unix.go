//go:build unix

package lockfile

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Acquire takes an exclusive, non-blocking flock on path. It returns a
// release func, or an error if another bridge already holds the lock.
// Two bridges sharing one Unity editor would interleave frames on the
// same socket, so exactly one instance may run per machine.
func Acquire(path string) (func() error, error) {
	lockFile, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("opening lock file: %w", err)
	}

	if err := unix.Flock(int(lockFile.Fd()), unix.LOCK_EX|unix.LOCK_NB); err != nil {
		lockFile.Close()
		if err == unix.EWOULDBLOCK {
			return nil, fmt.Errorf("another unity-mcp instance holds %s", path)
		}
		return nil, fmt.Errorf("locking %s: %w", path, err)
	}

	return func() error {
		unlockErr := unix.Flock(int(lockFile.Fd()), unix.LOCK_UN)
		closeErr := lockFile.Close()
		if unlockErr != nil {
			return unlockErr
		}
		return closeErr
	}, nil
}
