package lockfile

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// WithLock serializes same-machine access to the data file at path. It takes
// an exclusive advisory lock on a sibling ".lock" file, runs fn, and releases
// the lock on every exit path. Each logical store owns its own lock file; the
// session file and the document database never share one.
func WithLock(path string, fn func() error) error {
	lockPath := path + ".lock"
	if err := os.MkdirAll(filepath.Dir(lockPath), 0o755); err != nil {
		return fmt.Errorf("create lock dir: %w", err)
	}
	lock := flock.New(lockPath)
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire lock %s: %w", lockPath, err)
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return fn()
}
