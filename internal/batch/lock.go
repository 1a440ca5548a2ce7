package batch

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

const lockName = ".caption-text.lock"

var errLocked = errors.New("another run is writing to this folder")

// dirLock keeps two runs from writing the same output folder at once.
type dirLock struct {
	path string
	lock *flock.Flock
}

func acquireLock(dir string) (*dirLock, error) {
	path := filepath.Join(dir, lockName)
	lock := flock.New(path)

	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return nil, fmt.Errorf("lock %s: %w", path, errLocked)
	}
	return &dirLock{path: path, lock: lock}, nil
}

// release unlocks and removes the lock file so only transcripts remain.
func (l *dirLock) release() error {
	if err := l.lock.Unlock(); err != nil {
		return err
	}
	if err := os.Remove(l.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
