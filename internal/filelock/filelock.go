// Package filelock provides advisory file locks so srcdump can read a source
// file without racing a cooperating writer that locks the same path.
package filelock

import (
	"fmt"
	"os"

	"github.com/gofrs/flock"
)

// FileLock wraps a flock file lock for coordinating access to files.
type FileLock struct {
	flock *flock.Flock
	path  string
}

// NewFileLock creates a lock for writers on the given path.
// The file is created if it does not exist.
func NewFileLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path),
		path:  path,
	}
}

// NewReadLock creates a lock for readers on an existing file.
// The file is opened read-only, so read permission is enough to take it.
func NewReadLock(path string) *FileLock {
	return &FileLock{
		flock: flock.New(path, flock.SetFlag(os.O_RDONLY)),
		path:  path,
	}
}

// Lock acquires an exclusive lock on the file, blocking until the lock is available.
func (fl *FileLock) Lock() error {
	if err := fl.flock.Lock(); err != nil {
		return fmt.Errorf("failed to acquire lock on %s: %w", fl.path, err)
	}
	return nil
}

// RLock acquires a shared lock, blocking while a writer holds the exclusive lock.
func (fl *FileLock) RLock() error {
	if err := fl.flock.RLock(); err != nil {
		return fmt.Errorf("failed to acquire read lock on %s: %w", fl.path, err)
	}
	return nil
}

// TryRLock attempts a shared lock without blocking.
// Returns false if a writer currently holds the exclusive lock.
func (fl *FileLock) TryRLock() (bool, error) {
	acquired, err := fl.flock.TryRLock()
	if err != nil {
		return false, fmt.Errorf("failed to try read lock on %s: %w", fl.path, err)
	}
	return acquired, nil
}

// Unlock releases the lock.
func (fl *FileLock) Unlock() error {
	if err := fl.flock.Unlock(); err != nil {
		return fmt.Errorf("failed to release lock on %s: %w", fl.path, err)
	}
	return nil
}

// WithReadLock runs fn while holding a shared lock on path.
// The lock is released even if fn fails.
func WithReadLock(path string, fn func() error) error {
	lock := NewReadLock(path)
	if err := lock.RLock(); err != nil {
		return err
	}
	defer lock.Unlock()

	return fn()
}
