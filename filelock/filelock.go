package filelock

import (
	"errors"
	"os"
	"path/filepath"
)

// ErrLocked is returned from Lock if the target is already locked by another
// writer.
var ErrLocked = errors.New("specified file is locked by another writer")

// FileLock is a handle to an on-disk lock next to the file it guards.
type FileLock struct {
	path string
}

// Lock acquires the lock for `filename` by creating `filename.lck`. Creation
// is exclusive, so two writers racing for the same file cannot both succeed.
func Lock(filename string) (*FileLock, error) {
	absolutePath, err := filepath.Abs(filename + ".lck")
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(absolutePath, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0600)
	if errors.Is(err, os.ErrExist) {
		return nil, ErrLocked
	}
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		os.Remove(absolutePath)
		return nil, err
	}

	return &FileLock{
		path: absolutePath,
	}, nil
}

// Unlock releases the FileLock.
func (fl *FileLock) Unlock() error {
	return os.Remove(fl.path)
}
