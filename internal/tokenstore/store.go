// Package tokenstore persists the bearer token issued by the identity
// provider. Exactly one token is stored; absence means unauthenticated.
//
// The on-disk format is a small JSON document at a configured path
// (default ~/.jobcli/token.json) with 0600 permissions. Writes are atomic
// (write-tmp-fsync-rename) and guarded by flock for cross-process exclusion
// plus a mutex for in-process exclusion.
package tokenstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// ErrStorage is returned when the token file cannot be read or written.
var ErrStorage = errors.New("token storage error")

// StorageError wraps a failure of the underlying token file.
type StorageError struct {
	// Op is the operation that failed: "load", "save", or "clear".
	Op string
	// Cause is the underlying error.
	Cause error
}

// Error returns a human-readable description of the storage error.
func (e *StorageError) Error() string {
	return fmt.Sprintf("token %s: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying error cause.
func (e *StorageError) Unwrap() error {
	return e.Cause
}

// Is reports whether this error matches the target error.
// It supports errors.Is(err, ErrStorage).
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// tokenFile is the persisted JSON document.
type tokenFile struct {
	// AccessToken is the opaque bearer token.
	AccessToken string `json:"access_token"`

	// SavedAt is when the token was written (UTC).
	SavedAt time.Time `json:"saved_at"`
}

// FileStore reads and writes the token file. Safe for concurrent use.
type FileStore struct {
	path   string
	mu     sync.Mutex
	logger *slog.Logger
}

// NewFileStore creates a FileStore for the given file path.
func NewFileStore(path string, logger *slog.Logger) *FileStore {
	return &FileStore{
		path:   path,
		logger: logger,
	}
}

// DefaultPath returns the default token file location, ~/.jobcli/token.json.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".jobcli", "token.json")
	}
	return filepath.Join(home, ".jobcli", "token.json")
}

// Load reads the persisted token. A missing file is not an error: it returns
// an empty token, meaning unauthenticated. Warns if the existing file has
// permissions more open than 0600.
func (s *FileStore) Load() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", &StorageError{Op: "load", Cause: err}
	}

	// Unix permission bits are meaningless on Windows.
	if runtime.GOOS != "windows" {
		if info, statErr := os.Stat(s.path); statErr == nil {
			mode := info.Mode().Perm()
			if mode&0077 != 0 { // group or other has access
				s.logger.Warn("token file has too-open permissions, should be 0600",
					"path", s.path, "current_mode", fmt.Sprintf("%04o", mode))
			}
		}
	}

	var tf tokenFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return "", &StorageError{Op: "load", Cause: err}
	}

	return tf.AccessToken, nil
}

// Save persists the token atomically: acquire the in-process mutex, acquire
// flock on path+".lock", write path+".tmp" with 0600, fsync, rename over the
// target, release locks.
func (s *FileStore) Save(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return &StorageError{Op: "save", Cause: err}
	}

	unlock, err := s.flock()
	if err != nil {
		return &StorageError{Op: "save", Cause: err}
	}
	defer unlock()

	data, err := json.MarshalIndent(tokenFile{
		AccessToken: token,
		SavedAt:     time.Now().UTC(),
	}, "", "  ")
	if err != nil {
		return &StorageError{Op: "save", Cause: err}
	}
	data = append(data, '\n')

	if err := s.writeAtomic(data); err != nil {
		return &StorageError{Op: "save", Cause: err}
	}

	s.logger.Debug("token saved", "path", s.path)
	return nil
}

// Clear removes the persisted token. Clearing an absent token is a no-op.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Nothing on disk, nothing to do. Also keeps Clear from failing on a
	// machine where the state directory was never created.
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return nil
	}

	unlock, err := s.flock()
	if err != nil {
		return &StorageError{Op: "clear", Cause: err}
	}
	defer unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return &StorageError{Op: "clear", Cause: err}
	}

	s.logger.Debug("token cleared", "path", s.path)
	return nil
}

// Exists returns true if a token file is present on disk.
func (s *FileStore) Exists() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Path returns the configured file path.
func (s *FileStore) Path() string {
	return s.path
}

// flock acquires the cross-process lock and returns a release function.
func (s *FileStore) flock() (func(), error) {
	lockPath := s.path + ".lock"
	lockFile, err := os.OpenFile(lockPath, os.O_CREATE|os.O_RDWR, 0600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}
	if err := flockLock(lockFile.Fd()); err != nil {
		_ = lockFile.Close()
		return nil, fmt.Errorf("acquire file lock: %w", err)
	}
	return func() {
		_ = flockUnlock(lockFile.Fd())
		_ = lockFile.Close()
	}, nil
}

// writeAtomic writes data to a temp file, fsyncs it, and renames it over the
// target path. On any error the temp file is cleaned up.
func (s *FileStore) writeAtomic(data []byte) error {
	tmpPath := s.path + ".tmp"

	f, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	cleanup := func() {
		_ = f.Close()
		_ = os.Remove(tmpPath)
	}

	if _, err := f.Write(data); err != nil {
		cleanup()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := f.Sync(); err != nil {
		cleanup()
		return fmt.Errorf("fsync temp file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp to token file: %w", err)
	}
	return nil
}
