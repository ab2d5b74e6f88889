package client

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
)

// ErrNoSession is returned by SessionStorage.Load when no session is stored.
var ErrNoSession = errors.New("no stored session")

// SessionStorage persists the serialized session between process runs.
// Implementations must treat the payload as opaque bytes.
type SessionStorage interface {
	// Load returns the stored session payload, or ErrNoSession.
	Load() ([]byte, error)
	// Save replaces the stored session payload.
	Save(data []byte) error
	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear() error
}

// FileStorage persists the session as a single JSON file on disk, the
// CLI-process equivalent of a browser's persisted auth entry.
type FileStorage struct {
	path string
	mu   sync.Mutex
}

// NewFileStorage creates a FileStorage writing to path. Parent directories
// are created on first save.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

func (s *FileStorage) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, err
	}
	if len(data) == 0 {
		return nil, ErrNoSession
	}
	return data, nil
}

func (s *FileStorage) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

func (s *FileStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// memoryStorage is an in-process SessionStorage used when no persistent
// storage is configured.
type memoryStorage struct {
	mu   sync.Mutex
	data []byte
}

func (s *memoryStorage) Load() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data == nil {
		return nil, ErrNoSession
	}
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out, nil
}

func (s *memoryStorage) Save(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = make([]byte, len(data))
	copy(s.data, data)
	return nil
}

func (s *memoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
	return nil
}
