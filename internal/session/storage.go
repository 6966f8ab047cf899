package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/gofrs/flock"
)

// State is the persisted session payload: the access token, the refresh
// token, and the cached user record.
type State struct {
	AccessToken  string          `json:"access_token,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	User         json.RawMessage `json:"user,omitempty"`
}

// Empty reports whether the state carries no credentials.
func (s State) Empty() bool {
	return s.AccessToken == "" && s.RefreshToken == "" && len(s.User) == 0
}

// Storage abstracts persistence for session state so tests can substitute an
// in-memory implementation.
type Storage interface {
	Load() (State, error)
	Save(State) error
	Clear() error
}

// FileStorage writes session state to a JSON file on disk. A sibling lock file
// serializes writers across concurrent CLI invocations.
type FileStorage struct {
	path string
	lock *flock.Flock
}

// NewFileStorage builds a FileStorage rooted at the provided path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{
		path: path,
		lock: flock.New(path + ".lock"),
	}
}

// Load reads session state from disk. A missing file resolves to an empty state.
func (s *FileStorage) Load() (State, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("read session state: %w", err)
	}

	var state State
	if err := json.Unmarshal(data, &state); err != nil {
		return State{}, fmt.Errorf("decode session state: %w", err)
	}
	return state, nil
}

// Save persists session state to disk with restricted permissions.
func (s *FileStorage) Save(state State) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("ensure session state directory: %w", err)
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock session state: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session state: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write session state: %w", err)
	}
	return nil
}

// Clear removes the persisted state file.
func (s *FileStorage) Clear() error {
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock session state: %w", err)
	}
	defer func() { _ = s.lock.Unlock() }()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session state: %w", err)
	}
	return nil
}

// MemoryStorage keeps session state in memory; used by tests.
type MemoryStorage struct {
	mu    sync.Mutex
	state State
	set   bool
}

// NewMemoryStorage returns an empty in-memory storage.
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{}
}

func (s *MemoryStorage) Load() (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.set {
		return State{}, nil
	}
	return s.state, nil
}

func (s *MemoryStorage) Save(state State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.set = true
	return nil
}

func (s *MemoryStorage) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
	s.set = false
	return nil
}
