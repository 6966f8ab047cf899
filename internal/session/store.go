package session

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/btccrack27/ai-reels/internal/api"
)

// Store holds the session tokens and cached user behind a Storage backend.
// Every mutation writes through synchronously, mirroring how the browser
// client kept tokens in local storage.
type Store struct {
	mu      sync.RWMutex
	storage Storage
	state   State
}

// NewStore loads the persisted state and returns a ready store.
func NewStore(storage Storage) (*Store, error) {
	state, err := storage.Load()
	if err != nil {
		return nil, err
	}
	return &Store{storage: storage, state: state}, nil
}

// Token returns the current access token, or "" when logged out. It satisfies
// api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.AccessToken
}

// RefreshToken returns the stored refresh token, or "".
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.RefreshToken
}

// CachedUser returns the locally cached user record, or nil.
func (s *Store) CachedUser() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.state.User) == 0 {
		return nil
	}
	var user api.User
	if err := json.Unmarshal(s.state.User, &user); err != nil {
		return nil
	}
	return &user
}

// SetSession persists tokens plus the user record issued on login or register.
func (s *Store) SetSession(user api.User, tokens api.Tokens) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode cached user: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	updated := State{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
		User:         encoded,
	}
	if err := s.storage.Save(updated); err != nil {
		return err
	}
	s.state = updated
	return nil
}

// SetTokens replaces the token pair while keeping the cached user. A refresh
// response without a new refresh token keeps the old one.
func (s *Store) SetTokens(tokens api.Tokens) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := s.state
	updated.AccessToken = tokens.AccessToken
	if tokens.RefreshToken != "" {
		updated.RefreshToken = tokens.RefreshToken
	}
	if err := s.storage.Save(updated); err != nil {
		return err
	}
	s.state = updated
	return nil
}

// SetCachedUser refreshes the cached user record.
func (s *Store) SetCachedUser(user api.User) error {
	encoded, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode cached user: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := s.state
	updated.User = encoded
	if err := s.storage.Save(updated); err != nil {
		return err
	}
	s.state = updated
	return nil
}

// Clear drops tokens and the cached user from memory and storage.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.storage.Clear(); err != nil {
		return err
	}
	s.state = State{}
	return nil
}
