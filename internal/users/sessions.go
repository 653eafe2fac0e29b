package users

import (
	"context"
	"encoding/json"
	"fmt"

	"resume-tailor/internal/shared/storage/kv"
)

// Sessions holds the single "currently active user" pointer. Set on login or
// registration, cleared on logout; it lives exactly as long as the backing
// local store does.
type Sessions interface {
	Current(ctx context.Context) (User, bool, error)
	Set(ctx context.Context, user User) error
	Clear(ctx context.Context) error
}

// KVSessions keeps the session pointer under the local store's "currentUser"
// key, as one JSON-encoded user.
type KVSessions struct {
	store kv.Store
}

// NewKVSessions constructs a KVSessions over the given store.
func NewKVSessions(store kv.Store) *KVSessions {
	return &KVSessions{store: store}
}

// Current returns the active user, if any.
func (s *KVSessions) Current(ctx context.Context) (User, bool, error) {
	raw, ok, err := s.store.Get(ctx, kv.KeyCurrentUser)
	if err != nil || !ok {
		return User{}, false, err
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return User{}, false, fmt.Errorf("decode session pointer: %w", err)
	}
	return user, true, nil
}

// Set points the session at the given user.
func (s *KVSessions) Set(ctx context.Context, user User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session pointer: %w", err)
	}
	return s.store.Set(ctx, kv.KeyCurrentUser, raw)
}

// Clear removes the session pointer.
func (s *KVSessions) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, kv.KeyCurrentUser)
}

var _ Sessions = (*KVSessions)(nil)
