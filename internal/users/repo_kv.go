package users

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"resume-tailor/internal/shared/storage/kv"
)

// KVRepo implements Repo over the local store's "users" collection. Every
// operation is a whole-collection read (and, for writes, a read-modify-write
// of the full JSON array) — the same granularity the store itself offers.
type KVRepo struct {
	store kv.Store
	mu    sync.Mutex
}

// NewKVRepo constructs a KVRepo over the given store.
func NewKVRepo(store kv.Store) *KVRepo {
	return &KVRepo{store: store}
}

// Create appends the user to the collection. A user with the same ID already
// present is left untouched and no error is reported; that simplification is
// part of the store contract.
func (r *KVRepo) Create(ctx context.Context, user User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, u := range existing {
		if u.ID == user.ID {
			return nil
		}
	}
	return r.save(ctx, append(existing, user))
}

// GetByID returns the user with the given ID.
func (r *KVRepo) GetByID(ctx context.Context, userID string) (User, error) {
	all, err := r.load(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range all {
		if u.ID == userID {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// GetByEmail returns the user with the given email. Matching is exact
// equality against the stored value.
func (r *KVRepo) GetByEmail(ctx context.Context, email string) (User, error) {
	all, err := r.load(ctx)
	if err != nil {
		return User{}, err
	}
	for _, u := range all {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// List returns all users. Order is not significant.
func (r *KVRepo) List(ctx context.Context) ([]User, error) {
	return r.load(ctx)
}

func (r *KVRepo) load(ctx context.Context) ([]User, error) {
	raw, ok, err := r.store.Get(ctx, kv.KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []User{}, nil
	}
	var all []User
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("decode users collection: %w", err)
	}
	return all, nil
}

func (r *KVRepo) save(ctx context.Context, all []User) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode users collection: %w", err)
	}
	return r.store.Set(ctx, kv.KeyUsers, raw)
}

var _ Repo = (*KVRepo)(nil)
