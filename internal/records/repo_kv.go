package records

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"resume-tailor/internal/shared/storage/kv"
)

// KVRepo implements Repo over the local store's "resumeData" collection,
// one JSON array holding every user's records. Writes are whole-collection
// read-modify-write; owner filtering and recency sorting happen on read.
type KVRepo struct {
	store kv.Store
	mu    sync.Mutex
}

// NewKVRepo constructs a KVRepo over the given store.
func NewKVRepo(store kv.Store) *KVRepo {
	return &KVRepo{store: store}
}

// Create appends the record to the collection. A record with an already
// present ID is left untouched, silently.
func (r *KVRepo) Create(ctx context.Context, record Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.load(ctx)
	if err != nil {
		return err
	}
	for _, existing := range all {
		if existing.ID == record.ID {
			return nil
		}
	}
	return r.save(ctx, append(all, record))
}

// GetByID returns the record with the given ID if it belongs to the user.
func (r *KVRepo) GetByID(ctx context.Context, userID, recordID string) (Record, error) {
	all, err := r.load(ctx)
	if err != nil {
		return Record{}, err
	}
	for _, record := range all {
		if record.ID == recordID && record.UserID == userID {
			return record, nil
		}
	}
	return Record{}, ErrNotFound
}

// ListByUser returns the user's records, newest first.
func (r *KVRepo) ListByUser(ctx context.Context, userID string) ([]Record, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	owned := make([]Record, 0)
	for _, record := range all {
		if record.UserID == userID {
			owned = append(owned, record)
		}
	}
	sort.SliceStable(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned, nil
}

func (r *KVRepo) load(ctx context.Context) ([]Record, error) {
	raw, ok, err := r.store.Get(ctx, kv.KeyResumeData)
	if err != nil {
		return nil, err
	}
	if !ok {
		return []Record{}, nil
	}
	var all []Record
	if err := json.Unmarshal(raw, &all); err != nil {
		return nil, fmt.Errorf("decode records collection: %w", err)
	}
	return all, nil
}

func (r *KVRepo) save(ctx context.Context, all []Record) error {
	raw, err := json.Marshal(all)
	if err != nil {
		return fmt.Errorf("encode records collection: %w", err)
	}
	return r.store.Set(ctx, kv.KeyResumeData, raw)
}

var _ Repo = (*KVRepo)(nil)
