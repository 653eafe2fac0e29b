// Package kv implements the flat key-value namespace the pipeline persists
// into: three logical keys ("users", "resumeData", "currentUser"), each
// holding one JSON document. Reads and writes are whole-value; callers do
// read-modify-write at collection granularity. Concurrent writers from
// separate processes race last-write-wins — an accepted limitation of the
// single-user local store, not a bug.
package kv

import (
	"context"
	"io"
)

// Well-known keys. Prior persisted data uses exactly these names; any
// replacement store must keep them stable.
const (
	KeyUsers       = "users"
	KeyResumeData  = "resumeData"
	KeyCurrentUser = "currentUser"
)

// Store defines whole-value reads and writes over a flat key namespace.
type Store interface {
	// Get returns the stored value for key, or ok=false when absent.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Closer is implemented by stores holding external resources.
type Closer interface {
	io.Closer
}
