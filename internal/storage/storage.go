// Package storage provides the key-value persistence adapter. Each named key
// holds an independently read and written JSON blob; writes are
// last-writer-wins per key.
package storage

import "context"

// Persisted keys. Keys are independent: a mutation only ever rewrites the
// keys it touches.
const (
	KeyTasks      = "tasks"
	KeyCategories = "categories"
	KeyUser       = "user"
	KeyTheme      = "theme"
	KeyLocation   = "userLocation"
)

// Store defines the interface for key-value persistence operations
type Store interface {
	// Get returns the value for key. The boolean reports whether the key
	// was present.
	Get(ctx context.Context, key string) (string, bool, error)

	// Set stores the value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases any resources held by the store.
	Close() error
}
