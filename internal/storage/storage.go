// Package storage defines the storage interface for langcode.
package storage

import (
	"context"

	"github.com/langcode/langcode/pkg/types"
)

// Storage defines the interface for persisting lookup history.
type Storage interface {
	// Initialize the storage (run migrations, etc.)
	Init(ctx context.Context) error

	// Close the storage connection
	Close() error

	// Lookup history operations
	AddLookup(ctx context.Context, entry *types.HistoryEntry) error
	GetLookup(ctx context.Context, id string) (*types.HistoryEntry, error)
	GetLookupByPrefix(ctx context.Context, prefix string) (*types.HistoryEntry, error)
	ListLookups(ctx context.Context, limit int) ([]*types.HistoryEntry, error)
	DeleteLookup(ctx context.Context, id string) error
	ClearLookups(ctx context.Context) (int64, error)
}
