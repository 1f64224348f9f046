// Package history records resolved lookups and serves them back to the CLI
// and API.
package history

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/langcode/langcode/internal/storage"
	"github.com/langcode/langcode/pkg/types"
)

// Manager manages the lookup history.
type Manager struct {
	store storage.Storage
}

// NewManager creates a new history manager.
func NewManager(store storage.Storage) *Manager {
	return &Manager{store: store}
}

// Record stores a resolution in the history and returns the new entry.
func (m *Manager) Record(ctx context.Context, res *types.Resolution, simple bool) (*types.HistoryEntry, error) {
	mode := "default"
	if simple {
		mode = "simple"
	}

	entry := &types.HistoryEntry{
		ID:           uuid.New().String(),
		Query:        res.Query,
		Tag:          res.Tag,
		Name:         res.Name,
		LikelyScript: res.LikelyScript,
		Mode:         mode,
		CreatedAt:    time.Now().UTC(),
	}

	if err := m.store.AddLookup(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}

// List returns recorded lookups, most recent first.
func (m *Manager) List(ctx context.Context, limit int) ([]*types.HistoryEntry, error) {
	return m.store.ListLookups(ctx, limit)
}

// Get retrieves an entry by exact ID or ID prefix.
func (m *Manager) Get(ctx context.Context, idOrPrefix string) (*types.HistoryEntry, error) {
	entry, err := m.store.GetLookup(ctx, idOrPrefix)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		return entry, nil
	}
	return m.store.GetLookupByPrefix(ctx, idOrPrefix)
}

// Delete removes an entry by exact ID or ID prefix.
func (m *Manager) Delete(ctx context.Context, idOrPrefix string) error {
	entry, err := m.Get(ctx, idOrPrefix)
	if err != nil {
		return err
	}
	if entry == nil {
		return fmt.Errorf("no history entry matching %q", idOrPrefix)
	}
	return m.store.DeleteLookup(ctx, entry.ID)
}

// Clear removes all entries and returns the number removed.
func (m *Manager) Clear(ctx context.Context) (int64, error) {
	return m.store.ClearLookups(ctx)
}
