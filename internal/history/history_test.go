package history

import (
	"context"
	"os"
	"testing"

	"github.com/langcode/langcode/internal/storage/sqlite"
	"github.com/langcode/langcode/pkg/types"
)

func setupManager(t *testing.T) *Manager {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "langcode-history-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	tmpFile.Close()
	t.Cleanup(func() { os.Remove(tmpFile.Name()) })

	store, err := sqlite.New(tmpFile.Name())
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { store.Close() })

	if err := store.Init(context.Background()); err != nil {
		t.Fatal(err)
	}
	return NewManager(store)
}

func TestRecordAndList(t *testing.T) {
	mgr := setupManager(t)
	ctx := context.Background()

	res := &types.Resolution{
		Query:        "es-MX",
		Tag:          "es-MX",
		Name:         "Spanish (Mexico)",
		LikelyScript: "Latn",
	}

	entry, err := mgr.Record(ctx, res, false)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if entry.ID == "" {
		t.Error("Record: empty ID")
	}
	if entry.Mode != "default" {
		t.Errorf("Mode = %q, want %q", entry.Mode, "default")
	}

	entries, err := mgr.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("List: got %d entries, want 1", len(entries))
	}
	if entries[0].Tag != "es-MX" {
		t.Errorf("Tag = %q, want %q", entries[0].Tag, "es-MX")
	}
}

func TestRecordSimpleMode(t *testing.T) {
	mgr := setupManager(t)
	ctx := context.Background()

	entry, err := mgr.Record(ctx, &types.Resolution{Query: "fr", Tag: "fr", Name: "French"}, true)
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if entry.Mode != "simple" {
		t.Errorf("Mode = %q, want %q", entry.Mode, "simple")
	}
}

func TestGetByPrefix(t *testing.T) {
	mgr := setupManager(t)
	ctx := context.Background()

	entry, err := mgr.Record(ctx, &types.Resolution{Query: "de", Tag: "de", Name: "German"}, false)
	if err != nil {
		t.Fatal(err)
	}

	got, err := mgr.Get(ctx, entry.ID[:8])
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("Get: returned nil for valid prefix")
	}
	if got.ID != entry.ID {
		t.Errorf("ID = %q, want %q", got.ID, entry.ID)
	}
}

func TestDeleteMissing(t *testing.T) {
	mgr := setupManager(t)

	if err := mgr.Delete(context.Background(), "nope"); err == nil {
		t.Error("Delete: expected error for missing entry")
	}
}

func TestClear(t *testing.T) {
	mgr := setupManager(t)
	ctx := context.Background()

	for _, tag := range []string{"es", "fr", "de"} {
		if _, err := mgr.Record(ctx, &types.Resolution{Query: tag, Tag: tag}, false); err != nil {
			t.Fatal(err)
		}
	}

	n, err := mgr.Clear(ctx)
	if err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear: removed %d, want 3", n)
	}
}
