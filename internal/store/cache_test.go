package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/Yazidbusthomy27/KoperasiKita/internal/infrastructure/db"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	gdb, err := db.OpenSQLite(filepath.Join(t.TempDir(), "cache.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	cache, err := NewCache(gdb)
	if err != nil {
		t.Fatalf("NewCache: %v", err)
	}
	return cache
}

func TestCache_ReadAllEmpty(t *testing.T) {
	cache := newTestCache(t)
	records, err := cache.ReadAll(context.Background(), CollectionMembers)
	if err != nil {
		t.Fatalf("ReadAll err: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("records = %d, want 0", len(records))
	}
}

func TestCache_ReplaceAllRoundTrip(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	in := []json.RawMessage{
		json.RawMessage(`{"member_id":"M1","name":"Siti"}`),
		json.RawMessage(`{"member_id":"M2","name":"Budi"}`),
	}
	if err := cache.ReplaceAll(ctx, CollectionMembers, in); err != nil {
		t.Fatalf("ReplaceAll err: %v", err)
	}
	out, err := cache.ReadAll(ctx, CollectionMembers)
	if err != nil {
		t.Fatalf("ReadAll err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("records = %d, want 2", len(out))
	}

	// Second replace overwrites, not appends.
	if err := cache.ReplaceAll(ctx, CollectionMembers, in[:1]); err != nil {
		t.Fatalf("second ReplaceAll err: %v", err)
	}
	out, err = cache.ReadAll(ctx, CollectionMembers)
	if err != nil {
		t.Fatalf("ReadAll err: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("records after overwrite = %d, want 1", len(out))
	}
}

func TestCache_CollectionsAreIsolated(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	if err := cache.ReplaceAll(ctx, CollectionMembers, []json.RawMessage{
		json.RawMessage(`{"member_id":"M1"}`),
	}); err != nil {
		t.Fatalf("ReplaceAll err: %v", err)
	}
	out, err := cache.ReadAll(ctx, CollectionLoans)
	if err != nil {
		t.Fatalf("ReadAll err: %v", err)
	}
	if len(out) != 0 {
		t.Fatalf("loans = %d, want 0", len(out))
	}
}

func TestCache_ApplyOps(t *testing.T) {
	cache := newTestCache(t)
	ctx := context.Background()

	type rec struct {
		ID   string `json:"transaction_id"`
		Note string `json:"note"`
	}

	if err := cache.Apply(ctx, OpCreate, CollectionTransactions, rec{ID: "T1", Note: "a"}, ""); err != nil {
		t.Fatalf("create T1: %v", err)
	}
	if err := cache.Apply(ctx, OpCreate, CollectionTransactions, rec{ID: "T2", Note: "b"}, ""); err != nil {
		t.Fatalf("create T2: %v", err)
	}

	if err := cache.Apply(ctx, OpUpdate, CollectionTransactions, rec{ID: "T1", Note: "changed"}, "T1"); err != nil {
		t.Fatalf("update T1: %v", err)
	}
	out, err := cache.ReadAll(ctx, CollectionTransactions)
	if err != nil {
		t.Fatalf("ReadAll err: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("records = %d, want 2", len(out))
	}
	var got rec
	if err := json.Unmarshal(out[0], &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if got.Note != "changed" {
		t.Fatalf("note = %q, want changed", got.Note)
	}

	// Update for an id that is not cached is a no-op.
	if err := cache.Apply(ctx, OpUpdate, CollectionTransactions, rec{ID: "T9"}, "T9"); err != nil {
		t.Fatalf("update T9: %v", err)
	}
	out, _ = cache.ReadAll(ctx, CollectionTransactions)
	if len(out) != 2 {
		t.Fatalf("no-op update changed record count: %d", len(out))
	}

	if err := cache.Apply(ctx, OpDelete, CollectionTransactions, nil, "T1"); err != nil {
		t.Fatalf("delete T1: %v", err)
	}
	out, _ = cache.ReadAll(ctx, CollectionTransactions)
	if len(out) != 1 {
		t.Fatalf("records after delete = %d, want 1", len(out))
	}
	if recordID(out[0], "transaction_id") != "T2" {
		t.Fatalf("wrong record deleted")
	}

	if err := cache.Apply(ctx, Op("upsert"), CollectionTransactions, nil, ""); err == nil {
		t.Fatal("want error for unknown op")
	}
}
