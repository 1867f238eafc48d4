package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func newTestStore(t *testing.T) Store {
	t.Helper()

	store, err := NewSQLiteStore(SQLiteConfig{
		Path: filepath.Join(t.TempDir(), "history.db"),
	})
	if err != nil {
		t.Fatalf("NewSQLiteStore error: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func sampleEntry(method string, precision int, at time.Time) *Entry {
	return &Entry{
		CreatedAt:     at,
		Method:        method,
		Precision:     precision,
		ElapsedMS:     12,
		Digits:        "3.14",
		MismatchIndex: -1,
	}
}

func TestRecordAndRecent(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	for i, method := range []string{"machin", "chudnovsky", "spigot"} {
		entry := sampleEntry(method, 10+i, base.Add(time.Duration(i)*time.Minute))
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record error: %v", err)
		}
		if entry.ID == "" {
			t.Error("Record did not assign an ID")
		}
	}

	entries, err := store.Recent(ctx, 2)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Recent returned %d entries, want 2", len(entries))
	}

	// Newest first
	if entries[0].Method != "spigot" || entries[1].Method != "chudnovsky" {
		t.Errorf("Recent order = %s, %s; want spigot, chudnovsky",
			entries[0].Method, entries[1].Method)
	}
	if entries[0].MismatchIndex != -1 {
		t.Errorf("MismatchIndex = %d, want -1", entries[0].MismatchIndex)
	}
}

func TestRecordRejectsEmptyMethod(t *testing.T) {
	store := newTestStore(t)

	err := store.Record(context.Background(), &Entry{Precision: 10})
	if err == nil {
		t.Error("Record should reject an entry without a method")
	}
}

func TestQueryFilters(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().Add(-time.Hour)
	seeds := []struct {
		method    string
		precision int
	}{
		{"machin", 10},
		{"machin", 50},
		{"chudnovsky", 50},
	}
	for i, seed := range seeds {
		entry := sampleEntry(seed.method, seed.precision, base.Add(time.Duration(i)*time.Minute))
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	byMethod, err := store.Query(ctx, Filter{Method: "machin"})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(byMethod) != 2 {
		t.Errorf("method filter returned %d entries, want 2", len(byMethod))
	}

	byBoth, err := store.Query(ctx, Filter{Method: "machin", Precision: 50})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(byBoth) != 1 {
		t.Errorf("method+precision filter returned %d entries, want 1", len(byBoth))
	}

	since, err := store.Query(ctx, Filter{Since: base.Add(90 * time.Second)})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(since) != 1 || since[0].Method != "chudnovsky" {
		t.Errorf("since filter returned %d entries, want 1 chudnovsky entry", len(since))
	}
}

func TestPrune(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	old := sampleEntry("machin", 10, time.Now().Add(-48*time.Hour))
	recent := sampleEntry("spigot", 20, time.Now().Add(-time.Minute))
	for _, entry := range []*Entry{old, recent} {
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	deleted, err := store.Prune(ctx, 24*time.Hour)
	if err != nil {
		t.Fatalf("Prune error: %v", err)
	}
	if deleted != 1 {
		t.Errorf("Prune deleted %d entries, want 1", deleted)
	}

	remaining, err := store.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent error: %v", err)
	}
	if len(remaining) != 1 || remaining[0].Method != "spigot" {
		t.Errorf("after prune %d entries remain, want only the spigot entry", len(remaining))
	}
}

func TestMemoryStoreMatchesSQLite(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	base := time.Now().Add(-time.Hour)
	for i, method := range []string{"bbp", "ramanujan", "bbp"} {
		entry := sampleEntry(method, 25, base.Add(time.Duration(i)*time.Minute))
		if err := store.Record(ctx, entry); err != nil {
			t.Fatalf("Record error: %v", err)
		}
	}

	entries, err := store.Query(ctx, Filter{Method: "bbp", Limit: 1})
	if err != nil {
		t.Fatalf("Query error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("Query returned %d entries, want 1", len(entries))
	}
	// Newest bbp entry wins under the limit
	if entries[0].CreatedAt.Before(base.Add(time.Minute)) {
		t.Error("Query did not return the newest matching entry")
	}
}
