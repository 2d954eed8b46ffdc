package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"macaron/internal/task"
)

func newTestKV(t *testing.T) *KV {
	t.Helper()
	ctx := context.Background()

	db, err := Open(ctx, filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewKV(db)
}

func TestKVGetMissingKey(t *testing.T) {
	kv := newTestKV(t)

	value, ok, err := kv.Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok || value != "" {
		t.Fatalf("got %q ok=%v, want absent", value, ok)
	}
}

func TestKVPutOverwrites(t *testing.T) {
	kv := newTestKV(t)
	ctx := context.Background()

	if err := kv.Put(ctx, "k", "v1"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := kv.Put(ctx, "k", "v2"); err != nil {
		t.Fatalf("put again: %v", err)
	}
	value, ok, err := kv.Get(ctx, "k")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok || value != "v2" {
		t.Fatalf("got %q ok=%v, want v2", value, ok)
	}
}

func TestSnapshotRepoRoundTrip(t *testing.T) {
	repo := NewSnapshotRepo(newTestKV(t))
	ctx := context.Background()

	// Nothing persisted yet: both collections come back empty, not as
	// errors.
	tasks, err := repo.LoadTasks(ctx)
	if err != nil || tasks != nil {
		t.Fatalf("fresh load: %v %v", tasks, err)
	}

	due := time.Date(2024, 5, 1, 18, 0, 0, 0, time.Local)
	in := []task.Task{{
		ID:        task.NewID(),
		Title:     "roundtrip",
		Priority:  task.PriorityHigh,
		Category:  "study",
		Tags:      []string{"x", "x"},
		CreatedAt: time.Date(2024, 4, 30, 8, 0, 0, 0, time.Local),
		DueDate:   &due,
		Repeat:    task.RepeatDaily,
	}}
	if err := repo.SaveTasks(ctx, in); err != nil {
		t.Fatalf("save tasks: %v", err)
	}
	out, err := repo.LoadTasks(ctx)
	if err != nil {
		t.Fatalf("load tasks: %v", err)
	}
	if len(out) != 1 || out[0].ID != in[0].ID || out[0].Title != "roundtrip" {
		t.Fatalf("got %+v", out)
	}
	if out[0].DueDate == nil || !out[0].DueDate.Equal(due) {
		t.Fatalf("due date lost: %+v", out[0].DueDate)
	}
	if len(out[0].Tags) != 2 {
		t.Fatalf("duplicate tags must round-trip, got %v", out[0].Tags)
	}

	summaries := []task.DailySummary{{Date: "2024-04-30", Total: 3, Completed: 2, CompletionRate: 200.0 / 3}}
	if err := repo.SaveSummaries(ctx, summaries); err != nil {
		t.Fatalf("save summaries: %v", err)
	}
	gotSummaries, err := repo.LoadSummaries(ctx)
	if err != nil {
		t.Fatalf("load summaries: %v", err)
	}
	if len(gotSummaries) != 1 || gotSummaries[0] != summaries[0] {
		t.Fatalf("got %+v", gotSummaries)
	}
}
