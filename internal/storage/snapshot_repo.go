package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"macaron/internal/task"
)

// Logical keys for the two persisted collections. Both are read once at
// startup and rewritten in full after every transition.
const (
	KeyTasks     = "tasks"
	KeySummaries = "daily_summaries"
)

// SnapshotRepo adapts the key-value store to the state store's persister
// contract, encoding each collection as a single JSON document.
type SnapshotRepo struct {
	kv *KV
}

func NewSnapshotRepo(kv *KV) *SnapshotRepo {
	return &SnapshotRepo{kv: kv}
}

func (r *SnapshotRepo) LoadTasks(ctx context.Context) ([]task.Task, error) {
	var tasks []task.Task
	if err := r.load(ctx, KeyTasks, &tasks); err != nil {
		return nil, err
	}
	return tasks, nil
}

func (r *SnapshotRepo) SaveTasks(ctx context.Context, tasks []task.Task) error {
	return r.save(ctx, KeyTasks, tasks)
}

func (r *SnapshotRepo) LoadSummaries(ctx context.Context) ([]task.DailySummary, error) {
	var summaries []task.DailySummary
	if err := r.load(ctx, KeySummaries, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

func (r *SnapshotRepo) SaveSummaries(ctx context.Context, summaries []task.DailySummary) error {
	return r.save(ctx, KeySummaries, summaries)
}

func (r *SnapshotRepo) load(ctx context.Context, key string, dest any) error {
	raw, ok, err := r.kv.Get(ctx, key)
	if err != nil {
		return err
	}
	if !ok || raw == "" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		return fmt.Errorf("decode %q: %w", key, err)
	}
	return nil
}

func (r *SnapshotRepo) save(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %q: %w", key, err)
	}
	return r.kv.Put(ctx, key, string(data))
}
