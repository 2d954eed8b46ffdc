// Package store holds the canonical task collection and applies the
// transition protocol over it. All other packages receive read-only
// snapshots; derived views (query, stats) are pure functions elsewhere.
package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"macaron/internal/task"
)

// Persister is the durable key-value collaborator. Both collections are
// written whole-value after every transition and read once at startup.
type Persister interface {
	LoadTasks(ctx context.Context) ([]task.Task, error)
	SaveTasks(ctx context.Context, tasks []task.Task) error
	LoadSummaries(ctx context.Context) ([]task.DailySummary, error)
	SaveSummaries(ctx context.Context, summaries []task.DailySummary) error
}

// Store is the single source of truth for tasks, categories and the daily
// summary ledger. It is constructed once at process start and injected
// into whatever needs it; there is no ambient global instance.
type Store struct {
	mu      sync.Mutex
	persist Persister
	logger  *log.Logger
	now     func() time.Time

	tasks      []task.Task
	categories []task.Category
	summaries  []task.DailySummary
}

type Option func(*Store)

// WithClock overrides the store's time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger overrides the store's logger.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) { s.logger = logger }
}

func New(p Persister, opts ...Option) *Store {
	s := &Store{
		persist:    p,
		logger:     log.Default(),
		now:        time.Now,
		categories: task.DefaultCategories(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Snapshot is the complete state at a point in time. Slices are copies;
// callers may not mutate the store through them.
type Snapshot struct {
	Tasks      []task.Task
	Categories []task.Category
	Summaries  []task.DailySummary
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{
		Tasks:      append([]task.Task(nil), s.tasks...),
		Categories: append([]task.Category(nil), s.categories...),
		Summaries:  append([]task.DailySummary(nil), s.summaries...),
	}
}

// Load replaces the whole snapshot from the persister. Called once at
// startup; the persisted shape is trusted as-is, there is no migration.
func (s *Store) Load(ctx context.Context) error {
	tasks, err := s.persist.LoadTasks(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	summaries, err := s.persist.LoadSummaries(ctx)
	if err != nil {
		return fmt.Errorf("load summaries: %w", err)
	}

	s.mu.Lock()
	s.tasks = tasks
	s.summaries = summaries
	s.mu.Unlock()

	s.logger.Debug("snapshot loaded", "tasks", len(tasks), "summaries", len(summaries))
	return nil
}

// Draft carries the caller-supplied fields for a new task. The store
// assigns id, createdAt and completedAt itself.
type Draft struct {
	Title        string
	Description  string
	Priority     task.Priority
	Category     string
	Tags         []string
	DueDate      *time.Time
	ReminderTime *time.Time
	Repeat       task.RepeatKind
	RepeatEnd    *time.Time
}

// Add appends a new task built from the draft. A draft only fails when it
// is structurally malformed (bad enum value); business rules such as a
// blank title are accepted and left to the presentation layer.
func (s *Store) Add(ctx context.Context, d Draft) (task.Task, error) {
	if !d.Priority.IsValid() {
		return task.Task{}, fmt.Errorf("invalid priority: %q", d.Priority)
	}
	if !d.Repeat.IsValid() {
		return task.Task{}, fmt.Errorf("invalid repeat kind: %q", d.Repeat)
	}

	t := task.Task{
		ID:           task.NewID(),
		Title:        d.Title,
		Description:  d.Description,
		Priority:     d.Priority,
		Category:     d.Category,
		Tags:         d.Tags,
		CreatedAt:    s.now(),
		DueDate:      d.DueDate,
		ReminderTime: d.ReminderTime,
		Repeat:       d.Repeat,
		RepeatEnd:    d.RepeatEnd,
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.tasks = append(s.tasks, t)
	s.logger.Debug("task added", "id", t.ID, "title", t.Title)
	return t, s.saveTasks(ctx)
}

// ToggleCompletion flips a task's completion flag, keeping completedAt in
// lockstep. Unknown ids are a silent no-op.
func (s *Store) ToggleCompletion(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.tasks {
		if s.tasks[i].ID != id {
			continue
		}
		if s.tasks[i].IsCompleted {
			s.tasks[i].IsCompleted = false
			s.tasks[i].CompletedAt = nil
		} else {
			now := s.now()
			s.tasks[i].IsCompleted = true
			s.tasks[i].CompletedAt = &now
		}
		changed = true
		break
	}
	if !changed {
		return nil
	}
	return s.saveTasks(ctx)
}

// Update replaces the task with a matching id wholesale. Unknown ids are
// a silent no-op.
func (s *Store) Update(ctx context.Context, t task.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			return s.saveTasks(ctx)
		}
	}
	return nil
}

// Delete removes the task with the given id, if present.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.DeleteMany(ctx, []string{id})
}

// DeleteMany removes all tasks whose ids match. Absent ids are ignored.
func (s *Store) DeleteMany(ctx context.Context, ids []string) error {
	set := idSet(ids)

	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if set[t.ID] {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	if removed == 0 {
		return nil
	}
	s.tasks = kept
	s.logger.Debug("tasks deleted", "count", removed)
	return s.saveTasks(ctx)
}

// Archive sets the archived flag (and timestamp) for the matching ids.
func (s *Store) Archive(ctx context.Context, ids []string) error {
	set := idSet(ids)

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.tasks {
		if !set[s.tasks[i].ID] {
			continue
		}
		now := s.now()
		s.tasks[i].IsArchived = true
		s.tasks[i].ArchivedAt = &now
		changed = true
	}
	if !changed {
		return nil
	}
	return s.saveTasks(ctx)
}

// Unarchive clears the archived flag (and timestamp) for the matching ids.
func (s *Store) Unarchive(ctx context.Context, ids []string) error {
	set := idSet(ids)

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.tasks {
		if !set[s.tasks[i].ID] {
			continue
		}
		s.tasks[i].IsArchived = false
		s.tasks[i].ArchivedAt = nil
		changed = true
	}
	if !changed {
		return nil
	}
	return s.saveTasks(ctx)
}

// MoveCategory reassigns the category field for the matching ids. The
// target category id is not validated; references are soft.
func (s *Store) MoveCategory(ctx context.Context, ids []string, categoryID string) error {
	set := idSet(ids)

	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for i := range s.tasks {
		if !set[s.tasks[i].ID] {
			continue
		}
		s.tasks[i].Category = categoryID
		changed = true
	}
	if !changed {
		return nil
	}
	return s.saveTasks(ctx)
}

// ImportMerge appends incoming tasks whose ids are not already present.
// Existing tasks always win; re-importing a previous export is therefore
// idempotent. Returns the number of tasks actually added.
func (s *Store) ImportMerge(ctx context.Context, incoming []task.Task) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := make(map[string]bool, len(s.tasks))
	for _, t := range s.tasks {
		existing[t.ID] = true
	}

	added := 0
	for _, t := range incoming {
		if existing[t.ID] {
			continue
		}
		existing[t.ID] = true
		s.tasks = append(s.tasks, t)
		added++
	}
	if added == 0 {
		return 0, nil
	}
	s.logger.Debug("tasks imported", "added", added, "skipped", len(incoming)-added)
	return added, s.saveTasks(ctx)
}

// GenerateDailySummary computes the summary for now's calendar day over
// all tasks created that day (archived included) and upserts it into the
// ledger. Generating twice for the same date overwrites, not duplicates.
func (s *Store) GenerateDailySummary(ctx context.Context, now time.Time) (task.DailySummary, error) {
	key := task.DayKey(now)

	s.mu.Lock()
	defer s.mu.Unlock()

	total, completed := 0, 0
	for _, t := range s.tasks {
		if task.DayKey(t.CreatedAt) != key {
			continue
		}
		total++
		if t.IsCompleted {
			completed++
		}
	}

	rate := 0.0
	if total > 0 {
		rate = float64(completed) / float64(total) * 100
	}
	summary := task.DailySummary{Date: key, Total: total, Completed: completed, CompletionRate: rate}

	kept := s.summaries[:0]
	for _, ds := range s.summaries {
		if ds.Date != key {
			kept = append(kept, ds)
		}
	}
	s.summaries = append(kept, summary)

	return summary, s.saveSummaries(ctx)
}

// Clear empties both collections. Used by the destructive reset path in
// settings; the cleared snapshot is persisted like any other transition.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = nil
	s.summaries = nil
	if err := s.saveTasks(ctx); err != nil {
		return err
	}
	return s.saveSummaries(ctx)
}

// saveTasks and saveSummaries run with the mutex held. The source this
// design derives from wrote unchecked; here failures are returned to the
// caller of the transition.
func (s *Store) saveTasks(ctx context.Context) error {
	if err := s.persist.SaveTasks(ctx, s.tasks); err != nil {
		s.logger.Error("persist tasks failed", "err", err)
		return fmt.Errorf("persist tasks: %w", err)
	}
	return nil
}

func (s *Store) saveSummaries(ctx context.Context) error {
	if err := s.persist.SaveSummaries(ctx, s.summaries); err != nil {
		s.logger.Error("persist summaries failed", "err", err)
		return fmt.Errorf("persist summaries: %w", err)
	}
	return nil
}

func idSet(ids []string) map[string]bool {
	set := make(map[string]bool, len(ids))
	for _, id := range ids {
		set[id] = true
	}
	return set
}
