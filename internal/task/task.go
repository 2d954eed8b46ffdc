// Package task defines the entities the rest of the application operates
// on: tasks, categories and the daily summary ledger records. Entities are
// plain values; updates replace a task wholesale rather than mutating it.
package task

import (
	"time"

	"github.com/google/uuid"
)

// Task is a single actionable item. The JSON tags are the persisted shape;
// optional timestamps are nil when unset.
type Task struct {
	ID           string     `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	IsCompleted  bool       `json:"isCompleted"`
	Priority     Priority   `json:"priority"`
	Category     string     `json:"category"`
	Tags         []string   `json:"tags"`
	CreatedAt    time.Time  `json:"createdAt"`
	DueDate      *time.Time `json:"dueDate"`
	ReminderTime *time.Time `json:"reminderTime"`
	CompletedAt  *time.Time `json:"completedAt"`
	IsArchived   bool       `json:"isArchived"`
	ArchivedAt   *time.Time `json:"archivedAt"`
	Repeat       RepeatKind `json:"repeatType"`
	RepeatEnd    *time.Time `json:"repeatEndDate"`
}

// DailySummary is a persisted, date-keyed record of one day's totals.
// It is written by an explicit generate intent and survives later task
// deletions, unlike the live rolling history.
type DailySummary struct {
	Date           string  `json:"date"`
	Total          int     `json:"total"`
	Completed      int     `json:"completed"`
	CompletionRate float64 `json:"completionRate"`
}

// NewID returns a fresh opaque task identifier. Collisions are treated as
// negligible, not defended against.
func NewID() string {
	return uuid.NewString()
}

// DayKey returns the local calendar-day key for t, e.g. "2024-01-31".
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}
