// Package stats derives counters, day-bucketed rollups and streaks from a
// task snapshot. All computation is on-demand over the snapshot passed
// in; nothing here caches or reads the persisted summary ledger.
package stats

import (
	"time"

	"macaron/internal/task"
)

// Snapshot is a single point-in-time summary of the whole collection.
type Snapshot struct {
	Total          int
	Completed      int
	Pending        int
	TodayTotal     int
	TodayCompleted int
	Overdue        int
	CompletionRate float64
}

// Compute builds the point-in-time summary. "Today" is now's local
// calendar day matched against createdAt; overdue means pending with a
// due date in the past.
func Compute(tasks []task.Task, now time.Time) Snapshot {
	todayKey := task.DayKey(now)

	var s Snapshot
	s.Total = len(tasks)
	for _, t := range tasks {
		if t.IsCompleted {
			s.Completed++
		}
		if task.DayKey(t.CreatedAt) == todayKey {
			s.TodayTotal++
			if t.IsCompleted {
				s.TodayCompleted++
			}
		}
		if !t.IsCompleted && t.DueDate != nil && t.DueDate.Before(now) {
			s.Overdue++
		}
	}
	s.Pending = s.Total - s.Completed
	if s.Total > 0 {
		s.CompletionRate = float64(s.Completed) / float64(s.Total) * 100
	}
	return s
}

// DayBucket returns the tasks created on the given local calendar day.
func DayBucket(tasks []task.Task, dateKey string) []task.Task {
	var out []task.Task
	for _, t := range tasks {
		if task.DayKey(t.CreatedAt) == dateKey {
			out = append(out, t)
		}
	}
	return out
}

// RollingHistory recomputes per-day summaries for the trailing window
// ending on now's day, oldest first. This is a live view of the current
// task set; it is independent of the persisted ledger and the two may
// disagree once tasks have been deleted.
func RollingHistory(tasks []task.Task, now time.Time, windowDays int) []task.DailySummary {
	out := make([]task.DailySummary, 0, windowDays)
	for i := windowDays - 1; i >= 0; i-- {
		key := task.DayKey(now.AddDate(0, 0, -i))
		total, completed := 0, 0
		for _, t := range tasks {
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
		out = append(out, task.DailySummary{Date: key, Total: total, Completed: completed, CompletionRate: rate})
	}
	return out
}

// CategoryStat is one group of the per-category breakdown.
type CategoryStat struct {
	ID             string
	Name           string
	Total          int
	Completed      int
	CompletionRate float64
}

// CategoryBreakdown groups non-archived tasks by category id. A task
// whose category id resolves to nothing is grouped under the literal id
// string; the "other" fallback is a display concern only. Groups come
// back in first-seen order.
func CategoryBreakdown(tasks []task.Task, categories []task.Category) []CategoryStat {
	byID := map[string]*CategoryStat{}
	var order []string

	for _, t := range tasks {
		if t.IsArchived {
			continue
		}
		cs, ok := byID[t.Category]
		if !ok {
			cs = &CategoryStat{ID: t.Category, Name: task.CategoryName(categories, t.Category)}
			byID[t.Category] = cs
			order = append(order, t.Category)
		}
		cs.Total++
		if t.IsCompleted {
			cs.Completed++
		}
	}

	out := make([]CategoryStat, 0, len(order))
	for _, id := range order {
		cs := byID[id]
		if cs.Total > 0 {
			cs.CompletionRate = float64(cs.Completed) / float64(cs.Total) * 100
		}
		out = append(out, *cs)
	}
	return out
}

// CompletionStreak walks backward from now's day. A day counts when it
// had at least one task and at least half of them completed; empty days
// are skipped without breaking the streak. The first failing day ends
// the scan, except day zero: an in-progress today never zeroes out an
// existing streak.
func CompletionStreak(tasks []task.Task, now time.Time, maxLookbackDays int) int {
	streak := 0
	for i := 0; i < maxLookbackDays; i++ {
		key := task.DayKey(now.AddDate(0, 0, -i))
		total, completed := 0, 0
		for _, t := range tasks {
			if task.DayKey(t.CreatedAt) != key {
				continue
			}
			total++
			if t.IsCompleted {
				completed++
			}
		}
		if total == 0 {
			continue
		}
		if float64(completed) >= float64(total)/2 {
			streak++
		} else if i == 0 {
			// An in-progress today still counts and never ends the scan.
			streak++
		} else {
			break
		}
	}
	return streak
}
