// Package query computes filtered and searched views over a task
// snapshot. Everything here is a pure function: inputs are never mutated
// and a fresh slice is returned.
package query

import (
	"fmt"
	"strings"
	"time"

	"macaron/internal/task"
)

// Status is the status predicate of a filter.
type Status string

const (
	StatusAll       Status = "all"
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusOverdue   Status = "overdue"
	StatusToday     Status = "today"
	StatusWeek      Status = "week"
	StatusMonth     Status = "month"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusAll, StatusPending, StatusCompleted, StatusOverdue, StatusToday, StatusWeek, StatusMonth:
		return true
	default:
		return false
	}
}

// ParseStatus parses user input to a Status. Empty input means all.
func ParseStatus(input string) (Status, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return StatusAll, nil
	}
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("invalid status filter: %q", input)
	}
	return st, nil
}

// Criteria is AND-composed; zero values mean "no constraint". The text
// match covers title and description only; tags and category names are
// the Search operation's concern. Date bounds apply to createdAt.
type Criteria struct {
	Search      string
	CreatedFrom *time.Time
	CreatedTo   *time.Time
	Status      Status
}

// Filter returns the tasks matching the criteria, incomplete before
// completed, original relative order preserved within each group.
// today/week/month are rolling windows off now, not calendar-aligned.
func Filter(tasks []task.Task, c Criteria, now time.Time) []task.Task {
	status := c.Status
	if status == "" {
		status = StatusAll
	}
	q := strings.ToLower(strings.TrimSpace(c.Search))

	var out []task.Task
	for _, t := range tasks {
		if q != "" &&
			!strings.Contains(strings.ToLower(t.Title), q) &&
			!strings.Contains(strings.ToLower(t.Description), q) {
			continue
		}
		if c.CreatedFrom != nil && t.CreatedAt.Before(*c.CreatedFrom) {
			continue
		}
		if c.CreatedTo != nil && t.CreatedAt.After(*c.CreatedTo) {
			continue
		}
		if !matchStatus(t, status, now) {
			continue
		}
		out = append(out, t)
	}
	return sortIncompleteFirst(out)
}

func matchStatus(t task.Task, s Status, now time.Time) bool {
	switch s {
	case StatusPending:
		return !t.IsCompleted
	case StatusCompleted:
		return t.IsCompleted
	case StatusOverdue:
		return !t.IsCompleted && t.DueDate != nil && t.DueDate.Before(now)
	case StatusToday:
		startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return !t.CreatedAt.Before(startOfDay)
	case StatusWeek:
		return !t.CreatedAt.Before(now.AddDate(0, 0, -7))
	case StatusMonth:
		return !t.CreatedAt.Before(now.AddDate(0, 0, -30))
	default:
		return true
	}
}

// Search scans title, description, tags and the resolved category display
// name, case-insensitively, skipping archived tasks. An empty or
// whitespace query matches nothing, not everything.
func Search(tasks []task.Task, categories []task.Category, query string) []task.Task {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var out []task.Task
	for _, t := range tasks {
		if t.IsArchived {
			continue
		}
		if matchesText(t, categories, q) {
			out = append(out, t)
		}
	}
	return out
}

func matchesText(t task.Task, categories []task.Category, q string) bool {
	if strings.Contains(strings.ToLower(t.Title), q) ||
		strings.Contains(strings.ToLower(t.Description), q) {
		return true
	}
	for _, tag := range t.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	for _, c := range categories {
		if c.ID == t.Category {
			return strings.Contains(strings.ToLower(c.Name), q)
		}
	}
	return false
}

// sortIncompleteFirst is a stable two-pass partition, not a comparison
// sort, so relative order inside each group is untouched.
func sortIncompleteFirst(tasks []task.Task) []task.Task {
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if !t.IsCompleted {
			out = append(out, t)
		}
	}
	for _, t := range tasks {
		if t.IsCompleted {
			out = append(out, t)
		}
	}
	return out
}
