package query

import (
	"testing"
	"time"

	"macaron/internal/task"
)

func mk(title string, createdAt time.Time, completed bool) task.Task {
	t := task.Task{
		ID:        task.NewID(),
		Title:     title,
		Priority:  task.PriorityMedium,
		CreatedAt: createdAt,
	}
	if completed {
		done := createdAt.Add(time.Minute)
		t.IsCompleted = true
		t.CompletedAt = &done
	}
	return t
}

func titles(tasks []task.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

func TestParseStatus(t *testing.T) {
	if s, err := ParseStatus(""); err != nil || s != StatusAll {
		t.Fatalf("empty input: %v %v", s, err)
	}
	if s, err := ParseStatus("  Overdue "); err != nil || s != StatusOverdue {
		t.Fatalf("case/space tolerant parse: %v %v", s, err)
	}
	if _, err := ParseStatus("soon"); err == nil {
		t.Fatalf("expected error for unknown status")
	}
}

func TestFilterOverdueExcludesCompleted(t *testing.T) {
	now := time.Now()
	past := now.Add(-24 * time.Hour)

	late := mk("late", now.AddDate(0, 0, -2), false)
	late.DueDate = &past
	lateButDone := mk("late-done", now.AddDate(0, 0, -2), true)
	lateButDone.DueDate = &past
	notDue := mk("no-due", now.AddDate(0, 0, -2), false)

	got := Filter([]task.Task{late, lateButDone, notDue}, Criteria{Status: StatusOverdue}, now)
	if len(got) != 1 || got[0].Title != "late" {
		t.Fatalf("got %v, want [late]", titles(got))
	}
}

func TestFilterSortsIncompleteFirstStably(t *testing.T) {
	now := time.Now()
	tasks := []task.Task{
		mk("done-a", now, true),
		mk("open-a", now, false),
		mk("done-b", now, true),
		mk("open-b", now, false),
	}

	got := titles(Filter(tasks, Criteria{}, now))
	want := []string{"open-a", "open-b", "done-a", "done-b"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order = %v, want %v", got, want)
		}
	}
}

func TestFilterCreatedAtBoundsAreInclusive(t *testing.T) {
	now := time.Now()
	from := now.AddDate(0, 0, -5)
	to := now.AddDate(0, 0, -3)

	onLower := mk("lower", from, false)
	inside := mk("inside", now.AddDate(0, 0, -4), false)
	onUpper := mk("upper", to, false)
	outside := mk("outside", now, false)

	got := Filter([]task.Task{onLower, inside, onUpper, outside}, Criteria{CreatedFrom: &from, CreatedTo: &to}, now)
	if len(got) != 3 {
		t.Fatalf("got %v", titles(got))
	}
}

func TestFilterTextMatchesTitleAndDescriptionOnly(t *testing.T) {
	now := time.Now()
	byTitle := mk("Buy Groceries", now, false)
	byDesc := mk("other", now, false)
	byDesc.Description = "groceries for the week"
	byTag := mk("unrelated", now, false)
	byTag.Tags = []string{"groceries"}

	got := Filter([]task.Task{byTitle, byDesc, byTag}, Criteria{Search: "GROCERIES"}, now)
	if len(got) != 2 {
		t.Fatalf("got %v, want title+description matches only", titles(got))
	}
}

func TestFilterRollingWindows(t *testing.T) {
	now := time.Now()
	today := mk("today", now.Add(-time.Hour), false)
	sixDays := mk("six", now.AddDate(0, 0, -6), false)
	twentyDays := mk("twenty", now.AddDate(0, 0, -20), false)
	tasks := []task.Task{today, sixDays, twentyDays}

	if got := Filter(tasks, Criteria{Status: StatusWeek}, now); len(got) != 2 {
		t.Fatalf("week window: %v", titles(got))
	}
	if got := Filter(tasks, Criteria{Status: StatusMonth}, now); len(got) != 3 {
		t.Fatalf("month window: %v", titles(got))
	}
	if got := Filter(tasks, Criteria{Status: StatusToday}, now); len(got) != 1 {
		t.Fatalf("today window: %v", titles(got))
	}
}

func TestSearchEmptyQueryMatchesNothing(t *testing.T) {
	now := time.Now()
	tasks := []task.Task{mk("anything", now, false)}

	if got := Search(tasks, nil, "   "); got != nil {
		t.Fatalf("whitespace query returned %v, want nothing", titles(got))
	}
}

func TestSearchCoversTagsAndCategoryNameAndSkipsArchived(t *testing.T) {
	now := time.Now()
	categories := task.DefaultCategories()

	byTag := mk("a", now, false)
	byTag.Tags = []string{"errand", "Shopping"}
	byCategory := mk("b", now, false)
	byCategory.Category = "work"
	archived := mk("shopping list", now, false)
	archived.IsArchived = true
	tasks := []task.Task{byTag, byCategory, archived}

	if got := Search(tasks, categories, "shopping"); len(got) != 1 || got[0].Title != "a" {
		t.Fatalf("tag search: %v", titles(got))
	}
	// Category display name match ("工作" is the work category).
	if got := Search(tasks, categories, "工作"); len(got) != 1 || got[0].Title != "b" {
		t.Fatalf("category name search: %v", titles(got))
	}
}
