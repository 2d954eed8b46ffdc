package stats

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macaron/internal/task"
)

func mkTask(createdAt time.Time, completed bool) task.Task {
	t := task.Task{
		ID:        task.NewID(),
		Title:     "t",
		Priority:  task.PriorityMedium,
		CreatedAt: createdAt,
	}
	if completed {
		done := createdAt.Add(time.Hour)
		t.IsCompleted = true
		t.CompletedAt = &done
	}
	return t
}

func TestComputeEmptyCollection(t *testing.T) {
	s := Compute(nil, time.Now())
	assert.Zero(t, s.Total)
	assert.Zero(t, s.CompletionRate, "empty collection must not divide by zero")
}

func TestComputeAllCompleted(t *testing.T) {
	now := time.Now()
	tasks := []task.Task{mkTask(now, true), mkTask(now, true)}

	s := Compute(tasks, now)
	assert.Equal(t, 2, s.Total)
	assert.Equal(t, 2, s.Completed)
	assert.Zero(t, s.Pending)
	assert.Equal(t, float64(100), s.CompletionRate)
	assert.Equal(t, 2, s.TodayTotal)
	assert.Equal(t, 2, s.TodayCompleted)
}

func TestComputeOverdueExcludesCompleted(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)

	overdue := mkTask(now.AddDate(0, 0, -3), false)
	overdue.DueDate = &past
	doneLate := mkTask(now.AddDate(0, 0, -3), true)
	doneLate.DueDate = &past

	s := Compute([]task.Task{overdue, doneLate}, now)
	assert.Equal(t, 1, s.Overdue, "completed tasks are never overdue")
}

func TestDayBucket(t *testing.T) {
	now := time.Now()
	yesterday := now.AddDate(0, 0, -1)
	tasks := []task.Task{mkTask(now, false), mkTask(yesterday, false), mkTask(yesterday, true)}

	got := DayBucket(tasks, task.DayKey(yesterday))
	assert.Len(t, got, 2)
}

func TestRollingHistoryShape(t *testing.T) {
	now := time.Now()
	tasks := []task.Task{mkTask(now, true), mkTask(now.AddDate(0, 0, -2), false)}

	history := RollingHistory(tasks, now, 7)
	require.Len(t, history, 7)
	assert.Equal(t, task.DayKey(now.AddDate(0, 0, -6)), history[0].Date, "oldest first")
	assert.Equal(t, task.DayKey(now), history[6].Date, "ends on now's day")

	last := history[6]
	assert.Equal(t, 1, last.Total)
	assert.Equal(t, float64(100), last.CompletionRate)

	twoBack := history[4]
	assert.Equal(t, 1, twoBack.Total)
	assert.Zero(t, twoBack.CompletionRate)
}

func TestCategoryBreakdownGroupsDanglingUnderLiteralID(t *testing.T) {
	now := time.Now()
	categories := task.DefaultCategories()

	known := mkTask(now, true)
	known.Category = "work"
	dangling := mkTask(now, false)
	dangling.Category = "nonexistent-cat"
	archived := mkTask(now, false)
	archived.Category = "work"
	archived.IsArchived = true

	got := CategoryBreakdown([]task.Task{known, dangling, archived}, categories)
	require.Len(t, got, 2)

	assert.Equal(t, "work", got[0].ID)
	assert.Equal(t, "工作", got[0].Name)
	assert.Equal(t, 1, got[0].Total, "archived tasks are excluded")
	assert.Equal(t, float64(100), got[0].CompletionRate)

	assert.Equal(t, "nonexistent-cat", got[1].ID)
	assert.Equal(t, "nonexistent-cat", got[1].Name, "dangling ids keep the literal string")
}

func TestCompletionStreakDayZeroExemption(t *testing.T) {
	now := time.Now()
	// Three tasks today, one completed: ratio 1/3 < 0.5.
	tasks := []task.Task{mkTask(now, true), mkTask(now, false), mkTask(now, false)}

	got := CompletionStreak(tasks, now, 30)
	assert.Equal(t, 1, got, "an in-progress today still counts")
}

func TestCompletionStreakSkipsEmptyDaysAndBreaksOnFailure(t *testing.T) {
	now := time.Now()
	var tasks []task.Task

	// Today and yesterday fully completed; day -2 empty; day -3
	// completed; day -4 fails the ratio and ends the streak even though
	// day -5 would qualify.
	tasks = append(tasks, mkTask(now, true))
	tasks = append(tasks, mkTask(now.AddDate(0, 0, -1), true))
	tasks = append(tasks, mkTask(now.AddDate(0, 0, -3), true))
	tasks = append(tasks, mkTask(now.AddDate(0, 0, -4), false))
	tasks = append(tasks, mkTask(now.AddDate(0, 0, -4), false))
	tasks = append(tasks, mkTask(now.AddDate(0, 0, -5), true))

	got := CompletionStreak(tasks, now, 30)
	assert.Equal(t, 3, got)
}

func TestCompletionStreakHalfRatioCounts(t *testing.T) {
	now := time.Now()
	// Exactly half completed counts toward the streak.
	tasks := []task.Task{
		mkTask(now.AddDate(0, 0, -1), true),
		mkTask(now.AddDate(0, 0, -1), false),
	}

	got := CompletionStreak(tasks, now, 30)
	assert.Equal(t, 1, got)
}
