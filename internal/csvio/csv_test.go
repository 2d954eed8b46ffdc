package csvio

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"macaron/internal/task"
)

func TestExportImportRoundTrip(t *testing.T) {
	created := time.Date(2024, 1, 1, 9, 30, 0, 0, time.Local)
	original := task.Task{
		ID:        task.NewID(),
		Title:     "A",
		Priority:  task.PriorityHigh,
		Category:  "work",
		CreatedAt: created,
		Repeat:    task.RepeatNone,
	}

	out := Export([]task.Task{original}, task.DefaultCategories())
	got := Import(out, time.Now())
	require.Len(t, got, 1)

	assert.Equal(t, "A", got[0].Title)
	assert.Equal(t, task.PriorityHigh, got[0].Priority)
	assert.False(t, got[0].IsCompleted)
	assert.Equal(t, created, got[0].CreatedAt)
	assert.NotEqual(t, original.ID, got[0].ID, "imports always mint a fresh id")
}

func TestExportQuotesAndDoublesInternalQuotes(t *testing.T) {
	in := task.Task{
		ID:          task.NewID(),
		Title:       `Say "hi", then leave`,
		Description: "line with, commas",
		Priority:    task.PriorityLow,
		CreatedAt:   time.Now(),
	}

	out := Export([]task.Task{in}, nil)
	lines := strings.Split(out, "\n")
	require.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[1], `"Say ""hi"", then leave","line with, commas",未完成,low`), "row = %s", lines[1])

	// The tolerant importer keeps comma content intact; the doubled
	// quotes themselves are consumed by the quote-toggle splitter.
	got := Import(out, time.Now())
	require.Len(t, got, 1)
	assert.Equal(t, "Say hi, then leave", got[0].Title)
	assert.Equal(t, "line with, commas", got[0].Description)
}

func TestExportIsLossy(t *testing.T) {
	archivedAt := time.Now()
	in := task.Task{
		ID:         task.NewID(),
		Title:      "archived one",
		Priority:   task.PriorityMedium,
		Tags:       []string{"keep", "out"},
		CreatedAt:  time.Now(),
		IsArchived: true,
		ArchivedAt: &archivedAt,
		Repeat:     task.RepeatWeekly,
	}

	got := Import(Export([]task.Task{in}, nil), time.Now())
	require.Len(t, got, 1, "archived tasks are exported too")
	assert.Empty(t, got[0].Tags)
	assert.False(t, got[0].IsArchived)
	assert.Nil(t, got[0].ArchivedAt)
	assert.Equal(t, task.RepeatNone, got[0].Repeat)
}

func TestImportSkipsHeaderBlankAndShortRows(t *testing.T) {
	text := strings.Join([]string{
		"标题,描述,完成状态,优先级,分类,截止日期,提醒时间,创建时间,完成时间",
		"",
		"only,three,fields",
		`"Real",desc,已完成,high,work,,,2024/1/2 08:00:00,2024/1/2 09:00:00`,
		"   ",
	}, "\n")

	got := Import(text, time.Now())
	require.Len(t, got, 1)
	assert.Equal(t, "Real", got[0].Title)
	assert.True(t, got[0].IsCompleted)
	require.NotNil(t, got[0].CompletedAt)
}

func TestImportPreservesRawPriority(t *testing.T) {
	// The raw field is carried into the enum-typed field unvalidated;
	// see the design notes for why this stays permissive.
	text := "header\nweird,desc,未完成,URGENT!!"

	got := Import(text, time.Now())
	require.Len(t, got, 1)
	assert.Equal(t, task.Priority("URGENT!!"), got[0].Priority)
	assert.False(t, got[0].Priority.IsValid())
}

func TestImportDefaultsMissingFields(t *testing.T) {
	now := time.Now()
	text := "header\nbare,desc,未完成,low"

	got := Import(text, now)
	require.Len(t, got, 1)
	assert.Equal(t, "default", got[0].Category)
	assert.Nil(t, got[0].DueDate)
	assert.Nil(t, got[0].CompletedAt)
	assert.Equal(t, now, got[0].CreatedAt, "missing created field falls back to now")
}

func TestExportFilename(t *testing.T) {
	now := time.Date(2024, 3, 7, 12, 0, 0, 0, time.Local)
	assert.Equal(t, "待办事项_2024-03-07.csv", ExportFilename(now))
}
