// Package csvio implements the lossy tabular export format and its
// best-effort re-import. The format is comma-delimited with doubled
// double quotes; tags, archive state, repeat settings and the stable id
// do not round-trip.
//
// The splitter is hand-rolled rather than encoding/csv because the format
// is tolerant by contract: a stray quote toggles quoting instead of
// erroring, and short rows are skipped instead of failing the file.
package csvio

import (
	"strings"
	"time"

	"macaron/internal/task"
)

const (
	statusDone    = "已完成"
	statusPending = "未完成"

	dateLayout     = "2006/1/2"
	datetimeLayout = "2006/1/2 15:04:05"
)

var header = []string{"标题", "描述", "完成状态", "优先级", "分类", "截止日期", "提醒时间", "创建时间", "完成时间"}

// Export renders all tasks (archived included) as a header row plus one
// row per task. Title and description are quoted with internal quotes
// doubled.
func Export(tasks []task.Task, categories []task.Category) string {
	var b strings.Builder
	b.WriteString(strings.Join(header, ","))

	for _, t := range tasks {
		status := statusPending
		if t.IsCompleted {
			status = statusDone
		}
		fields := []string{
			quote(t.Title),
			quote(t.Description),
			status,
			string(t.Priority),
			task.CategoryName(categories, t.Category),
			formatDate(t.DueDate),
			formatDatetime(t.ReminderTime),
			t.CreatedAt.Format(datetimeLayout),
			formatDatetime(t.CompletedAt),
		}
		b.WriteString("\n")
		b.WriteString(strings.Join(fields, ","))
	}
	return b.String()
}

// ExportFilename names the export artifact with the current date. Unlike
// the row fields this uses a dashed layout; slashes cannot appear in a
// file name.
func ExportFilename(now time.Time) string {
	return "待办事项_" + now.Format("2006-01-02") + ".csv"
}

// Import parses exported text back into tasks. The header line and blank
// lines are skipped; rows with fewer than four fields are silently
// dropped. Every imported task gets a fresh id, so imports are never
// updates; the priority field is carried over verbatim without
// validation, and all lossy fields reset to their defaults.
func Import(text string, now time.Time) []task.Task {
	lines := strings.Split(text, "\n")

	var out []task.Task
	for i := 1; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if line == "" {
			continue
		}
		fields := splitLine(line)
		if len(fields) < 4 {
			continue
		}

		t := task.Task{
			ID:          task.NewID(),
			Title:       fields[0],
			Description: fields[1],
			IsCompleted: fields[2] == statusDone,
			Priority:    task.Priority(fields[3]),
			Category:    fieldOr(fields, 4, "default"),
			Repeat:      task.RepeatNone,
			CreatedAt:   now,
		}
		if v := fieldOr(fields, 5, ""); v != "" {
			t.DueDate = parseTime(v)
		}
		if v := fieldOr(fields, 7, ""); v != "" {
			if ts := parseTime(v); ts != nil {
				t.CreatedAt = *ts
			}
		}
		if v := fieldOr(fields, 8, ""); v != "" {
			t.CompletedAt = parseTime(v)
		}
		out = append(out, t)
	}
	return out
}

// splitLine splits on commas outside quotes. A quote character toggles
// the in-quotes flag and is dropped from the field text.
func splitLine(line string) []string {
	var fields []string
	var field strings.Builder
	inQuotes := false

	for _, ch := range line {
		switch {
		case ch == '"':
			inQuotes = !inQuotes
		case ch == ',' && !inQuotes:
			fields = append(fields, strings.TrimSpace(field.String()))
			field.Reset()
		default:
			field.WriteRune(ch)
		}
	}
	fields = append(fields, strings.TrimSpace(field.String()))
	return fields
}

func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func fieldOr(fields []string, i int, fallback string) string {
	if i < len(fields) && fields[i] != "" {
		return fields[i]
	}
	return fallback
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(dateLayout)
}

func formatDatetime(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(datetimeLayout)
}

func parseTime(s string) *time.Time {
	for _, layout := range []string{datetimeLayout, dateLayout, "2006-01-02 15:04:05", "2006-01-02", time.RFC3339} {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &ts
		}
	}
	return nil
}
