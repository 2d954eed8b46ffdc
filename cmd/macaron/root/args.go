package root

import (
	"fmt"
	"strings"
	"time"

	"macaron/internal/task"
)

// parseWhen accepts a date or datetime flag value.
func parseWhen(input string) (*time.Time, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, nil
	}
	for _, layout := range []string{"2006-01-02 15:04", "2006-01-02"} {
		if ts, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return &ts, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q (want YYYY-MM-DD or YYYY-MM-DD HH:MM)", input)
}

// resolveIDs maps user-supplied id prefixes to full task ids. A prefix
// matching several tasks is an error; one matching nothing is passed
// through untouched, so stale ids stay the silent no-op the store
// promises.
func resolveIDs(tasks []task.Task, args []string) ([]string, error) {
	out := make([]string, 0, len(args))
	for _, arg := range args {
		var matches []string
		for _, t := range tasks {
			if strings.HasPrefix(t.ID, arg) {
				matches = append(matches, t.ID)
			}
		}
		switch len(matches) {
		case 0:
			out = append(out, arg)
		case 1:
			out = append(out, matches[0])
		default:
			return nil, fmt.Errorf("id prefix %q is ambiguous (%d matches)", arg, len(matches))
		}
	}
	return out, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
