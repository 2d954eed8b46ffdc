package task

import (
	"fmt"
	"strings"
)

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// DefaultPriority is used when user input is missing.
const DefaultPriority Priority = PriorityMedium

// ParsePriority parses user input to a Priority. Empty input returns
// DefaultPriority; anything else unrecognized is an error. Note the CSV
// import path does not go through here on purpose (raw field preserved).
func ParsePriority(input string) (Priority, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return DefaultPriority, nil
	}
	p := Priority(s)
	if !p.IsValid() {
		return "", fmt.Errorf("invalid priority: %q", input)
	}
	return p, nil
}

type RepeatKind string

const (
	RepeatNone    RepeatKind = "none"
	RepeatDaily   RepeatKind = "daily"
	RepeatWeekly  RepeatKind = "weekly"
	RepeatMonthly RepeatKind = "monthly"
)

func (r RepeatKind) IsValid() bool {
	switch r {
	case RepeatNone, RepeatDaily, RepeatWeekly, RepeatMonthly:
		return true
	default:
		return false
	}
}

// ParseRepeatKind parses user input to a RepeatKind. Empty input means no
// repetition. Repeat kinds are informational; they do not spawn recurring
// task instances.
func ParseRepeatKind(input string) (RepeatKind, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	if s == "" {
		return RepeatNone, nil
	}
	r := RepeatKind(s)
	if !r.IsValid() {
		return "", fmt.Errorf("invalid repeat kind: %q", input)
	}
	return r, nil
}
