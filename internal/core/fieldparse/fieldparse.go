// Package fieldparse contains the pure parsing logic for raw feed field
// values. This is part of the Functional Core - no I/O, only pure functions.
package fieldparse

import (
	"regexp"
	"strings"
	"time"
)

// actorPattern matches "Display Name (identifier)" composites. The final
// parenthetical is the identifier; everything before it is the name.
var actorPattern = regexp.MustCompile(`^(.+?)\s*\(([^)]+)\)$`)

// datetimeLayouts are the timestamp forms seen in the feeds, tried in order.
var datetimeLayouts = []string{
	"01-02-2006 15:04:05",
	"2006-01-02 15:04:05",
}

// TimestampLayout is the ISO-8601 form timestamps are persisted in.
const TimestampLayout = "2006-01-02T15:04:05"

// Actor splits a combined "Name (id)" field into its identifier and display
// name. A value without a parenthesized identifier comes back with an empty
// id and the whole trimmed value as the name. Empty or whitespace-only input
// yields two empty strings. The identifier is returned verbatim; the name is
// trimmed.
func Actor(value string) (id, name string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ""
	}
	m := actorPattern.FindStringSubmatch(trimmed)
	if m == nil {
		return "", trimmed
	}
	return m[2], strings.TrimSpace(m[1])
}

// DateTime parses a feed timestamp in either MM-DD-YYYY or YYYY-MM-DD form.
// The second return is false when the value is empty or matches neither
// layout. Times are naive - no zone information is attached or assumed.
func DateTime(value string) (time.Time, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return time.Time{}, false
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DateKey derives the YYYYMMDD surrogate key for t's calendar date.
func DateKey(t time.Time) int {
	return t.Year()*10000 + int(t.Month())*100 + t.Day()
}

// Timestamp renders t in the persisted ISO-8601 form (seconds precision).
func Timestamp(t time.Time) string {
	return t.Format(TimestampLayout)
}
