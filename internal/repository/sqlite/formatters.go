package sqlite

import (
	"fmt"
	"time"
)

// DBTimeLayout is what the todos.created_at default writes:
// strftime('%Y-%m-%dT%H:%M:%fZ', 'now'), UTC with millisecond precision.
const DBTimeLayout = "2006-01-02T15:04:05.000Z"

// ParseTimeFromDB parses a created_at column value. Besides the column's own
// layout it accepts RFC 3339 and CURRENT_TIMESTAMP text for rows written by
// hand.
func ParseTimeFromDB(s string) (time.Time, error) {
	for _, layout := range []string{DBTimeLayout, time.RFC3339Nano, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}
