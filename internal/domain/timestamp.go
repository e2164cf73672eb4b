package domain

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts lists the representations a created_at value may arrive in,
// most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",       // ISO without zone
	"2006-01-02 15:04:05.999999999-07:00", // Postgres text output
	"2006-01-02 15:04:05.999999999",       // SQLite CURRENT_TIMESTAMP
	"2006-01-02 15:04:05",
}

// ParseTimestamp parses a created_at string. Values without a zone are UTC.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("could not parse timestamp: %s", s)
}
