package model

import (
	"errors"
	"strings"
	"time"
)

var ErrInvalidDate = errors.New("date must be RFC 3339, YYYY-MM-DDTHH:MM:SS or YYYY-MM-DD")

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseDate parses s with the accepted layouts. Values without a zone are taken as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}

	return time.Time{}, ErrInvalidDate
}
