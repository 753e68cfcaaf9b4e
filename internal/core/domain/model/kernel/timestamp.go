package kernel

import (
	"errors"
	"strings"
	"time"

	"pharmadmin/internal/pkg/errs"
)

// timestampLayouts lists the formats seen in backend payloads, most specific first.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// ParseTimestamp parses a backend timestamp. Values without a zone are read as UTC.
// An empty string yields the zero time and no error.
func ParseTimestamp(paramName, s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errs.NewValueIsInvalidErrorWithCause(paramName,
		errors.New("unrecognised timestamp "+s))
}
