package record

import (
	"errors"
	"strings"
	"time"
)

// DateLayout is the canonical calendar date form used as a row key.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("invalid date")

var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// CanonicalDate reduces a plain date or a timestamp-bearing value to YYYY-MM-DD.
// Timestamps with an offset keep the calendar day of their own offset.
func CanonicalDate(raw string) (string, error) {
	return canonicalDate(raw, nil)
}

// CanonicalDateIn is CanonicalDate, but timestamps are first converted to loc.
// Spreadsheet cells serialise midnight local time as a UTC instant, so the remote
// store decodes dates in the configured timezone.
func CanonicalDateIn(raw string, loc *time.Location) (string, error) {
	return canonicalDate(raw, loc)
}

func canonicalDate(raw string, loc *time.Location) (string, error) {
	raw = strings.TrimSpace(raw)
	if len(raw) == len(DateLayout) {
		if _, err := time.Parse(DateLayout, raw); err == nil {
			return raw, nil
		}
		return "", ErrInvalidDate
	}
	for _, layout := range timestampLayouts {
		t, err := time.Parse(layout, raw)
		if err != nil {
			continue
		}
		if loc != nil {
			t = t.In(loc)
		}
		return t.Format(DateLayout), nil
	}
	return "", ErrInvalidDate
}

// DateKey returns the canonical form of raw, or raw itself when it cannot be parsed.
// Unparseable keys still compare equal to themselves.
func DateKey(raw string) string {
	if d, err := CanonicalDate(raw); err == nil {
		return d
	}
	return strings.TrimSpace(raw)
}

// FormatDate returns the calendar day of t in its own location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate parses a canonical date as midnight in loc.
func ParseDate(date string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return t, nil
}
