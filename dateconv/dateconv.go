// Package dateconv parses dates in a handful of common notations and renders
// them in every supported format, always in UTC.
package dateconv

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrTimestampRange is returned for Unix timestamps outside the 32 bit range.
	ErrTimestampRange = errors.New("Timestamp out of supported range")
	// ErrYearRange is returned for dates outside years 1 to 9999.
	ErrYearRange = errors.New("Year out of supported range (1-9999)")
	// ErrUnrecognized is returned when no layout matches the input.
	ErrUnrecognized = errors.New("Unrecognized date-time format")
)

// layouts are tried in order after the input fails to parse as a timestamp.
var layouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05-07:00",
	"02/01/2006 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

const (
	iso8601Layout  = "2006-01-02T15:04:05-07:00"
	rfc2822Layout  = time.RFC1123Z
	humanLayout    = "Monday, January 02, 2006, 03:04:05 PM"
	shortLayout    = "02/01/2006"
	timeOnlyLayout = "15:04:05"
)

// Result holds every rendering of a parsed date.
type Result struct {
	RFC3339       string
	RFC2822       string
	ISO8601       string
	UnixTimestamp string
	HumanReadable string
	ShortDate     string
	TimeOnly      string
}

// Convert parses input and renders it in every supported format.
func Convert(input string) (Result, error) {
	t, err := Parse(input)
	if err != nil {
		return Result{}, err
	}
	return Format(t), nil
}

// Parse reads input as a Unix timestamp or one of the supported layouts.
func Parse(input string) (time.Time, error) {
	input = strings.TrimSpace(input)
	if ts, err := strconv.ParseInt(input, 10, 64); err == nil {
		if ts < math.MinInt32 || ts > math.MaxInt32 {
			return time.Time{}, ErrTimestampRange
		}
		return time.Unix(ts, 0).UTC(), nil
	}
	for _, layout := range layouts {
		t, err := time.Parse(layout, input)
		if err != nil {
			continue
		}
		if y := t.Year(); y < 1 || y > 9999 {
			return time.Time{}, ErrYearRange
		}
		return t.UTC(), nil
	}
	return time.Time{}, ErrUnrecognized
}

// Format renders t in every supported format.
func Format(t time.Time) Result {
	t = t.UTC()
	return Result{
		RFC3339:       t.Format(time.RFC3339),
		RFC2822:       t.Format(rfc2822Layout),
		ISO8601:       t.Format(iso8601Layout),
		UnixTimestamp: strconv.FormatInt(t.Unix(), 10),
		HumanReadable: t.Format(humanLayout),
		ShortDate:     t.Format(shortLayout),
		TimeOnly:      t.Format(timeOnlyLayout),
	}
}
