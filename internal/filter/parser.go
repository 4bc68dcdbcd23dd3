package filter

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	monthLayout = "2006-01"
)

var (
	dayPattern   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

// ParseDateRange parses a date range string into start and end times.
//
// Supported formats:
//   - "2025-09-01..2025-09-30" - Inclusive range
//   - "2025-09-01.." or "..2025-09-30" - Open-ended range
//   - "2025-09" or "2025-09..2025-10" - Entire months
//   - "2025-09-13" - A single day
//
// Returns (dateFrom, dateTo, error); an open end is nil. Times are in UTC.
// Start time is at 00:00:00, end time is at 23:59:59.
func ParseDateRange(input string) (*time.Time, *time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return nil, nil, fmt.Errorf("date range cannot be empty")
	}

	fromText, toText, isRange := strings.Cut(input, "..")
	if !isRange {
		toText = fromText
	}
	fromText, toText = strings.TrimSpace(fromText), strings.TrimSpace(toText)
	if fromText == "" && toText == "" {
		return nil, nil, fmt.Errorf("date range needs at least one date")
	}

	var from, to *time.Time
	if fromText != "" {
		start, _, err := parseBound(fromText)
		if err != nil {
			return nil, nil, err
		}
		from = &start
	}
	if toText != "" {
		_, end, err := parseBound(toText)
		if err != nil {
			return nil, nil, err
		}
		to = &end
	}

	if from != nil && to != nil && from.After(*to) {
		return nil, nil, fmt.Errorf("start date must be before end date")
	}

	return from, to, nil
}

// parseBound returns the first and last instant of a day or month
func parseBound(s string) (start, end time.Time, err error) {
	switch {
	case dayPattern.MatchString(s):
		d, err := time.Parse(dateLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
		}
		return d, time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, time.UTC), nil

	case monthPattern.MatchString(s):
		m, err := time.Parse(monthLayout, s)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid month %q: %w", s, err)
		}
		// Last day of month
		return m, time.Date(m.Year(), m.Month()+1, 0, 23, 59, 59, 0, time.UTC), nil
	}

	return time.Time{}, time.Time{}, fmt.Errorf("invalid date %q. Use 'YYYY-MM-DD' or 'YYYY-MM'", s)
}
