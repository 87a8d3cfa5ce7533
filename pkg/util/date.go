package util

import (
    "fmt"
    "time"
)

// CivilDateLayout is the ISO 8601 calendar-date layout used across the API.
const CivilDateLayout = "2006-01-02"

// ReadableDateLayout renders a date for display, e.g. "Wednesday, February 12, 2025".
const ReadableDateLayout = "Monday, January 2, 2006"

// ParseCivilDate parses an ISO 8601 calendar date (YYYY-MM-DD).
func ParseCivilDate(s string) (time.Time, error) {
    if s == "" {
        return time.Time{}, fmt.Errorf("date is empty")
    }
    t, err := time.Parse(CivilDateLayout, s)
    if err != nil {
        return time.Time{}, fmt.Errorf("date must be in YYYY-MM-DD format: %w", err)
    }
    return t, nil
}

// FormatCivilDate formats t as an ISO 8601 calendar date.
func FormatCivilDate(t time.Time) string {
    return t.Format(CivilDateLayout)
}

// FormatReadableDate formats t for human display.
func FormatReadableDate(t time.Time) string {
    return t.Format(ReadableDateLayout)
}

// AddDays returns the calendar date `days` after t, handling month and year rollover.
func AddDays(t time.Time, days int) time.Time {
    return t.AddDate(0, 0, days)
}
