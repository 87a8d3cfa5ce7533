package util

import (
    "testing"
    "time"
)

func TestParseCivilDate(t *testing.T) {
    got, err := ParseCivilDate("2025-01-15")
    if err != nil {
        t.Fatalf("unexpected error: %v", err)
    }
    want := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)
    if !got.Equal(want) {
        t.Fatalf("unexpected time %v", got)
    }
}

func TestParseCivilDateRejectsBadInput(t *testing.T) {
    for _, s := range []string{"", "15-01-2025", "2025/01/15", "not-a-date"} {
        if _, err := ParseCivilDate(s); err == nil {
            t.Fatalf("expected error for %q", s)
        }
    }
}

func TestAddDaysRollsOverMonth(t *testing.T) {
    start, _ := ParseCivilDate("2025-01-15")
    got := AddDays(start, 28)
    if FormatCivilDate(got) != "2025-02-12" {
        t.Fatalf("unexpected date %s", FormatCivilDate(got))
    }
}

func TestAddDaysRollsOverYear(t *testing.T) {
    start, _ := ParseCivilDate("2024-12-20")
    got := AddDays(start, 30)
    if FormatCivilDate(got) != "2025-01-19" {
        t.Fatalf("unexpected date %s", FormatCivilDate(got))
    }
}
