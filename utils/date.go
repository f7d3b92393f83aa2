package utils

import "time"

// DayLayout is the calendar-day key format used throughout the ledger.
const DayLayout = "2006-01-02"

// ValidDay reports whether s is a well-formed YYYY-MM-DD calendar date.
// The round-trip check rejects shorthand like "2024-1-5" so every stored
// key has one canonical spelling.
func ValidDay(s string) bool {
	t, err := time.ParseInLocation(DayLayout, s, time.Local)
	if err != nil {
		return false
	}
	return t.Format(DayLayout) == s
}
