package main

import (
	"testing"
	"time"
)

// TestFormat functions using a known date.
func TestFormatFunctions(t *testing.T) {
	// Use a fixed time for testing.
	// January 2, 2006 is a Monday.
	testTime := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

	t.Run("FormatDate", func(t *testing.T) {
		// DefaultDateFormat is "YYYY-MM-DD" which translates to "2006-01-02"
		expected := "2006-01-02"
		result := FormatDate(testTime)
		if result != expected {
			t.Errorf("FormatDate: expected %q, got %q", expected, result)
		}
	})

	t.Run("FormatTime", func(t *testing.T) {
		// DefaultTimeFormat is "hh:mm:ss" which translates to "15:04:05"
		expected := "15:04:05"
		result := FormatTime(testTime)
		if result != expected {
			t.Errorf("FormatTime: expected %q, got %q", expected, result)
		}
	})

	t.Run("FormatDateTime", func(t *testing.T) {
		// DefaultDateTimeFormat is "DDDD, DD MMM YYYY hh:mm:ss"
		expected := "Monday, 02 Jan 2006 15:04:05"
		result := FormatDateTime(testTime)
		if result != expected {
			t.Errorf("FormatDateTime: expected %q, got %q", expected, result)
		}
	})

	t.Run("CustomFormat", func(t *testing.T) {
		expected := "01/02/06"
		result := Format("MM/DD/YY", testTime)
		if result != expected {
			t.Errorf("Format: expected %q, got %q", expected, result)
		}
	})
}

// TestParse formats a time then parses it back.
func TestParseRoundTrip(t *testing.T) {
	original := time.Date(2006, time.January, 2, 15, 4, 5, 0, time.UTC)

	formatted := FormatDateTime(original)
	parsed, err := Parse("", formatted)
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if parsed.Year() != original.Year() || parsed.Month() != original.Month() || parsed.Day() != original.Day() ||
		parsed.Hour() != original.Hour() || parsed.Minute() != original.Minute() || parsed.Second() != original.Second() {
		t.Errorf("Parse: expected %v, got %v", original, parsed)
	}
}
