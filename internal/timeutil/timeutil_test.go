package timeutil

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2024-11-16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2024, 11, 16, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	if _, err := ParseDate("16/11/2024"); err == nil {
		t.Fatal("expected error for wrong layout")
	}
}

func TestFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2024-11-16")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := FormatDate(parsed); got != "2024-11-16" {
		t.Fatalf("round trip mismatch: %q", got)
	}
}

func TestParseInstant(t *testing.T) {
	got := ParseInstant("2024-11-17T00:00:00Z")
	want := time.Date(2024, 11, 17, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("got %v, want %v", got, want)
	}

	// Offsets normalize to UTC.
	got = ParseInstant("2024-11-16T19:00:00-05:00")
	if !got.Equal(want) {
		t.Fatalf("offset not normalized: %v", got)
	}

	if !ParseInstant("garbage").IsZero() {
		t.Fatal("expected zero time for unparseable input")
	}
	if !ParseInstant("").IsZero() {
		t.Fatal("expected zero time for empty input")
	}
}
