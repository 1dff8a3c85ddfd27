package core

import (
	"errors"
	"testing"
	"time"
)

// FuzzParseDate checks that ParseDate either succeeds or reports ErrInvalidDate,
// and that canonical dates survive a round trip.
func FuzzParseDate(f *testing.F) {
	seeds := []string{
		"2024-01-01",
		"2024-02-29",
		"2023-02-29",
		"2024-01-01T00:00:00Z",
		"2024/12/31",
		"",
		"not-a-date",
		"9999-99-99",
	}
	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, s string) {
		got, err := ParseDate(s)
		if err != nil {
			if !errors.Is(err, ErrInvalidDate) {
				t.Fatalf("ParseDate(%q) returned unexpected error %v", s, err)
			}
			return
		}
		canonical := got.Format(time.DateOnly)
		again, err := ParseDate(canonical)
		if err != nil {
			t.Fatalf("canonical form %q of %q did not parse: %v", canonical, s, err)
		}
		if again.Format(time.DateOnly) != canonical {
			t.Fatalf("round trip changed date: %q -> %q", canonical, again.Format(time.DateOnly))
		}
	})
}
