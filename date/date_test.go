package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", New(2025, time.January, 15), false},
		{"2025-7-1", New(2025, time.July, 1), false},
		{" 2025-07-01 ", New(2025, time.July, 1), false},
		{"2025-07-01T10:00:00Z", New(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Parse(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("Parse(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("Parse(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestParseDisplay(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"16/10/2026", New(2026, time.October, 16), false},
		{"5/1/2026", New(2026, time.January, 5), false},
		{"05/01/2026", New(2026, time.January, 5), false},
		{"2026-01-05", Date{}, true},
		{"1/2", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDisplay(tt.input)
			if (err != nil) != tt.err {
				t.Errorf("ParseDisplay(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseDisplay(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDisplayRoundTrip(t *testing.T) {
	d := New(2026, time.March, 7)
	if got, want := d.Display(), "7/3/2026"; got != want {
		t.Errorf("Display() = %q, want %q", got, want)
	}
	if got, want := d.Long(), "07 Mar 2026"; got != want {
		t.Errorf("Long() = %q, want %q", got, want)
	}
	back, err := ParseDisplay(d.Display())
	if err != nil {
		t.Fatalf("ParseDisplay(%q) unexpected error: %v", d.Display(), err)
	}
	if back != d {
		t.Errorf("ParseDisplay(Display()) = %v, want %v", back, d)
	}
}

func TestParseInput(t *testing.T) {
	today := New(2026, time.October, 16)

	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"", today, false},
		{"0d", today, false},
		{"2025-01-15", New(2025, time.January, 15), false},
		{"-1d", New(2026, time.October, 15), false},
		{"+1d", New(2026, time.October, 17), false},
		{"1d", Date{}, true},
		{"-2w", New(2026, time.October, 2), false},
		{"-1m", New(2026, time.September, 16), false},
		{"-1y", New(2025, time.October, 16), false},
		{"27", New(2026, time.October, 27), false},
		{"1-15", New(2026, time.January, 15), false},
		{"0-15", New(2025, time.December, 15), false},
		{"0", New(2026, time.September, 30), false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseInput(tt.input, today)
			if (err != nil) != tt.err {
				t.Errorf("ParseInput(%q) error = %v, wantErr %v", tt.input, err, tt.err)
				return
			}
			if !tt.err && got != tt.expected {
				t.Errorf("ParseInput(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestZeroSortsFirst(t *testing.T) {
	if !(Date{}).IsZero() {
		t.Errorf("zero Date should report IsZero")
	}
	if Compare(Date{}, New(1, time.January, 1)) >= 0 {
		t.Errorf("zero Date should compare before any real date")
	}
}
