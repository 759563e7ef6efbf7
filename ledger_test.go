package fortress

import (
	"testing"
	"time"

	"github.com/etnz/fortress/date"
)

func TestEntry_When(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
		want  date.Date
	}{
		{"iso date wins", Entry{Date: "1/1/2020", ISODate: "2026-10-16"}, date.New(2026, time.October, 16)},
		{"display date fallback", Entry{Date: "5/1/2026"}, date.New(2026, time.January, 5)},
		{"invalid iso falls back", Entry{Date: "5/1/2026", ISODate: "garbage"}, date.New(2026, time.January, 5)},
		{"nothing readable", Entry{Date: "Jan 5"}, date.Date{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.entry.When(); got != tt.want {
				t.Errorf("When() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLedger_Sort(t *testing.T) {
	l := Ledger{
		{Summary: "unreadable", Date: "?"},
		entry("2026-01-01", "1"),
		{Summary: "legacy", Date: "15/6/2026"},
		entry("2026-12-01", "2"),
	}
	l.Sort()

	want := []string{"2026-12-01", "", "2026-01-01", ""}
	for i, w := range want {
		if l[i].ISODate != w {
			t.Errorf("entry #%d = %q (%s), want %q", i, l[i].ISODate, l[i].Summary, w)
		}
	}
	if l[3].Summary != "unreadable" {
		t.Errorf("unreadable dates should sort last, got %+v", l[3])
	}
}

func TestLedger_Find(t *testing.T) {
	l := Ledger{
		{ID: "a1b2c3", Date: "1/1/2026"},
		{ID: "a1ffff", Date: "2/1/2026"},
		{Date: "3/1/2026"},
		{ID: "12345678-9abc", Date: "4/1/2026"},
		{ID: "cafe", Date: "5/1/2026"},
	}

	tests := []struct {
		ref     string
		want    int
		wantErr bool
	}{
		{"0", 0, false},
		{"2", 2, false},
		{"#2", 2, false},
		{"#9", -1, true},
		{"#x", -1, true},
		{"5", -1, true},
		{"-1", -1, true},
		{"12345678", 3, false}, // all-digit id prefix
		{"1234", 3, false},
		{"1", -1, true},  // position 1 and an id prefix
		{"#1", 1, false}, // explicit position
		{"caf", 4, false},
		{"a1b", 0, false},
		{"a1f", 1, false},
		{"a1", -1, true}, // ambiguous
		{"zz", -1, true},
		{"", -1, true},
	}
	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := l.Find(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Find(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Find(%q) = %d, want %d", tt.ref, got, tt.want)
			}
		})
	}
}
