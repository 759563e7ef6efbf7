package fortress

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/etnz/fortress/date"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Entry is one logged contribution.
//
// Detail is a frozen copy of the allocation template at logging time, its
// ratios apply to Total to give each fund's contribution.
type Entry struct {
	ID      string          `json:"id,omitempty"`
	Date    string          `json:"date"`    // display date, e.g. "16/10/2026"
	ISODate string          `json:"isoDate"` // canonical date, e.g. "2026-10-16"
	Total   decimal.Decimal `json:"total"`
	Summary string          `json:"summary"`
	Detail  Template        `json:"detail"`
}

// NewEntry creates an entry for amount logged on day with a frozen copy of t.
func NewEntry(on date.Date, amount decimal.Decimal, t Template) Entry {
	return Entry{
		ID:      uuid.NewString(),
		Date:    on.Display(),
		ISODate: on.String(),
		Total:   amount,
		Summary: t.Summary(),
		Detail:  t.Clone(),
	}
}

// When returns the day the entry refers to: the ISO date when present,
// the display date otherwise. Unreadable dates return the zero Date.
func (e Entry) When() date.Date {
	if e.ISODate != "" {
		if on, err := date.Parse(e.ISODate); err == nil {
			return on
		}
	}
	on, err := date.ParseDisplay(e.Date)
	if err != nil {
		return date.Date{}
	}
	return on
}

// Clone returns an entry that shares nothing with e.
func (e Entry) Clone() Entry {
	e.Detail = e.Detail.Clone()
	return e
}

// Ledger is the list of logged entries.
//
// Storage order is not meaningful, Sort normalizes it to most recent first.
type Ledger []Entry

// byDateDesc orders entries from the most recent to the oldest.
func byDateDesc(a, b Entry) int { return date.Compare(b.When(), a.When()) }

// Sort sorts the ledger from the most recent entry to the oldest. Entries on
// the same day keep their relative order.
func (l Ledger) Sort() { slices.SortStableFunc(l, byDateDesc) }

// Insert puts e at the head of the ledger then sorts it.
func (l *Ledger) Insert(e Entry) {
	*l = slices.Insert(*l, 0, e)
	l.Sort()
}

// Remove deletes the entry at position i.
func (l *Ledger) Remove(i int) (Entry, error) {
	if i < 0 || i >= len(*l) {
		return Entry{}, fmt.Errorf("entry #%d: %w", i, ErrOutOfRange)
	}
	e := (*l)[i]
	*l = slices.Delete(*l, i, i+1)
	return e, nil
}

// Find resolves ref to a position in the ledger. ref is either a unique
// prefix of an entry id, a position, or "#" followed by a position.
//
// A bare number that is both a valid position and an id prefix is rejected
// as ambiguous.
func (l Ledger) Find(ref string) (int, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return -1, fmt.Errorf("empty entry reference")
	}
	if pos, ok := strings.CutPrefix(ref, "#"); ok {
		i, err := strconv.Atoi(pos)
		if err != nil {
			return -1, fmt.Errorf("invalid entry position %q", ref)
		}
		return l.position(i)
	}
	found, err := l.findID(ref)
	if err != nil {
		return -1, err
	}
	i, perr := strconv.Atoi(ref)
	switch {
	case perr != nil && found < 0:
		return -1, fmt.Errorf("no entry with id %q", ref)
	case perr != nil:
		return found, nil
	case found < 0:
		return l.position(i)
	case i >= 0 && i < len(l):
		return -1, fmt.Errorf("entry %q is ambiguous, use #%d for the position or a longer id", ref, i)
	default:
		return found, nil
	}
}

func (l Ledger) position(i int) (int, error) {
	if i < 0 || i >= len(l) {
		return -1, fmt.Errorf("entry #%d: %w", i, ErrOutOfRange)
	}
	return i, nil
}

// findID returns the position of the only entry whose id starts with prefix,
// or -1 when there is none.
func (l Ledger) findID(prefix string) (int, error) {
	found := -1
	for i, e := range l {
		if e.ID == "" || !strings.HasPrefix(e.ID, prefix) {
			continue
		}
		if found >= 0 {
			return -1, fmt.Errorf("entry id %q is ambiguous", prefix)
		}
		found = i
	}
	return found, nil
}

// Clone returns a deep copy of the ledger.
func (l Ledger) Clone() Ledger {
	if l == nil {
		return nil
	}
	c := make(Ledger, len(l))
	for i, e := range l {
		c[i] = e.Clone()
	}
	return c
}
