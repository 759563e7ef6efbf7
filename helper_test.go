package fortress

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/etnz/fortress/date"
	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// todayForTest is the fixed "today" of the tests.
var todayForTest = date.New(2026, time.October, 16)

// D is a helper for test to create decimals from const.
func D(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// decimalEqual compares decimals by value, 1.0 and 1 are equal.
var decimalEqual = cmp.Comparer(func(a, b decimal.Decimal) bool { return a.Equal(b) })

// assertDecimal fails the test if got is not equal to want.
func assertDecimal(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(D(want)) {
		t.Errorf("%s = %v, want %v", name, got, want)
	}
}

// entry builds a ledger entry logged on iso with the given detail.
func entry(iso string, total string, detail ...Allocation) Entry {
	t := Template(detail)
	return NewEntry(date.MustParse(iso), D(total), t)
}

// alloc builds an allocation.
func alloc(fund string, ratio string) Allocation { return Allocation{Fund: fund, Ratio: D(ratio)} }

// memorySaver records saves instead of writing them.
type memorySaver struct {
	saves int
	err   error
}

func (m *memorySaver) Save(ctx context.Context, s *State) error {
	m.saves++
	return m.err
}

func newTestSession(state *State) (*Session, *memorySaver) {
	saver := new(memorySaver)
	return NewSession(state, saver, zerolog.Nop()), saver
}

var errDiskFull = errors.New("disk full")
