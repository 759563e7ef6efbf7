package fortress

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/etnz/fortress/date"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// View is the screen a session shows after an action.
type View string

const (
	ViewCalc    View = "calc"
	ViewHistory View = "history"
)

var (
	// ErrNoSurplus is returned when logging a surplus that is not positive.
	ErrNoSurplus = errors.New("surplus must be positive")
	// ErrNotConfirmed is returned when a destructive action was not confirmed.
	ErrNotConfirmed = errors.New("not confirmed")
)

// Saver persists a whole State.
type Saver interface {
	Save(ctx context.Context, s *State) error
}

// Session applies user actions to a State.
//
// Every successful mutation is followed by a save. Saves are best effort:
// failures are logged and the in memory state is kept, so the stored copy may
// lag behind.
type Session struct {
	State   *State
	View    View
	Surplus decimal.Decimal
	LogDate date.Date
	Limit   int // number of history groups visible

	mu    sync.Mutex
	saver Saver
	log   zerolog.Logger
}

// NewSession starts a session on state. saver may be nil for an in memory session.
func NewSession(state *State, saver Saver, log zerolog.Logger) *Session {
	return &Session{
		State:   state,
		View:    ViewCalc,
		LogDate: date.Today(),
		Limit:   DefaultPageSize,
		saver:   saver,
		log:     log.With().Str("component", "session").Logger(),
	}
}

// save persists the state, logging failures.
func (s *Session) save(ctx context.Context) {
	if s.saver == nil {
		return
	}
	if err := s.saver.Save(ctx, s.State); err != nil {
		s.log.Error().Err(err).Msg("save failed, changes are kept in memory only")
	}
}

// LogInvestment records the current surplus on LogDate, split according to
// the current allocation template.
func (s *Session) LogInvestment(ctx context.Context) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.Surplus.IsPositive() {
		return Entry{}, ErrNoSurplus
	}
	e := NewEntry(s.LogDate, s.Surplus, s.State.Allocations)
	s.State.History.Insert(e)
	s.save(ctx)
	s.log.Info().Str("date", e.ISODate).Stringer("total", e.Total).Msg("investment logged")
	s.Surplus = decimal.Zero
	s.View = ViewHistory
	return e, nil
}

// RemoveEntry deletes the entry at position i once confirm approves it.
func (s *Session) RemoveEntry(ctx context.Context, i int, confirm func(Entry) bool) (Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i < 0 || i >= len(s.State.History) {
		return Entry{}, fmt.Errorf("entry #%d: %w", i, ErrOutOfRange)
	}
	if confirm != nil && !confirm(s.State.History[i]) {
		return Entry{}, ErrNotConfirmed
	}
	e, err := s.State.History.Remove(i)
	if err != nil {
		return Entry{}, err
	}
	s.save(ctx)
	return e, nil
}

// AddFund registers a new fund.
func (s *Session) AddFund(ctx context.Context, name string, c Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.State.Funds.Add(name, c); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

// Reclassify changes the category of a registered fund, past contributions included.
func (s *Session) Reclassify(ctx context.Context, name string, c Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.State.Funds.Reclassify(name, c); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

// AddAllocation appends an allocation to the template.
func (s *Session) AddAllocation(ctx context.Context, fund string, ratio decimal.Decimal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.State.Allocations.Add(fund, ratio); err != nil {
		return err
	}
	if _, ok := s.State.Funds.Lookup(fund); !ok {
		s.log.Debug().Str("fund", fund).Msg("allocation to an unregistered fund")
	}
	s.save(ctx)
	return nil
}

// ResetAllocations empties the allocation template.
func (s *Session) ResetAllocations(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.State.Allocations = nil
	s.save(ctx)
}

// AddTodo adds a reminder due on the given day.
func (s *Session) AddTodo(ctx context.Context, title string, on date.Date) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.State.Todos.Add(title, on); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

// CompleteTodo marks the todo at position i as done.
func (s *Session) CompleteTodo(ctx context.Context, i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.State.Todos.Complete(i); err != nil {
		return err
	}
	s.save(ctx)
	return nil
}

// SetSettings replaces the thresholds.
func (s *Session) SetSettings(ctx context.Context, settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.State.Settings = settings
	s.save(ctx)
}

// LoadMore makes PageStep more history groups visible.
func (s *Session) LoadMore() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Limit += PageStep
}

// HistoryPage returns the visible part of the grouped history.
func (s *Session) HistoryPage() Page {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Paginate(GroupHistory(s.State), s.Limit)
}

// Import replaces the state with the snapshot read from r. Keys missing from
// the snapshot keep their current value. On error the state is unchanged.
func (s *Session) Import(ctx context.Context, r io.Reader) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, err := DecodeSnapshot(r, s.State)
	if err != nil {
		return fmt.Errorf("invalid backup file: %w", err)
	}
	s.State = next
	s.save(ctx)
	s.View = ViewHistory
	return nil
}

// Read calls f with the state while no action can modify it.
func (s *Session) Read(f func(*State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	f(s.State)
}
