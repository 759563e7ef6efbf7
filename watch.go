package fortress

import (
	"fmt"

	"github.com/etnz/fortress/date"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Reader gives access to a State, Session is a Reader.
type Reader interface {
	Read(f func(*State))
}

// Watcher runs a Reminder check on a cron schedule.
type Watcher struct {
	cron     *cron.Cron
	source   Reader
	reminder *Reminder
	log      zerolog.Logger
	Today    func() date.Date
}

// NewWatcher returns a Watcher checking the todos of source.
func NewWatcher(source Reader, r *Reminder, log zerolog.Logger) *Watcher {
	return &Watcher{
		cron:     cron.New(),
		source:   source,
		reminder: r,
		log:      log.With().Str("component", "watcher").Logger(),
		Today:    date.Today,
	}
}

// Schedule registers the check with a standard five fields cron schedule,
// for instance "0 9 * * *" or "@hourly".
func (w *Watcher) Schedule(schedule string) error {
	if _, err := w.cron.AddFunc(schedule, w.run); err != nil {
		return fmt.Errorf("invalid schedule %q: %w", schedule, err)
	}
	w.log.Info().Str("schedule", schedule).Msg("reminders scheduled")
	return nil
}

func (w *Watcher) run() {
	n, err := w.Check()
	if err != nil {
		w.log.Error().Err(err).Msg("reminder check failed")
		return
	}
	w.log.Debug().Int("sent", n).Msg("reminders checked")
}

// Check notifies the todos due today, outside of the schedule.
func (w *Watcher) Check() (n int, err error) {
	w.source.Read(func(s *State) {
		n, err = w.reminder.Check(s.Todos, w.Today())
	})
	return n, err
}

// Start runs the schedule in the background.
func (w *Watcher) Start() { w.cron.Start() }

// Stop stops the schedule and waits for a running check to complete.
func (w *Watcher) Stop() {
	<-w.cron.Stop().Done()
}
