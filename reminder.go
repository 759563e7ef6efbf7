package fortress

import (
	"fmt"
	"io"

	"github.com/etnz/fortress/date"
)

// Notifier delivers a reminder to the user.
type Notifier interface {
	Notify(t Todo) error
}

// Reminder notifies open todos on their due day, at most once per todo and per day.
type Reminder struct {
	Notifier Notifier
	sent     map[Todo]date.Date // last day each todo was notified
}

// NewReminder returns a Reminder that notifies through n.
func NewReminder(n Notifier) *Reminder {
	return &Reminder{Notifier: n, sent: make(map[Todo]date.Date)}
}

// Check notifies every todo due today that was not notified yet today. It
// returns the number of notifications sent.
func (r *Reminder) Check(todos Todos, today date.Date) (int, error) {
	n := 0
	for _, t := range todos {
		if !t.DueOn(today) {
			continue
		}
		if r.sent[t] == today {
			continue
		}
		if err := r.Notifier.Notify(t); err != nil {
			return n, fmt.Errorf("cannot notify %q: %w", t.Title, err)
		}
		r.sent[t] = today
		n++
	}
	return n, nil
}

// WriterNotifier prints reminders on a writer.
type WriterNotifier struct{ W io.Writer }

func (w WriterNotifier) Notify(t Todo) error {
	_, err := fmt.Fprintf(w.W, "Fortress Reminder: %s\n", t.Title)
	return err
}
