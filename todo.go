package fortress

import (
	"fmt"
	"slices"
	"strings"

	"github.com/etnz/fortress/date"
)

// Todo is a dated reminder, independent of the financial data.
type Todo struct {
	Title     string `json:"title"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
}

// When returns the due day, or the zero Date when it cannot be read.
func (t Todo) When() date.Date {
	on, err := date.Parse(t.Date)
	if err != nil {
		return date.Date{}
	}
	return on
}

// DueOn reports whether t is still open and due on day.
func (t Todo) DueOn(day date.Date) bool {
	return !t.Completed && t.When() == day
}

// Todos is the list of reminders, ordered by due date.
type Todos []Todo

// Add appends a todo and keeps the list sorted by due date.
func (l *Todos) Add(title string, on date.Date) error {
	if strings.TrimSpace(title) == "" {
		return ErrBlankName
	}
	if on.IsZero() {
		return fmt.Errorf("todo %q has no date", title)
	}
	*l = append(*l, Todo{Title: title, Date: on.String()})
	l.Sort()
	return nil
}

// Sort orders todos by ascending due date.
func (l Todos) Sort() {
	slices.SortStableFunc(l, func(a, b Todo) int { return date.Compare(a.When(), b.When()) })
}

// Complete marks the todo at position i as done.
func (l Todos) Complete(i int) error {
	if i < 0 || i >= len(l) {
		return fmt.Errorf("todo #%d: %w", i, ErrOutOfRange)
	}
	l[i].Completed = true
	return nil
}

// Clone returns an independent copy of the list.
func (l Todos) Clone() Todos {
	if l == nil {
		return nil
	}
	return append(Todos(make([]Todo, 0, len(l))), l...)
}
