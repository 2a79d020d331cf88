package session

import (
	"fmt"

	"github.com/etnz/moneytracker"
)

// Level classifies the messages sent to the user.
type Level int

const (
	Info Level = iota
	Success
	Warning
	Failure
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	case Failure:
		return "failure"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// UI is the presentation side of a session: it displays statements and
// collects the user's input.
//
// Any error returned by an input method ends the session. io.EOF is a normal
// end of input.
type UI interface {
	// Show displays a statement.
	Show(st moneytracker.Statement) error
	// Choose asks the user to pick one of options and returns its index.
	// Invalid selections are handled by the UI, the index is always valid.
	Choose(title string, options []string) (int, error)
	// Ask asks a question and returns the raw answer.
	Ask(question string) (string, error)
	// Notify displays a message.
	Notify(level Level, message string)
	// Pause waits for the user before the next command.
	Pause() error
}
