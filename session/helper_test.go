package session

import (
	"io"
	"slices"
	"strings"
	"testing"
	"time"

	"github.com/etnz/moneytracker"
)

// scriptUI is a UI that replays a script of answers.
//
// Choose expects the label of the option to pick, Ask returns the next
// answer verbatim. When the script is exhausted every input returns io.EOF.
type scriptUI struct {
	t       *testing.T
	script  []string
	shown   []moneytracker.Statement
	notes   []string
	levels  []Level
	prompts []string
	pauses  int
}

func newScript(t *testing.T, script ...string) *scriptUI {
	return &scriptUI{t: t, script: script}
}

func (u *scriptUI) next() (string, error) {
	if len(u.script) == 0 {
		return "", io.EOF
	}
	s := u.script[0]
	u.script = u.script[1:]
	return s, nil
}

func (u *scriptUI) Show(st moneytracker.Statement) error {
	u.shown = append(u.shown, st)
	return nil
}

func (u *scriptUI) Choose(title string, options []string) (int, error) {
	u.prompts = append(u.prompts, title)
	s, err := u.next()
	if err != nil {
		return 0, err
	}
	i := slices.Index(options, s)
	if i < 0 {
		u.t.Fatalf("script answer %q is not one of %q for %q", s, options, title)
	}
	return i, nil
}

func (u *scriptUI) Ask(question string) (string, error) {
	u.prompts = append(u.prompts, question)
	return u.next()
}

func (u *scriptUI) Notify(level Level, message string) {
	u.levels = append(u.levels, level)
	u.notes = append(u.notes, message)
}

func (u *scriptUI) Pause() error {
	u.pauses++
	return nil
}

// noted reports whether a message containing s was sent.
func (u *scriptUI) noted(s string) bool {
	return slices.ContainsFunc(u.notes, func(n string) bool { return strings.Contains(n, s) })
}

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func at(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

// scenarioB is the store of a ledger with an income of 5000 (id 1) and an
// expense of 1000 (id 2).
func scenarioB() *moneytracker.MemoryStore {
	return moneytracker.NewMemoryStore(
		moneytracker.Item{ID: 1, Title: "Salary", Amount: moneytracker.MustParseAmount("5000"), Date: at("2025-01-31"), Type: moneytracker.Income},
		moneytracker.Item{ID: 2, Title: "Rent", Amount: moneytracker.MustParseAmount("1000"), Date: at("2025-02-01"), Type: moneytracker.Expense},
	)
}

func newController(store moneytracker.Store, ui UI) (*Controller, *moneytracker.Ledger) {
	l := moneytracker.NewLedger(store)
	return New(l, ui, Options{Currency: "USD", Now: func() time.Time { return testNow }}), l
}

func ids(items []moneytracker.Item) []int {
	out := make([]int, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}
