package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/session"
)

func newConsole(t *testing.T, input, style string) (*Console, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	c, err := New(strings.NewReader(input), &out, Options{Currency: "USD", Style: style})
	if err != nil {
		t.Fatalf("New() returned an unexpected error: %v", err)
	}
	return c, &out
}

func TestConsole_Choose(t *testing.T) {
	options := []string{"Edit", "Delete"}
	testCases := []struct {
		input string
		want  int
	}{
		{"1\n", 0},
		{"2\n", 1},
		{"delete\n", 1},
		{"0\n9\nfoo\n\n 2 \n", 1},
		{"1", 0}, // no final end of line
	}
	for _, tc := range testCases {
		c, out := newConsole(t, tc.input, RawStyle)
		got, err := c.Choose("Edit or delete?", options)
		if err != nil {
			t.Fatalf("Choose(%q) returned an unexpected error: %v", tc.input, err)
		}
		if got != tc.want {
			t.Errorf("Choose(%q) = %d, want %d", tc.input, got, tc.want)
		}
		if !strings.Contains(out.String(), "  2. Delete") {
			t.Errorf("Choose() output = %q, want numbered options", out.String())
		}
	}
}

func TestConsole_ChooseEOF(t *testing.T) {
	c, out := newConsole(t, "7\n", RawStyle)
	if _, err := c.Choose("Pick", []string{"a"}); !errors.Is(err, io.EOF) {
		t.Errorf("Choose() error = %v, want io.EOF", err)
	}
	if !strings.Contains(out.String(), "Invalid selection") {
		t.Errorf("Choose() output = %q, want an invalid selection warning", out.String())
	}
}

func TestConsole_AskAndPause(t *testing.T) {
	c, out := newConsole(t, "Salary\r\n\n", RawStyle)
	got, err := c.Ask("Enter title:")
	if err != nil || got != "Salary" {
		t.Errorf("Ask() = %q, %v, want %q", got, err, "Salary")
	}
	if err := c.Pause(); err != nil {
		t.Errorf("Pause() returned an unexpected error: %v", err)
	}
	if err := c.Pause(); !errors.Is(err, io.EOF) {
		t.Errorf("Pause() at the end of input = %v, want io.EOF", err)
	}
	if !strings.Contains(out.String(), "Enter title: ") || !strings.Contains(out.String(), "Press Enter to continue...") {
		t.Errorf("output = %q", out.String())
	}
}

func TestConsole_Notify(t *testing.T) {
	c, out := newConsole(t, "", RawStyle)
	c.Notify(session.Failure, "Error saving items")
	if got := out.String(); !strings.Contains(got, "Error saving items\n") {
		t.Errorf("Notify() output = %q", got)
	}
}

func TestConsole_Show(t *testing.T) {
	l := moneytracker.NewLedger(nil)
	if _, err := l.Add("Salary", moneytracker.MustParseAmount("5000"), time.Date(2025, 1, 31, 0, 0, 0, 0, time.UTC)); err != nil {
		t.Fatal(err)
	}
	for _, style := range []string{RawStyle, "notty"} {
		c, out := newConsole(t, "", style)
		if err := c.Show(l.Statement("")); err != nil {
			t.Fatalf("Show() with style %q returned an unexpected error: %v", style, err)
		}
		for _, want := range []string{"Money Tracker", "Salary", "$5,000.00"} {
			if !strings.Contains(out.String(), want) {
				t.Errorf("Show() with style %q does not contain %q:\n%s", style, want, out.String())
			}
		}
	}
}

func TestConsole_Session(t *testing.T) {
	// add an item, then quit.
	input := "1\nSalary\n5000\n\n7\n"
	store := moneytracker.NewMemoryStore()
	c, out := newConsole(t, input, RawStyle)
	ctl := session.New(moneytracker.NewLedger(store), c, session.Options{Currency: "USD"})
	if err := ctl.Run(t.Context()); err != nil {
		t.Fatalf("Run() returned an unexpected error: %v", err)
	}
	if items := store.Items(); len(items) != 1 || items[0].Title != "Salary" {
		t.Errorf("saved items = %+v, want the Salary item", items)
	}
	if !strings.Contains(out.String(), "Added new item: Salary") {
		t.Errorf("output does not report the new item:\n%s", out.String())
	}
}
