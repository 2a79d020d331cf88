package moneytracker

import (
	"encoding/json"
	"testing"
)

func TestJsonObjectWriter(t *testing.T) {
	t.Run("empty object", func(t *testing.T) {
		var w jsonObjectWriter
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if want := "{}"; string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("keeps field order", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("z", 1)
		w.Append("a", "hello")
		w.Append("n", json.Number("12.50"))
		got, err := w.MarshalJSON()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := `{"z":1,"a":"hello","n":12.50}`
		if string(got) != want {
			t.Errorf("got %q, want %q", got, want)
		}
	})

	t.Run("error is sticky", func(t *testing.T) {
		var w jsonObjectWriter
		w.Append("f", func() {})
		w.Append("a", 1)
		if _, err := w.MarshalJSON(); err == nil {
			t.Error("expected an error for an unsupported value")
		}
	})
}
