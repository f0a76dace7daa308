package cmd

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrintEvent_FormatsKnownEvent(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printEvent(&buf, `{"ts":"2026-08-30T09:15:00Z","kind":"entry_logged","tracker":"pushups","data":{"value":"20"}}`)

	out := buf.String()
	for _, want := range []string{"entry_logged", "tracker=pushups", "value=20"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestPrintEvent_MalformedLineIsMarked(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	printEvent(&buf, "not json at all")

	if !strings.HasPrefix(buf.String(), "???") {
		t.Errorf("malformed line should be marked, got %q", buf.String())
	}
}

func TestFormatDataMap_SortsKeys(t *testing.T) {
	t.Parallel()

	got := formatDataMap(map[string]any{"zeta": 1, "alpha": "x", "mid": true})
	want := "alpha=x mid=true zeta=1"
	if got != want {
		t.Errorf("formatDataMap = %q, want %q", got, want)
	}
}
