package output

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/leohubert/bunny-stream-go/internal/encodewait"
)

func newPlainPrinter(t *testing.T) (*Printer, *bytes.Buffer) {
	t.Helper()
	previous := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = previous })

	var buf bytes.Buffer
	return NewPrinter(&buf), &buf
}

func TestObjectSortsKeys(t *testing.T) {
	printer, buf := newPlainPrinter(t)

	printer.Object(map[string]any{
		"title":  "Clip",
		"guid":   "abc",
		"nested": map[string]any{"ok": true},
	})

	got := buf.String()
	guidAt := strings.Index(got, "guid:")
	titleAt := strings.Index(got, "title:")
	if guidAt == -1 || titleAt == -1 || guidAt > titleAt {
		t.Errorf("keys not sorted:\n%s", got)
	}
	if !strings.Contains(got, `{"ok":true}`) {
		t.Errorf("nested value not rendered as JSON:\n%s", got)
	}
}

func TestObjectNonMap(t *testing.T) {
	printer, buf := newPlainPrinter(t)

	printer.Object([]any{"a", "b"})
	if got := buf.String(); got != "[\"a\",\"b\"]\n" {
		t.Errorf("got %q", got)
	}
}

func TestVideoLine(t *testing.T) {
	printer, buf := newPlainPrinter(t)

	printer.VideoLine(map[string]any{
		"guid":   "abc",
		"title":  "Clip",
		"status": float64(encodewait.StatusFinished),
	})

	got := buf.String()
	for _, want := range []string{"abc", "finished", "Clip"} {
		if !strings.Contains(got, want) {
			t.Errorf("line %q misses %q", got, want)
		}
	}
}

func TestStatusLabel(t *testing.T) {
	printer, _ := newPlainPrinter(t)

	if got := printer.StatusLabel(encodewait.StatusError); got != "error" {
		t.Errorf("StatusLabel = %q, want error", got)
	}
	if got := printer.StatusLabel(encodewait.StatusTranscoding); got != "transcoding" {
		t.Errorf("StatusLabel = %q, want transcoding", got)
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		in   any
		want string
	}{
		{nil, "null"},
		{"text", "text"},
		{float64(4), "4"},
		{true, "true"},
		{map[string]any{"a": 1}, `{"a":1}`},
	}
	for _, tt := range tests {
		if got := formatValue(tt.in); got != tt.want {
			t.Errorf("formatValue(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
