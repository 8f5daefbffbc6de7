// Package output renders API responses for terminal consumption.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/leohubert/bunny-stream-go/internal/encodewait"
)

// Printer writes colored, human readable output. Colors degrade to
// plain text on non-terminal writers via the color package.
type Printer struct {
	w io.Writer

	heading func(a ...any) string
	key     func(a ...any) string
	good    func(a ...any) string
	bad     func(a ...any) string
	warn    func(a ...any) string
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:       w,
		heading: color.New(color.FgCyan, color.Bold).SprintFunc(),
		key:     color.New(color.FgBlue).SprintFunc(),
		good:    color.New(color.FgGreen).SprintFunc(),
		bad:     color.New(color.FgRed).SprintFunc(),
		warn:    color.New(color.FgYellow).SprintFunc(),
	}
}

func (p *Printer) Heading(format string, args ...any) {
	fmt.Fprintln(p.w, p.heading(fmt.Sprintf(format, args...)))
}

func (p *Printer) Line(format string, args ...any) {
	fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.w, p.good(fmt.Sprintf(format, args...)))
}

func (p *Printer) Error(err error) {
	fmt.Fprintln(p.w, p.bad("error:"), err)
}

func (p *Printer) KV(key string, value any) {
	fmt.Fprintf(p.w, "  %s %v\n", p.key(key+":"), value)
}

// Object prints a decoded JSON object with sorted keys. Nested values
// are rendered as compact JSON.
func (p *Printer) Object(v any) {
	obj, ok := v.(map[string]any)
	if !ok {
		p.Line("%s", formatValue(v))
		return
	}
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		p.KV(key, formatValue(obj[key]))
	}
}

// VideoLine prints the one-line listing form of a video record.
func (p *Printer) VideoLine(video map[string]any) {
	status, _ := video["status"].(float64)
	fmt.Fprintf(p.w, "%s  %-13s %s\n", video["guid"], p.StatusLabel(int(status)), video["title"])
}

// CollectionLine prints the one-line listing form of a collection.
func (p *Printer) CollectionLine(collection map[string]any) {
	count, _ := collection["videoCount"].(float64)
	fmt.Fprintf(p.w, "%s  %4d video(s)  %s\n", collection["guid"], int(count), collection["name"])
}

// StatusLabel colors an encoding state by its severity.
func (p *Printer) StatusLabel(status int) string {
	name := encodewait.StatusName(status)
	switch status {
	case encodewait.StatusFinished:
		return p.good(name)
	case encodewait.StatusError, encodewait.StatusUploadFailed:
		return p.bad(name)
	}
	return p.warn(name)
}

func formatValue(v any) string {
	switch v.(type) {
	case map[string]any, []any:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(encoded)
	case nil:
		return "null"
	}
	return fmt.Sprint(v)
}
