// Package debug formats parsed structures as indented text trees for
// diagnostic output.
package debug

import (
	"fmt"
	"strconv"
	"strings"
)

const indent = "  "

// TreeWriter accumulates tree lines, every level is indented by two spaces.
type TreeWriter struct {
	w *strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{w: &strings.Builder{}}
}

func (tw *TreeWriter) String() string {
	return tw.w.String()
}

// Node writes formatted line at given depth.
func (tw *TreeWriter) Node(depth int, format string, args ...any) {
	tw.w.WriteString(strings.Repeat(indent, depth))
	fmt.Fprintf(tw.w, format, args...)
	tw.w.WriteByte('\n')
}

// Field writes "label: value" line, non empty values are quoted so
// whitespace and control characters stay visible.
func (tw *TreeWriter) Field(depth int, label, value string) {
	tw.w.WriteString(strings.Repeat(indent, depth))
	tw.w.WriteString(label)
	tw.w.WriteString(": ")
	tw.w.WriteString(quote(value))
	tw.w.WriteByte('\n')
}

func quote(raw string) string {
	if raw == "" {
		return raw
	}
	return strconv.Quote(raw)
}
