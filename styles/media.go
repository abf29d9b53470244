package styles

import (
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// Breakpoint is a named viewport width threshold in px.
type Breakpoint struct {
	Label string
	Width int
}

// Breakpoints is an ordered set of breakpoints, narrowest first by convention.
type Breakpoints []Breakpoint

// Width returns width of the breakpoint with given label.
func (b Breakpoints) Width(label string) (int, bool) {
	for _, bp := range b {
		if bp.Label == label {
			return bp.Width, true
		}
	}
	return 0, false
}

// Labels returns breakpoint labels in order.
func (b Breakpoints) Labels() []string {
	labels := make([]string, 0, len(b))
	for _, bp := range b {
		labels = append(labels, bp.Label)
	}
	return labels
}

var (
	customBreakpoints = Breakpoints{
		{Label: "iphone5", Width: 320},
		{Label: "phone", Width: 480},
		{Label: "tablet", Width: 768},
		{Label: "desktop", Width: 992},
		{Label: "giant", Width: 1200},
	}
	hedronBreakpoints = Breakpoints{
		{Label: "sm", Width: 500},
		{Label: "md", Width: 768},
		{Label: "lg", Width: 1100},
	}

	mediaCustom = BuildBreakpointHelpers(customBreakpoints, nil)
	mediaHedron = BuildBreakpointHelpers(hedronBreakpoints, nil)
)

// CustomBreakpoints returns a copy of device oriented breakpoints:
// iphone5, phone, tablet, desktop, giant.
func CustomBreakpoints() Breakpoints {
	return slices.Clone(customBreakpoints)
}

// HedronBreakpoints returns a copy of grid breakpoints: sm, md, lg.
func HedronBreakpoints() Breakpoints {
	return slices.Clone(hedronBreakpoints)
}

// MediaCustom returns helpers built from CustomBreakpoints.
func MediaCustom() *MediaHelpers {
	return mediaCustom
}

// MediaHedron returns helpers built from HedronBreakpoints.
func MediaHedron() *MediaHelpers {
	return mediaHedron
}

// Composer merges style template arguments into a single fragment. It is the
// hook for whatever styling engine the fragments end up in.
type Composer interface {
	Compose(args ...any) Fragment
}

// ComposerFunc adapts a function to Composer.
type ComposerFunc func(args ...any) Fragment

func (f ComposerFunc) Compose(args ...any) Fragment {
	return f(args...)
}

// DefaultComposer concatenates arguments using Compose.
var DefaultComposer Composer = ComposerFunc(Compose)

// Compose concatenates arguments into a fragment. Strings and fragments are
// taken verbatim, numbers are printed in their shortest form, nil and booleans
// produce nothing so conditional parts can be passed directly.
func Compose(args ...any) Fragment {
	var sb strings.Builder
	for _, arg := range args {
		switch v := arg.(type) {
		case nil, bool:
		case Fragment:
			sb.WriteString(string(v))
		case string:
			sb.WriteString(v)
		case fmt.Stringer:
			sb.WriteString(v.String())
		case float64:
			sb.WriteString(formatNumber(v))
		case float32:
			sb.WriteString(formatNumber(float64(v)))
		default:
			if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
				continue
			}
			fmt.Fprint(&sb, v)
		}
	}
	return Fragment(sb.String())
}

// MediaFunc wraps composed style arguments into a media query.
type MediaFunc func(args ...any) Fragment

// MediaHelpers maps breakpoint labels to media query wrappers. It is
// read-only once built.
type MediaHelpers struct {
	breakpoints Breakpoints
	funcs       map[string]MediaFunc
}

// BuildBreakpointHelpers creates a mobile-first wrapper for every breakpoint:
// content applies from the breakpoint width up, no upper bound is ever
// emitted. Wrappers should be used in ascending width order, overlaps are not
// detected. A repeated label keeps its first position and takes the last
// width. Nil composer means DefaultComposer.
func BuildBreakpointHelpers(breakpoints Breakpoints, composer Composer) *MediaHelpers {
	if composer == nil {
		composer = DefaultComposer
	}

	h := &MediaHelpers{
		breakpoints: make(Breakpoints, 0, len(breakpoints)),
		funcs:       make(map[string]MediaFunc, len(breakpoints)),
	}
	for _, bp := range breakpoints {
		if i := slices.IndexFunc(h.breakpoints, func(b Breakpoint) bool { return b.Label == bp.Label }); i >= 0 {
			h.breakpoints[i].Width = bp.Width
		} else {
			h.breakpoints = append(h.breakpoints, bp)
		}
		h.funcs[bp.Label] = mediaFunc(bp.Width, composer)
	}
	return h
}

func mediaFunc(width int, composer Composer) MediaFunc {
	query := MinWidthQuery(width)
	return func(args ...any) Fragment {
		return Fragment(block(query, string(composer.Compose(args...))))
	}
}

// MinWidthQuery returns "@media (min-width: Npx)".
func MinWidthQuery(width int) string {
	return fmt.Sprintf("@media (min-width: %dpx)", width)
}

// Func returns wrapper for label.
func (h *MediaHelpers) Func(label string) (MediaFunc, bool) {
	fn, ok := h.funcs[label]
	return fn, ok
}

// Wrap composes args and wraps them into the media query of label.
func (h *MediaHelpers) Wrap(label string, args ...any) (Fragment, error) {
	fn, ok := h.funcs[label]
	if !ok {
		return "", NewError(ErrorKindUnknownBreakpoint, "no breakpoint %q, known: %s", label, strings.Join(h.Labels(), ","))
	}
	return fn(args...), nil
}

// Labels returns known labels in breakpoint order.
func (h *MediaHelpers) Labels() []string {
	return h.breakpoints.Labels()
}

// Breakpoints returns a copy of the breakpoints helpers were built from.
func (h *MediaHelpers) Breakpoints() Breakpoints {
	return slices.Clone(h.breakpoints)
}
