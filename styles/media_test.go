package styles_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"stylekit/styles"
)

func TestMediaCustom_Tablet(t *testing.T) {
	fn, ok := styles.MediaCustom().Func("tablet")
	if !ok {
		t.Fatal("expected tablet helper")
	}
	got := string(fn("color: red;\n"))
	want := "@media (min-width: 768px) {\n    color: red;\n}\n"
	if got != want {
		t.Errorf("tablet() = %q, want %q", got, want)
	}
	if n := strings.Count(got, "@media"); n != 1 {
		t.Errorf("expected exactly one media query, got %d", n)
	}
	if strings.Contains(got, "max-width") {
		t.Error("mobile first query must not have an upper bound")
	}
}

func TestBuiltinBreakpoints(t *testing.T) {
	custom := styles.CustomBreakpoints()
	if got := custom.Labels(); !reflect.DeepEqual(got, []string{"iphone5", "phone", "tablet", "desktop", "giant"}) {
		t.Errorf("CustomBreakpoints labels = %v", got)
	}
	if w, _ := custom.Width("giant"); w != 1200 {
		t.Errorf("giant = %d, want 1200", w)
	}

	hedron := styles.HedronBreakpoints()
	if got := hedron.Labels(); !reflect.DeepEqual(got, []string{"sm", "md", "lg"}) {
		t.Errorf("HedronBreakpoints labels = %v", got)
	}
	if !reflect.DeepEqual(styles.MediaHedron().Labels(), hedron.Labels()) {
		t.Errorf("MediaHedron labels = %v", styles.MediaHedron().Labels())
	}

	// copies must not leak into package state
	hedron[0].Width = 1
	if w, _ := styles.HedronBreakpoints().Width("sm"); w != 500 {
		t.Errorf("sm = %d after modifying a copy, want 500", w)
	}
}

func TestMediaHelpers_AllWidths(t *testing.T) {
	for _, bp := range styles.HedronBreakpoints() {
		got, err := styles.MediaHedron().Wrap(bp.Label, "display: none;")
		if err != nil {
			t.Fatalf("Wrap(%s) error = %v", bp.Label, err)
		}
		if !strings.HasPrefix(string(got), styles.MinWidthQuery(bp.Width)+" {\n") {
			t.Errorf("Wrap(%s) = %q", bp.Label, got)
		}
	}
}

func TestMediaHelpers_Wrap_Unknown(t *testing.T) {
	_, err := styles.MediaCustom().Wrap("watch", "color: red;")
	if !errors.Is(err, styles.ErrUnknownBreakpoint) {
		t.Errorf("Wrap(watch) error = %v, want UnknownBreakpoint", err)
	}
}

func TestMediaHelpers_ComposesArguments(t *testing.T) {
	border, err := styles.BorderWidthDeclaration(2, styles.PositionAll)
	if err != nil {
		t.Fatal(err)
	}
	got, err := styles.MediaCustom().Wrap("phone", "padding: ", 4, "px;\n", border, nil, false)
	if err != nil {
		t.Fatal(err)
	}
	want := "@media (min-width: 480px) {\n" +
		"    padding: 4px;\n" +
		"    border-width: 2px;\n" +
		"    html.hairlines & {\n" +
		"        border-width: 1px;\n" +
		"    }\n" +
		"}\n"
	if string(got) != want {
		t.Errorf("Wrap(phone) = %q, want %q", got, want)
	}
}

func TestBuildBreakpointHelpers_Composer(t *testing.T) {
	var calls int
	composer := styles.ComposerFunc(func(args ...any) styles.Fragment {
		calls++
		return styles.Fragment("x: y;")
	})
	h := styles.BuildBreakpointHelpers(styles.Breakpoints{{Label: "wide", Width: 1440}}, composer)
	got, err := h.Wrap("wide", "ignored")
	if err != nil {
		t.Fatal(err)
	}
	if calls != 1 {
		t.Errorf("composer called %d times, want 1", calls)
	}
	if string(got) != "@media (min-width: 1440px) {\n    x: y;\n}\n" {
		t.Errorf("Wrap(wide) = %q", got)
	}
}

func TestBuildBreakpointHelpers_DuplicateLabel(t *testing.T) {
	h := styles.BuildBreakpointHelpers(styles.Breakpoints{
		{Label: "a", Width: 100},
		{Label: "b", Width: 200},
		{Label: "a", Width: 300},
	}, nil)
	if got := h.Labels(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Errorf("Labels() = %v, want [a b]", got)
	}
	if w, _ := h.Breakpoints().Width("a"); w != 300 {
		t.Errorf("a = %d, want 300", w)
	}
	got, _ := h.Wrap("a")
	if !strings.HasPrefix(string(got), "@media (min-width: 300px)") {
		t.Errorf("Wrap(a) = %q", got)
	}
}

func TestCompose(t *testing.T) {
	got := styles.Compose("a", styles.Fragment("b"), 1, 2.5, nil, true, false, uint8(3))
	if got != "ab12.53" {
		t.Errorf("Compose() = %q, want %q", got, "ab12.53")
	}
}

func TestFixedFragments(t *testing.T) {
	if !strings.HasPrefix(string(styles.AllDescendantNoPadAndMargin), "* {") {
		t.Errorf("AllDescendantNoPadAndMargin = %q", styles.AllDescendantNoPadAndMargin)
	}
	for _, f := range []styles.Fragment{styles.AllDescendantNoPadAndMargin, styles.NoPadAndMargin} {
		if !strings.Contains(string(f), "padding: 0;") || !strings.Contains(string(f), "margin: 0;") {
			t.Errorf("fragment %q must zero padding and margin", f)
		}
	}
}
