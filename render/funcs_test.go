package render

import (
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap/zaptest"

	"stylekit/config"
	"stylekit/styles"
)

func newTestRenderer(t *testing.T, cfg *config.RenderConfig) *Renderer {
	t.Helper()
	r, err := New(zaptest.NewLogger(t), cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return r
}

func TestPixels(t *testing.T) {
	tests := []struct {
		in   any
		want float64
		kind *styles.Error
	}{
		{in: 12, want: 12},
		{in: int32(-3), want: -3},
		{in: uint8(7), want: 7},
		{in: 1.5, want: 1.5},
		{in: float32(0.5), want: 0.5},
		{in: "12px", want: 12},
		{in: "-1.5PX", want: -1.5},
		{in: styles.Fragment("4"), want: 4},
		{in: "12em", kind: styles.ErrInvalidLengthFormat},
		{in: true, kind: styles.ErrInvalidLengthFormat},
		{in: nil, kind: styles.ErrInvalidLengthFormat},
		{in: []int{1}, kind: styles.ErrInvalidLengthFormat},
	}
	for _, tt := range tests {
		got, err := pixels(tt.in)
		if tt.kind != nil {
			if !errors.Is(err, tt.kind) {
				t.Errorf("pixels(%#v) error = %v, want %v", tt.in, err, tt.kind)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("pixels(%#v) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestOpacity(t *testing.T) {
	for _, v := range []any{0.5, 1, "0.25", int64(0)} {
		if _, err := opacity(v); err != nil {
			t.Errorf("opacity(%#v) error = %v", v, err)
		}
	}
	for _, v := range []any{nil, true, "half", []float64{1}} {
		if _, err := opacity(v); !errors.Is(err, styles.ErrInvalidOpacity) {
			t.Errorf("opacity(%#v) error = %v, want InvalidOpacity", v, err)
		}
	}
}

func TestRGBA(t *testing.T) {
	got, err := rgba("#0000FF", 0.5)
	if err != nil {
		t.Fatalf("rgba() error = %v", err)
	}
	if got != "rgba(0, 0, 255, 0.5)" {
		t.Errorf("rgba() = %q", got)
	}

	if _, err := rgba(255, 1); !errors.Is(err, styles.ErrInvalidColorFormat) {
		t.Errorf("rgba(number) error = %v", err)
	}
	if _, err := rgba("#FFFFFF", 2); !errors.Is(err, styles.ErrInvalidOpacity) {
		t.Errorf("rgba(opacity 2) error = %v", err)
	}
}

func TestBorderArguments(t *testing.T) {
	tests := []struct {
		name  string
		width any
		color any
		rest  []any
		kind  *styles.Error
	}{
		{name: "color type", width: 1, color: 0xff, kind: styles.ErrInvalidColorFormat},
		{name: "color format", width: 1, color: "red", kind: styles.ErrInvalidColorFormat},
		{name: "width", width: "wide", color: "#000000", kind: styles.ErrInvalidLengthFormat},
		{name: "position type", width: 1, color: "#000000", rest: []any{1}, kind: styles.ErrInvalidPosition},
		{name: "position value", width: 1, color: "#000000", rest: []any{"middle"}, kind: styles.ErrInvalidPosition},
		{name: "style type", width: 1, color: "#000000", rest: []any{"top", 3}, kind: styles.ErrInvalidStyleType},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := border(tt.width, tt.color, tt.rest...)
			if !errors.Is(err, tt.kind) {
				t.Errorf("border() error = %v, want %v", err, tt.kind)
			}
		})
	}

	got, err := border("2px", "#112233", "top", "dashed")
	if err != nil {
		t.Fatalf("border() error = %v", err)
	}
	if !strings.HasPrefix(string(got), "border-style: dashed;\nborder-color: #112233;\nborder-top-width: 2px;\n") {
		t.Errorf("border() = %q", got)
	}

	if _, err := border(1, "#000000", "top", "solid", "extra"); err == nil {
		t.Error("expected error for too many arguments")
	}
}

func TestBorderWidthArguments(t *testing.T) {
	got, err := borderWidth(3)
	if err != nil {
		t.Fatalf("borderWidth() error = %v", err)
	}
	want := "border-width: 3px;\nhtml.hairlines & {\n    border-width: 1.5px;\n}\n"
	if string(got) != want {
		t.Errorf("borderWidth() = %q, want %q", got, want)
	}
	if _, err := borderWidth(3, false); !errors.Is(err, styles.ErrInvalidPosition) {
		t.Errorf("borderWidth(bool position) error = %v", err)
	}
}

func TestEllipsisArguments(t *testing.T) {
	got, err := ellipsis("10rem", true)
	if err != nil {
		t.Fatalf("ellipsis() error = %v", err)
	}
	if !strings.HasPrefix(string(got), "max-width: 10rem;\n") {
		t.Errorf("ellipsis() = %q", got)
	}

	got, err = ellipsis(100)
	if err != nil {
		t.Fatalf("ellipsis(number) error = %v", err)
	}
	if !strings.HasPrefix(string(got), "width: 100;\n") {
		t.Errorf("ellipsis(number) = %q", got)
	}

	if _, err := ellipsis("", "yes"); !errors.Is(err, styles.ErrInvalidFlagType) {
		t.Errorf("ellipsis(string flag) error = %v", err)
	}
}

func TestPropsArguments(t *testing.T) {
	flags, err := props(map[string]any{"primary": true, "large": 0, "other": true}, []any{"large", "primary"})
	if err != nil {
		t.Fatalf("props() error = %v", err)
	}
	if len(flags) != 1 || flags[0] != "primary" {
		t.Errorf("props() = %v", flags)
	}

	flags, err = props(map[string]bool{"b": true, "a": true}, []string{"a", "b"})
	if err != nil {
		t.Fatalf("props(typed map) error = %v", err)
	}
	if strings.Join(flags, ",") != "a,b" {
		t.Errorf("props(typed map) = %v", flags)
	}

	if _, err := props(map[string]any{}, "primary"); !errors.Is(err, styles.ErrInvalidAllowListType) {
		t.Errorf("props(string allow list) error = %v", err)
	}
	if _, err := props(map[string]any{}, []any{"a", 1}); !errors.Is(err, styles.ErrInvalidAllowListType) {
		t.Errorf("props(mixed allow list) error = %v", err)
	}
	if _, err := props(nil, []string{"a"}); !errors.Is(err, styles.ErrInvalidPropsType) {
		t.Errorf("props(nil) error = %v", err)
	}
	if _, err := props([]string{"a"}, []string{"a"}); !errors.Is(err, styles.ErrInvalidPropsType) {
		t.Errorf("props(slice) error = %v", err)
	}
}

func TestMediaSets(t *testing.T) {
	r := newTestRenderer(t, nil)

	got, err := r.media("hedron", "md", "display: none;")
	if err != nil {
		t.Fatalf("media() error = %v", err)
	}
	want := "@media (min-width: 768px) {\n    display: none;\n}\n"
	if string(got) != want {
		t.Errorf("media() = %q, want %q", got, want)
	}

	if _, err := r.media("bootstrap", "md"); !errors.Is(err, styles.ErrUnknownBreakpoint) {
		t.Errorf("media(unknown set) error = %v", err)
	}
	if _, err := r.media("custom", "md"); !errors.Is(err, styles.ErrUnknownBreakpoint) {
		t.Errorf("media(unknown label) error = %v", err)
	}
}
