package styles

import (
	"errors"
	"math"
	"testing"
)

func TestParsePixelLength_Strings(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"12", 12},
		{"12px", 12},
		{"12PX", 12},
		{"12Px", 12},
		{"-3px", -3},
		{"1.5px", 1.5},
		{".5", 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePixelLength(tt.in)
			if err != nil {
				t.Fatalf("ParsePixelLength(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParsePixelLength(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParsePixelLength_InvalidStrings(t *testing.T) {
	for _, in := range []string{"", "px", "12em", "12 px", " 12px", "+12", "abc", "1.2.3", ".", "12pxx", "--1"} {
		t.Run(in, func(t *testing.T) {
			_, err := ParsePixelLength(in)
			if !errors.Is(err, ErrInvalidLengthFormat) {
				t.Errorf("ParsePixelLength(%q) error = %v, want InvalidLengthFormat", in, err)
			}
		})
	}
}

func TestParsePixelLength_Numbers(t *testing.T) {
	if got, err := ParsePixelLength(42); err != nil || got != 42 {
		t.Errorf("ParsePixelLength(42) = %v, %v", got, err)
	}
	if got, err := ParsePixelLength(uint8(7)); err != nil || got != 7 {
		t.Errorf("ParsePixelLength(uint8(7)) = %v, %v", got, err)
	}
	if got, err := ParsePixelLength(float32(0.5)); err != nil || got != 0.5 {
		t.Errorf("ParsePixelLength(float32(0.5)) = %v, %v", got, err)
	}
	if got, err := ParsePixelLength(-2.25); err != nil || got != -2.25 {
		t.Errorf("ParsePixelLength(-2.25) = %v, %v", got, err)
	}
}

func TestParsePixelLength_NonFinite(t *testing.T) {
	for _, in := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := ParsePixelLength(in); !errors.Is(err, ErrInvalidLengthFormat) {
			t.Errorf("ParsePixelLength(%v) error = %v, want InvalidLengthFormat", in, err)
		}
	}
}

func TestPixelsToRootRelative(t *testing.T) {
	tests := []struct {
		name string
		got  func() (string, error)
		want string
	}{
		{"root size", func() (string, error) { return PixelsToRootRelative(75) }, "1.000000rem"},
		{"zero", func() (string, error) { return PixelsToRootRelative(0) }, "0.000000rem"},
		{"string px", func() (string, error) { return PixelsToRootRelative("150px") }, "2.000000rem"},
		{"bare string", func() (string, error) { return PixelsToRootRelative("30") }, "0.400000rem"},
		{"rounding", func() (string, error) { return PixelsToRootRelative(1) }, "0.013333rem"},
		{"rounding up", func() (string, error) { return PixelsToRootRelative(2) }, "0.026667rem"},
		{"negative", func() (string, error) { return PixelsToRootRelative("-15px") }, "-0.200000rem"},
		{"float", func() (string, error) { return PixelsToRootRelative(37.5) }, "0.500000rem"},
		{"tie rounds up", func() (string, error) { return PixelsToRootRelative(0.5859375) }, "0.007813rem"},
		{"tie rounds up px", func() (string, error) { return PixelsToRootRelative("0.5859375px") }, "0.007813rem"},
		{"negative tie", func() (string, error) { return PixelsToRootRelative(-0.5859375) }, "-0.007813rem"},
		{"negative zero", func() (string, error) { return PixelsToRootRelative(math.Copysign(0, -1)) }, "0.000000rem"},
		{"negative zero string", func() (string, error) { return PixelsToRootRelative("-0") }, "0.000000rem"},
		{"negative zero px", func() (string, error) { return PixelsToRootRelative("-0px") }, "0.000000rem"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.got()
			if err != nil {
				t.Fatalf("PixelsToRootRelative() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("PixelsToRootRelative() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPixelsToRootRelative_SuffixInvariance(t *testing.T) {
	for _, n := range []int{0, 1, 7, 16, 75, 320, 1200, -8} {
		bare, err := PixelsToRootRelative(n)
		if err != nil {
			t.Fatalf("PixelsToRootRelative(%d) error = %v", n, err)
		}
		withUnit, err := PixelsToRootRelative(formatNumber(float64(n)) + "px")
		if err != nil {
			t.Fatalf("PixelsToRootRelative(%dpx) error = %v", n, err)
		}
		if bare != withUnit {
			t.Errorf("PixelsToRootRelative(%d) = %q, with px suffix = %q", n, bare, withUnit)
		}
	}
}

func TestPixelsToRootRelative_Invalid(t *testing.T) {
	got, err := PixelsToRootRelative("1rem")
	if err == nil {
		t.Fatalf("PixelsToRootRelative(1rem) = %q, want error", got)
	}
	if kind, ok := KindOf(err); !ok || kind != ErrorKindInvalidLengthFormat {
		t.Errorf("KindOf() = %v, %v, want InvalidLengthFormat", kind, ok)
	}
}

func TestToFixed(t *testing.T) {
	tests := []struct {
		in     float64
		places int32
		want   string
	}{
		{0.0078125, 6, "0.007813"},
		{0.0000005, 6, "0.000000"}, // stored slightly below the tie
		{1.005, 2, "1.00"},
		{2.5, 0, "3"},
		{1200, 6, "1200.000000"},
		{-0.0078125, 6, "-0.007813"},
		{1.0 / 3, 6, "0.333333"},
	}
	for _, tt := range tests {
		if got := toFixed(tt.in, tt.places); got != tt.want {
			t.Errorf("toFixed(%v, %d) = %q, want %q", tt.in, tt.places, got, tt.want)
		}
	}
}

func TestParsePixelLength_NegativeZero(t *testing.T) {
	for _, in := range []string{"-0", "-0px", "-0.0PX"} {
		px, err := ParsePixelLength(in)
		if err != nil {
			t.Fatalf("ParsePixelLength(%q) error = %v", in, err)
		}
		if math.Signbit(px) {
			t.Errorf("ParsePixelLength(%q) = -0, want 0", in)
		}
	}
	if px, _ := ParsePixelLength(math.Copysign(0, -1)); math.Signbit(px) {
		t.Error("ParsePixelLength(-0.0) = -0, want 0")
	}
}
