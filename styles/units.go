package styles

import (
	"math"
	"math/big"
	"regexp"
	"strconv"

	"github.com/shopspring/decimal"
)

// RootFontSize is the html font size (px) rem values are relative to.
const RootFontSize = 75

// Length is anything a pixel length may be supplied as: a plain number or a
// string like "12", "12px", "-1.5PX".
type Length interface {
	int | int8 | int16 | int32 | int64 |
		uint | uint8 | uint16 | uint32 | uint64 |
		float32 | float64 | string
}

var pxPattern = regexp.MustCompile(`(?i)^(-?[\d.]+)(?:px)?$`)

// ParsePixelLength returns the number of pixels value stands for.
func ParsePixelLength[L Length](value L) (float64, error) {
	var px float64
	switch v := any(value).(type) {
	case string:
		m := pxPattern.FindStringSubmatch(v)
		if m == nil {
			return 0, NewError(ErrorKindInvalidLengthFormat, "%q is not a px value", v)
		}
		f, err := strconv.ParseFloat(m[1], 64)
		if err != nil {
			return 0, NewError(ErrorKindInvalidLengthFormat, "%q is not a px value", v)
		}
		px = f
	case int:
		px = float64(v)
	case int8:
		px = float64(v)
	case int16:
		px = float64(v)
	case int32:
		px = float64(v)
	case int64:
		px = float64(v)
	case uint:
		px = float64(v)
	case uint8:
		px = float64(v)
	case uint16:
		px = float64(v)
	case uint32:
		px = float64(v)
	case uint64:
		px = float64(v)
	case float32:
		px = float64(v)
	case float64:
		px = v
	}
	if math.IsNaN(px) || math.IsInf(px, 0) {
		return 0, NewError(ErrorKindInvalidLengthFormat, "px value must be finite, got %v", value)
	}
	if px == 0 {
		// "-0" is zero
		px = 0
	}
	return px, nil
}

// PixelsToRootRelative converts a pixel length to rem with exactly six
// decimals, e.g. 75 -> "1.000000rem".
func PixelsToRootRelative[L Length](value L) (string, error) {
	px, err := ParsePixelLength(value)
	if err != nil {
		return "", err
	}
	return toFixed(px/RootFontSize, 6) + "rem", nil
}

// toFixed formats f with given number of decimals rounding half away from
// zero on the exact binary value, so 0.0078125 becomes 0.007813 while
// 1.005 (stored as 1.00499...) stays 1.00 at two places.
func toFixed(f float64, places int32) string {
	sign := ""
	if f < 0 {
		sign, f = "-", -f
	}
	return sign + exactDecimal(f).StringFixed(places)
}

// exactDecimal expands finite non-negative f without loss: f = m*2^e and for
// negative e that is m*5^-e / 10^-e.
func exactDecimal(f float64) decimal.Decimal {
	frac, exp := math.Frexp(f)
	mant := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53
	if exp >= 0 {
		return decimal.NewFromBigInt(mant.Lsh(mant, uint(exp)), 0)
	}
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(mant.Mul(mant, five), int32(exp))
}

// formatNumber renders n the shortest way, the way it would be printed in
// CSS source: 4, 1.5, 0.25.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
