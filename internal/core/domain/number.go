package domain

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// Number is a float64 with a fixed JSON representation.
//
// Integral values keep a decimal point ("-100.0", "0.0"). Magnitudes below
// 1e-4 or at or above 1e16 use shortest exponent form ("1e-05", "1.5e+16").
// Everything else uses the shortest decimal form that round-trips.
type Number float64

// MarshalJSON implements json.Marshaler.
func (n Number) MarshalJSON() ([]byte, error) {
	f := float64(n)
	if !isFinite(f) {
		return nil, fmt.Errorf("%w: cannot encode %v as JSON", ErrInvalidInput, f)
	}
	return AppendNumber(nil, f), nil
}

// AppendNumber appends the JSON form of f to b.
func AppendNumber(b []byte, f float64) []byte {
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.AppendFloat(b, f, 'e', -1, 64)
	}
	start := len(b)
	b = strconv.AppendFloat(b, f, 'f', -1, 64)
	if !bytes.ContainsRune(b[start:], '.') {
		b = append(b, '.', '0')
	}
	return b
}
