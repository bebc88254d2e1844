package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumber_MarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{"zero", 0, "0.0"},
		{"negative zero", math.Copysign(0, -1), "-0.0"},
		{"integral", 100, "100.0"},
		{"negative integral", -100, "-100.0"},
		{"four decimals", 12.3456, "12.3456"},
		{"shortest repr", 0.1, "0.1"},
		{"small but fixed", 0.0001, "0.0001"},
		{"small exponent", 0.00001, "1e-05"},
		{"small exponent with digits", 1.234e-7, "1.234e-07"},
		{"large fixed", 1234567890123456, "1234567890123456.0"},
		{"large exponent", 1e16, "1e+16"},
		{"large exponent with digits", 1.5e20, "1.5e+20"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Number(tt.input).MarshalJSON()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, string(data))
		})
	}
}

func TestNumber_MarshalJSON_NonFinite(t *testing.T) {
	for _, v := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Number(v).MarshalJSON()
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}

func TestNumber_RoundTripsThroughEncodingJSON(t *testing.T) {
	data, err := json.Marshal(Point{ID: 1, X: -100, Y: 0.5, Prompt: "a cat"})
	require.NoError(t, err)
	assert.Equal(t, `{"id":1,"x":-100.0,"y":0.5,"prompt":"a cat"}`, string(data))

	var decoded Point
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, Number(-100), decoded.X)
	assert.Equal(t, Number(0.5), decoded.Y)
}
