package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_Table(t *testing.T) {
	tests := []struct {
		mode  string
		value float64
		want  float64
	}{
		{MeterToInch, 1, 39.3701},
		{InchToMeter, 39.3701, 1},
		{CelsiusToFahrenheit, 0, 32},
		{CelsiusToFahrenheit, 100, 212},
		{FahrenheitToCelsius, 32, 0},
		{FahrenheitToCelsius, -40, -40},
		{CentimeterToInch, 2.54, 2.54 * 0.393701},
		{InchToCentimeter, 1, 1 / 0.393701},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			assert.InDelta(t, tt.want, Convert(tt.mode, tt.value), 1e-9)
		})
	}
}

func TestConvert_InchToCentimeterIsAbout254(t *testing.T) {
	assert.InDelta(t, 2.54, Convert(InchToCentimeter, 1), 1e-5)
}

func TestConvert_UnknownModeIsIdentity(t *testing.T) {
	assert.Equal(t, 5.0, Convert("Kelvin to Rankine", 5.0))
	assert.Equal(t, -0.125, Convert("", -0.125))
	assert.Equal(t, 7.0, Convert("meter to inch", 7.0))
}

func TestConvert_RoundTrips(t *testing.T) {
	pairs := [][2]string{
		{MeterToInch, InchToMeter},
		{CelsiusToFahrenheit, FahrenheitToCelsius},
		{CentimeterToInch, InchToCentimeter},
	}
	for _, pair := range pairs {
		for _, v := range []float64{-273.15, -1, 0, 0.001, 1, 42.5, 1e6} {
			there := Convert(pair[0], v)
			back := Convert(pair[1], there)
			assert.InDelta(t, v, back, 1e-9*math.Max(1, math.Abs(v)), "%s then %s of %v", pair[0], pair[1], v)
		}
	}
}

func TestModes(t *testing.T) {
	m := Modes()
	require.Len(t, m, 6)
	assert.Equal(t, MeterToInch, m[0])
	assert.Equal(t, InchToCentimeter, m[5])

	m[0] = "mutated"
	assert.Equal(t, MeterToInch, Modes()[0])
}

func TestKnown(t *testing.T) {
	assert.True(t, Known(CelsiusToFahrenheit))
	assert.False(t, Known("Kelvin to Rankine"))
	assert.False(t, Known("celsius to fahrenheit"))
}

func TestParseValue(t *testing.T) {
	v, err := ParseValue(" 12.5 ")
	require.NoError(t, err)
	assert.Equal(t, 12.5, v)

	v, err = ParseValue("-3e2")
	require.NoError(t, err)
	assert.Equal(t, -300.0, v)

	for _, bad := range []string{"", "   ", "abc", "1,5", "NaN", "Inf", "-infinity", "1e999"} {
		_, err := ParseValue(bad)
		assert.ErrorIs(t, err, ErrInvalidNumber, "input %q", bad)
	}
}

func TestFormatResult(t *testing.T) {
	assert.Equal(t, "32", FormatResult(32))
	assert.Equal(t, "39.3701", FormatResult(Convert(MeterToInch, 1)))
	assert.Equal(t, "-0.5", FormatResult(-0.5))
}
