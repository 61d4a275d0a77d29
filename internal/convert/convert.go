// Package convert implements the fixed table of unit conversions.
package convert

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// Mode names one conversion formula.
type Mode = string

const (
	MeterToInch         Mode = "Meter to Inch"
	InchToMeter         Mode = "Inch to Meter"
	CelsiusToFahrenheit Mode = "Celsius to Fahrenheit"
	FahrenheitToCelsius Mode = "Fahrenheit to Celsius"
	CentimeterToInch    Mode = "Centimeter to Inch"
	InchToCentimeter    Mode = "Inch to Centimeter"
)

const (
	inchesPerMeter      = 39.3701
	inchesPerCentimeter = 0.393701
)

// ErrInvalidNumber is returned by ParseValue for text that is not a finite number.
var ErrInvalidNumber = errors.New("please enter a valid number")

var modes = []Mode{
	MeterToInch,
	InchToMeter,
	CelsiusToFahrenheit,
	FahrenheitToCelsius,
	CentimeterToInch,
	InchToCentimeter,
}

// Modes returns the conversion modes in display order.
func Modes() []Mode {
	out := make([]Mode, len(modes))
	copy(out, modes)
	return out
}

// Known reports whether mode is one of the conversion modes.
func Known(mode string) bool {
	for _, m := range modes {
		if m == mode {
			return true
		}
	}
	return false
}

// Convert applies the formula for mode to value. An unrecognized mode
// returns value unchanged.
func Convert(mode string, value float64) float64 {
	switch mode {
	case MeterToInch:
		return value * inchesPerMeter
	case InchToMeter:
		return value / inchesPerMeter
	case CelsiusToFahrenheit:
		return value*9/5 + 32
	case FahrenheitToCelsius:
		return (value - 32) * 5 / 9
	case CentimeterToInch:
		return value * inchesPerCentimeter
	case InchToCentimeter:
		return value / inchesPerCentimeter
	default:
		return value
	}
}

// ParseValue parses user input into a finite float.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidNumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrInvalidNumber
	}
	return v, nil
}

// FormatResult renders a result with the fewest digits that round-trip.
func FormatResult(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
