package sensor

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"levelkit.klederson.com/internal/tilt"
)

var ErrMalformedLine = errors.New("malformed reading")

// ParseLine parses "x,y[,z]" text. Commas, semicolons, spaces and tabs all
// separate fields. The third axis is ignored.
func ParseLine(line string) (tilt.Reading, error) {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return tilt.Reading{}, fmt.Errorf("%w: empty", ErrMalformedLine)
	}

	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	if len(fields) < 2 {
		return tilt.Reading{}, fmt.Errorf("%w: want at least 2 fields, got %d", ErrMalformedLine, len(fields))
	}

	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return tilt.Reading{}, fmt.Errorf("%w: x: %v", ErrMalformedLine, err)
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return tilt.Reading{}, fmt.Errorf("%w: y: %v", ErrMalformedLine, err)
	}
	return tilt.Reading{X: x, Y: y}, nil
}

// DecodeFloat32LE decodes a notification payload of two or three
// little-endian float32 axes.
func DecodeFloat32LE(buf []byte) (tilt.Reading, error) {
	if len(buf) < 8 {
		return tilt.Reading{}, fmt.Errorf("%w: payload of %d bytes", ErrMalformedLine, len(buf))
	}
	x := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:4]))
	y := math.Float32frombits(binary.LittleEndian.Uint32(buf[4:8]))
	return tilt.Reading{X: float64(x), Y: float64(y)}, nil
}
