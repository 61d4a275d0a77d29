package sensor

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelkit.klederson.com/internal/config"
)

func TestNew(t *testing.T) {
	src, err := New(config.Source{Kind: "mock"}, nil)
	require.NoError(t, err)
	assert.IsType(t, &MockSource{}, src)

	src, err = New(config.Source{Kind: "stdin"}, strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, "stdin", src.Name())

	_, err = New(config.Source{Kind: "carrier-pigeon"}, nil)
	assert.ErrorIs(t, err, ErrUnknownSource)

	_, err = New(config.Source{Kind: "serial"}, nil)
	assert.Error(t, err)
}

func TestNewBLESource_Validation(t *testing.T) {
	_, err := NewBLESource(config.BLE{})
	assert.Error(t, err)

	_, err = NewBLESource(config.BLE{Name: "tilt", Service: "nope", Characteristic: "nope"})
	assert.Error(t, err)
}

func TestMockSource_SampleStaysFiniteAndVaries(t *testing.T) {
	src := newMockSource(rand.New(rand.NewSource(1)))

	var sawSaturation bool
	prev := src.sample(0)
	changed := false
	for i := 1; i < 1200; i++ {
		r := src.sample(float64(i) * 0.05)
		require.False(t, math.IsNaN(r.X) || math.IsNaN(r.Y))
		if math.Abs(r.X) > config.Gravity {
			sawSaturation = true
		}
		if r != prev {
			changed = true
		}
		prev = r
	}
	assert.True(t, changed)
	assert.True(t, sawSaturation, "mock should occasionally tip past 1g")
}

func TestMockSource_StartStop(t *testing.T) {
	ch := make(chanSender, 4)
	src := newMockSource(rand.New(rand.NewSource(2)))
	require.NoError(t, src.Start(ch))
	msg := recv(t, ch)
	src.Stop()
	assert.IsType(t, ReadingMsg{}, msg)
}
