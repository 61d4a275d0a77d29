package sensor

import (
	"context"
	"math"
	"math/rand"
	"time"

	"levelkit.klederson.com/internal/config"
	"levelkit.klederson.com/internal/tilt"
)

// MockSource generates a wobbling device for demo mode.
type MockSource struct {
	program Sender
	rng     *rand.Rand
	cancel  context.CancelFunc

	phaseX, phaseY float64
	ampX, ampY     float64
}

// NewMockSource creates a mock accelerometer with random phase and amplitude.
func NewMockSource() *MockSource {
	return newMockSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newMockSource(rng *rand.Rand) *MockSource {
	return &MockSource{
		rng:    rng,
		phaseX: rng.Float64() * 2 * math.Pi,
		phaseY: rng.Float64() * 2 * math.Pi,
		ampX:   2 + rng.Float64()*4, // 2-6 m/s²
		ampY:   2 + rng.Float64()*4,
	}
}

func (s *MockSource) Name() string { return "demo" }

// Start begins the mock source.
func (s *MockSource) Start(p Sender) error {
	s.program = p

	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel

	go s.loop(ctx)
	return nil
}

func (s *MockSource) loop(ctx context.Context) {
	ticker := time.NewTicker(config.MockInterval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.program.Send(ReadingMsg{
				Reading: s.sample(now.Sub(start).Seconds()),
				At:      now,
			})
		}
	}
}

// sample returns the reading at t seconds. Every 20 s the device is
// tipped past ±g for a couple of seconds so the bubble pins to the rim.
func (s *MockSource) sample(t float64) tilt.Reading {
	x := s.ampX*math.Sin(t*0.6+s.phaseX) + (s.rng.Float64()-0.5)*0.2
	y := s.ampY*math.Cos(t*0.45+s.phaseY) + (s.rng.Float64()-0.5)*0.2

	if math.Mod(t, 20) > 17 {
		x += math.Copysign(config.Gravity, x)
	}
	return tilt.Reading{X: x, Y: y}
}

// Stop halts the mock source.
func (s *MockSource) Stop() {
	if s.cancel != nil {
		s.cancel()
	}
}
