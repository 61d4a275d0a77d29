// Package sensor delivers accelerometer readings to the running program.
package sensor

import (
	"errors"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"levelkit.klederson.com/internal/config"
	"levelkit.klederson.com/internal/tilt"
)

var (
	ErrUnknownSource = errors.New("unknown source kind")
	ErrSourceClosed  = errors.New("source closed")
)

// ReadingMsg is sent via tea.Program.Send for every accepted sample.
type ReadingMsg struct {
	Reading tilt.Reading
	At      time.Time
}

// ErrorMsg reports a source failure after Start returned.
type ErrorMsg struct {
	Err error
}

// Sender is the part of *tea.Program a source needs.
type Sender interface {
	Send(msg tea.Msg)
}

// Source produces readings until stopped.
type Source interface {
	// Start begins delivering readings in a goroutine.
	Start(p Sender) error
	// Stop halts delivery. It is safe to call more than once.
	Stop()
	// Name is a short label for the menu bar.
	Name() string
}

// New builds the source selected by cfg.Kind. stdin is used by the
// "stdin" kind.
func New(cfg config.Source, stdin io.Reader) (Source, error) {
	switch cfg.Kind {
	case "mock", "demo":
		return NewMockSource(), nil
	case "stdin":
		return NewLineSource("stdin", stdin, nil), nil
	case "serial":
		return OpenSerial(cfg.Serial)
	case "ble":
		return NewBLESource(cfg.BLE)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, cfg.Kind)
	}
}
