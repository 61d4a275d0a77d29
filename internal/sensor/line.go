package sensor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"levelkit.klederson.com/internal/tilt"
)

// LineSource reads one text reading per line from r.
type LineSource struct {
	name    string
	r       io.Reader
	closer  io.Closer
	program Sender
	running atomic.Bool
	once    sync.Once
}

// NewLineSource wraps r. closer, if not nil, is closed by Stop.
func NewLineSource(name string, r io.Reader, closer io.Closer) *LineSource {
	return &LineSource{name: name, r: r, closer: closer}
}

func (s *LineSource) Name() string { return s.name }

// Start begins reading in a goroutine.
func (s *LineSource) Start(p Sender) error {
	if s.r == nil {
		return fmt.Errorf("%s: no input", s.name)
	}
	s.program = p
	s.running.Store(true)
	go s.loop()
	return nil
}

func (s *LineSource) loop() {
	sc := bufio.NewScanner(s.r)
	for sc.Scan() {
		if !s.running.Load() {
			return
		}
		reading, err := ParseLine(sc.Text())
		if err != nil {
			log.Printf("%s: skipping line: %v", s.name, err)
			continue
		}
		s.program.Send(ReadingMsg{Reading: reading, At: time.Now()})
	}
	if !s.running.Load() {
		return
	}

	err := sc.Err()
	if err == nil {
		err = ErrSourceClosed
	}
	s.program.Send(ErrorMsg{Err: fmt.Errorf("%s: %w", s.name, err)})
}

// Stop halts the reader and closes the underlying port, if any.
func (s *LineSource) Stop() {
	s.running.Store(false)
	s.once.Do(func() {
		if s.closer != nil {
			_ = s.closer.Close()
		}
	})
}

// ReadOne returns the first well-formed reading in r.
func ReadOne(r io.Reader) (tilt.Reading, error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		reading, err := ParseLine(sc.Text())
		if errors.Is(err, ErrMalformedLine) {
			continue
		}
		return reading, err
	}
	if err := sc.Err(); err != nil {
		return tilt.Reading{}, err
	}
	return tilt.Reading{}, ErrSourceClosed
}
