package sensor

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelkit.klederson.com/internal/tilt"
)

type chanSender chan tea.Msg

func (c chanSender) Send(msg tea.Msg) { c <- msg }

func recv(t *testing.T, ch chanSender) tea.Msg {
	t.Helper()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return nil
	}
}

func TestLineSource_DeliversReadingsThenClosed(t *testing.T) {
	ch := make(chanSender, 8)
	src := NewLineSource("test", strings.NewReader("1,2\nnot a reading\n3 4 9.8\n"), nil)
	require.NoError(t, src.Start(ch))

	msg := recv(t, ch)
	require.IsType(t, ReadingMsg{}, msg)
	assert.Equal(t, tilt.Reading{X: 1, Y: 2}, msg.(ReadingMsg).Reading)

	msg = recv(t, ch)
	require.IsType(t, ReadingMsg{}, msg)
	assert.Equal(t, tilt.Reading{X: 3, Y: 4}, msg.(ReadingMsg).Reading)

	msg = recv(t, ch)
	require.IsType(t, ErrorMsg{}, msg)
	assert.ErrorIs(t, msg.(ErrorMsg).Err, ErrSourceClosed)
}

type countingCloser struct{ n int }

func (c *countingCloser) Close() error {
	c.n++
	return nil
}

func TestLineSource_StopClosesOnce(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	closer := &countingCloser{}
	src := NewLineSource("pipe", pr, closer)
	require.NoError(t, src.Start(make(chanSender, 1)))

	src.Stop()
	src.Stop()
	assert.Equal(t, 1, closer.n)
	assert.Equal(t, "pipe", src.Name())
}

func TestLineSource_NilReader(t *testing.T) {
	src := NewLineSource("empty", nil, nil)
	assert.Error(t, src.Start(make(chanSender, 1)))
}

func TestReadOne(t *testing.T) {
	got, err := ReadOne(strings.NewReader("# x,y,z\n\n0.5,-0.5,9.7\n1,1\n"))
	require.NoError(t, err)
	assert.Equal(t, tilt.Reading{X: 0.5, Y: -0.5}, got)

	_, err = ReadOne(strings.NewReader("garbage\n"))
	assert.ErrorIs(t, err, ErrSourceClosed)
}
