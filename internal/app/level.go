package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"levelkit.klederson.com/internal/config"
	"levelkit.klederson.com/internal/level"
	"levelkit.klederson.com/internal/sensor"
	"levelkit.klederson.com/internal/tilt"
	"levelkit.klederson.com/internal/ui"
)

// shared holds state shared between the Bubble Tea model copies and main.go.
type shared struct {
	source sensor.Source
}

// LevelModel is the Bubble Tea model of the spirit level screen.
type LevelModel struct {
	width  int
	height int

	paused bool
	stale  bool

	params tilt.Params
	geom   tilt.Geometry

	// Latest reading only; each sample replaces the previous one.
	reading tilt.Reading
	offset  tilt.Offset
	lastAt  time.Time
	samples int
	err     error

	shared *shared
}

// NewLevel creates a LevelModel fed by src.
func NewLevel(src sensor.Source, p tilt.Params, g tilt.Geometry) LevelModel {
	return LevelModel{
		stale:  true,
		params: p,
		geom:   g,
		shared: &shared{source: src},
	}
}

func (m LevelModel) Init() tea.Cmd {
	return staleCmd()
}

func (m LevelModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case sensor.ReadingMsg:
		if m.paused {
			return m, nil
		}
		m.reading = msg.Reading
		m.offset = tilt.Transform(msg.Reading, m.params)
		m.lastAt = msg.At
		m.samples++
		m.stale = false
		m.err = nil
		return m, nil

	case sensor.ErrorMsg:
		m.err = msg.Err
		return m, nil

	case TickMsg:
		m.stale = m.lastAt.IsZero() || time.Time(msg).Sub(m.lastAt) > config.StaleAfter
		return m, staleCmd()
	}

	return m, nil
}

func (m LevelModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "Q", "ctrl+c", "esc":
		m.stopSource()
		return m, tea.Quit

	case "s", "S":
		m.paused = false

	case "p", "P", " ":
		m.paused = !m.paused
	}

	return m, nil
}

func (m LevelModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing spirit level..."
	}

	menuH := 1
	statusH := 1
	bodyH := m.height - menuH - statusH
	if bodyH < 8 {
		bodyH = 8
	}

	menuBar := ui.RenderMenuBar(m.width, ui.LevelKeys, m.sourceName())

	// border (2) + title (1) + readout (1)
	innerW := m.width - 4
	innerH := bodyH - 4
	if innerW < 10 {
		innerW = 10
	}
	if innerH < 5 {
		innerH = 5
	}
	scene := level.Render(innerW, innerH-1, m.offset, m.geom)
	readout := level.RenderReadout(m.reading, m.offset, innerW)
	panel := ui.RenderPanel(m.width, bodyH, "SPIRIT LEVEL", scene+"\n"+readout)

	st := ui.LevelStatus{
		Paused:  m.paused,
		Level:   m.Level(),
		Samples: m.samples,
		DX:      m.offset.DX,
		DY:      m.offset.DY,
		Err:     m.err,
	}
	if m.stale && m.err == nil {
		st.Err = errNoData
	}
	statusBar := ui.RenderStatusBar(m.width, st)

	return ui.ComposeLayout(menuBar, panel, statusBar)
}

// Offset returns the bubble offset computed from the latest reading.
func (m LevelModel) Offset() tilt.Offset {
	return m.offset
}

// Level reports whether the latest reading puts the bubble inside the
// level zone. It is false while no fresh reading is available.
func (m LevelModel) Level() bool {
	return !m.stale && m.geom.Zone.Contains(m.offset)
}

// StartSource starts the reading source. Must be called before p.Run().
func (m *LevelModel) StartSource(p *tea.Program) error {
	return m.shared.source.Start(p)
}

func (m LevelModel) stopSource() {
	if m.shared.source != nil {
		m.shared.source.Stop()
	}
}

func (m LevelModel) sourceName() string {
	if m.shared.source == nil {
		return ""
	}
	return m.shared.source.Name()
}

func staleCmd() tea.Cmd {
	return tea.Tick(config.StaleInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
