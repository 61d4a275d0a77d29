package app

import (
	"strings"
	"time"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"levelkit.klederson.com/internal/config"
	"levelkit.klederson.com/internal/convert"
	"levelkit.klederson.com/internal/ui"
)

const invalidNumberToast = "Please enter a valid number"

// ConverterModel is the Bubble Tea model of the unit converter screen.
type ConverterModel struct {
	width  int
	height int

	modes    []string
	selected int
	input    string
	result   string

	toast    string
	toastSeq int
}

// NewConverter creates a ConverterModel with mode preselected when it is
// one of the known modes.
func NewConverter(mode string) ConverterModel {
	m := ConverterModel{modes: convert.Modes()}
	for i, md := range m.modes {
		if md == mode {
			m.selected = i
		}
	}
	return m
}

func (m ConverterModel) Init() tea.Cmd {
	return nil
}

func (m ConverterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case ToastExpiredMsg:
		if msg.Seq == m.toastSeq {
			m.toast = ""
		}
		return m, nil
	}

	return m, nil
}

func (m ConverterModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit

	case "up", "shift+tab":
		if m.selected > 0 {
			m.selected--
		}

	case "down", "tab":
		if m.selected < len(m.modes)-1 {
			m.selected++
		}

	case "home":
		m.selected = 0

	case "end":
		m.selected = len(m.modes) - 1

	case "enter":
		return m.convert()

	case "backspace":
		if r := []rune(m.input); len(r) > 0 {
			m.input = string(r[:len(r)-1])
		}

	case "ctrl+u":
		m.input = ""

	default:
		if msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace {
			for _, r := range msg.Runes {
				if unicode.IsPrint(r) {
					m.input += string(r)
				}
			}
		}
	}

	return m, nil
}

// convert validates the input and dispatches it. Invalid input never
// reaches convert.Convert.
func (m ConverterModel) convert() (tea.Model, tea.Cmd) {
	value, err := convert.ParseValue(m.input)
	if err != nil {
		m.toastSeq++
		m.toast = invalidNumberToast
		return m, toastCmd(m.toastSeq)
	}
	m.toast = ""
	m.result = convert.FormatResult(convert.Convert(m.Mode(), value))
	return m, nil
}

// Mode returns the selected conversion mode.
func (m ConverterModel) Mode() string {
	return m.modes[m.selected]
}

// Result returns the last successful result, or "" if there is none.
func (m ConverterModel) Result() string {
	return m.result
}

func (m ConverterModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing unit converter..."
	}

	bodyH := m.height - 2
	if bodyH < 16 {
		bodyH = 16
	}

	menuBar := ui.RenderMenuBar(m.width, ui.ConverterKeys, "")
	panel := ui.RenderConverter(m.width, bodyH, ui.ConverterView{
		Modes:    m.modes,
		Selected: m.selected,
		Input:    m.input,
		Result:   m.result,
	})
	help := strings.Join([]string{"type a number", "backspace edits", "ctrl+u clears"}, " · ")
	statusBar := ui.RenderMessageBar(m.width, help, m.toast)

	return ui.ComposeLayout(menuBar, panel, statusBar)
}

func toastCmd(seq int) tea.Cmd {
	return tea.Tick(config.ToastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{Seq: seq}
	})
}
