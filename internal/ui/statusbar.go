package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// LevelStatus is what the level screen reports in its status bar.
type LevelStatus struct {
	Paused  bool
	Level   bool
	Samples int
	DX, DY  float64
	Err     error
}

// RenderStatusBar renders the bottom status bar of the level screen.
func RenderStatusBar(width int, st LevelStatus) string {
	state := StyleStatusLive.Render("[LIVE]")
	if st.Paused {
		state = StyleStatusPaused.Render("[PAUSED]")
	}
	if st.Level {
		state += " " + StyleStatusLevel.Render("LEVEL")
	}

	info := fmt.Sprintf(" Samples: %d  Offset: %+.1f, %+.1f", st.Samples, st.DX, st.DY)
	content := state + StyleStatusBar.Render(info)
	if st.Err != nil {
		content += "  " + StyleStatusError.Render(st.Err.Error())
	}

	return StyleStatusBar.Width(width).Render(fillLine(content, width-2))
}

// RenderMessageBar renders a single-message bottom bar. A non-empty toast
// replaces the help text.
func RenderMessageBar(width int, help, toast string) string {
	content := StyleHelp.Render(help)
	if toast != "" {
		content = StyleToast.Render(toast)
	}
	return StyleStatusBar.Width(width).Render(fillLine(content, width-2))
}

func fillLine(content string, width int) string {
	gap := width - lipgloss.Width(content)
	if gap < 0 {
		gap = 0
	}
	return content + strings.Repeat(" ", gap)
}
