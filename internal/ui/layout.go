package ui

import "github.com/charmbracelet/lipgloss"

// ComposeLayout stacks the menu bar, the body and the status bar.
func ComposeLayout(menuBar, body, statusBar string) string {
	return lipgloss.JoinVertical(lipgloss.Left, menuBar, body, statusBar)
}

// RenderPanel wraps content with a styled border and a title line.
func RenderPanel(width, height int, title, content string) string {
	if title != "" {
		content = StylePanelTitle.Render(title) + "\n" + content
	}
	return StylePanelBorder.Width(width - 2).Height(height - 2).Render(content)
}
