package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"levelkit.klederson.com/internal/config"
)

// Key is one menu entry: the highlighted key and the rest of its label.
type Key struct {
	Key, Label string
}

// LevelKeys are the menu entries of the level screen.
var LevelKeys = []Key{
	{"S", "tart"},
	{"P", "ause"},
	{"Q", "uit"},
}

// ConverterKeys are the menu entries of the converter screen.
var ConverterKeys = []Key{
	{"↑↓", " mode"},
	{"Enter", " convert"},
	{"Esc", " quit"},
}

// RenderMenuBar renders the top menu bar. source is shown on the right.
func RenderMenuBar(width int, keys []Key, source string) string {
	title := fmt.Sprintf(" %s v%s ", config.AppName, config.AppVersion)

	menu := ""
	for _, k := range keys {
		menu += "  " + StyleMenuKey.Render("["+k.Key+"]") + StyleMenuLabel.Render(k.Label)
	}

	left := StyleMenuKey.Render(title) + menu
	right := ""
	if source != "" {
		right = StyleMenuLabel.Render(fmt.Sprintf("Source: %s", source)) + " "
	}

	gap := width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 0 {
		gap = 0
	}

	return StyleMenuBar.Width(width).Render(left + strings.Repeat(" ", gap) + right)
}
