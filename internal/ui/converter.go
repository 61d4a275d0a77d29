package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConverterView is the state the converter form draws.
type ConverterView struct {
	Modes    []string
	Selected int
	Input    string
	Result   string // empty until the first successful conversion
}

// RenderConverter renders the mode list, the input field and the result.
func RenderConverter(width, height int, v ConverterView) string {
	innerW := width - 4
	if innerW < 20 {
		innerW = 20
	}

	lines := []string{StyleHelp.Render("Conversion mode"), ""}
	for i, mode := range v.Modes {
		if i == v.Selected {
			lines = append(lines, StyleModeSelected.Render(" > "+mode+" "))
		} else {
			lines = append(lines, StyleModeItem.Render("   "+mode))
		}
	}
	lines = append(lines, "", StyleHelp.Render("Value"))

	input := v.Input + "_"
	lines = append(lines, StyleInput.Width(min(innerW, 32)).Render(input), "")

	result := "-"
	if v.Result != "" {
		result = v.Result
	}
	lines = append(lines, StyleHelp.Render("Result  ")+StyleResult.Render(result))

	body := strings.Join(lines, "\n")
	return RenderPanel(width, height, "UNIT CONVERTER", lipgloss.NewStyle().Padding(0, 1).Render(body))
}
