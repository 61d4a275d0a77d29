package app

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"levelkit.klederson.com/internal/convert"
)

func typeText(t *testing.T, m ConverterModel, s string) ConverterModel {
	t.Helper()
	for _, r := range s {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}).(ConverterModel)
	}
	return m
}

func TestConverter_ConvertsSelectedMode(t *testing.T) {
	m := NewConverter(convert.CelsiusToFahrenheit)
	require.Equal(t, convert.CelsiusToFahrenheit, m.Mode())

	m = typeText(t, m, "100")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}).(ConverterModel)
	assert.Equal(t, "212", m.Result())
	assert.Empty(t, m.toast)
}

func TestConverter_InvalidInputShowsToast(t *testing.T) {
	m := NewConverter(convert.MeterToInch)
	m = typeText(t, m, "abc")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(ConverterModel)
	assert.Equal(t, invalidNumberToast, m.toast)
	assert.Empty(t, m.Result())
	assert.NotNil(t, cmd)

	m = update(t, m, ToastExpiredMsg{Seq: m.toastSeq}).(ConverterModel)
	assert.Empty(t, m.toast)
}

func TestConverter_StaleToastExpiryIgnored(t *testing.T) {
	m := NewConverter("")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}).(ConverterModel)
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}).(ConverterModel)
	m = update(t, m, ToastExpiredMsg{Seq: 1}).(ConverterModel)
	assert.Equal(t, invalidNumberToast, m.toast)
}

func TestConverter_Navigation(t *testing.T) {
	m := NewConverter("unknown")
	assert.Equal(t, convert.MeterToInch, m.Mode())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp}).(ConverterModel)
	assert.Equal(t, convert.MeterToInch, m.Mode())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown}).(ConverterModel)
	assert.Equal(t, convert.InchToMeter, m.Mode())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnd}).(ConverterModel)
	assert.Equal(t, convert.InchToCentimeter, m.Mode())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown}).(ConverterModel)
	assert.Equal(t, convert.InchToCentimeter, m.Mode())

	m = update(t, m, tea.KeyMsg{Type: tea.KeyHome}).(ConverterModel)
	assert.Equal(t, convert.MeterToInch, m.Mode())
}

func TestConverter_Editing(t *testing.T) {
	m := typeText(t, NewConverter(""), "12x")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyBackspace}).(ConverterModel)
	assert.Equal(t, "12", m.input)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlU}).(ConverterModel)
	assert.Empty(t, m.input)
}

func TestConverter_View(t *testing.T) {
	m := NewConverter(convert.MeterToInch)
	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24}).(ConverterModel)
	m = typeText(t, m, "1")
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter}).(ConverterModel)

	view := m.View()
	assert.Contains(t, view, "UNIT CONVERTER")
	assert.Contains(t, view, convert.InchToCentimeter)
	assert.Contains(t, view, "39.3701")
}

func TestConverter_EscQuits(t *testing.T) {
	_, cmd := NewConverter("").Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
