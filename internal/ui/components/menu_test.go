package components

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func sampleMenu() *Menu {
	return NewMenu(20, 5,
		NewMenuItem("☺", "Home"),
		NewMenuItem("☺", "Files"),
		NewMenuItem("☺", "Settings").WithSelected(true),
	)
}

func TestMenuOpenRendersLabels(t *testing.T) {
	m := sampleMenu()
	view := m.View()

	assert.Contains(t, view, "Home")
	assert.Contains(t, view, "Settings")
	assert.Len(t, strings.Split(view, "\n"), 3)
	assert.Equal(t, 20, lipgloss.Width(view))
}

func TestMenuClosedRendersIconsOnly(t *testing.T) {
	m := sampleMenu().WithClosed(true)
	view := m.View()

	assert.NotContains(t, view, "Home")
	assert.Contains(t, view, "☺")
	assert.Equal(t, 5, lipgloss.Width(view))
	assert.Equal(t, 5, m.Width())

	m.Toggle()
	assert.False(t, m.Closed())
	assert.Equal(t, 20, m.Width())
}

func TestMenuSelect(t *testing.T) {
	var picked []int
	m := sampleMenu().OnSelect(func(i int, _ *MenuItem) { picked = append(picked, i) })
	assert.Equal(t, 2, m.SelectedIndex())

	m.Select(0)
	assert.Equal(t, 0, m.SelectedIndex())
	assert.False(t, m.Items()[2].Selected())

	m.Select(7)
	assert.Equal(t, 0, m.SelectedIndex())
	assert.Equal(t, []int{0}, picked)
}

func TestMenuKeysWrapAround(t *testing.T) {
	m := sampleMenu()
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, m.SelectedIndex(), "unfocused menus ignore keys")

	m.Focus()
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 0, m.SelectedIndex())

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, m.SelectedIndex())

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 1, m.SelectedIndex())
}
