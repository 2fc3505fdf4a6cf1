package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/mora/internal/ui/components"
)

func TestNewModelInitialisesState(t *testing.T) {
	m := NewModel(Options{})

	require.Equal(t, 0, m.Focused())
	require.True(t, m.username.Focused())
	require.False(t, m.email.Focused())
	require.False(t, m.IsFinished())
	require.Empty(t, m.Submissions())
	require.Equal(t, components.PaletteLight, m.theme.Palette.Type)
	require.Len(t, m.form.Fields(), 9)
}

func TestNewModelKeepsSuppliedTheme(t *testing.T) {
	m := NewModel(Options{Theme: components.DarkTheme(), Width: 90})
	require.Equal(t, components.PaletteDark, m.theme.Palette.Type)
	require.Equal(t, 90, m.width)
}

func TestModelInitReturnsBlinkCommand(t *testing.T) {
	m := NewModel(Options{})
	require.NotNil(t, m.Init())
}

func TestFocusablesIncludeNewsletterOnlyWhenExpanded(t *testing.T) {
	m := NewModel(Options{})
	require.Len(t, m.focusables(), 11)

	m.advanced.PressChevron(nil)
	items := m.focusables()
	require.Len(t, items, 12)
	require.Equal(t, focusable(m.newsletter), items[9])
}

func TestWindowSizeUpdatesWidth(t *testing.T) {
	m := NewModel(Options{})
	m = step(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	require.Equal(t, 120, m.width)
}
