package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/mora/internal/field"
)

func TestAccordionUncontrolledToggle(t *testing.T) {
	acc := NewAccordion(AccordionProps{Title: "Details", Content: NewText("hidden body")})
	require.False(t, acc.Expanded())
	assert.Contains(t, acc.View(), "Details")
	assert.Contains(t, acc.View(), ChevronCollapsed)
	assert.NotContains(t, acc.View(), "hidden body")

	acc.Focus()
	acc.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, acc.Expanded())
	assert.Contains(t, acc.View(), "hidden body")
	assert.Contains(t, acc.View(), ChevronExpanded)
}

func TestAccordionControlledReportsNextState(t *testing.T) {
	var events []field.ChangeEvent[bool]
	acc := NewAccordion(AccordionProps{
		Title:    "Details",
		Expanded: field.Ptr(false),
		OnChange: func(ev field.ChangeEvent[bool]) { events = append(events, ev) },
	})

	acc.PressHeader("click")
	require.Len(t, events, 1)
	assert.True(t, events[0].Value())
	assert.False(t, acc.Expanded())

	acc.SetExpanded(field.Ptr(true))
	assert.True(t, acc.Expanded())
}

func TestAccordionHeaderOptionsLeaveOnlyChevron(t *testing.T) {
	acc := NewAccordion(AccordionProps{
		Title:         "Filters",
		HeaderOptions: NewText("[clear]"),
	})
	acc.Focus()

	assert.False(t, acc.PressHeader(nil))
	acc.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, acc.Expanded())

	acc.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.True(t, acc.Expanded())
	assert.Contains(t, acc.View(), "[clear]")
}

func TestAccordionNoControl(t *testing.T) {
	acc := NewAccordion(AccordionProps{Title: "Static", NoControl: true, DefaultExpanded: field.Ptr(true), Content: NewText("body")})

	assert.False(t, acc.PressHeader(nil))
	assert.False(t, acc.PressChevron(nil))
	assert.True(t, acc.Expanded())
	assert.NotContains(t, acc.View(), ChevronExpanded)
	assert.Contains(t, acc.View(), "body")
}

func TestAccordionUnmountOnExit(t *testing.T) {
	kept := NewAccordion(AccordionProps{Content: NewText("body")})
	assert.True(t, kept.Mounted())

	dropped := NewAccordion(AccordionProps{Content: NewText("body"), UnmountOnExit: true})
	assert.False(t, dropped.Mounted())
	dropped.PressHeader(nil)
	assert.True(t, dropped.Mounted())
}
