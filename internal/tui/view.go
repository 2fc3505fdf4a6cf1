package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/mora/internal/ui"
	"github.com/alexisbeaulieu97/mora/internal/ui/components"
)

// View renders the current state of the model.
func (m Model) View() string {
	ctx := components.DefaultContext().WithTheme(m.theme).WithParentWidth(m.width)

	options := make([]ui.Renderable, 0, len(m.options))
	for _, cb := range m.options {
		options = append(options, cb)
	}

	page := components.Column(
		components.Heading(2, "Create an account"),
		components.Grid(components.GridDefault,
			m.username, m.email,
			m.password, m.age,
		),
		components.NewText("Pick any options").WithVariant(components.TextSubtitle),
		components.Row(options...).WithSpace(1),
		m.terms,
		m.advanced,
		components.Row(m.reset, m.submit).WithSpace(1).WithJustify(components.JustifyEnd),
		components.NewText(m.status()),
		components.Caption("tab/shift+tab move • enter/space activate • ←/→ expand • esc quit"),
	).WithSpace(1).AsContainer(components.ContainerM)

	return page.ViewWithContext(ctx)
}

func (m Model) status() string {
	p := m.theme.Palette
	if m.lastErr != nil {
		return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error.Main)).Render(m.lastErr.Error())
	}
	if n := len(m.submissions); n > 0 {
		last := m.submissions[n-1]
		note := "unchanged"
		if last.Changed {
			note = "changed"
		}
		msg := fmt.Sprintf("✓ Submitted %s (%s)", shortDigest(last.Digest), note)
		return lipgloss.NewStyle().Foreground(lipgloss.Color(p.Success.Main)).Render(msg)
	}
	return ""
}

func shortDigest(d string) string {
	if len(d) > 12 {
		return d[:12]
	}
	return d
}
