package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuKeyMap moves the selection of a focused menu.
type MenuKeyMap struct {
	Up   key.Binding
	Down key.Binding
}

// DefaultMenuKeys uses the arrow keys and vim-style j/k.
var DefaultMenuKeys = MenuKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "previous"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "next"),
	),
}

// MenuItem is one entry of a Menu.
type MenuItem struct {
	Icon     string
	Label    string
	selected bool
}

// NewMenuItem creates an unselected item.
func NewMenuItem(icon, label string) *MenuItem {
	return &MenuItem{Icon: icon, Label: label}
}

// WithSelected marks the item as the menu's initial selection.
func (m *MenuItem) WithSelected(selected bool) *MenuItem {
	m.selected = selected
	return m
}

// Selected reports whether the item is highlighted.
func (m *MenuItem) Selected() bool { return m.selected }

// Menu is a vertical navigation list that collapses to its icons.
type Menu struct {
	BaseComponent
	items      []*MenuItem
	width      int
	closedSize int
	closed     bool
	focused    bool
	keys       MenuKeyMap
	onSelect   func(index int, item *MenuItem)
}

// NewMenu creates an open menu width cells wide that narrows to closedSize
// cells when closed.
func NewMenu(width, closedSize int, items ...*MenuItem) *Menu {
	return &Menu{
		BaseComponent: NewBaseComponent(),
		items:         items,
		width:         width,
		closedSize:    closedSize,
		keys:          DefaultMenuKeys,
	}
}

// Update moves the selection while focused.
func (m *Menu) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused || len(m.items) == 0 {
		return nil
	}
	current := m.SelectedIndex()
	switch {
	case key.Matches(km, m.keys.Up):
		if current <= 0 {
			m.Select(len(m.items) - 1)
		} else {
			m.Select(current - 1)
		}
	case key.Matches(km, m.keys.Down):
		m.Select((current + 1) % len(m.items))
	}
	return nil
}

// Select highlights item i and clears the others. Out of range indexes are
// ignored.
func (m *Menu) Select(i int) {
	if i < 0 || i >= len(m.items) {
		return
	}
	for j, item := range m.items {
		item.selected = j == i
	}
	if m.onSelect != nil {
		m.onSelect(i, m.items[i])
	}
}

// SelectedIndex returns the first selected item, or -1.
func (m *Menu) SelectedIndex() int {
	for i, item := range m.items {
		if item.selected {
			return i
		}
	}
	return -1
}

// Items returns the menu entries.
func (m *Menu) Items() []*MenuItem { return m.items }

// Closed reports whether the menu shows icons only.
func (m *Menu) Closed() bool { return m.closed }

// SetClosed opens or closes the menu.
func (m *Menu) SetClosed(closed bool) {
	m.closed = closed
}

// Toggle flips between open and closed.
func (m *Menu) Toggle() {
	m.closed = !m.closed
}

// Width returns the width the menu renders at in its current state.
func (m *Menu) Width() int {
	if m.closed {
		return m.closedSize
	}
	return m.width
}

// WithClosed sets the initial closed state.
func (m *Menu) WithClosed(closed bool) *Menu {
	m.closed = closed
	return m
}

// WithKeys replaces the navigation bindings.
func (m *Menu) WithKeys(keys MenuKeyMap) *Menu {
	m.keys = keys
	return m
}

// OnSelect registers a selection handler.
func (m *Menu) OnSelect(fn func(index int, item *MenuItem)) *Menu {
	m.onSelect = fn
	return m
}

// WithAppliers applies theme-based style modifiers.
func (m *Menu) WithAppliers(appliers ...StyleFunc) *Menu {
	m.AddAppliers(appliers...)
	return m
}

// Focus gives the menu keyboard focus.
func (m *Menu) Focus() tea.Cmd {
	m.focused = true
	return nil
}

// Blur removes keyboard focus.
func (m *Menu) Blur() {
	m.focused = false
}

// Focused reports whether the menu has focus.
func (m *Menu) Focused() bool { return m.focused }

// View renders the menu.
func (m *Menu) View() string {
	return m.ViewWithContext(DefaultContext())
}

// ViewWithContext renders one line per item at the menu's current width.
func (m *Menu) ViewWithContext(ctx RenderContext) string {
	p := ctx.Theme.Palette
	width := m.Width()

	lines := make([]string, 0, len(m.items))
	for _, item := range m.items {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text.Primary)).MaxHeight(1)
		if width > 0 {
			style = style.Width(width).MaxWidth(width)
		}
		if item.selected {
			style = style.Foreground(lipgloss.Color(p.Primary.Main)).
				Background(lipgloss.Color(p.Action.Selected)).
				Bold(true)
		}

		var content string
		if m.closed {
			content = item.Icon
			style = style.Align(lipgloss.Center)
		} else {
			content = item.Icon + " " + item.Label
			style = style.PaddingLeft(1)
		}
		lines = append(lines, style.Render(content))
	}

	out := lipgloss.JoinVertical(lipgloss.Left, lines...)
	style := m.ComputeStyle(ctx.Theme)
	if m.focused {
		style = style.BorderLeft(true).
			BorderStyle(ctx.Theme.Borders.Thick).
			BorderForeground(lipgloss.Color(p.Primary.Main))
	}
	return style.Render(out)
}
