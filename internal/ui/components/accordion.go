package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/mora/internal/field"
	"github.com/alexisbeaulieu97/mora/internal/ui"
)

// Chevron glyphs for the accordion header.
const (
	ChevronCollapsed = "▼"
	ChevronExpanded  = "▲"
)

// ChevronKeys press the chevron of a focused accordion. They work even when
// header options stop the header itself from toggling.
var ChevronKeys = key.NewBinding(
	key.WithKeys("right", "left"),
	key.WithHelp("←/→", "expand"),
)

// AccordionProps configures an Accordion. Expanded makes it controlled;
// DefaultExpanded seeds an uncontrolled one.
type AccordionProps struct {
	Title           string
	Expanded        *bool
	DefaultExpanded *bool
	Content         ui.Renderable
	// UnmountOnExit drops the content while collapsed.
	UnmountOnExit bool
	// NoControl hides the chevron and disables toggling.
	NoControl bool
	// HeaderOptions render in the header; when set only the chevron toggles.
	HeaderOptions ui.Renderable
	// PaddingX is the horizontal padding in spacing units.
	PaddingX int
	OnChange func(field.ChangeEvent[bool])
	OnMisuse func(error)
}

// Accordion is a collapsible section.
type Accordion struct {
	BaseComponent
	props   AccordionProps
	field   *field.Field[bool]
	focused bool
}

// NewAccordion creates an accordion from props.
func NewAccordion(props AccordionProps) *Accordion {
	a := &Accordion{BaseComponent: NewBaseComponent(), props: props}
	a.field = field.New(field.Options[bool]{
		Value:        props.Expanded,
		DefaultValue: props.DefaultExpanded,
		Accessor:     func(any) bool { return !a.field.Value() },
		OnChange:     props.OnChange,
		OnMisuse:     props.OnMisuse,
	})
	return a
}

// Update maps activation keys to a header press and ChevronKeys to a
// chevron press while focused.
func (a *Accordion) Update(msg tea.Msg) tea.Cmd {
	km, ok := msg.(tea.KeyMsg)
	if !ok || !a.focused {
		return nil
	}
	switch {
	case key.Matches(km, ActivateKeys):
		a.PressHeader(km)
	case key.Matches(km, ChevronKeys):
		a.PressChevron(km)
	}
	return nil
}

// PressHeader handles a press on the header. It toggles unless the accordion
// has header options or no control. It reports whether a toggle happened.
func (a *Accordion) PressHeader(raw any) bool {
	if a.props.HeaderOptions != nil {
		return false
	}
	return a.PressChevron(raw)
}

// PressChevron handles a press on the chevron.
func (a *Accordion) PressChevron(raw any) bool {
	if a.props.NoControl {
		return false
	}
	a.field.OnRawChange(raw)
	return true
}

// SetExpanded feeds the caller's value to a controlled accordion.
func (a *Accordion) SetExpanded(expanded *bool) {
	a.field.Sync(expanded)
}

// Expanded returns the state currently rendered.
func (a *Accordion) Expanded() bool {
	return a.field.Value()
}

// Mounted reports whether the content is part of the tree.
func (a *Accordion) Mounted() bool {
	return a.props.Content != nil && (a.Expanded() || !a.props.UnmountOnExit)
}

// SetContent replaces the accordion body.
func (a *Accordion) SetContent(content ui.Renderable) {
	a.props.Content = content
}

// Focus gives the accordion keyboard focus.
func (a *Accordion) Focus() tea.Cmd {
	a.focused = true
	return nil
}

// Blur removes keyboard focus.
func (a *Accordion) Blur() {
	a.focused = false
}

// Focused reports whether the accordion has focus.
func (a *Accordion) Focused() bool { return a.focused }

// View renders the accordion.
func (a *Accordion) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the header and, when expanded, the content.
func (a *Accordion) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	p := theme.Palette
	padX := SpaceX(theme, a.props.PaddingX)

	width := ctx.availableWidth()
	inner := 0
	if width > 0 {
		inner = width - 2*padX
		if inner < 1 {
			inner = 1
		}
	}

	left := make([]ui.Renderable, 0, 2)
	if a.props.HeaderOptions != nil {
		left = append(left, a.props.HeaderOptions)
	}
	if a.props.Title != "" {
		left = append(left, NewText(a.props.Title).WithVariant(TextH6))
	}
	header := Row(left...).WithAlign(AlignCenter).WithSpace(1).WithNoWrap(true)
	if !a.props.NoControl {
		glyph := ChevronCollapsed
		if a.Expanded() {
			glyph = ChevronExpanded
		}
		chevron := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text.Secondary))
		if a.focused {
			chevron = chevron.Foreground(lipgloss.Color(p.Primary.Main)).Bold(true)
		}
		header = Row(header, NewText(chevron.Render(glyph))).
			WithAlign(AlignCenter).
			WithJustify(JustifySpaceBetween).
			WithNoWrap(true)
	}
	childCtx := ctx.WithParentWidth(inner).WithConstraints(Unconstrained())

	lines := []string{header.ViewWithContext(childCtx)}
	if a.focused {
		lines[0] = lipgloss.NewStyle().Background(lipgloss.Color(p.Action.Hover)).Render(lines[0])
	}
	if a.Expanded() && a.Mounted() {
		lines = append(lines, render(a.props.Content, childCtx))
	}

	style := a.ComputeStyle(theme).
		PaddingLeft(padX).PaddingRight(padX).
		BorderBottom(true).
		BorderStyle(theme.Borders.Normal).
		BorderForeground(lipgloss.Color(p.Divider))
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
