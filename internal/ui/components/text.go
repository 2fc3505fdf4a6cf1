package components

import "github.com/charmbracelet/lipgloss"

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
	variant TextVariant
}

// NewText creates body text.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
		variant:       TextBody,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme).Inherit(TypographyStyle(ctx.Theme, t.variant))
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithVariant selects a typography preset.
func (t *Text) WithVariant(variant TextVariant) *Text {
	t.variant = variant
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// Heading creates a heading text; level is clamped to 1..6.
func Heading(level int, content string) *Text {
	if level < 1 {
		level = 1
	}
	if level > 6 {
		level = 6
	}
	return NewText(content).WithVariant(TextH1 + TextVariant(level-1))
}

// Caption creates small secondary text.
func Caption(content string) *Text {
	return NewText(content).WithVariant(TextCaption)
}
