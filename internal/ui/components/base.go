package components

import (
	"github.com/alexisbeaulieu97/mora/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent provides common styling behaviour for all components.
// Embed this in your component structs to get standard behavior.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy defines how styling should be applied to a component.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc is a function that applies styling transformations to a lipgloss.Style
// using data from a Theme. This is the core abstraction for theme-aware styling.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a new base component with default styling.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the computed style for this component using the provided theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends additional style appliers to the existing strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	existing, ok := b.strategy.(CompositeStrategy)
	if !ok {
		current := b.strategy
		existing = CompositeStrategy{funcs: []StyleFunc{func(base lipgloss.Style, theme Theme) lipgloss.Style {
			if current != nil {
				base = current.Apply(base, theme)
			}
			return base
		}}}
	}
	funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
	copy(funcs, existing.funcs)
	b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
}

// Constraints defines sizing constraints for layout calculations.
type Constraints struct {
	MinWidth int
	MaxWidth int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MinWidth: 0, MaxWidth: -1} // zero or negative means unlimited
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MinWidth: 0, MaxWidth: maxWidth}
}

// Constrain clamps a width to the constraints.
func (c Constraints) Constrain(width int) int {
	if c.MinWidth > 0 && width < c.MinWidth {
		width = c.MinWidth
	}
	if c.MaxWidth > 0 && width > c.MaxWidth {
		width = c.MaxWidth
	}
	return width
}

// RenderContext carries the theme and layout limits into every render.
// Components never reach for a global theme; whatever is in the context is
// what they draw with.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithParentWidth returns a new context with the available width set.
func (r RenderContext) WithParentWidth(width int) RenderContext {
	r.ParentWidth = width
	return r
}

// availableWidth is the width a child may fill, or 0 when unknown.
func (r RenderContext) availableWidth() int {
	w := r.ParentWidth
	if r.Constraints.MaxWidth > 0 && (w == 0 || r.Constraints.MaxWidth < w) {
		w = r.Constraints.MaxWidth
	}
	return w
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// render draws child with ctx when it understands contexts.
func render(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}
