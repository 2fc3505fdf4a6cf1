package components

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/mora/internal/field"
)

// Default checkbox glyphs.
const (
	IconUnchecked    = "[ ]"
	IconChecked      = "[✓]"
	IconIntermediate = "[-]"
)

// CheckboxProps configures a Checkbox. Checked makes it controlled;
// DefaultChecked seeds an uncontrolled one.
type CheckboxProps struct {
	Name string
	// Value is submitted in place of the boolean when the box is checked.
	// Several boxes named "x[]" with values build a list.
	Value          string
	Label          string
	Checked        *bool
	DefaultChecked *bool
	Required       bool
	// RequiredMessage overrides the default required message.
	RequiredMessage string
	Validations     []field.Validator[bool]
	// Intermediate shows the partial glyph regardless of the checked state.
	Intermediate     bool
	Icon             string
	CheckedIcon      string
	IntermediateIcon string
	OnChange         func(field.ChangeEvent[bool])
	OnMisuse         func(error)
}

// Checkbox is a boolean field.
type Checkbox struct {
	BaseComponent
	props   CheckboxProps
	field   *field.Field[bool]
	focused bool
}

// NewCheckbox creates a checkbox from props.
func NewCheckbox(props CheckboxProps) *Checkbox {
	c := &Checkbox{BaseComponent: NewBaseComponent(), props: props}
	c.field = field.New(field.Options[bool]{
		Name:            props.Name,
		Value:           props.Checked,
		DefaultValue:    props.DefaultChecked,
		Required:        props.Required,
		RequiredMessage: props.RequiredMessage,
		Validations:     props.Validations,
		// A click flips what is on screen, so the new value is the
		// negation of the rendered one.
		Accessor: func(any) bool { return !c.field.Value() },
		OnChange: props.OnChange,
		OnMisuse: props.OnMisuse,
	})
	return c
}

// Update toggles the box when it is focused and an activation key arrives.
func (c *Checkbox) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok && c.focused && key.Matches(km, ActivateKeys) {
		c.Toggle(km)
	}
	return nil
}

// Toggle processes one click.
func (c *Checkbox) Toggle(raw any) field.ChangeEvent[bool] {
	return c.field.OnRawChange(raw)
}

// SetChecked feeds the caller's value to a controlled checkbox.
func (c *Checkbox) SetChecked(checked *bool) {
	c.field.Sync(checked)
}

// SetIntermediate toggles the partial glyph.
func (c *Checkbox) SetIntermediate(on bool) {
	c.props.Intermediate = on
}

// Checked returns the value currently rendered.
func (c *Checkbox) Checked() bool {
	return c.field.Value()
}

// Field exposes the underlying field state.
func (c *Checkbox) Field() *field.Field[bool] {
	return c.field
}

// State returns the field snapshot used for rendering.
func (c *Checkbox) State() field.State[bool] {
	return c.field.State()
}

// Name returns the form name.
func (c *Checkbox) Name() string {
	return c.props.Name
}

// FormValue contributes the value attribute while checked, or the boolean
// when no value attribute is set.
func (c *Checkbox) FormValue() (any, bool) {
	checked := c.Checked()
	if c.props.Value != "" {
		return c.props.Value, checked
	}
	return checked, true
}

// SubmitError validates the current value for form submission.
func (c *Checkbox) SubmitError() error {
	return c.field.Validate(c.Checked())
}

// Icon returns the glyph for the current state.
func (c *Checkbox) Icon() string {
	switch {
	case c.props.Intermediate:
		return orDefault(c.props.IntermediateIcon, IconIntermediate)
	case c.Checked():
		return orDefault(c.props.CheckedIcon, IconChecked)
	default:
		return orDefault(c.props.Icon, IconUnchecked)
	}
}

// Focus gives the checkbox keyboard focus.
func (c *Checkbox) Focus() tea.Cmd {
	c.focused = true
	return nil
}

// Blur removes keyboard focus.
func (c *Checkbox) Blur() {
	c.focused = false
}

// Focused reports whether the checkbox has focus.
func (c *Checkbox) Focused() bool { return c.focused }

// View renders the checkbox.
func (c *Checkbox) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the checkbox with the given theme context.
func (c *Checkbox) ViewWithContext(ctx RenderContext) string {
	p := ctx.Theme.Palette
	state := c.field.State()

	iconStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text.Secondary))
	if state.Value || c.props.Intermediate {
		iconStyle = iconStyle.Foreground(lipgloss.Color(p.Primary.Main))
	}
	if state.RenderError {
		iconStyle = iconStyle.Foreground(lipgloss.Color(p.Error.Main))
	}
	if c.focused {
		iconStyle = iconStyle.Bold(true).Background(lipgloss.Color(p.Action.Selected))
	}

	line := iconStyle.Render(c.Icon())
	if c.props.Label != "" {
		label := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text.Primary)).Render(c.props.Label)
		line = lipgloss.JoinHorizontal(lipgloss.Center, line, " ", label)
	}
	if state.RenderError && state.ErrorMessage != "" {
		msg := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error.Main)).Render(state.ErrorMessage)
		line = lipgloss.JoinVertical(lipgloss.Left, line, msg)
	}
	return c.ComputeStyle(ctx.Theme).Render(line)
}

func orDefault(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
