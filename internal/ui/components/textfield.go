package components

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/mora/internal/field"
)

// InputType selects how a text field echoes and checks its content.
type InputType string

const (
	InputText     InputType = "text"
	InputPassword InputType = "password"
	InputNumber   InputType = "number"
)

// Adornment slots recorded in the field's aux sizes.
const (
	AdornmentPre  = "pre"
	AdornmentPost = "post"
)

// TextFieldProps configures a TextField. Value makes it controlled;
// DefaultValue seeds an uncontrolled one.
type TextFieldProps struct {
	Name         string
	Label        string
	HelperText   string
	Placeholder  string
	Value        *string
	DefaultValue *string
	Required     bool
	// RequiredMessage overrides the default required message.
	RequiredMessage string
	Validations     []field.Validator[string]
	Type            InputType
	// Min and Max bound numeric input. They only apply to InputNumber.
	Min *float64
	Max *float64
	// AutoComplete nil leaves suggestions off unless Suggestions are given.
	AutoComplete  *bool
	Suggestions   []string
	PreInputText  string
	PostInputText string
	// Width is the total width of the input box in cells; zero means the
	// available width.
	Width    int
	OnChange func(field.ChangeEvent[string])
	OnMisuse func(error)
	// Measurer sizes adornments; nil uses lipgloss.Width.
	Measurer field.Measurer
}

// TextField is a single-line text input.
type TextField struct {
	BaseComponent
	props   TextFieldProps
	field   *field.Field[string]
	input   textinput.Model
	cursor  int
	focused bool
}

// NewTextField creates a text field from props and measures its adornments.
func NewTextField(props TextFieldProps) *TextField {
	if props.Type == "" {
		props.Type = InputText
	}
	measurer := props.Measurer
	if measurer == nil {
		measurer = field.MeasureFunc(lipgloss.Width)
	}

	t := &TextField{
		BaseComponent: NewBaseComponent(),
		props:         props,
		input:         textinput.New(),
	}
	t.input.Prompt = ""
	t.input.Placeholder = props.Placeholder
	if props.Type == InputPassword {
		t.input.EchoMode = textinput.EchoPassword
		t.input.EchoCharacter = '•'
	}
	if len(props.Suggestions) > 0 {
		t.input.SetSuggestions(props.Suggestions)
		t.input.ShowSuggestions = true
	}
	if props.AutoComplete != nil {
		t.input.ShowSuggestions = *props.AutoComplete
	}

	validators := make([]field.Validator[string], 0, len(props.Validations)+1)
	if props.Type == InputNumber {
		validators = append(validators, numberRange(props.Min, props.Max))
	}
	validators = append(validators, props.Validations...)

	t.field = field.New(field.Options[string]{
		Name:            props.Name,
		Value:           props.Value,
		DefaultValue:    props.DefaultValue,
		Required:        props.Required,
		RequiredMessage: props.RequiredMessage,
		Validations:     validators,
		Accessor:        func(any) string { return t.GetValue() },
		OnChange:        props.OnChange,
		OnMisuse:        props.OnMisuse,
		Measurer:        measurer,
	})
	t.input.SetValue(t.field.Value())
	t.cursor = t.input.Position()

	t.field.Resize(AdornmentPre, props.PreInputText)
	t.field.Resize(AdornmentPost, props.PostInputText)
	t.SetWidth(props.Width)
	return t
}

// Update feeds key messages to the input while focused. Any edit becomes a
// change on the field; controlled fields then snap the buffer back to the
// caller's value, keeping the cursor where the edit left it.
func (t *TextField) Update(msg tea.Msg) tea.Cmd {
	if !t.focused {
		return nil
	}
	before := t.input.Value()
	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	t.cursor = t.input.Position()
	if t.input.Value() != before {
		t.field.OnRawChange(msg)
		if t.field.Controlled() {
			t.resetBuffer()
		}
	}
	return cmd
}

// resetBuffer loads the field's value into the input. SetCursor clamps to
// the buffer length.
func (t *TextField) resetBuffer() {
	t.input.SetValue(t.field.Value())
	t.input.SetCursor(t.cursor)
}

// GetValue reads the raw input buffer.
func (t *TextField) GetValue() string {
	return t.input.Value()
}

// Value returns the value currently rendered.
func (t *TextField) Value() string {
	return t.field.Value()
}

// SetValue feeds the caller's value to a controlled field.
func (t *TextField) SetValue(value *string) {
	t.field.Sync(value)
	if t.field.Controlled() {
		t.resetBuffer()
	}
}

// SetWidth sets the total width of the input box in cells; zero means the
// available width at render time.
func (t *TextField) SetWidth(width int) {
	t.props.Width = width
	if width > 0 {
		t.input.Width = t.innerWidth(width)
		t.input.SetCursor(t.input.Position())
	}
}

// innerWidth is the editable width left inside a box of width cells. Border
// and padding take four cells, adornments take their measured width plus a
// separating space each.
func (t *TextField) innerWidth(width int) int {
	state := t.field.State()
	inner := width - 4 - gapFor(state.AuxSizes[AdornmentPre]) - gapFor(state.AuxSizes[AdornmentPost])
	if inner < 1 {
		inner = 1
	}
	return inner
}

// SetPreInputText replaces the leading adornment and re-measures it.
func (t *TextField) SetPreInputText(text string) {
	if text == t.props.PreInputText {
		return
	}
	t.props.PreInputText = text
	t.field.Resize(AdornmentPre, text)
	t.SetWidth(t.props.Width)
}

// SetPostInputText replaces the trailing adornment and re-measures it.
func (t *TextField) SetPostInputText(text string) {
	if text == t.props.PostInputText {
		return
	}
	t.props.PostInputText = text
	t.field.Resize(AdornmentPost, text)
	t.SetWidth(t.props.Width)
}

// Field exposes the underlying field state.
func (t *TextField) Field() *field.Field[string] {
	return t.field
}

// State returns the field snapshot used for rendering.
func (t *TextField) State() field.State[string] {
	return t.field.State()
}

// Name returns the form name.
func (t *TextField) Name() string {
	return t.props.Name
}

// FormValue contributes the current text.
func (t *TextField) FormValue() (any, bool) {
	return t.Value(), true
}

// SubmitError validates the current value for form submission.
func (t *TextField) SubmitError() error {
	return t.field.Validate(t.Value())
}

// ShowError reports whether the error line replaces the helper text.
func (t *TextField) ShowError() bool {
	state := t.field.State()
	return state.ErrorMessage != "" && state.RenderError
}

// Focus gives the field keyboard focus.
func (t *TextField) Focus() tea.Cmd {
	t.focused = true
	return t.input.Focus()
}

// Blur removes keyboard focus.
func (t *TextField) Blur() {
	t.focused = false
	t.input.Blur()
}

// Focused reports whether the field has focus.
func (t *TextField) Focused() bool { return t.focused }

// View renders the text field.
func (t *TextField) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders label, input box and the error or helper line.
func (t *TextField) ViewWithContext(ctx RenderContext) string {
	theme := ctx.Theme
	p := theme.Palette
	state := t.field.State()
	hasValue := state.Value != ""
	showAdornments := hasValue || t.props.Label == ""

	borderColor := p.Divider
	labelColor := p.Text.Secondary
	switch {
	case state.RenderError:
		borderColor = p.Error.Main
		labelColor = p.Error.Main
	case t.focused:
		borderColor = p.Primary.Main
		labelColor = p.Primary.Main
	}

	pre := state.AuxSizes[AdornmentPre]
	post := state.AuxSizes[AdornmentPost]
	width := t.props.Width
	if width == 0 {
		width = ctx.availableWidth()
	}
	// render from a copy so drawing never changes the component
	input := t.input
	if width > 0 && input.Width != t.innerWidth(width) {
		input.Width = t.innerWidth(width)
		input.SetCursor(input.Position())
	}

	adornment := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text.Secondary))
	parts := make([]string, 0, 3)
	if t.props.PreInputText != "" {
		parts = append(parts, renderAdornment(adornment, t.props.PreInputText, pre, showAdornments)+" ")
	}
	parts = append(parts, input.View())
	if t.props.PostInputText != "" {
		parts = append(parts, " "+renderAdornment(adornment, t.props.PostInputText, post, showAdornments))
	}

	box := lipgloss.NewStyle().
		Border(theme.Borders.Rounded).
		BorderForeground(lipgloss.Color(borderColor)).
		Padding(0, 1)
	if width > 0 {
		box = box.Width(width - 2)
	}

	lines := make([]string, 0, 3)
	if t.props.Label != "" {
		label := t.props.Label
		if t.props.Required {
			label += " *"
		}
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(labelColor)).Render(label))
	}
	lines = append(lines, box.Render(lipgloss.JoinHorizontal(lipgloss.Top, parts...)))

	switch {
	case t.ShowError():
		lines = append(lines, lipgloss.NewStyle().Foreground(lipgloss.Color(p.Error.Main)).Render(state.ErrorMessage))
	case t.props.HelperText != "":
		lines = append(lines, TypographyStyle(theme, TextCaption).Render(t.props.HelperText))
	}

	return t.ComputeStyle(theme).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// renderAdornment draws the adornment, or blank space of its measured width
// while hidden so the input does not shift when it appears.
func renderAdornment(style lipgloss.Style, text string, width int, show bool) string {
	if show {
		return style.Render(text)
	}
	return strings.Repeat(" ", width)
}

func gapFor(width int) int {
	if width == 0 {
		return 0
	}
	return width + 1
}

// numberRange accepts empty input or a number within [min, max].
func numberRange(min, max *float64) field.Validator[string] {
	return func(value string) error {
		value = strings.TrimSpace(value)
		if value == "" {
			return nil
		}
		n, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return fmt.Errorf("Enter a number")
		}
		if min != nil && n < *min {
			return fmt.Errorf("Must be at least %s", strconv.FormatFloat(*min, 'f', -1, 64))
		}
		if max != nil && n > *max {
			return fmt.Errorf("Must be at most %s", strconv.FormatFloat(*max, 'f', -1, 64))
		}
		return nil
	}
}
