package tui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/mora/internal/field"
	"github.com/alexisbeaulieu97/mora/internal/form"
	"github.com/alexisbeaulieu97/mora/internal/logger"
	"github.com/alexisbeaulieu97/mora/internal/ui/components"
)

// submitDelay is how long the submit button shows its spinner.
const submitDelay = 400 * time.Millisecond

// SubmittedMsg carries the outcome of a form submission.
type SubmittedMsg struct {
	Submission form.Submission
	Err        error
}

type action int

const (
	actionNone action = iota
	actionSubmit
	actionReset
)

// focusable is an interactive component that can own the keyboard.
type focusable interface {
	Focus() tea.Cmd
	Blur()
	Focused() bool
	Update(tea.Msg) tea.Cmd
}

// Options configures the demo form.
type Options struct {
	Theme components.Theme
	// Width is the initial terminal width; window size messages replace it.
	Width  int
	Logger *logger.Logger
}

// Model is the Bubbletea state for the sign-up demo form.
type Model struct {
	theme components.Theme
	log   *logger.Logger
	width int

	// username is controlled: the model owns its value.
	username      *components.TextField
	usernameValue *string
	email         *components.TextField
	password      *components.TextField
	age           *components.TextField
	options       []*components.Checkbox
	terms         *components.Checkbox
	advanced      *components.Accordion
	newsletter    *components.Checkbox
	submit        *components.Button
	reset         *components.Button

	form    *form.Form
	focus   int
	pending *action

	submissions []form.Submission
	lastErr     error
	cancelled   bool
	finished    bool
}

// NewModel builds the demo form with the first field focused.
func NewModel(opts Options) Model {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}
	theme := opts.Theme
	if theme.Palette.Primary.Main == "" {
		theme = components.DefaultTheme()
	}
	m := Model{
		theme:   theme.Normalize(),
		log:     log,
		width:   opts.Width,
		pending: new(action),
	}
	m.build()
	m.focusables()[0].Focus()
	return m
}

// build creates every field from scratch. It is also how reset works.
func (m *Model) build() {
	misuse := logger.MisuseReporter(m.log)
	value := ""
	m.usernameValue = &value

	current := m.usernameValue
	m.username = components.NewTextField(components.TextFieldProps{
		Name:         "username",
		Label:        "Username",
		HelperText:   "Lowercase letters and digits",
		Value:        m.usernameValue,
		Required:     true,
		Validations:  []field.Validator[string]{field.Rule[string]("alphanum,min=3", "")},
		PreInputText: "@",
		OnChange: func(ev field.ChangeEvent[string]) {
			*current = strings.ToLower(ev.Value())
		},
		OnMisuse: misuse,
	})
	m.email = components.NewTextField(components.TextFieldProps{
		Name:        "email",
		Label:       "Email",
		Placeholder: "you@example.com",
		Required:    true,
		Validations: []field.Validator[string]{field.Rule[string]("email", "")},
		OnMisuse:    misuse,
	})
	m.password = components.NewTextField(components.TextFieldProps{
		Name:     "password",
		Label:    "Password",
		Type:     components.InputPassword,
		Required: true,
		Validations: []field.Validator[string]{
			field.Check(func(s string) bool { return len(s) >= 8 }, "Use at least 8 characters"),
		},
		OnMisuse: misuse,
	})
	minAge, maxAge := 13.0, 120.0
	m.age = components.NewTextField(components.TextFieldProps{
		Name:          "age",
		Label:         "Age",
		Type:          components.InputNumber,
		Min:           &minAge,
		Max:           &maxAge,
		PostInputText: "years",
		OnMisuse:      misuse,
	})

	m.options = nil
	for _, opt := range []string{"A", "B", "C"} {
		m.options = append(m.options, components.NewCheckbox(components.CheckboxProps{
			Name:     "options[]",
			Value:    opt,
			Label:    "Option " + opt,
			OnMisuse: misuse,
		}))
	}
	m.terms = components.NewCheckbox(components.CheckboxProps{
		Name:            "terms",
		Label:           "I accept the terms",
		Required:        true,
		RequiredMessage: "You must accept the terms",
		OnMisuse:        misuse,
	})
	m.newsletter = components.NewCheckbox(components.CheckboxProps{
		Name:           "newsletter",
		Label:          "Send me the newsletter",
		DefaultChecked: field.Ptr(true),
		OnMisuse:       misuse,
	})
	m.advanced = components.NewAccordion(components.AccordionProps{
		Title:    "More options",
		Content:  m.newsletter,
		OnMisuse: misuse,
	})

	pending := m.pending
	m.submit = components.NewButton("Submit").
		WithType(components.ButtonTypeSubmit).
		OnClick(func(any) { *pending = actionSubmit })
	m.reset = components.NewButton("Reset").
		WithType(components.ButtonTypeReset).
		WithVariant(components.ButtonOutline).
		WithColor(components.ColorSecondary).
		OnClick(func(any) { *pending = actionReset })

	fields := []form.Field{m.username, m.email, m.password, m.age}
	for _, cb := range m.options {
		fields = append(fields, cb)
	}
	fields = append(fields, m.terms, m.newsletter)
	m.form = form.New(form.Options{Hash: true, Validate: true}, fields...)
	m.focus = 0
}

// focusables lists the components in tab order. The newsletter box only
// takes part while the accordion is open.
func (m *Model) focusables() []focusable {
	out := []focusable{m.username, m.email, m.password, m.age}
	for _, cb := range m.options {
		out = append(out, cb)
	}
	out = append(out, m.terms, m.advanced)
	if m.advanced.Expanded() {
		out = append(out, m.newsletter)
	}
	return append(out, m.submit, m.reset)
}

// Init starts the cursor blinking in the first field.
func (m Model) Init() tea.Cmd {
	return m.focusables()[m.focus].Focus()
}

// Submissions returns every accepted submission in order.
func (m Model) Submissions() []form.Submission {
	return m.submissions
}

// LastError returns the error of the most recent rejected submission.
func (m Model) LastError() error {
	return m.lastErr
}

// Cancelled reports whether the user quit with ctrl+c or esc.
func (m Model) Cancelled() bool {
	return m.cancelled
}

// IsFinished reports whether the program should stop.
func (m Model) IsFinished() bool {
	return m.finished
}

// Focused returns the index of the focused component in tab order.
func (m Model) Focused() int {
	return m.focus
}

func (m *Model) takeAction() action {
	a := *m.pending
	*m.pending = actionNone
	return a
}
