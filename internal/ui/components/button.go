package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ButtonSize controls a button's padding.
type ButtonSize int

const (
	ButtonMedium ButtonSize = iota
	ButtonSmall
	ButtonLarge
)

// ButtonVariant controls how a button uses its colour.
type ButtonVariant int

const (
	ButtonFilled ButtonVariant = iota
	ButtonOutline
	ButtonText
)

// ButtonType mirrors the role a button plays in a form.
type ButtonType string

const (
	ButtonTypeButton ButtonType = "button"
	ButtonTypeReset  ButtonType = "reset"
	ButtonTypeSubmit ButtonType = "submit"
)

// ActivateKeys press focused buttons, checkboxes and accordion headers.
var ActivateKeys = key.NewBinding(
	key.WithKeys("enter", " "),
	key.WithHelp("enter/space", "activate"),
)

// Button is a pressable label.
type Button struct {
	BaseComponent
	label     string
	size      ButtonSize
	variant   ButtonVariant
	color     MainColorName
	kind      ButtonType
	loading   bool
	disabled  bool
	fullWidth bool
	grow      bool
	focused   bool
	pressed   bool
	onClick   func(raw any)
	spinner   spinner.Model
}

// NewButton creates a medium filled primary button.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		size:          ButtonMedium,
		variant:       ButtonFilled,
		color:         ColorPrimary,
		kind:          ButtonTypeButton,
		spinner:       spinner.New(spinner.WithSpinner(spinner.MiniDot)),
	}
}

// Init starts the loading spinner when needed.
func (b *Button) Init() tea.Cmd {
	if b.loading {
		return b.spinner.Tick
	}
	return nil
}

// Update handles key presses while focused and spinner ticks while loading.
func (b *Button) Update(msg tea.Msg) tea.Cmd {
	b.pressed = false
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !b.loading {
			return nil
		}
		var cmd tea.Cmd
		b.spinner, cmd = b.spinner.Update(msg)
		return cmd
	case tea.KeyMsg:
		if b.focused && key.Matches(msg, ActivateKeys) {
			b.Press(msg)
		}
	}
	return nil
}

// Press activates the button. Disabled and loading buttons ignore it.
// It reports whether OnClick ran.
func (b *Button) Press(raw any) bool {
	if b.disabled || b.loading {
		return false
	}
	b.pressed = true
	if b.onClick != nil {
		b.onClick(raw)
		return true
	}
	return false
}

// FeedbackColor is the colour flashed on press: the light shade for filled
// buttons, the main shade otherwise.
func (b *Button) FeedbackColor(theme Theme) string {
	c := theme.Palette.Main(b.color)
	if b.variant == ButtonFilled {
		return c.Light
	}
	return c.Main
}

// View renders the button.
func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the button with the given theme context.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	label := b.label
	if b.loading {
		label = b.spinner.View() + " " + label
	}
	style := b.computeStyle(ctx)
	return style.Render(label)
}

func (b *Button) computeStyle(ctx RenderContext) lipgloss.Style {
	theme := ctx.Theme
	p := theme.Palette
	c := p.Main(b.color)
	style := b.ComputeStyle(theme).Inherit(theme.Typography.Button)

	switch b.size {
	case ButtonSmall:
		style = style.Padding(0, 1)
	case ButtonLarge:
		style = style.Padding(1, 3)
	default:
		style = style.Padding(0, 2)
	}

	switch b.variant {
	case ButtonOutline:
		style = style.Border(theme.Borders.Rounded).
			BorderForeground(lipgloss.Color(c.Main)).
			Foreground(lipgloss.Color(c.Main))
	case ButtonText:
		style = style.Foreground(lipgloss.Color(c.Main))
	default:
		style = style.Background(lipgloss.Color(c.Main)).
			Foreground(lipgloss.Color(c.ContrastText))
	}

	if b.disabled || b.loading {
		style = style.Foreground(lipgloss.Color(p.Text.Disabled)).Faint(true)
		if b.variant == ButtonFilled {
			style = style.Background(lipgloss.Color(p.Action.Disabled))
		}
		if b.variant == ButtonOutline {
			style = style.BorderForeground(lipgloss.Color(p.Action.Disabled))
		}
	}

	if b.pressed {
		style = style.Background(lipgloss.Color(b.FeedbackColor(theme)))
	}
	if b.focused {
		style = style.Underline(true)
	}

	if b.fullWidth || b.grow {
		if w := ctx.availableWidth(); w > 0 {
			style = style.Width(w - style.GetHorizontalBorderSize()).Align(lipgloss.Center)
		}
	}
	return style
}

// WithSize sets the button size.
func (b *Button) WithSize(size ButtonSize) *Button {
	b.size = size
	return b
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithColor selects the palette colour.
func (b *Button) WithColor(color MainColorName) *Button {
	b.color = color
	return b
}

// WithType sets the button's form role.
func (b *Button) WithType(kind ButtonType) *Button {
	b.kind = kind
	return b
}

// WithLoading shows a spinner and blocks presses.
func (b *Button) WithLoading(loading bool) *Button {
	b.loading = loading
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// WithFullWidth stretches the button across the available width.
func (b *Button) WithFullWidth(full bool) *Button {
	b.fullWidth = full
	return b
}

// WithGrow lets the button take remaining space in a row.
func (b *Button) WithGrow(grow bool) *Button {
	b.grow = grow
	return b
}

// OnClick registers the press handler.
func (b *Button) OnClick(fn func(raw any)) *Button {
	b.onClick = fn
	return b
}

// WithAppliers applies theme-based style modifiers.
func (b *Button) WithAppliers(appliers ...StyleFunc) *Button {
	b.AddAppliers(appliers...)
	return b
}

// SetLoading toggles the loading state and returns the command that keeps
// the spinner ticking.
func (b *Button) SetLoading(loading bool) tea.Cmd {
	b.loading = loading
	return b.Init()
}

// Focus gives the button keyboard focus.
func (b *Button) Focus() tea.Cmd {
	b.focused = true
	return nil
}

// Blur removes keyboard focus.
func (b *Button) Blur() {
	b.focused = false
}

// Focused reports whether the button has focus.
func (b *Button) Focused() bool { return b.focused }

// Label returns the button label.
func (b *Button) Label() string { return b.label }

// Type returns the button's form role.
func (b *Button) Type() ButtonType { return b.kind }

// IsDisabled reports whether presses are ignored because of the disabled flag.
func (b *Button) IsDisabled() bool { return b.disabled }

// IsLoading reports whether the button is showing its spinner.
func (b *Button) IsLoading() bool { return b.loading }
