package components

import (
	"github.com/charmbracelet/lipgloss"
)

// MainColorName selects one of the palette's main colours.
type MainColorName string

const (
	ColorPrimary   MainColorName = "primary"
	ColorSecondary MainColorName = "secondary"
	ColorError     MainColorName = "error"
	ColorSuccess   MainColorName = "success"
	ColorWarning   MainColorName = "warning"
	ColorInfo      MainColorName = "info"
)

// MainColorNames lists every main colour in display order.
var MainColorNames = []MainColorName{ColorPrimary, ColorSecondary, ColorError, ColorSuccess, ColorWarning, ColorInfo}

// PaletteType distinguishes light and dark palettes.
type PaletteType string

const (
	PaletteLight PaletteType = "light"
	PaletteDark  PaletteType = "dark"
)

// MainColor is a colour with its shades and legible text colour. Values are
// hex strings.
type MainColor struct {
	Main         string
	Light        string
	Dark         string
	ContrastText string
}

// MainColorSpec is the input to CreateMainColor; empty shades are derived.
type MainColorSpec struct {
	Main         string
	Light        string
	Dark         string
	ContrastText string
}

// CreateMainColor fills in missing shades of a colour. Light and dark are
// the main colour moved up and down in Lab lightness; contrast text is
// black or white depending on luminance.
func CreateMainColor(spec MainColorSpec) MainColor {
	c := MainColor{
		Main:         spec.Main,
		Light:        spec.Light,
		Dark:         spec.Dark,
		ContrastText: spec.ContrastText,
	}
	if c.Light == "" {
		c.Light = lighten(c.Main, shadeStep)
	}
	if c.Dark == "" {
		c.Dark = lighten(c.Main, -shadeStep)
	}
	if c.ContrastText == "" {
		c.ContrastText = contrastText(c.Main)
	}
	return c
}

// GreyShade indexes the grey scale.
type GreyShade string

const (
	Grey50   GreyShade = "50"
	Grey100  GreyShade = "100"
	Grey200  GreyShade = "200"
	Grey300  GreyShade = "300"
	Grey400  GreyShade = "400"
	Grey500  GreyShade = "500"
	Grey600  GreyShade = "600"
	Grey700  GreyShade = "700"
	Grey800  GreyShade = "800"
	Grey900  GreyShade = "900"
	GreyA100 GreyShade = "A100"
	GreyA200 GreyShade = "A200"
	GreyA400 GreyShade = "A400"
	GreyA700 GreyShade = "A700"
)

// TextColors are the palette's text tones.
type TextColors struct {
	Primary   string
	Secondary string
	Disabled  string
	Link      string
}

// ActionColors are overlays for interaction states.
type ActionColors struct {
	Active   string
	Hover    string
	Selected string
	Disabled string
}

// BackgroundColors are surfaces components can sit on.
type BackgroundColors struct {
	Primary   MainColor
	Secondary MainColor
}

// Palette is the complete colour set of a theme.
type Palette struct {
	Type       PaletteType
	Primary    MainColor
	Secondary  MainColor
	Error      MainColor
	Success    MainColor
	Warning    MainColor
	Info       MainColor
	Grey       map[GreyShade]string
	Background BackgroundColors
	Text       TextColors
	Divider    string
	Action     ActionColors
}

// Main returns the main colour for name, falling back to primary.
func (p Palette) Main(name MainColorName) MainColor {
	switch name {
	case ColorSecondary:
		return p.Secondary
	case ColorError:
		return p.Error
	case ColorSuccess:
		return p.Success
	case ColorWarning:
		return p.Warning
	case ColorInfo:
		return p.Info
	default:
		return p.Primary
	}
}

// WithMain returns a copy of the palette with name replaced.
func (p Palette) WithMain(name MainColorName, c MainColor) Palette {
	switch name {
	case ColorSecondary:
		p.Secondary = c
	case ColorError:
		p.Error = c
	case ColorSuccess:
		p.Success = c
	case ColorWarning:
		p.Warning = c
	case ColorInfo:
		p.Info = c
	default:
		p.Primary = c
	}
	return p
}

// GreyColor returns a grey shade as a lipgloss colour.
func (p Palette) GreyColor(shade GreyShade) lipgloss.Color {
	return lipgloss.Color(p.Grey[shade])
}

// DefaultPalette returns the light palette.
func DefaultPalette() Palette {
	return Palette{
		Type:      PaletteLight,
		Primary:   CreateMainColor(MainColorSpec{Main: "#1976d2"}),
		Secondary: CreateMainColor(MainColorSpec{Main: "#9c27b0"}),
		Error:     CreateMainColor(MainColorSpec{Main: "#d32f2f"}),
		Success:   CreateMainColor(MainColorSpec{Main: "#2e7d32"}),
		Warning:   CreateMainColor(MainColorSpec{Main: "#ed6c02"}),
		Info:      CreateMainColor(MainColorSpec{Main: "#0288d1"}),
		Grey:      defaultGrey(),
		Background: BackgroundColors{
			Primary:   MainColor{Main: "#ffffff", Light: "#ffffff", Dark: "#ffffff", ContrastText: "#000000"},
			Secondary: MainColor{Main: "#ffffff", Light: "#ffffff", Dark: "#ffffff", ContrastText: "#000000"},
		},
		// rgba(0,0,0,a) tones flattened over white.
		Text: TextColors{
			Primary:   "#212121",
			Secondary: "#666666",
			Disabled:  "#9e9e9e",
			Link:      "#1976d2",
		},
		Divider: "#e0e0e0",
		Action: ActionColors{
			Active:   "#757575",
			Hover:    "#999999",
			Selected: "#ebebeb",
			Disabled: "#bdbdbd",
		},
	}
}

// DarkPalette returns the dark palette. Main colours are shared with the
// light palette; surfaces and text are inverted.
func DarkPalette() Palette {
	p := DefaultPalette()
	p.Type = PaletteDark
	p.Background = BackgroundColors{
		Primary:   MainColor{Main: "#121212", Light: "#1e1e1e", Dark: "#000000", ContrastText: "#ffffff"},
		Secondary: MainColor{Main: "#1e1e1e", Light: "#2c2c2c", Dark: "#121212", ContrastText: "#ffffff"},
	}
	// rgba(255,255,255,a) tones flattened over #121212.
	p.Text = TextColors{
		Primary:   "#ffffff",
		Secondary: "#b8b8b8",
		Disabled:  "#898989",
		Link:      p.Primary.Light,
	}
	p.Divider = "#2e2e2e"
	p.Action = ActionColors{
		Active:   "#ffffff",
		Hover:    "#252525",
		Selected: "#383838",
		Disabled: "#595959",
	}
	return p
}

func defaultGrey() map[GreyShade]string {
	return map[GreyShade]string{
		Grey50:   "#fafafa",
		Grey100:  "#f5f5f5",
		Grey200:  "#eeeeee",
		Grey300:  "#e0e0e0",
		Grey400:  "#bdbdbd",
		Grey500:  "#9e9e9e",
		Grey600:  "#757575",
		Grey700:  "#616161",
		Grey800:  "#424242",
		Grey900:  "#212121",
		GreyA100: "#f5f5f5",
		GreyA200: "#eeeeee",
		GreyA400: "#bdbdbd",
		GreyA700: "#616161",
	}
}
