package components

import (
	"github.com/charmbracelet/lipgloss"
)

// BorderVariant selects a border from the theme.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
	BorderVariantDouble
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TextVariant selects a typography preset.
type TextVariant int

const (
	TextBody TextVariant = iota
	TextH1
	TextH2
	TextH3
	TextH4
	TextH5
	TextH6
	TextSubtitle
	TextCaption
	TextButton
)

// TypographyScale holds one style per text variant.
type TypographyScale struct {
	Body     lipgloss.Style
	H1       lipgloss.Style
	H2       lipgloss.Style
	H3       lipgloss.Style
	H4       lipgloss.Style
	H5       lipgloss.Style
	H6       lipgloss.Style
	Subtitle lipgloss.Style
	Caption  lipgloss.Style
	Button   lipgloss.Style
}

// Layout controls grids and containers. ColGap is measured in cells.
type Layout struct {
	ColCount int
	ColGap   int
}

// SpacingConfig converts abstract spacing units into terminal cells.
// Horizontal units are wider than vertical ones because cells are roughly
// twice as tall as they are wide.
type SpacingConfig struct {
	Horizontal int
	Vertical   int
}

// Theme represents an immutable styling theme for components.
// Build a variant with the With* helpers; they return copies.
type Theme struct {
	Palette    Palette
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
	Layout     Layout
}

// NewTheme builds a theme around palette with the default borders, spacing
// and layout.
func NewTheme(palette Palette) Theme {
	return Theme{
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Spacing:    SpacingConfig{Horizontal: 2, Vertical: 1},
		Typography: defaultTypography(palette),
		Layout:     Layout{ColCount: 2, ColGap: 2},
	}.Normalize()
}

// DefaultTheme returns the light theme.
func DefaultTheme() Theme {
	return NewTheme(DefaultPalette())
}

// DarkTheme returns the dark theme.
func DarkTheme() Theme {
	return NewTheme(DarkPalette())
}

// WithPalette returns a copy of the theme using palette, with typography
// recomputed to match.
func (t Theme) WithPalette(palette Palette) Theme {
	t.Palette = palette
	t.Typography = defaultTypography(palette)
	return t
}

// WithLayout returns a copy of the theme with layout replaced.
func (t Theme) WithLayout(layout Layout) Theme {
	t.Layout = layout
	return t.Normalize()
}

// Normalize fills zero-valued settings with defaults.
func (t Theme) Normalize() Theme {
	if t.Spacing.Horizontal <= 0 {
		t.Spacing.Horizontal = 2
	}
	if t.Spacing.Vertical <= 0 {
		t.Spacing.Vertical = 1
	}
	if t.Layout.ColCount <= 0 {
		t.Layout.ColCount = 2
	}
	if t.Layout.ColGap < 0 {
		t.Layout.ColGap = 0
	}
	return t
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(lipgloss.Color(p.Text.Primary))
	heading := base.Bold(true)

	return TypographyScale{
		Body:     base,
		H1:       heading.Underline(true).MarginBottom(1),
		H2:       heading.Underline(true),
		H3:       heading.Foreground(lipgloss.Color(p.Primary.Main)),
		H4:       heading,
		H5:       heading.Foreground(lipgloss.Color(p.Text.Secondary)),
		H6:       heading.Foreground(lipgloss.Color(p.Text.Secondary)).Italic(true),
		Subtitle: base.Foreground(lipgloss.Color(p.Text.Secondary)),
		Caption:  base.Foreground(lipgloss.Color(p.Text.Secondary)).Faint(true),
		Button:   lipgloss.NewStyle().Bold(true),
	}
}

// TypographyStyle returns the style for variant.
func TypographyStyle(theme Theme, variant TextVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TextH1:
		return typo.H1
	case TextH2:
		return typo.H2
	case TextH3:
		return typo.H3
	case TextH4:
		return typo.H4
	case TextH5:
		return typo.H5
	case TextH6:
		return typo.H6
	case TextSubtitle:
		return typo.Subtitle
	case TextCaption:
		return typo.Caption
	case TextButton:
		return typo.Button
	default:
		return typo.Body
	}
}

// BorderForVariant returns the border style for the given variant.
func BorderForVariant(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	case BorderVariantThick:
		return theme.Borders.Thick
	case BorderVariantDouble:
		return theme.Borders.Double
	default:
		return theme.Borders.None
	}
}

// MainColorFor returns the named main colour from the theme palette.
func MainColorFor(theme Theme, name MainColorName) MainColor {
	return theme.Palette.Main(name)
}

// SpaceX converts horizontal spacing units into cells.
func SpaceX(theme Theme, units int) int {
	if units <= 0 {
		return 0
	}
	return units * theme.Spacing.Horizontal
}

// SpaceY converts vertical spacing units into lines.
func SpaceY(theme Theme, units int) int {
	if units <= 0 {
		return 0
	}
	return units * theme.Spacing.Vertical
}

// Fluent modifier functions

// Background fills with a main colour and switches text to its contrast colour.
//
// Example:
//
//	box := NewBox().WithAppliers(Background(ColorPrimary))
func Background(name MainColorName) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		c := theme.Palette.Main(name)
		return base.Background(lipgloss.Color(c.Main)).Foreground(lipgloss.Color(c.ContrastText))
	}
}

// Foreground colours text with a main colour.
func Foreground(name MainColorName) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(lipgloss.Color(theme.Palette.Main(name).Main))
	}
}

// SurfaceSlot selects one of the palette's background surfaces.
type SurfaceSlot int

const (
	SurfacePrimary SurfaceSlot = iota
	SurfaceSecondary
)

// Surface paints a palette background surface.
func Surface(slot SurfaceSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		c := theme.Palette.Background.Primary
		if slot == SurfaceSecondary {
			c = theme.Palette.Background.Secondary
		}
		return base.Background(lipgloss.Color(c.Main)).Foreground(lipgloss.Color(c.ContrastText))
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Border(BorderForVariant(theme, variant)).
			BorderForeground(lipgloss.Color(theme.Palette.Divider))
	}
}

// PaddingX pads left and right by spacing units.
func PaddingX(units int) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := SpaceX(theme, units)
		return base.PaddingLeft(v).PaddingRight(v)
	}
}

// PaddingY pads top and bottom by spacing units.
func PaddingY(units int) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := SpaceY(theme, units)
		return base.PaddingTop(v).PaddingBottom(v)
	}
}

// MarginX adds left and right margin in spacing units.
func MarginX(units int) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := SpaceX(theme, units)
		return base.MarginLeft(v).MarginRight(v)
	}
}

// MarginY adds top and bottom margin in spacing units.
func MarginY(units int) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		v := SpaceY(theme, units)
		return base.MarginTop(v).MarginBottom(v)
	}
}

// Typography applies typography styling
func Typography(variant TextVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(theme, variant))
	}
}
