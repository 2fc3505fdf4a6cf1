package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, PaletteLight, theme.Palette.Type)
	assert.Equal(t, "#1976d2", theme.Palette.Primary.Main)
	assert.Equal(t, "#d32f2f", theme.Palette.Error.Main)
	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, Layout{ColCount: 2, ColGap: 2}, theme.Layout)
	assert.True(t, theme.Typography.H1.GetBold(), "headings should be bold")
}

func TestDarkTheme(t *testing.T) {
	light := DefaultTheme()
	dark := DarkTheme()

	assert.Equal(t, PaletteDark, dark.Palette.Type)
	assert.Equal(t, light.Palette.Primary, dark.Palette.Primary)
	assert.NotEqual(t, light.Palette.Background.Primary.Main, dark.Palette.Background.Primary.Main)
	assert.NotEqual(t, light.Typography.Body.GetForeground(), dark.Typography.Body.GetForeground())
}

func TestNormalizeFillsDefaults(t *testing.T) {
	theme := Theme{Layout: Layout{ColGap: -3}}.Normalize()
	assert.Equal(t, SpacingConfig{Horizontal: 2, Vertical: 1}, theme.Spacing)
	assert.Equal(t, 2, theme.Layout.ColCount)
	assert.Equal(t, 0, theme.Layout.ColGap)

	wide := DefaultTheme().WithLayout(Layout{ColCount: 3, ColGap: 4})
	assert.Equal(t, 3, wide.Layout.ColCount)
	assert.Equal(t, 2, DefaultTheme().Layout.ColCount, "WithLayout returns a copy")
}

func TestCreateMainColorDerivesMissingShades(t *testing.T) {
	c := CreateMainColor(MainColorSpec{Main: "#1976d2"})

	main, err := colorful.Hex(c.Main)
	require.NoError(t, err)
	light, err := colorful.Hex(c.Light)
	require.NoError(t, err)
	dark, err := colorful.Hex(c.Dark)
	require.NoError(t, err)

	lm, _, _ := main.Lab()
	ll, _, _ := light.Lab()
	ld, _, _ := dark.Lab()
	assert.Greater(t, ll, lm)
	assert.Less(t, ld, lm)
	assert.NotEmpty(t, c.ContrastText)

	given := CreateMainColor(MainColorSpec{Main: "#000000", Light: "#111111", Dark: "#222222", ContrastText: "#333333"})
	assert.Equal(t, MainColor{Main: "#000000", Light: "#111111", Dark: "#222222", ContrastText: "#333333"}, given)
}

func TestContrastText(t *testing.T) {
	assert.Equal(t, "#000000", contrastText("#ffff00"))
	assert.Equal(t, "#000000", contrastText("#ffffff"))
	assert.Equal(t, "#ffffff", contrastText("#000080"))
	assert.Equal(t, "#ffffff", contrastText("#212121"))
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		name string
		css  string
		over string
		want string
	}{
		{name: "short hex", css: "#FFF", want: "#ffffff"},
		{name: "long hex", css: "#1976d2", want: "#1976d2"},
		{name: "rgb", css: "rgb(25, 118, 210)", want: "#1976d2"},
		{name: "opaque rgba", css: "rgba(25,118,210,1)", want: "#1976d2"},
		{name: "translucent over white", css: "rgba(0, 0, 0, 0.87)", want: "#212121"},
		{name: "translucent over black", css: "rgba(255, 255, 255, 0.5)", over: "#000000", want: "#808080"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.css, tt.over)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseColorRejectsBadInput(t *testing.T) {
	for _, css := range []string{"", "blue", "hsl(1, 2%, 3%)", "rgb(1, 2)", "rgb(300, 0, 0)", "rgba(0, 0, 0, 2)", "#12"} {
		_, err := ParseColor(css, "")
		assert.Error(t, err, css)
	}
}

func TestPaletteMainLookup(t *testing.T) {
	p := DefaultPalette()
	for _, name := range MainColorNames {
		assert.NotEmpty(t, p.Main(name).Main, string(name))
	}
	assert.Equal(t, p.Primary, p.Main("unknown"))

	custom := CreateMainColor(MainColorSpec{Main: "#00ff00"})
	updated := p.WithMain(ColorSuccess, custom)
	assert.Equal(t, custom, updated.Success)
	assert.NotEqual(t, custom, p.Success, "WithMain returns a copy")
}

func TestStyleFuncs(t *testing.T) {
	theme := DefaultTheme()

	bg := Background(ColorPrimary)(lipgloss.NewStyle(), theme)
	assert.Equal(t, lipgloss.Color(theme.Palette.Primary.Main), bg.GetBackground())
	assert.Equal(t, lipgloss.Color(theme.Palette.Primary.ContrastText), bg.GetForeground())

	padded := PaddingX(1)(lipgloss.NewStyle(), theme)
	assert.Equal(t, 2, padded.GetPaddingLeft())
	assert.Equal(t, 2, padded.GetPaddingRight())

	margin := MarginY(2)(lipgloss.NewStyle(), theme)
	assert.Equal(t, 2, margin.GetMarginTop())

	text := NewText("hi").WithAppliers(PaddingX(1))
	assert.Equal(t, "  hi  ", text.View())
}

func TestHeadingClampsLevel(t *testing.T) {
	assert.Equal(t, TextH1, Heading(0, "x").variant)
	assert.Equal(t, TextH3, Heading(3, "x").variant)
	assert.Equal(t, TextH6, Heading(9, "x").variant)
	assert.Equal(t, TextCaption, Caption("x").variant)
}
