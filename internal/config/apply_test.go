package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/mora/internal/ui/components"
)

func TestApplyOverridesBase(t *testing.T) {
	t.Parallel()

	gap := 0
	cfg := &ThemeConfig{
		Version: "1.0",
		Name:    "Custom",
		Palette: PaletteConfig{
			Primary: &ColorConfig{Main: "rgb(0, 128, 0)", Light: "#00ff00"},
			Text:    &TextConfig{Secondary: "rgba(0, 0, 0, 0.5)"},
		},
		Layout:  &LayoutConfig{ColCount: 3, ColGap: &gap},
		Spacing: &SpacingConfig{Horizontal: 4},
	}
	require.NoError(t, Validate(cfg))

	base := components.DefaultTheme()
	theme := cfg.Apply(base)

	require.Equal(t, "#008000", theme.Palette.Primary.Main)
	require.Equal(t, "#00ff00", theme.Palette.Primary.Light)
	require.NotEmpty(t, theme.Palette.Primary.Dark)
	require.Equal(t, "#808080", theme.Palette.Text.Secondary)
	require.Equal(t, base.Palette.Error, theme.Palette.Error)
	require.Equal(t, components.Layout{ColCount: 3, ColGap: 0}, theme.Layout)
	require.Equal(t, 4, theme.Spacing.Horizontal)
	require.Equal(t, 1, theme.Spacing.Vertical)

	require.Equal(t, "#1976d2", base.Palette.Primary.Main, "Apply must not modify its base")
}

func TestThemeUsesBasePreset(t *testing.T) {
	t.Parallel()

	dark := (&ThemeConfig{Version: "1.0", Name: "d", Base: "dark"}).Theme()
	require.Equal(t, components.PaletteDark, dark.Palette.Type)

	light := (&ThemeConfig{Version: "1.0", Name: "l"}).Theme()
	require.Equal(t, components.PaletteLight, light.Palette.Type)

	var nilCfg *ThemeConfig
	require.Equal(t, components.PaletteLight, nilCfg.BaseTheme().Palette.Type)
}

func TestTranslucentColoursUseConfiguredBackground(t *testing.T) {
	t.Parallel()

	cfg := &ThemeConfig{
		Version: "1.0",
		Name:    "bg",
		Palette: PaletteConfig{
			Background: &BackgroundConfig{Primary: "#000000"},
			Divider:    "rgba(255, 255, 255, 0.5)",
		},
	}
	theme := cfg.Apply(components.DefaultTheme())

	require.Equal(t, "#000000", theme.Palette.Background.Primary.Main)
	require.Equal(t, "#ffffff", theme.Palette.Background.Primary.ContrastText)
	require.Equal(t, "#808080", theme.Palette.Divider)
}
