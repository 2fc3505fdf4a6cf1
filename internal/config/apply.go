package config

import (
	"github.com/alexisbeaulieu97/mora/internal/ui/components"
)

// BaseTheme returns the preset named by Base.
func (c *ThemeConfig) BaseTheme() components.Theme {
	if c != nil && c.Base == "dark" {
		return components.DarkTheme()
	}
	return components.DefaultTheme()
}

// Theme applies the configuration on top of its base preset.
func (c *ThemeConfig) Theme() components.Theme {
	return c.Apply(c.BaseTheme())
}

// Apply returns a copy of base with the configured overrides. Colours are
// expected to have passed Validate; any that fail to convert are skipped.
func (c *ThemeConfig) Apply(base components.Theme) components.Theme {
	if c == nil {
		return base
	}

	p := base.Palette
	if bg := c.Palette.Background; bg != nil {
		if v, ok := convert(bg.Primary, p.Background.Primary.Main); ok {
			p.Background.Primary = components.CreateMainColor(components.MainColorSpec{Main: v})
		}
		if v, ok := convert(bg.Secondary, p.Background.Primary.Main); ok {
			p.Background.Secondary = components.CreateMainColor(components.MainColorSpec{Main: v})
		}
	}

	// translucent colours sit on the primary surface
	over := p.Background.Primary.Main

	mains := map[components.MainColorName]*ColorConfig{
		components.ColorPrimary:   c.Palette.Primary,
		components.ColorSecondary: c.Palette.Secondary,
		components.ColorError:     c.Palette.Error,
		components.ColorSuccess:   c.Palette.Success,
		components.ColorWarning:   c.Palette.Warning,
		components.ColorInfo:      c.Palette.Info,
	}
	for _, name := range components.MainColorNames {
		cc := mains[name]
		if cc == nil {
			continue
		}
		main, ok := convert(cc.Main, over)
		if !ok {
			continue
		}
		spec := components.MainColorSpec{Main: main}
		spec.Light, _ = convert(cc.Light, over)
		spec.Dark, _ = convert(cc.Dark, over)
		spec.ContrastText, _ = convert(cc.ContrastText, over)
		p = p.WithMain(name, components.CreateMainColor(spec))
	}

	if t := c.Palette.Text; t != nil {
		setColor(&p.Text.Primary, t.Primary, over)
		setColor(&p.Text.Secondary, t.Secondary, over)
		setColor(&p.Text.Disabled, t.Disabled, over)
		setColor(&p.Text.Link, t.Link, over)
	}
	setColor(&p.Divider, c.Palette.Divider, over)

	theme := base.WithPalette(p)

	if l := c.Layout; l != nil {
		layout := theme.Layout
		if l.ColCount > 0 {
			layout.ColCount = l.ColCount
		}
		if l.ColGap != nil {
			layout.ColGap = *l.ColGap
		}
		theme = theme.WithLayout(layout)
	}

	if s := c.Spacing; s != nil {
		if s.Horizontal > 0 {
			theme.Spacing.Horizontal = s.Horizontal
		}
		if s.Vertical > 0 {
			theme.Spacing.Vertical = s.Vertical
		}
	}

	return theme.Normalize()
}

func convert(css, over string) (string, bool) {
	if css == "" {
		return "", false
	}
	v, err := components.ParseColor(css, over)
	if err != nil {
		return "", false
	}
	return v, true
}

func setColor(dst *string, css, over string) {
	if v, ok := convert(css, over); ok {
		*dst = v
	}
}
