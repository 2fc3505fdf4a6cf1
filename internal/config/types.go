package config

// ThemeConfig is the YAML theme file. Every section is optional; unset
// values keep the base theme's.
type ThemeConfig struct {
	Version string         `yaml:"version" validate:"required,semver"`
	Name    string         `yaml:"name" validate:"required,max=64"`
	Base    string         `yaml:"base,omitempty" validate:"omitempty,oneof=light dark"`
	Palette PaletteConfig  `yaml:"palette"`
	Layout  *LayoutConfig  `yaml:"layout,omitempty"`
	Spacing *SpacingConfig `yaml:"spacing,omitempty"`
}

// PaletteConfig overrides palette colours. Colours may be hex, rgb() or
// rgba(); translucent ones are flattened over the primary background.
type PaletteConfig struct {
	Primary    *ColorConfig      `yaml:"primary,omitempty"`
	Secondary  *ColorConfig      `yaml:"secondary,omitempty"`
	Error      *ColorConfig      `yaml:"error,omitempty"`
	Success    *ColorConfig      `yaml:"success,omitempty"`
	Warning    *ColorConfig      `yaml:"warning,omitempty"`
	Info       *ColorConfig      `yaml:"info,omitempty"`
	Text       *TextConfig       `yaml:"text,omitempty"`
	Background *BackgroundConfig `yaml:"background,omitempty"`
	Divider    string            `yaml:"divider,omitempty" validate:"omitempty,hexcolor|rgb|rgba"`
}

// ColorConfig describes one main colour. Missing shades are derived from
// Main.
type ColorConfig struct {
	Main         string `yaml:"main" validate:"required,hexcolor|rgb|rgba"`
	Light        string `yaml:"light,omitempty" validate:"omitempty,hexcolor|rgb|rgba"`
	Dark         string `yaml:"dark,omitempty" validate:"omitempty,hexcolor|rgb|rgba"`
	ContrastText string `yaml:"contrast_text,omitempty" validate:"omitempty,hexcolor|rgb|rgba"`
}

// TextConfig overrides text colours.
type TextConfig struct {
	Primary   string `yaml:"primary,omitempty" validate:"omitempty,hexcolor|rgb|rgba"`
	Secondary string `yaml:"secondary,omitempty" validate:"omitempty,hexcolor|rgb|rgba"`
	Disabled  string `yaml:"disabled,omitempty" validate:"omitempty,hexcolor|rgb|rgba"`
	Link      string `yaml:"link,omitempty" validate:"omitempty,hexcolor|rgb|rgba"`
}

// BackgroundConfig overrides the two surfaces.
type BackgroundConfig struct {
	Primary   string `yaml:"primary,omitempty" validate:"omitempty,hexcolor|rgb|rgba"`
	Secondary string `yaml:"secondary,omitempty" validate:"omitempty,hexcolor|rgb|rgba"`
}

// LayoutConfig overrides grid settings.
type LayoutConfig struct {
	ColCount int  `yaml:"col_count,omitempty" validate:"omitempty,min=1,max=12"`
	ColGap   *int `yaml:"col_gap,omitempty" validate:"omitempty,min=0,max=8"`
}

// SpacingConfig overrides the cell size of one spacing unit.
type SpacingConfig struct {
	Horizontal int `yaml:"horizontal,omitempty" validate:"omitempty,min=1,max=8"`
	Vertical   int `yaml:"vertical,omitempty" validate:"omitempty,min=1,max=4"`
}
