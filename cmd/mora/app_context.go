package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/alexisbeaulieu97/mora/internal/config"
	"github.com/alexisbeaulieu97/mora/internal/logger"
	"github.com/alexisbeaulieu97/mora/internal/ui/components"
)

// AppContext bundles the services every command needs.
type AppContext struct {
	Logger    *logger.Logger
	Theme     components.Theme
	ThemeName string
	LogLevel  string
}

// setup resolves the logger and theme from the root flags. The theme flag
// takes a preset name or a path to a YAML theme file.
func (a *AppContext) setup(flags *rootFlags, errOut io.Writer) error {
	log, err := logger.New(logger.Options{
		Level:         flags.logLevel,
		HumanReadable: flags.human,
		Writer:        errOut,
		Component:     "mora",
	})
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", flags.logLevel, err)
	}
	a.Logger = log
	a.LogLevel = flags.logLevel

	theme, name, err := resolveTheme(flags.theme)
	if err != nil {
		return err
	}
	a.Theme, a.ThemeName = theme, name
	log.Debug("theme resolved", "theme", flags.theme, "name", name)
	return nil
}

// resolveTheme turns a preset name or a YAML file path into a theme.
func resolveTheme(ref string) (components.Theme, string, error) {
	ref = strings.TrimSpace(ref)
	switch strings.ToLower(ref) {
	case "", "light":
		return components.DefaultTheme(), "light", nil
	case "dark":
		return components.DarkTheme(), "dark", nil
	}
	cfg, err := config.Load(ref)
	if err != nil {
		return components.Theme{}, "", err
	}
	return cfg.Theme(), cfg.Name, nil
}
