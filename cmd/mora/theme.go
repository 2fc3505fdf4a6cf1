package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/mora/internal/config"
	"github.com/alexisbeaulieu97/mora/internal/ui/components"
	"github.com/alexisbeaulieu97/mora/pkg/diff"
)

func newThemeCmd(app *AppContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Inspect and validate themes",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check <file>",
		Short: "Validate a YAML theme file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				app.Logger.Warn("theme rejected", "path", args[0], "error", err.Error())
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "theme %s is valid\n", cfg.Name)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the active theme's palette",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "Theme: %s\n%s\n", app.ThemeName, renderPalette(app.Theme))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "diff <theme> <theme>",
		Short: "Compare two themes by their resolved colours",
		Long: `Compare two themes by their resolved colours. Each argument is a preset
(light, dark) or a path to a YAML theme file.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			before, beforeName, err := resolveTheme(args[0])
			if err != nil {
				return err
			}
			after, afterName, err := resolveTheme(args[1])
			if err != nil {
				return err
			}
			listing := diff.Lines([]byte(describeTheme(before)), []byte(describeTheme(after)), beforeName, afterName)
			if listing == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "themes are identical")
				return nil
			}
			removed, added := diff.Changed(listing)
			app.Logger.Debug("themes compared", "removed", removed, "added", added)
			fmt.Fprint(cmd.OutOrStdout(), listing)
			return nil
		},
	})

	return cmd
}

// describeTheme lists the resolved colours and layout as key/value lines.
func describeTheme(theme components.Theme) string {
	p := theme.Palette
	var b strings.Builder
	fmt.Fprintf(&b, "type %s\n", p.Type)
	for _, name := range components.MainColorNames {
		c := p.Main(name)
		fmt.Fprintf(&b, "%s.main %s\n", name, c.Main)
		fmt.Fprintf(&b, "%s.light %s\n", name, c.Light)
		fmt.Fprintf(&b, "%s.dark %s\n", name, c.Dark)
		fmt.Fprintf(&b, "%s.contrast_text %s\n", name, c.ContrastText)
	}
	fmt.Fprintf(&b, "background.primary %s\n", p.Background.Primary.Main)
	fmt.Fprintf(&b, "background.secondary %s\n", p.Background.Secondary.Main)
	fmt.Fprintf(&b, "text.primary %s\n", p.Text.Primary)
	fmt.Fprintf(&b, "text.secondary %s\n", p.Text.Secondary)
	fmt.Fprintf(&b, "divider %s\n", p.Divider)
	fmt.Fprintf(&b, "layout.col_count %d\n", theme.Layout.ColCount)
	fmt.Fprintf(&b, "layout.col_gap %d\n", theme.Layout.ColGap)
	fmt.Fprintf(&b, "spacing.horizontal %d\n", theme.Spacing.Horizontal)
	fmt.Fprintf(&b, "spacing.vertical %d\n", theme.Spacing.Vertical)
	return b.String()
}

// renderPalette lists every main colour with a swatch per shade.
func renderPalette(theme components.Theme) string {
	p := theme.Palette
	swatch := func(hex string) string {
		return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ") + " " + hex
	}

	var b strings.Builder
	for _, name := range components.MainColorNames {
		c := p.Main(name)
		fmt.Fprintf(&b, "%-10s %s  %s  %s  text %s\n", name, swatch(c.Main), swatch(c.Light), swatch(c.Dark), c.ContrastText)
	}
	fmt.Fprintf(&b, "%-10s %s\n", "background", swatch(p.Background.Primary.Main))
	fmt.Fprintf(&b, "%-10s %s  %s\n", "text", swatch(p.Text.Primary), swatch(p.Text.Secondary))
	fmt.Fprintf(&b, "%-10s %s\n", "divider", swatch(p.Divider))
	fmt.Fprintf(&b, "layout     %d columns, gap %d", theme.Layout.ColCount, theme.Layout.ColGap)
	return b.String()
}
