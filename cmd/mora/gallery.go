package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/mora/internal/logger"
	"github.com/alexisbeaulieu97/mora/internal/ui"
	"github.com/alexisbeaulieu97/mora/internal/ui/components"
)

const defaultGalleryWidth = 80

func newGalleryCmd(app *AppContext) *cobra.Command {
	var width int

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Print every component once with the active theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width <= 0 {
				return fmt.Errorf("width must be positive, got %d", width)
			}
			app.Logger.Debug("rendering gallery", "theme", app.ThemeName, "width", width)
			fmt.Fprintln(cmd.OutOrStdout(), renderGallery(app.Theme, width, app.Logger))
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", defaultGalleryWidth, "Width in cells to lay the gallery out in")

	return cmd
}

// renderGallery draws a static sheet of components. Nothing is focused, so
// the output is stable for a given theme and width.
func renderGallery(theme components.Theme, width int, log *logger.Logger) string {
	misuse := logger.MisuseReporter(log)
	ctx := components.DefaultContext().WithTheme(theme).WithParentWidth(width)

	section := func(title string, body ui.Renderable) ui.Renderable {
		return components.Column(components.Heading(3, title), body).WithSpace(0)
	}

	var headings []ui.Renderable
	for level := 1; level <= 6; level++ {
		headings = append(headings, components.Heading(level, fmt.Sprintf("Heading %d", level)))
	}
	typography := components.Column(append(headings,
		components.NewText("Subtitle text").WithVariant(components.TextSubtitle),
		components.NewText("Body text"),
		components.Caption("Caption text"),
	)...)

	var filled, outlined []ui.Renderable
	for _, name := range components.MainColorNames {
		filled = append(filled, components.NewButton(string(name)).WithColor(name))
		outlined = append(outlined, components.NewButton(string(name)).WithColor(name).WithVariant(components.ButtonOutline))
	}
	buttons := components.Column(
		components.Row(filled...).WithSpace(1),
		components.Row(outlined...).WithSpace(1),
		components.Row(
			components.NewButton("Small").WithSize(components.ButtonSmall),
			components.NewButton("Text").WithVariant(components.ButtonText),
			components.NewButton("Disabled").WithDisabled(true),
		).WithSpace(1),
	)

	checked := true
	checkboxes := components.Row(
		components.NewCheckbox(components.CheckboxProps{Label: "Unchecked", OnMisuse: misuse}),
		components.NewCheckbox(components.CheckboxProps{Label: "Checked", DefaultChecked: &checked, OnMisuse: misuse}),
		components.NewCheckbox(components.CheckboxProps{Label: "Intermediate", Intermediate: true, OnMisuse: misuse}),
	).WithSpace(2)

	name := "Ada"
	textfields := components.Grid(2,
		components.NewTextField(components.TextFieldProps{Label: "Name", DefaultValue: &name, HelperText: "Prefilled", OnMisuse: misuse}),
		components.NewTextField(components.TextFieldProps{Label: "Email", Placeholder: "you@example.com", Required: true, OnMisuse: misuse}),
		components.NewTextField(components.TextFieldProps{Label: "Password", Type: components.InputPassword, OnMisuse: misuse}),
		components.NewTextField(components.TextFieldProps{Label: "Price", PreInputText: "$", PostInputText: "USD", Type: components.InputNumber, OnMisuse: misuse}),
	)

	expanded := true
	accordions := components.Column(
		components.NewAccordion(components.AccordionProps{
			Title:           "Expanded",
			DefaultExpanded: &expanded,
			Content:         components.NewText("Accordion content"),
			OnMisuse:        misuse,
		}),
		components.NewAccordion(components.AccordionProps{
			Title:    "Collapsed",
			Content:  components.NewText("Hidden content"),
			OnMisuse: misuse,
		}),
	).WithSpace(0)

	items := func() []*components.MenuItem {
		return []*components.MenuItem{
			components.NewMenuItem("⌂", "Home").WithSelected(true),
			components.NewMenuItem("✉", "Inbox"),
			components.NewMenuItem("⚙", "Settings"),
		}
	}
	menus := components.Row(
		components.NewMenu(16, 3, items()...),
		components.NewMenu(16, 3, items()...).WithClosed(true),
	).WithSpace(2)

	var cells []ui.Renderable
	for i := 1; i <= theme.Layout.ColCount*2; i++ {
		cells = append(cells, components.NewText(fmt.Sprintf("cell %d", i)))
	}
	grid := components.Grid(theme.Layout.ColCount, cells...)

	sheet := components.Column(
		section("Typography", typography),
		section("Buttons", buttons),
		section("Checkboxes", checkboxes),
		section("Text fields", textfields),
		section("Accordion", accordions),
		section("Menu", menus),
		section("Grid", grid),
	).WithSpace(1)

	return sheet.ViewWithContext(ctx)
}
