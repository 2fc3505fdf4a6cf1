// Package components provides themeable terminal UI components built on
// lipgloss and bubbletea.
//
// # Overview
//
// The package has three layers:
//
//  1. Theme layer: an immutable Theme built from a Palette of main colours
//     (main, light, dark and contrast text shades), text, action and
//     background colours, plus spacing, typography and grid settings.
//  2. Modifier layer: StyleFunc values that turn theme data into lipgloss
//     styles.
//  3. Component layer: Box, Text, Button, Checkbox, TextField, Accordion
//     and Menu.
//
// # Theme
//
// The theme travels in a RenderContext; nothing reads a global:
//
//	ctx := components.DefaultContext().WithTheme(components.DarkTheme())
//	out := box.ViewWithContext(ctx.WithParentWidth(80))
//
// View() renders with DefaultContext.
//
// # Layout
//
// Box is the only layout primitive:
//
//	page := components.Column(
//		components.Heading(1, "Sign up"),
//		components.Grid(components.GridDefault,
//			email, password,
//			components.Span(2, terms),
//		),
//		components.Row(cancel, submit).WithJustify(components.JustifyEnd),
//	).WithSpace(1).AsContainer(components.ContainerM)
//
// # Fields
//
// Checkbox, TextField and Accordion each wrap a field.Field. Passing a value
// pointer (Checked, Value, Expanded) makes the component controlled: user
// input only reports a change event and the caller feeds the next value back
// through SetChecked, SetValue or SetExpanded. Without one the component keeps
// its own state seeded from the default.
//
// Interactive components take keys through Update while focused. ActivateKeys
// press buttons, checkboxes and accordion headers.
package components
