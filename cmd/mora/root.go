package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	theme    string
	logLevel string
	human    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &AppContext{}

	cmd := &cobra.Command{
		Use:           "mora",
		Short:         "Mora renders themeable terminal UI components",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup(flags, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "light", "Theme preset (light, dark) or path to a YAML theme file")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVar(&flags.human, "human", false, "Write human readable logs instead of JSON")

	cmd.AddCommand(newGalleryCmd(app))
	cmd.AddCommand(newDemoCmd(app))
	cmd.AddCommand(newThemeCmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
