package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/mora/internal/form"
	"github.com/alexisbeaulieu97/mora/internal/logger"
	"github.com/alexisbeaulieu97/mora/internal/tui"
)

var errNotTerminal = errors.New("demo requires an interactive terminal")

type demoOptions struct {
	logFile string
}

func newDemoCmd(app *AppContext) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive sign-up form",
		Long: `Launch an interactive form built from the component library.
Tab and shift+tab move focus, enter or space activates, esc quits.
The last accepted submission is printed as JSON on exit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, app, opts)
		},
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write logs to this file while the form is running")

	return cmd
}

func runDemo(cmd *cobra.Command, app *AppContext, opts *demoOptions) error {
	if !isTerminal(cmd.InOrStdin()) || !isTerminal(cmd.OutOrStdout()) {
		return errNotTerminal
	}

	// Logs on stderr would tear the rendered form, so they go to a file or nowhere.
	log := logger.Nop()
	if opts.logFile != "" {
		file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		defer file.Close()

		log, err = logger.New(logger.Options{Level: app.LogLevel, Writer: file, Component: "demo"})
		if err != nil {
			return err
		}
	}

	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		width = 0
	}

	model := tui.NewModel(tui.Options{Theme: app.Theme, Width: width, Logger: log})
	program := tea.NewProgram(model, tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	final, err := program.Run()
	if err != nil {
		log.Error(err, "demo execution failed")
		return fmt.Errorf("failed to run demo: %w", err)
	}

	result, ok := final.(tui.Model)
	if !ok {
		return nil
	}
	submissions := result.Submissions()
	if len(submissions) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No submission.")
		return nil
	}
	return writeSubmission(cmd.OutOrStdout(), submissions[len(submissions)-1])
}

type submissionJSON struct {
	Values form.Values `json:"values"`
	Digest string      `json:"digest"`
}

func writeSubmission(w io.Writer, sub form.Submission) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(submissionJSON{Values: sub.Values, Digest: sub.Digest})
}

func isTerminal(stream any) bool {
	if file, ok := stream.(*os.File); ok {
		return termIsTerminal(int(file.Fd()))
	}
	return false
}

var termIsTerminal = func(fd int) bool {
	return term.IsTerminal(fd)
}
