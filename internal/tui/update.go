package tui

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/alexisbeaulieu97/mora/pkg/errors"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil
	case SubmittedMsg:
		return m.handleSubmitted(msg)
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.cancelled = true
			m.finished = true
			return m, tea.Quit
		case "tab", "down":
			return m, m.moveFocus(1)
		case "shift+tab", "up":
			return m, m.moveFocus(-1)
		}
	case tea.QuitMsg:
		m.finished = true
		return m, nil
	}

	items := m.focusables()
	if m.focus >= len(items) {
		m.focus = len(items) - 1
	}
	cmd := items[m.focus].Update(msg)
	m.username.SetValue(m.usernameValue)

	switch m.takeAction() {
	case actionSubmit:
		return m, tea.Batch(cmd, m.startSubmit())
	case actionReset:
		m.log.Info("form reset")
		m.build()
		return m, m.focusables()[0].Focus()
	}

	return m, cmd
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	items := m.focusables()
	items[m.focus].Blur()
	m.focus = (m.focus + delta + len(items)) % len(items)
	return items[m.focus].Focus()
}

func (m *Model) startSubmit() tea.Cmd {
	spin := m.submit.SetLoading(true)
	f := m.form
	submit := tea.Tick(submitDelay, func(time.Time) tea.Msg {
		sub, err := f.Submit()
		return SubmittedMsg{Submission: sub, Err: err}
	})
	return tea.Batch(spin, submit)
}

func (m Model) handleSubmitted(msg SubmittedMsg) (tea.Model, tea.Cmd) {
	m.submit.SetLoading(false)
	if msg.Err != nil {
		m.lastErr = msg.Err
		var verr *apperrors.ValidationError
		if errors.As(msg.Err, &verr) {
			m.log.Warn("submission rejected", "field", verr.Field, "reason", verr.Message)
			return m, m.focusField(verr.Field)
		}
		m.log.Error(msg.Err, "submission failed")
		return m, nil
	}

	m.lastErr = nil
	m.submissions = append(m.submissions, msg.Submission)
	m.log.Info("form submitted",
		"digest", msg.Submission.Digest,
		"changed", msg.Submission.Changed,
		"fields", len(msg.Submission.Values),
	)
	return m, nil
}

// focusField moves focus to the first component with the given form name.
func (m *Model) focusField(name string) tea.Cmd {
	type named interface{ Name() string }
	for i, item := range m.focusables() {
		n, ok := item.(named)
		if !ok || n.Name() != name {
			continue
		}
		m.focusables()[m.focus].Blur()
		m.focus = i
		return item.Focus()
	}
	return nil
}
