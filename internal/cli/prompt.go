package cli

// Copyright (C) 2025 The openproject-mcp-installer Authors
//
// This program is free software; you can redistribute it and/or
// modify it under the terms of the GNU General Public License
// as published by the Free Software Foundation; either version 2
// of the License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program; if not, write to the Free Software
// Foundation, Inc., 51 Franklin Street, Fifth Floor, Boston, MA  02110-1301, USA.

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// promptModel is a single-line text input
type promptModel struct {
	textInput textinput.Model
	question  string
	canceled  bool
}

func initialPromptModel(question, placeholder string, masked bool) promptModel {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()
	ti.CharLimit = 500
	ti.Width = 60
	if masked {
		ti.EchoMode = textinput.EchoPassword
		ti.EchoCharacter = '•'
	}

	return promptModel{
		textInput: ti,
		question:  question,
	}
}

func (m promptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.canceled = true
			return m, tea.Quit
		case tea.KeyEnter:
			return m, tea.Quit
		}
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	questionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	inputStyle := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("62")).
		Padding(0, 1)

	return fmt.Sprintf(
		"%s\n\n%s\n\n%s",
		questionStyle.Render(m.question),
		inputStyle.Render(m.textInput.View()),
		"(Press Enter to submit, Esc to cancel)",
	)
}

// Prompt asks the user a question and returns the trimmed answer.
func Prompt(question, placeholder string) (string, error) {
	return runPrompt(question, placeholder, false)
}

// PromptSecret asks for a secret with masked echo.
func PromptSecret(question string) (string, error) {
	return runPrompt(question, "", true)
}

func runPrompt(question, placeholder string, masked bool) (string, error) {
	p := tea.NewProgram(initialPromptModel(question, placeholder, masked))
	result, err := p.Run()
	if err != nil {
		return "", err
	}

	m, ok := result.(promptModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type")
	}
	if m.canceled {
		return "", fmt.Errorf("canceled")
	}

	return strings.TrimSpace(m.textInput.Value()), nil
}
