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

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/haunguyendev/openproject-mcp-installer/internal/host"
)

// hostItem is one selectable host application
type hostItem struct {
	host     host.Host
	selected bool
	present  bool
}

func (i hostItem) FilterValue() string { return i.host.DisplayName }
func (i hostItem) Title() string {
	checkbox := "☐"
	if i.selected {
		checkbox = "☑"
	}
	detected := ""
	if i.present {
		detected = " (detected)"
	}
	return fmt.Sprintf("%s %s%s", checkbox, i.host.DisplayName, detected)
}
func (i hostItem) Description() string { return i.host.Description }

// hostModel is the multi-select list of host applications
type hostModel struct {
	list    list.Model
	choices []string
}

func (m hostModel) Init() tea.Cmd {
	return nil
}

func (m hostModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.choices = nil
			return m, tea.Quit
		case "enter":
			return m, tea.Quit
		case " ":
			if i, ok := m.list.SelectedItem().(hostItem); ok {
				idx := m.list.Index()
				if containsString(m.choices, i.host.Name) {
					m.choices = removeString(m.choices, i.host.Name)
				} else {
					m.choices = append(m.choices, i.host.Name)
				}

				items := m.list.Items()
				if idx < len(items) {
					if item, ok := items[idx].(hostItem); ok {
						item.selected = !item.selected
						items[idx] = item
						m.list.SetItems(items)
					}
				}
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m hostModel) View() string {
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true)

	instructionsStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240"))

	status := statusStyle.Render(fmt.Sprintf("Selected: %d/%d hosts", len(m.choices), len(m.list.Items())))
	instructions := instructionsStyle.Render("Space to toggle selection • ↑↓ to navigate • Enter to continue")

	return m.list.View() + "\n\n" + status + "\n" + instructions
}

// selectHosts shows a multi-select of supported hosts. Hosts that look
// installed on this machine are pre-selected.
func selectHosts() ([]host.Host, error) {
	hosts := host.All()

	var preSelected []string
	items := make([]list.Item, len(hosts))
	for i, h := range hosts {
		present := h.Present()
		items[i] = hostItem{host: h, selected: present, present: present}
		if present {
			preSelected = append(preSelected, h.Name)
		}
	}

	listHeight := len(hosts)*3 + 12
	l := list.New(items, list.NewDefaultDelegate(), 75, listHeight)
	l.Title = "Select host applications to register with"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)
	l.Styles.Title = lipgloss.NewStyle().
		Background(lipgloss.Color("62")).
		Foreground(lipgloss.Color("230")).
		Padding(0, 1)

	model := hostModel{list: l, choices: preSelected}

	p := tea.NewProgram(model)
	result, err := p.Run()
	if err != nil {
		return nil, err
	}

	m, ok := result.(hostModel)
	if !ok {
		return nil, fmt.Errorf("unexpected model type")
	}

	selected := make([]host.Host, 0, len(m.choices))
	for _, name := range m.choices {
		h, err := host.Get(name)
		if err != nil {
			return nil, err
		}
		selected = append(selected, h)
	}

	return selected, nil
}

func containsString(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}

func removeString(slice []string, item string) []string {
	var result []string
	for _, s := range slice {
		if s != item {
			result = append(result, s)
		}
	}
	return result
}
