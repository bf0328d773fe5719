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

	"github.com/charmbracelet/lipgloss"
	"github.com/haunguyendev/openproject-mcp-installer/internal/bootstrap"
	"github.com/haunguyendev/openproject-mcp-installer/internal/host"
	"github.com/haunguyendev/openproject-mcp-installer/internal/install"
	"github.com/haunguyendev/openproject-mcp-installer/internal/manifest"
	"github.com/spf13/cobra"
)

// ListCmd creates the list command
func ListCmd() *cobra.Command {
	var projectRoot string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Show MCP servers registered with each host application",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(projectRoot)
			if err != nil {
				return err
			}

			installer := install.New(bootstrap.NewVenvBootstrapper())
			statuses, err := installer.Status(host.All(), m.Name)
			if err != nil {
				return err
			}

			hostStyle := lipgloss.NewStyle().Bold(true)
			dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
			oursStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("205"))

			for _, status := range statuses {
				fmt.Println(hostStyle.Render(status.Host.DisplayName))
				fmt.Println(dimStyle.Render("  " + status.ConfigPath))

				if len(status.Servers) == 0 {
					fmt.Println(dimStyle.Render("  (no servers registered)"))
					fmt.Println()
					continue
				}

				for _, name := range status.Servers {
					if name == m.Name {
						fmt.Println("  " + oursStyle.Render(name+" ← this installer"))
					} else {
						fmt.Println("  " + name)
					}
				}
				fmt.Println()
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&projectRoot, "project", ".", "server project root (read for the manifest)")

	return cmd
}
