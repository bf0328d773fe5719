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

	"github.com/haunguyendev/openproject-mcp-installer/internal/bootstrap"
	"github.com/haunguyendev/openproject-mcp-installer/internal/host"
	"github.com/haunguyendev/openproject-mcp-installer/internal/install"
	"github.com/haunguyendev/openproject-mcp-installer/internal/manifest"
	"github.com/spf13/cobra"
)

// UninstallCmd creates the uninstall command
func UninstallCmd() *cobra.Command {
	var (
		projectRoot string
		hostNames   []string
	)

	cmd := &cobra.Command{
		Use:   "uninstall",
		Short: "Remove the server registration from host applications",
		Long: `Uninstall removes the server's entry from each host application's
mcpServers config. Other registered servers and unrelated settings are
left untouched. The virtual environment is not deleted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := manifest.Load(projectRoot)
			if err != nil {
				return err
			}

			var hosts []host.Host
			if len(hostNames) > 0 {
				for _, name := range hostNames {
					h, err := host.Get(name)
					if err != nil {
						return err
					}
					hosts = append(hosts, h)
				}
			} else {
				hosts = host.All()
			}

			fmt.Printf("🗑  Removing %q from %d host(s)...\n", m.Name, len(hosts))
			installer := install.New(bootstrap.NewVenvBootstrapper())
			return installer.Uninstall(hosts, m.Name)
		},
	}

	cmd.Flags().StringVar(&projectRoot, "project", ".", "server project root (read for the manifest)")
	cmd.Flags().StringArrayVar(&hostNames, "host", nil, "host application to remove from (default: all)")

	return cmd
}
