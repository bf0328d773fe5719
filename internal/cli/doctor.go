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
	"path/filepath"

	"github.com/haunguyendev/openproject-mcp-installer/internal/bootstrap"
	"github.com/haunguyendev/openproject-mcp-installer/internal/host"
	"github.com/haunguyendev/openproject-mcp-installer/internal/install"
	"github.com/haunguyendev/openproject-mcp-installer/internal/manifest"
	"github.com/haunguyendev/openproject-mcp-installer/internal/utils"
	"github.com/spf13/cobra"
)

// DoctorCmd creates the doctor command
func DoctorCmd() *cobra.Command {
	var projectRoot string

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check install preconditions and current registration state",
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := false

			root, err := filepath.Abs(projectRoot)
			if err != nil {
				return err
			}

			m, err := manifest.Load(root)
			if err != nil {
				return err
			}

			fmt.Println("🩺 Checking environment...")

			if python, err := bootstrap.FindPython(); err != nil {
				fmt.Printf("  ❌ Python: %v\n", err)
				failed = true
			} else {
				fmt.Printf("  ✅ Python: %s\n", python)
			}

			entryScript := filepath.Join(root, m.EntryScript)
			if utils.FileExists(entryScript) {
				fmt.Printf("  ✅ Entry script: %s\n", entryScript)
			} else {
				fmt.Printf("  ❌ Entry script missing: %s\n", entryScript)
				failed = true
			}

			b := bootstrap.NewVenvBootstrapper()
			if venvPython := b.InterpreterPath(root); utils.FileExists(venvPython) {
				fmt.Printf("  ✅ Virtual environment: %s\n", venvPython)
			} else {
				fmt.Printf("  ⚠️  Virtual environment not created yet (run 'opmcp install')\n")
			}

			fmt.Println("\n🩺 Checking host applications...")

			installer := install.New(b)
			statuses, err := installer.Status(host.All(), m.Name)
			if err != nil {
				return err
			}

			for _, status := range statuses {
				if !status.Host.Present() {
					fmt.Printf("  ➖ %s: not detected\n", status.Host.DisplayName)
					continue
				}
				if status.Registered {
					fmt.Printf("  ✅ %s: %q registered\n", status.Host.DisplayName, m.Name)
				} else {
					fmt.Printf("  ⚠️  %s: detected, %q not registered\n", status.Host.DisplayName, m.Name)
				}
			}

			if failed {
				return fmt.Errorf("doctor found problems")
			}

			fmt.Println("\n✨ All checks passed")
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRoot, "project", ".", "server project root")

	return cmd
}
