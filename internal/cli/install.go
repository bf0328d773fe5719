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
	"os"
	"strings"

	"github.com/haunguyendev/openproject-mcp-installer/internal/bootstrap"
	"github.com/haunguyendev/openproject-mcp-installer/internal/host"
	"github.com/haunguyendev/openproject-mcp-installer/internal/install"
	"github.com/haunguyendev/openproject-mcp-installer/pkg/core"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
)

// InstallCmd creates the install command
func InstallCmd() *cobra.Command {
	var (
		projectRoot    string
		url            string
		apiKey         string
		hostNames      []string
		skipBootstrap  bool
		nonInteractive bool
	)

	cmd := &cobra.Command{
		Use:   "install",
		Short: "Set up the server and register it with host applications",
		Long: `Install prepares a Python virtual environment for the OpenProject MCP
server, collects your OpenProject URL and API key, and registers the
server with the selected host applications.

Anything not supplied via flags is prompted for interactively. With
--non-interactive (or when stdin is not a terminal) all required inputs
must come from flags.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			interactive := !nonInteractive && term.IsTerminal(int(os.Stdin.Fd()))

			hosts, err := resolveHosts(hostNames, interactive)
			if err != nil {
				return err
			}

			url, err = resolveURL(url, interactive)
			if err != nil {
				return err
			}

			apiKey, err = resolveAPIKey(apiKey, interactive)
			if err != nil {
				return err
			}

			installer := install.New(bootstrap.NewVenvBootstrapper())
			err = installer.Install(cmd.Context(), install.Options{
				ProjectRoot:   projectRoot,
				URL:           url,
				APIKey:        apiKey,
				Hosts:         hosts,
				SkipBootstrap: skipBootstrap,
			})
			if err != nil {
				return err
			}

			names := make([]string, len(hosts))
			for i, h := range hosts {
				names[i] = h.Name
			}
			if err := saveConfig(projectRoot, url, names); err != nil {
				// The registration succeeded; a failed preference write
				// should not fail the run
				fmt.Fprintf(os.Stderr, "Warning: failed to save preferences: %v\n", err)
			}

			fmt.Println("\n🎉 Installation complete!")
			fmt.Println("📝 Restart the host application(s) to pick up the new server.")
			return nil
		},
	}

	cmd.Flags().StringVar(&projectRoot, "project", ".", "server project root (contains the entry script)")
	cmd.Flags().StringVar(&url, "url", "", "OpenProject instance URL")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "OpenProject API key")
	cmd.Flags().StringArrayVar(&hostNames, "host", nil, "host application to register with (repeatable: claude-desktop, claude-code, cursor)")
	cmd.Flags().BoolVar(&skipBootstrap, "skip-bootstrap", false, "skip virtual environment setup, only rewrite host configs")
	cmd.Flags().BoolVar(&nonInteractive, "non-interactive", false, "fail instead of prompting for missing inputs")

	return cmd
}

// resolveHosts turns --host flags into hosts, or asks. Without a
// terminal it falls back to whatever hosts are detected.
func resolveHosts(hostNames []string, interactive bool) ([]host.Host, error) {
	if len(hostNames) > 0 {
		hosts := make([]host.Host, 0, len(hostNames))
		for _, name := range hostNames {
			h, err := host.Get(name)
			if err != nil {
				return nil, err
			}
			hosts = append(hosts, h)
		}
		return hosts, nil
	}

	if interactive {
		fmt.Println("🔍 Choose which applications to register the server with")
		return selectHosts()
	}

	detected := host.Detect()
	if len(detected) == 0 {
		return nil, fmt.Errorf("%w: pass --host explicitly", core.ErrNoHostSelected)
	}
	return detected, nil
}

func resolveURL(url string, interactive bool) (string, error) {
	if strings.TrimSpace(url) != "" {
		return strings.TrimSpace(url), nil
	}

	if !interactive {
		return "", fmt.Errorf("%w: pass --url", core.ErrEmptyInput)
	}

	placeholder := "https://myproject.openproject.com"
	if last := viper.GetString("openproject_url"); last != "" {
		placeholder = last
	}

	answer, err := Prompt("Enter your OpenProject URL", placeholder)
	if err != nil {
		return "", err
	}
	if answer == "" && viper.GetString("openproject_url") != "" {
		// Accept the remembered value on empty input
		answer = viper.GetString("openproject_url")
	}
	if answer == "" {
		return "", fmt.Errorf("%w: OpenProject URL", core.ErrEmptyInput)
	}

	return answer, nil
}

func resolveAPIKey(apiKey string, interactive bool) (string, error) {
	if strings.TrimSpace(apiKey) != "" {
		return strings.TrimSpace(apiKey), nil
	}

	if !interactive {
		return "", fmt.Errorf("%w: pass --api-key", core.ErrEmptyInput)
	}

	answer, err := PromptSecret("Enter your OpenProject API key")
	if err != nil {
		return "", err
	}
	if answer == "" {
		return "", fmt.Errorf("%w: OpenProject API key", core.ErrEmptyInput)
	}

	return answer, nil
}
