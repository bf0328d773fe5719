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
	"os"
	"path/filepath"

	"github.com/haunguyendev/openproject-mcp-installer/internal/utils"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// configDirName is the installer's own config directory under $HOME.
const configDirName = ".opmcp"

// RootCmd returns the root command
func RootCmd() *cobra.Command {
	var configFile string

	rootCmd := &cobra.Command{
		Use:   "opmcp",
		Short: "Install the OpenProject MCP server into desktop AI applications",
		Long: `opmcp registers the OpenProject FastMCP server with host applications
(Claude Desktop, Claude Code, Cursor): it prepares a Python virtual
environment for the server and merges a launch entry into each host's
mcpServers config, leaving everything else in those files untouched.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(configFile)
		},
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default is $HOME/.opmcp/config.yaml)")

	rootCmd.AddCommand(
		InstallCmd(),
		UninstallCmd(),
		ListCmd(),
		DoctorCmd(),
		CompletionCmd(),
	)

	return rootCmd
}

// CompletionCmd generates shell completions
func CompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion script",
		Long: `To load completions:

Bash:
  $ source <(opmcp completion bash)

Zsh:
  $ source <(opmcp completion zsh)

Fish:
  $ opmcp completion fish | source

PowerShell:
  PS> opmcp completion powershell | Out-String | Invoke-Expression
`,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletion(os.Stdout)
			}
			return nil
		},
	}
	return cmd
}

func initConfig(configFile string) error {
	if configFile != "" {
		viper.SetConfigFile(configFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		configDir := filepath.Join(home, configDirName)
		if err := utils.EnsureDir(configDir); err != nil {
			return err
		}

		viper.AddConfigPath(configDir)
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	viper.AutomaticEnv()

	// Config is optional on first run
	_ = viper.ReadInConfig()

	return nil
}

// saveConfig remembers the last successful install's inputs (never the
// API key) so a re-run can offer them as defaults.
func saveConfig(projectRoot, url string, hostNames []string) error {
	viper.Set("project_root", projectRoot)
	viper.Set("openproject_url", url)
	viper.Set("hosts", hostNames)

	home, err := os.UserHomeDir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(home, configDirName)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}

	return viper.WriteConfigAs(filepath.Join(configDir, "config.yaml"))
}
