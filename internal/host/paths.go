package host

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
	"runtime"
)

// claudeDesktopConfigPath resolves Claude Desktop's config location.
func claudeDesktopConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Application Support", "Claude", "claude_desktop_config.json"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "Claude", "claude_desktop_config.json"), nil
		}
		return filepath.Join(homeDir, "AppData", "Roaming", "Claude", "claude_desktop_config.json"), nil
	default:
		// Linux builds of Claude Desktop follow XDG
		if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
			return filepath.Join(xdgConfig, "Claude", "claude_desktop_config.json"), nil
		}
		return filepath.Join(homeDir, ".config", "Claude", "claude_desktop_config.json"), nil
	}
}

// claudeCodeConfigPath resolves Claude Code's user-level config, which
// lives at ~/.claude.json on every OS.
func claudeCodeConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".claude.json"), nil
}

// cursorConfigPath resolves Cursor's global MCP config.
func cursorConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".cursor", "mcp.json"), nil
}

// claudeDesktopMarkerPath is the app's config directory.
func claudeDesktopMarkerPath() (string, error) {
	path, err := claudeDesktopConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}

// claudeCodeMarkerPath is ~/.claude, created on first run of the agent.
func claudeCodeMarkerPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".claude"), nil
}

// cursorMarkerPath is ~/.cursor.
func cursorMarkerPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".cursor"), nil
}
