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

// Package host resolves the MCP config file locations of supported host
// applications. The merge logic never branches on OS or host; it
// receives a resolved path.

import (
	"fmt"

	"github.com/haunguyendev/openproject-mcp-installer/internal/utils"
	"github.com/haunguyendev/openproject-mcp-installer/pkg/core"
)

// Host is a desktop application that can launch MCP servers.
type Host struct {
	// Name is the stable identifier used on the CLI (--host).
	Name string
	// DisplayName is shown in interactive selection.
	DisplayName string
	// Description is shown in interactive selection.
	Description string

	// configPath resolves the host's MCP config file for this machine.
	configPath func() (string, error)
	// markerPath resolves a file or directory whose existence means the
	// host is installed. Distinct from configPath because some hosts
	// keep their config directly in the home directory.
	markerPath func() (string, error)
}

// ConfigPath returns the host's MCP config file path per this OS's
// convention. The file itself may not exist yet.
func (h Host) ConfigPath() (string, error) {
	return h.configPath()
}

// Present reports whether the host appears installed on this machine.
func (h Host) Present() bool {
	if path, err := h.configPath(); err == nil && utils.FileExists(path) {
		return true
	}
	marker, err := h.markerPath()
	if err != nil {
		return false
	}
	return utils.FileExists(marker)
}

// All returns the supported hosts in display order.
func All() []Host {
	return []Host{
		{
			Name:        "claude-desktop",
			DisplayName: "Claude Desktop",
			Description: "Anthropic's desktop app - reads claude_desktop_config.json",
			configPath:  claudeDesktopConfigPath,
			markerPath:  claudeDesktopMarkerPath,
		},
		{
			Name:        "claude-code",
			DisplayName: "Claude Code",
			Description: "Anthropic's terminal agent - reads ~/.claude.json",
			configPath:  claudeCodeConfigPath,
			markerPath:  claudeCodeMarkerPath,
		},
		{
			Name:        "cursor",
			DisplayName: "Cursor",
			Description: "Cursor editor - reads ~/.cursor/mcp.json",
			configPath:  cursorConfigPath,
			markerPath:  cursorMarkerPath,
		},
	}
}

// Get looks up a host by CLI name.
func Get(name string) (Host, error) {
	for _, h := range All() {
		if h.Name == name {
			return h, nil
		}
	}
	return Host{}, fmt.Errorf("%w: %s", core.ErrHostNotFound, name)
}

// Detect returns the hosts that appear present on this machine. An
// empty result means the caller should fall back to asking the user.
func Detect() []Host {
	var present []Host
	for _, h := range All() {
		if h.Present() {
			present = append(present, h)
		}
	}
	return present
}
