package core

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

// Identity of the OpenProject FastMCP server as registered in host
// application config files. The manifest can override any of these.
const (
	// DefaultServerName is the key under "mcpServers" in host configs.
	DefaultServerName = "openproject-fastmcp"

	// DefaultEntryScript is the stdio transport entry point, relative to
	// the project root.
	DefaultEntryScript = "openproject-mcp-fastmcp.py"

	// DefaultRequirementsFile lists the server's Python dependencies.
	DefaultRequirementsFile = "requirements.txt"
)

// Environment variables the server reads at launch.
const (
	EnvPythonPath = "PYTHONPATH"
	EnvURL        = "OPENPROJECT_URL"
	EnvAPIKey     = "OPENPROJECT_API_KEY"
)

// Minimum Python version required by FastMCP.
const (
	MinPythonMajor = 3
	MinPythonMinor = 10
)
