package manifest

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

// Package manifest loads an optional mcp-manifest.yaml from the server
// project root. It lets a fork rename the server or move the entry
// point without patching the installer.

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/haunguyendev/openproject-mcp-installer/pkg/core"
	"gopkg.in/yaml.v3"
)

// FileName is the manifest file looked up in the project root.
const FileName = "mcp-manifest.yaml"

// Manifest describes the server being registered.
type Manifest struct {
	// Name is the key under mcpServers in host configs.
	Name string `yaml:"name"`
	// EntryScript is the stdio entry point, relative to the project root.
	EntryScript string `yaml:"entry_script"`
	// Requirements is the pip requirements file, relative to the project
	// root. Empty disables dependency installation.
	Requirements string `yaml:"requirements"`
	// ExtraEnv is merged into the entry's env block. The installer's own
	// variables (PYTHONPATH, OPENPROJECT_URL, OPENPROJECT_API_KEY) win
	// on conflict.
	ExtraEnv map[string]string `yaml:"extra_env"`
}

// Default returns the compiled-in manifest matching the upstream
// OpenProject FastMCP server layout.
func Default() Manifest {
	return Manifest{
		Name:         core.DefaultServerName,
		EntryScript:  core.DefaultEntryScript,
		Requirements: core.DefaultRequirementsFile,
	}
}

// Load reads the manifest from projectRoot, falling back to Default
// when the file is absent. Fields left empty in the file keep their
// default values.
func Load(projectRoot string) (Manifest, error) {
	m := Default()

	path := filepath.Join(projectRoot, FileName)
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return m, nil
	}
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest: %w", err)
	}

	if err := yaml.Unmarshal(data, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	// Restore defaults the file blanked out
	if m.Name == "" {
		m.Name = core.DefaultServerName
	}
	if m.EntryScript == "" {
		m.EntryScript = core.DefaultEntryScript
	}

	return m, nil
}
