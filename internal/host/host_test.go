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
	"testing"

	"github.com/haunguyendev/openproject-mcp-installer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll(t *testing.T) {
	hosts := All()
	require.Len(t, hosts, 3)

	seen := map[string]bool{}
	for _, h := range hosts {
		seen[h.Name] = true

		path, err := h.ConfigPath()
		require.NoError(t, err)
		assert.True(t, filepath.IsAbs(path), "config path should be absolute: %s", path)
		assert.Equal(t, ".json", filepath.Ext(path))
	}

	assert.True(t, seen["claude-desktop"])
	assert.True(t, seen["claude-code"])
	assert.True(t, seen["cursor"])
}

func TestGet(t *testing.T) {
	t.Run("Known Host", func(t *testing.T) {
		h, err := Get("cursor")
		require.NoError(t, err)
		assert.Equal(t, "Cursor", h.DisplayName)
	})

	t.Run("Unknown Host", func(t *testing.T) {
		_, err := Get("zed")
		assert.ErrorIs(t, err, core.ErrHostNotFound)
	})
}

func TestClaudeDesktopConfigPath(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("HOME override not applicable on Windows")
	}

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)

	h, err := Get("claude-desktop")
	require.NoError(t, err)

	path, err := h.ConfigPath()
	require.NoError(t, err)

	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, filepath.Join(tempDir, "Library", "Application Support", "Claude", "claude_desktop_config.json"), path)
	default:
		t.Setenv("XDG_CONFIG_HOME", "")
		path, err = h.ConfigPath()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(tempDir, ".config", "Claude", "claude_desktop_config.json"), path)
	}
}

func TestPresent(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("HOME override not applicable on Windows")
	}

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")

	h, err := Get("claude-code")
	require.NoError(t, err)
	assert.False(t, h.Present())

	require.NoError(t, os.WriteFile(filepath.Join(tempDir, ".claude.json"), []byte("{}"), 0644))
	assert.True(t, h.Present())
}

func TestDetect(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("HOME override not applicable on Windows")
	}

	tempDir := t.TempDir()
	t.Setenv("HOME", tempDir)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("APPDATA", "")

	assert.Empty(t, Detect())

	require.NoError(t, os.MkdirAll(filepath.Join(tempDir, ".cursor"), 0755))
	detected := Detect()
	require.Len(t, detected, 1)
	assert.Equal(t, "cursor", detected[0].Name)
}
