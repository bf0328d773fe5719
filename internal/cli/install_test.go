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
	"runtime"
	"testing"

	"github.com/haunguyendev/openproject-mcp-installer/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveHosts(t *testing.T) {
	t.Run("Explicit Names", func(t *testing.T) {
		hosts, err := resolveHosts([]string{"cursor", "claude-code"}, false)
		require.NoError(t, err)
		require.Len(t, hosts, 2)
		assert.Equal(t, "cursor", hosts[0].Name)
		assert.Equal(t, "claude-code", hosts[1].Name)
	})

	t.Run("Unknown Name", func(t *testing.T) {
		_, err := resolveHosts([]string{"zed"}, false)
		assert.ErrorIs(t, err, core.ErrHostNotFound)
	})

	t.Run("Non-Interactive Without Detection", func(t *testing.T) {
		if runtime.GOOS == "windows" {
			t.Skip("HOME override not applicable on Windows")
		}
		t.Setenv("HOME", t.TempDir())
		t.Setenv("XDG_CONFIG_HOME", "")
		t.Setenv("APPDATA", "")

		_, err := resolveHosts(nil, false)
		assert.ErrorIs(t, err, core.ErrNoHostSelected)
	})
}

func TestResolveURL(t *testing.T) {
	t.Run("Flag Value Wins", func(t *testing.T) {
		url, err := resolveURL(" https://example.com ", false)
		require.NoError(t, err)
		assert.Equal(t, "https://example.com", url)
	})

	t.Run("Non-Interactive Requires Flag", func(t *testing.T) {
		_, err := resolveURL("", false)
		assert.ErrorIs(t, err, core.ErrEmptyInput)
	})
}

func TestResolveAPIKey(t *testing.T) {
	t.Run("Flag Value Wins", func(t *testing.T) {
		key, err := resolveAPIKey("abc123", false)
		require.NoError(t, err)
		assert.Equal(t, "abc123", key)
	})

	t.Run("Non-Interactive Requires Flag", func(t *testing.T) {
		_, err := resolveAPIKey("", false)
		assert.ErrorIs(t, err, core.ErrEmptyInput)
	})
}

func TestRootCmd(t *testing.T) {
	root := RootCmd()
	assert.Equal(t, "opmcp", root.Use)

	var names []string
	for _, cmd := range root.Commands() {
		names = append(names, cmd.Name())
	}
	assert.Contains(t, names, "install")
	assert.Contains(t, names, "uninstall")
	assert.Contains(t, names, "list")
	assert.Contains(t, names, "doctor")
	assert.Contains(t, names, "completion")
}
