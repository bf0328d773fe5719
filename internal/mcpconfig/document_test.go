package mcpconfig

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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntry() ServerEntry {
	return ServerEntry{
		Command: "/opt/openproject-mcp/.venv/bin/python",
		Args:    []string{"/opt/openproject-mcp/openproject-mcp-fastmcp.py"},
		Env: map[string]string{
			"PYTHONPATH":          "/opt/openproject-mcp",
			"OPENPROJECT_URL":     "https://example.com",
			"OPENPROJECT_API_KEY": "abc123",
		},
	}
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("Missing File Is Empty Document", func(t *testing.T) {
		doc, err := Load(filepath.Join(tempDir, "missing.json"))
		require.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Empty(t, doc)
	})

	t.Run("Invalid JSON Is Empty Document", func(t *testing.T) {
		path := filepath.Join(tempDir, "corrupt.json")
		require.NoError(t, os.WriteFile(path, []byte(`"{not valid json`), 0644))

		doc, err := Load(path)
		require.NoError(t, err)
		assert.Empty(t, doc)
	})

	t.Run("Null Document Is Empty Document", func(t *testing.T) {
		path := filepath.Join(tempDir, "null.json")
		require.NoError(t, os.WriteFile(path, []byte(`null`), 0644))

		doc, err := Load(path)
		require.NoError(t, err)
		assert.NotNil(t, doc)
		assert.Empty(t, doc)
	})

	t.Run("Valid Document", func(t *testing.T) {
		path := filepath.Join(tempDir, "valid.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"mcpServers":{"foo":{"command":"x"}}}`), 0644))

		doc, err := Load(path)
		require.NoError(t, err)
		assert.Contains(t, doc, "mcpServers")
	})
}

func TestUpsertServer(t *testing.T) {
	t.Run("Creates Registry", func(t *testing.T) {
		doc := UpsertServer(Document{}, "openproject-fastmcp", testEntry())

		entry, ok := Server(doc, "openproject-fastmcp")
		require.True(t, ok)
		assert.Equal(t, testEntry(), entry)
	})

	t.Run("Nil Document", func(t *testing.T) {
		doc := UpsertServer(nil, "openproject-fastmcp", testEntry())

		_, ok := Server(doc, "openproject-fastmcp")
		assert.True(t, ok)
	})

	t.Run("Idempotent", func(t *testing.T) {
		once := UpsertServer(Document{}, "openproject-fastmcp", testEntry())
		twice := UpsertServer(UpsertServer(Document{}, "openproject-fastmcp", testEntry()), "openproject-fastmcp", testEntry())

		assert.Equal(t, once, twice)
	})

	t.Run("Preserves Unrelated Keys And Entries", func(t *testing.T) {
		doc := Document{
			"foo": "bar",
			"mcpServers": map[string]any{
				"other-server": map[string]any{
					"command": "node",
					"args":    []any{"server.js"},
				},
			},
		}

		doc = UpsertServer(doc, "openproject-fastmcp", testEntry())

		assert.Equal(t, "bar", doc["foo"])
		registry := doc["mcpServers"].(map[string]any)
		assert.Equal(t, map[string]any{
			"command": "node",
			"args":    []any{"server.js"},
		}, registry["other-server"])
		assert.Contains(t, registry, "openproject-fastmcp")
	})

	t.Run("Overwrite Replaces Whole Entry", func(t *testing.T) {
		first := ServerEntry{
			Command: "/usr/bin/python3",
			Args:    []string{"old.py", "--flag"},
			Env:     map[string]string{"OLD": "value"},
		}
		second := testEntry()

		doc := UpsertServer(Document{}, "openproject-fastmcp", first)
		doc = UpsertServer(doc, "openproject-fastmcp", second)

		registry := doc["mcpServers"].(map[string]any)
		assert.Len(t, registry, 1)

		entry, ok := Server(doc, "openproject-fastmcp")
		require.True(t, ok)
		assert.Equal(t, second, entry)
	})

	t.Run("Replaces Corrupt Registry", func(t *testing.T) {
		doc := Document{"mcpServers": "not an object"}

		doc = UpsertServer(doc, "openproject-fastmcp", testEntry())

		_, ok := Server(doc, "openproject-fastmcp")
		assert.True(t, ok)
	})
}

func TestRemoveServer(t *testing.T) {
	t.Run("Removes Existing", func(t *testing.T) {
		doc := UpsertServer(Document{}, "openproject-fastmcp", testEntry())

		doc, removed := RemoveServer(doc, "openproject-fastmcp")
		assert.True(t, removed)

		_, ok := Server(doc, "openproject-fastmcp")
		assert.False(t, ok)
	})

	t.Run("Absent Entry", func(t *testing.T) {
		_, removed := RemoveServer(Document{}, "openproject-fastmcp")
		assert.False(t, removed)
	})
}

func TestServerNames(t *testing.T) {
	doc := UpsertServer(Document{}, "zeta", testEntry())
	doc = UpsertServer(doc, "alpha", testEntry())

	assert.Equal(t, []string{"alpha", "zeta"}, ServerNames(doc))
	assert.Nil(t, ServerNames(Document{}))
}

func TestSaveRoundTrip(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "Claude", "claude_desktop_config.json")

	doc := Document{"foo": "bar"}
	doc = UpsertServer(doc, "openproject-fastmcp", testEntry())

	require.NoError(t, Save(path, doc))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, doc, loaded)
}

func TestInstallScenario(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("Fresh Config", func(t *testing.T) {
		path := filepath.Join(tempDir, "fresh.json")

		doc, err := Load(path)
		require.NoError(t, err)

		doc = UpsertServer(doc, "openproject-fastmcp", testEntry())
		require.NoError(t, Save(path, doc))

		loaded, err := Load(path)
		require.NoError(t, err)

		entry, ok := Server(loaded, "openproject-fastmcp")
		require.True(t, ok)
		assert.Equal(t, "https://example.com", entry.Env["OPENPROJECT_URL"])
		assert.Equal(t, "abc123", entry.Env["OPENPROJECT_API_KEY"])
	})

	t.Run("Existing Servers Survive", func(t *testing.T) {
		path := filepath.Join(tempDir, "existing.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"mcpServers":{"foo":{"command":"x"}}}`), 0644))

		doc, err := Load(path)
		require.NoError(t, err)

		doc = UpsertServer(doc, "openproject-fastmcp", testEntry())
		require.NoError(t, Save(path, doc))

		loaded, err := Load(path)
		require.NoError(t, err)

		names := ServerNames(loaded)
		assert.Equal(t, []string{"foo", "openproject-fastmcp"}, names)

		foo, ok := Server(loaded, "foo")
		require.True(t, ok)
		assert.Equal(t, "x", foo.Command)
	})
}
