package utils

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

func TestEnsureDir(t *testing.T) {
	tempDir := t.TempDir()

	testDir := filepath.Join(tempDir, "a", "b", "c")
	err := EnsureDir(testDir)
	require.NoError(t, err)

	info, err := os.Stat(testDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Idempotent
	err = EnsureDir(testDir)
	require.NoError(t, err)
}

func TestWriteFile(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("Simple Write", func(t *testing.T) {
		testFile := filepath.Join(tempDir, "config.json")
		testData := []byte(`{"mcpServers":{}}`)

		err := WriteFile(testFile, testData)
		require.NoError(t, err)

		data, err := os.ReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, testData, data)

		info, err := os.Stat(testFile)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
	})

	t.Run("With Directory Creation", func(t *testing.T) {
		testFile := filepath.Join(tempDir, "nested", "dir", "config.json")

		err := WriteFile(testFile, []byte("{}"))
		require.NoError(t, err)
		assert.True(t, FileExists(testFile))
	})
}

func TestWriteFileAtomic(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("New File", func(t *testing.T) {
		testFile := filepath.Join(tempDir, "atomic.json")

		err := WriteFileAtomic(testFile, []byte(`{"v":1}`))
		require.NoError(t, err)

		data, err := os.ReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"v":1}`), data)
	})

	t.Run("Overwrites Existing", func(t *testing.T) {
		testFile := filepath.Join(tempDir, "atomic.json")

		err := WriteFileAtomic(testFile, []byte(`{"v":2}`))
		require.NoError(t, err)

		data, err := os.ReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"v":2}`), data)
	})

	t.Run("Leaves No Temp Files", func(t *testing.T) {
		testFile := filepath.Join(tempDir, "clean", "atomic.json")

		err := WriteFileAtomic(testFile, []byte("{}"))
		require.NoError(t, err)

		entries, err := os.ReadDir(filepath.Dir(testFile))
		require.NoError(t, err)
		assert.Len(t, entries, 1)
	})
}

func TestFileExists(t *testing.T) {
	tempDir := t.TempDir()

	assert.False(t, FileExists(filepath.Join(tempDir, "missing")))

	testFile := filepath.Join(tempDir, "present")
	require.NoError(t, os.WriteFile(testFile, []byte("x"), 0644))
	assert.True(t, FileExists(testFile))
}

func TestSafeReadFile(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("Reads File", func(t *testing.T) {
		testFile := filepath.Join(tempDir, "data.txt")
		require.NoError(t, os.WriteFile(testFile, []byte("hello"), 0644))

		data, err := SafeReadFile(testFile)
		require.NoError(t, err)
		assert.Equal(t, []byte("hello"), data)
	})

	t.Run("Rejects Directory", func(t *testing.T) {
		_, err := SafeReadFile(tempDir)
		assert.Error(t, err)
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := SafeReadFile(filepath.Join(tempDir, "nope"))
		assert.True(t, os.IsNotExist(err))
	})
}

func TestRunCleanup(t *testing.T) {
	var order []int
	RegisterCleanup(func() { order = append(order, 1) })
	RegisterCleanup(func() { order = append(order, 2) })

	RunCleanup()
	assert.Equal(t, []int{2, 1}, order)

	// Second run is a no-op
	RunCleanup()
	assert.Equal(t, []int{2, 1}, order)
}
