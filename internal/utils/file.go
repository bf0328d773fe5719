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
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strconv"
)

// GetActualUser returns the invoking user even when running under sudo.
// Host config files live in the user's home directory, so an install run
// with sudo must not leave root-owned files behind.
func GetActualUser() (*user.User, error) {
	if sudoUser := os.Getenv("SUDO_USER"); sudoUser != "" {
		return user.Lookup(sudoUser)
	}
	return user.Current()
}

// GetActualUserIDs returns the invoking user's UID and GID.
func GetActualUserIDs() (uid, gid int, err error) {
	actualUser, err := GetActualUser()
	if err != nil {
		return 0, 0, err
	}

	uid, err = strconv.Atoi(actualUser.Uid)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse UID: %w", err)
	}

	gid, err = strconv.Atoi(actualUser.Gid)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse GID: %w", err)
	}

	return uid, gid, nil
}

// ChownToActualUser restores ownership to the invoking user when running
// under sudo. No-op otherwise.
func ChownToActualUser(path string) error {
	if os.Getenv("SUDO_USER") == "" {
		return nil
	}

	uid, gid, err := GetActualUserIDs()
	if err != nil {
		return err
	}

	return os.Chown(path, uid, gid)
}

// EnsureDir creates a directory (and parents) if it doesn't exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	return ChownToActualUser(dir)
}

// WriteFile writes data to a file, creating parent directories as needed.
func WriteFile(path string, data []byte) error {
	if err := EnsureDir(filepath.Dir(path)); err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}

	return ChownToActualUser(path)
}

// WriteFileAtomic writes data to a temporary file in the target's
// directory and renames it over the target. A crash mid-write never
// leaves a truncated file at path.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := EnsureDir(dir); err != nil {
		return err
	}

	tmpFile, err := os.CreateTemp(dir, ".tmp-")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath) // no-op after a successful rename

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return err
	}

	if err := tmpFile.Chmod(0644); err != nil {
		tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := ChownToActualUser(tmpPath); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// FileExists reports whether a file or directory exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// SafeReadFile reads a file after normalizing the path and rejecting
// directories.
func SafeReadFile(path string) ([]byte, error) {
	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("invalid file path: %w", err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("path is a directory, not a file: %s", absPath)
	}

	// #nosec G304 -- path has been validated above
	return os.ReadFile(absPath)
}
