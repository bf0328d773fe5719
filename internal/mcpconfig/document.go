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
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/haunguyendev/openproject-mcp-installer/internal/utils"
	"github.com/haunguyendev/openproject-mcp-installer/pkg/core"
)

// registryKey is the top-level key host applications read server
// registrations from.
const registryKey = "mcpServers"

// Document is a host application's config file as an untyped JSON
// document. Keys not touched by the merge are preserved across a
// load/modify/save cycle.
type Document map[string]any

// ServerEntry instructs a host application how to launch an MCP server.
// An entry is replaced as a unit on re-install; partial merges of
// args/env would produce inconsistent launch configurations.
type ServerEntry struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env,omitempty"`
}

// Load reads the JSON document at path. A missing file yields an empty
// document. Invalid JSON also yields an empty document with a warning:
// overwriting a broken config is the desired recovery. Only real I/O
// failures (permissions) are errors.
func Load(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Document{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrConfigRead, path, err)
	}

	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %s contains invalid JSON, starting from an empty config: %v\n", path, err)
		return Document{}, nil
	}
	if doc == nil {
		// File contained the literal "null"
		return Document{}, nil
	}

	return doc, nil
}

// Save serializes doc and writes it atomically: the data goes to a
// temporary file in the target directory which is then renamed over the
// target, so a crash mid-write never truncates the config.
func Save(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	data = append(data, '\n')

	if err := utils.WriteFileAtomic(path, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// UpsertServer sets doc["mcpServers"][name] = entry, fully overwriting
// any prior entry under that name. The registry object is created if
// absent, or replaced if the existing value is not a JSON object (a
// corrupt registry cannot be merged). All other keys are untouched.
func UpsertServer(doc Document, name string, entry ServerEntry) Document {
	if doc == nil {
		doc = Document{}
	}

	registry, ok := doc[registryKey].(map[string]any)
	if !ok {
		registry = map[string]any{}
		doc[registryKey] = registry
	}

	registry[name] = entry.toMap()
	return doc
}

// RemoveServer deletes the named entry. The second return reports
// whether the entry existed.
func RemoveServer(doc Document, name string) (Document, bool) {
	registry, ok := doc[registryKey].(map[string]any)
	if !ok {
		return doc, false
	}

	if _, exists := registry[name]; !exists {
		return doc, false
	}

	delete(registry, name)
	return doc, true
}

// Server returns the named entry, decoded. Entries that are not JSON
// objects are reported as absent.
func Server(doc Document, name string) (ServerEntry, bool) {
	registry, ok := doc[registryKey].(map[string]any)
	if !ok {
		return ServerEntry{}, false
	}

	raw, ok := registry[name].(map[string]any)
	if !ok {
		return ServerEntry{}, false
	}

	// Round-trip through JSON to decode the untyped map
	data, err := json.Marshal(raw)
	if err != nil {
		return ServerEntry{}, false
	}

	var entry ServerEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		return ServerEntry{}, false
	}

	return entry, true
}

// ServerNames returns the names of all registered servers, sorted.
func ServerNames(doc Document) []string {
	registry, ok := doc[registryKey].(map[string]any)
	if !ok {
		return nil
	}

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// toMap converts the entry to the untyped form Load produces, so that a
// document holds the same representation whether it was just upserted
// or read back from disk.
func (e ServerEntry) toMap() map[string]any {
	args := make([]any, len(e.Args))
	for i, a := range e.Args {
		args[i] = a
	}

	m := map[string]any{
		"command": e.Command,
		"args":    args,
	}

	if len(e.Env) > 0 {
		env := make(map[string]any, len(e.Env))
		for k, v := range e.Env {
			env[k] = v
		}
		m["env"] = env
	}

	return m
}
