package install

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
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/haunguyendev/openproject-mcp-installer/internal/bootstrap"
	"github.com/haunguyendev/openproject-mcp-installer/internal/host"
	"github.com/haunguyendev/openproject-mcp-installer/internal/manifest"
	"github.com/haunguyendev/openproject-mcp-installer/internal/mcpconfig"
	"github.com/haunguyendev/openproject-mcp-installer/internal/utils"
	"github.com/haunguyendev/openproject-mcp-installer/pkg/core"
)

// Options carries everything one install run needs. All fields are
// resolved by the CLI layer; nothing here prompts.
type Options struct {
	// ProjectRoot is the directory holding the server checkout.
	ProjectRoot string
	// URL is the OpenProject instance URL.
	URL string
	// APIKey is the OpenProject API key.
	APIKey string
	// Hosts are the applications to register the server with.
	Hosts []host.Host
	// SkipBootstrap leaves the virtual environment alone and only
	// rewrites host configs.
	SkipBootstrap bool
}

// Installer registers the OpenProject FastMCP server with host
// applications. The bootstrapper is injected so the config merge never
// depends on subprocess plumbing.
type Installer struct {
	bootstrapper bootstrap.Bootstrapper
}

// New creates an installer.
func New(b bootstrap.Bootstrapper) *Installer {
	return &Installer{bootstrapper: b}
}

// Install runs the full flow: precondition checks, environment
// bootstrap, then one load/upsert/save per selected host.
func (i *Installer) Install(ctx context.Context, opts Options) error {
	if strings.TrimSpace(opts.URL) == "" {
		return fmt.Errorf("%w: OpenProject URL", core.ErrEmptyInput)
	}
	if strings.TrimSpace(opts.APIKey) == "" {
		return fmt.Errorf("%w: OpenProject API key", core.ErrEmptyInput)
	}
	if len(opts.Hosts) == 0 {
		return core.ErrNoHostSelected
	}

	projectRoot, err := filepath.Abs(opts.ProjectRoot)
	if err != nil {
		return fmt.Errorf("invalid project root: %w", err)
	}

	m, err := manifest.Load(projectRoot)
	if err != nil {
		return err
	}

	entryScript := filepath.Join(projectRoot, m.EntryScript)
	if !utils.FileExists(entryScript) {
		return fmt.Errorf("%w: %s", core.ErrEntryPointMissing, entryScript)
	}

	if !opts.SkipBootstrap {
		fmt.Println("🐍 Preparing Python environment...")
		if err := i.bootstrapper.Bootstrap(ctx, projectRoot, m.Requirements); err != nil {
			return err
		}
	}

	entry := BuildEntry(m, projectRoot, i.bootstrapper.InterpreterPath(projectRoot), opts.URL, opts.APIKey)

	fmt.Printf("🔧 Registering %q with %d host(s)...\n", m.Name, len(opts.Hosts))
	for _, h := range opts.Hosts {
		if err := registerWithHost(h, m.Name, entry); err != nil {
			return err
		}
		fmt.Printf("  ✅ %s\n", h.DisplayName)
	}

	return nil
}

// registerWithHost merges one entry into one host config file.
func registerWithHost(h host.Host, name string, entry mcpconfig.ServerEntry) error {
	path, err := h.ConfigPath()
	if err != nil {
		return fmt.Errorf("failed to resolve %s config path: %w", h.DisplayName, err)
	}

	doc, err := mcpconfig.Load(path)
	if err != nil {
		return err
	}

	doc = mcpconfig.UpsertServer(doc, name, entry)

	if err := mcpconfig.Save(path, doc); err != nil {
		return fmt.Errorf("%w: %v", core.ErrConfigWrite, err)
	}

	return nil
}

// Uninstall removes the named server from each host config. Hosts that
// never had the entry are skipped, not errors.
func (i *Installer) Uninstall(hosts []host.Host, name string) error {
	if len(hosts) == 0 {
		return core.ErrNoHostSelected
	}

	for _, h := range hosts {
		path, err := h.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to resolve %s config path: %w", h.DisplayName, err)
		}

		doc, err := mcpconfig.Load(path)
		if err != nil {
			return err
		}

		doc, removed := mcpconfig.RemoveServer(doc, name)
		if !removed {
			fmt.Printf("  ➖ %s: not registered\n", h.DisplayName)
			continue
		}

		if err := mcpconfig.Save(path, doc); err != nil {
			return fmt.Errorf("%w: %v", core.ErrConfigWrite, err)
		}
		fmt.Printf("  ✅ %s: removed\n", h.DisplayName)
	}

	return nil
}

// HostStatus is one host's view of the registration.
type HostStatus struct {
	Host       host.Host
	ConfigPath string
	Registered bool
	Entry      mcpconfig.ServerEntry
	Servers    []string
}

// Status reports whether the named server is registered with each host,
// plus everything else found in each registry.
func (i *Installer) Status(hosts []host.Host, name string) ([]HostStatus, error) {
	statuses := make([]HostStatus, 0, len(hosts))

	for _, h := range hosts {
		path, err := h.ConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s config path: %w", h.DisplayName, err)
		}

		doc, err := mcpconfig.Load(path)
		if err != nil {
			return nil, err
		}

		status := HostStatus{
			Host:       h,
			ConfigPath: path,
			Servers:    mcpconfig.ServerNames(doc),
		}
		status.Entry, status.Registered = mcpconfig.Server(doc, name)
		statuses = append(statuses, status)
	}

	return statuses, nil
}

// BuildEntry assembles the registry entry: venv interpreter as command,
// absolute entry script as the single argument, credentials and
// PYTHONPATH in env. Manifest extra_env is merged in; the installer's
// own variables win on conflict.
func BuildEntry(m manifest.Manifest, projectRoot, interpreter, url, apiKey string) mcpconfig.ServerEntry {
	env := make(map[string]string, len(m.ExtraEnv)+3)
	for k, v := range m.ExtraEnv {
		env[k] = v
	}
	env[core.EnvPythonPath] = projectRoot
	env[core.EnvURL] = strings.TrimSpace(url)
	env[core.EnvAPIKey] = strings.TrimSpace(apiKey)

	return mcpconfig.ServerEntry{
		Command: interpreter,
		Args:    []string{filepath.Join(projectRoot, m.EntryScript)},
		Env:     env,
	}
}
