package bootstrap

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
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"time"

	"github.com/haunguyendev/openproject-mcp-installer/internal/utils"
	"github.com/haunguyendev/openproject-mcp-installer/pkg/core"
)

// VenvDir is the virtual environment directory under the project root.
const VenvDir = ".venv"

// installTimeout bounds the pip install step.
const installTimeout = 5 * time.Minute

// Bootstrapper prepares a Python environment for the server. It is
// injected into the installer so the config merge logic never shells
// out itself.
type Bootstrapper interface {
	// Bootstrap guarantees an interpreter exists at InterpreterPath,
	// creating the venv and installing requirements as needed.
	Bootstrap(ctx context.Context, projectRoot, requirements string) error
	// InterpreterPath returns the venv interpreter path for projectRoot.
	// The path is returned whether or not it exists yet.
	InterpreterPath(projectRoot string) string
}

// VenvBootstrapper creates a project-local virtual environment with the
// system Python.
type VenvBootstrapper struct {
	// Stdout receives subprocess output; nil discards it.
	Stdout *os.File
}

// NewVenvBootstrapper creates a bootstrapper that streams subprocess
// output to stdout.
func NewVenvBootstrapper() *VenvBootstrapper {
	return &VenvBootstrapper{Stdout: os.Stdout}
}

// InterpreterPath returns projectRoot/.venv/bin/python, or the Scripts
// variant on Windows.
func (b *VenvBootstrapper) InterpreterPath(projectRoot string) string {
	if runtime.GOOS == "windows" {
		return filepath.Join(projectRoot, VenvDir, "Scripts", "python.exe")
	}
	return filepath.Join(projectRoot, VenvDir, "bin", "python")
}

// Bootstrap creates the venv if missing and installs requirements. A
// venv half-created when the run is interrupted is removed so the next
// run starts clean.
func (b *VenvBootstrapper) Bootstrap(ctx context.Context, projectRoot, requirements string) error {
	venvPython := b.InterpreterPath(projectRoot)

	if !utils.FileExists(venvPython) {
		systemPython, err := FindPython()
		if err != nil {
			return err
		}

		venvPath := filepath.Join(projectRoot, VenvDir)
		fresh := !utils.FileExists(venvPath)
		if fresh {
			utils.RegisterCleanup(func() {
				if !utils.FileExists(venvPython) {
					_ = os.RemoveAll(venvPath)
				}
			})
		}

		// #nosec G204 -- interpreter path comes from exec.LookPath
		cmd := exec.CommandContext(ctx, systemPython, "-m", "venv", venvPath)
		if out, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%w: %v\nOutput: %s", core.ErrVenvCreateFailed, err, out)
		}
	}

	if requirements == "" {
		return nil
	}

	reqPath := filepath.Join(projectRoot, requirements)
	if !utils.FileExists(reqPath) {
		// The upstream server always ships requirements.txt; a missing
		// file in a fork just means nothing to install.
		return nil
	}

	installCtx, cancel := context.WithTimeout(ctx, installTimeout)
	defer cancel()

	// #nosec G204 -- venv path is derived from the validated project root
	cmd := exec.CommandContext(installCtx, venvPython, "-m", "pip", "install", "-r", reqPath)
	if b.Stdout != nil {
		cmd.Stdout = b.Stdout
		cmd.Stderr = b.Stdout
		if err := cmd.Run(); err != nil {
			return fmt.Errorf("%w: %v", core.ErrPipInstallFailed, err)
		}
		return nil
	}

	if out, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%w: %v\nOutput: %s", core.ErrPipInstallFailed, err, out)
	}

	return nil
}

// pythonCandidates returns interpreter names to probe, most specific
// first.
func pythonCandidates() []string {
	if runtime.GOOS == "windows" {
		return []string{"python", "py", "python3"}
	}
	return []string{"python3", "python"}
}
