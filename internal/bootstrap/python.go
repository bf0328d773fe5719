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
	"fmt"
	"os/exec"
	"regexp"
	"strconv"
	"strings"

	"github.com/haunguyendev/openproject-mcp-installer/pkg/core"
)

// pythonVersionRe matches "Python 3.12.1" style output from python --version.
var pythonVersionRe = regexp.MustCompile(`Python (\d+)\.(\d+)`)

// FindPython locates a Python interpreter on PATH that satisfies the
// FastMCP minimum version. Candidates are tried in order; the first
// acceptable one wins.
func FindPython() (string, error) {
	tooOld := ""

	for _, candidate := range pythonCandidates() {
		path, err := exec.LookPath(candidate)
		if err != nil {
			continue
		}

		major, minor, err := pythonVersion(path)
		if err != nil {
			continue
		}

		if major > core.MinPythonMajor || (major == core.MinPythonMajor && minor >= core.MinPythonMinor) {
			return path, nil
		}
		tooOld = fmt.Sprintf("%s is %d.%d", path, major, minor)
	}

	if tooOld != "" {
		return "", fmt.Errorf("%w: %s, need >= %d.%d",
			core.ErrPythonTooOld, tooOld, core.MinPythonMajor, core.MinPythonMinor)
	}

	return "", fmt.Errorf("%w: need Python >= %d.%d on PATH",
		core.ErrPythonNotFound, core.MinPythonMajor, core.MinPythonMinor)
}

// pythonVersion runs the interpreter and parses its version banner.
func pythonVersion(path string) (major, minor int, err error) {
	// #nosec G204 -- path comes from exec.LookPath over a fixed candidate list
	out, err := exec.Command(path, "--version").CombinedOutput()
	if err != nil {
		return 0, 0, err
	}

	m := pythonVersionRe.FindStringSubmatch(strings.TrimSpace(string(out)))
	if m == nil {
		return 0, 0, fmt.Errorf("unrecognized version output: %q", out)
	}

	major, _ = strconv.Atoi(m[1])
	minor, _ = strconv.Atoi(m[2])
	return major, minor, nil
}
