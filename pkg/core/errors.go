package core

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

import "errors"

var (
	// Precondition errors
	ErrPythonNotFound    = errors.New("python interpreter not found")
	ErrPythonTooOld      = errors.New("python version too old")
	ErrEntryPointMissing = errors.New("server entry point script not found")
	ErrEmptyInput        = errors.New("required input is empty")

	// Host errors
	ErrHostNotFound   = errors.New("host application not known")
	ErrNoHostSelected = errors.New("no host application selected")

	// Bootstrap errors
	ErrVenvCreateFailed = errors.New("virtual environment creation failed")
	ErrPipInstallFailed = errors.New("dependency installation failed")

	// Config errors
	ErrConfigRead  = errors.New("cannot read config file")
	ErrConfigWrite = errors.New("cannot write config file")
)
