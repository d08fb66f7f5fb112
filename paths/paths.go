// This file is part of Gopherscope.
//
// Gopherscope is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopherscope is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopherscope.  If not, see <https://www.gnu.org/licenses/>.

// Package paths returns the location of resources used by the program, most
// notably the preferences file.
//
// If a directory named .gopherscope exists in the current working directory
// then that directory is used as the base path. Otherwise the base path is
// the gopherscope directory in the user's configuration directory (as
// returned by os.UserConfigDir).
package paths

import (
	"os"
	"path/filepath"
)

const baseResourcePath = ".gopherscope"

// ResourcePath returns the resource string (representing the resource to be
// loaded) prepended with OS/build specific paths. The base directory is
// created if it does not already exist. Empty parts of the resource path are
// ignored.
func ResourcePath(resource ...string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	p := []string{base}
	for _, r := range resource {
		if r != "" {
			p = append(p, r)
		}
	}

	return filepath.Join(p...), nil
}

func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath, nil
	}

	pth := filepath.Join(cfg, baseResourcePath[1:])
	if err := os.MkdirAll(pth, 0o700); err != nil {
		return "", err
	}

	return pth, nil
}
