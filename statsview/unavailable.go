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

//go:build !statsview
// +build !statsview

package statsview

import (
	"io"
)

// Address of the statistics server. The server is not available in this
// build.
const Address = ""

// Launch reports that the statistics server is not available in this build.
func Launch(output io.Writer) {
	output.Write([]byte("scope statistics are not available in this build (use the statsview build tag)\n"))
}

// Available returns true if the statistics server can be launched.
func Available() bool {
	return false
}
