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

// Package statsview optionally provides a HTTP server offering runtime
// statistics for a running scope. The server is only compiled in when the
// statsview build tag is present. Without the tag, Launch() reports that the
// server is unavailable and Available() returns false.
//
// Underlying functionality is provided by "github.com/go-echarts/statsview".
// After launch, graphical statistics will be viewable at:
//
//	localhost:12700/debug/statsview
//
// And standard Go pprof statistics at:
//
//	localhost:12700/debug/pprof/
package statsview
