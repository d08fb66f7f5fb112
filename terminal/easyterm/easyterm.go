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

//go:build !windows

// Package easyterm is a wrapper for "github.com/pkg/term/termios". It
// provides some features not present in the third-party package, such as
// terminal geometry, and wraps termios methods in functions with friendlier
// names.
package easyterm

import (
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/jetsetilly/gopherscope/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// clear from the cursor to the end of the line
const ansiClearLine = "\033[K"

// Geometry contains the dimensions of a terminal in characters.
type Geometry struct {
	Rows uint16
	Cols uint16
}

// Terminal is the main container for posix terminals. It implements the
// terminal.Terminal interface.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr    unix.Termios
	cbreakAttr unix.Termios

	// sig/ack channels to control signal handler
	terminateHandlerSig chan bool
	terminateHandlerAck chan bool

	// geometry is updated by the signal handler
	mu       sync.Mutex
	geometry Geometry
}

// NewTerminal is the preferred method of initialisation for the Terminal
// type. The terminal is put into cbreak mode. CleanUp() should be called to
// restore the terminal to canonical mode.
func NewTerminal(inputFile *os.File, outputFile *os.File) (*Terminal, error) {
	if inputFile == nil {
		return nil, curated.Errorf("easyterm: %v", "requires an input file")
	}
	if outputFile == nil {
		return nil, curated.Errorf("easyterm: %v", "requires an output file")
	}

	pt := &Terminal{
		input:               inputFile,
		output:              outputFile,
		terminateHandlerSig: make(chan bool),
		terminateHandlerAck: make(chan bool),
	}

	// prepare the attributes for the different terminal modes we'll be using
	err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr)
	if err != nil {
		return nil, curated.Errorf("easyterm: %v", err)
	}
	pt.cbreakAttr = pt.canAttr
	termios.Cfmakecbreak(&pt.cbreakAttr)

	_ = pt.UpdateGeometry()

	go func() {
		sigwinch := make(chan os.Signal, 1)
		signal.Notify(sigwinch, syscall.SIGWINCH)
		defer func() {
			signal.Stop(sigwinch)
			pt.terminateHandlerAck <- true
		}()

		for {
			select {
			case <-sigwinch:
				_ = pt.UpdateGeometry()
			case <-pt.terminateHandlerSig:
				return
			}
		}
	}()

	err = pt.CBreakMode()
	if err != nil {
		pt.CleanUp()
		return nil, err
	}

	return pt, nil
}

// CleanUp implements the terminal.Terminal interface.
func (pt *Terminal) CleanUp() {
	_ = pt.CanonicalMode()
	pt.terminateHandlerSig <- true
	<-pt.terminateHandlerAck
	pt.output.WriteString("\n")
}

// CanonicalMode puts terminal into normal, everyday canonical mode.
func (pt *Terminal) CanonicalMode() error {
	err := termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.canAttr)
	if err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// CBreakMode puts terminal into cbreak mode. Key presses are available to
// Read() immediately but signals are still generated for the interrupt and
// suspend keys.
func (pt *Terminal) CBreakMode() error {
	err := termios.Tcsetattr(pt.input.Fd(), termios.TCIFLUSH, &pt.cbreakAttr)
	if err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// Flush makes sure the terminal's input/output buffers are empty.
func (pt *Terminal) Flush() error {
	if err := termios.Tcflush(pt.input.Fd(), termios.TCIFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	if err := termios.Tcflush(pt.output.Fd(), termios.TCOFLUSH); err != nil {
		return curated.Errorf("easyterm: %v", err)
	}
	return nil
}

// UpdateGeometry gets the current dimensions of the output terminal.
func (pt *Terminal) UpdateGeometry() error {
	ws, err := unix.IoctlGetWinsize(int(pt.output.Fd()), unix.TIOCGWINSZ)
	if err != nil {
		return curated.Errorf("easyterm: %v", err)
	}

	pt.mu.Lock()
	defer pt.mu.Unlock()
	pt.geometry = Geometry{Rows: ws.Row, Cols: ws.Col}

	return nil
}

// Geometry returns the most recent dimensions of the output terminal.
func (pt *Terminal) Geometry() Geometry {
	pt.mu.Lock()
	defer pt.mu.Unlock()
	return pt.geometry
}

// Read implements the terminal.Terminal interface.
func (pt *Terminal) Read(p []byte) (int, error) {
	return pt.input.Read(p)
}

// Print implements the terminal.Terminal interface.
func (pt *Terminal) Print(s string, a ...any) {
	pt.output.WriteString(fmt.Sprintf(s, a...))
	pt.output.Sync()
}

// Status implements the terminal.Terminal interface.
func (pt *Terminal) Status(s string) {
	// truncate to the width of the terminal so that the line does not wrap
	if cols := int(pt.Geometry().Cols); cols > 1 && len(s) >= cols {
		s = s[:cols-1]
	}
	pt.output.WriteString("\r")
	pt.output.WriteString(s)
	pt.output.WriteString(ansiClearLine)
}

// IsInteractive implements the terminal.Terminal interface.
func (pt *Terminal) IsInteractive() bool {
	return true
}
