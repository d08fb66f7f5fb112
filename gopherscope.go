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

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/jetsetilly/gopherscope/instrument"
	"github.com/jetsetilly/gopherscope/instrument/cursor"
	"github.com/jetsetilly/gopherscope/instrument/measure"
	"github.com/jetsetilly/gopherscope/instrument/scope"
	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/modalflag"
	"github.com/jetsetilly/gopherscope/performance"
	"github.com/jetsetilly/gopherscope/playmode"
	"github.com/jetsetilly/gopherscope/prefs"
	"github.com/jetsetilly/gopherscope/random"
	"github.com/jetsetilly/gopherscope/scheduler"
	"github.com/jetsetilly/gopherscope/statsview"
	"github.com/jetsetilly/gopherscope/terminal"
	"github.com/jetsetilly/gopherscope/terminal/easyterm"
	"github.com/jetsetilly/gopherscope/terminal/plainterm"
	"github.com/jetsetilly/gopherscope/version"
)

// pixel dimensions used when snapping cursors from the command line
const (
	cursorPixelWidth  = 1000.0
	cursorPixelHeight = 800.0
	cursorSnapRadius  = 10.0
)

func main() {
	os.Exit(launch(os.Args[1:], os.Stdout))
}

// launch the program with the supplied arguments. the return value is the
// exit status for the program.
func launch(args []string, output io.Writer) int {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "MEASURE", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return 0

	case modalflag.ParseError:
		fmt.Fprintf(output, "* error: %v\n", err)
		return 10
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, output)

	case "MEASURE":
		err = measureMode(md, output)

	case "PERFORMANCE":
		err = perform(md, output)

	case "VERSION":
		err = showVersion(md, output)
	}

	if err != nil {
		fmt.Fprintf(output, "* error in %s mode: %s\n", md.String(), err)
		return 20
	}

	return 0
}

// common flags for all modes. the returned function should be called after
// the flags have been parsed.
func commonFlags(md *modalflag.Modes, output io.Writer) func() {
	log := md.AddBool("log", false, "echo debugging log to stdout")
	prf := md.AddString("prefs", "", "command line preferences (eg. \"scope.ch1.freq::500; scope.trigger.mode::normal\")")

	return func() {
		if *log {
			logger.SetEcho(output)
		} else {
			logger.SetEcho(nil)
		}
		if *prf != "" {
			prefs.PushCommandLineStack(*prf)
		}
	}
}

// create a new scope with the preferences applied. the preferences are
// returned so that they can be saved if required.
func newScope(zeroSeed bool) (*scope.Scope, *scope.Preferences, error) {
	scp := scope.NewScope(random.NewRandom(zeroSeed))

	p, err := scope.NewPreferences()
	if err != nil {
		return nil, nil, err
	}

	err = p.Apply(scp)
	if err != nil {
		return nil, nil, err
	}

	return scp, p, nil
}

func run(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	common := commonFlags(md, output)
	ticks := md.AddInt("ticks", 0, "stop after number of ticks (0 for no limit)")
	status := md.AddInt("status", 0, "ticks between status updates (0 for automatic)")
	visualise := md.AddString("memviz", "scope.dot", "file for the state graph written by the 'v' key")
	stats := md.AddBool("statsview", false, "launch statistics viewer")
	plain := md.AddBool("plain", false, "use plain terminal even if an interactive terminal is available")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	common()

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	scp, prf, err := newScope(false)
	if err != nil {
		return err
	}

	if *stats {
		statsview.Launch(output)
	}

	var term terminal.Terminal
	if !*plain && plainterm.IsTerminal(os.Stdin) {
		term, err = easyterm.NewTerminal(os.Stdin, os.Stdout)
		if err != nil {
			logger.Logf(logger.Allow, "gopherscope", "falling back to plain terminal: %v", err)
			term = nil
		}
	}
	if term == nil {
		term = plainterm.NewTerminal(os.Stdin, output)
	}
	defer term.CleanUp()

	clk, err := scheduler.NewLimiter(scp.FramesPerSecond())
	if err != nil {
		return err
	}
	defer clk.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = playmode.Play(ctx, term, scp, clk, playmode.Options{
		MaxTicks:       *ticks,
		StatusInterval: *status,
		VisualiseFile:  *visualise,
	})
	if err != nil {
		return err
	}

	// save preferences before finishing successfully
	prf.Capture(scp)
	return prf.Save()
}

func measureMode(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	common := commonFlags(md, output)
	ticks := md.AddInt("ticks", 1, "number of ticks to run before measuring")
	tcursor := md.AddFloat64("tcursor", -1, "snap time cursor at normalised position (0 to 1)")
	vcursor := md.AddFloat64("vcursor", -1, "snap voltage cursor at normalised position (0 to 1)")
	visualise := md.AddString("memviz", "", "write state graph to file after measuring")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	common()

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}
	if *ticks <= 0 {
		return fmt.Errorf("number of ticks must be positive (%d)", *ticks)
	}

	scp, _, err := newScope(true)
	if err != nil {
		return err
	}

	return report(output, scp, *ticks, *tcursor, *vcursor, *visualise)
}

// report runs the scope for the number of ticks and writes a report of the
// state of the scope and the measurements of each channel.
func report(output io.Writer, scp *scope.Scope, ticks int, tcursor float64, vcursor float64, visualise string) error {
	clk, err := scheduler.NewManual(scp.FramesPerSecond())
	if err != nil {
		return err
	}

	var count int
	err = scheduler.Run(context.Background(), clk, func(now time.Duration) bool {
		scp.Tick(now)
		count++
		return count < ticks
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(output, "%s after %d ticks\n", scp.State(), count)

	for ch := instrument.CH1; ch < instrument.NumChannels; ch++ {
		if !scp.ChannelConfig(ch).Enabled {
			fmt.Fprintf(output, "%s: off\n", ch)
			continue
		}
		fmt.Fprintf(output, "%s: %s\n", ch, scp.Measure(ch))

		buf := scp.Buffer(ch)
		if tcursor >= 0 {
			x := cursor.SnapTimeCursor(tcursor, buf, cursorPixelWidth, cursorSnapRadius)
			t := x * scp.Grid().CaptureWindow(scp.TimebaseConfig())
			fmt.Fprintf(output, "%s: time cursor %.3f (%s)\n", ch, x, measure.Engineering(t, "s"))
		}
		if vcursor >= 0 {
			scale := cursor.NewVoltageScale(scp.ChannelConfig(ch), scp.Grid())
			y := cursor.SnapVoltageCursor(vcursor, buf, cursorPixelHeight, cursorSnapRadius, scale)
			fmt.Fprintf(output, "%s: voltage cursor %.3f (%s)\n", ch, y, measure.Engineering(scale.Voltage(y), "V"))
		}
	}

	if visualise != "" {
		f, err := os.Create(visualise)
		if err != nil {
			return err
		}
		defer f.Close()
		scp.Visualise(f)
	}

	return nil
}

func perform(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	common := commonFlags(md, output)
	ticks := md.AddInt("ticks", 6000, "number of ticks to run")
	profile := md.AddString("profile", "none", "create profiling reports: cpu, mem, trace, all, none (comma separated)")
	stats := md.AddBool("statsview", false, "launch statistics viewer")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}
	common()

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	prof, err := performance.ParseProfile(*profile)
	if err != nil {
		return err
	}

	scp, _, err := newScope(false)
	if err != nil {
		return err
	}
	scp.Quiet = true

	if *stats {
		statsview.Launch(output)
	}

	return performance.Check(output, scp, *ticks, prof)
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if len(md.RemainingArgs()) > 0 {
		return fmt.Errorf("too many arguments for %s mode", md)
	}

	if *revision {
		v, r, _ := version.Version()
		fmt.Fprintf(output, "%s %s\n%s\n", version.ApplicationName, v, r)
		return nil
	}

	fmt.Fprintln(output, version.String())
	return nil
}
