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

package playmode

import (
	"fmt"
	"os"

	"github.com/jetsetilly/gopherscope/curated"
	"github.com/jetsetilly/gopherscope/instrument"
	"github.com/jetsetilly/gopherscope/instrument/scope"
	"github.com/jetsetilly/gopherscope/logger"
	"github.com/jetsetilly/gopherscope/terminal"
)

// the amount by which the trigger level changes with the + and - keys
const levelStep = 0.1

// KeyHelp is a summary of the keys recognised by playmode.
const KeyHelp = `space  run/stop
a      arm trigger
z      reset phase
m      cycle trigger mode
e      toggle trigger edge
+ -    raise/lower trigger level
s      swap trigger source
1 2    toggle channel
w      cycle channel one waveform
v      write state graph
q      quit`

// keyboard applies key presses to the scope.
type keyboard struct {
	scp *scope.Scope

	// filename for the graphviz output of the 'v' key
	visualiseFile string
}

// handleKey applies the key to the scope. It returns true if the key is a
// request to quit.
func (kb *keyboard) handleKey(key byte) bool {
	var err error

	switch key {
	case 'q', 'Q', terminal.KeyEsc, terminal.KeyInterrupt:
		return true
	case ' ':
		kb.scp.ToggleRunning()
	case 'a':
		kb.scp.ArmTrigger()
	case 'z':
		kb.scp.ResetPhase()
	case 'm':
		tc := kb.scp.TriggerConfig()
		tc.Mode = instrument.TriggerModes[(int(tc.Mode)+1)%len(instrument.TriggerModes)]
		err = kb.scp.SetTriggerConfig(tc)
	case 'e':
		tc := kb.scp.TriggerConfig()
		if tc.Edge == instrument.Rising {
			tc.Edge = instrument.Falling
		} else {
			tc.Edge = instrument.Rising
		}
		err = kb.scp.SetTriggerConfig(tc)
	case '+', '=':
		tc := kb.scp.TriggerConfig()
		tc.Level += levelStep
		err = kb.scp.SetTriggerConfig(tc)
	case '-', '_':
		tc := kb.scp.TriggerConfig()
		tc.Level -= levelStep
		err = kb.scp.SetTriggerConfig(tc)
	case 's':
		tc := kb.scp.TriggerConfig()
		if tc.Source == instrument.CH1 {
			tc.Source = instrument.CH2
		} else {
			tc.Source = instrument.CH1
		}
		err = kb.scp.SetTriggerConfig(tc)
	case '1':
		err = kb.toggleChannel(instrument.CH1)
	case '2':
		err = kb.toggleChannel(instrument.CH2)
	case 'w':
		cfg := kb.scp.ChannelConfig(instrument.CH1)
		cfg.Waveform.Shape = instrument.Shapes[(int(cfg.Waveform.Shape)+1)%len(instrument.Shapes)]
		err = kb.scp.SetChannelConfig(instrument.CH1, cfg)
	case 'v':
		err = kb.visualise()
	}

	if err != nil {
		logger.Log(logger.Allow, "playmode", err)
	}

	return false
}

func (kb *keyboard) toggleChannel(ch instrument.Channel) error {
	cfg := kb.scp.ChannelConfig(ch)
	cfg.Enabled = !cfg.Enabled
	return kb.scp.SetChannelConfig(ch, cfg)
}

func (kb *keyboard) visualise() (rerr error) {
	if kb.visualiseFile == "" {
		return nil
	}

	f, err := os.Create(kb.visualiseFile)
	if err != nil {
		return curated.Errorf("playmode: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			rerr = curated.Errorf("playmode: %v", err)
		}
	}()

	kb.scp.Visualise(f)
	logger.Log(logger.Allow, "playmode", fmt.Sprintf("state graph written to %s", kb.visualiseFile))

	return nil
}
