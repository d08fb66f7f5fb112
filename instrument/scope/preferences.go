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

package scope

import (
	"fmt"

	"github.com/jetsetilly/gopherscope/curated"
	"github.com/jetsetilly/gopherscope/instrument"
	"github.com/jetsetilly/gopherscope/paths"
	"github.com/jetsetilly/gopherscope/prefs"
)

// ChannelPreferences are the preference values for one channel.
type ChannelPreferences struct {
	Enabled          prefs.Bool
	VoltsPerDivision prefs.Float
	VerticalOffset   prefs.Float
	Frequency        prefs.Float
	Amplitude        prefs.Float
	Offset           prefs.Float
	Shape            prefs.String
	NoiseFraction    prefs.Float
}

// Preferences defines and collates the configuration of the scope that is
// restored at the start of every session.
type Preferences struct {
	dsk *prefs.Disk

	Channels [instrument.NumChannels]ChannelPreferences

	TimePerDivision prefs.Float
	SampleRate      prefs.Float

	TriggerMode   prefs.String
	TriggerEdge   prefs.String
	TriggerLevel  prefs.Float
	Holdoff       prefs.Float
	TriggerSource prefs.String

	FramesPerSecond prefs.Int
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Preferences are loaded from the default preferences
// file. A missing file is not an error.
func NewPreferences() (*Preferences, error) {
	pth, err := paths.ResourcePath("", prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}
	return newPreferences(pth)
}

func newPreferences(pth string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	var err error
	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	for ch := range p.Channels {
		c := &p.Channels[ch]
		key := func(name string) string {
			return fmt.Sprintf("scope.%s.%s", instrument.Channel(ch), name)
		}
		if err := p.dsk.Add(key("enabled"), &c.Enabled); err != nil {
			return nil, err
		}
		if err := p.dsk.Add(key("vdiv"), &c.VoltsPerDivision); err != nil {
			return nil, err
		}
		if err := p.dsk.Add(key("voffset"), &c.VerticalOffset); err != nil {
			return nil, err
		}
		if err := p.dsk.Add(key("freq"), &c.Frequency); err != nil {
			return nil, err
		}
		if err := p.dsk.Add(key("amp"), &c.Amplitude); err != nil {
			return nil, err
		}
		if err := p.dsk.Add(key("offset"), &c.Offset); err != nil {
			return nil, err
		}
		if err := p.dsk.Add(key("shape"), &c.Shape); err != nil {
			return nil, err
		}
		if err := p.dsk.Add(key("noise"), &c.NoiseFraction); err != nil {
			return nil, err
		}
	}

	if err := p.dsk.Add("scope.timebase.tdiv", &p.TimePerDivision); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("scope.timebase.rate", &p.SampleRate); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("scope.trigger.mode", &p.TriggerMode); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("scope.trigger.edge", &p.TriggerEdge); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("scope.trigger.level", &p.TriggerLevel); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("scope.trigger.holdoff", &p.Holdoff); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("scope.trigger.source", &p.TriggerSource); err != nil {
		return nil, err
	}
	if err := p.dsk.Add("scope.fps", &p.FramesPerSecond); err != nil {
		return nil, err
	}

	err = p.dsk.Load()
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// SetDefaults reverts all preferences to the default values.
func (p *Preferences) SetDefaults() {
	for ch := range p.Channels {
		p.setChannel(instrument.Channel(ch), instrument.DefaultChannel(instrument.Channel(ch)))
	}
	p.setTimebase(instrument.DefaultTimebase())
	p.setTrigger(instrument.DefaultTrigger())
	_ = p.FramesPerSecond.Set(instrument.DefaultFramesPerSecond)
}

func (p *Preferences) setChannel(ch instrument.Channel, cfg instrument.ChannelConfig) {
	c := &p.Channels[ch]
	_ = c.Enabled.Set(cfg.Enabled)
	_ = c.VoltsPerDivision.Set(cfg.VoltsPerDivision)
	_ = c.VerticalOffset.Set(cfg.VerticalOffset)
	_ = c.Frequency.Set(cfg.Waveform.Frequency)
	_ = c.Amplitude.Set(cfg.Waveform.Amplitude)
	_ = c.Offset.Set(cfg.Waveform.Offset)
	_ = c.Shape.Set(cfg.Waveform.Shape.String())
	_ = c.NoiseFraction.Set(cfg.Waveform.NoiseFraction)
}

func (p *Preferences) setTimebase(tb instrument.TimebaseConfig) {
	_ = p.TimePerDivision.Set(tb.TimePerDivision)
	_ = p.SampleRate.Set(tb.SampleRate)
}

func (p *Preferences) setTrigger(tc instrument.TriggerConfig) {
	_ = p.TriggerMode.Set(tc.Mode.String())
	_ = p.TriggerEdge.Set(tc.Edge.String())
	_ = p.TriggerLevel.Set(tc.Level)
	_ = p.Holdoff.Set(tc.HoldoffSeconds)
	_ = p.TriggerSource.Set(tc.Source.String())
}

// Capture copies the current configuration of the scope into the
// preference values. The values are not saved to disk until Save() is
// called.
func (p *Preferences) Capture(s *Scope) {
	for ch := range p.Channels {
		p.setChannel(instrument.Channel(ch), s.ChannelConfig(instrument.Channel(ch)))
	}
	p.setTimebase(s.TimebaseConfig())
	p.setTrigger(s.TriggerConfig())
	_ = p.FramesPerSecond.Set(s.FramesPerSecond())
}

// Apply the preference values to the scope. Every value is validated before
// any change is made to the scope. If any value is invalid an
// instrument.InvalidConfiguration error is returned and the scope is
// unchanged.
func (p *Preferences) Apply(s *Scope) error {
	var channels [instrument.NumChannels]instrument.ChannelConfig
	for ch := range channels {
		c := &p.Channels[ch]
		shape, err := instrument.ParseShape(c.Shape.String())
		if err != nil {
			return err
		}
		channels[ch] = instrument.ChannelConfig{
			Enabled:          c.Enabled.Get().(bool),
			VoltsPerDivision: c.VoltsPerDivision.Get().(float64),
			VerticalOffset:   c.VerticalOffset.Get().(float64),
			Waveform: instrument.WaveformParameters{
				Frequency:     c.Frequency.Get().(float64),
				Amplitude:     c.Amplitude.Get().(float64),
				Offset:        c.Offset.Get().(float64),
				Shape:         shape,
				NoiseFraction: c.NoiseFraction.Get().(float64),
			},
		}
		if err := channels[ch].Validate(); err != nil {
			return err
		}
	}

	tb := instrument.TimebaseConfig{
		TimePerDivision: p.TimePerDivision.Get().(float64),
		SampleRate:      p.SampleRate.Get().(float64),
	}
	if err := tb.Validate(); err != nil {
		return err
	}

	var tc instrument.TriggerConfig
	var err error
	tc.Mode, err = instrument.ParseTriggerMode(p.TriggerMode.String())
	if err != nil {
		return err
	}
	tc.Edge, err = instrument.ParseEdge(p.TriggerEdge.String())
	if err != nil {
		return err
	}
	tc.Source, err = instrument.ParseChannel(p.TriggerSource.String())
	if err != nil {
		return err
	}
	tc.Level = p.TriggerLevel.Get().(float64)
	tc.HoldoffSeconds = p.Holdoff.Get().(float64)
	if err := tc.Validate(); err != nil {
		return err
	}

	fps := p.FramesPerSecond.Get().(int)
	if fps <= 0 {
		return curated.Errorf(instrument.InvalidConfiguration,
			fmt.Sprintf("frames per second must be positive (%d)", fps))
	}

	// all values are valid so the setters cannot fail
	for ch := range channels {
		_ = s.SetChannelConfig(instrument.Channel(ch), channels[ch])
	}
	_ = s.SetTimebaseConfig(tb)
	_ = s.SetTriggerConfig(tc)
	_ = s.SetFramesPerSecond(fps)

	return nil
}

// Load preference values from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load()
}

// Save current preference values to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
