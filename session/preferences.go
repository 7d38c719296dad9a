// This file is part of Padpointer.
//
// Padpointer is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padpointer is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padpointer.  If not, see <https://www.gnu.org/licenses/>.

package session

import (
	"fmt"

	"github.com/jetsetilly/padpointer/prefs"
	"github.com/jetsetilly/padpointer/userinput"
)

// Calibration is the scaling applied to the sticks of one backend. The values
// are not derived from the device and must be tuned by hand.
type Calibration struct {
	// pixels per tick at full deflection
	MoveScale prefs.Float

	// wheel units per tick at full deflection
	ScrollScale prefs.Float

	InvertMoveY   prefs.Bool
	InvertScrollY prefs.Bool
}

// Preferences for a session. Every value can be changed at any time, from
// any goroutine.
type Preferences struct {
	DeadzoneX prefs.Float
	DeadzoneY prefs.Float

	Primary   Calibration
	Secondary Calibration

	// minimum time in milliseconds between searches for a secondary device
	// when no device is bound
	ReconnectInterval prefs.Int

	collection *prefs.Collection
}

// default preference values.
const (
	DefaultDeadzone = 0.1

	DefaultPrimaryMoveScale     = 7.0
	DefaultPrimaryScrollScale   = 7.0
	DefaultSecondaryMoveScale   = 10.0
	DefaultSecondaryScrollScale = 15.0

	DefaultReconnectInterval = 5000
)

// NewPreferences is the preferred method of initialisation for the
// Preferences type. All values are set to their defaults.
func NewPreferences() (*Preferences, error) {
	p := &Preferences{
		collection: prefs.NewCollection(),
	}

	deadzone := func(v prefs.Value) error {
		f := v.(float64)
		if f < 0 || f >= 1 {
			return fmt.Errorf("deadzone must be at least 0 and less than 1")
		}
		return nil
	}
	p.DeadzoneX.SetHookPre(deadzone)
	p.DeadzoneY.SetHookPre(deadzone)

	p.ReconnectInterval.SetHookPre(func(v prefs.Value) error {
		if v.(int) < 0 {
			return fmt.Errorf("reconnect interval cannot be negative")
		}
		return nil
	})

	add := []struct {
		key string
		p   prefs.Pref
		def prefs.Value
	}{
		{"session.deadzonex", &p.DeadzoneX, DefaultDeadzone},
		{"session.deadzoney", &p.DeadzoneY, DefaultDeadzone},
		{"session.primary.movescale", &p.Primary.MoveScale, DefaultPrimaryMoveScale},
		{"session.primary.scrollscale", &p.Primary.ScrollScale, DefaultPrimaryScrollScale},
		{"session.primary.invertmovey", &p.Primary.InvertMoveY, false},
		{"session.primary.invertscrolly", &p.Primary.InvertScrollY, true},
		{"session.secondary.movescale", &p.Secondary.MoveScale, DefaultSecondaryMoveScale},
		{"session.secondary.scrollscale", &p.Secondary.ScrollScale, DefaultSecondaryScrollScale},
		{"session.secondary.invertmovey", &p.Secondary.InvertMoveY, false},
		{"session.secondary.invertscrolly", &p.Secondary.InvertScrollY, true},
		{"session.reconnectinterval", &p.ReconnectInterval, DefaultReconnectInterval},
	}

	for _, a := range add {
		if err := p.collection.Add(a.key, a.p, a.def); err != nil {
			return nil, fmt.Errorf("session: %w", err)
		}
	}

	return p, nil
}

// SetDeadzones sets both deadzone values. Values are clamped to the range 0
// to userinput.MaxDeadzone.
func (p *Preferences) SetDeadzones(x, y float64) error {
	if err := p.SetDeadzoneX(x); err != nil {
		return err
	}
	return p.SetDeadzoneY(y)
}

// SetDeadzoneX sets the deadzone of the horizontal axes, clamped in the same
// way as SetDeadzones().
func (p *Preferences) SetDeadzoneX(x float64) error {
	if err := p.DeadzoneX.Set(userinput.ClampDeadzone(x)); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

// SetDeadzoneY sets the deadzone of the vertical axes, clamped in the same way
// as SetDeadzones().
func (p *Preferences) SetDeadzoneY(y float64) error {
	if err := p.DeadzoneY.Set(userinput.ClampDeadzone(y)); err != nil {
		return fmt.Errorf("session: %w", err)
	}
	return nil
}

// SetDefaults sets every preference to its default value.
func (p *Preferences) SetDefaults() error {
	return p.collection.SetDefaults()
}

// ApplyCommandLine sets preferences from the top group of the prefs command
// line stack.
func (p *Preferences) ApplyCommandLine() error {
	return p.collection.ApplyCommandLine()
}

func (p *Preferences) String() string {
	return p.collection.String()
}

func (p *Preferences) calibration(which source) *Calibration {
	if which == sourceSecondary {
		return &p.Secondary
	}
	return &p.Primary
}
