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

package userinput

import "math"

// Axis maps a normalised axis reading in the range -1 to 1 to a scaled output.
//
// Readings with a magnitude smaller than the deadzone produce zero. Outside
// the deadzone, the distance from the edge of the deadzone is multiplied by
// the scale and then re-expanded by 1/(1-deadzone), so that a fully deflected
// stick always produces the full scale regardless of the deadzone.
//
// Readings outside the -1 to 1 range are clamped. A negative deadzone is
// treated as zero and a deadzone of 1 or more suppresses all output.
func Axis(v float64, deadzone float64, scale float64) float64 {
	if math.IsNaN(v) || math.IsNaN(deadzone) || deadzone >= 1 {
		return 0
	}
	v = max(-1, min(1, v))
	deadzone = max(0, deadzone)

	m := math.Abs(v)
	if m < deadzone {
		return 0
	}

	out := (m - deadzone) * scale / (1 - deadzone)
	if v < 0 {
		return -out
	}
	return out
}

// MaxDeadzone is the largest deadzone value returned by ClampDeadzone(). It is
// the largest float64 less than 1.
var MaxDeadzone = math.Nextafter(1, 0)

// ClampDeadzone returns the deadzone limited to the range 0 to MaxDeadzone.
func ClampDeadzone(deadzone float64) float64 {
	if math.IsNaN(deadzone) {
		return 0
	}
	return max(0, min(MaxDeadzone, deadzone))
}

// Normalise converts a raw signed 16 bit axis value to the range -1 to 1.
// The asymmetry of the int16 range is handled so that both extremes map to
// exactly -1 and 1.
func Normalise(raw int16) float64 {
	if raw < 0 {
		return float64(raw) / 32768.0
	}
	return float64(raw) / 32767.0
}
