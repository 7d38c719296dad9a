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

// Package userinput converts the raw state of a game controller into values
// that are suitable for driving a desktop pointer.
//
// Axis() applies a deadzone and a scaling factor to a normalised stick
// reading. The Button type detects press and release edges from consecutive
// button levels. The Accumulator type carries the fractional part of scaled
// axis output from one poll to the next so that small stick deflections are
// not lost when the output is rounded to whole pixels.
//
// Nothing in this package is safe for concurrent use. Values are owned by
// the polling loop.
package userinput
