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

//go:build !linux

package easyterm

import (
	"fmt"
	"os"
)

// Terminal is not supported on this platform.
type Terminal struct{}

// Initialise always fails on this platform.
func (pt *Terminal) Initialise(inputFile, outputFile *os.File) error {
	return fmt.Errorf("easyterm: terminal not supported on this platform")
}

func (pt *Terminal) CleanUp() {}
func (pt *Terminal) Print(s string, a ...any) {}
func (pt *Terminal) CanonicalMode() {}
func (pt *Terminal) CBreakMode() {}
func (pt *Terminal) ReadKey() (byte, error) { return 0, fmt.Errorf("easyterm: not supported") }
func (pt *Terminal) Flush() error { return nil }
