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

package backend

import "fmt"

// Mixed is a Driver that takes the primary device from one driver and the
// enumeration context from another.
type Mixed struct {
	PrimaryFrom   Driver
	SecondaryFrom Driver
}

// Primary implements the Driver interface.
func (m Mixed) Primary() (Device, error) {
	if m.PrimaryFrom == nil {
		return nil, fmt.Errorf("backend: no primary driver")
	}
	return m.PrimaryFrom.Primary()
}

// NewEnumerator implements the Driver interface.
func (m Mixed) NewEnumerator() (Enumerator, error) {
	if m.SecondaryFrom == nil {
		return nil, fmt.Errorf("backend: no secondary driver")
	}
	return m.SecondaryFrom.NewEnumerator()
}
