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

// Package backend defines the capability set shared by every controller
// backend and the fault taxonomy used to describe backend failures.
//
// A backend provides Devices. The primary backend provides a single Device
// that is polled for connection every tick. A secondary backend provides an
// Enumerator, from which Devices are opened by Identity and wrapped in a
// Handle.
//
// Errors returned by a Device should be a *Fault, or should wrap one. Errors
// that are not faults are classified as FaultOther by Classify().
package backend
