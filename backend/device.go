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

// State is the normalised state of a controller at a single point in time.
// Stick values are in the range -1 to 1.
type State struct {
	MoveX   float64
	MoveY   float64
	ScrollX float64
	ScrollY float64

	Primary   bool
	Secondary bool
}

// Device is the capability set of a controller, regardless of the API used to
// access it.
type Device interface {
	// Connected returns true if the device is currently attached.
	Connected() bool

	// Read the current state of the device. The returned error should be a
	// *Fault (or wrap one).
	Read() (State, error)

	// Acquire the device for reading. Acquiring a device that has already
	// been acquired should not be an error.
	Acquire() error

	// Release all resources associated with the device.
	Release() error
}

// Identity identifies a secondary device. The identity is stable for the
// same physical device across disconnection and reconnection where the
// underlying API allows it. The empty Identity means no device.
type Identity string

// NoIdentity is the empty Identity.
const NoIdentity Identity = ""

// DeviceInfo describes an attached secondary device.
type DeviceInfo struct {
	ID   Identity
	Name string
}

func (inf DeviceInfo) String() string {
	return inf.Name + " [" + string(inf.ID) + "]"
}

// Enumerator lists and opens secondary devices. It represents the
// device-enumeration context of the secondary backend and must be closed when
// it is no longer required.
type Enumerator interface {
	// Valid returns false if the enumeration context is no longer usable and
	// should be recreated.
	Valid() bool

	// Devices returns the currently attached devices, in the order that the
	// backend prefers them.
	Devices() ([]DeviceInfo, error)

	// Open a device by identity. The returned Device has not been acquired.
	Open(id Identity) (Device, error)

	// Close the enumeration context. Devices opened by the enumerator should
	// be released before the enumerator is closed.
	Close() error
}

// Driver creates the devices and enumeration contexts of a concrete backend
// pair.
type Driver interface {
	// Primary returns the primary backend device. The device reports
	// Connected() as false when no primary controller is attached.
	Primary() (Device, error)

	// NewEnumerator creates a new enumeration context for the secondary
	// backend.
	NewEnumerator() (Enumerator, error)
}
