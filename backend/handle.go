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

import (
	"fmt"
)

// Handle exclusively owns an opened secondary device. A Handle must not be
// copied. Once closed, a Handle cannot be used again.
type Handle struct {
	id     Identity
	dev    Device
	closed bool
}

// NewHandle is the preferred method of initialisation for the Handle type.
// The Handle takes ownership of the device.
func NewHandle(id Identity, dev Device) *Handle {
	return &Handle{
		id:  id,
		dev: dev,
	}
}

// Identity of the device owned by the handle. Returns NoIdentity if the
// handle is nil.
func (h *Handle) Identity() Identity {
	if h == nil {
		return NoIdentity
	}
	return h.id
}

// Valid returns true if the handle has not been closed and the device is
// still connected. A nil handle is never valid.
func (h *Handle) Valid() bool {
	if h == nil || h.closed || h.dev == nil {
		return false
	}
	return h.dev.Connected()
}

// Open returns true if the handle has not been closed. A nil handle is never
// open.
func (h *Handle) Open() bool {
	return h != nil && !h.closed && h.dev != nil
}

// Acquire the device owned by the handle.
func (h *Handle) Acquire() error {
	if !h.Open() {
		return NewFault(FaultInputLost, fmt.Errorf("handle for %q is closed", h.Identity()))
	}
	return h.dev.Acquire()
}

// Read the state of the device owned by the handle.
func (h *Handle) Read() (State, error) {
	if !h.Open() {
		return State{}, NewFault(FaultInputLost, fmt.Errorf("handle for %q is closed", h.Identity()))
	}
	return h.dev.Read()
}

// Close releases the device owned by the handle. It is safe to call Close()
// more than once and to call Close() on a nil handle. Only the first call
// releases the device.
func (h *Handle) Close() error {
	if !h.Open() {
		return nil
	}
	h.closed = true
	dev := h.dev
	h.dev = nil
	if err := dev.Release(); err != nil {
		return fmt.Errorf("backend: release %q: %w", h.id, err)
	}
	return nil
}
