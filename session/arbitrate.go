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
	"github.com/jetsetilly/padpointer/backend"
)

// arbitrate decides which backend drives the pointer for this tick. must be
// called with the session lock held
func (s *Session) arbitrate() {
	if s.primary != nil && s.primary.Connected() {
		if s.secondary != nil {
			if err := s.releaseSecondary(); err != nil {
				s.fault(err, "releasing secondary device")
			}
		}

		s.activate(sourcePrimary)

		st, err := s.primary.Read()
		if err != nil {
			// the device was disconnected between the Connected() check and
			// the read. the next tick will find it disconnected
			if backend.IsFault(err, backend.FaultDeviceComms) {
				return
			}
			s.fault(err, "primary backend read")
			return
		}

		s.apply(sourcePrimary, st)
		return
	}

	if s.secondary.Open() {
		s.activate(sourceSecondary)

		st, err := s.secondary.Read()
		if err != nil {
			s.secondaryFault(err)
			return
		}

		s.apply(sourceSecondary, st)
		return
	}

	s.activate(sourceNone)
	s.reconnect(false)
}

// secondaryFault handles a fault returned by a secondary device read. must be
// called with the session lock held
func (s *Session) secondaryFault(err error) {
	switch backend.Classify(err) {
	case backend.FaultNotAcquired:
		aerr := s.secondary.Acquire()
		if aerr == nil {
			s.fault(err, "secondary device re-acquired")
			return
		}
		s.fault(aerr, "secondary device cannot be re-acquired")
	case backend.FaultInputLost:
		s.fault(err, "secondary device input lost")
	default:
		s.fault(err, "secondary device read")
	}

	if rerr := s.releaseSecondary(); rerr != nil {
		s.fault(rerr, "releasing secondary device")
	}
	s.reconnect(true)
}

// releaseSecondary closes the secondary device handle and forgets the bound
// identity. the preferred identity is kept. must be called with the session
// lock held
func (s *Session) releaseSecondary() error {
	s.releaseButtons(sourceSecondary)
	if s.active == sourceSecondary {
		s.activate(sourceNone)
	}

	s.bound = ""

	if s.secondary == nil {
		return nil
	}
	h := s.secondary
	s.secondary = nil
	return h.Close()
}
