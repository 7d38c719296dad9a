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
	"time"

	"github.com/jetsetilly/padpointer/backend"
	"github.com/jetsetilly/padpointer/logger"
)

func (s *Session) reconnectInterval() time.Duration {
	return time.Duration(s.prefs.ReconnectInterval.Get().(int)) * time.Millisecond
}

// reconnect looks for a secondary device and binds to it. an immediate
// reconnection is made after the loss of a device. otherwise the search is
// limited by the reconnection interval. must be called with the session lock
// held
func (s *Session) reconnect(immediate bool) {
	now := s.now()
	if !immediate && !s.lastReconnect.IsZero() && now.Sub(s.lastReconnect) < s.reconnectInterval() {
		return
	}
	s.lastReconnect = now
	s.stats.reconnects.Add(1)

	// primary backend takes precedence
	if s.primary != nil && s.primary.Connected() {
		if err := s.releaseSecondary(); err != nil {
			s.fault(err, "releasing secondary device")
		}
		return
	}

	if s.enum == nil || !s.enum.Valid() {
		// devices opened by the old context must not outlive it
		if err := s.releaseSecondary(); err != nil {
			s.fault(err, "releasing secondary device")
		}
		if s.enum != nil {
			if err := s.enum.Close(); err != nil {
				s.fault(err, "closing device enumeration context")
			}
			s.enum = nil
		}

		enum, err := s.driver.NewEnumerator()
		if err != nil {
			s.fault(err, "cannot create device enumeration context")
			return
		}
		s.enum = enum
		logger.Log(logger.Allow, "session", "device enumeration context created")
	}

	devs, err := s.enum.Devices()
	if err != nil {
		s.fault(err, "device enumeration")
		return
	}

	candidate := backend.NoIdentity
	for _, d := range devs {
		if d.ID == s.preferred && s.preferred != backend.NoIdentity {
			candidate = d.ID
			break // for loop
		}
		if candidate == backend.NoIdentity {
			candidate = d.ID
		}
	}

	if candidate == backend.NoIdentity {
		if s.secondary != nil || s.bound != backend.NoIdentity {
			if err := s.releaseSecondary(); err != nil {
				s.fault(err, "releasing secondary device")
			}
		}
		s.preferred = backend.NoIdentity
		if !s.reportedNone {
			s.fault(nil, "no secondary device attached")
			s.reportedNone = true
		}
		return
	}

	if s.secondary != nil && (s.secondary.Identity() != candidate || !s.secondary.Valid()) {
		if err := s.releaseSecondary(); err != nil {
			s.fault(err, "releasing secondary device")
		}
	}

	if s.secondary == nil {
		dev, err := s.enum.Open(candidate)
		if err != nil {
			s.bound = backend.NoIdentity
			s.fault(err, "cannot open secondary device")
			return
		}
		s.secondary = backend.NewHandle(candidate, dev)
	}

	if err := s.secondary.Acquire(); err != nil {
		if rerr := s.releaseSecondary(); rerr != nil {
			s.fault(rerr, "releasing secondary device")
		}
		s.fault(err, "cannot acquire secondary device")
		return
	}

	if s.bound != candidate {
		for _, d := range devs {
			if d.ID == candidate {
				logger.Logf(logger.Allow, "session", "secondary device bound: %s", d)
				break // for loop
			}
		}
	}

	s.bound = candidate
	s.preferred = candidate
	s.reportedNone = false
}
