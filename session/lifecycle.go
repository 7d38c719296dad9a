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
	"errors"
	"fmt"
	"time"

	"github.com/jetsetilly/padpointer/logger"
	"github.com/jetsetilly/padpointer/notifications"
)

// initialise the backends from scratch. must be called with the session lock
// held.
//
// a missing primary backend or enumeration context is not an error on its
// own. the session continues with whichever backend is available and the
// enumeration context is recreated by the reconnection supervisor
func (s *Session) initialise() error {
	s.primary = nil
	s.enum = nil
	s.secondary = nil
	s.bound = ""
	s.lastReconnect = time.Time{}
	s.reportedNone = false

	var perr, eerr error

	s.primary, perr = s.driver.Primary()
	if perr != nil {
		s.primary = nil
		s.fault(perr, "primary backend not available")
	}

	s.enum, eerr = s.driver.NewEnumerator()
	if eerr != nil {
		s.enum = nil
		s.fault(eerr, "cannot create device enumeration context")
	}

	if perr != nil && eerr != nil {
		return fmt.Errorf("session: no backend available: %w", errors.Join(perr, eerr))
	}

	s.disposed = false
	logger.Log(logger.Allow, "session", "backends initialised")

	return nil
}

// Start the poll loop. If the session has been disposed the backends are
// initialised again. Has no effect if the session is already running.
//
// A failure to start is logged and sent to the notifications.Notify
// implementation. The session is left stopped.
func (s *Session) Start() {
	var failure error

	s.crit.Lock()
	notify := s.notify
	func() {
		defer func() {
			if r := recover(); r != nil {
				failure = fmt.Errorf("session: start: %v", r)
				s.running = false
				s.ticker.Disarm()
			}
		}()

		if s.running {
			return
		}

		if s.disposed {
			if err := s.initialise(); err != nil {
				failure = err
				return
			}
		}

		s.active = sourceNone
		s.running = true
		s.ticker.Arm()
		logger.Log(logger.Allow, "session", "started")
	}()
	if failure != nil {
		s.fault(failure, "cannot start controller session")
	}
	s.crit.Unlock()

	if failure != nil {
		s.notifyUser(notify, notifications.NotifyStartFailed, failure)
	}
}

// Stop the poll loop. Handles to devices are kept open. Any pointer button
// held down by the session is released. Has no effect if the session is not
// running.
//
// A tick that started before Stop() was called may still be waiting to run.
// It will see that the session has stopped and will do nothing.
func (s *Session) Stop() {
	var failure error

	s.crit.Lock()
	notify := s.notify
	func() {
		defer func() {
			if r := recover(); r != nil {
				failure = fmt.Errorf("session: stop: %v", r)
				s.running = false
			}
		}()
		s.stop()
	}()
	if failure != nil {
		s.fault(failure, "cannot stop controller session")
	}
	s.crit.Unlock()

	if failure != nil {
		s.notifyUser(notify, notifications.NotifyStopFailed, failure)
	}
}

// must be called with the session lock held.
func (s *Session) stop() {
	s.ticker.Disarm()
	if !s.running {
		return
	}
	s.running = false
	s.activate(sourceNone)
	s.releaseButtons(sourcePrimary)
	s.releaseButtons(sourceSecondary)
	logger.Log(logger.Allow, "session", "stopped")
}

// Dispose stops the session and releases every device and the device
// enumeration context. It is safe to call Dispose() more than once. The
// session can be started again with Start().
func (s *Session) Dispose() {
	var failures []error

	s.crit.Lock()
	notify := s.notify
	func() {
		defer func() {
			if r := recover(); r != nil {
				failures = append(failures, fmt.Errorf("session: dispose: %v", r))
				s.running = false
				s.disposed = true
			}
		}()

		s.stop()

		if s.disposed {
			return
		}

		if err := s.releaseSecondary(); err != nil {
			failures = append(failures, err)
		}
		s.preferred = ""

		if s.enum != nil {
			if err := s.enum.Close(); err != nil {
				failures = append(failures, fmt.Errorf("session: enumeration context: %w", err))
			}
			s.enum = nil
		}

		if s.primary != nil {
			if err := s.primary.Release(); err != nil {
				failures = append(failures, fmt.Errorf("session: primary backend: %w", err))
			}
			s.primary = nil
		}

		s.disposed = true
		logger.Log(logger.Allow, "session", "disposed")
	}()

	failure := errors.Join(failures...)
	if failure != nil {
		s.fault(failure, "cannot dispose controller session cleanly")
	}
	s.crit.Unlock()

	if failure != nil {
		s.notifyUser(notify, notifications.NotifyDisposeFailed, failure)
	}
}

// IsRunning returns true if the poll loop is running.
func (s *Session) IsRunning() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.running
}

// IsDisposed returns true if the session has been disposed and not started
// since.
func (s *Session) IsDisposed() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.disposed
}
