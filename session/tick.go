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
	"fmt"

	"github.com/jetsetilly/padpointer/backend"
	"github.com/jetsetilly/padpointer/notifications"
	"github.com/jetsetilly/padpointer/userinput"
)

// tick is called by the timer. a tick that arrives while the previous tick is
// still running returns immediately
func (s *Session) tick() {
	if !s.gate.TryLock() {
		s.stats.skipped.Add(1)
		return
	}
	defer s.gate.Unlock()

	s.stats.entered.Add(1)
	if s.stats.inflight.Add(1) > 1 {
		s.stats.overlapped.Add(1)
	}
	defer func() {
		s.stats.inflight.Add(-1)
		s.stats.completed.Add(1)
	}()

	if failure, notify := s.poll(); failure != nil {
		s.notifyUser(notify, notifications.NotifyPollFault, failure)
	}
}

// poll runs the body of the tick under the session lock. an unexpected fault
// is recovered and returned along with the Notify implementation to send it
// to
func (s *Session) poll() (failure error, notify notifications.Notify) {
	s.crit.Lock()
	defer s.crit.Unlock()

	notify = s.notify

	defer func() {
		if r := recover(); r != nil {
			s.stats.faults.Add(1)
			failure = fmt.Errorf("session: tick: %v", r)
			s.fault(failure, "unexpected fault in poll loop")
		}
	}()

	if s.disposed || !s.running {
		s.ticker.Disarm()
		return nil, notify
	}

	s.arbitrate()

	return nil, notify
}

// apply the state of a controller to the pointer. must be called with the
// session lock held
func (s *Session) apply(which source, st backend.State) {
	cal := s.prefs.calibration(which)
	dzx := s.prefs.DeadzoneX.Load()
	dzy := s.prefs.DeadzoneY.Load()
	move := cal.MoveScale.Load()
	scroll := cal.ScrollScale.Load()

	mx := userinput.Axis(st.MoveX, dzx, move)
	my := userinput.Axis(st.MoveY, dzy, move)
	if cal.InvertMoveY.Get().(bool) {
		my = -my
	}

	sx := userinput.Axis(st.ScrollX, dzx, scroll)
	sy := userinput.Axis(st.ScrollY, dzy, scroll)
	if cal.InvertScrollY.Get().(bool) {
		sy = -sy
	}

	dx := s.axes[axisMoveX].Take(mx)
	dy := s.axes[axisMoveY].Take(my)
	if dx != 0 || dy != 0 {
		s.emitter.MoveBy(dx, dy)
	}
	if h := s.axes[axisScrollX].Take(sx); h != 0 {
		s.emitter.HorizontalScroll(h)
	}
	if v := s.axes[axisScrollY].Take(sy); v != 0 {
		s.emitter.VerticalScroll(v)
	}

	switch s.buttons[which][buttonPrimary].Update(st.Primary) {
	case userinput.EdgePress:
		s.emitter.PrimaryButtonDown()
	case userinput.EdgeRelease:
		s.emitter.PrimaryButtonUp()
	}

	switch s.buttons[which][buttonSecondary].Update(st.Secondary) {
	case userinput.EdgePress:
		s.emitter.SecondaryButtonDown()
	case userinput.EdgeRelease:
		s.emitter.SecondaryButtonUp()
	}
}

// activate records the backend that is driving the pointer. when the backend
// changes, buttons held by the previous backend are released and the
// accumulated axis remainders are discarded. must be called with the session
// lock held
func (s *Session) activate(which source) {
	if s.active == which {
		return
	}
	s.releaseButtons(s.active)
	for i := range s.axes {
		s.axes[i].Reset()
	}
	s.active = which
}

// releaseButtons emits a button up event for every button held by the
// backend. must be called with the session lock held
func (s *Session) releaseButtons(which source) {
	if s.buttons[which][buttonPrimary].Reset() {
		s.emitter.PrimaryButtonUp()
	}
	if s.buttons[which][buttonSecondary].Reset() {
		s.emitter.SecondaryButtonUp()
	}
}
