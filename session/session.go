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
	"sync"
	"sync/atomic"
	"time"

	"github.com/jetsetilly/padpointer/backend"
	"github.com/jetsetilly/padpointer/logger"
	"github.com/jetsetilly/padpointer/notifications"
	"github.com/jetsetilly/padpointer/performance/limiter"
	"github.com/jetsetilly/padpointer/pointer"
	"github.com/jetsetilly/padpointer/userinput"
)

// TickRate is the number of poll loop ticks per second.
const TickRate = 60

// ErrorLogger is called for every recoverable fault. The error argument may
// be nil.
type ErrorLogger func(err error, msg string)

// the ErrorLogger used by a new Session
func defaultErrorLogger(err error, msg string) {
	if err == nil {
		logger.Log(logger.Allow, "session", msg)
		return
	}
	logger.Logf(logger.Allow, "session", "%s: %v", msg, err)
}

// the recurring timer that drives the poll loop
type timer interface {
	Arm()
	Disarm()
	Armed() bool
	Period() time.Duration
}

type timerFactory func(ticksPerSecond int, fn func()) (timer, error)

func newLimiter(ticksPerSecond int, fn func()) (timer, error) {
	t, err := limiter.NewTicker(ticksPerSecond, fn)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// source identifies the backend that drove the pointer on the most recent
// tick.
type source int

const (
	sourceNone source = iota
	sourcePrimary
	sourceSecondary
)

func (src source) String() string {
	switch src {
	case sourcePrimary:
		return "primary"
	case sourceSecondary:
		return "secondary"
	}
	return "none"
}

// the logical buttons tracked for each backend
const (
	buttonPrimary = iota
	buttonSecondary
	numButtons
)

// the accumulated stick axes
const (
	axisMoveX = iota
	axisMoveY
	axisScrollX
	axisScrollY
	numAxes
)

// Stats are counters describing the activity of the poll loop.
type Stats struct {
	// the poll loop timer is running
	Polling bool

	// duration between ticks
	Period time.Duration

	// ticks that entered the poll loop
	Entered int64

	// ticks that were skipped because the previous tick was still running
	Skipped int64

	// ticks that completed, including ticks that ended with a fault
	Completed int64

	// ticks that entered the poll loop while another tick was running. this
	// should always be zero
	Overlapped int64

	// searches for a secondary device
	Reconnects int64

	// faults recovered at the tick boundary
	Faults int64
}

func (st Stats) String() string {
	return fmt.Sprintf("polling=%v period=%v entered=%d skipped=%d completed=%d overlapped=%d reconnects=%d faults=%d",
		st.Polling, st.Period, st.Entered, st.Skipped, st.Completed, st.Overlapped, st.Reconnects, st.Faults)
}

type stats struct {
	entered    atomic.Int64
	skipped    atomic.Int64
	completed  atomic.Int64
	overlapped atomic.Int64
	reconnects atomic.Int64
	faults     atomic.Int64
	inflight   atomic.Int32
}

// Session translates controller input into pointer events.
type Session struct {
	// every field below is guarded by crit, except where noted
	crit sync.Mutex

	// single-flight guard for the poll loop. only ever used with TryLock()
	gate sync.Mutex

	driver  backend.Driver
	emitter pointer.Emitter
	prefs   *Preferences

	notify   notifications.Notify
	logError ErrorLogger

	ticker timer

	primary   backend.Device
	enum      backend.Enumerator
	secondary *backend.Handle

	// identity of the currently bound secondary device
	bound backend.Identity

	// identity of the secondary device to prefer when reconnecting. survives
	// the transient loss of the bound device
	preferred backend.Identity

	running  bool
	disposed bool

	lastReconnect time.Time
	now           func() time.Time

	// whether the absence of a secondary device has been logged
	reportedNone bool

	active  source
	buttons [3][numButtons]userinput.Button
	axes    [numAxes]userinput.Accumulator

	// not guarded by crit
	stats stats
}

// NewSession is the preferred method of initialisation for the Session type.
// The session is created stopped, with the backends initialised. A nil
// Preferences argument uses the default preferences.
func NewSession(driver backend.Driver, emitter pointer.Emitter, p *Preferences) (*Session, error) {
	return newSession(driver, emitter, p, newLimiter)
}

func newSession(driver backend.Driver, emitter pointer.Emitter, p *Preferences, newTimer timerFactory) (*Session, error) {
	if driver == nil {
		return nil, fmt.Errorf("session: no backend driver")
	}
	if emitter == nil {
		return nil, fmt.Errorf("session: no pointer emitter")
	}

	if p == nil {
		var err error
		p, err = NewPreferences()
		if err != nil {
			return nil, err
		}
	}

	s := &Session{
		driver:   driver,
		emitter:  emitter,
		prefs:    p,
		notify:   notifications.Discard{},
		logError: defaultErrorLogger,
		now:      time.Now,
	}

	var err error
	s.ticker, err = newTimer(TickRate, s.tick)
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}

	s.crit.Lock()
	defer s.crit.Unlock()
	if err := s.initialise(); err != nil {
		return nil, err
	}

	return s, nil
}

// SetNotify sets the destination for user notifications. A nil argument
// discards notifications.
func (s *Session) SetNotify(notify notifications.Notify) {
	s.crit.Lock()
	defer s.crit.Unlock()
	if notify == nil {
		notify = notifications.Discard{}
	}
	s.notify = notify
}

// SetErrorLogger sets the function called for every recoverable fault. A nil
// argument restores the default, which writes to the central logger.
func (s *Session) SetErrorLogger(logError ErrorLogger) {
	s.crit.Lock()
	defer s.crit.Unlock()
	if logError == nil {
		logError = defaultErrorLogger
	}
	s.logError = logError
}

// Prefs returns the preferences of the session.
func (s *Session) Prefs() *Preferences {
	return s.prefs
}

// Stats returns a snapshot of the poll loop counters.
func (s *Session) Stats() Stats {
	return Stats{
		Polling:    s.ticker.Armed(),
		Period:     s.ticker.Period(),
		Entered:    s.stats.entered.Load(),
		Skipped:    s.stats.skipped.Load(),
		Completed:  s.stats.completed.Load(),
		Overlapped: s.stats.overlapped.Load(),
		Reconnects: s.stats.reconnects.Load(),
		Faults:     s.stats.faults.Load(),
	}
}

// BoundIdentity returns the identity of the bound secondary device. Returns
// backend.NoIdentity if no secondary device is bound.
func (s *Session) BoundIdentity() backend.Identity {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.bound
}

// PreferredIdentity returns the identity of the secondary device that will
// be preferred when reconnecting.
func (s *Session) PreferredIdentity() backend.Identity {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.preferred
}

// PreferDevice sets the secondary device to prefer when reconnecting. If a
// different secondary device is bound, the session reconnects immediately.
// If the preferred device is not attached the bound device is kept and the
// preference reverts to it.
func (s *Session) PreferDevice(id backend.Identity) {
	s.crit.Lock()
	defer s.crit.Unlock()
	s.preferred = id
	if id != backend.NoIdentity && s.secondary.Open() && s.secondary.Identity() != id {
		s.reconnect(true)
	}
}

// HasSecondary returns true if a secondary device handle is open.
func (s *Session) HasSecondary() bool {
	s.crit.Lock()
	defer s.crit.Unlock()
	return s.secondary.Open()
}

// Devices lists the secondary devices that are currently attached.
func (s *Session) Devices() ([]backend.DeviceInfo, error) {
	s.crit.Lock()
	defer s.crit.Unlock()
	if s.enum == nil || !s.enum.Valid() {
		return nil, fmt.Errorf("session: no device enumeration context")
	}
	devs, err := s.enum.Devices()
	if err != nil {
		return nil, fmt.Errorf("session: %w", err)
	}
	return devs, nil
}

// fault calls the ErrorLogger. A panicking ErrorLogger is contained.
func (s *Session) fault(err error, msg string) {
	defer func() {
		if r := recover(); r != nil {
			logger.Logf(logger.Allow, "session", "error logger: %v", r)
		}
	}()
	s.logError(err, msg)
}

// notifyUser sends a notification. A panicking Notify implementation is
// contained. must not be called with the session lock held
func (s *Session) notifyUser(notify notifications.Notify, notice notifications.Notice, err error) {
	defer func() {
		if r := recover(); r != nil {
			logger.Logf(logger.Allow, "session", "notify: %v", r)
		}
	}()
	notify.Notify(notice, err)
}
