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

// Package limiter provides a recurring timer that calls a function at a fixed
// rate.
//
// Unlike time.Ticker, the callback is run on a new goroutine every period.
// A slow callback does not delay the next period and two callbacks may
// therefore be running at the same time. Callers that need single-flight
// behaviour must provide it themselves.
package limiter

import (
	"fmt"
	"sync"
	"time"
)

// Ticker calls a function at a fixed rate once it has been armed.
type Ticker struct {
	crit   sync.Mutex
	period time.Duration
	fn     func()

	// closed to stop the goroutine started by Arm(). nil when disarmed
	quit chan struct{}
}

// NewTicker is the preferred method of initialisation for the Ticker type.
// The ticker is created disarmed.
func NewTicker(ticksPerSecond int, fn func()) (*Ticker, error) {
	if ticksPerSecond <= 0 {
		return nil, fmt.Errorf("limiter: ticks per second must be positive (%d)", ticksPerSecond)
	}
	if fn == nil {
		return nil, fmt.Errorf("limiter: tick function is nil")
	}
	return &Ticker{
		period: time.Second / time.Duration(ticksPerSecond),
		fn:     fn,
	}, nil
}

// Period returns the duration between ticks.
func (tck *Ticker) Period() time.Duration {
	return tck.period
}

// Arm starts the ticker. Has no effect if the ticker is already armed.
func (tck *Ticker) Arm() {
	tck.crit.Lock()
	defer tck.crit.Unlock()

	if tck.quit != nil {
		return
	}

	quit := make(chan struct{})
	tck.quit = quit

	go func() {
		t := time.NewTicker(tck.period)
		defer t.Stop()
		for {
			select {
			case <-quit:
				return
			case <-t.C:
				// quit takes priority over a tick that arrived at the same
				// time
				select {
				case <-quit:
					return
				default:
				}
				go tck.fn()
			}
		}
	}()
}

// Disarm stops the ticker. Has no effect if the ticker is not armed.
//
// Disarm does not wait for callbacks that are already running.
func (tck *Ticker) Disarm() {
	tck.crit.Lock()
	defer tck.crit.Unlock()

	if tck.quit == nil {
		return
	}
	close(tck.quit)
	tck.quit = nil
}

// Armed returns true if the ticker is armed.
func (tck *Ticker) Armed() bool {
	tck.crit.Lock()
	defer tck.crit.Unlock()
	return tck.quit != nil
}
