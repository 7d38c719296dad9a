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

package limiter_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/jetsetilly/padpointer/performance/limiter"
	"github.com/jetsetilly/padpointer/test"
)

func TestNewTicker(t *testing.T) {
	_, err := limiter.NewTicker(0, func() {})
	test.ExpectFailure(t, err)

	_, err = limiter.NewTicker(60, nil)
	test.ExpectFailure(t, err)

	tck, err := limiter.NewTicker(60, func() {})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, tck.Period(), time.Second/60)
	test.ExpectFailure(t, tck.Armed())
}

func TestArmDisarm(t *testing.T) {
	var count atomic.Int32
	tck, err := limiter.NewTicker(200, func() {
		count.Add(1)
	})
	test.DemandSuccess(t, err)

	tck.Arm()
	tck.Arm()
	test.ExpectSuccess(t, tck.Armed())

	deadline := time.Now().Add(2 * time.Second)
	for count.Load() < 3 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	test.ExpectSuccess(t, count.Load() >= 3)

	tck.Disarm()
	tck.Disarm()
	test.ExpectFailure(t, tck.Armed())

	// allow any callback started before Disarm() to finish
	time.Sleep(50 * time.Millisecond)
	n := count.Load()
	time.Sleep(50 * time.Millisecond)
	test.ExpectEquality(t, count.Load(), n)
}

func TestOverlappingCallbacks(t *testing.T) {
	var running atomic.Int32
	var overlap atomic.Bool

	release := make(chan struct{})
	tck, err := limiter.NewTicker(500, func() {
		if running.Add(1) > 1 {
			overlap.Store(true)
		}
		<-release
		running.Add(-1)
	})
	test.DemandSuccess(t, err)

	tck.Arm()
	deadline := time.Now().Add(2 * time.Second)
	for !overlap.Load() && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	tck.Disarm()
	close(release)

	test.ExpectSuccess(t, overlap.Load())
}
