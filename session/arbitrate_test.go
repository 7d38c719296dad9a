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
	"testing"

	"github.com/jetsetilly/padpointer/backend"
	"github.com/jetsetilly/padpointer/test"
)

func TestDeadzone(t *testing.T) {
	h := newHarness(t)
	h.drv.PrimaryDevice().SetConnected(true)
	h.drv.PrimaryDevice().SetState(backend.State{MoveX: 0.05, MoveY: -0.05, ScrollY: 0.09})

	h.s.Start()
	h.tmr.fire(10)
	test.ExpectEquality(t, h.events(), "")
}

func TestWideDeadzone(t *testing.T) {
	h := newHarness(t)
	h.drv.PrimaryDevice().SetConnected(true)
	h.drv.PrimaryDevice().SetState(backend.State{MoveX: 0.96, MoveY: -0.96})

	test.DemandSuccess(t, h.s.Prefs().SetDeadzones(0.97, 0.97))
	test.ExpectEquality(t, h.s.Prefs().DeadzoneX.Load(), 0.97)

	h.s.Start()
	h.tmr.fire(10)
	test.ExpectEquality(t, h.events(), "")

	// full deflection is outside even the widest deadzone
	h.drv.PrimaryDevice().SetState(backend.State{MoveX: 1.0})
	h.tmr.fire(1)
	test.ExpectEquality(t, h.events(), "move 7,0")
}

func TestFractionalMovement(t *testing.T) {
	h := newHarness(t)
	h.drv.PrimaryDevice().SetConnected(true)

	// (0.55 - 0.1) * 7 / (1 - 0.1) is 3.5 pixels per tick
	h.drv.PrimaryDevice().SetState(backend.State{MoveX: 0.55})

	h.s.Start()
	h.tmr.fire(2)
	test.ExpectEquality(t, h.events(), "move 3,0; move 4,0")
}

func TestFullDeflection(t *testing.T) {
	h := newHarness(t)
	h.drv.PrimaryDevice().SetConnected(true)
	h.drv.PrimaryDevice().SetState(backend.State{MoveX: -1.0, MoveY: 1.0})

	h.s.Start()
	h.tmr.fire(1)
	test.ExpectEquality(t, h.events(), "move -7,7")

	// invert the vertical axis
	test.ExpectSuccess(t, h.s.Prefs().Primary.InvertMoveY.Set(true))
	h.rec.Clear()
	h.tmr.fire(1)
	test.ExpectEquality(t, h.events(), "move -7,-7")
}

func TestButtonEdges(t *testing.T) {
	h := newHarness(t)
	h.drv.PrimaryDevice().SetConnected(true)
	h.s.Start()

	for _, b := range []bool{false, true, true, false} {
		h.drv.PrimaryDevice().SetState(backend.State{Primary: b})
		h.tmr.fire(1)
	}
	test.ExpectEquality(t, h.events(), "primary down; primary up")

	h.rec.Clear()
	for _, b := range []bool{true, false, true, false} {
		h.drv.PrimaryDevice().SetState(backend.State{Secondary: b})
		h.tmr.fire(1)
	}
	test.ExpectEquality(t, h.events(), "secondary down; secondary up; secondary down; secondary up")
}

func TestSecondaryCalibration(t *testing.T) {
	h := newHarness(t)
	h.s.Start()
	dev := h.bindSecondary(t, "pad1")

	dev.SetState(backend.State{MoveX: 1.0, ScrollX: 1.0, ScrollY: 1.0})
	h.tmr.fire(1)
	test.ExpectEquality(t, h.events(), "move 10,0; hscroll 15; vscroll -15")

	h.rec.Clear()
	test.ExpectSuccess(t, h.s.Prefs().Secondary.InvertScrollY.Set(false))
	dev.SetState(backend.State{ScrollY: -1.0})
	h.tmr.fire(1)
	test.ExpectEquality(t, h.events(), "vscroll -15")
}

func TestPrimaryTakeover(t *testing.T) {
	h := newHarness(t)
	h.s.Start()
	dev := h.bindSecondary(t, "pad1")

	dev.SetState(backend.State{Primary: true})
	h.tmr.fire(1)
	test.ExpectEquality(t, h.events(), "primary down")

	// the primary backend takes over. the secondary device is released along
	// with its held buttons
	h.rec.Clear()
	h.drv.PrimaryDevice().SetConnected(true)
	h.drv.PrimaryDevice().SetState(backend.State{MoveY: 1.0})
	h.tmr.fire(1)
	test.ExpectEquality(t, h.events(), "primary up; move 0,7")
	test.ExpectFailure(t, h.s.HasSecondary())
	test.ExpectEquality(t, dev.Releases(), 1)
	test.ExpectEquality(t, h.s.BoundIdentity(), backend.NoIdentity)
	test.ExpectEquality(t, h.s.PreferredIdentity(), backend.Identity("pad1"))

	// the secondary device is not bound again until the reconnection interval
	// has passed
	h.drv.PrimaryDevice().SetConnected(false)
	h.tmr.fire(1)
	test.ExpectFailure(t, h.s.HasSecondary())

	h.clk.advance(h.s.reconnectInterval())
	h.tmr.fire(1)
	test.ExpectSuccess(t, h.s.HasSecondary())
	test.ExpectEquality(t, h.s.BoundIdentity(), backend.Identity("pad1"))
}

func TestPrimaryReadFault(t *testing.T) {
	h := newHarness(t)
	h.drv.PrimaryDevice().SetConnected(true)
	h.drv.PrimaryDevice().SetState(backend.State{MoveX: 1.0})
	h.s.Start()

	// a device comms fault means the device disconnected since the
	// Connected() check. this is not logged
	h.drv.PrimaryDevice().QueueReadError(backend.Faultf(backend.FaultDeviceComms, "gone"))
	h.tmr.fire(1)
	test.ExpectEquality(t, h.faults.count("primary backend read"), 0)
	test.ExpectEquality(t, h.events(), "")

	h.drv.PrimaryDevice().QueueReadError(errors.New("unexpected"))
	h.tmr.fire(1)
	test.ExpectEquality(t, h.faults.count("primary backend read"), 1)

	h.tmr.fire(1)
	test.ExpectEquality(t, h.events(), "move 7,0")
	test.ExpectEquality(t, len(h.notices.list()), 0)
}

func TestNotAcquired(t *testing.T) {
	h := newHarness(t)
	h.s.Start()
	dev := h.bindSecondary(t, "pad1")
	dev.SetState(backend.State{MoveX: 1.0})

	dev.QueueReadError(backend.Faultf(backend.FaultNotAcquired, "focus lost"))
	h.tmr.fire(1)
	test.ExpectEquality(t, dev.Acquires(), 2)
	test.ExpectSuccess(t, h.s.HasSecondary())
	test.ExpectEquality(t, h.events(), "")

	// device is read on the next tick
	h.tmr.fire(1)
	test.ExpectEquality(t, h.events(), "move 10,0")
}

func TestNotAcquiredFailure(t *testing.T) {
	h := newHarness(t)
	h.s.Start()
	dev := h.bindSecondary(t, "pad1")

	dev.SetAcquireError(errors.New("cannot acquire"))
	dev.QueueReadError(backend.Faultf(backend.FaultNotAcquired, "focus lost"))
	h.tmr.fire(1)

	// the device is released and an immediate reconnection fails for the
	// same reason
	test.ExpectFailure(t, h.s.HasSecondary())
	test.ExpectEquality(t, h.s.BoundIdentity(), backend.NoIdentity)
	test.ExpectEquality(t, h.faults.count("secondary device cannot be re-acquired"), 1)
	test.ExpectEquality(t, h.faults.count("cannot acquire secondary device"), 1)
	test.ExpectFailure(t, dev.Acquired())
}

func TestInputLost(t *testing.T) {
	h := newHarness(t)
	h.s.Start()
	dev := h.bindSecondary(t, "pad1")
	reconnects := h.s.Stats().Reconnects

	dev.QueueReadError(backend.Faultf(backend.FaultInputLost, "lost"))
	h.tmr.fire(1)

	// reconnection is immediate and not subject to the reconnection interval
	test.ExpectEquality(t, h.s.Stats().Reconnects, reconnects+1)
	test.ExpectEquality(t, dev.Releases(), 1)
	test.ExpectEquality(t, dev.Acquires(), 2)
	test.ExpectSuccess(t, h.s.HasSecondary())
	test.ExpectEquality(t, h.s.BoundIdentity(), backend.Identity("pad1"))
	test.ExpectEquality(t, h.faults.count("secondary device input lost"), 1)
}

func TestSecondaryDetached(t *testing.T) {
	h := newHarness(t)
	h.s.Start()
	dev := h.bindSecondary(t, "pad1")

	dev.SetState(backend.State{Secondary: true})
	h.tmr.fire(1)
	test.ExpectEquality(t, h.events(), "secondary down")

	h.drv.Bus.Detach("pad1")
	h.tmr.fire(1)
	test.ExpectEquality(t, h.events(), "secondary down; secondary up")
	test.ExpectFailure(t, h.s.HasSecondary())
	test.ExpectEquality(t, h.s.BoundIdentity(), backend.NoIdentity)
	test.ExpectEquality(t, h.s.PreferredIdentity(), backend.NoIdentity)
	test.ExpectEquality(t, h.faults.count("no secondary device attached"), 1)
}
