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

package pointer

import (
	"fmt"
	"sync"
)

// EventKind identifies the type of a recorded Event.
type EventKind int

// List of valid EventKind values.
const (
	EventMove EventKind = iota
	EventHorizontalScroll
	EventVerticalScroll
	EventPrimaryDown
	EventPrimaryUp
	EventSecondaryDown
	EventSecondaryUp
)

// Event is a single call to one of the Emitter functions.
type Event struct {
	Kind EventKind
	X    int
	Y    int
}

func (ev Event) String() string {
	switch ev.Kind {
	case EventMove:
		return fmt.Sprintf("move %d,%d", ev.X, ev.Y)
	case EventHorizontalScroll:
		return fmt.Sprintf("hscroll %d", ev.X)
	case EventVerticalScroll:
		return fmt.Sprintf("vscroll %d", ev.Y)
	case EventPrimaryDown:
		return "primary down"
	case EventPrimaryUp:
		return "primary up"
	case EventSecondaryDown:
		return "secondary down"
	case EventSecondaryUp:
		return "secondary up"
	}
	return "unknown"
}

// Recorder implements the Emitter interface by recording every event. It is
// safe for concurrent use.
type Recorder struct {
	crit   sync.Mutex
	events []Event
}

func (rec *Recorder) record(ev Event) {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	rec.events = append(rec.events, ev)
}

// Events returns a copy of every recorded event.
func (rec *Recorder) Events() []Event {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	return append([]Event{}, rec.events...)
}

// Filter returns a copy of the recorded events of the specified kinds.
func (rec *Recorder) Filter(kinds ...EventKind) []Event {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	var evs []Event
	for _, ev := range rec.events {
		for _, k := range kinds {
			if ev.Kind == k {
				evs = append(evs, ev)
				break // for loop
			}
		}
	}
	return evs
}

// Clear forgets every recorded event.
func (rec *Recorder) Clear() {
	rec.crit.Lock()
	defer rec.crit.Unlock()
	rec.events = rec.events[:0]
}

// MoveBy implements the Emitter interface.
func (rec *Recorder) MoveBy(dx, dy int) {
	rec.record(Event{Kind: EventMove, X: dx, Y: dy})
}

// HorizontalScroll implements the Emitter interface.
func (rec *Recorder) HorizontalScroll(amount int) {
	rec.record(Event{Kind: EventHorizontalScroll, X: amount})
}

// VerticalScroll implements the Emitter interface.
func (rec *Recorder) VerticalScroll(amount int) {
	rec.record(Event{Kind: EventVerticalScroll, Y: amount})
}

// PrimaryButtonDown implements the Emitter interface.
func (rec *Recorder) PrimaryButtonDown() {
	rec.record(Event{Kind: EventPrimaryDown})
}

// PrimaryButtonUp implements the Emitter interface.
func (rec *Recorder) PrimaryButtonUp() {
	rec.record(Event{Kind: EventPrimaryUp})
}

// SecondaryButtonDown implements the Emitter interface.
func (rec *Recorder) SecondaryButtonDown() {
	rec.record(Event{Kind: EventSecondaryDown})
}

// SecondaryButtonUp implements the Emitter interface.
func (rec *Recorder) SecondaryButtonUp() {
	rec.record(Event{Kind: EventSecondaryUp})
}
