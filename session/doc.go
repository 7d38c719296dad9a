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

// Package session drives the desktop pointer from a game controller.
//
// A Session polls the controller backends at a fixed rate once it has been
// started. Each tick the primary backend is checked first and, if it reports
// a connected device, it is used to drive the pointer. Otherwise an open
// secondary device is used. When no device is available the session looks
// for a secondary device, no more often than the reconnection interval.
//
// Every public function of the Session type, and every tick of the poll loop,
// is serialised by a single lock. Ticks that arrive while the previous tick
// is still running are skipped.
//
// Faults are never returned to the caller. Device faults are recovered from
// and logged through the ErrorLogger. Faults that the user should know about
// are also sent to the notifications.Notify implementation given to
// SetNotify().
package session
