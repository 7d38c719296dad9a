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

// Package statsview is a wrapper for the go-echarts statsview package. It
// shows the runtime statistics of the padpointer process in a web browser,
// which is useful when checking that a long running session is not leaking
// goroutines or memory.
//
// The package is only functional when the statsview build constraint is
// present. Available() returns false otherwise.
package statsview
