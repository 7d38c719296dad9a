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

package notifications

import (
	"fmt"
	"io"
	"sync"
)

// Notice describes the event that the user should be told about.
type Notice string

// List of defined notices.
const (
	// the session could not be started. the session remains stopped
	NotifyStartFailed Notice = "NotifyStartFailed"

	// the session could not be stopped cleanly
	NotifyStopFailed Notice = "NotifyStopFailed"

	// releasing device resources failed during dispose
	NotifyDisposeFailed Notice = "NotifyDisposeFailed"

	// an unexpected fault occurred during polling. polling continues
	NotifyPollFault Notice = "NotifyPollFault"
)

// Notify is implemented by the user interface.
type Notify interface {
	Notify(notice Notice, err error)
}

// Discard is a Notify implementation that does nothing.
type Discard struct{}

// Notify implements the Notify interface.
func (Discard) Notify(_ Notice, _ error) {}

// Writer is a Notify implementation that prints notices to an io.Writer.
type Writer struct {
	crit   sync.Mutex
	output io.Writer
}

// NewWriter is the preferred method of initialisation for the Writer type.
func NewWriter(output io.Writer) *Writer {
	return &Writer{output: output}
}

// Notify implements the Notify interface.
func (w *Writer) Notify(notice Notice, err error) {
	w.crit.Lock()
	defer w.crit.Unlock()
	if err == nil {
		fmt.Fprintf(w.output, "%s\n", notice)
		return
	}
	fmt.Fprintf(w.output, "%s: %v\n", notice, err)
}
