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

package backend

import (
	"errors"
	"fmt"
)

// FaultKind describes the category of a backend failure.
type FaultKind int

// List of valid FaultKind values.
const (
	// any fault that does not fit one of the categories below
	FaultOther FaultKind = iota

	// the device was disconnected between the connection check and the read
	FaultDeviceComms

	// input from the device has been lost. the device handle is no longer
	// useful
	FaultInputLost

	// the device has not been acquired, or has lost its acquisition. the
	// device can be acquired again
	FaultNotAcquired
)

func (k FaultKind) String() string {
	switch k {
	case FaultDeviceComms:
		return "device comms"
	case FaultInputLost:
		return "input lost"
	case FaultNotAcquired:
		return "not acquired"
	}
	return "other"
}

// Fault is the error type returned by backend devices.
type Fault struct {
	Kind FaultKind
	Err  error
}

// NewFault is the preferred method of initialisation for the Fault type.
func NewFault(kind FaultKind, err error) *Fault {
	return &Fault{Kind: kind, Err: err}
}

// Faultf creates a new Fault with a formatted error message.
func Faultf(kind FaultKind, format string, a ...any) *Fault {
	return &Fault{Kind: kind, Err: fmt.Errorf(format, a...)}
}

func (f *Fault) Error() string {
	if f.Err == nil {
		return f.Kind.String()
	}
	return fmt.Sprintf("%s: %v", f.Kind, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

// Classify returns the FaultKind of an error. Errors that are not (and do not
// wrap) a *Fault are FaultOther.
func Classify(err error) FaultKind {
	var f *Fault
	if errors.As(err, &f) {
		return f.Kind
	}
	return FaultOther
}

// IsFault returns true if the error is a fault of the specified kind.
func IsFault(err error, kind FaultKind) bool {
	return err != nil && Classify(err) == kind
}
