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

// Package fake implements the backend interfaces without any hardware. The
// state of every fake is changed directly by the caller, which makes the
// package suitable for testing code that arbitrates between backends.
//
// All types are safe for concurrent use.
package fake

import (
	"errors"
	"fmt"
	"sync"

	"github.com/jetsetilly/padpointer/backend"
)

// Device implements the backend.Device interface.
type Device struct {
	crit sync.Mutex

	connected bool
	acquired  bool
	state     backend.State

	// errors returned by Read() and Acquire(). readErrs are used in order
	// before readErr
	readErrs   []error
	readErr    error
	acquireErr error

	// number of calls to Acquire() and Release()
	acquires int
	releases int
}

// NewDevice is the preferred method of initialisation for the Device type.
func NewDevice(connected bool) *Device {
	return &Device{connected: connected}
}

// SetConnected changes the connection state of the device.
func (dev *Device) SetConnected(connected bool) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.connected = connected
}

// SetState changes the state returned by Read().
func (dev *Device) SetState(state backend.State) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.state = state
}

// SetReadError sets the error returned by every call to Read(). A nil error
// restores normal reading.
func (dev *Device) SetReadError(err error) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.readErr = err
}

// QueueReadError adds an error that will be returned by a single call to
// Read().
func (dev *Device) QueueReadError(err error) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.readErrs = append(dev.readErrs, err)
}

// SetAcquireError sets the error returned by Acquire().
func (dev *Device) SetAcquireError(err error) {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.acquireErr = err
}

// Acquires returns the number of calls to Acquire().
func (dev *Device) Acquires() int {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.acquires
}

// Releases returns the number of calls to Release().
func (dev *Device) Releases() int {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.releases
}

// Acquired returns true if the device has been acquired and not released.
func (dev *Device) Acquired() bool {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.acquired
}

// Connected implements the backend.Device interface.
func (dev *Device) Connected() bool {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	return dev.connected
}

// Read implements the backend.Device interface.
func (dev *Device) Read() (backend.State, error) {
	dev.crit.Lock()
	defer dev.crit.Unlock()

	if len(dev.readErrs) > 0 {
		err := dev.readErrs[0]
		dev.readErrs = dev.readErrs[1:]
		return backend.State{}, err
	}
	if dev.readErr != nil {
		return backend.State{}, dev.readErr
	}
	if !dev.connected {
		return backend.State{}, backend.Faultf(backend.FaultDeviceComms, "fake: not connected")
	}
	return dev.state, nil
}

// Acquire implements the backend.Device interface.
func (dev *Device) Acquire() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.acquires++
	if dev.acquireErr != nil {
		return dev.acquireErr
	}
	if !dev.connected {
		return backend.Faultf(backend.FaultInputLost, "fake: not connected")
	}
	dev.acquired = true
	return nil
}

// Release implements the backend.Device interface.
func (dev *Device) Release() error {
	dev.crit.Lock()
	defer dev.crit.Unlock()
	dev.releases++
	dev.acquired = false
	return nil
}

// Bus is a collection of attached secondary devices, shared by every
// Enumerator created by a Driver.
type Bus struct {
	crit    sync.Mutex
	order   []backend.Identity
	devices map[backend.Identity]*Device
	names   map[backend.Identity]string
}

func newBus() *Bus {
	return &Bus{
		devices: make(map[backend.Identity]*Device),
		names:   make(map[backend.Identity]string),
	}
}

// Attach a device to the bus. The device is connected and will be returned by
// Open().
func (b *Bus) Attach(id backend.Identity, name string) *Device {
	b.crit.Lock()
	defer b.crit.Unlock()

	dev, ok := b.devices[id]
	if !ok {
		dev = NewDevice(true)
		b.devices[id] = dev
		b.order = append(b.order, id)
	}
	b.names[id] = name
	dev.SetConnected(true)
	return dev
}

// Detach a device from the bus. The device is disconnected.
func (b *Bus) Detach(id backend.Identity) {
	b.crit.Lock()
	defer b.crit.Unlock()

	dev, ok := b.devices[id]
	if !ok {
		return
	}
	dev.SetConnected(false)
	delete(b.devices, id)
	delete(b.names, id)
	for i := range b.order {
		if b.order[i] == id {
			b.order = append(b.order[:i], b.order[i+1:]...)
			break // for loop
		}
	}
}

// Device returns the device attached with the identity.
func (b *Bus) Device(id backend.Identity) (*Device, bool) {
	b.crit.Lock()
	defer b.crit.Unlock()
	dev, ok := b.devices[id]
	return dev, ok
}

// Enumerator implements the backend.Enumerator interface.
type Enumerator struct {
	bus *Bus

	crit       sync.Mutex
	valid      bool
	closed     bool
	devicesErr error
}

// Invalidate the enumerator. Valid() will return false from now on.
func (enum *Enumerator) Invalidate() {
	enum.crit.Lock()
	defer enum.crit.Unlock()
	enum.valid = false
}

// SetDevicesError sets the error returned by Devices().
func (enum *Enumerator) SetDevicesError(err error) {
	enum.crit.Lock()
	defer enum.crit.Unlock()
	enum.devicesErr = err
}

// Closed returns true if Close() has been called.
func (enum *Enumerator) Closed() bool {
	enum.crit.Lock()
	defer enum.crit.Unlock()
	return enum.closed
}

// Valid implements the backend.Enumerator interface.
func (enum *Enumerator) Valid() bool {
	enum.crit.Lock()
	defer enum.crit.Unlock()
	return enum.valid && !enum.closed
}

// Devices implements the backend.Enumerator interface.
func (enum *Enumerator) Devices() ([]backend.DeviceInfo, error) {
	enum.crit.Lock()
	err := enum.devicesErr
	closed := enum.closed
	enum.crit.Unlock()

	if closed {
		return nil, errors.New("fake: enumerator is closed")
	}
	if err != nil {
		return nil, err
	}

	enum.bus.crit.Lock()
	defer enum.bus.crit.Unlock()
	devs := make([]backend.DeviceInfo, 0, len(enum.bus.order))
	for _, id := range enum.bus.order {
		devs = append(devs, backend.DeviceInfo{ID: id, Name: enum.bus.names[id]})
	}
	return devs, nil
}

// Open implements the backend.Enumerator interface.
func (enum *Enumerator) Open(id backend.Identity) (backend.Device, error) {
	if enum.Closed() {
		return nil, errors.New("fake: enumerator is closed")
	}
	dev, ok := enum.bus.Device(id)
	if !ok {
		return nil, backend.Faultf(backend.FaultInputLost, "fake: no device %q", id)
	}
	return dev, nil
}

// Close implements the backend.Enumerator interface.
func (enum *Enumerator) Close() error {
	enum.crit.Lock()
	defer enum.crit.Unlock()
	enum.closed = true
	return nil
}

// Driver implements the backend.Driver interface.
type Driver struct {
	// the secondary devices available to every enumerator
	Bus *Bus

	crit       sync.Mutex
	primary    *Device
	primaryErr error
	enumErr    error
	enums      []*Enumerator
}

// NewDriver is the preferred method of initialisation for the Driver type. The
// primary device is created disconnected.
func NewDriver() *Driver {
	return &Driver{
		Bus:     newBus(),
		primary: NewDevice(false),
	}
}

// PrimaryDevice returns the device returned by Primary().
func (drv *Driver) PrimaryDevice() *Device {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return drv.primary
}

// SetPrimaryError sets the error returned by Primary().
func (drv *Driver) SetPrimaryError(err error) {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.primaryErr = err
}

// SetEnumeratorError sets the error returned by NewEnumerator().
func (drv *Driver) SetEnumeratorError(err error) {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	drv.enumErr = err
}

// Enumerators returns every enumerator created by NewEnumerator().
func (drv *Driver) Enumerators() []*Enumerator {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	return append([]*Enumerator{}, drv.enums...)
}

// LastEnumerator returns the most recently created enumerator. Returns nil if
// no enumerator has been created.
func (drv *Driver) LastEnumerator() *Enumerator {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	if len(drv.enums) == 0 {
		return nil
	}
	return drv.enums[len(drv.enums)-1]
}

// Primary implements the backend.Driver interface.
func (drv *Driver) Primary() (backend.Device, error) {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	if drv.primaryErr != nil {
		return nil, drv.primaryErr
	}
	return drv.primary, nil
}

// NewEnumerator implements the backend.Driver interface.
func (drv *Driver) NewEnumerator() (backend.Enumerator, error) {
	drv.crit.Lock()
	defer drv.crit.Unlock()
	if drv.enumErr != nil {
		return nil, fmt.Errorf("fake: %w", drv.enumErr)
	}
	enum := &Enumerator{bus: drv.Bus, valid: true}
	drv.enums = append(drv.enums, enum)
	return enum, nil
}
