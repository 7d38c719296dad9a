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

// Package sdlpad implements the controller backends with SDL. The primary
// backend is the SDL game controller API, which is used for any device that
// SDL has a mapping for. The secondary backend is the SDL joystick API, which
// is used for every other device.
//
// Every SDL call made by the package is serialised by the Driver. SDL should
// not be used elsewhere in the program while the Driver is in use.
package sdlpad
