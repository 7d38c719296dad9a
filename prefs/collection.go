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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

type entry struct {
	p   Pref
	def Value
}

// Collection associates preference values with a key and a default value.
// Values in the collection can be overridden from the command line stack (see
// PushCommandLineStack()) with ApplyCommandLine().
//
// There is no saving or loading of preferences. A collection only lives for as
// long as the program.
type Collection struct {
	entries map[string]entry
}

// NewCollection is the preferred method of initialisation for the Collection
// type.
func NewCollection() *Collection {
	return &Collection{
		entries: make(map[string]entry),
	}
}

// Add a preference value to the collection. The preference is immediately set
// to the default value.
func (c *Collection) Add(key string, p Pref, def Value) error {
	if _, ok := c.entries[key]; ok {
		return fmt.Errorf("prefs: key %s already exists", key)
	}
	if err := p.Set(def); err != nil {
		return fmt.Errorf("prefs: %s: %w", key, err)
	}
	c.entries[key] = entry{p: p, def: def}
	return nil
}

// SetDefaults sets every value in the collection to its default value.
func (c *Collection) SetDefaults() error {
	for key, e := range c.entries {
		if err := e.p.Set(e.def); err != nil {
			return fmt.Errorf("prefs: %s: %w", key, err)
		}
	}
	return nil
}

// ApplyCommandLine sets values in the collection from the current command line
// group. Values that are consumed are removed from the command line group.
func (c *Collection) ApplyCommandLine() error {
	for key, e := range c.entries {
		if ok, v := GetCommandLinePref(key); ok {
			if err := e.p.Set(v); err != nil {
				return fmt.Errorf("prefs: %s: %w", key, err)
			}
		}
	}
	return nil
}

// String returns every key and value in the collection, sorted by key.
func (c *Collection) String() string {
	keys := make([]string, 0, len(c.entries))
	for key := range c.entries {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, key := range keys {
		s.WriteString(fmt.Sprintf("%s :: %s\n", key, c.entries[key].p.String()))
	}
	return s.String()
}
