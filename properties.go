/*
 * properties.go, part of chemfiles.
 *
 * Copyright 2024 Raul Mera <rauldotmeraatusachdotcl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package chemfiles

import "sort"

// Properties associates names with Property values. Names are unique, setting an
// existing name replaces its value. The zero value is an empty, ready to use map.
// Properties is owned by the structure embedding it (a frame, an atom...) and is not
// safe for concurrent use.
type Properties struct {
	data map[string]Property
}

// NewProperties returns an empty property map.
func NewProperties() *Properties {
	return &Properties{data: make(map[string]Property)}
}

// Set stores value under name, replacing any previous value.
func (P *Properties) Set(name string, value Property) {
	if P.data == nil {
		P.data = make(map[string]Property)
	}
	P.data[name] = value
}

// Get returns the property stored under name. The boolean is false, and the
// property is the zero Property, when there is no such property.
func (P *Properties) Get(name string) (Property, bool) {
	p, ok := P.data[name]
	return p, ok
}

// Delete removes the property stored under name, if any.
func (P *Properties) Delete(name string) {
	delete(P.data, name)
}

// Len returns the number of properties in the map.
func (P *Properties) Len() int {
	return len(P.data)
}

// Names returns the names of all properties, sorted.
func (P *Properties) Names() []string {
	names := make([]string, 0, len(P.data))
	for k := range P.data {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// Range calls f for each property, in name order, until f returns false.
// The map must not be modified from f.
func (P *Properties) Range(f func(name string, value Property) bool) {
	for _, name := range P.Names() {
		if !f(name, P.data[name]) {
			return
		}
	}
}

//typed returns the property under name if it exists and has the kind k.
//If it exists with another kind, a warning is emitted.
func (P *Properties) typed(name string, k Kind) (Property, bool) {
	p, ok := P.data[name]
	if !ok {
		return p, false
	}
	if p.Kind() != k {
		Warning("expected a property named '%s' of type %s, but got a %s property instead", name, k, p.Kind())
		return p, false
	}
	return p, true
}

// GetBool returns the boolean stored under name. The second value is false if there is
// no such property, or if it is not a boolean (in that case, a warning is emitted).
func (P *Properties) GetBool(name string) (bool, bool) {
	p, ok := P.typed(name, KindBool)
	if !ok {
		return false, false
	}
	b, _ := p.AsBool()
	return b, true
}

// GetDouble is like GetBool, for doubles.
func (P *Properties) GetDouble(name string) (float64, bool) {
	p, ok := P.typed(name, KindDouble)
	if !ok {
		return 0, false
	}
	d, _ := p.AsDouble()
	return d, true
}

// GetString is like GetBool, for strings.
func (P *Properties) GetString(name string) (string, bool) {
	p, ok := P.typed(name, KindString)
	if !ok {
		return "", false
	}
	s, _ := p.AsString()
	return s, true
}

// GetVector3D is like GetBool, for vectors.
func (P *Properties) GetVector3D(name string) (Vector3D, bool) {
	p, ok := P.typed(name, KindVector3D)
	if !ok {
		return Vector3D{}, false
	}
	v, _ := p.AsVector3D()
	return v, true
}
