/*
 * property.go, part of chemfiles.
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

import (
	"errors"
	"fmt"
	"strconv"

	"gonum.org/v1/gonum/spatial/r3"
)

// Vector3D is the 3-component vector stored in VECTOR3D properties.
type Vector3D = r3.Vec

// Vec3 returns the Vector3D (x, y, z).
func Vec3(x, y, z float64) Vector3D {
	return Vector3D{X: x, Y: y, Z: z}
}

// Kind identifies the type of the value held by a Property.
type Kind int

const (
	KindBool Kind = iota
	KindDouble
	KindString
	KindVector3D
)

// String returns the name of the kind, as used in error messages.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindVector3D:
		return "Vector3D"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

//value is implemented only by the four payload types below,
//so a Property can not hold anything else.
type value interface {
	kind() Kind
}

type boolValue bool
type doubleValue float64
type stringValue string
type vector3DValue Vector3D

func (boolValue) kind() Kind     { return KindBool }
func (doubleValue) kind() Kind   { return KindDouble }
func (stringValue) kind() Kind   { return KindString }
func (vector3DValue) kind() Kind { return KindVector3D }

// Property is a typed piece of metadata: a bool, a double, a string or a Vector3D.
// The kind is fixed when the property is created. Properties are values, copying one
// gives an independent property. The zero Property holds the boolean false.
type Property struct {
	v value
}

// NewBool returns a property holding b.
func NewBool(b bool) Property { return Property{boolValue(b)} }

// NewDouble returns a property holding d.
func NewDouble(d float64) Property { return Property{doubleValue(d)} }

// NewString returns a property holding s.
func NewString(s string) Property { return Property{stringValue(s)} }

// NewVector3D returns a property holding v.
func NewVector3D(v Vector3D) Property { return Property{vector3DValue(v)} }

func (P Property) payload() value {
	if P.v == nil {
		return boolValue(false)
	}
	return P.v
}

// Kind returns the kind of value held by the property.
func (P Property) Kind() Kind {
	return P.payload().kind()
}

// KindAsString returns the name of the kind of value held by the property.
func (P Property) KindAsString() string {
	switch P.payload().(type) {
	case boolValue:
		return "bool"
	case doubleValue:
		return "double"
	case stringValue:
		return "string"
	case vector3DValue:
		return "Vector3D"
	}
	panic("chemfiles: unreachable property kind")
}

// AsBool returns the boolean held by the property, or a *PropertyError if the
// property holds something else.
func (P Property) AsBool() (bool, error) {
	if b, ok := P.payload().(boolValue); ok {
		return bool(b), nil
	}
	return false, newPropertyError(KindBool, P.Kind(), "AsBool")
}

// AsDouble returns the double held by the property, or a *PropertyError if the
// property holds something else.
func (P Property) AsDouble() (float64, error) {
	if d, ok := P.payload().(doubleValue); ok {
		return float64(d), nil
	}
	return 0, newPropertyError(KindDouble, P.Kind(), "AsDouble")
}

// AsString returns the string held by the property, or a *PropertyError if the
// property holds something else.
func (P Property) AsString() (string, error) {
	if s, ok := P.payload().(stringValue); ok {
		return string(s), nil
	}
	return "", newPropertyError(KindString, P.Kind(), "AsString")
}

// AsVector3D returns the vector held by the property, or a *PropertyError if the
// property holds something else.
func (P Property) AsVector3D() (Vector3D, error) {
	if v, ok := P.payload().(vector3DValue); ok {
		return Vector3D(v), nil
	}
	return Vector3D{}, newPropertyError(KindVector3D, P.Kind(), "AsVector3D")
}

// Equal returns true if both properties have the same kind and the same value.
func (P Property) Equal(other Property) bool {
	return P.payload() == other.payload()
}

// String returns a human readable form of the value.
func (P Property) String() string {
	switch v := P.payload().(type) {
	case boolValue:
		return strconv.FormatBool(bool(v))
	case doubleValue:
		return strconv.FormatFloat(float64(v), 'g', -1, 64)
	case stringValue:
		return string(v)
	case vector3DValue:
		return fmt.Sprintf("(%g, %g, %g)", v.X, v.Y, v.Z)
	}
	panic("chemfiles: unreachable property kind")
}

// ErrPropertyKind is matched, through errors.Is, by every *PropertyError.
var ErrPropertyKind = errors.New("chemfiles: wrong property kind")

// PropertyError is returned when a property is read as a kind it does not hold.
// It fullfills chemfiles.Error.
type PropertyError struct {
	Requested Kind
	Actual    Kind
	deco      []string
}

func newPropertyError(requested, actual Kind, caller string) *PropertyError {
	return &PropertyError{Requested: requested, Actual: actual, deco: []string{caller}}
}

func (err *PropertyError) Error() string {
	return fmt.Sprintf("tried to read a %s from a %s property", err.Requested, err.Actual)
}

// Decorate adds the caller to the error call-stack information and returns it.
func (err *PropertyError) Decorate(deco string) []string {
	if deco != "" {
		err.deco = append(err.deco, deco)
	}
	return err.deco
}

// Critical returns false: the property is unchanged and the caller can go on.
func (err *PropertyError) Critical() bool { return false }

func (err *PropertyError) Unwrap() error { return ErrPropertyKind }
