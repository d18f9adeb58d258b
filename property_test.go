/*
 * property_test.go, part of chemfiles.
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
	"strings"
	"testing"
)

func TestPropertyAccessors(Te *testing.T) {
	p := NewString("ALA")
	if p.Kind() != KindString || p.KindAsString() != "string" {
		Te.Errorf("wrong kind for a string property: %v %s", p.Kind(), p.KindAsString())
	}
	s, err := p.AsString()
	if err != nil || s != "ALA" {
		Te.Errorf("AsString: got %q, %v", s, err)
	}
	_, err = p.AsDouble()
	if err == nil {
		Te.Fatal("AsDouble on a string property should fail")
	}
	if !strings.Contains(err.Error(), "double") || !strings.Contains(err.Error(), "string") {
		Te.Errorf("error should name both kinds: %s", err)
	}
	var perr *PropertyError
	if !errors.As(err, &perr) {
		Te.Fatalf("expected a *PropertyError, got %T", err)
	}
	if perr.Requested != KindDouble || perr.Actual != KindString {
		Te.Errorf("wrong kinds in error: %v %v", perr.Requested, perr.Actual)
	}
	if !errors.Is(err, ErrPropertyKind) {
		Te.Error("errors.Is(err, ErrPropertyKind) should hold")
	}
	if perr.Critical() {
		Te.Error("a kind mismatch is not critical")
	}
	if d := perr.Decorate("TestPropertyAccessors"); len(d) != 2 || d[0] != "AsDouble" {
		Te.Errorf("unexpected decoration %v", d)
	}
}

func TestPropertyKinds(Te *testing.T) {
	v := Vec3(1, 2.5, -3)
	props := []struct {
		p    Property
		kind Kind
		name string
		str  string
	}{
		{NewBool(true), KindBool, "bool", "true"},
		{NewDouble(42.5), KindDouble, "double", "42.5"},
		{NewString("hello"), KindString, "string", "hello"},
		{NewVector3D(v), KindVector3D, "Vector3D", "(1, 2.5, -3)"},
		{Property{}, KindBool, "bool", "false"},
	}
	for _, c := range props {
		if c.p.Kind() != c.kind {
			Te.Errorf("%s: kind %v, want %v", c.str, c.p.Kind(), c.kind)
		}
		if c.p.KindAsString() != c.name || c.kind.String() != c.name {
			Te.Errorf("%s: kind name %s, want %s", c.str, c.p.KindAsString(), c.name)
		}
		if c.p.String() != c.str {
			Te.Errorf("String() = %s, want %s", c.p.String(), c.str)
		}
		//Only the accessor matching the kind may succeed.
		_, errb := c.p.AsBool()
		_, errd := c.p.AsDouble()
		_, errs := c.p.AsString()
		_, errv := c.p.AsVector3D()
		ok := map[Kind]bool{KindBool: errb == nil, KindDouble: errd == nil, KindString: errs == nil, KindVector3D: errv == nil}
		for k, succeeded := range ok {
			if succeeded != (k == c.kind) {
				Te.Errorf("%s property: accessor for %s succeeded=%v", c.name, k, succeeded)
			}
		}
	}
	got, err := NewVector3D(v).AsVector3D()
	if err != nil || got != v {
		Te.Errorf("AsVector3D: got %v, %v", got, err)
	}
	if Kind(12).String() != "Kind(12)" {
		Te.Errorf("unexpected name for an invalid kind: %s", Kind(12))
	}
}

func TestPropertyCopyAndEqual(Te *testing.T) {
	a := NewString("first")
	b := a
	a = NewString("second")
	if s, _ := b.AsString(); s != "first" {
		Te.Errorf("copies must be independent, got %s", s)
	}
	if !NewDouble(1).Equal(NewDouble(1)) {
		Te.Error("equal doubles should be Equal")
	}
	if NewDouble(1).Equal(NewString("1")) {
		Te.Error("properties of different kinds can not be Equal")
	}
	if !NewVector3D(Vec3(1, 2, 3)).Equal(NewVector3D(Vec3(1, 2, 3))) {
		Te.Error("equal vectors should be Equal")
	}
	if !(Property{}).Equal(NewBool(false)) {
		Te.Error("the zero property should equal NewBool(false)")
	}
}
