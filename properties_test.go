/*
 * properties_test.go, part of chemfiles.
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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPropertiesSetGet(Te *testing.T) {
	props := NewProperties()
	props.Set("x", NewDouble(1))
	props.Set("x", NewString("two"))
	p, ok := props.Get("x")
	if !ok {
		Te.Fatal("x should be present")
	}
	if s, err := p.AsString(); err != nil || s != "two" {
		Te.Errorf("the second Set should win, got %v (%v)", p, err)
	}
	if props.Len() != 1 {
		Te.Errorf("Len() = %d, want 1", props.Len())
	}
	missing, ok := props.Get("missing")
	if ok {
		Te.Errorf("missing key reported as present: %v", missing)
	}
	props.Delete("x")
	if _, ok := props.Get("x"); ok {
		Te.Error("x should be gone after Delete")
	}
}

func TestPropertiesZeroValue(Te *testing.T) {
	var props Properties
	if _, ok := props.Get("anything"); ok {
		Te.Error("an empty map has nothing in it")
	}
	props.Set("is_het", NewBool(true))
	if b, ok := props.GetBool("is_het"); !ok || !b {
		Te.Errorf("GetBool: %v %v", b, ok)
	}
}

func TestPropertiesNamesRange(Te *testing.T) {
	props := NewProperties()
	props.Set("zeta", NewBool(false))
	props.Set("alpha", NewDouble(3))
	props.Set("mu", NewVector3D(Vec3(0, 0, 1)))
	if diff := cmp.Diff([]string{"alpha", "mu", "zeta"}, props.Names()); diff != "" {
		Te.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
	var seen []string
	props.Range(func(name string, value Property) bool {
		seen = append(seen, name+"="+value.String())
		return name != "mu"
	})
	if diff := cmp.Diff([]string{"alpha=3", "mu=(0, 0, 1)"}, seen); diff != "" {
		Te.Errorf("Range mismatch (-want +got):\n%s", diff)
	}
}

func TestPropertiesTypedGetters(Te *testing.T) {
	var warnings []string
	SetWarningCallback(func(m string) { warnings = append(warnings, m) })
	defer SetWarningCallback(defaultWarning)

	props := NewProperties()
	props.Set("name", NewString("CA"))
	props.Set("mass", NewDouble(12.011))
	props.Set("dipole", NewVector3D(Vec3(0.1, 0.2, 0.3)))

	if s, ok := props.GetString("name"); !ok || s != "CA" {
		Te.Errorf("GetString: %q %v", s, ok)
	}
	if m, ok := props.GetDouble("mass"); !ok || m != 12.011 {
		Te.Errorf("GetDouble: %v %v", m, ok)
	}
	if v, ok := props.GetVector3D("dipole"); !ok || v != Vec3(0.1, 0.2, 0.3) {
		Te.Errorf("GetVector3D: %v %v", v, ok)
	}
	if len(warnings) != 0 {
		Te.Errorf("no warning expected yet, got %v", warnings)
	}
	if _, ok := props.GetDouble("name"); ok {
		Te.Error("GetDouble on a string property should report absence")
	}
	if _, ok := props.GetBool("nothing"); ok {
		Te.Error("GetBool on a missing property should report absence")
	}
	if len(warnings) != 1 {
		Te.Fatalf("expected exactly one warning, got %v", warnings)
	}
	if !strings.Contains(warnings[0], "'name'") || !strings.Contains(warnings[0], "double") || !strings.Contains(warnings[0], "string") {
		Te.Errorf("unexpected warning: %s", warnings[0])
	}
}
