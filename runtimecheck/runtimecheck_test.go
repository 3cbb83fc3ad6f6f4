/*
Copyright (C) 2026  pephint contributors

	This program is free software: you can redistribute it and/or modify
	it under the terms of the GNU General Public License as published by
	the Free Software Foundation, either version 3 of the License, or
	(at your option) any later version.

	This program is distributed in the hope that it will be useful,
	but WITHOUT ANY WARRANTY; without even the implied warranty of
	MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
	GNU General Public License for more details.

	You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.
*/
package runtimecheck

import (
	"reflect"
	"testing"
)

type stringer interface{ String() string }

type namedInt int

func (namedInt) String() string { return "namedInt" }

func TestIsInstancePlainType(t *testing.T) {
	if !IsInstance(5, reflect.TypeOf(0)) {
		t.Error("5 should be an instance of int")
	}
	if IsInstance("five", reflect.TypeOf(0)) {
		t.Error("a string should not be an instance of int")
	}
}

func TestIsInstanceInterfaceSatisfaction(t *testing.T) {
	if !IsInstance(namedInt(1), reflect.TypeOf((*stringer)(nil)).Elem()) {
		t.Error("namedInt implements stringer and should satisfy it")
	}
	if IsInstance(5, reflect.TypeOf((*stringer)(nil)).Elem()) {
		t.Error("plain int does not implement stringer")
	}
}

func TestIsInstanceNilAgainstNilableKind(t *testing.T) {
	if !IsInstance(nil, reflect.TypeOf([]int(nil))) {
		t.Error("nil should be an instance of a slice type")
	}
	if IsInstance(nil, reflect.TypeOf(0)) {
		t.Error("nil should not be an instance of int")
	}
}

func TestIsInstanceNilType(t *testing.T) {
	if !IsInstance(5, nil) {
		t.Error("IsInstance against a nil type should report true (the ignorable/Any case)")
	}
}

func TestIsInstanceAny(t *testing.T) {
	ts := []reflect.Type{reflect.TypeOf(0), reflect.TypeOf("")}
	if !IsInstanceAny(5, ts) {
		t.Error("5 should match the int member")
	}
	if !IsInstanceAny("x", ts) {
		t.Error("\"x\" should match the string member")
	}
	if IsInstanceAny(3.14, ts) {
		t.Error("3.14 should match neither member")
	}
}

func TestIsSubclass(t *testing.T) {
	if !IsSubclass(reflect.TypeOf(namedInt(0)), reflect.TypeOf((*stringer)(nil)).Elem()) {
		t.Error("namedInt should be a subclass of stringer")
	}
	if IsSubclass(reflect.TypeOf(0), reflect.TypeOf((*stringer)(nil)).Elem()) {
		t.Error("plain int should not be a subclass of stringer")
	}
	if IsSubclass(nil, reflect.TypeOf(0)) {
		t.Error("a nil type should never be reported as a subclass")
	}
}

func TestRandIndexWithinBounds(t *testing.T) {
	bits := func() uint32 { return 12345 }
	for n := 1; n <= 10; n++ {
		idx := RandIndex(n, bits)
		if idx < 0 || idx >= n {
			t.Fatalf("RandIndex(%d, ...) = %d, out of bounds", n, idx)
		}
	}
}

func TestRandIndexPanicsOnNonPositiveN(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("RandIndex(0, ...) should panic")
		}
	}()
	RandIndex(0, func() uint32 { return 0 })
}

type fakeResolver map[string]reflect.Type

func (r fakeResolver) Resolve(basename string) (reflect.Type, bool) {
	t, ok := r[basename]
	return t, ok
}

func TestMustResolveForwardRefSuccess(t *testing.T) {
	reg := fakeResolver{"Node": reflect.TypeOf(0)}
	got := MustResolveForwardRef(reg, "Node")
	if got != reflect.TypeOf(0) {
		t.Fatalf("MustResolveForwardRef = %v, want int", got)
	}
}

func TestMustResolveForwardRefPanicsOnUnresolved(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustResolveForwardRef should panic when the name is unresolved")
		}
	}()
	MustResolveForwardRef(fakeResolver{}, "Missing")
}

func TestMustResolveForwardRefPanicsOnWrongRegistryType(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustResolveForwardRef should panic when the registry value doesn't implement Resolver")
		}
	}()
	MustResolveForwardRef("not a resolver", "Node")
}

func TestMustResolveForwardRefPanicsOnNilRegistry(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustResolveForwardRef should panic when no registry was bound")
		}
	}()
	MustResolveForwardRef(nil, "Node")
}
