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
package hint

import (
	"reflect"
	"strings"
	"testing"
)

func TestDescribeInstance(t *testing.T) {
	if got := Describe(Instance(reflect.TypeOf(0))); got != "int" {
		t.Fatalf("Describe(Instance(int)) = %q, want %q", got, "int")
	}
}

func TestDescribeAny(t *testing.T) {
	if got := Describe(Any()); got != "any" {
		t.Fatalf("Describe(Any()) = %q, want %q", got, "any")
	}
}

func TestDescribeUnion(t *testing.T) {
	got := Describe(Or(Instance(reflect.TypeOf(0)), Instance(reflect.TypeOf(""))))
	if !strings.Contains(got, "int") || !strings.Contains(got, "string") || !strings.Contains(got, "|") {
		t.Fatalf("Describe(Union) = %q, expected both members joined with |", got)
	}
}

func TestDescribeForwardRef(t *testing.T) {
	if got := Describe(ForwardRef("Node")); got != "ref(Node)" {
		t.Fatalf("Describe(ForwardRef) = %q, want %q", got, "ref(Node)")
	}
}

func TestDescribeDeprecatedMarksInner(t *testing.T) {
	got := Describe(Deprecated(Instance(reflect.TypeOf(0)), "old"))
	if !strings.Contains(got, "int") || !strings.Contains(got, "deprecated") {
		t.Fatalf("Describe(Deprecated) = %q, expected the inner description plus a deprecated marker", got)
	}
}
