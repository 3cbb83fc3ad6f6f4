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

import "testing"

func TestRenderFillsSlots(t *testing.T) {
	got := render("Instance", map[string]string{
		"pith_curr_expr": "pith",
		"hint_curr_expr": "auxType0",
	})
	want := "runtimecheck.IsInstance(pith, auxType0)"
	if got != want {
		t.Fatalf("render(Instance) = %q, want %q", got, want)
	}
}

func TestRenderUnknownTemplatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("render with an unknown template name did not panic")
		}
	}()
	render("NoSuchTemplate", nil)
}

func TestJoinBooleanSkipsEmptyClauses(t *testing.T) {
	got := joinBoolean([]string{"a", "", "b"}, "||")
	want := "a || b"
	if got != want {
		t.Fatalf("joinBoolean = %q, want %q", got, want)
	}
}

func TestJoinBooleanAllEmptyIsTrue(t *testing.T) {
	got := joinBoolean([]string{"", ""}, "&&")
	if got != "true" {
		t.Fatalf("joinBoolean of all-empty clauses = %q, want %q", got, "true")
	}
}

func TestJoinBooleanNeverLeavesDanglingOperator(t *testing.T) {
	got := joinBoolean([]string{"a", ""}, "||")
	if got != "a" {
		t.Fatalf("joinBoolean = %q, want %q (no trailing operator)", got, "a")
	}
}
