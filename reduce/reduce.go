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

// Package reduce canonicalizes a hint before the BFS driver classifies it:
// flattening nested unions, deduping union members, and dropping redundant
// structure a caller's hint-construction code might produce without
// intending to. It registers itself into package hint via init(), the same
// driver-registration pattern database/sql and image use, so hint never
// imports reduce directly.
package reduce

import (
	"reflect"

	"github.com/launix-de/pephint/hint"
)

func init() {
	hint.SetSanitizer(Canonicalize)
}

// Canonicalize reduces h to its canonical form. It is idempotent: applying
// it twice yields the same result as applying it once, which the BFS
// driver relies on since it runs the sanitizer on every dequeued hint, the
// caller-supplied root and every child alike.
func Canonicalize(h hint.Hint) hint.Hint {
	u, ok := h.(hint.UnionHint)
	if !ok {
		return h
	}
	flat := flattenUnion(u)
	deduped := dedupeUnion(flat)
	if len(deduped) == 1 {
		return deduped[0]
	}
	return hint.Or(deduped...)
}

// flattenUnion inlines any directly-nested union's children in place, so
// Or(Or(a, b), c) and Or(a, b, c) generate identical code.
func flattenUnion(u hint.UnionHint) []hint.Hint {
	out := make([]hint.Hint, 0, len(u.Children))
	for _, c := range u.Children {
		if nested, ok := c.(hint.UnionHint); ok {
			out = append(out, flattenUnion(nested)...)
			continue
		}
		out = append(out, c)
	}
	return out
}

// dedupeUnion drops a plain-class member already covered by an earlier
// member with the identical reflect.Type; structured members (forward
// refs, nested sequences, ...) are left alone since equality between them
// isn't a reflect.Type comparison pephint can make cheaply or safely.
func dedupeUnion(children []hint.Hint) []hint.Hint {
	seen := make(map[reflect.Type]bool, len(children))
	out := make([]hint.Hint, 0, len(children))
	for _, c := range children {
		inst, ok := c.(hint.InstanceHint)
		if !ok {
			out = append(out, c)
			continue
		}
		if seen[inst.Type] {
			continue
		}
		seen[inst.Type] = true
		out = append(out, c)
	}
	return out
}
