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
	"fmt"
	"reflect"

	"github.com/google/btree"
)

// auxItem is one binding in insertion order. The btree is ordered on seq,
// not on name, so Ascend() replays bindings in the order they were made —
// the same "insertion-preserving iteration" spec §3 asks of the auxiliary
// scope — while still giving the binder an O(log n) structure to grow
// instead of an ever-reallocated slice. Grounded on storage/index.go's
// btree.BTreeG delta index, repurposed here for a call-local ordered map
// instead of a multi-version row index.
type auxItem struct {
	seq   int
	name  string
	value any
}

func auxLess(a, b auxItem) bool { return a.seq < b.seq }

// AuxScope is the per-generation auxiliary scope (spec §3/§4.B): an
// insertion-preserving name→value map the caller injects as the generated
// wrapper's closure environment.
type AuxScope struct {
	tree      *btree.BTreeG[auxItem]
	byName    map[string]auxItem
	typeNames map[reflect.Type]string
	keyNames  map[string]string
	seq       int
}

func newAuxScope() *AuxScope {
	return &AuxScope{
		tree:      btree.NewG(32, auxLess),
		byName:    make(map[string]auxItem),
		typeNames: make(map[reflect.Type]string),
		keyNames:  make(map[string]string),
	}
}

// Names returns bound names in insertion order.
func (a *AuxScope) Names() []string {
	names := make([]string, 0, len(a.byName))
	a.tree.Ascend(func(it auxItem) bool {
		names = append(names, it.name)
		return true
	})
	return names
}

// Value returns the value bound to name, if any.
func (a *AuxScope) Value(name string) (any, bool) {
	it, ok := a.byName[name]
	return it.value, ok
}

func (a *AuxScope) insert(prefix string, value any) string {
	name := fmt.Sprintf("%s%d", prefix, a.seq)
	it := auxItem{seq: a.seq, name: name, value: value}
	a.seq++
	a.byName[name] = it
	a.tree.ReplaceOrInsert(it)
	return name
}

// bindKeyed dedupes on a caller-supplied content key: equal keys reuse the
// same binding (spec §3 invariant: "duplicate keys with equal values are
// idempotent"), distinct keys always mint a fresh name.
func (a *AuxScope) bindKeyed(key, prefix string, value any) string {
	if name, ok := a.keyNames[key]; ok {
		return name
	}
	name := a.insert(prefix, value)
	a.keyNames[key] = name
	return name
}

// BindType registers a class and returns an expression evaluating to it.
func (a *AuxScope) BindType(t reflect.Type) string {
	if name, ok := a.typeNames[t]; ok {
		return name
	}
	name := a.insert("auxType", t)
	a.typeNames[t] = name
	return name
}

// BindTypes registers a set of classes as one tuple value (used by Union's
// non-structured-member isinstance-any check and Literal's type pre-filter).
func (a *AuxScope) BindTypes(ts []reflect.Type) string {
	key := "types:"
	for _, t := range ts {
		key += t.PkgPath() + "." + t.String() + ","
	}
	return a.bindKeyed(key, "auxTypes", append([]reflect.Type(nil), ts...))
}

// BindTypeOrTypes is the polymorphic convenience named in spec §4.B.
func (a *AuxScope) BindTypeOrTypes(ts ...reflect.Type) string {
	if len(ts) == 1 {
		return a.BindType(ts[0])
	}
	return a.BindTypes(ts)
}

// BindValue registers any value (literal operands, the bits function) and
// returns an expression evaluating to it. Values are deduped by %#v when
// comparable; funcs and other incomparable values always get a fresh name.
func (a *AuxScope) BindValue(v any) string {
	key, ok := comparableKey(v)
	if !ok {
		return a.insert("auxVal", v)
	}
	return a.bindKeyed(key, "auxVal", v)
}

// BindNamed binds name to value using the exact name requested, not a
// minted prefix+sequence name: validator templates (spec §6) embed a fixed
// identifier directly in their Template() text, so the binder can't rename
// it. Rebinding the same name to an equal value is a no-op; rebinding to a
// different value is reported to the caller rather than silently shadowed.
func (a *AuxScope) BindNamed(name string, value any) (string, error) {
	if it, ok := a.byName[name]; ok {
		if !reflect.DeepEqual(it.value, value) {
			return "", fmt.Errorf("auxiliary name %q already bound to a different value", name)
		}
		return name, nil
	}
	it := auxItem{seq: a.seq, name: name, value: value}
	a.seq++
	a.byName[name] = it
	a.tree.ReplaceOrInsert(it)
	return name, nil
}

func comparableKey(v any) (string, bool) {
	if v == nil {
		return "nil", true
	}
	t := reflect.TypeOf(v)
	if !t.Comparable() {
		return "", false
	}
	return fmt.Sprintf("%T|%#v", v, v), true
}
