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
package forwardref

import (
	"reflect"
	"testing"
)

func TestRegistryBindAndResolve(t *testing.T) {
	r := NewRegistry(0)
	r.Bind("Node", reflect.TypeOf(0))
	got, ok := r.Resolve("Node")
	if !ok || got != reflect.TypeOf(0) {
		t.Fatalf("Resolve(Node) = (%v, %v), want (int, true)", got, ok)
	}
}

func TestRegistryResolveUnbound(t *testing.T) {
	r := NewRegistry(0)
	if _, ok := r.Resolve("Missing"); ok {
		t.Fatal("Resolve of an unbound name should report ok=false")
	}
}

func TestRegistryRebindReplaces(t *testing.T) {
	r := NewRegistry(0)
	r.Bind("Node", reflect.TypeOf(0))
	r.Bind("Node", reflect.TypeOf(""))
	got, _ := r.Resolve("Node")
	if got != reflect.TypeOf("") {
		t.Fatalf("rebinding Node should replace the old type, got %v", got)
	}
}

func TestRegistryPendingSortedOrder(t *testing.T) {
	r := NewRegistry(0)
	r.Bind("Zebra", reflect.TypeOf(0))
	r.Bind("Apple", reflect.TypeOf(0))
	r.Bind("Mango", reflect.TypeOf(0))
	got := r.Pending()
	want := []string{"Apple", "Mango", "Zebra"}
	if len(got) != len(want) {
		t.Fatalf("Pending() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Pending() = %v, want %v", got, want)
		}
	}
}

func TestRegistryEvictsLeastRecentlyUsed(t *testing.T) {
	r := NewRegistry(2)
	r.Bind("A", reflect.TypeOf(0))
	r.Bind("B", reflect.TypeOf(0))
	// touch A so it is more recently used than B
	r.Resolve("A")
	r.Bind("C", reflect.TypeOf(0)) // should evict B, the least recently used

	if _, ok := r.Resolve("B"); ok {
		t.Fatal("B should have been evicted as the least recently used entry")
	}
	if _, ok := r.Resolve("A"); !ok {
		t.Fatal("A was recently used and should still be present")
	}
	if _, ok := r.Resolve("C"); !ok {
		t.Fatal("C was just bound and should still be present")
	}
}

func TestRegistryUnboundedWithZeroCapacity(t *testing.T) {
	r := NewRegistry(0)
	for i := 0; i < 100; i++ {
		r.Bind(string(rune('a'+i%26))+string(rune('A'+i/26)), reflect.TypeOf(0))
	}
	if len(r.Pending()) != 100 {
		t.Fatalf("a zero-capacity registry should never evict, got %d entries", len(r.Pending()))
	}
}

var _ interface {
	Resolve(string) (reflect.Type, bool)
} = (*Registry)(nil)
