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

// Package forwardref holds caller-bound reflect.Type values for the
// basenames hint.Generate reports back to its caller (relative forward
// references a generated check could not bind at generation time), so a
// generated wrapper can look them up at check time. Names are only ever
// known through Bind; the registry does not search packages for types.
package forwardref

import (
	"reflect"
	"sort"
	"sync"
	stdatomic "sync/atomic"
	"time"

	"github.com/google/btree"
)

// Registry is a bounded basename → reflect.Type cache (SPEC_FULL.md
// supplemented feature 3), implemented the way the teacher's
// storage/cachemap.go implements its cache: a sync.RWMutex-guarded map plus
// a last-used timestamp per entry, evicted by a simple size sweep rather
// than a third-party LRU library. The only addition over the teacher's
// shape is the btree-backed sorted index, needed here (and absent there)
// because diagnostics must list the bound basenames in order.
type Registry struct {
	mu       sync.RWMutex
	capacity int
	byName   map[string]*entry
	order    *btree.BTreeG[orderItem]
}

type entry struct {
	value    reflect.Type
	lastUsed atomic
}

// atomic is a tiny int64-nanosecond holder; storage/fast_uuid.go-style code
// reaches for atomic.Int64 directly for this, done the same way here.
type atomic struct{ nanos stdatomic.Int64 }

func (a *atomic) store(t time.Time) { a.nanos.Store(t.UnixNano()) }
func (a *atomic) load() time.Time   { return time.Unix(0, a.nanos.Load()) }

type orderItem struct{ basename string }

func orderLess(a, b orderItem) bool { return a.basename < b.basename }

// NewRegistry creates a registry bounded to capacity entries (0 means
// unbounded — callers pass hint.Settings.ForwardRefCacheSize in practice).
func NewRegistry(capacity int) *Registry {
	return &Registry{
		capacity: capacity,
		byName:   make(map[string]*entry),
		order:    btree.NewG(32, orderLess),
	}
}

// Bind registers basename → t. Binding an already-bound basename to an
// equal type is a no-op; binding it to a different type replaces the old
// one (a caller re-declaring a type under a name it previously registered
// wins).
func (r *Registry) Bind(basename string, t reflect.Type) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byName[basename]; !exists {
		r.order.ReplaceOrInsert(orderItem{basename: basename})
	}
	e := &entry{value: t}
	e.lastUsed.store(time.Now())
	r.byName[basename] = e
	r.evictLocked()
}

// Resolve implements runtimecheck.Resolver.
func (r *Registry) Resolve(basename string) (reflect.Type, bool) {
	r.mu.RLock()
	e, ok := r.byName[basename]
	r.mu.RUnlock()
	if !ok {
		return nil, false
	}
	e.lastUsed.store(time.Now())
	return e.value, true
}

// Pending returns, in sorted order, every basename bound so far and not
// since evicted — printed by cmd/pephint-repl's "pending" command. The
// registry does not record names that were asked for but never bound, so
// those never appear here.
func (r *Registry) Pending() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.byName))
	r.order.Ascend(func(it orderItem) bool {
		names = append(names, it.basename)
		return true
	})
	return names
}

// evictLocked drops the least-recently-used entries once len(byName)
// exceeds capacity. Called with mu held.
func (r *Registry) evictLocked() {
	if r.capacity <= 0 || len(r.byName) <= r.capacity {
		return
	}
	type scored struct {
		basename string
		lastUsed time.Time
	}
	all := make([]scored, 0, len(r.byName))
	for name, e := range r.byName {
		all = append(all, scored{basename: name, lastUsed: e.lastUsed.load()})
	}
	sort.Slice(all, func(i, j int) bool { return all[i].lastUsed.Before(all[j].lastUsed) })
	for _, s := range all[:len(r.byName)-r.capacity] {
		delete(r.byName, s.basename)
		r.order.Delete(orderItem{basename: s.basename})
	}
}
