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
	"encoding/binary"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// memoEntry is one cached Generate result (spec §6: "Generate is a pure
// function of its root hint, memoized"). sessionID labels the entry at the
// time it was stored; nothing in the package reads it, and Stats() does not
// report it.
type memoEntry struct {
	code        string
	aux         *AuxScope
	forwardRefs []string
	err         error
	sessionID   uuid.UUID
}

var (
	memoMu            sync.RWMutex
	memoStore         = make(map[string]memoEntry)
	memoHits          atomic.Int64
	memoMisses        atomic.Int64
	memoSessionCtr    uint64 = uint64(time.Now().UnixNano())
)

func memoGet(h Hint) (memoEntry, bool) {
	memoMu.RLock()
	e, ok := memoStore[keyOf(h)]
	memoMu.RUnlock()
	if ok {
		memoHits.Add(1)
	} else {
		memoMisses.Add(1)
	}
	return e, ok
}

func memoPut(h Hint, code string, aux *AuxScope, forwardRefs []string, err error) {
	memoMu.Lock()
	memoStore[keyOf(h)] = memoEntry{
		code: code, aux: aux, forwardRefs: forwardRefs, err: err,
		sessionID: nextSessionID(),
	}
	memoMu.Unlock()
}

// nextSessionID mirrors storage/fast_uuid.go's newUUID: a counter XOR'd
// with the wall clock, not crypto/rand, since these ids are labels only and
// never security-sensitive.
func nextSessionID() uuid.UUID {
	ctr := atomic.AddUint64(&memoSessionCtr, 1)
	now := uint64(time.Now().UnixNano())
	var b [16]byte
	binary.LittleEndian.PutUint64(b[0:8], ctr)
	binary.LittleEndian.PutUint64(b[8:16], ctr^now^(now<<17))
	b[6] = (b[6] & 0x0f) | 0x40
	b[8] = (b[8] & 0x3f) | 0x80
	return uuid.UUID(b)
}

// CacheStats is a point-in-time snapshot of the memoization cache, used by
// cmd/pephint-dashboard's live view.
type CacheStats struct {
	Entries int
	Hits    int64
	Misses  int64
}

// Stats snapshots the memoization cache's size and hit/miss counters.
func Stats() CacheStats {
	memoMu.RLock()
	n := len(memoStore)
	memoMu.RUnlock()
	return CacheStats{Entries: n, Hits: memoHits.Load(), Misses: memoMisses.Load()}
}

// keyOf builds a canonical string key for a hint tree. Hint values are not
// themselves usable as Go map keys — several constructors hold slices
// (UnionHint.Children, TupleHint.Elems, ...) — so keyOf walks the tree the
// same way the BFS driver's classifiers do and renders a key that is equal
// for structurally-equal hints and (overwhelmingly likely, via %#v on the
// concrete operands) distinct otherwise. Validators are keyed on ID() alone:
// the Validator interface documents equal-ID as "the same validator", so
// their Bindings (an unordered map) never need to enter the key.
func keyOf(h Hint) string {
	var b strings.Builder
	writeKey(&b, h)
	return b.String()
}

func writeKey(b *strings.Builder, h Hint) {
	switch v := h.(type) {
	case AnyHint:
		b.WriteString("Any()")
	case InstanceHint:
		b.WriteString("Instance(")
		writeTypeKey(b, v.Type)
		b.WriteByte(')')
	case ForwardRefHint:
		fmt.Fprintf(b, "ForwardRef(%q)", v.Name)
	case UnionHint:
		b.WriteString("Union(")
		for i, c := range v.Children {
			if i > 0 {
				b.WriteByte(',')
			}
			writeKey(b, c)
		}
		b.WriteByte(')')
	case SeqHint:
		b.WriteString("Seq(")
		writeTypeKey(b, v.Origin)
		b.WriteByte(',')
		writeKey(b, v.Elem)
		b.WriteByte(')')
	case TupleHint:
		b.WriteString("Tuple(")
		writeTypeKey(b, v.Origin)
		for _, e := range v.Elems {
			b.WriteByte(',')
			writeKey(b, e)
		}
		b.WriteByte(')')
	case AnnotatedHint:
		b.WriteString("Annotated(")
		writeKey(b, v.Base)
		for _, val := range v.Validators {
			b.WriteString(",V:")
			b.WriteString(val.ID())
		}
		b.WriteByte(')')
	case SubclassHint:
		b.WriteString("Subclass(")
		writeKey(b, v.Super)
		b.WriteByte(')')
	case GenericHint:
		b.WriteString("Generic(")
		writeTypeKey(b, v.Origin)
		for _, base := range v.Bases {
			b.WriteByte(',')
			writeKey(b, base)
		}
		b.WriteByte(')')
	case LiteralHint:
		b.WriteString("Literal(")
		for i, val := range v.Values {
			if i > 0 {
				b.WriteByte(',')
			}
			fmt.Fprintf(b, "%T:%#v", val, val)
		}
		b.WriteByte(')')
	case UnsupportedHint:
		fmt.Fprintf(b, "Unsupported(%q)", v.Reason)
	case DeprecatedHint:
		b.WriteString("Deprecated(")
		writeKey(b, v.Inner)
		fmt.Fprintf(b, ",%q)", v.Reason)
	default:
		fmt.Fprintf(b, "?(%T)", h)
	}
}

func writeTypeKey(b *strings.Builder, t reflect.Type) {
	if t == nil {
		b.WriteString("<nil>")
		return
	}
	b.WriteString(t.PkgPath())
	b.WriteByte('.')
	b.WriteString(t.String())
}
