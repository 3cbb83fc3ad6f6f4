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

import "reflect"

// signOf returns h's Sign, unwrapping DeprecatedHint first so dispatch never
// has to special-case it.
func signOf(h Hint) Sign {
	return h.hintSign()
}

// isIgnorable reports whether h requires no check at all (spec §4.C).
func isIgnorable(h Hint) bool {
	switch v := h.(type) {
	case AnyHint:
		return true
	case DeprecatedHint:
		return isIgnorable(v.Inner)
	case InstanceHint:
		return v.Type == nil
	default:
		return false
	}
}

// isUnsupported reports whether classify refuses this hint or its sign.
func isUnsupported(h Hint) bool {
	switch v := h.(type) {
	case UnsupportedHint:
		return true
	case DeprecatedHint:
		return isUnsupported(v.Inner)
	default:
		return signOf(v) == signUnsupported
	}
}

// isDeprecated reports whether h carries a deprecation warning.
func isDeprecated(h Hint) (string, bool) {
	if d, ok := h.(DeprecatedHint); ok {
		return d.Reason, true
	}
	return "", false
}

// unwrapDeprecated strips a DeprecatedHint wrapper after its warning has
// been emitted, so downstream classification sees the real hint.
func unwrapDeprecated(h Hint) Hint {
	if d, ok := h.(DeprecatedHint); ok {
		return unwrapDeprecated(d.Inner)
	}
	return h
}

// childrenOf returns h's immediate child hints, in the order the generated
// code must test them (spec §4.C / §4.E: "siblings enqueued in the order
// they appear in the hint's children list").
func childrenOf(h Hint) []Hint {
	switch v := h.(type) {
	case UnionHint:
		return v.Children
	case SeqHint:
		return []Hint{v.Elem}
	case TupleHint:
		return v.Elems
	case AnnotatedHint:
		return []Hint{v.Base}
	case GenericHint:
		return v.Bases
	case SubclassHint:
		return []Hint{v.Super}
	default:
		return nil
	}
}

// originClassOf returns the instanceable type underlying a hint, if any.
func originClassOf(h Hint) (reflect.Type, bool) {
	switch v := h.(type) {
	case InstanceHint:
		if v.Type == nil {
			return nil, false
		}
		return v.Type, true
	case SeqHint:
		return v.Origin, true
	case TupleHint:
		return v.Origin, true
	case GenericHint:
		return v.Origin, true
	default:
		return nil, false
	}
}

// isShallow reports whether h is an instanceable-origin type that is either
// unparameterized or not supported for deep checking (spec §4.E step 4):
// the BFS driver emits a plain Instance check for these without dispatching
// to a sign handler.
func isShallow(h Hint) bool {
	_, ok := h.(InstanceHint)
	return ok
}

func metahintOf(h AnnotatedHint) Hint { return h.Base }

func validatorsOf(h AnnotatedHint) []Validator { return h.Validators }

func literalValuesOf(h LiteralHint) []any { return h.Values }

func genericUnerasedBasesOf(h GenericHint) []Hint { return h.Bases }

func subclassSuperclassOf(h SubclassHint) Hint { return h.Super }

func sizedSequenceArgOf(h SeqHint) Hint { return h.Elem }

func isEmptyFixedTuple(h TupleHint) bool { return h.isEmpty() }
