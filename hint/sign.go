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

// Sign is the closed tag identifying a hint's family. Every Hint maps to
// exactly one Sign; the BFS driver dispatches on it rather than walking a
// chain of type switches at every call site.
type Sign uint8

const (
	SignInstance Sign = iota
	SignForwardRef
	SignUnion
	SignSequenceArgs1
	SignTuple
	SignAnnotated
	SignSubclass
	SignGeneric
	SignLiteral
	signUnsupported // internal: classify() reported this hint out of scope
)

func (s Sign) String() string {
	switch s {
	case SignInstance:
		return "Instance"
	case SignForwardRef:
		return "ForwardRef"
	case SignUnion:
		return "Union"
	case SignSequenceArgs1:
		return "SequenceArgs1"
	case SignTuple:
		return "Tuple"
	case SignAnnotated:
		return "Annotated"
	case SignSubclass:
		return "Subclass"
	case SignGeneric:
		return "Generic"
	case SignLiteral:
		return "Literal"
	default:
		return "Unsupported"
	}
}

// Hint is the opaque value the core operates on. The core never inspects a
// Hint's internals directly — it only calls the classifier functions in
// classify.go, which type-switch over the concrete constructors below. This
// keeps §4.C (the classifier) as the single place that knows hint shapes.
type Hint interface {
	hintSign() Sign
}

// Validator is the capability every annotated-hint validator must expose
// (spec §6, "Validator capability"). Real validators live in package
// validate; this interface is declared here, not there, so the hint package
// has no import-time dependency on validate's concrete types — only on the
// shape validators present.
type Validator interface {
	// ID identifies the validator for idempotent auxiliary-scope binding;
	// two validators with equal ID are treated as the same validator.
	ID() string
	// Template is a code fragment with {obj} and {indent} slots (spec §6).
	Template() string
	// Bindings are auxiliary values the template's code references, keyed
	// by the local name the template expects to close over.
	Bindings() map[string]any
}

// AnyHint is the ignorable hint: "no check needed", the Go analogue of
// Python's bare object/Any. A hint reduced to AnyHint short-circuits the
// handler that contains it (see handlers.go's ignorable-skip checks).
type AnyHint struct{}

func Any() Hint { return AnyHint{} }
func (AnyHint) hintSign() Sign { return SignInstance }

// InstanceHint checks that the pith is assignable to Type (spec: "Instance").
type InstanceHint struct {
	Type reflect.Type
}

func Instance(t reflect.Type) Hint { return InstanceHint{Type: t} }
func (InstanceHint) hintSign() Sign { return SignInstance }

// ForwardRefHint is a textual, possibly not-yet-declared type name. Relative
// names (no leading "/") are basenames the caller must resolve via package
// forwardref before the generated wrapper runs; absolute names are fully
// package-qualified and never appear in the returned forward-ref basenames.
type ForwardRefHint struct {
	Name string
}

func ForwardRef(name string) Hint { return ForwardRefHint{Name: name} }
func (ForwardRefHint) hintSign() Sign { return SignForwardRef }

func (r ForwardRefHint) isRelative() bool {
	return len(r.Name) == 0 || r.Name[0] != '/'
}

func (r ForwardRefHint) basename() string {
	if r.isRelative() {
		return r.Name
	}
	return r.Name[1:]
}

// UnionHint is "any one of these hints matches" (spec: "Union").
type UnionHint struct {
	Children []Hint
}

func Or(children ...Hint) Hint { return UnionHint{Children: children} }
func (UnionHint) hintSign() Sign { return SignUnion }

// SeqHint is a homogeneous sequence parameterized by one element hint
// (spec: "SequenceArgs1"), and also the representation used for the
// variadic-tuple form `Tuple[T, ...]` (spec §4.F: routed to this branch,
// not the fixed-tuple one).
type SeqHint struct {
	Origin reflect.Type // the instanceable container type, e.g. []int
	Elem   Hint
}

func SeqOf(origin reflect.Type, elem Hint) Hint { return SeqHint{Origin: origin, Elem: elem} }
func (SeqHint) hintSign() Sign { return SignSequenceArgs1 }

// TupleHint is a fixed-length, positionally-typed tuple (spec: "Tuple",
// fixed form). Origin is the instanceable container type backing the tuple
// (a Go array type, or a slice type used tuple-style).
type TupleHint struct {
	Origin reflect.Type
	Elems  []Hint
}

func TupleOf(origin reflect.Type, elems ...Hint) Hint {
	return TupleHint{Origin: origin, Elems: elems}
}
func (TupleHint) hintSign() Sign { return SignTuple }

func (t TupleHint) isEmpty() bool { return len(t.Elems) == 0 }

// AnnotatedHint pairs an underlying hint with validators (spec: "Annotated").
type AnnotatedHint struct {
	Base       Hint
	Validators []Validator
}

func Annotated(base Hint, validators ...Validator) Hint {
	return AnnotatedHint{Base: base, Validators: validators}
}
func (AnnotatedHint) hintSign() Sign { return SignAnnotated }

// SubclassHint checks that the pith (itself a reflect.Type value) is a
// subtype of / implements Super (spec: "Subclass" / "is-subclass-of").
// Super is an InstanceHint (a concrete class/interface), a ForwardRefHint,
// or a UnionHint whose members are all InstanceHints (a tuple of classes).
type SubclassHint struct {
	Super Hint
}

func SubclassOf(super Hint) Hint { return SubclassHint{Super: super} }
func (SubclassHint) hintSign() Sign { return SignSubclass }

// GenericHint is a user-defined parameterized type (spec: "Generic"):
// Origin is its instanceable origin, Bases its unerased pseudo-superclass
// list (plain classes are skipped by the handler; structured ones recurse).
type GenericHint struct {
	Origin reflect.Type
	Bases  []Hint
}

func Generic(origin reflect.Type, bases ...Hint) Hint {
	return GenericHint{Origin: origin, Bases: bases}
}
func (GenericHint) hintSign() Sign { return SignGeneric }

// LiteralHint checks value-equality against a finite, closed set of
// operands (spec: "Literal"). Values must be comparable with
// reflect.DeepEqual; nil is represented as an explicit untyped nil entry.
type LiteralHint struct {
	Values []any
}

func Literal(values ...any) Hint { return LiteralHint{Values: values} }
func (LiteralHint) hintSign() Sign { return SignLiteral }

// UnsupportedHint marks a hint the classifier refuses to handle (spec:
// "SignUnsupported"). Constructing one is how a reducer/caller can report
// "I saw something but it is out of scope" without panicking.
type UnsupportedHint struct {
	Reason string
}

func Unsupported(reason string) Hint { return UnsupportedHint{Reason: reason} }
func (UnsupportedHint) hintSign() Sign { return signUnsupported }

// DeprecatedHint wraps another hint that classify() should warn about but
// still process (spec §7: "DeprecatedHint — non-fatal").
type DeprecatedHint struct {
	Inner  Hint
	Reason string
}

func Deprecated(inner Hint, reason string) Hint {
	return DeprecatedHint{Inner: inner, Reason: reason}
}
func (d DeprecatedHint) hintSign() Sign { return d.Inner.hintSign() }
