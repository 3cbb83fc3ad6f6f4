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

func TestGenerateInstance(t *testing.T) {
	code, aux, refs, err := Generate(Instance(reflect.TypeOf(0)), WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(code, "runtimecheck.IsInstance(pith, ") {
		t.Fatalf("unexpected code: %s", code)
	}
	if len(aux.Names()) != 1 {
		t.Fatalf("expected exactly one aux binding, got %v", aux.Names())
	}
	if len(refs) != 0 {
		t.Fatalf("Instance hint should report no forward refs, got %v", refs)
	}
}

func TestGenerateUnionMixedMembers(t *testing.T) {
	h := Or(Instance(reflect.TypeOf(0)), Instance(reflect.TypeOf("")), SeqOf(reflect.TypeOf([]int{}), Instance(reflect.TypeOf(0))))
	code, _, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(code, "runtimecheck.IsInstanceAny(pith, ") {
		t.Fatalf("plain-class members should compile to one IsInstanceAny clause: %s", code)
	}
	if !strings.Contains(code, "||") {
		t.Fatalf("union of a plain-class clause and a structured clause should be OR-joined: %s", code)
	}
	if containsPlaceholder(code) {
		t.Fatal("generated code still contains an unresolved placeholder")
	}
}

func TestGenerateUnionEmptyErrors(t *testing.T) {
	_, _, _, err := Generate(UnionHint{}, WithoutMemo())
	assertKind(t, err, HintNonCompliant)
}

func TestGenerateSequenceIgnorableElemFallsBackToInstance(t *testing.T) {
	h := SeqOf(reflect.TypeOf([]int{}), Any())
	code, _, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(code, "runtimecheck.IsInstance(pith, ") || strings.Contains(code, "RandIndex") {
		t.Fatalf("ignorable-element sequence should fall back to a shallow Instance check: %s", code)
	}
}

func TestGenerateSequenceStructuredElem(t *testing.T) {
	h := SeqOf(reflect.TypeOf([]int{}), Instance(reflect.TypeOf(0)))
	code, aux, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(code, "runtimecheck.RandIndex(") {
		t.Fatalf("structured-element sequence should sample via RandIndex: %s", code)
	}
	foundBits := false
	for _, n := range aux.Names() {
		if strings.HasPrefix(n, bitsAuxName) {
			foundBits = true
		}
	}
	if !foundBits {
		t.Fatalf("sequence check should bind the random-bits source, aux names: %v", aux.Names())
	}
}

func TestGenerateTupleEmpty(t *testing.T) {
	code, _, _, err := Generate(TupleOf(reflect.TypeOf([0]int{})), WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(code, "Len() == 0") {
		t.Fatalf("empty tuple check should assert zero length: %s", code)
	}
}

func TestGenerateTupleFixedElems(t *testing.T) {
	h := TupleOf(reflect.TypeOf([2]int{}), Instance(reflect.TypeOf(0)), Instance(reflect.TypeOf(0)))
	code, _, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Count(code, "rv.Index(") != 2 {
		t.Fatalf("fixed tuple with 2 elements should index rv twice: %s", code)
	}
	if !strings.Contains(code, "!= 2") {
		t.Fatalf("fixed tuple should assert its length: %s", code)
	}
}

func TestGenerateAnnotatedWithValidator(t *testing.T) {
	v := fakeValidator{id: "pephintTestAlwaysTrue", bindings: map[string]any{"pephintTestAlwaysTrue": true}}
	h := Annotated(Instance(reflect.TypeOf(0)), v)
	code, aux, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if val, ok := aux.Value("pephintTestAlwaysTrue"); !ok || val != true {
		t.Fatalf("validator binding was not threaded into the aux scope: %v %v", val, ok)
	}
	if !strings.Contains(code, "runtimecheck.IsInstance") {
		t.Fatalf("Annotated over a non-ignorable base should still check the base: %s", code)
	}
}

func TestGenerateAnnotatedElidesIgnorableBase(t *testing.T) {
	v := fakeValidator{id: "pephintTestAlwaysTrue2", bindings: nil}
	h := Annotated(Any(), v)
	code, _, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(code, "runtimecheck.IsInstance") {
		t.Fatalf("Annotated over an ignorable base should not emit an Instance check: %s", code)
	}
}

func TestGenerateAnnotatedNoValidatorsErrors(t *testing.T) {
	_, _, _, err := Generate(Annotated(Instance(reflect.TypeOf(0))), WithoutMemo())
	assertKind(t, err, MixedAnnotatedMetadata)
}

func TestGenerateAnnotatedConflictingBindingErrors(t *testing.T) {
	v1 := fakeValidator{id: "dup", bindings: map[string]any{"shared": 1}}
	v2 := fakeValidator{id: "dup2", bindings: map[string]any{"shared": 2}}
	h := Annotated(Instance(reflect.TypeOf(0)), v1, v2)
	_, _, _, err := Generate(h, WithoutMemo())
	assertKind(t, err, DuplicateName)
}

func TestGenerateSubclassOfPlainClass(t *testing.T) {
	code, _, _, err := Generate(SubclassOf(Instance(reflect.TypeOf(0))), WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(code, "runtimecheck.IsSubclass(") {
		t.Fatalf("expected an IsSubclass call: %s", code)
	}
}

func TestGenerateSubclassOfUnionOfClasses(t *testing.T) {
	h := SubclassOf(Or(Instance(reflect.TypeOf(0)), Instance(reflect.TypeOf(""))))
	_, _, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestGenerateSubclassOfUnionRejectsStructuredMember(t *testing.T) {
	h := SubclassOf(Or(Instance(reflect.TypeOf(0)), SeqOf(reflect.TypeOf([]int{}), Any())))
	_, _, _, err := Generate(h, WithoutMemo())
	assertKind(t, err, HintNonCompliant)
}

func TestGenerateGenericSkipsPlainBasesHandlesStructured(t *testing.T) {
	h := Generic(reflect.TypeOf(0), Instance(reflect.TypeOf(0)), SeqOf(reflect.TypeOf([]int{}), Instance(reflect.TypeOf(0))))
	code, _, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(code, "runtimecheck.RandIndex(") {
		t.Fatalf("structured base should still be recursed into: %s", code)
	}
}

func TestGenerateLiteralWithNilSkipsPrefilter(t *testing.T) {
	h := Literal(1, 2, nil)
	code, _, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if strings.Contains(code, "IsInstanceAny") {
		t.Fatalf("a literal set containing nil should skip the type pre-filter: %s", code)
	}
	if !strings.Contains(code, "== nil") {
		t.Fatalf("nil literal member should compile to a nil comparison: %s", code)
	}
}

func TestGenerateLiteralWithoutNilUsesPrefilter(t *testing.T) {
	h := Literal(1, 2, 3)
	code, _, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(code, "IsInstanceAny") {
		t.Fatalf("an all-concrete literal set should use the type pre-filter: %s", code)
	}
}

func TestGenerateLiteralEmptyErrors(t *testing.T) {
	_, _, _, err := Generate(LiteralHint{}, WithoutMemo())
	assertKind(t, err, HintNonCompliant)
}

func TestGenerateForwardRefRelativeReportsBasename(t *testing.T) {
	code, _, refs, err := Generate(ForwardRef("Node"), WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(refs) != 1 || refs[0] != "Node" {
		t.Fatalf("expected forward refs [Node], got %v", refs)
	}
	if !strings.Contains(code, "runtimecheck.MustResolveForwardRef(") {
		t.Fatalf("forward ref should compile to a MustResolveForwardRef call: %s", code)
	}
}

func TestGenerateForwardRefMalformedErrors(t *testing.T) {
	_, _, _, err := Generate(ForwardRef(""), WithoutMemo())
	assertKind(t, err, ForwardRefMalformed)
}

func TestGenerateRootIgnorableErrors(t *testing.T) {
	_, _, _, err := Generate(Any(), WithoutMemo())
	assertKind(t, err, HintIgnorablePresent)
}

func TestGenerateDeprecatedWarnsAndProceeds(t *testing.T) {
	var buf strings.Builder
	SetWarnWriter(&buf)
	defer SetWarnWriter(nil)

	h := Deprecated(Instance(reflect.TypeOf(0)), "use NewThing instead")
	_, _, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(buf.String(), "use NewThing instead") {
		t.Fatalf("expected a deprecation warning to be written, got %q", buf.String())
	}
}

func TestGenerateDeprecatedFatalSetting(t *testing.T) {
	orig := Settings.DeprecatedIsFatal
	Settings.DeprecatedIsFatal = true
	defer func() { Settings.DeprecatedIsFatal = orig }()

	h := Deprecated(Instance(reflect.TypeOf(0)), "forbidden")
	_, _, _, err := Generate(h, WithoutMemo())
	assertKind(t, err, HintUnsupported)
}

func TestGenerateQueueTooLarge(t *testing.T) {
	orig := Settings.QueueCapacity
	Settings.QueueCapacity = 1
	defer func() { Settings.QueueCapacity = orig }()

	deep := Instance(reflect.TypeOf(0))
	for i := 0; i < 5; i++ {
		deep = Or(deep, Instance(reflect.TypeOf("")))
	}
	_, _, _, err := Generate(deep, WithoutMemo())
	assertKind(t, err, HintTooLarge)
}

func TestGenerateMemoizationReturnsEqualResult(t *testing.T) {
	h := Instance(reflect.TypeOf(int64(0)))
	code1, _, _, err := Generate(h)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	code2, _, _, err := Generate(h)
	if err != nil {
		t.Fatalf("Generate (memoized): %v", err)
	}
	if code1 != code2 {
		t.Fatalf("memoized Generate returned different code for an equal hint:\n%s\n%s", code1, code2)
	}
}

func assertKind(t *testing.T, err error, want Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected an error of kind %s, got nil", want)
	}
	ge, ok := err.(*GenError)
	if !ok {
		t.Fatalf("expected a *GenError, got %T: %v", err, err)
	}
	if ge.Kind != want {
		t.Fatalf("error kind = %s, want %s (detail: %s)", ge.Kind, want, ge.Detail)
	}
}
