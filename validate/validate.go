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

// Package validate supplies the concrete hint.Validator implementations an
// Annotated hint names — the Go analogue of beartype's Is[...] validators.
// Each validator compiles down to a single boolean expression spliced
// directly into the generated code, never a function call back into this
// package, so a generated wrapper never imports validate itself. Func is
// the one exception that closes over a caller-supplied predicate rather
// than templating a fixed comparison; the predicate itself still never
// lives in generated source unless cmd/pephintgen's -inline-validators
// mode can express its body as a boolean expression.
package validate

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"
)

// numeric constrains the operand types the range/comparison validators
// accept. reflect can't check these statically when reading an Annotated
// hint built in Go source, so the validator's Template simply embeds a
// Go comparison operator and trusts the compiler of the generated code to
// reject a type mismatch.
type numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

type comparisonValidator struct {
	id       string
	operand  any
	operator string
}

func (v comparisonValidator) ID() string { return v.id }

func (v comparisonValidator) Template() string {
	t := goTypeName(v.operand)
	return fmt.Sprintf("{obj}.(%s) %s %s.(%s)", t, v.operator, v.id, t)
}

func (v comparisonValidator) Bindings() map[string]any {
	return map[string]any{v.id: v.operand}
}

func goTypeName(v any) string {
	return fmt.Sprintf("%T", v)
}

// GreaterThan builds a validator asserting {obj} > n, the Go analogue of
// beartype's Is[lambda x: x > n].
func GreaterThan[T numeric](n T) comparisonValidator {
	return comparisonValidator{id: fmt.Sprintf("pephintGreaterThan%v", n), operand: n, operator: ">"}
}

// LessThan builds a validator asserting {obj} < n.
func LessThan[T numeric](n T) comparisonValidator {
	return comparisonValidator{id: fmt.Sprintf("pephintLessThan%v", n), operand: n, operator: "<"}
}

// reflectLenValidator asserts a sized value's reflect length satisfies a
// comparison against n, grounded on beartype's IsLength validator family.
type reflectLenValidator struct {
	id       string
	n        int
	operator string
}

func (v reflectLenValidator) ID() string { return v.id }

func (v reflectLenValidator) Template() string {
	return fmt.Sprintf("reflect.ValueOf({obj}).Len() %s %d", v.operator, v.n)
}

func (v reflectLenValidator) Bindings() map[string]any { return nil }

// MinLen asserts the pith's reflect length is at least n.
func MinLen(n int) reflectLenValidator {
	return reflectLenValidator{id: fmt.Sprintf("pephintMinLen%d", n), n: n, operator: ">="}
}

// MaxLen asserts the pith's reflect length is at most n.
func MaxLen(n int) reflectLenValidator {
	return reflectLenValidator{id: fmt.Sprintf("pephintMaxLen%d", n), n: n, operator: "<="}
}

// nonEmptyValidator asserts a string pith is non-blank after trimming,
// grounded on beartype's IsNonEmpty pattern over str.strip().
type nonEmptyValidator struct{}

func (nonEmptyValidator) ID() string { return "pephintNonEmptyString" }

func (nonEmptyValidator) Template() string {
	return `strings.TrimSpace({obj}.(string)) != ""`
}

func (nonEmptyValidator) Bindings() map[string]any { return nil }

// NonEmptyString asserts the pith, as a string, is non-blank.
func NonEmptyString() nonEmptyValidator { return nonEmptyValidator{} }

// prefixValidator asserts a string pith starts with a fixed prefix.
type prefixValidator struct {
	id     string
	prefix string
}

func (v prefixValidator) ID() string { return v.id }

func (v prefixValidator) Template() string {
	return fmt.Sprintf("strings.HasPrefix({obj}.(string), %s.(string))", v.id)
}

func (v prefixValidator) Bindings() map[string]any {
	return map[string]any{v.id: v.prefix}
}

// HasPrefix asserts the pith, as a string, begins with prefix.
func HasPrefix(prefix string) prefixValidator {
	return prefixValidator{id: "pephintPrefix" + sanitizeIdent(prefix), prefix: prefix}
}

// sanitizeIdent maps s to a valid Go identifier fragment, keeping only
// ASCII letters and digits and replacing everything else with an
// underscore, so a minted id built from arbitrary text (a literal prefix,
// a function name) is always safe to splice into generated source.
func sanitizeIdent(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' {
			return r
		}
		return '_'
	}, s)
}

// funcValidator is the escape hatch for a predicate that does not fit any
// of the templated validators above (beartype's general Is[lambda] case).
// Unlike the others, its bound value is the predicate closure itself, so
// genfile.Render cannot express it as a Go literal and fails unless the
// closure is trivial enough for cmd/pephintgen's -inline-validators mode
// to inline its body directly.
type funcValidator struct {
	id       string
	fn       any
	typeName string
}

func (v funcValidator) ID() string { return v.id }

func (v funcValidator) Template() string {
	return fmt.Sprintf("%s.(func(%s) bool)({obj}.(%s))", v.id, v.typeName, v.typeName)
}

func (v funcValidator) Bindings() map[string]any {
	return map[string]any{v.id: v.fn}
}

// Func wraps an arbitrary predicate as a validator. fn is named by its
// compiled function name so two calls passing the same function mint the
// same id (dedup across an aux scope matches how comparisonValidator's id
// embeds its operand); an anonymous closure instead mints a name derived
// from runtime.FuncForPC, which is stable for a given build but not
// guaranteed stable across rebuilds — acceptable since the id only needs
// to be stable within one generation run.
func Func[T any](fn func(T) bool) funcValidator {
	name := funcName(fn)
	var zero T
	return funcValidator{
		id:       "pephintFunc" + sanitizeIdent(name),
		fn:       fn,
		typeName: fmt.Sprintf("%T", zero),
	}
}

func funcName(fn any) string {
	pc := reflect.ValueOf(fn).Pointer()
	full := runtime.FuncForPC(pc).Name()
	if i := strings.LastIndex(full, "."); i >= 0 {
		full = full[i+1:]
	}
	return strings.TrimSuffix(full, "-fm")
}
