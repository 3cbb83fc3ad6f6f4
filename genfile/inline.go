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
package genfile

import (
	"fmt"
	"go/token"
	"reflect"
	"regexp"
	"runtime"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

// Inliner attempts to re-express a validator closure bound into an aux
// scope as a direct Go boolean expression, so Render can splice it into
// the generated code instead of leaving a closure-typed aux binding that
// literalOf can never express as source. Returns ok=false to fall through
// to Render's normal literalizability error.
type Inliner func(fn any) (expr string, ok bool)

// activeInliner is nil by default: Render only tries to inline a
// closure-typed aux binding when cmd/pephintgen's -inline-validators mode
// installs one via SetInliner, the same driver-registration idiom
// hint.SetSanitizer uses.
var activeInliner Inliner

// SetInliner installs the SSA-backed inliner cmd/pephintgen's
// -inline-validators mode uses. Pass nil to restore the default (never
// inline, always require a static literal or fail).
func SetInliner(fn Inliner) { activeInliner = fn }

// LoadSSA builds whole-program SSA for pkgDir, the same
// ssautil.AllPackages-plus-prog.Build() shape tools/jitgen/main.go uses,
// and returns its functions indexed by their bare (unqualified) name for
// NewInliner to search.
func LoadSSA(pkgDir string) (*ssa.Program, map[string]*ssa.Function, error) {
	cfg := &packages.Config{
		Mode: packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes |
			packages.NeedTypesInfo | packages.NeedDeps | packages.NeedImports | packages.NeedName,
	}
	pkgs, err := packages.Load(cfg, pkgDir)
	if err != nil {
		return nil, nil, fmt.Errorf("genfile: failed to load package for SSA: %w", err)
	}
	prog, _ := ssautil.AllPackages(pkgs, 0)
	prog.Build()

	byName := map[string]*ssa.Function{}
	for fn := range ssautil.AllFunctions(prog) {
		if fn.Name() == "" {
			continue
		}
		byName[fn.Name()] = fn
	}
	return prog, byName, nil
}

// NewInliner returns an Inliner backed by fns (as returned by LoadSSA):
// given a bound closure, it resolves the closure's compiled function name,
// looks it up by its bare name, and tries to render its body as a single
// boolean expression via InlineTrivialValidator.
func NewInliner(fns map[string]*ssa.Function) Inliner {
	return func(v any) (string, bool) {
		rv := reflect.ValueOf(v)
		if !rv.IsValid() || rv.Kind() != reflect.Func {
			return "", false
		}
		fn, ok := fns[runtimeFuncBaseName(rv)]
		if !ok {
			return "", false
		}
		return InlineTrivialValidator(fn)
	}
}

// runtimeFuncBaseName strips rv's compiled function name down to its bare
// identifier (drop the package-path prefix runtime.FuncForPC reports, and
// the "-fm" suffix Go appends to a method value), matching the plain name
// ssa.Function.Name() returns for the same function.
func runtimeFuncBaseName(rv reflect.Value) string {
	full := runtime.FuncForPC(rv.Pointer()).Name()
	if i := strings.LastIndex(full, "."); i >= 0 {
		full = full[i+1:]
	}
	return strings.TrimSuffix(full, "-fm")
}

// InlineTrivialValidator attempts to render fn's body as a single Go
// boolean expression over its sole parameter (spelled "{obj}"), for
// splicing directly into generated code instead of calling out to a
// closure. It only succeeds for a single-basic-block function whose body
// is exactly "return <BinOp>" over the parameter and constants — the same
// *ssa.BinOp/*ssa.Const shape tools/jitgen's emitInstr handles for
// arithmetic operators, narrowed here to comparison operators since a
// validator returns bool. Anything more complex (branches, calls, loops)
// reports ok=false rather than attempting a partial inline.
func InlineTrivialValidator(fn *ssa.Function) (expr string, ok bool) {
	if fn == nil || len(fn.Blocks) != 1 || len(fn.Params) != 1 {
		return "", false
	}
	param := fn.Params[0]
	for _, instr := range fn.Blocks[0].Instrs {
		ret, isRet := instr.(*ssa.Return)
		if !isRet || len(ret.Results) != 1 {
			continue
		}
		binop, isBinOp := ret.Results[0].(*ssa.BinOp)
		if !isBinOp {
			return "", false
		}
		left, lok := inlineOperand(binop.X, param)
		right, rok := inlineOperand(binop.Y, param)
		op, opOK := comparisonOperator(binop.Op)
		if !lok || !rok || !opOK {
			return "", false
		}
		return fmt.Sprintf("%s %s %s", left, op, right), true
	}
	return "", false
}

func inlineOperand(v ssa.Value, param *ssa.Parameter) (string, bool) {
	switch x := v.(type) {
	case *ssa.Parameter:
		if x == param {
			return "{obj}", true
		}
	case *ssa.Const:
		return x.Value.String(), true
	}
	return "", false
}

func comparisonOperator(op token.Token) (string, bool) {
	switch op {
	case token.EQL, token.NEQ, token.LSS, token.LEQ, token.GTR, token.GEQ:
		return op.String(), true
	}
	return "", false
}

// inlineCall replaces every call to the closure bound under name (the
// shape funcValidator.Template emits: "name.(func(T) bool)(argExpr)") with
// expr, substituting "{obj}" in expr for the call's actual argument
// expression. The one-level-of-nested-parens character class matches a
// type assertion like "pith2.(int)" appearing as the argument.
func inlineCall(code, name, expr string) string {
	re := regexp.MustCompile(regexp.QuoteMeta(name) + `\.\(func\([^()]*\) bool\)\(((?:[^()]|\([^()]*\))*)\)`)
	return re.ReplaceAllStringFunc(code, func(m string) string {
		sub := re.FindStringSubmatch(m)
		if len(sub) < 2 {
			return m
		}
		return "(" + strings.ReplaceAll(expr, "{obj}", sub[1]) + ")"
	})
}
