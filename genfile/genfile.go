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

// Package genfile is the external collaborator spec.md §6 calls out as out
// of the core's contract: it loads a Go package, finds functions whose doc
// comment carries a "//pephint:hint <expr>" marker, runs each marked hint
// expression through hint.Generate, and emits one sibling
// check_<Func>_pephint.go file holding one guard function per marker.
// Grounded directly on tools/jitgen/main.go's package-load/AST-scan/patch
// shape, generalized from "patch a JIT emitter field in place" to "emit a
// new file alongside the source".
package genfile

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/token"
	"reflect"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/launix-de/pephint/hint"
	_ "github.com/launix-de/pephint/reduce"
)

// Marker is the comment prefix genfile scans for, attached directly above
// a func declaration: "//pephint:hint <Go expression evaluating to a Hint>".
const Marker = "//pephint:hint "

// Target is one marked function genfile found.
type Target struct {
	FuncName  string
	HintExpr  string
	Pos       token.Position
}

// Load reads pkgDir (a directory import path, "./..."-style patterns are
// not supported — callers loop over directories themselves, matching
// jitgen's one-directory-per-invocation shape) and returns every marked
// target across its files.
func Load(pkgDir string) (*packages.Package, []Target, error) {
	cfg := &packages.Config{
		Mode: packages.NeedFiles | packages.NeedSyntax | packages.NeedTypes |
			packages.NeedTypesInfo | packages.NeedDeps | packages.NeedImports | packages.NeedName,
	}
	pkgs, err := packages.Load(cfg, pkgDir)
	if err != nil {
		return nil, nil, fmt.Errorf("genfile: failed to load package: %w", err)
	}
	if len(pkgs) == 0 {
		return nil, nil, fmt.Errorf("genfile: no packages found at %s", pkgDir)
	}
	pkg := pkgs[0]
	if len(pkg.Errors) > 0 {
		return nil, nil, fmt.Errorf("genfile: %s: %v", pkgDir, pkg.Errors[0])
	}

	var targets []Target
	for _, astFile := range pkg.Syntax {
		targets = append(targets, collectTargets(pkg.Fset, astFile)...)
	}
	return pkg, targets, nil
}

func collectTargets(fset *token.FileSet, f *ast.File) []Target {
	var out []Target
	ast.Inspect(f, func(n ast.Node) bool {
		decl, ok := n.(*ast.FuncDecl)
		if !ok || decl.Doc == nil {
			return true
		}
		for _, c := range decl.Doc.List {
			if expr, ok := strings.CutPrefix(c.Text, Marker); ok {
				out = append(out, Target{
					FuncName: decl.Name.Name,
					HintExpr: strings.TrimSpace(expr),
					Pos:      fset.Position(decl.Pos()),
				})
			}
		}
		return true
	})
	return out
}

// Render generates a guard function for h and returns it formatted as a
// standalone .go source string ready to write to a _pephint.go file.
// funcName names the guard ("CheckFoo" for target "Foo"). Render runs
// inside a driver process that has h's aux-scope values live in memory
// (see BuildDriverSource) — it converts each one to a Go literal so the
// emitted file has no runtime dependency on that process, which is why an
// aux binding that can't be re-expressed as source (an unnamed struct
// type, a closure value) is reported as an error rather than silently
// skipped: the file this produces must compile and run on its own.
func Render(packageName, funcName string, h hint.Hint) (string, error) {
	code, aux, forwardRefs, err := hint.Generate(h)
	if err != nil {
		return "", fmt.Errorf("genfile: %s: %w", funcName, err)
	}

	imports := map[string]bool{"github.com/launix-de/pephint/runtimecheck": true}
	if strings.Contains(code, "reflect.") {
		imports["reflect"] = true
	}
	if strings.Contains(code, "strings.") {
		imports["strings"] = true
	}

	var decls bytes.Buffer
	for _, name := range aux.Names() {
		v, _ := aux.Value(name)
		if activeInliner != nil {
			if rv := reflect.ValueOf(v); rv.IsValid() && rv.Kind() == reflect.Func {
				if expr, ok := activeInliner(v); ok {
					code = inlineCall(code, name, expr)
					continue
				}
			}
		}
		collectTypeImports(v, imports)
		lit, ok := literalOf(v)
		if !ok {
			return "", fmt.Errorf("genfile: %s: auxiliary binding %s (%T) has no static Go literal form; cmd/pephintgen -inline-validators can inline it if it is a trivial boolean predicate", funcName, name, v)
		}
		fmt.Fprintf(&decls, "var %s any = %s\n", name, lit)
	}

	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by pephintgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&b, "package %s\n\n", packageName)
	b.WriteString("import (\n")
	for path := range imports {
		fmt.Fprintf(&b, "\t%q\n", path)
	}
	b.WriteString(")\n\n")

	if len(forwardRefs) > 0 {
		fmt.Fprintf(&b, "// %s references forward names not resolvable at generation time:\n", funcName)
		for _, name := range forwardRefs {
			fmt.Fprintf(&b, "//   - %s\n", name)
		}
	}

	b.Write(decls.Bytes())
	fmt.Fprintf(&b, "\nfunc %s(pith any) bool {\n\treturn %s\n}\n", funcName, code)

	formatted, err := format.Source(b.Bytes())
	if err != nil {
		return "", fmt.Errorf("genfile: %s: formatting generated source: %w", funcName, err)
	}
	return string(formatted), nil
}

// literalOf converts an aux-bound value into Go source text that
// reconstructs it. Named types round-trip via reflect.TypeOf + a
// zero-value cast; built-in comparable scalars round-trip via %#v;
// everything else is reported as non-literalizable.
func literalOf(v any) (string, bool) {
	if t, ok := v.(reflect.Type); ok {
		return typeLiteral(t), t.PkgPath() != "" || isPrimitiveKind(t.Kind())
	}
	if ts, ok := v.([]reflect.Type); ok {
		parts := make([]string, len(ts))
		for i, t := range ts {
			lit, ok := literalOf(t)
			if !ok {
				return "", false
			}
			parts[i] = lit
		}
		return "[]reflect.Type{" + strings.Join(parts, ", ") + "}", true
	}
	switch v.(type) {
	case bool, int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64, string:
		return fmt.Sprintf("%#v", v), true
	case nil:
		return "nil", true
	}
	return "", false
}

func isPrimitiveKind(k reflect.Kind) bool {
	switch k {
	case reflect.Bool, reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}

// typeLiteral spells t as a Go expression. Named types are referenced via
// the last path segment of their import path as the package alias — this
// assumes no two bound types share a last segment with different full
// paths; two such types produce clashing aliases (a full solution needs an
// import-alias table threaded from Render's caller, which cmd/pephintgen's
// single-package scope never needs).
func typeLiteral(t reflect.Type) string {
	if t.PkgPath() == "" {
		return fmt.Sprintf("reflect.TypeOf((*%s)(nil)).Elem()", t.String())
	}
	alias := t.PkgPath()
	if i := strings.LastIndex(alias, "/"); i >= 0 {
		alias = alias[i+1:]
	}
	return fmt.Sprintf("reflect.TypeOf((*%s.%s)(nil)).Elem()", alias, t.Name())
}

// collectTypeImports registers the import paths needed to spell v's
// type(s) as source, so Render's import block includes them.
func collectTypeImports(v any, imports map[string]bool) {
	switch x := v.(type) {
	case reflect.Type:
		if x.PkgPath() != "" {
			imports[x.PkgPath()] = true
		}
	case []reflect.Type:
		for _, t := range x {
			collectTypeImports(t, imports)
		}
	}
}
