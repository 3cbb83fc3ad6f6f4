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
	"bytes"
	"fmt"
	"go/format"
)

// BuildDriverSource synthesizes a throwaway main package that imports
// importPath (the package being scanned for markers, so its hint-expr text
// can reference its own exported identifiers), calls Render once per
// target, and writes each result to its own _pephint.go file next to the
// source. cmd/pephintgen compiles and runs this with `go run`, then
// deletes it — Go has no runtime eval, so constructing a hint.Hint value
// from source text written by the package's own author requires actually
// compiling that text once, the same reason tools like `ent` and protobuf
// codegen plugins generate and run a short-lived driver program instead of
// interpreting user expressions directly.
//
// When inlineValidators is set, the driver also builds SSA for the
// subject package (via genfile.LoadSSA) and installs a genfile.Inliner
// before calling Render, so a validate.Func closure with a trivial
// single-basic-block body is spliced into the generated code directly
// instead of failing Render's literalizability check.
func BuildDriverSource(importPath, outDir string, targets []Target, inlineValidators bool) (string, error) {
	var b bytes.Buffer
	fmt.Fprintf(&b, "// Code generated by pephintgen. DO NOT EDIT.\n\n")
	b.WriteString("package main\n\n")
	b.WriteString("import (\n")
	b.WriteString("\t\"fmt\"\n")
	b.WriteString("\t\"os\"\n")
	b.WriteString("\t\"path/filepath\"\n\n")
	b.WriteString("\t\"github.com/launix-de/pephint/genfile\"\n")
	b.WriteString("\t\"github.com/launix-de/pephint/hint\"\n")
	fmt.Fprintf(&b, "\tsubject %q\n", importPath)
	b.WriteString(")\n\n")
	b.WriteString("// subject is referenced by the hint expressions generated below\n")
	b.WriteString("// (e.g. hint.Instance(reflect.TypeFor[subject.Foo]())); goimports would\n")
	b.WriteString("// drop this import if no target used it, so pephintgen never emits an\n")
	b.WriteString("// empty driver.\n\n")

	b.WriteString("func main() {\n")
	if inlineValidators {
		b.WriteString("\t_, ssaFns, err := genfile.LoadSSA(\".\")\n")
		b.WriteString("\tif err != nil {\n\t\tfmt.Fprintln(os.Stderr, err)\n\t\tos.Exit(1)\n\t}\n")
		b.WriteString("\tgenfile.SetInliner(genfile.NewInliner(ssaFns))\n\n")
	}
	for _, t := range targets {
		fmt.Fprintf(&b, "\t{\n")
		fmt.Fprintf(&b, "\t\th := hint.Hint(%s)\n", t.HintExpr)
		fmt.Fprintf(&b, "\t\tsrc, err := genfile.Render(%q, %q, h)\n", "subject", "Check"+t.FuncName)
		fmt.Fprintf(&b, "\t\tif err != nil {\n\t\t\tfmt.Fprintln(os.Stderr, err)\n\t\t\tos.Exit(1)\n\t\t}\n")
		fmt.Fprintf(&b, "\t\tpath := filepath.Join(%q, %q)\n", outDir, "check_"+t.FuncName+"_pephint.go")
		fmt.Fprintf(&b, "\t\tif err := os.WriteFile(path, []byte(src), 0o644); err != nil {\n\t\t\tfmt.Fprintln(os.Stderr, err)\n\t\t\tos.Exit(1)\n\t\t}\n")
		fmt.Fprintf(&b, "\t}\n")
	}
	b.WriteString("}\n")

	formatted, err := format.Source(b.Bytes())
	if err != nil {
		return "", fmt.Errorf("genfile: formatting driver source: %w", err)
	}
	return string(formatted), nil
}
