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

import "strings"

// The template registry (spec §4.A) is a flat, immutable catalog of named
// Go source fragments, each with {named} slots. It is opaque to everything
// except render(): handlers fill slots, they never parse or branch on a
// template's text. A text/template.Template was considered and rejected
// here — see DESIGN.md — in favor of the same manual fmt.Sprintf/
// strings.Replace approach tools/jitgen already uses to build Go source.
var templates = map[string]string{
	// Instance / Subclass are leaves: one runtime-support call, no
	// children, no prefix/suffix pairing.
	"Instance": "runtimecheck.IsInstance({pith_curr_expr}, {hint_curr_expr})",
	"Subclass": "runtimecheck.IsSubclass({pith_curr_expr}, {hint_curr_expr})",

	"Union.prefix":       "",
	"Union.child_nonpep": "runtimecheck.IsInstanceAny({pith_curr_expr}, {hint_curr_expr})",
	"Union.child_pep":    "{hint_child_placeholder}",
	"Union.suffix":       "",

	"Sequence.args1": "" +
		"(func() bool {\n" +
		"{indent_curr}\tseq := {pith_curr_expr}\n" +
		"{indent_curr}\tif !runtimecheck.IsInstance(seq, {hint_curr_expr}) {\n{indent_curr}\t\treturn false\n{indent_curr}\t}\n" +
		"{indent_curr}\trv := reflect.ValueOf(seq)\n" +
		"{indent_curr}\tif rv.Len() == 0 {\n{indent_curr}\t\treturn true\n{indent_curr}\t}\n" +
		"{indent_curr}\t{pith_curr_var_name} := rv.Index(runtimecheck.RandIndex(rv.Len(), {bits_fn_expr})).Interface()\n" +
		"{indent_curr}\treturn {hint_child_placeholder}\n" +
		"{indent_curr}}())",

	"Tuple.fixed.empty":  "(runtimecheck.IsInstance({pith_curr_expr}, {hint_curr_expr}) && reflect.ValueOf({pith_curr_expr}).Len() == 0)",
	"Tuple.fixed.prefix": "" +
		"(func() bool {\n" +
		"{indent_curr}\ttup := {pith_curr_expr}\n" +
		"{indent_curr}\tif !runtimecheck.IsInstance(tup, {hint_curr_expr}) {\n{indent_curr}\t\treturn false\n{indent_curr}\t}\n" +
		"{indent_curr}\trv := reflect.ValueOf(tup)\n",
	"Tuple.fixed.len": "{indent_curr}\tif rv.Len() != {hint_childs_len} {\n{indent_curr}\t\treturn false\n{indent_curr}\t}\n",
	"Tuple.fixed.child": "" +
		"{indent_curr}\t{pith_curr_var_name} := rv.Index({pith_child_index}).Interface()\n" +
		"{indent_curr}\tif !({hint_child_placeholder}) {\n{indent_curr}\t\treturn false\n{indent_curr}\t}\n",
	"Tuple.fixed.suffix": "{indent_curr}\treturn true\n{indent_curr}}())",

	"Annotated.prefix": "" +
		"(func() bool {\n" +
		"{indent_curr}\t{pith_curr_var_name} := {pith_curr_assign_expr}\n" +
		"{indent_curr}\tif !({hint_child_placeholder}) {\n{indent_curr}\t\treturn false\n{indent_curr}\t}\n",
	"Annotated.child":  "{indent_curr}\tif !({validator_expr}) {\n{indent_curr}\t\treturn false\n{indent_curr}\t}\n",
	"Annotated.suffix": "{indent_curr}\treturn true\n{indent_curr}}())",

	"Generic.prefix": "" +
		"(func() bool {\n" +
		"{indent_curr}\t{pith_curr_var_name} := {pith_curr_assign_expr}\n" +
		"{indent_curr}\tif !runtimecheck.IsInstance({pith_curr_var_name}, {hint_curr_expr}) {\n{indent_curr}\t\treturn false\n{indent_curr}\t}\n",
	"Generic.child":  "{indent_curr}\tif !({hint_child_placeholder}) {\n{indent_curr}\t\treturn false\n{indent_curr}\t}\n",
	"Generic.suffix": "{indent_curr}\treturn true\n{indent_curr}}())",

	"Literal.prefix": "(runtimecheck.IsInstanceAny({pith_curr_expr}, {hint_curr_expr}) && (",
	"Literal.child":  "reflect.DeepEqual({pith_curr_expr}, {literal_value_expr})",
	"Literal.suffix": "))",
}

// render fills {slot} placeholders in a named template. Unknown slots are
// left untouched on purpose: a typo in a handler surfaces as a compile
// error in the generated code (caught by tests), the same "fail loudly"
// philosophy as the placeholder tokens themselves.
func render(name string, slots map[string]string) string {
	tmpl, ok := templates[name]
	if !ok {
		panic("pephint: internal error: unknown template " + name)
	}
	out := tmpl
	for k, v := range slots {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

// joinBoolean joins non-empty clauses with op ("||" or "&&"), matching
// spec §4.F's "strip the trailing operator" templates without the
// string-trimming workaround that technique exists to avoid: building the
// joined form directly never emits a dangling operator in the first place.
func joinBoolean(clauses []string, op string) string {
	nonEmpty := clauses[:0:0]
	for _, c := range clauses {
		if c != "" {
			nonEmpty = append(nonEmpty, c)
		}
	}
	if len(nonEmpty) == 0 {
		return "true"
	}
	return strings.Join(nonEmpty, " "+op+" ")
}
