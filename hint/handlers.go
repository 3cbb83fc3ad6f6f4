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
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"
)

// dispatch is the sign-dispatched switch at the heart of the BFS driver
// (spec §4.E step 5 / §4.F). Every branch either returns a finished code
// snippet for j's placeholder, or enqueues children and returns a snippet
// that still embeds their (not-yet-substituted) placeholders.
func dispatch(g *genState, q *workQueue, j *job) (string, error) {
	if isShallow(j.hint) {
		return handleInstance(g, j)
	}
	switch signOf(j.hint) {
	case SignForwardRef:
		return handleForwardRef(g, j)
	case SignUnion:
		return handleUnion(g, q, j)
	case SignSequenceArgs1:
		return handleSequence(g, q, j)
	case SignTuple:
		return handleTuple(g, q, j)
	case SignAnnotated:
		return handleAnnotated(g, q, j)
	case SignSubclass:
		return handleSubclass(g, j)
	case SignGeneric:
		return handleGeneric(g, q, j)
	case SignLiteral:
		return handleLiteral(g, j)
	default:
		return "", errf(HintNonCompliant, "InternalSignUnhandled: sign %s has no handler", signOf(j.hint))
	}
}

// handleInstance covers both the shallow fast path and the plain-class
// non-PEP branch at any BFS depth (spec §4.E steps 4-5): both reduce to the
// same Instance template.
func handleInstance(g *genState, j *job) (string, error) {
	inst, ok := j.hint.(InstanceHint)
	if !ok {
		return "", errf(HintNonCompliant, "internal error: handleInstance called with %s", Describe(j.hint))
	}
	if inst.Type == nil {
		return "", errf(HintIgnorablePresent, "ignorable instance hint reached handleInstance")
	}
	typeExpr := g.aux.BindType(inst.Type)
	return render("Instance", map[string]string{
		"pith_curr_expr": j.pithExpr,
		"hint_curr_expr": typeExpr,
	}), nil
}

func validateForwardRefName(name string) error {
	n := name
	if n != "" && n[0] == '/' {
		n = n[1:]
	}
	if n == "" {
		return errf(ForwardRefMalformed, "forward reference %q has no basename", name)
	}
	for _, part := range strings.Split(n, ".") {
		if part == "" {
			return errf(ForwardRefMalformed, "forward reference %q has an empty path segment", name)
		}
		for i, r := range part {
			switch {
			case i == 0 && !(unicode.IsLetter(r) || r == '_'):
				return errf(ForwardRefMalformed, "forward reference %q: %q starts with %q", name, part, r)
			case i > 0 && !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'):
				return errf(ForwardRefMalformed, "forward reference %q: %q contains %q", name, part, r)
			}
		}
	}
	return nil
}

// bindForwardRef registers the forward-reference registry (once, lazily)
// and, for a relative name, records its basename so the caller can resolve
// it before the wrapper runs (spec §4.B bind_forwardref).
func (g *genState) bindForwardRef(ref ForwardRefHint) (string, error) {
	if err := validateForwardRefName(ref.Name); err != nil {
		return "", err
	}
	basename := ref.basename()
	regExpr := g.aux.bindKeyed("forwardRefRegistry", "forwardRefRegistry", g.opts.forwardRefRegistry)
	if ref.isRelative() {
		g.addForwardRefBasename(basename)
	}
	return fmt.Sprintf("runtimecheck.MustResolveForwardRef(%s, %q)", regExpr, basename), nil
}

func handleForwardRef(g *genState, j *job) (string, error) {
	ref, ok := j.hint.(ForwardRefHint)
	if !ok {
		return "", errf(HintNonCompliant, "internal error: handleForwardRef called with %s", Describe(j.hint))
	}
	expr, err := g.bindForwardRef(ref)
	if err != nil {
		return "", err
	}
	return render("Instance", map[string]string{
		"pith_curr_expr": j.pithExpr,
		"hint_curr_expr": expr,
	}), nil
}

// handleUnion implements spec §4.F "Union". Every job's pith expression is
// already a cheap, side-effect-free identifier by construction (the root
// parameter, or a variable some parent handler's prefix template already
// bound with `:=`) — see generate.go's genState and Open Question (ii) in
// SPEC_FULL.md — so, unlike the original's walrus-based capture, nothing
// here needs to rebind the pith before reusing it across the non-PEP
// clause and every PEP child: reading an identifier twice costs nothing.
func handleUnion(g *genState, q *workQueue, j *job) (string, error) {
	u, ok := j.hint.(UnionHint)
	if !ok {
		return "", errf(HintNonCompliant, "internal error: handleUnion called with %s", Describe(j.hint))
	}
	if len(u.Children) == 0 {
		return "", errf(HintNonCompliant, "Union hint must have at least one child")
	}

	part := acquirePartition()
	defer releasePartition(part)
	for _, c := range u.Children {
		if isIgnorable(c) {
			return "", errf(HintIgnorablePresent, "ignorable member inside Union")
		}
		if inst, ok := c.(InstanceHint); ok {
			part.nonpep = append(part.nonpep, inst.Type)
		} else {
			part.pep = append(part.pep, c)
		}
	}

	var clauses []string
	if len(part.nonpep) > 0 {
		typesExpr := g.aux.BindTypes(part.nonpep)
		clauses = append(clauses, render("Union.child_nonpep", map[string]string{
			"pith_curr_expr": j.pithExpr,
			"hint_curr_expr": typesExpr,
		}))
	}
	for _, child := range part.pep {
		childPH, err := g.enqueue(q, child, j.pithExpr, j.pithExpr, true, j.indent)
		if err != nil {
			return "", err
		}
		clauses = append(clauses, render("Union.child_pep", map[string]string{
			"hint_child_placeholder": childPH,
		}))
	}
	return "(" + joinBoolean(clauses, "||") + ")", nil
}

func handleSequence(g *genState, q *workQueue, j *job) (string, error) {
	seq, ok := j.hint.(SeqHint)
	if !ok {
		return "", errf(HintNonCompliant, "internal error: handleSequence called with %s", Describe(j.hint))
	}
	if isIgnorable(seq.Elem) {
		// shallow-only fallback (spec §4.F "Sequence ... If the single
		// child hint is ignorable, fall back to a shallow-only Instance").
		typeExpr := g.aux.BindType(seq.Origin)
		return render("Instance", map[string]string{
			"pith_curr_expr": j.pithExpr,
			"hint_curr_expr": typeExpr,
		}), nil
	}

	originExpr := g.aux.BindType(seq.Origin)
	g.usesRandomBits = true
	bitsExpr := g.aux.bindKeyed("bits", bitsAuxName, bitsSource())

	elemVar := g.mintPithVar()
	childIndent := j.indent + "\t"
	childPH, err := g.enqueue(q, seq.Elem, elemVar, elemVar, true, childIndent)
	if err != nil {
		return "", err
	}

	return render("Sequence.args1", map[string]string{
		"pith_curr_expr":         j.pithExpr,
		"hint_curr_expr":         originExpr,
		"pith_curr_var_name":     elemVar,
		"indent_curr":            j.indent,
		"bits_fn_expr":           bitsExpr,
		"hint_child_placeholder": childPH,
	}), nil
}

func handleTuple(g *genState, q *workQueue, j *job) (string, error) {
	t, ok := j.hint.(TupleHint)
	if !ok {
		return "", errf(HintNonCompliant, "internal error: handleTuple called with %s", Describe(j.hint))
	}
	typeExpr := g.aux.BindType(t.Origin)
	if isEmptyFixedTuple(t) {
		return render("Tuple.fixed.empty", map[string]string{
			"pith_curr_expr": j.pithExpr,
			"hint_curr_expr": typeExpr,
		}), nil
	}

	var b strings.Builder
	b.WriteString(render("Tuple.fixed.prefix", map[string]string{
		"pith_curr_expr": j.pithExpr,
		"hint_curr_expr": typeExpr,
		"indent_curr":    j.indent,
	}))
	b.WriteString(render("Tuple.fixed.len", map[string]string{
		"indent_curr":     j.indent,
		"hint_childs_len": strconv.Itoa(len(t.Elems)),
	}))

	childIndent := j.indent + "\t"
	for i, elem := range t.Elems {
		if isIgnorable(elem) {
			continue
		}
		posVar := g.mintPithVar()
		childPH, err := g.enqueue(q, elem, posVar, posVar, true, childIndent)
		if err != nil {
			return "", err
		}
		b.WriteString(render("Tuple.fixed.child", map[string]string{
			"indent_curr":             j.indent,
			"pith_curr_var_name":      posVar,
			"pith_child_index":        strconv.Itoa(i),
			"hint_child_placeholder":  childPH,
		}))
	}
	b.WriteString(render("Tuple.fixed.suffix", map[string]string{"indent_curr": j.indent}))
	return b.String(), nil
}

func bindValidator(g *genState, v Validator, objVar, indent string) (string, error) {
	for name, val := range v.Bindings() {
		if _, err := g.aux.BindNamed(name, val); err != nil {
			return "", errf(DuplicateName, "validator %s: %v", v.ID(), err)
		}
	}
	expr := v.Template()
	expr = strings.ReplaceAll(expr, "{obj}", objVar)
	expr = strings.ReplaceAll(expr, "{indent}", indent)
	return expr, nil
}

func handleAnnotated(g *genState, q *workQueue, j *job) (string, error) {
	a, ok := j.hint.(AnnotatedHint)
	if !ok {
		return "", errf(HintNonCompliant, "internal error: handleAnnotated called with %s", Describe(j.hint))
	}
	if len(a.Validators) == 0 {
		return "", errf(MixedAnnotatedMetadata, "Annotated hint has no validators")
	}
	for i, v := range a.Validators {
		if v == nil {
			return "", errf(MixedAnnotatedMetadata, "annotated metadata at position %d is not a validator", i+1)
		}
	}

	baseVar := g.mintPithVar()
	childIndent := j.indent + "\t"

	var b strings.Builder
	if isIgnorable(a.Base) {
		// supplemented feature: elide the isinstance shell entirely when
		// the underlying hint is ignorable (see SPEC_FULL.md, supplemented
		// feature 1).
		b.WriteString("(func() bool {\n")
		fmt.Fprintf(&b, "%s\t%s := %s\n", j.indent, baseVar, j.pithExpr)
		fmt.Fprintf(&b, "%s\t_ = %s\n", j.indent, baseVar)
	} else {
		childPH, err := g.enqueue(q, a.Base, baseVar, baseVar, true, childIndent)
		if err != nil {
			return "", err
		}
		b.WriteString(render("Annotated.prefix", map[string]string{
			"indent_curr":            j.indent,
			"pith_curr_var_name":     baseVar,
			"pith_curr_assign_expr":  j.pithExpr,
			"hint_child_placeholder": childPH,
		}))
	}

	for _, v := range a.Validators {
		expr, err := bindValidator(g, v, baseVar, childIndent)
		if err != nil {
			return "", err
		}
		b.WriteString(render("Annotated.child", map[string]string{
			"indent_curr":    j.indent,
			"validator_expr": expr,
		}))
	}
	b.WriteString(render("Annotated.suffix", map[string]string{"indent_curr": j.indent}))
	return b.String(), nil
}

func handleSubclass(g *genState, j *job) (string, error) {
	s, ok := j.hint.(SubclassHint)
	if !ok {
		return "", errf(HintNonCompliant, "internal error: handleSubclass called with %s", Describe(j.hint))
	}
	var expr string
	switch sup := s.Super.(type) {
	case InstanceHint:
		expr = g.aux.BindType(sup.Type)
	case ForwardRefHint:
		e, err := g.bindForwardRef(sup)
		if err != nil {
			return "", err
		}
		expr = e
	case UnionHint:
		types := make([]reflect.Type, 0, len(sup.Children))
		for _, c := range sup.Children {
			inst, ok := c.(InstanceHint)
			if !ok {
				return "", errf(HintNonCompliant, "subclass-of superclass tuple must contain only plain classes")
			}
			types = append(types, inst.Type)
		}
		expr = g.aux.BindTypes(types)
	default:
		return "", errf(HintNonCompliant, "subclass-of superclass must be a class, tuple of classes, or forward reference, got %s", Describe(sup))
	}
	return render("Subclass", map[string]string{
		"pith_curr_expr": j.pithExpr,
		"hint_curr_expr": expr,
	}), nil
}

func handleGeneric(g *genState, q *workQueue, j *job) (string, error) {
	gh, ok := j.hint.(GenericHint)
	if !ok {
		return "", errf(HintNonCompliant, "internal error: handleGeneric called with %s", Describe(j.hint))
	}
	originExpr := g.aux.BindType(gh.Origin)
	baseVar := g.mintPithVar()
	childIndent := j.indent + "\t"

	var b strings.Builder
	b.WriteString(render("Generic.prefix", map[string]string{
		"indent_curr":           j.indent,
		"pith_curr_var_name":    baseVar,
		"pith_curr_assign_expr": j.pithExpr,
		"hint_curr_expr":        originExpr,
	}))
	for _, base := range gh.Bases {
		if _, ok := base.(InstanceHint); ok {
			continue // already covered by the prefix instance check
		}
		if isIgnorable(base) {
			continue
		}
		childPH, err := g.enqueue(q, base, baseVar, baseVar, true, childIndent)
		if err != nil {
			return "", err
		}
		b.WriteString(render("Generic.child", map[string]string{
			"indent_curr":             j.indent,
			"hint_child_placeholder":  childPH,
		}))
	}
	b.WriteString(render("Generic.suffix", map[string]string{"indent_curr": j.indent}))
	return b.String(), nil
}

func handleLiteral(g *genState, j *job) (string, error) {
	lit, ok := j.hint.(LiteralHint)
	if !ok {
		return "", errf(HintNonCompliant, "internal error: handleLiteral called with %s", Describe(j.hint))
	}
	if len(lit.Values) == 0 {
		return "", errf(HintNonCompliant, "Literal hint must have at least one value")
	}

	var types []reflect.Type
	seen := map[reflect.Type]bool{}
	hasNil := false
	for _, v := range lit.Values {
		if v == nil {
			hasNil = true
			continue
		}
		t := reflect.TypeOf(v)
		if !seen[t] {
			seen[t] = true
			types = append(types, t)
		}
	}

	clauses := make([]string, 0, len(lit.Values))
	for _, v := range lit.Values {
		if v == nil {
			clauses = append(clauses, "("+j.pithExpr+" == nil)")
			continue
		}
		valExpr := g.aux.BindValue(v)
		clauses = append(clauses, render("Literal.child", map[string]string{
			"pith_curr_expr":     j.pithExpr,
			"literal_value_expr": valExpr,
		}))
	}
	body := joinBoolean(clauses, "||")

	// the pre-filter is a pure optimization (reflect.DeepEqual never
	// panics on a type mismatch) so it is skipped whenever nil is among
	// the literal values, since nil has no reflect.Type to filter on.
	if hasNil || len(types) == 0 {
		return "(" + body + ")", nil
	}
	typesExpr := g.aux.BindTypes(types)
	prefix := render("Literal.prefix", map[string]string{
		"pith_curr_expr": j.pithExpr,
		"hint_curr_expr": typesExpr,
	})
	return prefix + body + render("Literal.suffix", nil), nil
}
