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
	"strings"
)

// Describe renders a hint as a short human-readable label, used in error
// and deprecation-warning messages and by the root demo binary (SPEC_FULL.md
// supplemented feature 4: a minimal stand-in for beartype's exception-
// message humanization — not a subsystem in its own right, and never part
// of the generated code or its returned bindings).
func Describe(h Hint) string {
	switch v := h.(type) {
	case AnyHint:
		return "any"
	case InstanceHint:
		if v.Type == nil {
			return "any"
		}
		return v.Type.String()
	case ForwardRefHint:
		return "ref(" + v.Name + ")"
	case UnionHint:
		parts := make([]string, len(v.Children))
		for i, c := range v.Children {
			parts[i] = Describe(c)
		}
		return "(" + strings.Join(parts, " | ") + ")"
	case SeqHint:
		return fmt.Sprintf("%s[%s]", v.Origin, Describe(v.Elem))
	case TupleHint:
		parts := make([]string, len(v.Elems))
		for i, c := range v.Elems {
			parts[i] = Describe(c)
		}
		return fmt.Sprintf("tuple[%s]", strings.Join(parts, ", "))
	case AnnotatedHint:
		return fmt.Sprintf("Annotated[%s, %d validators]", Describe(v.Base), len(v.Validators))
	case SubclassHint:
		return "subclassOf(" + Describe(v.Super) + ")"
	case GenericHint:
		return fmt.Sprintf("%s<generic>", v.Origin)
	case LiteralHint:
		return fmt.Sprintf("Literal%v", v.Values)
	case UnsupportedHint:
		return "unsupported(" + v.Reason + ")"
	case DeprecatedHint:
		return Describe(v.Inner) + " (deprecated)"
	default:
		return "?"
	}
}
