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
	"strconv"
	"strings"
)

// Placeholder tokens bracket a monotonic decimal index with a prefix/suffix
// chosen so that:
//   - no token is a substring of any other (the suffix is not a decimal
//     digit, so "«ph7»" never matches inside "«ph70»"),
//   - the token cannot parse as Go source (the guillemets are not valid in
//     an identifier, a string literal delimiter, or an operator), so an
//     incomplete substitution fails loudly instead of silently compiling.
const (
	placeholderPrefix = "«pephint#"
	placeholderSuffix = "»"
)

func placeholderToken(index int) string {
	return placeholderPrefix + strconv.Itoa(index) + placeholderSuffix
}

// placeholderIndex is the inverse of placeholderToken, used only by tests
// that assert the index is strictly increasing with enqueue order.
func placeholderIndex(tok string) (int, bool) {
	if !strings.HasPrefix(tok, placeholderPrefix) || !strings.HasSuffix(tok, placeholderSuffix) {
		return 0, false
	}
	mid := tok[len(placeholderPrefix) : len(tok)-len(placeholderSuffix)]
	n, err := strconv.Atoi(mid)
	if err != nil {
		return 0, false
	}
	return n, true
}

// substituteOnce replaces tok in code with repl exactly once (spec §4.G:
// "Substitution is whole-string replace-once"). It reports whether tok was
// actually present, so the caller can detect a missing placeholder — an
// internal invariant violation — instead of silently no-oping.
func substituteOnce(code, tok, repl string) (string, bool) {
	i := strings.Index(code, tok)
	if i < 0 {
		return code, false
	}
	return code[:i] + repl + code[i+len(tok):], true
}

func containsPlaceholder(code string) bool {
	return strings.Contains(code, placeholderPrefix)
}
