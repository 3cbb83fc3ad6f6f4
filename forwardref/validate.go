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
package forwardref

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

// ValidateBasename reports whether name is a syntactically valid dotted Go
// identifier path once NFC-normalized. Go identifiers may contain arbitrary
// Unicode letters (unlike Python's ASCII-centric default), so two
// basenames differing only in composed vs. decomposed form (e.g. "é" as
// U+00E9 vs. "e"+U+0301) must be treated as the same pending reference —
// otherwise a caller could bind one form and a generated wrapper could ask
// for the other and never resolve.
func ValidateBasename(name string) (string, error) {
	normalized := norm.NFC.String(name)
	if normalized == "" {
		return "", fmt.Errorf("forward reference basename is empty")
	}
	for _, part := range strings.Split(normalized, ".") {
		if part == "" {
			return "", fmt.Errorf("forward reference %q has an empty path segment", name)
		}
		for i, r := range part {
			switch {
			case i == 0 && !(unicode.IsLetter(r) || r == '_'):
				return "", fmt.Errorf("forward reference %q: %q starts with %q", name, part, r)
			case i > 0 && !(unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'):
				return "", fmt.Errorf("forward reference %q: %q contains %q", name, part, r)
			}
		}
	}
	return normalized, nil
}
