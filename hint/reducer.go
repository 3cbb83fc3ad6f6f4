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

// The sanitizer (a reduction pass the BFS driver runs on every dequeued
// hint, the root included; idempotent on already-canonical hints) lives in its own
// package, reduce, so it can evolve independently of the BFS driver. hint
// cannot import reduce directly — reduce needs hint's types, and an import
// back would cycle — so reduce registers itself here the same way
// database/sql drivers or image.RegisterFormat register themselves: call
// SetSanitizer from an init() func after blank-importing the package that
// defines it.
var sanitize func(Hint) Hint = func(h Hint) Hint { return h }

// SetSanitizer installs the canonicalization pass the BFS driver runs on
// every dequeued hint, the root included, before classifying it. Intended to be called from
// package reduce's init(); a test may also call it to exercise a BFS that
// never sees canonicalization-dependent shapes.
func SetSanitizer(fn func(Hint) Hint) {
	if fn == nil {
		sanitize = func(h Hint) Hint { return h }
		return
	}
	sanitize = fn
}
