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
	"io"
	"os"
	"sync"
)

// warnWriter mirrors the teacher's trace-file design (scm.SetTrace /
// scm.TracePrint): a single redirectable sink, not a logging framework.
// DeprecatedHint (spec §7) is delivered here, never as an error, so
// generation can proceed after a deprecated hint is seen.
var (
	warnMu sync.Mutex
	warnW  io.Writer = os.Stderr
)

// SetWarnWriter redirects deprecation warnings. Passing nil silences them.
func SetWarnWriter(w io.Writer) {
	warnMu.Lock()
	defer warnMu.Unlock()
	if w == nil {
		warnW = io.Discard
		return
	}
	warnW = w
}

func warnDeprecated(reason string, described string) {
	warnMu.Lock()
	w := warnW
	warnMu.Unlock()
	if w == nil {
		return
	}
	fmt.Fprintf(w, "pephint: deprecated hint %s: %s\n", described, reason)
}
