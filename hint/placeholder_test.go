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

import "testing"

func TestPlaceholderTokenRoundtrip(t *testing.T) {
	for _, i := range []int{0, 1, 7, 70, 12345} {
		tok := placeholderToken(i)
		got, ok := placeholderIndex(tok)
		if !ok {
			t.Fatalf("placeholderIndex(%q): not recognized", tok)
		}
		if got != i {
			t.Fatalf("placeholderIndex(%q) = %d, want %d", tok, got, i)
		}
	}
}

func TestPlaceholderTokenNoSubstringCollision(t *testing.T) {
	short := placeholderToken(7)
	long := placeholderToken(70)
	if containsPlaceholder(long) != true {
		t.Fatalf("sanity: %q should contain a placeholder", long)
	}
	if i, ok := placeholderIndex(short); ok && i == 70 {
		t.Fatalf("token %q for index 7 was misparsed as index 70", short)
	}
	// the stronger property the doc comment promises: ph7's token text
	// never appears inside ph70's token text.
	if idx := indexOf(long, short); idx >= 0 {
		t.Fatalf("token %q unexpectedly appears inside %q", short, long)
	}
}

func indexOf(haystack, needle string) int {
	for i := 0; i+len(needle) <= len(haystack); i++ {
		if haystack[i:i+len(needle)] == needle {
			return i
		}
	}
	return -1
}

func TestSubstituteOnceReplacesExactlyOneOccurrence(t *testing.T) {
	tok := placeholderToken(3)
	code := tok + " and " + tok
	out, ok := substituteOnce(code, tok, "X")
	if !ok {
		t.Fatalf("substituteOnce reported tok missing")
	}
	want := "X and " + tok
	if out != want {
		t.Fatalf("substituteOnce = %q, want %q", out, want)
	}
}

func TestSubstituteOnceMissingToken(t *testing.T) {
	_, ok := substituteOnce("no tokens here", placeholderToken(0), "X")
	if ok {
		t.Fatal("substituteOnce reported success for an absent token")
	}
}

func TestContainsPlaceholder(t *testing.T) {
	if containsPlaceholder("plain code") {
		t.Fatal("containsPlaceholder false positive")
	}
	if !containsPlaceholder(placeholderToken(1)) {
		t.Fatal("containsPlaceholder false negative")
	}
}
