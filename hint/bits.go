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

import "math/rand"

// defaultBits is the pseudo-random bit source every Sequence check closes
// over (spec §4.D: picking one element at a random index rather than
// walking the whole sequence). It is bound once per generation via
// bindKeyed("bits", ...) so a hint with several nested sequences shares a
// single binding instead of minting one per occurrence. Its signature,
// func() uint32, is the contract runtimecheck.RandIndex expects; hint never
// imports runtimecheck, so that contract is documented here rather than
// enforced by the compiler.
var defaultBits = rand.Uint32

// deterministicBits is seeded once from a fixed value rather than the wall
// clock, so two runs of Generate with Settings.DeterministicBits set
// produce byte-identical aux bindings and golden-file tests of generated
// code stay reproducible in CI.
var deterministicBits = rand.New(rand.NewSource(1)).Uint32

// bitsSource picks the pseudo-random bit source a Sequence check closes
// over: defaultBits ordinarily, or deterministicBits when
// Settings.DeterministicBits asks for reproducibility.
func bitsSource() func() uint32 {
	if Settings.DeterministicBits {
		return deterministicBits
	}
	return defaultBits
}
