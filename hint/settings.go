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

// SettingsT mirrors storage/settings.go's plain exported-struct +
// package-level var convention — no config framework, just a struct callers
// mutate before the first Generate call.
type SettingsT struct {
	// QueueCapacity is spec §4.D's SIZE_BIG: the fixed capacity of the
	// pooled BFS work queue. A hint graph that would enqueue more jobs
	// than this fails with HintTooLarge rather than growing unbounded.
	QueueCapacity int
	// DeprecatedIsFatal turns DeprecatedHint from a warning into a
	// HintUnsupported error, for callers that want to forbid deprecated
	// hints outright (e.g. CI checks on a hint catalog).
	DeprecatedIsFatal bool
	// DeterministicBits seeds the sequence-element random index generator
	// from a fixed value instead of the wall clock, so golden-file tests
	// of generated code stay reproducible in CI.
	DeterministicBits bool
	// ForwardRefCacheSize bounds package forwardref's resolved-type cache.
	ForwardRefCacheSize int
}

func DefaultSettings() SettingsT {
	return SettingsT{
		QueueCapacity:       4096,
		DeprecatedIsFatal:   false,
		DeterministicBits:   false,
		ForwardRefCacheSize: 1024,
	}
}

// Settings is the process-wide configuration, mutated before use the same
// way storage.Settings is (storage/settings.go): no InitSettings() dance
// required here since there is no file-backed trace channel to reopen, but
// the shape is kept identical for familiarity across the two packages.
var Settings = DefaultSettings()
