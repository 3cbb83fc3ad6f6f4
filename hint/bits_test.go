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
	"reflect"
	"testing"
)

func TestBitsSourceHonorsDeterministicSetting(t *testing.T) {
	orig := Settings.DeterministicBits
	defer func() { Settings.DeterministicBits = orig }()

	Settings.DeterministicBits = false
	if got := bitsSource(); reflect.ValueOf(got).Pointer() != reflect.ValueOf(defaultBits).Pointer() {
		t.Fatal("bitsSource() should return defaultBits when DeterministicBits is false")
	}

	Settings.DeterministicBits = true
	if got := bitsSource(); reflect.ValueOf(got).Pointer() != reflect.ValueOf(deterministicBits).Pointer() {
		t.Fatal("bitsSource() should return deterministicBits when DeterministicBits is true")
	}
}

func TestGenerateSequenceBitsSourceIsDeterministicWhenSettingIsOn(t *testing.T) {
	orig := Settings.DeterministicBits
	Settings.DeterministicBits = true
	defer func() { Settings.DeterministicBits = orig }()

	h := SeqOf(reflect.TypeOf([]int{}), Instance(reflect.TypeOf(0)))
	_, aux1, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	_, aux2, _, err := Generate(h, WithoutMemo())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	var v1, v2 any
	for _, n := range aux1.Names() {
		if v, ok := aux1.Value(n); ok {
			if _, isFn := v.(func() uint32); isFn {
				v1 = v
			}
		}
	}
	for _, n := range aux2.Names() {
		if v, ok := aux2.Value(n); ok {
			if _, isFn := v.(func() uint32); isFn {
				v2 = v
			}
		}
	}
	if v1 == nil || v2 == nil {
		t.Fatal("expected both generations to bind a bits source")
	}
	if reflect.ValueOf(v1).Pointer() != reflect.ValueOf(v2).Pointer() {
		t.Fatal("with DeterministicBits set, every generation should close over the same fixed-seed source")
	}
}
