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
/*
	pephint runtime type-hint checker and code generator

	This binary is a small end-to-end demonstration of the core pipeline:
	build a Hint describing a shape, run it through the generator once
	so its result lands in the memoization cache, and print both the
	generated guard expression and a human-readable description. The
	real entry points for day-to-day use are the cmd/pephintgen,
	cmd/pephint-repl, and cmd/pephint-dashboard binaries.
*/
package main

import (
	"fmt"
	"reflect"

	"github.com/launix-de/pephint/hint"
	_ "github.com/launix-de/pephint/reduce"
)

func main() {
	fmt.Print(`pephint Copyright (C) 2026  pephint contributors
    This program comes with ABSOLUTELY NO WARRANTY;
    This is free software, and you are welcome to redistribute it
    under certain conditions;
`)

	h := hint.Or(
		hint.Instance(reflect.TypeOf(0)),
		hint.SeqOf(reflect.TypeOf([]string{}), hint.Instance(reflect.TypeOf(""))),
	)

	code, aux, forwardRefs, err := hint.Generate(h)
	if err != nil {
		fmt.Println("generation error:", err)
		return
	}

	fmt.Println("hint:", hint.Describe(h))
	fmt.Println("generated guard:", code)
	for _, name := range aux.Names() {
		v, _ := aux.Value(name)
		fmt.Printf("  aux %s = %v\n", name, v)
	}
	for _, name := range forwardRefs {
		fmt.Println("  unresolved forward ref:", name)
	}

	stats := hint.Stats()
	fmt.Printf("cache: entries=%d hits=%d misses=%d\n", stats.Entries, stats.Hits, stats.Misses)
}
