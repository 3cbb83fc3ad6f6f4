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

// pephint-repl is an interactive console for exploring hint.Generate
// output, grounded directly on scm/prompt.go's Repl: a readline loop over
// a small catalog of example hints (Go has no runtime eval, so unlike a
// Python REPL this can't take arbitrary hint-constructor expressions as
// text — it dispatches on command name instead) plus a forward-reference
// registry a caller can bind names into before re-running "gen".
package main

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/chzyer/readline"
	"github.com/dc0d/onexit"

	"github.com/launix-de/pephint/forwardref"
	"github.com/launix-de/pephint/hint"
	_ "github.com/launix-de/pephint/reduce"
)

const prompt = "\033[32mpephint>\033[0m "

var (
	intType      = reflect.TypeOf(int(0))
	stringType   = reflect.TypeOf("")
	sliceIntType = reflect.TypeOf([]int(nil))
)

func catalog() map[string]hint.Hint {
	return map[string]hint.Hint{
		"int":           hint.Instance(intType),
		"string-or-int": hint.Or(hint.Instance(stringType), hint.Instance(intType)),
		"slice-of-int":  hint.SeqOf(sliceIntType, hint.Instance(intType)),
		"forward-node":  hint.ForwardRef("Node"),
	}
}

func main() {
	registry := forwardref.NewRegistry(hint.Settings.ForwardRefCacheSize)

	l, err := readline.NewEx(&readline.Config{
		Prompt:            prompt,
		HistoryFile:       ".pephint-repl-history.tmp",
		InterruptPrompt:   "^C",
		EOFPrompt:         "exit",
		HistorySearchFold: true,
	})
	if err != nil {
		panic(err)
	}
	defer l.Close()
	l.CaptureExitSignal()

	onexit.Register(func() {
		stats := hint.Stats()
		fmt.Printf("pephint-repl: cache entries=%d hits=%d misses=%d\n", stats.Entries, stats.Hits, stats.Misses)
	})

	names := catalog()
	fmt.Println(`pephint-repl: type "help" for commands`)
	for {
		line, err := l.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		handle(strings.TrimSpace(line), names, registry)
	}
}

func handle(line string, names map[string]hint.Hint, registry *forwardref.Registry) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	switch fields[0] {
	case "help":
		fmt.Println("commands: list | gen <name> | pending | bind <basename> <builtin-name> | exit")
	case "list":
		for name := range names {
			fmt.Println(" ", name)
		}
	case "pending":
		for _, name := range registry.Pending() {
			fmt.Println(" ", name)
		}
	case "bind":
		if len(fields) != 3 {
			fmt.Println("usage: bind <basename> <builtin-name>")
			return
		}
		bound, ok := names[fields[2]]
		if !ok {
			fmt.Println("no such builtin:", fields[2])
			return
		}
		inst, ok := bound.(hint.InstanceHint)
		if !ok {
			fmt.Println("bind only accepts a plain Instance hint's type")
			return
		}
		registry.Bind(fields[1], inst.Type)
		fmt.Println("bound", fields[1])
	case "gen":
		if len(fields) != 2 {
			fmt.Println("usage: gen <name>")
			return
		}
		h, ok := names[fields[1]]
		if !ok {
			fmt.Println("no such hint:", fields[1])
			return
		}
		code, aux, forwardRefs, err := hint.Generate(h, hint.WithForwardRefRegistry(registry))
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println("code:")
		fmt.Println(code)
		fmt.Println("aux names:", aux.Names())
		fmt.Println("forward refs:", forwardRefs)
	case "exit", "quit":
		os.Exit(0)
	default:
		fmt.Println("unknown command, try: help")
	}
}
