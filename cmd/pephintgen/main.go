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

// pephintgen scans a Go package directory for "//pephint:hint <expr>"
// markers, builds and runs a throwaway driver program to materialize each
// marked expression's hint.Hint value, and writes one check_<Func>_pephint.go
// file per marker. Usage mirrors tools/jitgen: one directory per invocation.
//
//	pephintgen [-watch] [-queue-size=64KiB] [-inline-validators] <dir>
package main

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/docker/go-units"
	"github.com/fsnotify/fsnotify"

	"github.com/launix-de/pephint/genfile"
	"github.com/launix-de/pephint/hint"
)

func main() {
	var watch bool
	var inlineValidators bool
	var queueSize string
	var dir string
	for _, arg := range os.Args[1:] {
		switch {
		case arg == "-watch":
			watch = true
		case arg == "-inline-validators":
			inlineValidators = true
		case len(arg) > len("-queue-size=") && arg[:len("-queue-size=")] == "-queue-size=":
			queueSize = arg[len("-queue-size="):]
		default:
			dir = arg
		}
	}
	if dir == "" {
		fmt.Fprintln(os.Stderr, "usage: pephintgen [-watch] [-queue-size=64KiB] [-inline-validators] <dir>")
		os.Exit(1)
	}
	if queueSize != "" {
		n, err := units.RAMInBytes(queueSize)
		if err != nil {
			fmt.Fprintf(os.Stderr, "pephintgen: -queue-size: %v\n", err)
			os.Exit(1)
		}
		// a generous, deliberately rough per-job estimate — the queue
		// holds *job pointers, not the bytes a size flag naturally means,
		// so this only needs to be in the right ballpark.
		const bytesPerJob = 256
		hint.Settings.QueueCapacity = int(n / bytesPerJob)
	}

	run := func() {
		if err := generate(dir, inlineValidators); err != nil {
			fmt.Fprintln(os.Stderr, "pephintgen:", err)
			os.Exit(1)
		}
		fmt.Println("pephintgen: done")
	}
	run()
	if !watch {
		return
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		fmt.Fprintln(os.Stderr, "pephintgen: -watch:", err)
		os.Exit(1)
	}
	defer watcher.Close()
	if err := watcher.Add(dir); err != nil {
		fmt.Fprintln(os.Stderr, "pephintgen: -watch:", err)
		os.Exit(1)
	}
	fmt.Println("pephintgen: watching", dir)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return
			}
			if filepath.Ext(ev.Name) == ".go" {
				run()
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return
			}
			fmt.Fprintln(os.Stderr, "pephintgen: watch error:", err)
		}
	}
}

func generate(dir string, inlineValidators bool) error {
	pkg, targets, err := genfile.Load(dir)
	if err != nil {
		return err
	}
	if len(targets) == 0 {
		return nil
	}

	driverSrc, err := genfile.BuildDriverSource(pkg.PkgPath, dir, targets, inlineValidators)
	if err != nil {
		return err
	}

	driverDir, err := os.MkdirTemp("", "pephintgen-driver")
	if err != nil {
		return err
	}
	defer os.RemoveAll(driverDir)

	driverPath := filepath.Join(driverDir, "main.go")
	if err := os.WriteFile(driverPath, []byte(driverSrc), 0o644); err != nil {
		return err
	}

	cmd := exec.Command("go", "run", driverPath)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Dir = dir
	return cmd.Run()
}
