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

// pephint-dashboard serves a live view of the memoization cache's hit/miss
// counters over a websocket, grounded on scm/network.go's "websocket"
// upgrade-and-push pattern and storage/dashboard.go's cache_stat reporting.
// Each connected browser gets its own push loop (started with gls.Go, same
// as storage/compute.go's worker goroutines) that writes one JSON frame per
// tick until the socket closes.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/dc0d/onexit"
	"github.com/gorilla/websocket"
	"github.com/jtolds/gls"

	"github.com/launix-de/pephint/hint"
	_ "github.com/launix-de/pephint/reduce"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

const page = `<!DOCTYPE html>
<html><head><title>pephint dashboard</title></head>
<body>
<h1>pephint memoization cache</h1>
<pre id="stats">connecting...</pre>
<script>
var ws = new WebSocket("ws://" + location.host + "/ws");
ws.onmessage = function(ev) {
	document.getElementById("stats").textContent = ev.data;
};
ws.onclose = function() {
	document.getElementById("stats").textContent += "\n(disconnected)";
};
</script>
</body></html>`

func main() {
	addr := flag.String("addr", ":8099", "listen address")
	interval := flag.Duration("interval", time.Second, "push interval")
	flag.Parse()

	onexit.Register(func() {
		stats := hint.Stats()
		fmt.Printf("pephint-dashboard: final cache entries=%d hits=%d misses=%d\n", stats.Entries, stats.Hits, stats.Misses)
	})

	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(page))
	})
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		gls.Go(func() { pushLoop(ws, *interval) })
	})

	fmt.Println("pephint-dashboard: listening on", *addr)
	if err := http.ListenAndServe(*addr, nil); err != nil {
		fmt.Fprintln(os.Stderr, "pephint-dashboard:", err)
		os.Exit(1)
	}
}

// pushLoop writes one JSON-encoded hint.CacheStats frame per tick until the
// client disconnects or a write fails, mirroring scm/network.go's websocket
// send-callback loop but driven by a timer instead of caller-issued sends.
func pushLoop(ws *websocket.Conn, interval time.Duration) {
	defer ws.Close()
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for range ticker.C {
		body, err := json.Marshal(hint.Stats())
		if err != nil {
			return
		}
		if err := ws.WriteMessage(websocket.TextMessage, body); err != nil {
			return
		}
	}
}
