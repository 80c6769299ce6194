// Command roswatch connects to a RouterOS device, runs one command, and
// streams every word crossing the wire to any number of browser tabs over
// a websocket, each tagged with its direction. After the command's reply
// it keeps the viewer running until the process is stopped.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/mikroapi/routeros"
)

// wireEvent is one word observed by the sink, shaped for the browser.
type wireEvent struct {
	Direction string    `json:"direction"`
	Word      string    `json:"word"`
	Time      time.Time `json:"time"`
}

// hub fans wireEvents out to every connected websocket client, adapted
// from the broadcast-to-all-clients shape of a rate-sample dashboard
// generalized here to raw protocol words instead of interface counters.
type hub struct {
	mu       sync.RWMutex
	clients  map[*websocket.Conn]bool
	upgrader websocket.Upgrader
}

func newHub() *hub {
	return &hub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *hub) sink(direction, word string) {
	event := wireEvent{Direction: direction, Word: word, Time: time.Now()}
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if err := client.WriteMessage(websocket.TextMessage, payload); err != nil {
			log.Printf("[roswatch] write error: %v", err)
		}
	}
}

func (h *hub) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[roswatch] upgrade error: %v", err)
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	go func() {
		defer func() {
			h.mu.Lock()
			delete(h.clients, conn)
			h.mu.Unlock()
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func main() {
	host := flag.String("host", os.Getenv("ROS_HOST"), "RouterOS host")
	user := flag.String("user", os.Getenv("ROS_USER"), "username")
	pass := flag.String("pass", os.Getenv("ROS_PASS"), "password")
	listen := flag.String("listen", ":8728", "HTTP listen address for the websocket viewer")
	cmd := flag.String("cmd", "/system/resource/print", "command path to run and watch")
	flag.Parse()

	if *host == "" || *user == "" {
		fmt.Fprintln(os.Stderr, "usage: roswatch -host <host> -user <user> [-pass <pass>] [-listen :8080]")
		os.Exit(2)
	}

	h := newHub()

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.handleWebSocket)
	server := &http.Server{Addr: *listen, Handler: mux}

	go func() {
		log.Printf("[roswatch] listening on %s", *listen)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("[roswatch] server error: %v", err)
		}
	}()

	client, err := routeros.Dial(routeros.Config{
		Host:     *host,
		Username: *user,
		Password: *pass,
		Sink:     h.sink,
	})
	if err != nil {
		log.Fatalf("[roswatch] dial failed: %v", err)
	}
	defer client.Close()

	if _, err := client.Run(*cmd, nil); err != nil {
		log.Fatalf("[roswatch] command failed: %v", err)
	}

	select {}
}
