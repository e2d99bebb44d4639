package server

import (
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// Broadcaster tracks connected digest subscribers and pushes them each
// fresh rendering.
type Broadcaster struct {
	clients map[*websocket.Conn]bool
	sync.RWMutex
	upgrader websocket.Upgrader
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// The digest is public data; accept any origin.
				return true
			},
		},
	}
}

// HandleConnection upgrades the request, sends the current digest, then
// holds the connection open until the subscriber goes away.
func (b *Broadcaster) HandleConnection(w http.ResponseWriter, r *http.Request, current []byte) error {
	conn, err := b.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	defer conn.Close()

	if current != nil {
		if err := conn.WriteMessage(websocket.TextMessage, current); err != nil {
			return err
		}
	}

	b.Lock()
	b.clients[conn] = true
	b.Unlock()
	connectedClients.Set(float64(b.ClientCount()))

	// Subscribers never send anything; ReadMessage blocks until the
	// connection drops.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	b.Lock()
	delete(b.clients, conn)
	b.Unlock()
	connectedClients.Set(float64(b.ClientCount()))
	return nil
}

// Broadcast sends message to every connected subscriber. Write failures
// are left for HandleConnection to notice on its next read.
func (b *Broadcaster) Broadcast(message []byte) {
	b.RLock()
	defer b.RUnlock()

	for client := range b.clients {
		if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
			log.Printf("Error sending digest to subscriber %s: %v", client.RemoteAddr(), err)
		}
	}
}

func (b *Broadcaster) ClientCount() int {
	b.RLock()
	defer b.RUnlock()
	return len(b.clients)
}
