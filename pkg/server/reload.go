package server

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// ReloadMessageType represents the type of reload message.
type ReloadMessageType string

const (
	ReloadTypeFull ReloadMessageType = "reload"
	ReloadTypeCSS  ReloadMessageType = "css"
)

// ReloadMessage is sent to browsers via WebSocket.
type ReloadMessage struct {
	Type ReloadMessageType `json:"type"`
	File string            `json:"file,omitempty"`
}

// ReloadHub manages WebSocket connections for live reload of
// previewed pages.
type ReloadHub struct {
	clients  map[*websocket.Conn]bool
	mu       sync.RWMutex
	upgrader websocket.Upgrader
}

// NewReloadHub creates a new reload hub.
func NewReloadHub() *ReloadHub {
	return &ReloadHub{
		clients: make(map[*websocket.Conn]bool),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // Preview server only runs locally
			},
		},
	}
}

// HandleWebSocket handles WebSocket upgrade and connection.
func (h *ReloadHub) HandleWebSocket(w http.ResponseWriter, req *http.Request) {
	conn, err := h.upgrader.Upgrade(w, req, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	// Keep connection alive until client disconnects
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
	conn.Close()
}

// NotifyReload sends a full page reload message to all clients.
func (h *ReloadHub) NotifyReload() {
	h.broadcast(ReloadMessage{Type: ReloadTypeFull})
}

// NotifyCSS sends a CSS-only reload message to all clients.
func (h *ReloadHub) NotifyCSS(file string) {
	h.broadcast(ReloadMessage{Type: ReloadTypeCSS, File: file})
}

// broadcast sends a message to all connected clients.
func (h *ReloadHub) broadcast(msg ReloadMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}

	h.mu.RLock()
	clients := make([]*websocket.Conn, 0, len(h.clients))
	for client := range h.clients {
		clients = append(clients, client)
	}
	h.mu.RUnlock()

	for _, client := range clients {
		if err := client.WriteMessage(websocket.TextMessage, data); err != nil {
			h.mu.Lock()
			delete(h.clients, client)
			h.mu.Unlock()
			client.Close()
		}
	}
}

// ClientCount returns the number of connected clients.
func (h *ReloadHub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Close closes all client connections.
func (h *ReloadHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for client := range h.clients {
		client.Close()
		delete(h.clients, client)
	}
}

// ReloadEndpoint is the WebSocket path the client script connects to.
const ReloadEndpoint = "/_htmlgen/reload"

// reloadClientScript is injected into served pages when live reload
// is enabled.
const reloadClientScript = `
<script>
(function() {
    'use strict';

    var reconnectDelay = 1000;
    var maxReconnectDelay = 30000;

    function connect() {
        var protocol = location.protocol === 'https:' ? 'wss:' : 'ws:';
        var ws = new WebSocket(protocol + '//' + location.host + '` + ReloadEndpoint + `');

        ws.onopen = function() {
            console.log('[htmlgen] Live reload connected');
            reconnectDelay = 1000;
        };

        ws.onmessage = function(e) {
            var msg;
            try {
                msg = JSON.parse(e.data);
            } catch (err) {
                return;
            }

            if (msg.type === 'reload') {
                location.reload();
            } else if (msg.type === 'css') {
                var links = document.querySelectorAll('link[rel="stylesheet"]');
                links.forEach(function(link) {
                    var url = new URL(link.href);
                    url.searchParams.set('_reload', Date.now());
                    link.href = url.toString();
                });
            }
        };

        ws.onclose = function() {
            setTimeout(function() {
                reconnectDelay = Math.min(reconnectDelay * 2, maxReconnectDelay);
                connect();
            }, reconnectDelay);
        };

        ws.onerror = function() {
            ws.close();
        };
    }

    if (document.readyState === 'loading') {
        document.addEventListener('DOMContentLoaded', connect);
    } else {
        connect();
    }
})();
</script>
`
