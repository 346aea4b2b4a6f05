package server

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
)

func dialReload(t *testing.T, ts *httptest.Server) *websocket.Conn {
	t.Helper()
	url := strings.Replace(ts.URL, "http", "ws", 1) + ReloadEndpoint
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestReloadHubBroadcast(t *testing.T) {
	s, ts := newTestServer(t, &Config{EnableReload: true})

	conn := dialReload(t, ts)

	// Wait for registration before broadcasting.
	deadline := time.Now().Add(time.Second)
	for s.Reload().ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client was not registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	s.Reload().NotifyReload()

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read message: %v", err)
	}

	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != ReloadTypeFull {
		t.Errorf("type = %q, want %q", msg.Type, ReloadTypeFull)
	}
}

func TestReloadHubCSSMessage(t *testing.T) {
	s, ts := newTestServer(t, &Config{EnableReload: true})

	conn := dialReload(t, ts)

	deadline := time.Now().Add(time.Second)
	for s.Reload().ClientCount() == 0 {
		if time.Now().After(deadline) {
			t.Fatal("client was not registered")
		}
		time.Sleep(5 * time.Millisecond)
	}

	s.Reload().NotifyCSS("site.css")

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("read message: %v", err)
	}

	var msg ReloadMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != ReloadTypeCSS || msg.File != "site.css" {
		t.Errorf("got %+v, want css message for site.css", msg)
	}
}

func TestReloadHubNoClients(t *testing.T) {
	hub := NewReloadHub()
	if hub.ClientCount() != 0 {
		t.Errorf("new hub should have 0 clients, got %d", hub.ClientCount())
	}
	// Broadcasting with no clients must not panic.
	hub.NotifyReload()
	hub.Close()
}
