package ws

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/mmuslimabdulj/modex/internal/domain"
)

func TestNewClient(t *testing.T) {
	hub := NewHub(nil)
	c := NewClient(hub, nil, "tok")

	if c.token != "tok" {
		t.Errorf("Expected token tok, got %s", c.token)
	}
	if cap(c.send) != 16 {
		t.Errorf("Expected send buffer 16, got %d", cap(c.send))
	}
}

func TestClient_SendBufferFull(t *testing.T) {
	c := newMockClient(NewHub(nil), "tok")
	c.send = make(chan []byte, 1)

	if !c.Send([]byte("one")) {
		t.Error("First send should succeed")
	}
	if c.Send([]byte("two")) {
		t.Error("Send on full buffer should report false")
	}
}

func TestClient_Pumps(t *testing.T) {
	hub := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		c := NewClient(hub, conn, "tok")
		hub.Register(c)
		go c.WritePump()
		go c.ReadPump()
	}))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer conn.Close()

	deadline := time.Now().Add(time.Second)
	for hub.ClientCount() == 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}

	hub.SessionChanged("tok", domain.Session{})

	conn.SetReadDeadline(time.Now().Add(time.Second))
	_, frame, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("ReadMessage failed: %v", err)
	}
	if got := decodeOutcome(t, frame); got != "login" {
		t.Errorf("Expected login, got %s", got)
	}

	conn.Close()
	deadline = time.Now().Add(time.Second)
	for hub.ClientCount() != 0 && time.Now().Before(deadline) {
		time.Sleep(5 * time.Millisecond)
	}
	if hub.ClientCount() != 0 {
		t.Errorf("Expected client unregistered after close, got %d", hub.ClientCount())
	}
}
