package realtime

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*Hub, *httptest.Server) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	go hub.Run(ctx)

	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn, r.URL.Query().Get("room"))
		if err := hub.Register(r.Context(), client); err != nil {
			return
		}
		go client.WritePump()
		go client.ReadPump()
	}))
	t.Cleanup(func() {
		srv.Close()
		cancel()
	})
	return hub, srv
}

func dial(t *testing.T, srv *httptest.Server, room string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "?room=" + room
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func waitForRoom(t *testing.T, hub *Hub, room string, size int) {
	t.Helper()
	require.Eventually(t, func() bool { return hub.RoomSize(room) == size }, 2*time.Second, 10*time.Millisecond)
}

func TestPublishReachesOnlyTheTournamentRoom(t *testing.T) {
	hub, srv := startHub(t)
	inRoom := dial(t, srv, RoomFor(7))
	other := dial(t, srv, RoomFor(8))
	waitForRoom(t, hub, RoomFor(7), 1)
	waitForRoom(t, hub, RoomFor(8), 1)

	require.NoError(t, hub.Publish(context.Background(), 7, EventPairingsRevealed, map[string]int{"round_number": 2}))

	_ = inRoom.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, raw, err := inRoom.ReadMessage()
	require.NoError(t, err)

	var msg struct {
		Type    string         `json:"type"`
		Payload map[string]int `json:"payload"`
		RoomID  string         `json:"room_id"`
	}
	require.NoError(t, json.Unmarshal(raw, &msg))
	assert.Equal(t, EventPairingsRevealed, msg.Type)
	assert.Equal(t, "tournament_7", msg.RoomID)
	assert.Equal(t, 2, msg.Payload["round_number"])

	_ = other.SetReadDeadline(time.Now().Add(150 * time.Millisecond))
	_, _, err = other.ReadMessage()
	assert.Error(t, err)
}

func TestBroadcastToEmptyRoom(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	n, err := hub.BroadcastToRoom("tournament_1", Message{Type: EventStandingsUpdated})
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestBroadcastRejectsUnmarshalablePayload(t *testing.T) {
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	_, err := hub.BroadcastToRoom("tournament_1", Message{Type: "bad", Payload: make(chan int)})
	assert.Error(t, err)
}

func TestClientLeavesRoomOnDisconnect(t *testing.T) {
	hub, srv := startHub(t)
	conn := dial(t, srv, RoomFor(3))
	waitForRoom(t, hub, RoomFor(3), 1)

	require.NoError(t, conn.Close())
	waitForRoom(t, hub, RoomFor(3), 0)
}

func TestReadPumpReturnsAfterHubStops(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	hub := NewHub(slog.New(slog.NewTextHandler(io.Discard, nil)))
	stopped := make(chan struct{})
	go func() {
		hub.Run(ctx)
		close(stopped)
	}()

	pumpDone := make(chan struct{})
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		client := NewClient(hub, conn, RoomFor(4))
		if err := hub.Register(r.Context(), client); err != nil {
			return
		}
		go client.WritePump()
		go func() {
			client.ReadPump()
			close(pumpDone)
		}()
	}))
	t.Cleanup(srv.Close)

	dial(t, srv, RoomFor(4))
	waitForRoom(t, hub, RoomFor(4), 1)

	cancel()
	select {
	case <-stopped:
	case <-time.After(2 * time.Second):
		t.Fatal("hub did not stop")
	}
	select {
	case <-pumpDone:
	case <-time.After(2 * time.Second):
		t.Fatal("read pump still blocked after the hub stopped")
	}

	err := hub.Register(context.Background(), NewClient(hub, nil, RoomFor(4)))
	assert.ErrorIs(t, err, ErrHubClosed)
}
