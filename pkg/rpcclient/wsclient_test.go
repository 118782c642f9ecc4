package rpcclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc"
)

// startWSDaemon runs a fake daemon answering every command via the given
// responder. The responder gets the decoded request and returns the data part
// of the response.
func startWSDaemon(t *testing.T, responder func(m *chiarpc.Message) json.RawMessage) string {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Error(err)
			return
		}
		defer ws.Close()
		for {
			m := new(chiarpc.Message)
			if err := ws.ReadJSON(m); err != nil {
				return
			}
			resp := &chiarpc.Message{
				Command:     m.Command,
				Ack:         true,
				Data:        responder(m),
				RequestID:   m.RequestID,
				Destination: m.Origin,
				Origin:      "daemon",
			}
			if err := ws.WriteJSON(resp); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

func TestWSCallRoundTrip(t *testing.T) {
	var gotCommand, gotDestination string
	url := startWSDaemon(t, func(m *chiarpc.Message) json.RawMessage {
		gotCommand = m.Command
		gotDestination = m.Destination
		return json.RawMessage(`{"success": true, "is_running": true}`)
	})

	c, err := NewWS(context.Background(), url, Options{})
	require.NoError(t, err)
	defer c.Close()

	running, err := c.IsRunning("chia_full_node")
	require.NoError(t, err)
	assert.True(t, running)
	assert.Equal(t, "is_running", gotCommand)
	assert.Equal(t, "daemon", gotDestination)
}

func TestWSCallRemoteError(t *testing.T) {
	url := startWSDaemon(t, func(m *chiarpc.Message) json.RawMessage {
		return json.RawMessage(`{"success": false, "error": "unknown service"}`)
	})

	c, err := NewWS(context.Background(), url, Options{})
	require.NoError(t, err)
	defer c.Close()

	err = c.StartService("chia_bogus")
	require.Error(t, err)
	assert.True(t, errors.Is(err, chiarpc.ErrRemote))
	assert.Contains(t, err.Error(), "unknown service")
}

func TestWSCallCorrelation(t *testing.T) {
	// Responses must be matched by request id even when several calls are
	// in flight.
	url := startWSDaemon(t, func(m *chiarpc.Message) json.RawMessage {
		var data struct {
			Service string `json:"service"`
		}
		_ = json.Unmarshal(m.Data, &data)
		running := data.Service == "chia_wallet"
		raw, _ := json.Marshal(map[string]any{"success": true, "is_running": running})
		return raw
	})

	c, err := NewWS(context.Background(), url, Options{})
	require.NoError(t, err)
	defer c.Close()

	type res struct {
		running bool
		err     error
	}
	walletCh := make(chan res, 1)
	farmerCh := make(chan res, 1)
	go func() {
		r, err := c.IsRunning("chia_wallet")
		walletCh <- res{r, err}
	}()
	go func() {
		r, err := c.IsRunning("chia_farmer")
		farmerCh <- res{r, err}
	}()

	w := <-walletCh
	f := <-farmerCh
	require.NoError(t, w.err)
	require.NoError(t, f.err)
	assert.True(t, w.running)
	assert.False(t, f.running)
}

func TestWSCallTimeout(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		// Swallow requests without answering.
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	c, err := NewWS(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"),
		Options{RequestTimeout: 100 * time.Millisecond})
	require.NoError(t, err)
	defer c.Close()

	_, err = c.GetStatus()
	require.Error(t, err)
	assert.True(t, errors.Is(err, chiarpc.ErrTransport))
	assert.Contains(t, err.Error(), "timeout")
}

func TestWSNotifications(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer ws.Close()
		event := &chiarpc.Message{
			Command:     "state_changed",
			Data:        json.RawMessage(`{"state": "new_peak"}`),
			Destination: wsOrigin,
			Origin:      "chia_full_node",
		}
		if err := ws.WriteJSON(event); err != nil {
			return
		}
		for {
			if _, _, err := ws.ReadMessage(); err != nil {
				return
			}
		}
	}))
	t.Cleanup(srv.Close)

	c, err := NewWS(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"), Options{})
	require.NoError(t, err)
	defer c.Close()

	select {
	case m := <-c.Notifications:
		require.NotNil(t, m)
		assert.Equal(t, "state_changed", m.Command)
		assert.False(t, m.Ack)
	case <-time.After(time.Second):
		t.Fatal("no notification received")
	}
}

func TestWSCloseIdempotent(t *testing.T) {
	url := startWSDaemon(t, func(m *chiarpc.Message) json.RawMessage {
		return json.RawMessage(`{"success": true}`)
	})

	c, err := NewWS(context.Background(), url, Options{})
	require.NoError(t, err)
	require.NoError(t, c.RegisterService("wallet_ui"))
	c.Close()
	c.Close()

	// Calls after Close fail as transport errors.
	err = c.Exit()
	require.Error(t, err)
	assert.True(t, errors.Is(err, chiarpc.ErrTransport))
}

func TestWSConnectionLossClosesNotifications(t *testing.T) {
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		ws.Close()
	}))
	t.Cleanup(srv.Close)

	c, err := NewWS(context.Background(), "ws"+strings.TrimPrefix(srv.URL, "http"), Options{})
	require.NoError(t, err)

	select {
	case _, ok := <-c.Notifications:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("notifications channel not closed on disconnect")
	}
}
