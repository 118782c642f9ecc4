package rpcclient

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(context.Background(), srv.URL, Options{})
	require.NoError(t, err)
	t.Cleanup(c.Close)
	return c
}

func TestNewBadEndpoint(t *testing.T) {
	_, err := New(context.Background(), "ftp://localhost:8555", Options{})
	require.Error(t, err)

	_, err = New(context.Background(), "://", Options{})
	require.Error(t, err)
}

func TestCallMethodPath(t *testing.T) {
	var gotPath, gotContentType string
	var gotBody []byte
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotContentType = r.Header.Get("Content-Type")
		gotBody, _ = json.Marshal(decodeBody(t, r))
		w.Write([]byte(`{"success": true, "version": "2.1.4"}`))
	})

	v, err := c.GetVersion()
	require.NoError(t, err)
	assert.Equal(t, "2.1.4", v)
	assert.Equal(t, "/get_version", gotPath)
	assert.Equal(t, "application/json", gotContentType)
	// Parameterless methods still send an object body.
	assert.JSONEq(t, "{}", string(gotBody))
}

func TestCallParamsEcho(t *testing.T) {
	var got map[string]any
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = decodeBody(t, r)
		w.Write([]byte(`{"success": true}`))
	})

	err := c.OpenConnection("node.chia.net", 8444)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"ip": "node.chia.net", "port": float64(8444)}, got)
}

func TestCallRemoteError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false, "error": "Can't spend more than wallet balance: 0 mojos"}`))
	})

	err := c.Call("send_transaction", map[string]any{"wallet_id": 1}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chiarpc.ErrRemote))

	var rpcErr *chiarpc.Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, "send_transaction", rpcErr.Method)
	assert.Contains(t, rpcErr.Message, "wallet balance")
}

func TestCallRemoteErrorNoMessage(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": false}`))
	})

	err := c.Call("healthz", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chiarpc.ErrRemote))
	assert.Contains(t, err.Error(), "unknown error")
}

func TestCallDecodeError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`it's not JSON at all`))
	})

	err := c.Call("get_blockchain_state", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chiarpc.ErrDecode))

	var rpcErr *chiarpc.Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, []byte(`it's not JSON at all`), rpcErr.Payload)
}

func TestCallHTTPErrorStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})

	err := c.Call("no_such_method", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chiarpc.ErrTransport))
	assert.Contains(t, err.Error(), "HTTP 404")
}

func TestCallEnvelopeOverStatusCode(t *testing.T) {
	// A parseable envelope wins over a non-200 status code.
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": false, "error": "internal"}`))
	})

	err := c.Call("get_routes", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chiarpc.ErrRemote))
}

func TestCallTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := srv.URL
	srv.Close()

	c, err := New(context.Background(), endpoint, Options{DialTimeout: time.Second})
	require.NoError(t, err)

	callErr := c.Call("get_version", nil, nil)
	require.Error(t, callErr)
	assert.True(t, errors.Is(callErr, chiarpc.ErrTransport))
}

func TestCallEmptyMethod(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("request must not be issued")
	})
	require.Error(t, c.Call("", nil, nil))
}

func TestCallTimeout(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"success": true}`))
	})
	c.opts.RequestTimeout = 50 * time.Millisecond
	c.cli.Timeout = 50 * time.Millisecond

	start := time.Now()
	err := c.Call("get_blockchain_state", nil, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, chiarpc.ErrTransport))
	assert.Less(t, time.Since(start), 150*time.Millisecond)
}

func TestCallResultDecoding(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"success": true,
			"sync": {"synced": true, "sync_mode": false},
			"space": 35000000000000000000,
			"difficulty": 1976
		}`))
	})

	var resp struct {
		Sync struct {
			Synced bool `json:"synced"`
		} `json:"sync"`
		Space      json.Number `json:"space"`
		Difficulty uint64      `json:"difficulty"`
	}
	require.NoError(t, c.Call("get_blockchain_state", nil, &resp))
	assert.True(t, resp.Sync.Synced)
	assert.Equal(t, uint64(1976), resp.Difficulty)
	assert.Equal(t, "35000000000000000000", resp.Space.String())
}

func TestCallRaw(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "height": 4920627}`))
	})

	resp, err := c.CallRaw("get_height_info", nil)
	require.NoError(t, err)
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, float64(4920627), resp["height"])
}

func TestGetConnections(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_connections", r.URL.Path)
		w.Write([]byte(`{"success": true, "connections": [
			{"node_id": "0xabc", "peer_host": "127.0.0.1", "peer_port": 8444, "type": 1},
			{"node_id": "0xdef", "peer_host": "10.0.0.5", "peer_port": 8444, "type": 1}
		]}`))
	})

	conns, err := c.GetConnections()
	require.NoError(t, err)
	require.Len(t, conns, 2)
	assert.Equal(t, "0xabc", conns[0].NodeID)
	assert.Equal(t, "10.0.0.5", conns[1].PeerHost)
}

func TestTwoClientsShareNothing(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true, "version": "2.1.4"}`))
	}
	c1 := newTestClient(t, handler)
	c2 := newTestClient(t, handler)

	_, err := c1.GetVersion()
	require.NoError(t, err)
	_, err = c2.GetVersion()
	require.NoError(t, err)
}

func TestRateLimiterThrottles(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	}))
	t.Cleanup(srv.Close)

	c, err := New(context.Background(), srv.URL, Options{RequestsPerSecond: 20})
	require.NoError(t, err)

	start := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, c.Healthz())
	}
	// Burst of 1 at 20 rps means two of the three calls had to wait.
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestPing(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {})
	require.NoError(t, c.Ping())

	bad, err := New(context.Background(), "http://localhost:1", Options{DialTimeout: 100 * time.Millisecond})
	require.NoError(t, err)
	require.Error(t, bad.Ping())
}

func decodeBody(t *testing.T, r *http.Request) map[string]any {
	t.Helper()
	var m map[string]any
	require.NoError(t, json.NewDecoder(r.Body).Decode(&m))
	return m
}
