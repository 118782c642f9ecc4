package rpcclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

// WSClient is a websocket client for the Chia daemon. The daemon multiplexes
// responses over one persistent connection and pushes unsolicited state change
// events, so unlike Client it correlates responses with requests by their
// request id. One WSClient can be used from multiple goroutines.
type WSClient struct {
	ws       *websocket.Conn
	origin   string
	opts     Options
	log      *zap.Logger
	done     chan struct{}
	requests chan *chiarpc.Message
	shutdown chan struct{}
	closed   *atomic.Bool

	respLock sync.Mutex
	respChs  map[string]chan *chiarpc.Message

	// Notifications is a channel delivering unsolicited daemon events
	// (state_changed and the like) to the caller. The channel is closed on
	// disconnect; events arriving while nobody reads it are dropped.
	Notifications chan *chiarpc.Message
}

const (
	// Message limit for receiving side.
	wsReadLimit = 10 * 1024 * 1024

	// Disconnection timeout.
	wsPongLimit = 60 * time.Second

	// Ping period for connection liveness check.
	wsPingPeriod = wsPongLimit / 2

	// Write deadline.
	wsWriteLimit = wsPingPeriod / 2

	// wsOrigin is the service name this client registers itself under.
	wsOrigin = "go_chia_rpc"
)

// errConnClosed is returned by calls racing with a connection loss.
var errConnClosed = errors.New("connection lost before registering response channel")

// NewWS returns a new WSClient ready to use (with established websocket
// connection). You need to use a websocket URL for it, the local daemon
// listens on wss://localhost:55400. The same TLS options as for Client apply,
// the daemon wants the private daemon certificate pair.
func NewWS(ctx context.Context, endpoint string, opts Options) (*WSClient, error) {
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaultDialTimeout
	}
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaultRequestTimeout
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	tlsConf, err := newTLSConfig(opts)
	if err != nil {
		return nil, err
	}

	dialer := websocket.Dialer{
		HandshakeTimeout: opts.DialTimeout,
		TLSClientConfig:  tlsConf,
	}
	ws, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, err
	}

	wsc := &WSClient{
		ws:            ws,
		origin:        wsOrigin,
		opts:          opts,
		log:           opts.Logger,
		shutdown:      make(chan struct{}),
		done:          make(chan struct{}),
		closed:        atomic.NewBool(false),
		requests:      make(chan *chiarpc.Message),
		respChs:       make(map[string]chan *chiarpc.Message),
		Notifications: make(chan *chiarpc.Message, 16),
	}
	go wsc.wsReader()
	go wsc.wsWriter()
	return wsc, nil
}

// Close closes the connection to the daemon rendering this client instance
// unusable.
func (c *WSClient) Close() {
	if c.closed.CompareAndSwap(false, true) {
		// Closing the shutdown channel sends a signal to wsWriter to
		// break out of the loop. In doing so it does ws.Close() closing
		// the network connection which in turn makes wsReader receive
		// an error and also break out, closing c.done in its shutdown
		// sequence.
		close(c.shutdown)
	}
	<-c.done
}

func (c *WSClient) wsReader() {
	c.ws.SetReadLimit(wsReadLimit)
	c.ws.SetPongHandler(func(string) error { return c.ws.SetReadDeadline(time.Now().Add(wsPongLimit)) })
readloop:
	for {
		m := new(chiarpc.Message)
		if err := c.ws.SetReadDeadline(time.Now().Add(wsPongLimit)); err != nil {
			break
		}
		if err := c.ws.ReadJSON(m); err != nil {
			// Timeout/connection loss/malformed message.
			c.log.Info("daemon connection read failure", zap.Error(err))
			break
		}
		if m.Ack && m.RequestID != "" {
			c.respLock.Lock()
			ch, ok := c.respChs[m.RequestID]
			delete(c.respChs, m.RequestID)
			c.respLock.Unlock()
			if !ok {
				c.log.Debug("unsolicited response", zap.String("command", m.Command), zap.String("request_id", m.RequestID))
				continue readloop
			}
			ch <- m
		} else {
			select {
			case c.Notifications <- m:
			default:
				c.log.Debug("notification dropped", zap.String("command", m.Command))
			}
		}
	}
	close(c.done)
	c.respLock.Lock()
	for id, ch := range c.respChs {
		delete(c.respChs, id)
		close(ch)
	}
	c.respLock.Unlock()
	close(c.Notifications)
}

func (c *WSClient) wsWriter() {
	pingTicker := time.NewTicker(wsPingPeriod)
	defer c.ws.Close()
	defer pingTicker.Stop()
	for {
		select {
		case <-c.shutdown:
			return
		case <-c.done:
			return
		case m := <-c.requests:
			if err := c.ws.SetWriteDeadline(time.Now().Add(c.opts.RequestTimeout)); err != nil {
				return
			}
			if err := c.ws.WriteJSON(m); err != nil {
				c.log.Info("daemon connection write failure", zap.Error(err))
				return
			}
		case <-pingTicker.C:
			if err := c.ws.SetWriteDeadline(time.Now().Add(wsWriteLimit)); err != nil {
				return
			}
			if err := c.ws.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				return
			}
		}
	}
}

func (c *WSClient) registerRespChannel(id string) (chan *chiarpc.Message, error) {
	ch := make(chan *chiarpc.Message, 1)
	c.respLock.Lock()
	defer c.respLock.Unlock()
	select {
	case <-c.done:
		return nil, errConnClosed
	default:
	}
	c.respChs[id] = ch
	return ch, nil
}

func (c *WSClient) dropRespChannel(id string) {
	c.respLock.Lock()
	delete(c.respChs, id)
	c.respLock.Unlock()
}

// Call sends one command to the daemon and waits for the matching response,
// bounded by the configured request timeout. The same failure taxonomy as for
// Client.Call applies, with the daemon's success flag checked inside the
// response data.
func (c *WSClient) Call(command string, data any, result any) error {
	if command == "" {
		return errors.New("empty command name")
	}
	if data == nil {
		data = struct{}{}
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("data marshaling: %w", err)
	}
	m := &chiarpc.Message{
		Command:     command,
		Data:        raw,
		RequestID:   uuid.NewString(),
		Destination: "daemon",
		Origin:      c.origin,
	}
	ch, err := c.registerRespChannel(m.RequestID)
	if err != nil {
		return chiarpc.NewTransportError(command, err)
	}

	select {
	case <-c.done:
		c.dropRespChannel(m.RequestID)
		return chiarpc.NewTransportError(command, errors.New("connection lost"))
	case c.requests <- m:
	}

	timer := time.NewTimer(c.opts.RequestTimeout)
	defer timer.Stop()
	var resp *chiarpc.Message
	select {
	case <-timer.C:
		c.dropRespChannel(m.RequestID)
		return chiarpc.NewTransportError(command, errors.New("response timeout"))
	case resp = <-ch:
		if resp == nil { // Channel closed on disconnect.
			return chiarpc.NewTransportError(command, errors.New("connection lost"))
		}
	}

	var env chiarpc.Response
	if err := json.Unmarshal(resp.Data, &env); err != nil {
		return chiarpc.NewDecodeError(command, resp.Data, err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "unknown error"
		}
		return chiarpc.NewRemoteError(command, msg, resp.Data)
	}
	if result == nil {
		return nil
	}
	if err := json.Unmarshal(resp.Data, result); err != nil {
		return chiarpc.NewDecodeError(command, resp.Data, err)
	}
	return nil
}

// RegisterService registers this client under the given service name, which
// makes the daemon start forwarding state change events of other services to
// it. Call it before reading Notifications.
func (c *WSClient) RegisterService(service string) error {
	return c.Call("register_service", map[string]any{"service": service}, nil)
}

// IsRunning reports whether the given service is currently running.
func (c *WSClient) IsRunning(service string) (bool, error) {
	var resp struct {
		IsRunning bool `json:"is_running"`
	}
	if err := c.Call("is_running", map[string]any{"service": service}, &resp); err != nil {
		return false, err
	}
	return resp.IsRunning, nil
}

// StartService asks the daemon to start the given service.
func (c *WSClient) StartService(service string) error {
	return c.Call("start_service", map[string]any{"service": service}, nil)
}

// StopService asks the daemon to stop the given service.
func (c *WSClient) StopService(service string) error {
	return c.Call("stop_service", map[string]any{"service": service}, nil)
}

// GetStatus reports whether the daemon has finished its startup sequence.
func (c *WSClient) GetStatus() (bool, error) {
	var resp struct {
		GenesisInitialized bool `json:"genesis_initialized"`
	}
	if err := c.Call("get_status", nil, &resp); err != nil {
		return false, err
	}
	return resp.GenesisInitialized, nil
}

// IsKeyringLocked reports whether the daemon keyring needs unlocking before
// wallet operations can proceed.
func (c *WSClient) IsKeyringLocked() (bool, error) {
	var resp struct {
		IsKeyringLocked bool `json:"is_keyring_locked"`
	}
	if err := c.Call("is_keyring_locked", nil, &resp); err != nil {
		return false, err
	}
	return resp.IsKeyringLocked, nil
}

// Exit asks the daemon to stop all services and shut itself down.
func (c *WSClient) Exit() error {
	return c.Call("exit", nil, nil)
}
