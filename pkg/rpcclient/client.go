package rpcclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"crypto/x509"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const (
	defaultDialTimeout    = 4 * time.Second
	defaultRequestTimeout = 10 * time.Second
)

// Client represents the middleman for executing JSON RPC calls against remote
// Chia service endpoints (full node, wallet, farmer, harvester, crawler — they
// all share one convention: POST the parameter object to a method-named path).
// Client is thread-safe and can be used from multiple goroutines, it keeps no
// cross-call state.
type Client struct {
	cli      *http.Client
	endpoint *url.URL
	ctx      context.Context
	opts     Options
	limiter  *rate.Limiter
	log      *zap.Logger
	requestF func(method string, body []byte) ([]byte, error)
}

// Options defines options for the RPC client. All values are optional.
type Options struct {
	// Cert and Key are paths to the client certificate pair. Chia services
	// authenticate callers with mutual TLS, the daemon generates a private
	// CA and per-service certificates on first start.
	Cert string
	Key  string
	// CACert is the path to the CA certificate used to verify the service.
	// When empty, server certificate verification is skipped: service
	// certificates are signed by a per-installation private CA and won't
	// chain to anything in the system pool.
	CACert         string
	DialTimeout    time.Duration
	RequestTimeout time.Duration
	// Limit total number of connections per host. No limit by default.
	MaxConnsPerHost int
	// RequestsPerSecond throttles outgoing calls when positive. Calls over
	// the limit block until allowed (or until the client context is done).
	RequestsPerSecond float64
	// Logger is used by WSClient for connection lifecycle events. The HTTP
	// client itself never logs. Defaults to a no-op logger.
	Logger *zap.Logger
}

// New returns a new Client ready to use. The endpoint is the base URL of one
// service, e.g. https://localhost:8555/ for a local full node. The given
// context bounds the life of every request issued through the client; note
// that cancelling it mid-call leaves the remote effect of that call unknown.
func New(ctx context.Context, endpoint string, opts Options) (*Client, error) {
	cl := new(Client)
	err := initClient(ctx, cl, endpoint, opts)
	if err != nil {
		return nil, err
	}
	return cl, nil
}

func initClient(ctx context.Context, cl *Client, endpoint string, opts Options) error {
	url, err := url.Parse(endpoint)
	if err != nil {
		return err
	}
	if url.Scheme != "http" && url.Scheme != "https" {
		return fmt.Errorf("unsupported URL scheme: %s", url.Scheme)
	}

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
		return err
	}
	httpClient := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout: opts.DialTimeout,
			}).DialContext,
			TLSClientConfig: tlsConf,
			MaxConnsPerHost: opts.MaxConnsPerHost,
		},
		Timeout: opts.RequestTimeout,
	}

	cl.ctx = ctx
	cl.cli = httpClient
	cl.endpoint = url
	cl.opts = opts
	cl.log = opts.Logger
	if opts.RequestsPerSecond > 0 {
		cl.limiter = rate.NewLimiter(rate.Limit(opts.RequestsPerSecond), 1)
	}
	cl.requestF = cl.makeHTTPRequest
	return nil
}

// newTLSConfig assembles the client-certificate TLS setup shared by Client and
// WSClient. It returns nil when no certificate material is configured, leaving
// plain HTTP endpoints (tests, proxies) untouched.
func newTLSConfig(opts Options) (*tls.Config, error) {
	if opts.Cert == "" && opts.Key == "" && opts.CACert == "" {
		return nil, nil
	}
	conf := &tls.Config{}
	if opts.Cert != "" || opts.Key != "" {
		pair, err := tls.LoadX509KeyPair(opts.Cert, opts.Key)
		if err != nil {
			return nil, fmt.Errorf("loading client certificate: %w", err)
		}
		conf.Certificates = []tls.Certificate{pair}
	}
	if opts.CACert != "" {
		pem, err := os.ReadFile(opts.CACert)
		if err != nil {
			return nil, fmt.Errorf("loading CA certificate: %w", err)
		}
		pool := x509.NewCertPool()
		if !pool.AppendCertsFromPEM(pem) {
			return nil, errors.New("no certificates found in CA file")
		}
		conf.RootCAs = pool
	} else {
		conf.InsecureSkipVerify = true
	}
	return conf, nil
}

// Close closes unused underlying network connections.
func (c *Client) Close() {
	c.cli.CloseIdleConnections()
}

// Call performs a single request/response exchange: params are marshaled to a
// JSON body, POSTed to the method-named path of the endpoint and the decoded
// payload is unmarshaled into result (which can be nil if the caller only
// cares about the success flag). A nil params value is sent as an empty
// object, services require a JSON object body even for parameterless methods.
//
// Failures are *chiarpc.Error values classified by kind: chiarpc.Transport for
// connection and timeout problems, chiarpc.Decode for malformed responses and
// chiarpc.Remote when the service reports the call itself failed. There are no
// retries at this level; a timed-out or cancelled call may still have taken
// effect remotely, so retrying state-changing methods is strictly a caller
// decision.
func (c *Client) Call(method string, params any, result any) error {
	if method == "" {
		return errors.New("empty method name")
	}
	if params == nil {
		params = struct{}{}
	}
	body, err := json.Marshal(params)
	if err != nil {
		return fmt.Errorf("parameters marshaling: %w", err)
	}
	if c.limiter != nil {
		if err := c.limiter.Wait(c.ctx); err != nil {
			return chiarpc.NewTransportError(method, err)
		}
	}

	start := time.Now()
	raw, err := c.requestF(method, body)
	if err != nil {
		addCallFailure(method, chiarpc.Transport)
		return chiarpc.NewTransportError(method, err)
	}
	addCallDuration(method, time.Since(start))

	var env chiarpc.Response
	if err := json.Unmarshal(raw, &env); err != nil {
		addCallFailure(method, chiarpc.Decode)
		return chiarpc.NewDecodeError(method, raw, err)
	}
	if !env.Success {
		addCallFailure(method, chiarpc.Remote)
		msg := env.Error
		if msg == "" {
			msg = "unknown error"
		}
		return chiarpc.NewRemoteError(method, msg, raw)
	}
	if result != nil {
		if err := json.Unmarshal(raw, result); err != nil {
			addCallFailure(method, chiarpc.Decode)
			return chiarpc.NewDecodeError(method, raw, err)
		}
	}
	addCallCompleted(method)
	return nil
}

// CallRaw is a Call variant returning the whole decoded payload as a generic
// mapping, an escape hatch for methods without a typed binding.
func (c *Client) CallRaw(method string, params any) (map[string]any, error) {
	resp := make(map[string]any)
	if err := c.Call(method, params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

func (c *Client) makeHTTPRequest(method string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(c.ctx, http.MethodPost, c.endpoint.JoinPath(method).String(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.cli.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	// Services answer with a proper JSON envelope even for failed calls, so
	// the body is more relevant than the HTTP status code when it parses.
	if resp.StatusCode != http.StatusOK && !json.Valid(data) {
		return nil, fmt.Errorf("HTTP %d/%s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return data, nil
}

// Ping attempts to create a connection to the endpoint and returns an error if
// there is any.
func (c *Client) Ping() error {
	conn, err := net.DialTimeout("tcp", c.endpoint.Host, c.opts.DialTimeout)
	if err != nil {
		return err
	}
	_ = conn.Close()
	return nil
}
