// Package crawler provides a typed facade over the seeder crawler RPC API.
package crawler

import (
	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// Caller is an RPC transport the facade issues its calls through. It is
// implemented by rpcclient.Client.
type Caller interface {
	Call(method string, params any, result any) error
}

// Client wraps the crawler-specific methods.
type Client struct {
	c Caller
}

// New creates a crawler facade over the given Caller.
func New(c Caller) *Client {
	return &Client{c: c}
}

// GetPeerCounts returns aggregate statistics about the peers the crawler has
// discovered.
func (c *Client) GetPeerCounts() (*result.PeerCounts, error) {
	var resp struct {
		PeerCounts result.PeerCounts `json:"peer_counts"`
	}
	if err := c.c.Call("get_peer_counts", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.PeerCounts, nil
}

// GetIPsAfterTimestamp pages through peer IPs last seen after the given unix
// timestamp. total is the full count matching the timestamp, independent of
// paging.
func (c *Client) GetIPsAfterTimestamp(after int64, offset, limit int) (ips []string, total int, err error) {
	var resp struct {
		IPs   []string `json:"ips"`
		Total int      `json:"total"`
	}
	params := map[string]any{"after": after, "offset": offset}
	if limit != 0 {
		params["limit"] = limit
	}
	if err := c.c.Call("get_ips_after_timestamp", params, &resp); err != nil {
		return nil, 0, err
	}
	return resp.IPs, resp.Total, nil
}
