package rpcclient

import (
	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// Methods of this file are exposed by every Chia service, so they're defined
// on Client directly rather than on a per-service facade.

// GetConnections returns the list of peer connections of the service.
func (c *Client) GetConnections() ([]result.Connection, error) {
	var resp struct {
		Connections []result.Connection `json:"connections"`
	}
	if err := c.Call("get_connections", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Connections, nil
}

// OpenConnection asks the service to connect to another node.
func (c *Client) OpenConnection(host string, port uint16) error {
	params := map[string]any{"ip": host, "port": port}
	return c.Call("open_connection", params, nil)
}

// CloseConnection drops the peer connection with the given node id.
func (c *Client) CloseConnection(nodeID string) error {
	params := map[string]any{"node_id": nodeID}
	return c.Call("close_connection", params, nil)
}

// GetRoutes lists the RPC routes the service exposes.
func (c *Client) GetRoutes() ([]string, error) {
	var resp struct {
		Routes []string `json:"routes"`
	}
	if err := c.Call("get_routes", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Routes, nil
}

// Healthz checks that the service is up and answering.
func (c *Client) Healthz() error {
	return c.Call("healthz", nil, nil)
}

// StopNode shuts the service down.
func (c *Client) StopNode() error {
	return c.Call("stop_node", nil, nil)
}

// GetNetworkInfo returns the name and address prefix of the network the
// service operates on.
func (c *Client) GetNetworkInfo() (*result.NetworkInfo, error) {
	resp := new(result.NetworkInfo)
	if err := c.Call("get_network_info", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetVersion returns the software version of the service.
func (c *Client) GetVersion() (string, error) {
	var resp struct {
		Version string `json:"version"`
	}
	if err := c.Call("get_version", nil, &resp); err != nil {
		return "", err
	}
	return resp.Version, nil
}
