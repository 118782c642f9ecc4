// Package harvester provides a typed facade over the harvester service RPC API.
package harvester

import (
	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// Caller is an RPC transport the facade issues its calls through. It is
// implemented by rpcclient.Client.
type Caller interface {
	Call(method string, params any, result any) error
}

// Client wraps the harvester-specific methods.
type Client struct {
	c Caller
}

// New creates a harvester facade over the given Caller.
func New(c Caller) *Client {
	return &Client{c: c}
}

// Plots is the get_plots response, splitting the harvester's plot files into
// loaded, unreadable and keyless sets.
type Plots struct {
	Plots                 []result.Plot `json:"plots"`
	FailedToOpenFilenames []string      `json:"failed_to_open_filenames"`
	NotFoundFilenames     []string      `json:"not_found_filenames"`
}

// GetPlots returns the harvester's current plot inventory.
func (h *Client) GetPlots() (*Plots, error) {
	resp := new(Plots)
	if err := h.c.Call("get_plots", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// RefreshPlots triggers a rescan of the plot directories.
func (h *Client) RefreshPlots() error {
	return h.c.Call("refresh_plots", nil, nil)
}

// DeletePlot removes a plot file from disk.
func (h *Client) DeletePlot(filename string) error {
	params := map[string]any{"filename": filename}
	return h.c.Call("delete_plot", params, nil)
}

// AddPlotDirectory adds a directory to the harvester's plot search path.
func (h *Client) AddPlotDirectory(dirname string) error {
	params := map[string]any{"dirname": dirname}
	return h.c.Call("add_plot_directory", params, nil)
}

// RemovePlotDirectory removes a directory from the plot search path. Plot
// files inside it are left untouched.
func (h *Client) RemovePlotDirectory(dirname string) error {
	params := map[string]any{"dirname": dirname}
	return h.c.Call("remove_plot_directory", params, nil)
}

// GetPlotDirectories lists the configured plot directories.
func (h *Client) GetPlotDirectories() ([]string, error) {
	var resp struct {
		Directories []string `json:"directories"`
	}
	if err := h.c.Call("get_plot_directories", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Directories, nil
}
