package harvester

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCaller struct {
	method  string
	params  map[string]any
	payload string
}

func (f *fakeCaller) Call(method string, params any, result any) error {
	f.method = method
	raw, err := json.Marshal(params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, &f.params); err != nil {
		return err
	}
	if result != nil {
		return json.Unmarshal([]byte(f.payload), result)
	}
	return nil
}

func TestGetPlots(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"plots": [{"filename": "/plots/a.plot", "plot_id": "0xp1", "size": 32}],
		"failed_to_open_filenames": ["/plots/broken.plot"],
		"not_found_filenames": []
	}`}
	h := New(f)

	plots, err := h.GetPlots()
	require.NoError(t, err)
	assert.Equal(t, "get_plots", f.method)
	require.Len(t, plots.Plots, 1)
	assert.Equal(t, "0xp1", plots.Plots[0].PlotID)
	assert.Equal(t, []string{"/plots/broken.plot"}, plots.FailedToOpenFilenames)
	assert.Empty(t, plots.NotFoundFilenames)
}

func TestPlotDirectories(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true, "directories": ["/plots", "/mnt/plots2"]}`}
	h := New(f)

	require.NoError(t, h.AddPlotDirectory("/mnt/plots2"))
	assert.Equal(t, "add_plot_directory", f.method)
	assert.Equal(t, map[string]any{"dirname": "/mnt/plots2"}, f.params)

	dirs, err := h.GetPlotDirectories()
	require.NoError(t, err)
	assert.Equal(t, "get_plot_directories", f.method)
	assert.Equal(t, []string{"/plots", "/mnt/plots2"}, dirs)

	require.NoError(t, h.RemovePlotDirectory("/mnt/plots2"))
	assert.Equal(t, "remove_plot_directory", f.method)
}

func TestDeletePlot(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true}`}
	h := New(f)

	require.NoError(t, h.DeletePlot("/plots/a.plot"))
	assert.Equal(t, "delete_plot", f.method)
	assert.Equal(t, map[string]any{"filename": "/plots/a.plot"}, f.params)
}
