package crawler

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

func TestGetPeerCounts(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"peer_counts": {
			"total_last_5_days": 25000,
			"reliable_nodes": 700,
			"ipv4_last_5_days": 24000,
			"ipv6_last_5_days": 1000,
			"versions": {"2.1.4": 12000}
		}
	}`}
	c := New(f)

	pc, err := c.GetPeerCounts()
	require.NoError(t, err)
	assert.Equal(t, "get_peer_counts", f.method)
	assert.Equal(t, 25000, pc.TotalLast5Days)
	assert.Equal(t, 700, pc.ReliableNodes)
	assert.Equal(t, 12000, pc.Versions["2.1.4"])
}

func TestGetIPsAfterTimestamp(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"ips": ["1.2.3.4", "5.6.7.8"],
		"total": 9000
	}`}
	c := New(f)

	ips, total, err := c.GetIPsAfterTimestamp(1700000000, 0, 2)
	require.NoError(t, err)
	assert.Equal(t, "get_ips_after_timestamp", f.method)
	assert.Equal(t, map[string]any{
		"after":  float64(1700000000),
		"offset": float64(0),
		"limit":  float64(2),
	}, f.params)
	assert.Equal(t, []string{"1.2.3.4", "5.6.7.8"}, ips)
	assert.Equal(t, 9000, total)
}
