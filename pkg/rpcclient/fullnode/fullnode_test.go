package fullnode

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc"
)

// fakeCaller records the last call and feeds a canned payload back.
type fakeCaller struct {
	method  string
	params  map[string]any
	payload string
	err     error
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
	if f.err != nil {
		return f.err
	}
	if result != nil {
		return json.Unmarshal([]byte(f.payload), result)
	}
	return nil
}

func TestGetBlockchainState(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"blockchain_state": {
			"peak": {"header_hash": "0xaa", "height": 4920627},
			"sync": {"synced": true},
			"difficulty": 1976,
			"space": 23400000000000000000,
			"mempool_size": 12
		}
	}`}
	fn := New(f)

	st, err := fn.GetBlockchainState()
	require.NoError(t, err)
	assert.Equal(t, "get_blockchain_state", f.method)
	assert.Empty(t, f.params)
	require.NotNil(t, st.Peak)
	assert.Equal(t, uint32(4920627), st.Peak.Height)
	assert.True(t, st.Sync.Synced)
	assert.Equal(t, "23400000000000000000", st.Space.String())
	assert.Equal(t, 12, st.MempoolSize)
}

func TestGetBlockRecordByHeight(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"block_record": {"header_hash": "0xbb", "height": 1000, "weight": 2000}
	}`}
	fn := New(f)

	rec, err := fn.GetBlockRecordByHeight(1000)
	require.NoError(t, err)
	assert.Equal(t, "get_block_record_by_height", f.method)
	assert.Equal(t, map[string]any{"height": float64(1000)}, f.params)
	assert.Equal(t, "0xbb", rec.HeaderHash)
}

func TestGetBlocksParams(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true, "blocks": []}`}
	fn := New(f)

	_, err := fn.GetBlocks(100, 200, true)
	require.NoError(t, err)
	assert.Equal(t, "get_blocks", f.method)
	assert.Equal(t, map[string]any{
		"start":               float64(100),
		"end":                 float64(200),
		"exclude_header_hash": true,
	}, f.params)
}

func TestGetCoinRecordsByPuzzleHash(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"coin_records": [{
			"coin": {"parent_coin_info": "0x01", "puzzle_hash": "0x02", "amount": 1750000000000},
			"confirmed_block_index": 4000,
			"spent": false
		}]
	}`}
	fn := New(f)

	recs, err := fn.GetCoinRecordsByPuzzleHash("0x02", CoinQuery{StartHeight: 3000, IncludeSpentCoins: true})
	require.NoError(t, err)
	assert.Equal(t, "get_coin_records_by_puzzle_hash", f.method)
	assert.Equal(t, "0x02", f.params["puzzle_hash"])
	assert.Equal(t, float64(3000), f.params["start_height"])
	assert.Equal(t, true, f.params["include_spent_coins"])
	assert.NotContains(t, f.params, "end_height")
	require.Len(t, recs, 1)
	assert.Equal(t, uint64(1750000000000), recs[0].Coin.Amount)
}

func TestPushTx(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true, "status": "SUCCESS"}`}
	fn := New(f)

	bundle := json.RawMessage(`{"coin_spends": [], "aggregated_signature": "0xc0"}`)
	status, err := fn.PushTx(bundle)
	require.NoError(t, err)
	assert.Equal(t, "push_tx", f.method)
	assert.Equal(t, "SUCCESS", status)
	assert.Contains(t, f.params, "spend_bundle")
}

func TestGetNetworkSpace(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true, "space": 35100000000000000000}`}
	fn := New(f)

	space, err := fn.GetNetworkSpace("0xold", "0xnew")
	require.NoError(t, err)
	assert.Equal(t, "get_network_space", f.method)
	assert.Equal(t, map[string]any{
		"older_block_header_hash": "0xold",
		"newer_block_header_hash": "0xnew",
	}, f.params)
	assert.Equal(t, "35100000000000000000", space.String())
}

func TestGetAllMempoolItems(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"mempool_items": {
			"0xdead": {"fee": 50, "cost": 11000000}
		}
	}`}
	fn := New(f)

	items, err := fn.GetAllMempoolItems()
	require.NoError(t, err)
	require.Contains(t, items, "0xdead")
	assert.Equal(t, uint64(50), items["0xdead"].Fee)
}

func TestErrorPassthrough(t *testing.T) {
	want := chiarpc.NewRemoteError("get_block", "Block 0xcc not found", nil)
	f := &fakeCaller{err: want}
	fn := New(f)

	_, err := fn.GetBlock("0xcc")
	require.ErrorIs(t, err, chiarpc.ErrRemote)
	assert.Equal(t, want, err)
}
