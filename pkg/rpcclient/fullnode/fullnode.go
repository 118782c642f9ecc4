/*
Package fullnode provides typed bindings for the Chia full node RPC service.

Every method shapes its arguments into the parameter mapping the node expects
and hands it to the generic Caller, no business logic happens here. Errors of
the underlying client propagate unchanged.
*/
package fullnode

import (
	"encoding/json"

	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// Caller is the generic RPC invocation mechanism used by Client, usually a
// *rpcclient.Client pointed at the full node endpoint.
type Caller interface {
	Call(method string, params any, result any) error
}

// Client wraps a Caller with full node specific methods.
type Client struct {
	c Caller
}

// New creates a full node facade over the given Caller.
func New(c Caller) *Client {
	return &Client{c: c}
}

// GetBlockchainState returns the node's view of the chain: peak, sync status,
// difficulty and mempool stats.
func (c *Client) GetBlockchainState() (*result.BlockchainState, error) {
	var resp struct {
		BlockchainState result.BlockchainState `json:"blockchain_state"`
	}
	if err := c.c.Call("get_blockchain_state", nil, &resp); err != nil {
		return nil, err
	}
	return &resp.BlockchainState, nil
}

// GetBlock returns a full block by its header hash.
func (c *Client) GetBlock(headerHash string) (*result.FullBlock, error) {
	var resp struct {
		Block result.FullBlock `json:"block"`
	}
	params := map[string]any{"header_hash": headerHash}
	if err := c.c.Call("get_block", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Block, nil
}

// GetBlocks returns full blocks in the [start, end) height range.
func (c *Client) GetBlocks(start, end uint32, excludeHeaderHash bool) ([]result.FullBlock, error) {
	var resp struct {
		Blocks []result.FullBlock `json:"blocks"`
	}
	params := map[string]any{
		"start":               start,
		"end":                 end,
		"exclude_header_hash": excludeHeaderHash,
	}
	if err := c.c.Call("get_blocks", params, &resp); err != nil {
		return nil, err
	}
	return resp.Blocks, nil
}

// GetBlockRecord returns the block record with the given header hash.
func (c *Client) GetBlockRecord(headerHash string) (*result.BlockRecord, error) {
	var resp struct {
		BlockRecord result.BlockRecord `json:"block_record"`
	}
	params := map[string]any{"header_hash": headerHash}
	if err := c.c.Call("get_block_record", params, &resp); err != nil {
		return nil, err
	}
	return &resp.BlockRecord, nil
}

// GetBlockRecordByHeight returns the block record at the given height of the
// current peak chain.
func (c *Client) GetBlockRecordByHeight(height uint32) (*result.BlockRecord, error) {
	var resp struct {
		BlockRecord result.BlockRecord `json:"block_record"`
	}
	params := map[string]any{"height": height}
	if err := c.c.Call("get_block_record_by_height", params, &resp); err != nil {
		return nil, err
	}
	return &resp.BlockRecord, nil
}

// GetBlockRecords returns block records in the [start, end) height range.
func (c *Client) GetBlockRecords(start, end uint32) ([]result.BlockRecord, error) {
	var resp struct {
		BlockRecords []result.BlockRecord `json:"block_records"`
	}
	params := map[string]any{"start": start, "end": end}
	if err := c.c.Call("get_block_records", params, &resp); err != nil {
		return nil, err
	}
	return resp.BlockRecords, nil
}

// GetUnfinishedBlockHeaders returns headers of blocks currently being farmed.
func (c *Client) GetUnfinishedBlockHeaders() ([]result.UnfinishedHeader, error) {
	var resp struct {
		Headers []result.UnfinishedHeader `json:"headers"`
	}
	if err := c.c.Call("get_unfinished_block_headers", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Headers, nil
}

// GetNetworkSpace estimates the network space in bytes between two blocks.
func (c *Client) GetNetworkSpace(olderBlockHeaderHash, newerBlockHeaderHash string) (json.Number, error) {
	var resp struct {
		Space json.Number `json:"space"`
	}
	params := map[string]any{
		"older_block_header_hash": olderBlockHeaderHash,
		"newer_block_header_hash": newerBlockHeaderHash,
	}
	if err := c.c.Call("get_network_space", params, &resp); err != nil {
		return "", err
	}
	return resp.Space, nil
}

// GetAdditionsAndRemovals returns the coins added and removed by the block
// with the given header hash.
func (c *Client) GetAdditionsAndRemovals(headerHash string) (additions []result.CoinRecord, removals []result.CoinRecord, err error) {
	var resp struct {
		Additions []result.CoinRecord `json:"additions"`
		Removals  []result.CoinRecord `json:"removals"`
	}
	params := map[string]any{"header_hash": headerHash}
	if err := c.c.Call("get_additions_and_removals", params, &resp); err != nil {
		return nil, nil, err
	}
	return resp.Additions, resp.Removals, nil
}

// GetCoinRecordByName looks a coin up by its name (coin id).
func (c *Client) GetCoinRecordByName(name string) (*result.CoinRecord, error) {
	var resp struct {
		CoinRecord result.CoinRecord `json:"coin_record"`
	}
	params := map[string]any{"name": name}
	if err := c.c.Call("get_coin_record_by_name", params, &resp); err != nil {
		return nil, err
	}
	return &resp.CoinRecord, nil
}

// CoinQuery bounds coin record lookups. Zero heights mean no bound, spent
// coins are included unless excluded explicitly.
type CoinQuery struct {
	StartHeight       uint32 `json:"start_height,omitempty"`
	EndHeight         uint32 `json:"end_height,omitempty"`
	IncludeSpentCoins bool   `json:"include_spent_coins"`
}

// GetCoinRecordsByNames looks coins up by their names (coin ids).
func (c *Client) GetCoinRecordsByNames(names []string, q CoinQuery) ([]result.CoinRecord, error) {
	return c.coinRecords("get_coin_records_by_names", "names", names, q)
}

// GetCoinRecordsByPuzzleHash returns coins with the given puzzle hash.
func (c *Client) GetCoinRecordsByPuzzleHash(puzzleHash string, q CoinQuery) ([]result.CoinRecord, error) {
	var resp struct {
		CoinRecords []result.CoinRecord `json:"coin_records"`
	}
	params := coinQueryParams(q)
	params["puzzle_hash"] = puzzleHash
	if err := c.c.Call("get_coin_records_by_puzzle_hash", params, &resp); err != nil {
		return nil, err
	}
	return resp.CoinRecords, nil
}

// GetCoinRecordsByPuzzleHashes returns coins with any of the given puzzle hashes.
func (c *Client) GetCoinRecordsByPuzzleHashes(puzzleHashes []string, q CoinQuery) ([]result.CoinRecord, error) {
	return c.coinRecords("get_coin_records_by_puzzle_hashes", "puzzle_hashes", puzzleHashes, q)
}

// GetCoinRecordsByParentIDs returns coins created by any of the given parents.
func (c *Client) GetCoinRecordsByParentIDs(parentIDs []string, q CoinQuery) ([]result.CoinRecord, error) {
	return c.coinRecords("get_coin_records_by_parent_ids", "parent_ids", parentIDs, q)
}

// GetCoinRecordsByHint returns coins hinted at by the given hint.
func (c *Client) GetCoinRecordsByHint(hint string, q CoinQuery) ([]result.CoinRecord, error) {
	var resp struct {
		CoinRecords []result.CoinRecord `json:"coin_records"`
	}
	params := coinQueryParams(q)
	params["hint"] = hint
	if err := c.c.Call("get_coin_records_by_hint", params, &resp); err != nil {
		return nil, err
	}
	return resp.CoinRecords, nil
}

func (c *Client) coinRecords(method, key string, values []string, q CoinQuery) ([]result.CoinRecord, error) {
	var resp struct {
		CoinRecords []result.CoinRecord `json:"coin_records"`
	}
	params := coinQueryParams(q)
	params[key] = values
	if err := c.c.Call(method, params, &resp); err != nil {
		return nil, err
	}
	return resp.CoinRecords, nil
}

func coinQueryParams(q CoinQuery) map[string]any {
	params := map[string]any{
		"include_spent_coins": q.IncludeSpentCoins,
	}
	if q.StartHeight != 0 {
		params["start_height"] = q.StartHeight
	}
	if q.EndHeight != 0 {
		params["end_height"] = q.EndHeight
	}
	return params
}

// PushTx submits a spend bundle to the mempool. The bundle is a pre-built,
// pre-signed JSON structure, this binding doesn't construct or sign spends.
// The returned status is the node's mempool inclusion status string.
func (c *Client) PushTx(spendBundle json.RawMessage) (string, error) {
	var resp struct {
		Status string `json:"status"`
	}
	params := map[string]any{"spend_bundle": spendBundle}
	if err := c.c.Call("push_tx", params, &resp); err != nil {
		return "", err
	}
	return resp.Status, nil
}

// GetPuzzleAndSolution returns the puzzle and solution a coin was spent with.
func (c *Client) GetPuzzleAndSolution(coinID string, height uint32) (*result.CoinSpend, error) {
	var resp struct {
		CoinSolution result.CoinSpend `json:"coin_solution"`
	}
	params := map[string]any{"coin_id": coinID, "height": height}
	if err := c.c.Call("get_puzzle_and_solution", params, &resp); err != nil {
		return nil, err
	}
	return &resp.CoinSolution, nil
}

// GetAllMempoolTxIDs lists the ids of all spend bundles currently in the mempool.
func (c *Client) GetAllMempoolTxIDs() ([]string, error) {
	var resp struct {
		TxIDs []string `json:"tx_ids"`
	}
	if err := c.c.Call("get_all_mempool_tx_ids", nil, &resp); err != nil {
		return nil, err
	}
	return resp.TxIDs, nil
}

// GetAllMempoolItems returns the whole mempool keyed by spend bundle id.
func (c *Client) GetAllMempoolItems() (map[string]result.MempoolItem, error) {
	var resp struct {
		MempoolItems map[string]result.MempoolItem `json:"mempool_items"`
	}
	if err := c.c.Call("get_all_mempool_items", nil, &resp); err != nil {
		return nil, err
	}
	return resp.MempoolItems, nil
}

// GetMempoolItemByTxID returns one mempool entry by its spend bundle id.
func (c *Client) GetMempoolItemByTxID(txID string) (*result.MempoolItem, error) {
	var resp struct {
		MempoolItem result.MempoolItem `json:"mempool_item"`
	}
	params := map[string]any{"tx_id": txID}
	if err := c.c.Call("get_mempool_item_by_tx_id", params, &resp); err != nil {
		return nil, err
	}
	return &resp.MempoolItem, nil
}

// GetFeeEstimate asks the node for a fee rate that should get a transaction of
// the given cost included within each of the target times (in seconds).
func (c *Client) GetFeeEstimate(cost uint64, targetTimes []uint64) (*result.FeeEstimate, error) {
	resp := new(result.FeeEstimate)
	params := map[string]any{"cost": cost, "target_times": targetTimes}
	if err := c.c.Call("get_fee_estimate", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
