package wallet

import (
	"encoding/json"

	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// Node wraps the wallet service methods concerned with its own view of the
// chain rather than with any particular wallet.
type Node struct {
	c Caller
}

// NewNode creates a wallet node facade over the given Caller.
func NewNode(c Caller) *Node {
	return &Node{c: c}
}

// SyncStatus is the wallet's synchronization state.
type SyncStatus struct {
	GenesisInitialized bool `json:"genesis_initialized"`
	Synced             bool `json:"synced"`
	Syncing            bool `json:"syncing"`
}

// GetSyncStatus reports the wallet's synchronization state.
func (n *Node) GetSyncStatus() (*SyncStatus, error) {
	resp := new(SyncStatus)
	if err := n.c.Call("get_sync_status", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetHeightInfo returns the chain height the wallet has synced to.
func (n *Node) GetHeightInfo() (uint32, error) {
	var resp struct {
		Height uint32 `json:"height"`
	}
	if err := n.c.Call("get_height_info", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Height, nil
}

// GetTimestampForHeight returns the timestamp of the block at the given height.
func (n *Node) GetTimestampForHeight(height uint32) (uint64, error) {
	var resp struct {
		Timestamp uint64 `json:"timestamp"`
	}
	params := map[string]any{"height": height}
	if err := n.c.Call("get_timestamp_for_height", params, &resp); err != nil {
		return 0, err
	}
	return resp.Timestamp, nil
}

// PushTX submits a pre-built, pre-signed spend bundle through the wallet service.
func (n *Node) PushTX(spendBundle json.RawMessage) error {
	params := map[string]any{"spend_bundle": spendBundle}
	return n.c.Call("push_tx", params, nil)
}

// PushTransactions submits several signed transaction records at once.
func (n *Node) PushTransactions(transactions []result.TransactionRecord) error {
	params := map[string]any{"transactions": transactions}
	return n.c.Call("push_transactions", params, nil)
}

// SetWalletResyncOnStartup makes the wallet rebuild its state from the chain
// on next start.
func (n *Node) SetWalletResyncOnStartup(enable bool) error {
	params := map[string]any{"enable": enable}
	return n.c.Call("set_wallet_resync_on_startup", params, nil)
}
