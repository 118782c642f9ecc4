/*
Package result contains typed payload structures for responses of Chia RPC
services. Amounts are given in mojos, hashes and puzzle hashes are 0x-prefixed
hex strings exactly as the services send them. Deeply nested structures a
binding has no business interpreting (proofs, spend bundles, solvers) are kept
as raw JSON for the caller to decode further if needed.
*/
package result

import "encoding/json"

type (
	// BlockchainState is the full node state snapshot returned by the
	// get_blockchain_state call.
	BlockchainState struct {
		Peak                        *BlockRecord `json:"peak"`
		GenesisChallengeInitialized bool         `json:"genesis_challenge_initialized"`
		Sync                        SyncState    `json:"sync"`
		Difficulty                  uint64       `json:"difficulty"`
		SubSlotIters                uint64       `json:"sub_slot_iters"`
		// Space is the estimated network space in bytes. It doesn't fit
		// into uint64 on bigger networks, hence json.Number.
		Space               json.Number `json:"space"`
		MempoolSize         int         `json:"mempool_size"`
		MempoolCost         uint64      `json:"mempool_cost"`
		MempoolMinFees      MempoolFees `json:"mempool_min_fees"`
		MempoolMaxTotalCost uint64      `json:"mempool_max_total_cost"`
		BlockMaxCost        uint64      `json:"block_max_cost"`
		NodeID              string      `json:"node_id"`
	}

	// SyncState describes the node's synchronization progress.
	SyncState struct {
		SyncMode           bool   `json:"sync_mode"`
		Synced             bool   `json:"synced"`
		SyncProgressHeight uint32 `json:"sync_progress_height"`
		SyncTipHeight      uint32 `json:"sync_tip_height"`
	}

	// MempoolFees holds minimal fee rates for mempool inclusion.
	MempoolFees struct {
		Cost5000000 float64 `json:"cost_5000000"`
	}
)
