package result

import "encoding/json"

type (
	// TransactionRecord describes a wallet transaction in any state, from
	// pending to confirmed.
	TransactionRecord struct {
		Name              string            `json:"name"`
		WalletID          uint32            `json:"wallet_id"`
		Amount            uint64            `json:"amount"`
		FeeAmount         uint64            `json:"fee_amount"`
		Confirmed         bool              `json:"confirmed"`
		ConfirmedAtHeight uint32            `json:"confirmed_at_height"`
		CreatedAtTime     uint64            `json:"created_at_time"`
		ToAddress         string            `json:"to_address"`
		ToPuzzleHash      string            `json:"to_puzzle_hash"`
		Type              int               `json:"type"`
		Sent              uint32            `json:"sent"`
		SentTo            json.RawMessage   `json:"sent_to"`
		TradeID           *string           `json:"trade_id"`
		SpendBundle       json.RawMessage   `json:"spend_bundle"`
		Additions         []Coin            `json:"additions"`
		Removals          []Coin            `json:"removals"`
		Memos             map[string]string `json:"memos"`
	}

	// MempoolItem is a spend bundle waiting in the full node mempool.
	MempoolItem struct {
		SpendBundle     json.RawMessage `json:"spend_bundle"`
		SpendBundleName string          `json:"spend_bundle_name"`
		Fee             uint64          `json:"fee"`
		Cost            uint64          `json:"cost"`
		Additions       []Coin          `json:"additions"`
		Removals        []Coin          `json:"removals"`
	}

	// FeeEstimate is the fee rate advice returned by get_fee_estimate.
	FeeEstimate struct {
		Estimates         []uint64 `json:"estimates"`
		TargetTimes       []uint64 `json:"target_times"`
		CurrentFeeRate    float64  `json:"current_fee_rate"`
		MempoolSize       uint64   `json:"mempool_size"`
		MempoolMaxSize    uint64   `json:"mempool_max_size"`
		FullNodeSynced    bool     `json:"full_node_synced"`
		PeakHeight        uint32   `json:"peak_height"`
		LastPeakTimestamp uint64   `json:"last_peak_timestamp"`
	}
)
