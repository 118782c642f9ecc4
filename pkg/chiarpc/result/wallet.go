package result

import "encoding/json"

type (
	// WalletBalance is the balance breakdown of a single wallet. Balances
	// are json.Number since CAT wallets can legitimately exceed uint64
	// when multiplied by their unit divisor.
	WalletBalance struct {
		WalletID                 uint32      `json:"wallet_id"`
		Fingerprint              uint32      `json:"fingerprint"`
		ConfirmedWalletBalance   json.Number `json:"confirmed_wallet_balance"`
		UnconfirmedWalletBalance json.Number `json:"unconfirmed_wallet_balance"`
		SpendableBalance         json.Number `json:"spendable_balance"`
		MaxSendAmount            json.Number `json:"max_send_amount"`
		PendingChange            uint64      `json:"pending_change"`
		PendingCoinRemovalCount  int         `json:"pending_coin_removal_count"`
		UnspentCoinCount         int         `json:"unspent_coin_count"`
		WalletType               int         `json:"wallet_type"`
		AssetID                  *string     `json:"asset_id"`
	}

	// WalletInfo identifies one wallet of the logged-in key.
	WalletInfo struct {
		ID   uint32 `json:"id"`
		Name string `json:"name"`
		Type int    `json:"type"`
		Data string `json:"data"`
	}

	// PrivateKey is the key material the wallet service returns for a
	// fingerprint. The binding treats it as opaque strings, key handling
	// stays on the node side.
	PrivateKey struct {
		Fingerprint uint32 `json:"fingerprint"`
		SK          string `json:"sk"`
		PK          string `json:"pk"`
		FarmerPK    string `json:"farmer_pk"`
		PoolPK      string `json:"pool_pk"`
		Seed        string `json:"seed"`
	}

	// SpendableCoin is one entry of get_spendable_coins.
	SpendableCoin struct {
		Coin                Coin   `json:"coin"`
		ConfirmedBlockIndex uint32 `json:"confirmed_block_index"`
		Timestamp           uint64 `json:"timestamp"`
	}

	// Notification is an on-chain wallet notification.
	Notification struct {
		ID      string `json:"id"`
		Message string `json:"message"`
		Amount  uint64 `json:"amount"`
		Height  uint32 `json:"height"`
	}

	// FarmedAmount summarizes farming rewards collected by the wallet.
	FarmedAmount struct {
		FarmedAmount       uint64 `json:"farmed_amount"`
		FarmerRewardAmount uint64 `json:"farmer_reward_amount"`
		PoolRewardAmount   uint64 `json:"pool_reward_amount"`
		FeeAmount          uint64 `json:"fee_amount"`
		LastHeightFarmed   uint32 `json:"last_height_farmed"`
		BlocksWon          uint32 `json:"blocks_won"`
		LastTimeFarmed     uint64 `json:"last_time_farmed"`
	}
)
