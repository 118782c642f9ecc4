package wallet

import (
	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// Manager wraps wallet creation and enumeration.
type Manager struct {
	c Caller
}

// NewManager creates a wallet management facade over the given Caller.
func NewManager(c Caller) *Manager {
	return &Manager{c: c}
}

// NewWalletRequest describes a create_new_wallet call. WalletType is one of
// the service-defined type names ("cat_wallet", "did_wallet", "nft_wallet",
// "pool_wallet"), Mode is type-specific ("new" or "existing" for CATs).
type NewWalletRequest struct {
	WalletType string `json:"wallet_type"`
	Name       string `json:"name,omitempty"`
	Amount     uint64 `json:"amount,omitempty"`
	Fee        uint64 `json:"fee,omitempty"`
	Mode       string `json:"mode,omitempty"`
	AssetID    string `json:"asset_id,omitempty"`
}

// CreateNewWallet creates a wallet of the requested type under the logged-in
// key and returns its id and numeric type.
func (m *Manager) CreateNewWallet(req NewWalletRequest) (walletID uint32, walletType int, err error) {
	var resp struct {
		WalletID uint32 `json:"wallet_id"`
		Type     int    `json:"type"`
	}
	if err := m.c.Call("create_new_wallet", req, &resp); err != nil {
		return 0, 0, err
	}
	return resp.WalletID, resp.Type, nil
}

// GetWallets lists wallets of the logged-in key. A zero walletType means all
// types, includeData asks for the type-specific data blob of each wallet.
func (m *Manager) GetWallets(walletType int, includeData bool) ([]result.WalletInfo, error) {
	var resp struct {
		Wallets     []result.WalletInfo `json:"wallets"`
		Fingerprint uint32              `json:"fingerprint"`
	}
	params := map[string]any{
		"type":         walletType,
		"include_data": includeData,
	}
	if err := m.c.Call("get_wallets", params, &resp); err != nil {
		return nil, err
	}
	return resp.Wallets, nil
}
