package wallet

import (
	"encoding/json"

	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// DID wraps the decentralized identity methods of the wallet service. Each
// DID is a singleton coin owned by one DID wallet.
type DID struct {
	c Caller
}

// NewDID creates a DID facade over the given Caller.
func NewDID(c Caller) *DID {
	return &DID{c: c}
}

// SetWalletName renames a DID wallet.
func (d *DID) SetWalletName(walletID uint32, name string) error {
	params := map[string]any{"wallet_id": walletID, "name": name}
	return d.c.Call("did_set_wallet_name", params, nil)
}

// GetWalletName returns the name of a DID wallet.
func (d *DID) GetWalletName(walletID uint32) (string, error) {
	var resp struct {
		Name string `json:"name"`
	}
	params := map[string]any{"wallet_id": walletID}
	if err := d.c.Call("did_get_wallet_name", params, &resp); err != nil {
		return "", err
	}
	return resp.Name, nil
}

// GetDID returns the DID identifier and latest coin id of a DID wallet.
func (d *DID) GetDID(walletID uint32) (didID, coinID string, err error) {
	var resp struct {
		MyDID  string `json:"my_did"`
		CoinID string `json:"coin_id"`
	}
	params := map[string]any{"wallet_id": walletID}
	if err := d.c.Call("did_get_did", params, &resp); err != nil {
		return "", "", err
	}
	return resp.MyDID, resp.CoinID, nil
}

// GetInfo looks a DID up on chain by one of its coin ids. With latest set the
// node follows the singleton to its most recent state first.
func (d *DID) GetInfo(coinID string, latest bool) (*result.DIDInfo, error) {
	resp := new(result.DIDInfo)
	params := map[string]any{"coin_id": coinID, "latest": latest}
	if err := d.c.Call("did_get_info", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetPubkey returns the public key controlling a DID wallet.
func (d *DID) GetPubkey(walletID uint32) (string, error) {
	var resp struct {
		Pubkey string `json:"pubkey"`
	}
	params := map[string]any{"wallet_id": walletID}
	if err := d.c.Call("did_get_pubkey", params, &resp); err != nil {
		return "", err
	}
	return resp.Pubkey, nil
}

// GetRecoveryList returns the DID ids that can recover this wallet and how
// many of them are required.
func (d *DID) GetRecoveryList(walletID uint32) (list []string, required uint16, err error) {
	var resp struct {
		RecoveryList []string `json:"recovery_list"`
		NumRequired  uint16   `json:"num_required"`
	}
	params := map[string]any{"wallet_id": walletID}
	if err := d.c.Call("did_get_recovery_list", params, &resp); err != nil {
		return nil, 0, err
	}
	return resp.RecoveryList, resp.NumRequired, nil
}

// UpdateRecoveryIDs replaces the recovery list of a DID wallet. A zero
// numVerificationsRequired keeps the server default.
func (d *DID) UpdateRecoveryIDs(walletID uint32, newList []string, numVerificationsRequired uint16, reusePuzhash bool) error {
	params := map[string]any{
		"wallet_id":                  walletID,
		"new_list":                   newList,
		"num_verifications_required": numVerificationsRequired,
		"reuse_puzhash":              reusePuzhash,
	}
	return d.c.Call("did_update_recovery_ids", params, nil)
}

// GetMetadata returns the metadata stored in a DID wallet.
func (d *DID) GetMetadata(walletID uint32) (json.RawMessage, error) {
	var resp struct {
		Metadata json.RawMessage `json:"metadata"`
	}
	params := map[string]any{"wallet_id": walletID}
	if err := d.c.Call("did_get_metadata", params, &resp); err != nil {
		return nil, err
	}
	return resp.Metadata, nil
}

// UpdateMetadata replaces the metadata of a DID singleton on chain.
func (d *DID) UpdateMetadata(walletID uint32, metadata map[string]any, fee uint64, reusePuzhash bool) error {
	params := map[string]any{
		"wallet_id":     walletID,
		"metadata":      metadata,
		"fee":           fee,
		"reuse_puzhash": reusePuzhash,
	}
	return d.c.Call("did_update_metadata", params, nil)
}

// GetCurrentCoinInfo returns the current singleton coin of a DID wallet.
func (d *DID) GetCurrentCoinInfo(walletID uint32) (didID string, parent string, innerPuzzle string, amount uint64, err error) {
	var resp struct {
		MyDID          string `json:"my_did"`
		DIDParent      string `json:"did_parent"`
		DIDInnerPuzzle string `json:"did_innerpuz"`
		DIDAmount      uint64 `json:"did_amount"`
	}
	params := map[string]any{"wallet_id": walletID}
	if err := d.c.Call("did_get_current_coin_info", params, &resp); err != nil {
		return "", "", "", 0, err
	}
	return resp.MyDID, resp.DIDParent, resp.DIDInnerPuzzle, resp.DIDAmount, nil
}

// GetInformationNeededForRecovery returns the data a recovering party needs
// to produce attests for this wallet.
func (d *DID) GetInformationNeededForRecovery(walletID uint32) (json.RawMessage, error) {
	resp := json.RawMessage{}
	params := map[string]any{"wallet_id": walletID}
	if err := d.c.Call("did_get_information_needed_for_recovery", params, &resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CreateAttest produces an attest from this DID wallet for another wallet's
// recovery. It returns the serialized message spend bundle, the attest data
// and the wallet's coin info.
func (d *DID) CreateAttest(walletID uint32, coinName, pubkey, puzhash string) (messageSpendBundle string, info json.RawMessage, err error) {
	var resp struct {
		MessageSpendBundle string          `json:"message_spend_bundle"`
		Info               json.RawMessage `json:"info"`
	}
	params := map[string]any{
		"wallet_id": walletID,
		"coin_name": coinName,
		"pubkey":    pubkey,
		"puzhash":   puzhash,
	}
	if err := d.c.Call("did_create_attest", params, &resp); err != nil {
		return "", nil, err
	}
	return resp.MessageSpendBundle, resp.Info, nil
}

// RecoverySpend recovers a DID wallet using attests collected from its
// recovery list.
func (d *DID) RecoverySpend(walletID uint32, attestData []string, pubkey, puzhash string) (json.RawMessage, error) {
	var resp struct {
		SpendBundle json.RawMessage `json:"spend_bundle"`
	}
	params := map[string]any{
		"wallet_id":   walletID,
		"attest_data": attestData,
		"pubkey":      pubkey,
		"puzhash":     puzhash,
	}
	if err := d.c.Call("did_recovery_spend", params, &resp); err != nil {
		return nil, err
	}
	return resp.SpendBundle, nil
}

// MessageSpend spends the DID singleton to publish the given announcements.
func (d *DID) MessageSpend(walletID uint32, coinAnnouncements, puzzleAnnouncements []string) (json.RawMessage, error) {
	var resp struct {
		SpendBundle json.RawMessage `json:"spend_bundle"`
	}
	params := map[string]any{
		"wallet_id":            walletID,
		"coin_announcements":   coinAnnouncements,
		"puzzle_announcements": puzzleAnnouncements,
	}
	if err := d.c.Call("did_message_spend", params, &resp); err != nil {
		return nil, err
	}
	return resp.SpendBundle, nil
}

// CreateBackupFile returns the backup data of a DID wallet.
func (d *DID) CreateBackupFile(walletID uint32) (string, error) {
	var resp struct {
		BackupData string `json:"backup_data"`
	}
	params := map[string]any{"wallet_id": walletID}
	if err := d.c.Call("did_create_backup_file", params, &resp); err != nil {
		return "", err
	}
	return resp.BackupData, nil
}

// TransferDID hands the DID over to a new owner address.
func (d *DID) TransferDID(walletID uint32, innerAddress string, fee uint64, withRecoveryInfo, reusePuzhash bool) (*result.TransactionRecord, error) {
	var resp struct {
		Transaction result.TransactionRecord `json:"transaction"`
	}
	params := map[string]any{
		"wallet_id":          walletID,
		"inner_address":      innerAddress,
		"fee":                fee,
		"with_recovery_info": withRecoveryInfo,
		"reuse_puzhash":      reusePuzhash,
	}
	if err := d.c.Call("did_transfer_did", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

// FindLostDID recreates the wallet for a DID the local state has lost track
// of, identified by any of its coin ids.
func (d *DID) FindLostDID(coinID string) (latestCoinID string, err error) {
	var resp struct {
		LatestCoinID string `json:"latest_coin_id"`
	}
	params := map[string]any{"coin_id": coinID}
	if err := d.c.Call("did_find_lost_did", params, &resp); err != nil {
		return "", err
	}
	return resp.LatestCoinID, nil
}
