package wallet

import (
	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// Keys wraps the key management methods of the wallet service. The key
// material never leaves the service except through GetPrivateKey, this facade
// only moves fingerprints around.
type Keys struct {
	c Caller
}

// NewKeys creates a key management facade over the given Caller.
func NewKeys(c Caller) *Keys {
	return &Keys{c: c}
}

// LogIn switches the wallet service to the key with the given fingerprint.
func (k *Keys) LogIn(fingerprint uint32) (uint32, error) {
	var resp struct {
		Fingerprint uint32 `json:"fingerprint"`
	}
	params := map[string]any{"fingerprint": fingerprint}
	if err := k.c.Call("log_in", params, &resp); err != nil {
		return 0, err
	}
	return resp.Fingerprint, nil
}

// GetLoggedInFingerprint returns the fingerprint of the currently active key.
func (k *Keys) GetLoggedInFingerprint() (uint32, error) {
	var resp struct {
		Fingerprint uint32 `json:"fingerprint"`
	}
	if err := k.c.Call("get_logged_in_fingerprint", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Fingerprint, nil
}

// GetPublicKeys lists the fingerprints of all keys the service stores.
func (k *Keys) GetPublicKeys() ([]uint32, error) {
	var resp struct {
		PublicKeyFingerprints []uint32 `json:"public_key_fingerprints"`
	}
	if err := k.c.Call("get_public_keys", nil, &resp); err != nil {
		return nil, err
	}
	return resp.PublicKeyFingerprints, nil
}

// GetPrivateKey returns the key material stored for a fingerprint.
func (k *Keys) GetPrivateKey(fingerprint uint32) (*result.PrivateKey, error) {
	var resp struct {
		PrivateKey result.PrivateKey `json:"private_key"`
	}
	params := map[string]any{"fingerprint": fingerprint}
	if err := k.c.Call("get_private_key", params, &resp); err != nil {
		return nil, err
	}
	return &resp.PrivateKey, nil
}

// GenerateMnemonic creates a fresh 24 word mnemonic without storing it.
func (k *Keys) GenerateMnemonic() ([]string, error) {
	var resp struct {
		Mnemonic []string `json:"mnemonic"`
	}
	if err := k.c.Call("generate_mnemonic", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Mnemonic, nil
}

// AddKey imports a key from its mnemonic and returns the new fingerprint.
func (k *Keys) AddKey(mnemonic []string) (uint32, error) {
	var resp struct {
		Fingerprint uint32 `json:"fingerprint"`
	}
	params := map[string]any{"mnemonic": mnemonic}
	if err := k.c.Call("add_key", params, &resp); err != nil {
		return 0, err
	}
	return resp.Fingerprint, nil
}

// DeleteKey removes the key with the given fingerprint from the service.
func (k *Keys) DeleteKey(fingerprint uint32) error {
	params := map[string]any{"fingerprint": fingerprint}
	return k.c.Call("delete_key", params, nil)
}

// DeleteAllKeys removes every key the service stores.
func (k *Keys) DeleteAllKeys() error {
	return k.c.Call("delete_all_keys", nil, nil)
}

// KeyUsage tells what a key is still used for, consulted before deletion.
type KeyUsage struct {
	Fingerprint          uint32 `json:"fingerprint"`
	UsedForFarmerRewards bool   `json:"used_for_farmer_rewards"`
	UsedForPoolRewards   bool   `json:"used_for_pool_rewards"`
	WalletBalance        bool   `json:"wallet_balance"`
}

// CheckDeleteKey reports whether the key with the given fingerprint is safe to
// delete.
func (k *Keys) CheckDeleteKey(fingerprint uint32) (*KeyUsage, error) {
	resp := new(KeyUsage)
	params := map[string]any{"fingerprint": fingerprint}
	if err := k.c.Call("check_delete_key", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// VerifySignature checks a signature made by sign_message_by_address or
// sign_message_by_id. Address and signingMode are optional and can be empty.
func (k *Keys) VerifySignature(pubkey, message, signature, address, signingMode string) (bool, error) {
	var resp struct {
		IsValid bool `json:"isValid"`
	}
	params := map[string]any{
		"pubkey":    pubkey,
		"message":   message,
		"signature": signature,
	}
	if address != "" {
		params["address"] = address
	}
	if signingMode != "" {
		params["signing_mode"] = signingMode
	}
	if err := k.c.Call("verify_signature", params, &resp); err != nil {
		return false, err
	}
	return resp.IsValid, nil
}
