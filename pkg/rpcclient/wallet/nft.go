package wallet

import (
	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// NFT wraps the NFT wallet methods of the wallet service.
type NFT struct {
	c Caller
}

// NewNFT creates an NFT facade over the given Caller.
func NewNFT(c Caller) *NFT {
	return &NFT{c: c}
}

// MintRequest describes an nft_mint_nft call. URIs and Hash cover the data
// payload, the remaining URI sets are optional.
type MintRequest struct {
	WalletID          uint32   `json:"wallet_id"`
	URIs              []string `json:"uris"`
	Hash              string   `json:"hash"`
	MetaURIs          []string `json:"meta_uris,omitempty"`
	MetaHash          string   `json:"meta_hash,omitempty"`
	LicenseURIs       []string `json:"license_uris,omitempty"`
	LicenseHash       string   `json:"license_hash,omitempty"`
	RoyaltyAddress    string   `json:"royalty_address,omitempty"`
	RoyaltyPercentage uint16   `json:"royalty_percentage,omitempty"`
	TargetAddress     string   `json:"target_address,omitempty"`
	EditionNumber     uint64   `json:"edition_number,omitempty"`
	EditionTotal      uint64   `json:"edition_total,omitempty"`
	DIDID             string   `json:"did_id,omitempty"`
	Fee               uint64   `json:"fee"`
	ReusePuzhash      bool     `json:"reuse_puzhash,omitempty"`
}

// Mint mints a new NFT and returns its launcher id together with the mint
// spend bundle.
func (n *NFT) Mint(req MintRequest) (nftID string, spendBundle map[string]any, err error) {
	var resp struct {
		NFTID       string         `json:"nft_id"`
		SpendBundle map[string]any `json:"spend_bundle"`
	}
	if err := n.c.Call("nft_mint_nft", req, &resp); err != nil {
		return "", nil, err
	}
	return resp.NFTID, resp.SpendBundle, nil
}

// GetNFTs lists NFTs held by an NFT wallet. startIndex and num page through
// the set; num 0 asks for everything.
func (n *NFT) GetNFTs(walletID uint32, startIndex, num int) ([]result.NFTInfo, error) {
	var resp struct {
		NFTList []result.NFTInfo `json:"nft_list"`
	}
	params := map[string]any{"wallet_id": walletID, "start_index": startIndex}
	if num != 0 {
		params["num"] = num
	}
	if err := n.c.Call("nft_get_nfts", params, &resp); err != nil {
		return nil, err
	}
	return resp.NFTList, nil
}

// GetInfo looks an NFT up on chain by any of its coin ids.
func (n *NFT) GetInfo(coinID string) (*result.NFTInfo, error) {
	var resp struct {
		NFTInfo result.NFTInfo `json:"nft_info"`
	}
	params := map[string]any{"coin_id": coinID}
	if err := n.c.Call("nft_get_info", params, &resp); err != nil {
		return nil, err
	}
	return &resp.NFTInfo, nil
}

// AddURI appends a URI to one of the NFT's URI lists. key selects the list,
// "u" for data, "mu" for metadata and "lu" for license URIs.
func (n *NFT) AddURI(walletID uint32, uri, key, nftCoinID string, fee uint64, reusePuzhash bool) (map[string]any, error) {
	var resp struct {
		SpendBundle map[string]any `json:"spend_bundle"`
	}
	params := map[string]any{
		"wallet_id":     walletID,
		"uri":           uri,
		"key":           key,
		"nft_coin_id":   nftCoinID,
		"fee":           fee,
		"reuse_puzhash": reusePuzhash,
	}
	if err := n.c.Call("nft_add_uri", params, &resp); err != nil {
		return nil, err
	}
	return resp.SpendBundle, nil
}

// Transfer sends an NFT to the given address.
func (n *NFT) Transfer(walletID uint32, nftCoinID, targetAddress string, fee uint64, reusePuzhash bool) (map[string]any, error) {
	var resp struct {
		SpendBundle map[string]any `json:"spend_bundle"`
	}
	params := map[string]any{
		"wallet_id":      walletID,
		"nft_coin_id":    nftCoinID,
		"target_address": targetAddress,
		"fee":            fee,
		"reuse_puzhash":  reusePuzhash,
	}
	if err := n.c.Call("nft_transfer_nft", params, &resp); err != nil {
		return nil, err
	}
	return resp.SpendBundle, nil
}

// SetDID assigns ownership of an NFT to a DID. An empty didID removes the
// current owner.
func (n *NFT) SetDID(walletID uint32, didID, nftCoinID string, fee uint64, reusePuzhash bool) (map[string]any, error) {
	var resp struct {
		SpendBundle map[string]any `json:"spend_bundle"`
	}
	params := map[string]any{
		"wallet_id":     walletID,
		"did_id":        didID,
		"nft_coin_id":   nftCoinID,
		"fee":           fee,
		"reuse_puzhash": reusePuzhash,
	}
	if err := n.c.Call("nft_set_nft_did", params, &resp); err != nil {
		return nil, err
	}
	return resp.SpendBundle, nil
}
