package wallet

import (
	"encoding/json"
	"strings"

	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// CAT wraps the Chia Asset Token methods of the wallet service together with
// the offer (trade) machinery built on top of them.
type CAT struct {
	c Caller
}

// NewCAT creates a CAT facade over the given Caller.
func NewCAT(c Caller) *CAT {
	return &CAT{c: c}
}

// SetName renames a CAT wallet.
func (c *CAT) SetName(walletID uint32, name string) error {
	params := map[string]any{"wallet_id": walletID, "name": name}
	return c.c.Call("cat_set_name", params, nil)
}

// GetName returns the asset name of a CAT wallet.
func (c *CAT) GetName(walletID uint32) (string, error) {
	var resp struct {
		Name string `json:"name"`
	}
	params := map[string]any{"wallet_id": walletID}
	if err := c.c.Call("cat_get_name", params, &resp); err != nil {
		return "", err
	}
	return resp.Name, nil
}

// GetAssetID returns the asset id of a CAT wallet.
func (c *CAT) GetAssetID(walletID uint32) (string, error) {
	var resp struct {
		AssetID string `json:"asset_id"`
	}
	params := map[string]any{"wallet_id": walletID}
	if err := c.c.Call("cat_get_asset_id", params, &resp); err != nil {
		return "", err
	}
	return resp.AssetID, nil
}

// AssetIDToName resolves an asset id to its name and owning wallet, if the
// wallet knows the asset.
func (c *CAT) AssetIDToName(assetID string) (name string, walletID *uint32, err error) {
	var resp struct {
		Name     string  `json:"name"`
		WalletID *uint32 `json:"wallet_id"`
	}
	params := map[string]any{"asset_id": assetID}
	if err := c.c.Call("cat_asset_id_to_name", params, &resp); err != nil {
		return "", nil, err
	}
	return resp.Name, resp.WalletID, nil
}

// Spend sends CAT funds to the given inner address. Options follow
// SendTransaction semantics.
func (c *CAT) Spend(walletID uint32, amount, fee uint64, innerAddress string, opts SendOptions) (*result.TransactionRecord, error) {
	var resp struct {
		Transaction result.TransactionRecord `json:"transaction"`
	}
	params := map[string]any{
		"wallet_id":     walletID,
		"inner_address": innerAddress,
		"amount":        amount,
		"fee":           fee,
	}
	if opts.Memos != nil {
		params["memos"] = opts.Memos
	}
	if opts.MinCoinAmount != 0 {
		params["min_coin_amount"] = opts.MinCoinAmount
	}
	if opts.MaxCoinAmount != 0 {
		params["max_coin_amount"] = opts.MaxCoinAmount
	}
	if opts.ExcludeCoinAmounts != nil {
		params["exclude_coin_amounts"] = opts.ExcludeCoinAmounts
	}
	if opts.ExcludeCoinIDs != nil {
		params["exclude_coin_ids"] = opts.ExcludeCoinIDs
	}
	if opts.ReusePuzhash {
		params["reuse_puzhash"] = true
	}
	if err := c.c.Call("cat_spend", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

// GetStrayCats lists CATs the wallet has received but has no wallet for yet.
func (c *CAT) GetStrayCats() ([]result.CATInfo, error) {
	var resp struct {
		StrayCats []result.CATInfo `json:"stray_cats"`
	}
	if err := c.c.Call("get_stray_cats", nil, &resp); err != nil {
		return nil, err
	}
	return resp.StrayCats, nil
}

// OfferRequest describes a create_offer_for_ids call. Offer maps wallet ids or
// asset ids to amounts, negative for the offered side and positive for the
// requested side. DriverDict carries asset driver info for non-trivial assets.
type OfferRequest struct {
	Offer         map[string]int64 `json:"offer"`
	DriverDict    map[string]any   `json:"driver_dict"`
	Fee           uint64           `json:"fee,omitempty"`
	ValidateOnly  bool             `json:"validate_only,omitempty"`
	MinCoinAmount uint64           `json:"min_coin_amount,omitempty"`
	MaxCoinAmount uint64           `json:"max_coin_amount,omitempty"`
	Solver        json.RawMessage  `json:"solver,omitempty"`
	ReusePuzhash  bool             `json:"reuse_puzhash,omitempty"`
	MinHeight     uint32           `json:"min_height,omitempty"`
	MinTime       uint64           `json:"min_time,omitempty"`
	MaxHeight     uint32           `json:"max_height,omitempty"`
	MaxTime       uint64           `json:"max_time,omitempty"`
}

// CreateOfferForIDs creates (or just validates) a new offer and returns the
// serialized offer file together with its trade record.
func (c *CAT) CreateOfferForIDs(req OfferRequest) (string, *result.TradeRecord, error) {
	var resp struct {
		Offer       string             `json:"offer"`
		TradeRecord result.TradeRecord `json:"trade_record"`
	}
	if req.DriverDict == nil {
		req.DriverDict = map[string]any{}
	}
	if err := c.c.Call("create_offer_for_ids", req, &resp); err != nil {
		return "", nil, err
	}
	return resp.Offer, &resp.TradeRecord, nil
}

// GetOfferSummary breaks a serialized offer down without taking it. Advanced
// asks for the extended summary format.
func (c *CAT) GetOfferSummary(offer string, advanced bool) (*result.OfferSummary, error) {
	var resp struct {
		Summary result.OfferSummary `json:"summary"`
	}
	params := map[string]any{"offer": offer, "advanced": advanced}
	if err := c.c.Call("get_offer_summary", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Summary, nil
}

// CheckOfferValidity verifies that a serialized offer is well-formed and its
// coins are still unspent.
func (c *CAT) CheckOfferValidity(offer string) (bool, error) {
	var resp struct {
		Valid bool `json:"valid"`
	}
	params := map[string]any{"offer": offer}
	if err := c.c.Call("check_offer_validity", params, &resp); err != nil {
		return false, err
	}
	return resp.Valid, nil
}

// TakeOffer accepts a serialized offer, paying the given fee on top.
func (c *CAT) TakeOffer(offer string, fee, minCoinAmount, maxCoinAmount uint64) (*result.TradeRecord, error) {
	var resp struct {
		TradeRecord result.TradeRecord `json:"trade_record"`
	}
	params := map[string]any{
		"offer":           offer,
		"fee":             fee,
		"min_coin_amount": minCoinAmount,
	}
	if maxCoinAmount != 0 {
		params["max_coin_amount"] = maxCoinAmount
	}
	if err := c.c.Call("take_offer", params, &resp); err != nil {
		return nil, err
	}
	return &resp.TradeRecord, nil
}

// GetOffer returns the trade record of one offer, including the offer file
// contents when fileContents is true.
func (c *CAT) GetOffer(tradeID string, fileContents bool) (*result.TradeRecord, error) {
	var resp struct {
		TradeRecord result.TradeRecord `json:"trade_record"`
		Offer       string             `json:"offer"`
	}
	params := map[string]any{"trade_id": tradeID, "file_contents": fileContents}
	if err := c.c.Call("get_offer", params, &resp); err != nil {
		return nil, err
	}
	tr := resp.TradeRecord
	if tr.Offer == "" {
		tr.Offer = resp.Offer
	}
	return &tr, nil
}

// OffersQuery filters and pages GetAllOffers output.
type OffersQuery struct {
	Start              int
	End                int
	ExcludeMyOffers    bool
	ExcludeTakenOffers bool
	IncludeCompleted   bool
	SortKey            string
	Reverse            bool
	FileContents       bool
}

// GetAllOffers lists trade records of the wallet's offers.
func (c *CAT) GetAllOffers(q OffersQuery) ([]result.TradeRecord, error) {
	var resp struct {
		TradeRecords []result.TradeRecord `json:"trade_records"`
	}
	params := map[string]any{
		"start":                q.Start,
		"end":                  q.End,
		"exclude_my_offers":    q.ExcludeMyOffers,
		"exclude_taken_offers": q.ExcludeTakenOffers,
		"include_completed":    q.IncludeCompleted,
		"reverse":              q.Reverse,
		"file_contents":        q.FileContents,
	}
	if q.SortKey != "" {
		params["sort_key"] = q.SortKey
	}
	if err := c.c.Call("get_all_offers", params, &resp); err != nil {
		return nil, err
	}
	return resp.TradeRecords, nil
}

// OffersCount is the get_offers_count response.
type OffersCount struct {
	Total            int `json:"total"`
	MyOffersCount    int `json:"my_offers_count"`
	TakenOffersCount int `json:"taken_offers_count"`
}

// GetOffersCount counts the wallet's offers.
func (c *CAT) GetOffersCount() (*OffersCount, error) {
	resp := new(OffersCount)
	if err := c.c.Call("get_offers_count", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// CancelOffer cancels one offer. A secure cancel spends the offered coins on
// chain (paying fee), an insecure one just forgets the offer locally.
func (c *CAT) CancelOffer(tradeID string, secure bool, fee uint64) error {
	params := map[string]any{
		"trade_id": tradeID,
		"secure":   secure,
		"fee":      fee,
	}
	return c.c.Call("cancel_offer", params, nil)
}

// CancelOffers cancels offers in batches, all of them when cancelAll is true,
// otherwise only those involving the given asset id ("xch" for the native coin).
func (c *CAT) CancelOffers(secure bool, batchFee uint64, batchSize int, cancelAll bool, assetID string) error {
	params := map[string]any{
		"secure":     secure,
		"batch_fee":  batchFee,
		"batch_size": batchSize,
		"cancel_all": cancelAll,
		"asset_id":   strings.ToLower(assetID),
	}
	return c.c.Call("cancel_offers", params, nil)
}
