/*
Package wallet provides typed bindings for the Chia wallet RPC service.

The service covers several loosely related method groups (key management,
transactions, CATs and offers, DIDs, NFTs, pool wallets, the data layer and
notifications), so the bindings are split the same way: Client carries the core
transaction and balance methods while Keys, Manager, Node, CAT, DID, NFT, Pool,
DataLayer and Notifications wrap their respective groups. All of them are pure
parameter shaping over a shared Caller, errors propagate unchanged from the
underlying client.
*/
package wallet

import (
	"encoding/json"
	"fmt"

	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// Caller is the generic RPC invocation mechanism shared by all facades of this
// package, usually a *rpcclient.Client pointed at the wallet endpoint.
type Caller interface {
	Call(method string, params any, result any) error
}

// Client wraps a Caller with the core wallet methods: balances, addresses,
// transactions and coin selection.
type Client struct {
	c Caller
}

// New creates a core wallet facade over the given Caller.
func New(c Caller) *Client {
	return &Client{c: c}
}

// GetWalletBalance returns the balance breakdown of one wallet.
func (c *Client) GetWalletBalance(walletID uint32) (*result.WalletBalance, error) {
	var resp struct {
		WalletBalance result.WalletBalance `json:"wallet_balance"`
	}
	params := map[string]any{"wallet_id": walletID}
	if err := c.c.Call("get_wallet_balance", params, &resp); err != nil {
		return nil, err
	}
	return &resp.WalletBalance, nil
}

// GetTransaction returns one transaction by its id.
func (c *Client) GetTransaction(transactionID string) (*result.TransactionRecord, error) {
	var resp struct {
		Transaction result.TransactionRecord `json:"transaction"`
	}
	params := map[string]any{"transaction_id": transactionID}
	if err := c.c.Call("get_transaction", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

// TransactionsQuery bounds and orders GetTransactions output. Start/End are
// item indexes into the wallet's transaction list, SortKey is one of the
// service-defined sort keys (e.g. "CONFIRMED_AT_HEIGHT", "RELEVANCE").
type TransactionsQuery struct {
	Start   int
	End     int
	SortKey string
	Reverse bool
}

// GetTransactions lists transactions of one wallet.
func (c *Client) GetTransactions(walletID uint32, q TransactionsQuery) ([]result.TransactionRecord, error) {
	var resp struct {
		Transactions []result.TransactionRecord `json:"transactions"`
	}
	params := map[string]any{
		"wallet_id": walletID,
		"start":     q.Start,
		"end":       q.End,
		"sort_key":  q.SortKey,
		"reverse":   q.Reverse,
	}
	if err := c.c.Call("get_transactions", params, &resp); err != nil {
		return nil, err
	}
	return resp.Transactions, nil
}

// GetTransactionCount returns the number of transactions of one wallet.
func (c *Client) GetTransactionCount(walletID uint32) (int, error) {
	var resp struct {
		Count int `json:"count"`
	}
	params := map[string]any{"wallet_id": walletID}
	if err := c.c.Call("get_transaction_count", params, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// GetTransactionMemo returns the memos of a transaction keyed by coin id.
func (c *Client) GetTransactionMemo(transactionID string) (map[string][]string, error) {
	// The response keys the memo mapping by the transaction id itself, so
	// it can't be decoded into a fixed struct.
	resp := make(map[string]json.RawMessage)
	params := map[string]any{"transaction_id": transactionID}
	if err := c.c.Call("get_transaction_memo", params, &resp); err != nil {
		return nil, err
	}
	raw, ok := resp[transactionID]
	if !ok {
		return nil, fmt.Errorf("no memo entry for transaction %s", transactionID)
	}
	memos := make(map[string][]string)
	if err := json.Unmarshal(raw, &memos); err != nil {
		return nil, fmt.Errorf("memo entry decoding: %w", err)
	}
	return memos, nil
}

// GetNextAddress returns a receive address of the wallet, deriving a fresh one
// when newAddress is true.
func (c *Client) GetNextAddress(walletID uint32, newAddress bool) (string, error) {
	var resp struct {
		Address string `json:"address"`
	}
	params := map[string]any{"wallet_id": walletID, "new_address": newAddress}
	if err := c.c.Call("get_next_address", params, &resp); err != nil {
		return "", err
	}
	return resp.Address, nil
}

// SendOptions are the optional knobs of SendTransaction. The zero value sends
// with service defaults.
type SendOptions struct {
	Memos              []string
	MinCoinAmount      uint64
	MaxCoinAmount      uint64
	ExcludeCoinAmounts []uint64
	ExcludeCoinIDs     []string
	ReusePuzhash       bool
}

// SendTransaction sends the given amount of mojos to an address. The returned
// record's Name is the transaction id to track it with. A transport failure of
// this call leaves the remote effect unknown, resubmitting is the caller's
// decision.
func (c *Client) SendTransaction(walletID uint32, amount, fee uint64, address string, opts SendOptions) (*result.TransactionRecord, error) {
	var resp struct {
		Transaction   result.TransactionRecord `json:"transaction"`
		TransactionID string                   `json:"transaction_id"`
	}
	params := map[string]any{
		"wallet_id":     walletID,
		"amount":        amount,
		"fee":           fee,
		"address":       address,
		"reuse_puzhash": opts.ReusePuzhash,
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
	if err := c.c.Call("send_transaction", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

// Addition is one recipient of a multi-recipient transaction.
type Addition struct {
	Amount     uint64   `json:"amount"`
	PuzzleHash string   `json:"puzzle_hash"`
	Memos      []string `json:"memos,omitempty"`
}

// SendTransactionMulti sends to multiple recipients in a single transaction.
// Coins restricts coin selection to the given coins when non-nil.
func (c *Client) SendTransactionMulti(walletID uint32, additions []Addition, fee uint64, coins []result.Coin) (*result.TransactionRecord, error) {
	var resp struct {
		Transaction result.TransactionRecord `json:"transaction"`
	}
	params := map[string]any{
		"wallet_id": walletID,
		"additions": additions,
		"fee":       fee,
	}
	if coins != nil {
		params["coins"] = coins
	}
	if err := c.c.Call("send_transaction_multi", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Transaction, nil
}

// SignedTransactionRequest describes a create_signed_transaction call: the
// recipients, the coins to spend and optional announcements. The service signs
// but does not broadcast, the result goes to PushTX when the caller is ready.
type SignedTransactionRequest struct {
	WalletID            uint32          `json:"wallet_id"`
	Additions           []Addition      `json:"additions"`
	Fee                 uint64          `json:"fee"`
	Coins               []result.Coin   `json:"coins"`
	CoinAnnouncements   json.RawMessage `json:"coin_announcements,omitempty"`
	PuzzleAnnouncements json.RawMessage `json:"puzzle_announcements,omitempty"`
	MinCoinAmount       uint64          `json:"min_coin_amount"`
	MaxCoinAmount       uint64          `json:"max_coin_amount"`
	ExcludedCoins       []result.Coin   `json:"excluded_coins,omitempty"`
	ExcludedCoinAmounts []uint64        `json:"excluded_coin_amounts,omitempty"`
}

// CreateSignedTransaction builds and signs a transaction without broadcasting it.
func (c *Client) CreateSignedTransaction(req SignedTransactionRequest) (*result.TransactionRecord, error) {
	var resp struct {
		SignedTx result.TransactionRecord `json:"signed_tx"`
	}
	if err := c.c.Call("create_signed_transaction", req, &resp); err != nil {
		return nil, err
	}
	return &resp.SignedTx, nil
}

// DeleteUnconfirmedTransactions drops all unconfirmed transactions of one wallet.
func (c *Client) DeleteUnconfirmedTransactions(walletID uint32) error {
	params := map[string]any{"wallet_id": walletID}
	return c.c.Call("delete_unconfirmed_transactions", params, nil)
}

// CoinSelectionOptions filter SelectCoins and GetSpendableCoins.
type CoinSelectionOptions struct {
	MinCoinAmount       uint64
	MaxCoinAmount       uint64
	ExcludedCoinAmounts []uint64
	ExcludedCoins       []result.Coin
	ExcludedCoinIDs     []string
}

// SelectCoins asks the wallet to pick coins summing up to at least amount.
func (c *Client) SelectCoins(walletID uint32, amount uint64, opts CoinSelectionOptions) ([]result.Coin, error) {
	var resp struct {
		Coins []result.Coin `json:"coins"`
	}
	params := map[string]any{
		"wallet_id":       walletID,
		"amount":          amount,
		"min_coin_amount": opts.MinCoinAmount,
	}
	if opts.MaxCoinAmount != 0 {
		params["max_coin_amount"] = opts.MaxCoinAmount
	}
	if opts.ExcludedCoins != nil {
		params["excluded_coins"] = opts.ExcludedCoins
	}
	if opts.ExcludedCoinAmounts != nil {
		params["exclude_coin_amounts"] = opts.ExcludedCoinAmounts
	}
	if err := c.c.Call("select_coins", params, &resp); err != nil {
		return nil, err
	}
	return resp.Coins, nil
}

// SpendableCoins is the full get_spendable_coins answer: confirmed spendable
// records plus in-flight removals and additions.
type SpendableCoins struct {
	ConfirmedRecords     []result.SpendableCoin `json:"confirmed_records"`
	UnconfirmedRemovals  []result.Coin          `json:"unconfirmed_removals"`
	UnconfirmedAdditions []result.Coin          `json:"unconfirmed_additions"`
}

// GetSpendableCoins lists coins the wallet can spend right now.
func (c *Client) GetSpendableCoins(walletID uint32, opts CoinSelectionOptions) (*SpendableCoins, error) {
	resp := new(SpendableCoins)
	excludedAmounts := opts.ExcludedCoinAmounts
	if excludedAmounts == nil {
		excludedAmounts = []uint64{}
	}
	excludedCoins := opts.ExcludedCoins
	if excludedCoins == nil {
		excludedCoins = []result.Coin{}
	}
	excludedIDs := opts.ExcludedCoinIDs
	if excludedIDs == nil {
		excludedIDs = []string{}
	}
	params := map[string]any{
		"wallet_id":             walletID,
		"min_coin_amount":       opts.MinCoinAmount,
		"max_coin_amount":       opts.MaxCoinAmount,
		"excluded_coin_amounts": excludedAmounts,
		"excluded_coins":        excludedCoins,
		"excluded_coin_ids":     excludedIDs,
	}
	if err := c.c.Call("get_spendable_coins", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetCoinRecordsByNames looks wallet coins up by their names (coin ids).
func (c *Client) GetCoinRecordsByNames(names []string, startHeight, endHeight uint32, includeSpentCoins bool) ([]result.CoinRecord, error) {
	var resp struct {
		CoinRecords []result.CoinRecord `json:"coin_records"`
	}
	params := map[string]any{
		"names":               names,
		"start_height":        startHeight,
		"end_height":          endHeight,
		"include_spent_coins": includeSpentCoins,
	}
	if err := c.c.Call("get_coin_records_by_names", params, &resp); err != nil {
		return nil, err
	}
	return resp.CoinRecords, nil
}

// GetFarmedAmount summarizes farming rewards collected by the logged-in key.
func (c *Client) GetFarmedAmount() (*result.FarmedAmount, error) {
	resp := new(result.FarmedAmount)
	if err := c.c.Call("get_farmed_amount", nil, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetCurrentDerivationIndex returns the highest derivation index of the
// logged-in key.
func (c *Client) GetCurrentDerivationIndex() (uint32, error) {
	var resp struct {
		Index uint32 `json:"index"`
	}
	if err := c.c.Call("get_current_derivation_index", nil, &resp); err != nil {
		return 0, err
	}
	return resp.Index, nil
}

// ExtendDerivationIndex moves the derivation index forward, making the wallet
// scan further addresses.
func (c *Client) ExtendDerivationIndex(index uint32) (uint32, error) {
	var resp struct {
		Index uint32 `json:"index"`
	}
	params := map[string]any{"index": index}
	if err := c.c.Call("extend_derivation_index", params, &resp); err != nil {
		return 0, err
	}
	return resp.Index, nil
}
