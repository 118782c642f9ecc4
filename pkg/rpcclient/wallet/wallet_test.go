package wallet

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc"
)

// fakeCaller records the last call and feeds a canned payload back.
type fakeCaller struct {
	method  string
	params  map[string]any
	payload string
	err     error
}

func (f *fakeCaller) Call(method string, params any, result any) error {
	f.method = method
	raw, err := json.Marshal(params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(raw, &f.params); err != nil {
		return err
	}
	if f.err != nil {
		return f.err
	}
	if result != nil {
		return json.Unmarshal([]byte(f.payload), result)
	}
	return nil
}

func TestGetWalletBalance(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"wallet_balance": {
			"wallet_id": 1,
			"confirmed_wallet_balance": 1000000000000,
			"unconfirmed_wallet_balance": 999999999000,
			"spendable_balance": 999999999000,
			"unspent_coin_count": 2
		}
	}`}
	w := New(f)

	bal, err := w.GetWalletBalance(1)
	require.NoError(t, err)
	assert.Equal(t, "get_wallet_balance", f.method)
	assert.Equal(t, map[string]any{"wallet_id": float64(1)}, f.params)
	assert.Equal(t, "1000000000000", bal.ConfirmedWalletBalance.String())
	assert.Equal(t, 2, bal.UnspentCoinCount)
}

func TestSendTransactionDefaults(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"transaction": {"name": "0xtx1", "amount": 1000, "fee_amount": 50},
		"transaction_id": "0xtx1"
	}`}
	w := New(f)

	tx, err := w.SendTransaction(1, 1000, 50, "xch1qqq", SendOptions{})
	require.NoError(t, err)
	assert.Equal(t, "send_transaction", f.method)
	assert.Equal(t, "0xtx1", tx.Name)

	// Zero-valued options stay out of the parameter object.
	assert.Equal(t, map[string]any{
		"wallet_id":     float64(1),
		"amount":        float64(1000),
		"fee":           float64(50),
		"address":       "xch1qqq",
		"reuse_puzhash": false,
	}, f.params)
}

func TestSendTransactionOptions(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true, "transaction": {"name": "0xtx2"}}`}
	w := New(f)

	_, err := w.SendTransaction(2, 5, 0, "xch1www", SendOptions{
		Memos:          []string{"thanks"},
		MinCoinAmount:  1,
		ExcludeCoinIDs: []string{"0xc1"},
		ReusePuzhash:   true,
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"thanks"}, f.params["memos"])
	assert.Equal(t, float64(1), f.params["min_coin_amount"])
	assert.Equal(t, []any{"0xc1"}, f.params["exclude_coin_ids"])
	assert.Equal(t, true, f.params["reuse_puzhash"])
	assert.NotContains(t, f.params, "max_coin_amount")
	assert.NotContains(t, f.params, "exclude_coin_amounts")
}

func TestGetTransactionMemo(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"0xtx1": {"0xcoin1": ["7468616e6b73"]}
	}`}
	w := New(f)

	memos, err := w.GetTransactionMemo("0xtx1")
	require.NoError(t, err)
	assert.Equal(t, "get_transaction_memo", f.method)
	assert.Equal(t, map[string][]string{"0xcoin1": {"7468616e6b73"}}, memos)
}

func TestGetTransactionMemoMissingEntry(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true}`}
	w := New(f)

	_, err := w.GetTransactionMemo("0xmissing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "0xmissing")
}

func TestGetSpendableCoinsEmptyFilters(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"confirmed_records": [],
		"unconfirmed_removals": [],
		"unconfirmed_additions": []
	}`}
	w := New(f)

	sc, err := w.GetSpendableCoins(1, CoinSelectionOptions{})
	require.NoError(t, err)
	assert.Equal(t, "get_spendable_coins", f.method)
	// Empty filter lists are sent explicitly, the service rejects nulls.
	assert.Equal(t, []any{}, f.params["excluded_coin_amounts"])
	assert.Equal(t, []any{}, f.params["excluded_coins"])
	assert.Equal(t, []any{}, f.params["excluded_coin_ids"])
	assert.NotNil(t, sc)
}

func TestGetTransactionsQuery(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true, "transactions": [{"name": "0xa"}, {"name": "0xb"}]}`}
	w := New(f)

	txs, err := w.GetTransactions(1, TransactionsQuery{End: 10, SortKey: "RELEVANCE", Reverse: true})
	require.NoError(t, err)
	require.Len(t, txs, 2)
	assert.Equal(t, map[string]any{
		"wallet_id": float64(1),
		"start":     float64(0),
		"end":       float64(10),
		"sort_key":  "RELEVANCE",
		"reverse":   true,
	}, f.params)
}

func TestKeysLogIn(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true, "fingerprint": 871348029}`}
	k := NewKeys(f)

	fp, err := k.LogIn(871348029)
	require.NoError(t, err)
	assert.Equal(t, "log_in", f.method)
	assert.Equal(t, uint32(871348029), fp)
}

func TestCATCancelOffersAssetIDLowered(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true}`}
	c := NewCAT(f)

	require.NoError(t, c.CancelOffers(true, 10, 5, false, "0xABCDEF"))
	assert.Equal(t, "cancel_offers", f.method)
	assert.Equal(t, "0xabcdef", f.params["asset_id"])
	assert.Equal(t, true, f.params["secure"])
	assert.Equal(t, float64(5), f.params["batch_size"])
}

func TestCreateOfferForIDs(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"offer": "offer1qqq...",
		"trade_record": {"trade_id": "0xtr1", "status": "PENDING_ACCEPT", "is_my_offer": true}
	}`}
	c := NewCAT(f)

	offer, tr, err := c.CreateOfferForIDs(OfferRequest{
		Offer: map[string]int64{"1": -1000, "2": 5},
		Fee:   10,
	})
	require.NoError(t, err)
	assert.Equal(t, "create_offer_for_ids", f.method)
	assert.Equal(t, "offer1qqq...", offer)
	assert.Equal(t, "0xtr1", tr.TradeID)
	assert.True(t, tr.IsMyOffer)
	// An absent driver dict is sent as an empty object.
	assert.Equal(t, map[string]any{}, f.params["driver_dict"])
}

func TestDIDGetDID(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true, "my_did": "did:chia:1abc", "coin_id": "0xc0"}`}
	d := NewDID(f)

	didID, coinID, err := d.GetDID(3)
	require.NoError(t, err)
	assert.Equal(t, "did_get_did", f.method)
	assert.Equal(t, "did:chia:1abc", didID)
	assert.Equal(t, "0xc0", coinID)
}

func TestDataLayerHistoryOptionalParams(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true, "history": []}`}
	dl := NewDataLayer(f)

	_, err := dl.History("0xlauncher", 0, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "dl_history", f.method)
	assert.Equal(t, map[string]any{"launcher_id": "0xlauncher"}, f.params)

	_, err = dl.History("0xlauncher", 5, 10, 3)
	require.NoError(t, err)
	assert.Equal(t, float64(5), f.params["min_generation"])
	assert.Equal(t, float64(10), f.params["max_generation"])
	assert.Equal(t, float64(3), f.params["num_results"])
}

func TestPoolStatus(t *testing.T) {
	f := &fakeCaller{payload: `{
		"success": true,
		"state": {"launcher_id": "0xl1", "current_inner": "0xi1"},
		"unconfirmed_transactions": ["0xt1"]
	}`}
	p := NewPool(f)

	state, unconfirmed, err := p.Status(4)
	require.NoError(t, err)
	assert.Equal(t, "pw_status", f.method)
	assert.Equal(t, "0xl1", state.LauncherID)
	assert.Equal(t, []string{"0xt1"}, unconfirmed)
}

func TestNodeGetSyncStatus(t *testing.T) {
	f := &fakeCaller{payload: `{"success": true, "genesis_initialized": true, "synced": false, "syncing": true}`}
	n := NewNode(f)

	st, err := n.GetSyncStatus()
	require.NoError(t, err)
	assert.Equal(t, "get_sync_status", f.method)
	assert.True(t, st.Syncing)
	assert.False(t, st.Synced)
}

func TestErrorPassthrough(t *testing.T) {
	want := chiarpc.NewRemoteError("get_wallet_balance", "Wallet id 9 not found", nil)
	f := &fakeCaller{err: want}
	w := New(f)

	_, err := w.GetWalletBalance(9)
	require.ErrorIs(t, err, chiarpc.ErrRemote)
	assert.Equal(t, want, err)
}
