package wallet

import (
	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// Pool wraps the pool wallet (plotNFT) methods of the wallet service.
type Pool struct {
	c Caller
}

// NewPool creates a Pool facade over the given Caller.
func NewPool(c Caller) *Pool {
	return &Pool{c: c}
}

// JoinPool switches the pool wallet to the given pool.
func (p *Pool) JoinPool(walletID uint32, targetPuzzlehash, poolURL string, relativeLockHeight uint32, fee uint64) (totalFee uint64, tx *result.TransactionRecord, err error) {
	var resp struct {
		TotalFee    uint64                   `json:"total_fee"`
		Transaction result.TransactionRecord `json:"transaction"`
	}
	params := map[string]any{
		"wallet_id":            walletID,
		"target_puzzlehash":    targetPuzzlehash,
		"pool_url":             poolURL,
		"relative_lock_height": relativeLockHeight,
		"fee":                  fee,
	}
	if err := p.c.Call("pw_join_pool", params, &resp); err != nil {
		return 0, nil, err
	}
	return resp.TotalFee, &resp.Transaction, nil
}

// SelfPool leaves the current pool and switches the wallet to self pooling.
func (p *Pool) SelfPool(walletID uint32, fee uint64) (totalFee uint64, tx *result.TransactionRecord, err error) {
	var resp struct {
		TotalFee    uint64                   `json:"total_fee"`
		Transaction result.TransactionRecord `json:"transaction"`
	}
	params := map[string]any{"wallet_id": walletID, "fee": fee}
	if err := p.c.Call("pw_self_pool", params, &resp); err != nil {
		return 0, nil, err
	}
	return resp.TotalFee, &resp.Transaction, nil
}

// AbsorbRewards sweeps the p2_singleton rewards controlled by the pool wallet
// into its balance.
func (p *Pool) AbsorbRewards(walletID uint32, fee uint64) (state *result.PoolWalletStatus, tx *result.TransactionRecord, err error) {
	var resp struct {
		State       result.PoolWalletStatus  `json:"state"`
		Transaction result.TransactionRecord `json:"transaction"`
	}
	params := map[string]any{"wallet_id": walletID, "fee": fee}
	if err := p.c.Call("pw_absorb_rewards", params, &resp); err != nil {
		return nil, nil, err
	}
	return &resp.State, &resp.Transaction, nil
}

// Status returns the complete state of the pool wallet together with the ids
// of unconfirmed transactions still affecting it.
func (p *Pool) Status(walletID uint32) (state *result.PoolWalletStatus, unconfirmed []string, err error) {
	var resp struct {
		State                   result.PoolWalletStatus `json:"state"`
		UnconfirmedTransactions []string                `json:"unconfirmed_transactions"`
	}
	params := map[string]any{"wallet_id": walletID}
	if err := p.c.Call("pw_status", params, &resp); err != nil {
		return nil, nil, err
	}
	return &resp.State, resp.UnconfirmedTransactions, nil
}
