// Package farmer provides a typed facade over the farmer service RPC API.
package farmer

import (
	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// Caller is an RPC transport the facade issues its calls through. It is
// implemented by rpcclient.Client.
type Caller interface {
	Call(method string, params any, result any) error
}

// Client wraps the farmer-specific methods. Methods shared by every service,
// connections and the like, live on rpcclient.Client itself.
type Client struct {
	c Caller
}

// New creates a farmer facade over the given Caller.
func New(c Caller) *Client {
	return &Client{c: c}
}

// GetSignagePoint returns one cached signage point by its challenge chain
// hash, including any proofs of space found for it.
func (f *Client) GetSignagePoint(spHash string) (*result.SignagePoint, error) {
	resp := new(result.SignagePoint)
	params := map[string]any{"sp_hash": spHash}
	if err := f.c.Call("get_signage_point", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetSignagePoints returns all signage points the farmer currently caches.
func (f *Client) GetSignagePoints() ([]result.SignagePoint, error) {
	var resp struct {
		SignagePoints []result.SignagePoint `json:"signage_points"`
	}
	if err := f.c.Call("get_signage_points", nil, &resp); err != nil {
		return nil, err
	}
	return resp.SignagePoints, nil
}

// GetRewardTargets returns the configured farmer and pool reward addresses.
// With searchForPrivateKey set the farmer also reports whether it holds the
// keys behind them, searching maxPhToSearch derivations (0 for the default).
func (f *Client) GetRewardTargets(searchForPrivateKey bool, maxPhToSearch int) (*result.RewardTargets, error) {
	resp := new(result.RewardTargets)
	params := map[string]any{"search_for_private_key": searchForPrivateKey}
	if maxPhToSearch != 0 {
		params["max_ph_to_search"] = maxPhToSearch
	}
	if err := f.c.Call("get_reward_targets", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SetRewardTargets updates the reward addresses. An empty string leaves the
// corresponding target unchanged.
func (f *Client) SetRewardTargets(farmerTarget, poolTarget string) error {
	params := map[string]any{}
	if farmerTarget != "" {
		params["farmer_target"] = farmerTarget
	}
	if poolTarget != "" {
		params["pool_target"] = poolTarget
	}
	return f.c.Call("set_reward_targets", params, nil)
}

// GetHarvesters lists the harvesters connected to this farmer with their
// full plot inventories.
func (f *Client) GetHarvesters() ([]result.Harvester, error) {
	var resp struct {
		Harvesters []result.Harvester `json:"harvesters"`
	}
	if err := f.c.Call("get_harvesters", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Harvesters, nil
}

// GetHarvestersSummary lists connected harvesters with plot counts instead of
// per-plot details.
func (f *Client) GetHarvestersSummary() ([]result.Harvester, error) {
	var resp struct {
		Harvesters []result.Harvester `json:"harvesters"`
	}
	if err := f.c.Call("get_harvesters_summary", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Harvesters, nil
}

// GetPoolState returns the farmer's state for every pool it participates in.
func (f *Client) GetPoolState() ([]result.PoolState, error) {
	var resp struct {
		PoolState []result.PoolState `json:"pool_state"`
	}
	if err := f.c.Call("get_pool_state", nil, &resp); err != nil {
		return nil, err
	}
	return resp.PoolState, nil
}

// SetPayoutInstructions sets the payout instructions for a pool membership
// identified by its launcher id.
func (f *Client) SetPayoutInstructions(launcherID, payoutInstructions string) error {
	params := map[string]any{
		"launcher_id":         launcherID,
		"payout_instructions": payoutInstructions,
	}
	return f.c.Call("set_payout_instructions", params, nil)
}

// GetPoolLoginLink returns an authenticated login link for the pool the given
// launcher id belongs to.
func (f *Client) GetPoolLoginLink(launcherID string) (string, error) {
	var resp struct {
		LoginLink string `json:"login_link"`
	}
	params := map[string]any{"launcher_id": launcherID}
	if err := f.c.Call("get_pool_login_link", params, &resp); err != nil {
		return "", err
	}
	return resp.LoginLink, nil
}
