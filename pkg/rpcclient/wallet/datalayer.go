package wallet

import (
	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// DataLayer wraps the data layer wallet methods of the wallet service. These
// manage the on-chain singletons backing data layer stores, not the stores
// themselves.
type DataLayer struct {
	c Caller
}

// NewDataLayer creates a DataLayer facade over the given Caller.
func NewDataLayer(c Caller) *DataLayer {
	return &DataLayer{c: c}
}

// CreateNewDL launches a new data layer singleton with the given merkle root
// and returns its launcher id.
func (d *DataLayer) CreateNewDL(root string, fee uint64) (launcherID string, err error) {
	var resp struct {
		LauncherID string `json:"launcher_id"`
	}
	params := map[string]any{"root": root, "fee": fee}
	if err := d.c.Call("create_new_dl", params, &resp); err != nil {
		return "", err
	}
	return resp.LauncherID, nil
}

// TrackNew starts tracking an existing data layer singleton by launcher id.
func (d *DataLayer) TrackNew(launcherID string) error {
	params := map[string]any{"launcher_id": launcherID}
	return d.c.Call("dl_track_new", params, nil)
}

// StopTracking stops tracking a data layer singleton.
func (d *DataLayer) StopTracking(launcherID string) error {
	params := map[string]any{"launcher_id": launcherID}
	return d.c.Call("dl_stop_tracking", params, nil)
}

// LatestSingleton returns the most recent record of a tracked singleton. With
// onlyConfirmed set, unconfirmed transitions are ignored.
func (d *DataLayer) LatestSingleton(launcherID string, onlyConfirmed bool) (*result.DLHistoryRecord, error) {
	var resp struct {
		SingletonRecord *result.DLHistoryRecord `json:"singleton_record"`
	}
	params := map[string]any{"launcher_id": launcherID, "only_confirmed": onlyConfirmed}
	if err := d.c.Call("dl_latest_singleton", params, &resp); err != nil {
		return nil, err
	}
	return resp.SingletonRecord, nil
}

// History returns root transitions of a singleton between the given
// generations, newest first. Zero bounds leave the corresponding end open and
// numResults 0 returns everything in range.
func (d *DataLayer) History(launcherID string, minGeneration, maxGeneration uint32, numResults int) ([]result.DLHistoryRecord, error) {
	var resp struct {
		History []result.DLHistoryRecord `json:"history"`
	}
	params := map[string]any{"launcher_id": launcherID}
	if minGeneration != 0 {
		params["min_generation"] = minGeneration
	}
	if maxGeneration != 0 {
		params["max_generation"] = maxGeneration
	}
	if numResults != 0 {
		params["num_results"] = numResults
	}
	if err := d.c.Call("dl_history", params, &resp); err != nil {
		return nil, err
	}
	return resp.History, nil
}

// NewMirror advertises a mirror of the singleton at the given URLs, locking
// amount mojos in the mirror coin.
func (d *DataLayer) NewMirror(launcherID string, amount uint64, urls []string, fee uint64) error {
	params := map[string]any{
		"launcher_id": launcherID,
		"amount":      amount,
		"urls":        urls,
		"fee":         fee,
	}
	return d.c.Call("dl_new_mirror", params, nil)
}

// GetMirrors lists mirror advertisements of a singleton.
func (d *DataLayer) GetMirrors(launcherID string) ([]result.DLMirror, error) {
	var resp struct {
		Mirrors []result.DLMirror `json:"mirrors"`
	}
	params := map[string]any{"launcher_id": launcherID}
	if err := d.c.Call("dl_get_mirrors", params, &resp); err != nil {
		return nil, err
	}
	return resp.Mirrors, nil
}

// DeleteMirror removes one of our own mirror coins, recovering its amount.
func (d *DataLayer) DeleteMirror(coinID string, fee uint64) error {
	params := map[string]any{"coin_id": coinID, "fee": fee}
	return d.c.Call("dl_delete_mirror", params, nil)
}
