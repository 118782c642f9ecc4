package result

import "encoding/json"

type (
	// TradeRecord is the wallet's view of an offer it made or took.
	TradeRecord struct {
		TradeID          string          `json:"trade_id"`
		Status           string          `json:"status"`
		CreatedAtTime    uint64          `json:"created_at_time"`
		ConfirmedAtIndex uint32          `json:"confirmed_at_index"`
		AcceptedAtTime   *uint64         `json:"accepted_at_time"`
		IsMyOffer        bool            `json:"is_my_offer"`
		Sent             uint32          `json:"sent"`
		// Offer is the serialized offer file, only included when the
		// caller asked for file contents.
		Offer   string          `json:"offer,omitempty"`
		Summary json.RawMessage `json:"summary"`
		Pending json.RawMessage `json:"pending"`
	}

	// OfferSummary breaks an offer file down into offered and requested
	// amounts keyed by asset id ("xch" for the native coin).
	OfferSummary struct {
		Offered   map[string]json.Number `json:"offered"`
		Requested map[string]json.Number `json:"requested"`
		Fees      uint64                 `json:"fees"`
		Infos     json.RawMessage        `json:"infos"`
	}

	// CATInfo describes one CAT token known to the wallet.
	CATInfo struct {
		AssetID string `json:"asset_id"`
		Name    string `json:"name"`
		Symbol  string `json:"symbol"`
	}
)
