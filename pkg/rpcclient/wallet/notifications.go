package wallet

import (
	"github.com/chia-tools/go-chia-rpc/pkg/chiarpc/result"
)

// Notifications wraps the on-chain notification methods and the message
// signing helpers that accompany them.
type Notifications struct {
	c Caller
}

// NewNotifications creates a notifications facade over the given Caller.
func NewNotifications(c Caller) *Notifications {
	return &Notifications{c: c}
}

// SendNotification sends an on-chain notification carrying the message to the
// target puzzle hash. The amount is attached to the notification coin.
func (n *Notifications) SendNotification(target string, message string, amount, fee uint64) (*result.TransactionRecord, error) {
	var resp struct {
		Tx result.TransactionRecord `json:"tx"`
	}
	params := map[string]any{
		"target":  target,
		"message": message,
		"amount":  amount,
		"fee":     fee,
	}
	if err := n.c.Call("send_notification", params, &resp); err != nil {
		return nil, err
	}
	return &resp.Tx, nil
}

// GetNotifications returns received notifications, all of them when ids is
// nil, otherwise the ones with the given ids within the [start, end) range.
func (n *Notifications) GetNotifications(ids []string, start, end int) ([]result.Notification, error) {
	var resp struct {
		Notifications []result.Notification `json:"notifications"`
	}
	params := map[string]any{}
	if ids != nil {
		params["ids"] = ids
		params["start"] = start
		params["end"] = end
	}
	if err := n.c.Call("get_notifications", params, &resp); err != nil {
		return nil, err
	}
	return resp.Notifications, nil
}

// DeleteNotifications removes received notifications, all of them when ids is nil.
func (n *Notifications) DeleteNotifications(ids []string) error {
	params := map[string]any{}
	if ids != nil {
		params["ids"] = ids
	}
	return n.c.Call("delete_notifications", params, nil)
}

// SignedMessage is a signature produced by the wallet service.
type SignedMessage struct {
	Pubkey      string `json:"pubkey"`
	Signature   string `json:"signature"`
	SigningMode string `json:"signing_mode"`
}

// SignMessageByAddress signs a message with the key behind an address. The
// message is treated as hex-encoded bytes when isHex is true.
func (n *Notifications) SignMessageByAddress(address, message string, isHex bool) (*SignedMessage, error) {
	resp := new(SignedMessage)
	params := map[string]any{
		"address": address,
		"message": message,
		"is_hex":  isHex,
	}
	if err := n.c.Call("sign_message_by_address", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}

// SignMessageByID signs a message with the key behind a DID or NFT id.
func (n *Notifications) SignMessageByID(id, message string, isHex bool) (*SignedMessage, error) {
	resp := new(SignedMessage)
	params := map[string]any{
		"id":      id,
		"message": message,
		"is_hex":  isHex,
	}
	if err := n.c.Call("sign_message_by_id", params, resp); err != nil {
		return nil, err
	}
	return resp, nil
}
