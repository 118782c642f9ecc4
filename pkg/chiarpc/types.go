/*
Package chiarpc contains a set of types used for JSON RPC communication with Chia
node services. It defines the response envelope shared by every HTTP RPC endpoint,
the message envelope of the daemon websocket protocol and a set of typed errors
raised by the client.
*/
package chiarpc

import "encoding/json"

type (
	// Response is the envelope every Chia RPC service wraps its reply into.
	// The method-specific payload fields live at the top level of the same
	// object, next to the success flag, so the payload is decoded from the
	// raw body separately.
	Response struct {
		// Success tells whether the remote call itself succeeded. Note
		// that it's unrelated to HTTP-level success, services answer
		// with a JSON body even for failed calls.
		Success bool `json:"success"`
		// Error is the remote-supplied failure description, only set
		// when Success is false.
		Error string `json:"error,omitempty"`
	}

	// Message is the envelope of the daemon websocket protocol. Both
	// directions use the same shape: requests carry a fresh RequestID and
	// Ack set to false, the matching response echoes the RequestID back
	// with Ack set to true. Messages with Ack set to false arriving from
	// the daemon are unsolicited state change events.
	Message struct {
		// Command is the name of the operation being invoked (or the
		// event being reported).
		Command string `json:"command"`
		// Ack is false for requests and events, true for responses.
		Ack bool `json:"ack"`
		// Data is the command-specific payload. For responses it
		// contains the usual success/error envelope.
		Data json.RawMessage `json:"data"`
		// RequestID correlates a response with its request.
		RequestID string `json:"request_id"`
		// Destination is the service the message is addressed to.
		Destination string `json:"destination"`
		// Origin is the service the message comes from.
		Origin string `json:"origin"`
	}
)
