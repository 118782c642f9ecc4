package chiarpc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKinds(t *testing.T) {
	cause := errors.New("connection refused")
	terr := NewTransportError("get_blockchain_state", cause)
	derr := NewDecodeError("get_blockchain_state", []byte("<html>"), errors.New("invalid character '<'"))
	rerr := NewRemoteError("send_transaction", "Can't send more than 0 mojos", []byte(`{"success": false}`))

	assert.True(t, errors.Is(terr, ErrTransport))
	assert.False(t, errors.Is(terr, ErrDecode))
	assert.False(t, errors.Is(terr, ErrRemote))

	assert.True(t, errors.Is(derr, ErrDecode))
	assert.False(t, errors.Is(derr, ErrTransport))

	assert.True(t, errors.Is(rerr, ErrRemote))
	assert.False(t, errors.Is(rerr, ErrTransport))

	require.ErrorIs(t, terr, cause)
	require.Nil(t, errors.Unwrap(rerr))
}

func TestErrorMessage(t *testing.T) {
	err := NewRemoteError("send_transaction", "insufficient funds", nil)
	assert.Equal(t, "send_transaction: remote error: insufficient funds", err.Error())

	err = NewTransportError("healthz", errors.New("dial tcp: connection refused"))
	assert.Contains(t, err.Error(), "transport error")
	assert.Contains(t, err.Error(), "healthz")
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "transport", Transport.String())
	assert.Equal(t, "decode", Decode.String())
	assert.Equal(t, "remote", Remote.String())
	assert.Equal(t, "kind(42)", Kind(42).String())
}

func TestErrorPayloadKept(t *testing.T) {
	body := []byte(`{"success": false, "error": "not found", "detail": 7}`)
	err := NewRemoteError("get_coin_record_by_name", "not found", body)

	var rpcErr *Error
	require.True(t, errors.As(err, &rpcErr))
	assert.Equal(t, body, rpcErr.Payload)
	assert.Equal(t, "get_coin_record_by_name", rpcErr.Method)
}
