package client

import (
	"errors"

	"elementsrpc/internal/jsonrpc"
	"elementsrpc/internal/transport"
)

var (
	// ErrBatchActive is returned when a batch is started while another one
	// is running on the same client
	ErrBatchActive = errors.New("a batch is already active on this client")
	// ErrBatchClosed is returned by calls on a Batch whose body has returned
	ErrBatchClosed = errors.New("batch is closed")
	// ErrUnknownMethod is returned by Call for names missing from the method table
	ErrUnknownMethod = errors.New("unknown method")
)

// TransportError is a failure below the JSON-RPC layer: connection refused,
// timeout, DNS failure, a non-2xx status without an error body.
// The message is the underlying error's, unchanged.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// ProtocolError carries the message of an error object returned by the daemon.
// The JSON-RPC error code is not kept.
type ProtocolError struct {
	Message string
}

func (e *ProtocolError) Error() string {
	return e.Message
}

// normalize maps a transport failure onto TransportError or ProtocolError.
// bitcoind answers failed calls with a non-2xx status and the error object in
// the body, so a readable error.message there wins.
func normalize(err error) error {
	var statusErr *transport.StatusError
	if errors.As(err, &statusErr) {
		if rpcErr := jsonrpc.ParseErrorBody(statusErr.Body); rpcErr != nil {
			return &ProtocolError{Message: rpcErr.Message}
		}
	}
	return &TransportError{Err: err}
}

// responseError returns the ProtocolError for a response carrying an error field
func responseError(resp *jsonrpc.Response) error {
	if resp.HasError() {
		return &ProtocolError{Message: resp.Error.Message}
	}
	return nil
}
