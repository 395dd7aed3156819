// Package transport moves serialized JSON-RPC requests to the daemon and
// brings decoded responses back. It does not interpret response errors;
// that is left to the caller.
package transport

import (
	"context"
	"encoding/base64"
	"fmt"

	"elementsrpc/internal/jsonrpc"
)

// Transport performs one request/response exchange
type Transport interface {
	RoundTrip(ctx context.Context, req *jsonrpc.Request) (*jsonrpc.Response, error)
	Close() error
}

// BatchTransport can send several requests as one JSON-RPC array
type BatchTransport interface {
	Transport
	RoundTripBatch(ctx context.Context, reqs []*jsonrpc.Request) ([]*jsonrpc.Response, error)
}

// StatusError is returned when the daemon answers with a non-2xx status.
// bitcoind puts the JSON-RPC error object in Body in that case.
type StatusError struct {
	StatusCode int
	Body       []byte
}

// Error implements the error interface
func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error %d: %s", e.StatusCode, string(e.Body))
}

// basicAuth returns the Authorization header value for user/pass
func basicAuth(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}
