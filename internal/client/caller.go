package client

import (
	"context"
	"encoding/json"
	"fmt"

	"elementsrpc/internal/jsonrpc"
	"elementsrpc/internal/methods"
	"elementsrpc/internal/metrics"
)

// sink receives built requests. The immediate sink sends them; the
// buffering sink queues them for a batch flush and returns a nil result.
type sink interface {
	submit(ctx context.Context, m *methods.Method, req *jsonrpc.Request) (json.RawMessage, error)
}

// Caller carries one generated method per RPC in the method table.
// Where calls go is decided by the sink it was created with.
type Caller struct {
	client *Client
	sink   sink
}

// Call invokes a method by name. Both the table casing and the all-lowercase
// alias are accepted.
func (cl *Caller) Call(ctx context.Context, name string, args ...interface{}) (json.RawMessage, error) {
	m, ok := methods.Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMethod, name)
	}
	return cl.invoke(ctx, m, args)
}

// invoke coerces args, builds the envelope and hands it to the sink.
// Coercion errors return before the sink sees anything.
func (cl *Caller) invoke(ctx context.Context, m *methods.Method, args []interface{}) (json.RawMessage, error) {
	params, err := m.Coerce(args)
	if err != nil {
		cl.client.metrics.ObserveCall(m.Name, metrics.StatusCoercionError, 0)
		return nil, err
	}

	req, err := cl.client.newRequest(m, params)
	if err != nil {
		return nil, err
	}

	return cl.sink.submit(ctx, m, req)
}
