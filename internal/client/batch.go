package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"elementsrpc/internal/config"
	"elementsrpc/internal/jsonrpc"
	"elementsrpc/internal/methods"
	"elementsrpc/internal/metrics"
	"elementsrpc/internal/transport"
)

// Batch queues calls made during a Client.Batch body. Its generated methods
// return a nil result; results are available once the batch flushes.
type Batch struct {
	*Caller
	session *bufferingSink
}

// Len returns the number of queued calls
func (b *Batch) Len() int {
	b.session.mu.Lock()
	defer b.session.mu.Unlock()
	return len(b.session.pending)
}

type pendingCall struct {
	method *methods.Method
	req    *jsonrpc.Request
}

// bufferingSink accumulates requests for one batch session
type bufferingSink struct {
	mu      sync.Mutex
	pending []pendingCall
	closed  bool
}

func (s *bufferingSink) submit(_ context.Context, m *methods.Method, req *jsonrpc.Request) (json.RawMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil, ErrBatchClosed
	}
	s.pending = append(s.pending, pendingCall{method: m, req: req})
	return nil, nil
}

// drain closes the session and returns what was queued
func (s *bufferingSink) drain() []pendingCall {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.closed = true
	calls := s.pending
	s.pending = nil
	return calls
}

// Batch runs body with a Batch that queues calls, then sends them all and
// returns their results in the order they were queued. Any failed call fails
// the whole batch and no partial results are returned. If body returns an
// error nothing is sent.
//
// Only one batch may run on a client at a time; a nested or concurrent call
// returns ErrBatchActive.
func (c *Client) Batch(ctx context.Context, body func(b *Batch) error) ([]json.RawMessage, error) {
	if !c.batchActive.CompareAndSwap(false, true) {
		return nil, ErrBatchActive
	}
	defer c.batchActive.Store(false)

	session := &bufferingSink{}
	b := &Batch{
		Caller:  &Caller{client: c, sink: session},
		session: session,
	}

	err := body(b)
	calls := session.drain()
	if err != nil {
		return nil, err
	}

	if len(calls) == 0 {
		return []json.RawMessage{}, nil
	}

	c.metrics.ObserveBatch(len(calls))
	c.logger.Debug().Int("size", len(calls)).Str("mode", c.batchMode).Msg("flushing batch")

	if c.batchMode == config.BatchModeArray {
		return c.flushArray(ctx, calls)
	}
	return c.flushConcurrent(ctx, calls)
}

// flushConcurrent sends every call in parallel. The first failure cancels
// the rest.
func (c *Client) flushConcurrent(ctx context.Context, calls []pendingCall) ([]json.RawMessage, error) {
	results := make([]json.RawMessage, len(calls))

	g, gctx := errgroup.WithContext(ctx)
	for i, call := range calls {
		g.Go(func() error {
			result, err := c.exchange(gctx, call.method, call.req)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// flushArray sends the calls as one JSON-RPC array and matches responses by ID
func (c *Client) flushArray(ctx context.Context, calls []pendingCall) ([]json.RawMessage, error) {
	bt := c.transport.(transport.BatchTransport)

	reqs := make([]*jsonrpc.Request, len(calls))
	for i, call := range calls {
		reqs[i] = call.req
	}

	start := time.Now()
	resps, err := bt.RoundTripBatch(ctx, reqs)
	elapsed := time.Since(start)
	if err != nil {
		err = normalize(err)
		for _, call := range calls {
			c.metrics.ObserveCall(call.method.Name, errorStatus(err), elapsed)
		}
		return nil, err
	}

	// the daemon rejected the array as a whole
	if len(resps) == 1 && resps[0].ID.IsNull() && resps[0].HasError() {
		err := responseError(resps[0])
		for _, call := range calls {
			c.metrics.ObserveCall(call.method.Name, metrics.StatusProtocolError, elapsed)
		}
		return nil, err
	}

	byID := make(map[int64]*jsonrpc.Response, len(resps))
	for _, resp := range resps {
		if id, ok := resp.ID.Int64(); ok {
			byID[id] = resp
		}
	}

	results := make([]json.RawMessage, len(calls))
	var firstErr error
	for i, call := range calls {
		id, _ := call.req.ID.Int64()
		resp, ok := byID[id]

		var callErr error
		if ok {
			callErr = responseError(resp)
		} else {
			callErr = &ProtocolError{Message: fmt.Sprintf("no response for request id %d", id)}
		}

		if callErr != nil {
			c.metrics.ObserveCall(call.method.Name, errorStatus(callErr), elapsed)
			if firstErr == nil {
				firstErr = callErr
			}
			continue
		}

		c.metrics.ObserveCall(call.method.Name, metrics.StatusOk, elapsed)
		results[i] = resp.Result
	}

	if firstErr != nil {
		return nil, firstErr
	}
	return results, nil
}
