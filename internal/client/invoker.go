package client

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"elementsrpc/internal/cache"
	"elementsrpc/internal/jsonrpc"
	"elementsrpc/internal/methods"
	"elementsrpc/internal/metrics"
)

// immediateSink sends each request as soon as it is built
type immediateSink struct {
	client *Client
}

func (s *immediateSink) submit(ctx context.Context, m *methods.Method, req *jsonrpc.Request) (json.RawMessage, error) {
	c := s.client

	if !c.policy.IsCacheable(m.Name, req.Params) {
		return c.exchange(ctx, m, req)
	}

	cacheKey := cache.GenerateCacheKey(m.Name, req.Params)
	if data, ok := c.cache.Get(ctx, cacheKey); ok {
		c.metrics.CacheHit(m.Name)
		c.logger.Debug().Str("method", m.Name).Str("key", cacheKey).Msg("cache hit")
		return cloneRaw(data), nil
	}

	result, err := c.exchange(ctx, m, req)
	if err != nil {
		return nil, err
	}
	if len(result) > 0 && string(result) != "null" {
		c.cache.Set(ctx, cacheKey, cloneRaw(result))
	}
	return result, nil
}

// cloneRaw keeps cached entries independent of slices handed to callers
func cloneRaw(data []byte) json.RawMessage {
	return append(json.RawMessage(nil), data...)
}

// exchange performs one round trip and normalizes its outcome
func (c *Client) exchange(ctx context.Context, m *methods.Method, req *jsonrpc.Request) (json.RawMessage, error) {
	start := time.Now()
	resp, err := c.transport.RoundTrip(ctx, req)
	elapsed := time.Since(start)

	if err == nil {
		err = responseError(resp)
	} else {
		err = normalize(err)
	}

	if err != nil {
		c.metrics.ObserveCall(m.Name, errorStatus(err), elapsed)
		c.logger.Debug().
			Err(err).
			Str("method", req.Method).
			Str("id", req.ID.String()).
			Dur("elapsed", elapsed).
			Msg("call failed")
		return nil, err
	}

	c.metrics.ObserveCall(m.Name, metrics.StatusOk, elapsed)
	c.logger.Debug().
		Str("method", req.Method).
		Str("id", req.ID.String()).
		Dur("elapsed", elapsed).
		Msg("call completed")

	return resp.Result, nil
}

func errorStatus(err error) string {
	var protoErr *ProtocolError
	if errors.As(err, &protoErr) {
		return metrics.StatusProtocolError
	}
	return metrics.StatusTransportError
}
