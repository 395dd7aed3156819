package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elementsrpc/internal/config"
	"elementsrpc/internal/jsonrpc"
	"elementsrpc/internal/metrics"
)

// hashDaemon answers getBlockHash(n) with "hash-n"; lower heights answer later
func hashDaemon(t *testing.T) *fakeDaemon {
	return newFakeDaemon(t, func(req *jsonrpc.Request) reply {
		switch req.Method {
		case "getBlockHash":
			var p []int
			json.Unmarshal(req.Params, &p)
			return reply{
				result: fmt.Sprintf("hash-%d", p[0]),
				delay:  time.Duration(4-p[0]) * 30 * time.Millisecond,
			}
		case "walletLock":
			return reply{err: jsonrpc.NewError(-13, "already locked")}
		default:
			return reply{result: 42}
		}
	})
}

func decodeStrings(t *testing.T, raws []json.RawMessage) []string {
	t.Helper()
	out := make([]string, len(raws))
	for i, raw := range raws {
		require.NoError(t, json.Unmarshal(raw, &out[i]))
	}
	return out
}

func TestBatch_ResultsInSubmissionOrder(t *testing.T) {
	d := hashDaemon(t)
	store := metrics.New(prometheus.NewRegistry(), "")
	c := newTestClient(t, d, WithMetrics(store))
	ctx := context.Background()

	results, err := c.Batch(ctx, func(b *Batch) error {
		for h := 1; h <= 3; h++ {
			res, err := b.GetBlockHash(ctx, h)
			if err != nil {
				return err
			}
			assert.Nil(t, res)
		}
		assert.Equal(t, 3, b.Len())
		assert.Zero(t, d.hits.Load())
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"hash-1", "hash-2", "hash-3"}, decodeStrings(t, results))
	assert.Equal(t, int32(3), d.hits.Load())
	assert.Equal(t, 1, testutil.CollectAndCount(store.BatchSize))
}

func TestBatch_FailureFailsWholeBatchAndClearsSession(t *testing.T) {
	d := hashDaemon(t)
	c := newTestClient(t, d)
	ctx := context.Background()

	results, err := c.Batch(ctx, func(b *Batch) error {
		b.GetBlockHash(ctx, 1)
		b.WalletLock(ctx)
		b.GetBlockHash(ctx, 3)
		return nil
	})
	require.Error(t, err)
	assert.Nil(t, results)

	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "already locked", pe.Message)

	// a queued call would return a nil result
	res, err := c.GetBlockCount(ctx)
	require.NoError(t, err)
	assert.JSONEq(t, `42`, string(res))
}

func TestBatch_Empty(t *testing.T) {
	d := hashDaemon(t)
	c := newTestClient(t, d)

	results, err := c.Batch(context.Background(), func(b *Batch) error { return nil })
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Zero(t, d.hits.Load())
}

func TestBatch_BodyErrorSendsNothing(t *testing.T) {
	d := hashDaemon(t)
	c := newTestClient(t, d)
	ctx := context.Background()
	errStop := errors.New("stop")

	_, err := c.Batch(ctx, func(b *Batch) error {
		b.GetBlockHash(ctx, 1)
		return errStop
	})
	assert.ErrorIs(t, err, errStop)
	assert.Zero(t, d.hits.Load())
}

func TestBatch_CoercionErrorInBody(t *testing.T) {
	d := hashDaemon(t)
	c := newTestClient(t, d)
	ctx := context.Background()

	_, err := c.Batch(ctx, func(b *Batch) error {
		b.GetBlockHash(ctx, 1)
		_, err := b.GetBlockHash(ctx, "tall")
		return err
	})
	require.Error(t, err)
	assert.Zero(t, d.hits.Load())
}

func TestBatch_NestedIsRejected(t *testing.T) {
	d := hashDaemon(t)
	c := newTestClient(t, d)
	ctx := context.Background()

	var nestedErr error
	results, err := c.Batch(ctx, func(b *Batch) error {
		b.GetBlockHash(ctx, 1)
		_, nestedErr = c.Batch(ctx, func(inner *Batch) error {
			inner.GetBlockHash(ctx, 2)
			return nil
		})
		return nil
	})
	require.NoError(t, err)
	assert.ErrorIs(t, nestedErr, ErrBatchActive)
	assert.Equal(t, []string{"hash-1"}, decodeStrings(t, results))

	// the outer batch finished, so a new one may start
	results, err = c.Batch(ctx, func(b *Batch) error {
		b.GetBlockHash(ctx, 2)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"hash-2"}, decodeStrings(t, results))
}

func TestBatch_ConcurrentIsRejected(t *testing.T) {
	d := hashDaemon(t)
	c := newTestClient(t, d)
	ctx := context.Background()

	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		_, err := c.Batch(ctx, func(b *Batch) error {
			close(entered)
			<-release
			return nil
		})
		done <- err
	}()

	<-entered
	_, err := c.Batch(ctx, func(b *Batch) error { return nil })
	assert.ErrorIs(t, err, ErrBatchActive)

	close(release)
	require.NoError(t, <-done)
}

func TestBatch_RetainedBatchIsClosed(t *testing.T) {
	d := hashDaemon(t)
	c := newTestClient(t, d)
	ctx := context.Background()

	var kept *Batch
	_, err := c.Batch(ctx, func(b *Batch) error {
		kept = b
		return nil
	})
	require.NoError(t, err)

	_, err = kept.GetBlockHash(ctx, 1)
	assert.ErrorIs(t, err, ErrBatchClosed)
	assert.Zero(t, d.hits.Load())
}

func TestBatch_ImmediateCallsDuringBodyAreSent(t *testing.T) {
	d := hashDaemon(t)
	c := newTestClient(t, d)
	ctx := context.Background()

	_, err := c.Batch(ctx, func(b *Batch) error {
		res, err := c.GetBlockCount(ctx)
		require.NoError(t, err)
		assert.JSONEq(t, `42`, string(res))
		b.GetBlockHash(ctx, 3)
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, int32(2), d.hits.Load())
}

func TestBatch_ArrayMode(t *testing.T) {
	d := hashDaemon(t)
	c := newTestClient(t, d, WithBatchMode(config.BatchModeArray))
	ctx := context.Background()

	results, err := c.Batch(ctx, func(b *Batch) error {
		b.GetBlockHash(ctx, 1)
		b.GetBlockHash(ctx, 2)
		b.Call(ctx, "getblockhash", 3)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"hash-1", "hash-2", "hash-3"}, decodeStrings(t, results))
	assert.Equal(t, int32(1), d.hits.Load())
	for _, req := range d.requests() {
		assert.Equal(t, "getBlockHash", req.Method)
	}
}

func TestBatch_ArrayModeElementError(t *testing.T) {
	d := hashDaemon(t)
	c := newTestClientConfig(t, d, func(cfg *config.Config) { cfg.BatchMode = config.BatchModeArray })
	ctx := context.Background()

	_, err := c.Batch(ctx, func(b *Batch) error {
		b.GetBlockHash(ctx, 1)
		b.WalletLock(ctx)
		return nil
	})
	var pe *ProtocolError
	require.ErrorAs(t, err, &pe)
	assert.Equal(t, "already locked", pe.Message)
}
