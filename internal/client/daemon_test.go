package client

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"elementsrpc/internal/config"
	"elementsrpc/internal/jsonrpc"
)

// reply is what the fake daemon answers for one request
type reply struct {
	result interface{}
	err    *jsonrpc.Error
	delay  time.Duration
}

// fakeDaemon is a bitcoind-like JSON-RPC endpoint. Errors are sent with
// status 500, array requests are answered in reverse order.
type fakeDaemon struct {
	t      *testing.T
	srv    *httptest.Server
	handle func(req *jsonrpc.Request) reply

	hits atomic.Int32
	mu   sync.Mutex
	seen []*jsonrpc.Request
	auth []string
}

func newFakeDaemon(t *testing.T, handle func(req *jsonrpc.Request) reply) *fakeDaemon {
	t.Helper()
	d := &fakeDaemon{t: t, handle: handle}
	d.srv = httptest.NewServer(http.HandlerFunc(d.serveHTTP))
	t.Cleanup(d.srv.Close)
	return d
}

func (d *fakeDaemon) serveHTTP(w http.ResponseWriter, r *http.Request) {
	d.hits.Add(1)

	user, pass, _ := r.BasicAuth()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	reqs, isBatch, err := jsonrpc.DecodeRequests(body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	d.mu.Lock()
	d.seen = append(d.seen, reqs...)
	d.auth = append(d.auth, user+":"+pass)
	d.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	if isBatch {
		resps := make([]*jsonrpc.Response, 0, len(reqs))
		for i := len(reqs) - 1; i >= 0; i-- {
			resps = append(resps, d.respond(reqs[i]))
		}
		data, _ := jsonrpc.EncodeResponses(resps)
		w.Write(data)
		return
	}

	resp := d.respond(reqs[0])
	if resp.HasError() {
		w.WriteHeader(http.StatusInternalServerError)
	}
	data, _ := resp.Bytes()
	w.Write(data)
}

func (d *fakeDaemon) respond(req *jsonrpc.Request) *jsonrpc.Response {
	rep := reply{}
	if d.handle != nil {
		rep = d.handle(req)
	}
	if rep.delay > 0 {
		time.Sleep(rep.delay)
	}
	if rep.err != nil {
		return jsonrpc.NewErrorResponse(req.ID, rep.err)
	}
	resp, err := jsonrpc.NewResponse(req.ID, rep.result)
	if err != nil {
		return jsonrpc.NewErrorResponse(req.ID, jsonrpc.NewError(jsonrpc.CodeInternalError, err.Error()))
	}
	return resp
}

// requests returns every request received so far
func (d *fakeDaemon) requests() []*jsonrpc.Request {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]*jsonrpc.Request, len(d.seen))
	copy(out, d.seen)
	return out
}

// last returns the most recent request
func (d *fakeDaemon) last() *jsonrpc.Request {
	reqs := d.requests()
	require.NotEmpty(d.t, reqs)
	return reqs[len(reqs)-1]
}

// url returns a connection string for the daemon with the given credentials
func (d *fakeDaemon) url(user, pass string) string {
	return strings.Replace(d.srv.URL, "http://", "http://"+user+":"+pass+"@", 1)
}

// newTestClient dials d with a silent logger
func newTestClient(t *testing.T, d *fakeDaemon, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithLogger(zerolog.Nop())}, opts...)
	c, err := Dial(d.url("alice", "s3cr3t"), opts...)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

// newTestClientConfig builds a client for d from an explicit config
func newTestClientConfig(t *testing.T, d *fakeDaemon, mutate func(cfg *config.Config), opts ...Option) *Client {
	t.Helper()
	cfg, err := config.ParseURL(d.url("alice", "s3cr3t"))
	require.NoError(t, err)
	mutate(cfg)
	opts = append([]Option{WithLogger(zerolog.Nop())}, opts...)
	c, err := New(*cfg, opts...)
	require.NoError(t, err)
	t.Cleanup(func() { c.Close() })
	return c
}

// params decodes a request's params for comparison
func params(t *testing.T, req *jsonrpc.Request) []interface{} {
	t.Helper()
	var out []interface{}
	require.NoError(t, json.Unmarshal(req.Params, &out))
	return out
}
