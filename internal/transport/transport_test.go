package transport

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"elementsrpc/internal/jsonrpc"
)

func newRequest(t *testing.T, method string, id int64, params ...interface{}) *jsonrpc.Request {
	t.Helper()
	req, err := jsonrpc.NewRequest(method, params, jsonrpc.NewID(id))
	require.NoError(t, err)
	return req
}

func TestHTTP_RoundTrip(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		assert.True(t, ok)
		assert.Equal(t, "alice", user)
		assert.Equal(t, "s3cr3t", pass)

		body, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"jsonrpc":"2.0","method":"getBlockHash","params":[5],"id":9}`, string(body))

		w.Write([]byte(`{"result":"00ff","error":null,"id":9}`))
	}))
	defer srv.Close()

	tr := NewHTTP(HTTPConfig{URL: srv.URL, User: "alice", Pass: "s3cr3t", Logger: zerolog.Nop()})
	defer tr.Close()

	resp, err := tr.RoundTrip(context.Background(), newRequest(t, "getBlockHash", 9, 5))
	require.NoError(t, err)
	assert.False(t, resp.HasError())
	assert.JSONEq(t, `"00ff"`, string(resp.Result))
}

func TestHTTP_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"result":null,"error":{"code":-13,"message":"already locked"},"id":1}`))
	}))
	defer srv.Close()

	tr := NewHTTP(HTTPConfig{URL: srv.URL, Logger: zerolog.Nop()})
	_, err := tr.RoundTrip(context.Background(), newRequest(t, "walletLock", 1))
	require.Error(t, err)

	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusInternalServerError, se.StatusCode)
	assert.Equal(t, "already locked", jsonrpc.ParseErrorBody(se.Body).Message)
}

func TestHTTP_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	tr := NewHTTP(HTTPConfig{URL: url, Logger: zerolog.Nop()})
	_, err := tr.RoundTrip(context.Background(), newRequest(t, "getInfo", 1))
	require.Error(t, err)

	var se *StatusError
	assert.False(t, strings.Contains(err.Error(), "HTTP error"))
	assert.NotErrorAs(t, err, &se)
}

func TestHTTP_RoundTripBatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reqs, isBatch, err := jsonrpc.DecodeRequests(mustRead(r))
		assert.NoError(t, err)
		assert.True(t, isBatch)

		// answer in reverse order
		out := make([]*jsonrpc.Response, 0, len(reqs))
		for i := len(reqs) - 1; i >= 0; i-- {
			resp, _ := jsonrpc.NewResponse(reqs[i].ID, reqs[i].Method)
			out = append(out, resp)
		}
		data, _ := jsonrpc.EncodeResponses(out)
		w.Write(data)
	}))
	defer srv.Close()

	tr := NewHTTP(HTTPConfig{URL: srv.URL, Logger: zerolog.Nop()})
	responses, err := tr.RoundTripBatch(context.Background(), []*jsonrpc.Request{
		newRequest(t, "a", 1),
		newRequest(t, "b", 2),
	})
	require.NoError(t, err)
	require.Len(t, responses, 2)
	assert.JSONEq(t, `"b"`, string(responses[0].Result))
	assert.JSONEq(t, `"a"`, string(responses[1].Result))
}

func mustRead(r *http.Request) []byte {
	data, _ := io.ReadAll(r.Body)
	return data
}

func newWSServer(t *testing.T) *httptest.Server {
	t.Helper()
	upgrader := websocket.Upgrader{}
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, _, ok := r.BasicAuth(); !ok {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		// a notification first, which the client must skip
		conn.WriteMessage(websocket.TextMessage, []byte(`{"jsonrpc":"1.0","method":"blockconnected","params":[],"id":null}`))

		for {
			_, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			req, err := jsonrpc.DecodeRequest(data)
			if err != nil {
				return
			}
			if req.Method == "silent" {
				continue
			}
			var resp *jsonrpc.Response
			if req.Method == "fail" {
				resp = jsonrpc.NewErrorResponse(req.ID, jsonrpc.NewError(-1, "boom"))
			} else {
				resp, _ = jsonrpc.NewResponse(req.ID, json.RawMessage(req.Params))
			}
			out, _ := resp.Bytes()
			conn.WriteMessage(websocket.TextMessage, out)
		}
	}))
}

func TestWS_RoundTrip(t *testing.T) {
	srv := newWSServer(t)
	defer srv.Close()

	tr := NewWS(WSConfig{
		URL:            "ws" + strings.TrimPrefix(srv.URL, "http") + WSPath,
		User:           "u",
		Pass:           "p",
		MessageTimeout: 5 * time.Second,
		Logger:         zerolog.Nop(),
	})
	defer tr.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, err := tr.RoundTrip(ctx, newRequest(t, "echo", 77, "x", 1))
	require.NoError(t, err)
	assert.JSONEq(t, `["x",1]`, string(resp.Result))
	id, _ := resp.ID.Int64()
	assert.Equal(t, int64(77), id)

	resp, err = tr.RoundTrip(ctx, newRequest(t, "fail", 78))
	require.NoError(t, err)
	require.True(t, resp.HasError())
	assert.Equal(t, "boom", resp.Error.Message)
}

func TestWS_TimeoutKeepsConnection(t *testing.T) {
	srv := newWSServer(t)
	defer srv.Close()

	tr := NewWS(WSConfig{
		URL:            "ws" + strings.TrimPrefix(srv.URL, "http") + WSPath,
		User:           "u",
		Pass:           "p",
		MessageTimeout: 100 * time.Millisecond,
		Logger:         zerolog.Nop(),
	})
	defer tr.Close()

	ctx := context.Background()
	_, err := tr.RoundTrip(ctx, newRequest(t, "echo", 1, "a"))
	require.NoError(t, err)

	// idle for longer than the message timeout
	time.Sleep(300 * time.Millisecond)

	resp, err := tr.RoundTrip(ctx, newRequest(t, "echo", 2, "b"))
	require.NoError(t, err)
	assert.JSONEq(t, `["b"]`, string(resp.Result))

	_, err = tr.RoundTrip(ctx, newRequest(t, "silent", 3))
	assert.ErrorIs(t, err, ErrWSTimeout)

	resp, err = tr.RoundTrip(ctx, newRequest(t, "echo", 4, "c"))
	require.NoError(t, err)
	assert.JSONEq(t, `["c"]`, string(resp.Result))
}

func TestWS_Unauthorized(t *testing.T) {
	srv := newWSServer(t)
	defer srv.Close()

	tr := NewWS(WSConfig{URL: "ws" + strings.TrimPrefix(srv.URL, "http"), Logger: zerolog.Nop()})
	tr.header.Del("Authorization")
	defer tr.Close()

	_, err := tr.RoundTrip(context.Background(), newRequest(t, "echo", 1))
	var se *StatusError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
}

func TestWS_ClosedTransport(t *testing.T) {
	tr := NewWS(WSConfig{URL: "ws://127.0.0.1:1/ws", Logger: zerolog.Nop()})
	require.NoError(t, tr.Close())

	_, err := tr.RoundTrip(context.Background(), newRequest(t, "echo", 1))
	assert.ErrorIs(t, err, ErrWSClosed)
}
