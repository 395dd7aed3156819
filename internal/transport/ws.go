package transport

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"elementsrpc/internal/jsonrpc"
)

// WSPath is the endpoint btcd-style daemons serve JSON-RPC websockets on
const WSPath = "/ws"

// ErrWSClosed is returned for requests on a closed or lost connection
var ErrWSClosed = errors.New("websocket connection closed")

// ErrWSTimeout is returned when no response arrives within the message timeout.
// The connection stays usable.
var ErrWSTimeout = errors.New("websocket response timeout")

// WSConfig for creating a new WSTransport
type WSConfig struct {
	URL            string
	User           string
	Pass           string
	MessageTimeout time.Duration
	Logger         zerolog.Logger
}

// WSTransport multiplexes JSON-RPC requests over one WebSocket connection.
// The connection is dialed on first use and is not re-established once lost.
// Idle connections have no read deadline; MessageTimeout bounds each request.
type WSTransport struct {
	url            string
	header         http.Header
	messageTimeout time.Duration
	logger         zerolog.Logger

	conn    *websocket.Conn
	connMu  sync.Mutex
	writeMu sync.Mutex
	closed  bool

	pending   map[int64]chan *jsonrpc.Response
	pendingMu sync.Mutex
	reqID     int64

	wg sync.WaitGroup
}

// NewWS creates a new WSTransport
func NewWS(cfg WSConfig) *WSTransport {
	header := http.Header{}
	header.Set("Authorization", basicAuth(cfg.User, cfg.Pass))

	return &WSTransport{
		url:            cfg.URL,
		header:         header,
		messageTimeout: cfg.MessageTimeout,
		logger:         cfg.Logger.With().Str("component", "transport").Str("url", cfg.URL).Logger(),
		pending:        make(map[int64]chan *jsonrpc.Response),
	}
}

// connect establishes the WebSocket connection and starts the reader goroutine
func (t *WSTransport) connect(ctx context.Context) (*websocket.Conn, error) {
	t.connMu.Lock()
	defer t.connMu.Unlock()

	if t.closed {
		return nil, ErrWSClosed
	}
	if t.conn != nil {
		return t.conn, nil
	}

	t.logger.Debug().Msg("WebSocket connecting")
	dialer := websocket.Dialer{HandshakeTimeout: 10 * time.Second}
	conn, resp, err := dialer.DialContext(ctx, t.url, t.header)
	if err != nil {
		if resp != nil && resp.StatusCode != http.StatusSwitchingProtocols {
			return nil, &StatusError{StatusCode: resp.StatusCode}
		}
		return nil, err
	}

	t.conn = conn
	t.logger.Debug().Msg("WebSocket connected")
	t.wg.Add(1)
	go t.readLoop(conn)
	return conn, nil
}

// RoundTrip sends a request and waits for the response with the same ID.
// The wire ID is replaced by a connection-local one and restored afterwards.
func (t *WSTransport) RoundTrip(ctx context.Context, req *jsonrpc.Request) (*jsonrpc.Response, error) {
	conn, err := t.connect(ctx)
	if err != nil {
		return nil, err
	}

	reqID := atomic.AddInt64(&t.reqID, 1)
	respChan := make(chan *jsonrpc.Response, 1)

	t.pendingMu.Lock()
	t.pending[reqID] = respChan
	t.pendingMu.Unlock()

	// the reader may have failed pending requests before we registered
	t.connMu.Lock()
	lost := t.conn != conn
	t.connMu.Unlock()
	if lost {
		t.dropPending(reqID)
		return nil, ErrWSClosed
	}

	wsReq := *req
	wsReq.ID = jsonrpc.NewID(reqID)

	reqBytes, err := wsReq.Bytes()
	if err != nil {
		t.dropPending(reqID)
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	t.writeMu.Lock()
	writeErr := conn.WriteMessage(websocket.TextMessage, reqBytes)
	t.writeMu.Unlock()
	if writeErr != nil {
		t.dropPending(reqID)
		return nil, writeErr
	}

	var timeout <-chan time.Time
	if t.messageTimeout > 0 {
		timer := time.NewTimer(t.messageTimeout)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case resp := <-respChan:
		if resp == nil {
			return nil, ErrWSClosed
		}
		resp.ID = req.ID
		return resp, nil
	case <-timeout:
		t.dropPending(reqID)
		return nil, fmt.Errorf("%w after %s", ErrWSTimeout, t.messageTimeout)
	case <-ctx.Done():
		t.dropPending(reqID)
		return nil, ctx.Err()
	}
}

func (t *WSTransport) dropPending(reqID int64) {
	t.pendingMu.Lock()
	delete(t.pending, reqID)
	t.pendingMu.Unlock()
}

func (t *WSTransport) readLoop(conn *websocket.Conn) {
	defer t.wg.Done()
	defer t.failPending(conn)

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.connMu.Lock()
			closed := t.closed
			t.connMu.Unlock()
			if !closed {
				t.logger.Warn().Err(err).Msg("WebSocket connection lost")
			}
			return
		}

		resp, err := jsonrpc.DecodeResponse(data)
		if err != nil {
			t.logger.Debug().Err(err).Msg("ignoring unparsable message")
			continue
		}

		id, ok := resp.ID.Int64()
		if !ok {
			// btcd notifications carry a null id
			t.logger.Debug().Bytes("message", data).Msg("ignoring notification")
			continue
		}

		t.pendingMu.Lock()
		ch, found := t.pending[id]
		delete(t.pending, id)
		t.pendingMu.Unlock()

		if found {
			ch <- resp
		}
	}
}

// failPending releases every waiter once the reader stops
func (t *WSTransport) failPending(conn *websocket.Conn) {
	t.connMu.Lock()
	if t.conn == conn {
		t.conn = nil
		t.closed = true
	}
	t.connMu.Unlock()
	conn.Close()

	t.pendingMu.Lock()
	for id, ch := range t.pending {
		close(ch)
		delete(t.pending, id)
	}
	t.pendingMu.Unlock()
}

// Close closes the connection and stops the reader
func (t *WSTransport) Close() error {
	t.connMu.Lock()
	t.closed = true
	conn := t.conn
	t.connMu.Unlock()

	if conn != nil {
		t.writeMu.Lock()
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		t.writeMu.Unlock()
		conn.Close()
	}

	t.wg.Wait()
	return nil
}
