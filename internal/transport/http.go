package transport

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"elementsrpc/internal/jsonrpc"
)

// HTTPConfig for creating a new HTTPTransport
type HTTPConfig struct {
	URL            string
	User           string
	Pass           string
	RequestTimeout time.Duration
	Logger         zerolog.Logger
}

// HTTPTransport POSTs envelopes to the daemon's root path with basic auth
type HTTPTransport struct {
	url        string
	authHeader string
	httpClient *http.Client
	logger     zerolog.Logger
}

func NewHTTP(cfg HTTPConfig) *HTTPTransport {
	return &HTTPTransport{
		url:        cfg.URL,
		authHeader: basicAuth(cfg.User, cfg.Pass),
		httpClient: &http.Client{
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 100,
				IdleConnTimeout:     90 * time.Second,
				DisableCompression:  true,
			},
			Timeout: cfg.RequestTimeout,
		},
		logger: cfg.Logger.With().Str("component", "transport").Str("url", cfg.URL).Logger(),
	}
}

func (t *HTTPTransport) URL() string {
	return t.url
}

func (t *HTTPTransport) RoundTrip(ctx context.Context, req *jsonrpc.Request) (*jsonrpc.Response, error) {
	payload, err := req.Bytes()
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	body, err := t.post(ctx, payload)
	if err != nil {
		return nil, err
	}
	return jsonrpc.DecodeResponse(body)
}

// RoundTripBatch sends reqs as one JSON array in a single POST
func (t *HTTPTransport) RoundTripBatch(ctx context.Context, reqs []*jsonrpc.Request) ([]*jsonrpc.Response, error) {
	payload, err := jsonrpc.EncodeBatch(reqs)
	if err != nil {
		return nil, fmt.Errorf("failed to encode batch: %w", err)
	}

	body, err := t.post(ctx, payload)
	if err != nil {
		return nil, err
	}
	return jsonrpc.DecodeResponses(body)
}

// post returns the body of a 2xx reply. Client errors from net/http are
// returned as they are.
func (t *HTTPTransport) post(ctx context.Context, payload []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.url, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", t.authHeader)

	start := time.Now()
	resp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	t.logger.Debug().
		Int("status", resp.StatusCode).
		Int("request_bytes", len(payload)).
		Int("response_bytes", len(body)).
		Dur("elapsed", time.Since(start)).
		Msg("http round trip")

	if resp.StatusCode/100 != 2 {
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: body}
	}
	return body, nil
}

// Close drops idle keep-alive connections
func (t *HTTPTransport) Close() error {
	t.httpClient.CloseIdleConnections()
	return nil
}
