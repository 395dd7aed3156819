package jsonrpc

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Request is one call envelope. Params is encoded at construction and
// never changes afterwards.
type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
	ID      ID              `json:"id"`
}

// NewRequest builds a call envelope. nil params are sent as [].
func NewRequest(method string, params []interface{}, id ID) (*Request, error) {
	if params == nil {
		params = []interface{}{}
	}

	encoded, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to encode params of %s: %w", method, err)
	}

	return &Request{
		JSONRPC: Version,
		Method:  method,
		Params:  encoded,
		ID:      id,
	}, nil
}

func (r *Request) Bytes() ([]byte, error) {
	return json.Marshal(r)
}

// EncodeBatch encodes requests as one JSON array
func EncodeBatch(reqs []*Request) ([]byte, error) {
	return json.Marshal(reqs)
}

// DecodeRequest decodes a single call envelope
func DecodeRequest(data []byte) (*Request, error) {
	var req Request
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, fmt.Errorf("failed to decode request: %w", err)
	}
	return &req, nil
}

// DecodeRequests decodes a body holding either one envelope or an array of
// them. The bool reports which it was.
func DecodeRequests(data []byte) ([]*Request, bool, error) {
	if !isArray(data) {
		req, err := DecodeRequest(data)
		if err != nil {
			return nil, false, err
		}
		return []*Request{req}, false, nil
	}

	var reqs []*Request
	if err := json.Unmarshal(data, &reqs); err != nil {
		return nil, true, fmt.Errorf("failed to decode batch request: %w", err)
	}
	if len(reqs) == 0 {
		return nil, true, errors.New("empty batch request")
	}
	return reqs, true, nil
}
