package jsonrpc

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Response is a reply envelope. Result is kept undecoded.
type Response struct {
	JSONRPC string          `json:"jsonrpc,omitempty"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error,omitempty"`
	ID      ID              `json:"id"`
}

func (r *Response) HasError() bool {
	return r.Error != nil
}

// ResultIsNull reports a missing or JSON null result
func (r *Response) ResultIsNull() bool {
	return len(r.Result) == 0 || bytes.Equal(r.Result, []byte("null"))
}

// NewResponse builds a successful reply; used by test daemons
func NewResponse(id ID, result interface{}) (*Response, error) {
	encoded, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	return &Response{JSONRPC: Version, Result: encoded, ID: id}, nil
}

// NewErrorResponse builds a failed reply with a null result
func NewErrorResponse(id ID, err *Error) *Response {
	return &Response{JSONRPC: Version, Error: err, ID: id}
}

func (r *Response) Bytes() ([]byte, error) {
	return json.Marshal(r)
}

// EncodeResponses encodes replies as one JSON array
func EncodeResponses(resps []*Response) ([]byte, error) {
	return json.Marshal(resps)
}

// DecodeResponse decodes a single reply
func DecodeResponse(data []byte) (*Response, error) {
	var resp Response
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &resp, nil
}

// DecodeResponses decodes the reply to an array request. A daemon that
// rejects the whole array answers with a single object, returned as the only
// element.
func DecodeResponses(data []byte) ([]*Response, error) {
	if !isArray(data) {
		resp, err := DecodeResponse(data)
		if err != nil {
			return nil, err
		}
		return []*Response{resp}, nil
	}

	var resps []*Response
	if err := json.Unmarshal(data, &resps); err != nil {
		return nil, fmt.Errorf("failed to decode batch response: %w", err)
	}
	return resps, nil
}
