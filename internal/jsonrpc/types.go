// Package jsonrpc encodes JSON-RPC 2.0 call envelopes and decodes the
// daemon's replies.
package jsonrpc

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Version is the JSON-RPC version
const Version = "2.0"

const (
	CodeMethodNotFound = -32601
	CodeInternalError  = -32603
)

// ID is a request ID. Requests always carry a number; replies may carry
// null, as btcd does for notifications.
type ID struct {
	n     int64
	valid bool
}

// NewID creates a numeric ID
func NewID(n int64) ID {
	return ID{n: n, valid: true}
}

// IsNull reports whether the ID is null or not a number
func (id ID) IsNull() bool {
	return !id.valid
}

// Int64 returns the numeric value of the ID
func (id ID) Int64() (int64, bool) {
	return id.n, id.valid
}

// String returns the ID as it appears on the wire
func (id ID) String() string {
	if !id.valid {
		return "null"
	}
	return strconv.FormatInt(id.n, 10)
}

func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalJSON accepts numbers and numeric strings. Anything else decodes
// to a null ID rather than failing the whole reply.
func (id *ID) UnmarshalJSON(data []byte) error {
	*id = ID{}

	data = bytes.TrimSpace(data)
	if len(data) > 1 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		data = []byte(s)
	}

	if n, err := strconv.ParseInt(string(data), 10, 64); err == nil {
		*id = NewID(n)
		return nil
	}
	if f, err := strconv.ParseFloat(string(data), 64); err == nil && f == float64(int64(f)) {
		*id = NewID(int64(f))
	}
	return nil
}

// Error is the error object of a failed reply
type Error struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func (e *Error) Error() string {
	return e.Message
}

func NewError(code int, message string) *Error {
	return &Error{Code: code, Message: message}
}

// ParseErrorBody extracts the error object from a reply body. bitcoind sends
// one alongside a non-2xx status. Returns nil when the body is not JSON or
// has no error message.
func ParseErrorBody(body []byte) *Error {
	var reply struct {
		Error *Error `json:"error"`
	}
	if err := json.Unmarshal(body, &reply); err != nil {
		return nil
	}
	if reply.Error == nil || reply.Error.Message == "" {
		return nil
	}
	return reply.Error
}

// isArray reports whether a JSON document is an array
func isArray(data []byte) bool {
	data = bytes.TrimLeft(data, " \t\r\n")
	return len(data) > 0 && data[0] == '['
}
