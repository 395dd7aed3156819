package client

import (
	"encoding/json"
	"fmt"
)

// Decode unmarshals a call result into T. It takes a generated method's
// return values directly:
//
//	hash, err := client.Decode[string](c.GetBestBlockHash(ctx))
func Decode[T any](raw json.RawMessage, err error) (T, error) {
	var v T
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(raw, &v); err != nil {
		return v, fmt.Errorf("failed to decode result: %w", err)
	}
	return v, nil
}
