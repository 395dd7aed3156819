package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"strings"
)

// MethodCacheability defines how a method should be cached
type MethodCacheability int

const (
	// NotCacheable - method should never be cached
	NotCacheable MethodCacheability = iota
	// AlwaysCacheable - result depends only on the params
	AlwaysCacheable
	// CacheableWhenRaw - cacheable only when the verbosity param asks for raw hex,
	// since verbose output carries a changing confirmations count
	CacheableWhenRaw
)

type cacheRule struct {
	kind MethodCacheability
	// verbosityIdx is the position of the verbosity param
	verbosityIdx int
	// rawByDefault is true when omitting the verbosity param returns raw hex
	rawByDefault bool
}

// methodCacheRules maps lowercased method names to their cacheability rules
var methodCacheRules = map[string]cacheRule{
	"decoderawtransaction": {kind: AlwaysCacheable},
	"help":                 {kind: AlwaysCacheable},

	"getblock":          {kind: CacheableWhenRaw, verbosityIdx: 1, rawByDefault: false},
	"getblockheader":    {kind: CacheableWhenRaw, verbosityIdx: 1, rawByDefault: false},
	"getrawtransaction": {kind: CacheableWhenRaw, verbosityIdx: 1, rawByDefault: true},
}

// Policy decides which requests may be served from the cache
type Policy struct {
	disabled map[string]bool
}

// NewPolicy creates a Policy; disabled lists methods that must never be cached
func NewPolicy(disabled []string) *Policy {
	p := &Policy{disabled: make(map[string]bool, len(disabled))}
	for _, method := range disabled {
		p.disabled[strings.ToLower(method)] = true
	}
	return p
}

// IsMethodDisabled checks if a method is in the disabled list
func (p *Policy) IsMethodDisabled(method string) bool {
	return p.disabled[strings.ToLower(method)]
}

// IsCacheable checks if a request is cacheable based on method and params
func (p *Policy) IsCacheable(method string, params json.RawMessage) bool {
	if p.IsMethodDisabled(method) {
		return false
	}

	rule, exists := methodCacheRules[strings.ToLower(method)]
	if !exists {
		return false
	}

	switch rule.kind {
	case AlwaysCacheable:
		return true
	case CacheableWhenRaw:
		return requestsRaw(params, rule)
	default:
		return false
	}
}

// requestsRaw reports whether the verbosity param selects raw hex output
func requestsRaw(params json.RawMessage, rule cacheRule) bool {
	var paramsArray []json.RawMessage
	if len(params) > 0 {
		if err := json.Unmarshal(params, &paramsArray); err != nil {
			return false
		}
	}

	if rule.verbosityIdx >= len(paramsArray) {
		return rule.rawByDefault
	}

	var v interface{}
	if err := json.Unmarshal(paramsArray[rule.verbosityIdx], &v); err != nil {
		return false
	}
	switch val := v.(type) {
	case nil:
		return rule.rawByDefault
	case bool:
		return !val
	case float64:
		return val == 0
	default:
		return false
	}
}

// GenerateCacheKey returns "method:hash". The hash covers params with
// strings lowercased, so hex arguments that differ only in case share a key.
func GenerateCacheKey(method string, params json.RawMessage) string {
	var v interface{} = []interface{}{}
	if len(params) > 0 {
		if err := json.Unmarshal(params, &v); err != nil {
			v = string(params)
		}
	}

	// encoding/json sorts map keys
	canonicalParams, err := json.Marshal(lowerStrings(v))
	if err != nil {
		canonicalParams = params
	}

	sum := sha256.Sum256(canonicalParams)
	return strings.ToLower(method) + ":" + hex.EncodeToString(sum[:8])
}

// lowerStrings lowercases every string in a decoded JSON value, in place
func lowerStrings(v interface{}) interface{} {
	switch val := v.(type) {
	case map[string]interface{}:
		for k, e := range val {
			val[k] = lowerStrings(e)
		}
	case []interface{}:
		for i, e := range val {
			val[i] = lowerStrings(e)
		}
	case string:
		return strings.ToLower(val)
	}
	return v
}
