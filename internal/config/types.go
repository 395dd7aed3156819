package config

import (
	"errors"
	"time"
)

// Log profiles
const (
	LogProfileNone   = "none"
	LogProfileNormal = "normal"
	LogProfileDebug  = "debug"
)

// Batch modes
const (
	// BatchModeConcurrent sends every queued call as its own request, in parallel
	BatchModeConcurrent = "concurrent"
	// BatchModeArray sends the queued calls as one JSON-RPC array
	BatchModeArray = "array"
)

// Cache backends
const (
	CacheBackendMemory = "memory"
	CacheBackendRedis  = "redis"
)

var (
	// ErrInvalidConfig is wrapped by every validation failure
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidURL is returned for malformed connection strings
	ErrInvalidURL = errors.New("invalid connection string")
)

// Config represents the client configuration
type Config struct {
	Host             string       `json:"host" yaml:"host"`
	Port             int          `json:"port" yaml:"port"`
	Protocol         string       `json:"protocol" yaml:"protocol"`
	User             string       `json:"user" yaml:"user"`
	Pass             string       `json:"pass" yaml:"pass"`
	LogProfile       string       `json:"log_profile" yaml:"log_profile"`
	LogFormat        string       `json:"log_format" yaml:"log_format"`
	RequestTimeout   int          `json:"request_timeout" yaml:"request_timeout"` // ms, 0 means no timeout
	LowercaseMethods bool         `json:"lowercase_methods" yaml:"lowercase_methods"`
	BatchMode        string       `json:"batch_mode" yaml:"batch_mode"`
	Cache            *CacheConfig `json:"cache,omitempty" yaml:"cache,omitempty"`
}

// CacheConfig represents result cache configuration
type CacheConfig struct {
	Enabled         bool     `json:"enabled" yaml:"enabled"`
	Backend         string   `json:"backend" yaml:"backend"`
	TTL             int      `json:"ttl" yaml:"ttl"`   // seconds
	Size            int      `json:"size" yaml:"size"` // number of entries, memory backend only
	RedisAddr       string   `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword   string   `json:"redis_password" yaml:"redis_password"`
	RedisDB         int      `json:"redis_db" yaml:"redis_db"`
	DisabledMethods []string `json:"disabled_methods" yaml:"disabled_methods"`
}

// Default values
const (
	DefaultHost           = "127.0.0.1"
	DefaultPort           = 8332
	DefaultProtocol       = "http"
	DefaultUser           = "user"
	DefaultPass           = "pass"
	DefaultLogFormat      = "console"
	DefaultRequestTimeout = 0
	DefaultBatchMode      = BatchModeConcurrent
	DefaultCacheBackend   = CacheBackendMemory
	DefaultCacheTTL       = 300 // seconds
	DefaultCacheSize      = 1024
	DefaultRedisAddr      = "127.0.0.1:6379"
)

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// GetRequestTimeoutDuration returns request timeout as time.Duration
func (c *Config) GetRequestTimeoutDuration() time.Duration {
	return time.Duration(c.RequestTimeout) * time.Millisecond
}

// IsCacheEnabled returns true if cache is configured and enabled
func (c *Config) IsCacheEnabled() bool {
	return c.Cache != nil && c.Cache.Enabled
}

// IsWebSocket returns true when the protocol selects the WebSocket transport
func (c *Config) IsWebSocket() bool {
	return c.Protocol == "ws" || c.Protocol == "wss"
}

// GetTTLDuration returns cache TTL as time.Duration
func (c *CacheConfig) GetTTLDuration() time.Duration {
	return time.Duration(c.TTL) * time.Second
}
