package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and parses a YAML or JSON configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return Parse(data)
}

// Parse parses configuration bytes. JSON is accepted as a subset of YAML.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	applyDefaults(cfg)

	if err := Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Finalize applies defaults to a programmatically built config and validates it
func Finalize(cfg *Config) error {
	applyDefaults(cfg)
	return Validate(cfg)
}

// applyDefaults sets default values for unset fields
func applyDefaults(cfg *Config) {
	if cfg.Host == "" {
		cfg.Host = DefaultHost
	}
	if cfg.Port == 0 {
		cfg.Port = DefaultPort
	}
	if cfg.Protocol == "" {
		cfg.Protocol = DefaultProtocol
	}
	if cfg.User == "" {
		cfg.User = DefaultUser
	}
	if cfg.Pass == "" {
		cfg.Pass = DefaultPass
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	if cfg.BatchMode == "" {
		cfg.BatchMode = DefaultBatchMode
	}

	if cfg.Cache != nil {
		if cfg.Cache.Backend == "" {
			cfg.Cache.Backend = DefaultCacheBackend
		}
		if cfg.Cache.TTL == 0 {
			cfg.Cache.TTL = DefaultCacheTTL
		}
		if cfg.Cache.Size == 0 {
			cfg.Cache.Size = DefaultCacheSize
		}
		if cfg.Cache.Backend == CacheBackendRedis && cfg.Cache.RedisAddr == "" {
			cfg.Cache.RedisAddr = DefaultRedisAddr
		}
	}
}

// Validate checks the configuration for errors
func Validate(cfg *Config) error {
	if cfg.Port < 1 || cfg.Port > 65535 {
		return fmt.Errorf("%w: port must be between 1 and 65535", ErrInvalidConfig)
	}

	switch cfg.Protocol {
	case "http", "https", "ws", "wss":
	default:
		return fmt.Errorf("%w: unsupported protocol '%s'", ErrInvalidConfig, cfg.Protocol)
	}

	switch cfg.LogProfile {
	case "", LogProfileNone, LogProfileNormal, LogProfileDebug:
	default:
		return fmt.Errorf("%w: log_profile must be one of: none, normal, debug", ErrInvalidConfig)
	}

	switch cfg.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log_format must be one of: console, json", ErrInvalidConfig)
	}

	if cfg.RequestTimeout < 0 {
		return fmt.Errorf("%w: request_timeout must be non-negative", ErrInvalidConfig)
	}

	switch cfg.BatchMode {
	case BatchModeConcurrent:
	case BatchModeArray:
		if cfg.IsWebSocket() {
			return fmt.Errorf("%w: batch_mode 'array' requires an HTTP protocol", ErrInvalidConfig)
		}
	default:
		return fmt.Errorf("%w: batch_mode must be one of: concurrent, array", ErrInvalidConfig)
	}

	if cfg.IsCacheEnabled() {
		if cfg.Cache.TTL <= 0 {
			return fmt.Errorf("%w: cache.ttl must be positive when cache is enabled", ErrInvalidConfig)
		}
		switch cfg.Cache.Backend {
		case CacheBackendMemory:
			if cfg.Cache.Size <= 0 {
				return fmt.Errorf("%w: cache.size must be positive when cache is enabled", ErrInvalidConfig)
			}
		case CacheBackendRedis:
		default:
			return fmt.Errorf("%w: cache.backend must be one of: memory, redis", ErrInvalidConfig)
		}
	}

	return nil
}
