// Package config loads server configuration from TOML files.
//
// A config file is optional: every field has a default that yields a
// self-contained single-process server (in-memory store, no shared cache).
// The serve command points Load at a file like:
//
//	[server]
//	addr = ":8480"
//
//	[store]
//	driver = "mongo"
//	uri = "mongodb://localhost:27017"
//	database = "netcanvas"
//
//	[cache]
//	driver = "redis"
//	addr = "localhost:6379"
//
//	[layout]
//	direction = "TB"
//	tier = "comfortable"
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/netcanvas/netcanvas/pkg/errors"
	"github.com/netcanvas/netcanvas/pkg/pipeline"
)

// Store drivers.
const (
	StoreMemory = "memory"
	StoreMongo  = "mongo"
)

// Cache drivers.
const (
	CacheNull  = "null"
	CacheFile  = "file"
	CacheRedis = "redis"
)

// Config is the full server configuration.
type Config struct {
	Server ServerConfig `toml:"server"`
	Store  StoreConfig  `toml:"store"`
	Cache  CacheConfig  `toml:"cache"`
	Layout LayoutConfig `toml:"layout"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StoreConfig selects and configures the diagram store.
type StoreConfig struct {
	Driver   string `toml:"driver"`
	URI      string `toml:"uri"`
	Database string `toml:"database"`
}

// CacheConfig selects and configures the layout cache.
type CacheConfig struct {
	Driver string `toml:"driver"`
	Dir    string `toml:"dir"`  // file driver
	Addr   string `toml:"addr"` // redis driver
}

// LayoutConfig carries default layout options applied when a request omits
// them.
type LayoutConfig struct {
	Direction string  `toml:"direction"`
	Tier      string  `toml:"tier"`
	BaseUnit  float64 `toml:"base_unit"`
	Padding   float64 `toml:"padding"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Server: ServerConfig{Addr: ":8480"},
		Store:  StoreConfig{Driver: StoreMemory, Database: "netcanvas"},
		Cache:  CacheConfig{Driver: CacheNull},
		Layout: LayoutConfig{
			Direction: pipeline.DefaultDirection,
			Tier:      pipeline.DefaultTier,
		},
	}
}

// Load reads a TOML config file, layering it over the defaults. An empty
// path returns the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks driver names and required driver parameters.
func (c *Config) Validate() error {
	switch c.Store.Driver {
	case StoreMemory:
	case StoreMongo:
		if c.Store.URI == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "store.uri is required for the mongo driver")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown store driver %q", c.Store.Driver)
	}

	switch c.Cache.Driver {
	case CacheNull:
	case CacheFile:
		if c.Cache.Dir == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.dir is required for the file driver")
		}
	case CacheRedis:
		if c.Cache.Addr == "" {
			return errors.New(errors.ErrCodeInvalidConfig, "cache.addr is required for the redis driver")
		}
	default:
		return errors.New(errors.ErrCodeInvalidConfig, "unknown cache driver %q", c.Cache.Driver)
	}

	return nil
}
