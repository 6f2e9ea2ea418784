package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/netcanvas/netcanvas/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netcanvas.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Server.Addr != ":8480" {
		t.Errorf("Addr = %s", cfg.Server.Addr)
	}
	if cfg.Store.Driver != StoreMemory {
		t.Errorf("store driver = %s", cfg.Store.Driver)
	}
	if cfg.Cache.Driver != CacheNull {
		t.Errorf("cache driver = %s", cfg.Cache.Driver)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":9000"

[store]
driver = "mongo"
uri = "mongodb://localhost:27017"

[cache]
driver = "redis"
addr = "localhost:6379"

[layout]
direction = "LR"
tier = "spacious"
base_unit = 42.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Addr = %s", cfg.Server.Addr)
	}
	if cfg.Store.Driver != StoreMongo || cfg.Store.URI != "mongodb://localhost:27017" {
		t.Errorf("store = %+v", cfg.Store)
	}
	if cfg.Cache.Driver != CacheRedis || cfg.Cache.Addr != "localhost:6379" {
		t.Errorf("cache = %+v", cfg.Cache)
	}
	if cfg.Layout.Direction != "LR" || cfg.Layout.Tier != "spacious" || cfg.Layout.BaseUnit != 42 {
		t.Errorf("layout = %+v", cfg.Layout)
	}

	// Fields absent from the file keep their defaults.
	if cfg.Store.Database != "netcanvas" {
		t.Errorf("Database = %s, want the default", cfg.Store.Database)
	}
}

func TestLoadPartialFile(t *testing.T) {
	path := writeConfig(t, `
[server]
addr = ":7777"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Addr != ":7777" {
		t.Errorf("Addr = %s", cfg.Server.Addr)
	}
	if cfg.Store.Driver != StoreMemory || cfg.Cache.Driver != CacheNull {
		t.Errorf("defaults lost: %+v / %+v", cfg.Store, cfg.Cache)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\"): %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("expected error for a missing file")
	}

	bad := writeConfig(t, `[server`)
	if _, err := Load(bad); !errors.Is(err, errors.ErrCodeInvalidConfig) {
		t.Errorf("malformed TOML: err = %v, want INVALID_CONFIG", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "Defaults", mutate: func(*Config) {}},
		{
			name:    "UnknownStoreDriver",
			mutate:  func(c *Config) { c.Store.Driver = "postgres" },
			wantErr: true,
		},
		{
			name:    "MongoWithoutURI",
			mutate:  func(c *Config) { c.Store.Driver = StoreMongo },
			wantErr: true,
		},
		{
			name: "MongoWithURI",
			mutate: func(c *Config) {
				c.Store.Driver = StoreMongo
				c.Store.URI = "mongodb://localhost:27017"
			},
		},
		{
			name:    "UnknownCacheDriver",
			mutate:  func(c *Config) { c.Cache.Driver = "memcached" },
			wantErr: true,
		},
		{
			name:    "FileCacheWithoutDir",
			mutate:  func(c *Config) { c.Cache.Driver = CacheFile },
			wantErr: true,
		},
		{
			name:    "RedisWithoutAddr",
			mutate:  func(c *Config) { c.Cache.Driver = CacheRedis },
			wantErr: true,
		},
		{
			name: "RedisWithAddr",
			mutate: func(c *Config) {
				c.Cache.Driver = CacheRedis
				c.Cache.Addr = "localhost:6379"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
