// Package config loads DrawTruss configuration from TOML files.
//
// Configuration is optional: every field has a sensible default, and a
// missing file simply yields [Default]. The CLI looks for a config file
// at the path given by --config, falling back to drawtruss.toml in the
// working directory.
package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/soerensenkarl/DrawTruss/pkg/errors"
)

// Config holds all tunable settings.
type Config struct {
	Vectorize VectorizeConfig `toml:"vectorize"`
	Render    RenderConfig    `toml:"render"`
	Cache     CacheConfig     `toml:"cache"`
	Store     StoreConfig     `toml:"store"`
	Server    ServerConfig    `toml:"server"`
}

// VectorizeConfig controls the sketch-to-graph conversion.
type VectorizeConfig struct {
	// SnapRadius is the endpoint clustering distance in sketch units.
	SnapRadius float64 `toml:"snap_radius"`
	// Epsilon is the polyline simplification tolerance. Zero means
	// derive it from SnapRadius.
	Epsilon float64 `toml:"epsilon"`
}

// RenderConfig controls default artifact rendering.
type RenderConfig struct {
	Style  string `toml:"style"`
	Labels bool   `toml:"labels"`
	Seed   uint64 `toml:"seed"`
}

// CacheConfig selects and configures the pipeline cache backend.
type CacheConfig struct {
	// Backend is "file", "redis", or "none".
	Backend string `toml:"backend"`
	// Dir overrides the file cache directory (file backend only).
	Dir string `toml:"dir"`
	// RedisAddr is the host:port of the Redis server (redis backend only).
	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`
}

// StoreConfig selects and configures graph persistence.
type StoreConfig struct {
	// Backend is "memory" or "mongo".
	Backend       string `toml:"backend"`
	MongoURI      string `toml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database"`
}

// ServerConfig configures the HTTP API server.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Vectorize: VectorizeConfig{SnapRadius: 10},
		Render:    RenderConfig{Style: "simple"},
		Cache:     CacheConfig{Backend: "file", RedisAddr: "localhost:6379"},
		Store:     StoreConfig{Backend: "memory", MongoURI: "mongodb://localhost:27017", MongoDatabase: "drawtruss"},
		Server:    ServerConfig{Addr: ":8080"},
	}
}

// Load reads a TOML config file and merges it over [Default]. A missing
// file is not an error; a malformed or invalid one is.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "read config")
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate checks field values that the TOML decoder cannot.
func (c Config) Validate() error {
	if err := errors.ValidateSketchParams(c.Vectorize.SnapRadius, c.Vectorize.Epsilon); err != nil {
		return err
	}
	switch c.Render.Style {
	case "", "simple", "handdrawn":
	default:
		return errors.New(errors.ErrCodeInvalidStyle, "unknown render style: %s", c.Render.Style)
	}
	switch c.Cache.Backend {
	case "", "file", "redis", "none":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown cache backend: %s", c.Cache.Backend)
	}
	switch c.Store.Backend {
	case "", "memory", "mongo":
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unknown store backend: %s", c.Store.Backend)
	}
	return nil
}
