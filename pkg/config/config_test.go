package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/soerensenkarl/DrawTruss/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "drawtruss.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Vectorize.SnapRadius != 10 {
		t.Errorf("SnapRadius = %v, want default 10", cfg.Vectorize.SnapRadius)
	}
	if cfg.Cache.Backend != "file" || cfg.Store.Backend != "memory" {
		t.Errorf("unexpected default backends: cache=%q store=%q", cfg.Cache.Backend, cfg.Store.Backend)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("Server.Addr = %q, want :8080", cfg.Server.Addr)
	}
}

func TestLoadMergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[vectorize]
snap_radius = 6.5

[render]
style = "handdrawn"
labels = true
seed = 7

[cache]
backend = "redis"
redis_addr = "cache.internal:6379"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Vectorize.SnapRadius != 6.5 {
		t.Errorf("SnapRadius = %v, want 6.5", cfg.Vectorize.SnapRadius)
	}
	if cfg.Render.Style != "handdrawn" || !cfg.Render.Labels || cfg.Render.Seed != 7 {
		t.Errorf("render section not applied: %+v", cfg.Render)
	}
	if cfg.Cache.Backend != "redis" || cfg.Cache.RedisAddr != "cache.internal:6379" {
		t.Errorf("cache section not applied: %+v", cfg.Cache)
	}
	// Untouched sections keep their defaults.
	if cfg.Store.Backend != "memory" {
		t.Errorf("Store.Backend = %q, want default memory", cfg.Store.Backend)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.Code
	}{
		{"malformed toml", `[vectorize`, errors.ErrCodeInvalidInput},
		{"negative snap radius", "[vectorize]\nsnap_radius = -1\n", errors.ErrCodeInvalidSnapRadius},
		{"unknown style", "[render]\nstyle = \"neon\"\n", errors.ErrCodeInvalidStyle},
		{"unknown cache backend", "[cache]\nbackend = \"memcached\"\n", errors.ErrCodeInvalidInput},
		{"unknown store backend", "[store]\nbackend = \"sqlite\"\n", errors.ErrCodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.GetCode(err); got != tt.code {
				t.Errorf("code = %v, want %v", got, tt.code)
			}
		})
	}
}

func TestValidateDefault(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}
}
