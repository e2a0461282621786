package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("ENVIRONMENT", "docker")
	t.Setenv("KV_DRIVER", "")
	t.Setenv("STATS_CACHE_TTL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DriverMemory, cfg.KV.Driver)
	assert.Equal(t, "8080", cfg.API.Port)
	assert.Equal(t, time.Duration(0), cfg.API.StatsCacheTTL)
	assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
	assert.False(t, cfg.BucketEnabled())
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknowndriver", env: map[string]string{"KV_DRIVER": "etcd"}},
		{name: "postgreswithoutdsn", env: map[string]string{"KV_DRIVER": DriverPostgres, "DATABASE_DSN": ""}},
		{name: "badduration", env: map[string]string{"STATS_CACHE_TTL": "soon"}},
		{name: "negativeduration", env: map[string]string{"STATS_CACHE_TTL": "-1s"}},
		{name: "badport", env: map[string]string{"API_PORT": "http"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("ENVIRONMENT", "docker")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load()
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoadLayered(t *testing.T) {
	t.Setenv("ENVIRONMENT", "docker")
	t.Setenv("KV_DRIVER", DriverLayered)
	t.Setenv("DATABASE_DSN", "host=localhost")
	t.Setenv("STATS_CACHE_TTL", "30s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, DriverLayered, cfg.KV.Driver)
	assert.Equal(t, 30*time.Second, cfg.API.StatsCacheTTL)
}

func TestRequireSharedStore(t *testing.T) {
	tests := []struct {
		driver  string
		wantErr bool
	}{
		{driver: DriverMemory, wantErr: true},
		{driver: DriverPostgres},
		{driver: DriverRedis},
		{driver: DriverLayered},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			cfg := &Config{KV: KVConfiguration{Driver: tt.driver}}
			err := cfg.RequireSharedStore()
			if tt.wantErr {
				assert.ErrorContains(t, err, DriverMemory)
				return
			}
			assert.NoError(t, err)
		})
	}
}
