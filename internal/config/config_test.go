package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv blanks every variable Load reads so the host environment
// cannot leak into a test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"CONFIG_PATH", "PORT", "LOG_LEVEL", "LOG_FORMAT", "DISTANCE_METHOD",
		"ORS_API_KEY", "ORS_BASE_URL", "CACHE_BACKEND", "DB_PATH", "DATABASE_URL",
		"REDIS_ADDR", "CACHE_TTL", "CURRENT_LAT", "CURRENT_LON", "CURRENT_ADDRESS",
		"OUTPUT_DIR", "SEED_PATH",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, MethodGeodesic, cfg.DistanceMethod)
	assert.Equal(t, 34.0522, cfg.Location.Lat)
	assert.Equal(t, -118.2437, cfg.Location.Lon)
}

func TestLoadYAMLThenEnv(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "nav.yaml")
	yml := `
port: "9090"
distance_method: greatcircle
cache:
  backend: redis
  redis_addr: localhost:6379
  ttl: 24h
location:
  lat: 18.054431
  lon: 79.537703
`
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	t.Run("yaml only", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.Port)
		assert.Equal(t, MethodGreatCircle, cfg.DistanceMethod)
		assert.Equal(t, BackendRedis, cfg.Cache.Backend)
		assert.Equal(t, 24*time.Hour, cfg.Cache.TTL)
		assert.Equal(t, 18.054431, cfg.Location.Lat)
		assert.Equal(t, "info", cfg.LogLevel)
	})

	t.Run("env overrides yaml", func(t *testing.T) {
		t.Setenv("CONFIG_PATH", path)
		t.Setenv("PORT", "7070")
		t.Setenv("DISTANCE_METHOD", "GEODESIC")
		t.Setenv("CURRENT_LON", "80.5")
		t.Setenv("CACHE_TTL", "90m")

		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "7070", cfg.Port)
		assert.Equal(t, MethodGeodesic, cfg.DistanceMethod)
		assert.Equal(t, 80.5, cfg.Location.Lon)
		assert.Equal(t, 90*time.Minute, cfg.Cache.TTL)
	})
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "road without key", env: map[string]string{"DISTANCE_METHOD": "road"}},
		{name: "unknown method", env: map[string]string{"DISTANCE_METHOD": "teleport"}},
		{name: "unknown backend", env: map[string]string{"CACHE_BACKEND": "mongo"}},
		{name: "postgres without url", env: map[string]string{"CACHE_BACKEND": "postgres"}},
		{name: "redis without addr", env: map[string]string{"CACHE_BACKEND": "redis"}},
		{name: "bad latitude", env: map[string]string{"CURRENT_LAT": "north"}},
		{name: "latitude out of range", env: map[string]string{"CURRENT_LAT": "95"}},
		{name: "latitude NaN", env: map[string]string{"CURRENT_LAT": "NaN"}},
		{name: "longitude NaN", env: map[string]string{"CURRENT_LON": "NaN"}},
		{name: "bad ttl", env: map[string]string{"CACHE_TTL": "forever"}},
		{name: "missing file", env: map[string]string{"CONFIG_PATH": "/does/not/exist.yaml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}

func TestLoadRoadWithKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("DISTANCE_METHOD", "road")
	t.Setenv("ORS_API_KEY", "key")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, MethodRoad, cfg.DistanceMethod)
	assert.Equal(t, "key", cfg.ORS.APIKey)
}

func TestGet(t *testing.T) {
	t.Setenv("NAV_TEST_KEY", "  ")
	assert.Equal(t, "fallback", Get("NAV_TEST_KEY", "fallback"))

	t.Setenv("NAV_TEST_KEY", "value")
	assert.Equal(t, "value", Get("NAV_TEST_KEY", "fallback"))
}
