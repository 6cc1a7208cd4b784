package config

import (
	"errors"
	"fmt"
	"navigation-service/internal/domain"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

const (
	MethodGeodesic    = "geodesic"
	MethodGreatCircle = "greatcircle"
	MethodRoad        = "road"

	BackendNone     = "none"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
	BackendRedis    = "redis"
)

type Config struct {
	Port      string `yaml:"port"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`

	DistanceMethod string `yaml:"distance_method"`

	ORS      ORSConfig      `yaml:"ors"`
	Cache    CacheConfig    `yaml:"cache"`
	Location LocationConfig `yaml:"location"`

	OutputDir string `yaml:"output_dir"`
	SeedPath  string `yaml:"seed_path"`
}

type ORSConfig struct {
	APIKey  string `yaml:"api_key"`
	BaseURL string `yaml:"base_url"`
}

type CacheConfig struct {
	Backend     string        `yaml:"backend"`
	DBPath      string        `yaml:"db_path"`
	DatabaseURL string        `yaml:"database_url"`
	RedisAddr   string        `yaml:"redis_addr"`
	TTL         time.Duration `yaml:"ttl"`
}

// Current location. Address, when set, is geocoded and wins over Lat/Lon.
type LocationConfig struct {
	Lat     float64 `yaml:"lat"`
	Lon     float64 `yaml:"lon"`
	Address string  `yaml:"address"`
}

func Default() Config {
	return Config{
		Port:           "8080",
		LogLevel:       "info",
		LogFormat:      "console",
		DistanceMethod: MethodGeodesic,
		Cache: CacheConfig{
			Backend: BackendNone,
			DBPath:  "data/cache.db",
		},
		Location:  LocationConfig{Lat: 34.0522, Lon: -118.2437},
		OutputDir: ".",
		SeedPath:  "data/seeds/places.json",
	}
}

// Load builds the configuration: defaults, then the YAML file at path
// (CONFIG_PATH when path is empty; skipped when both are empty), then
// environment variables.
func Load(path string) (Config, error) {
	cfg := Default()

	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("load config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return Config{}, fmt.Errorf("load config: parse %q: %w", path, err)
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}

	return cfg, nil
}

// Get returns the environment value for key, or fallback when unset or empty.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func (c *Config) applyEnvOverrides() error {
	c.Port = Get("PORT", c.Port)
	c.LogLevel = Get("LOG_LEVEL", c.LogLevel)
	c.LogFormat = Get("LOG_FORMAT", c.LogFormat)
	c.DistanceMethod = strings.ToLower(Get("DISTANCE_METHOD", c.DistanceMethod))

	c.ORS.APIKey = Get("ORS_API_KEY", c.ORS.APIKey)
	c.ORS.BaseURL = Get("ORS_BASE_URL", c.ORS.BaseURL)

	c.Cache.Backend = strings.ToLower(Get("CACHE_BACKEND", c.Cache.Backend))
	c.Cache.DBPath = Get("DB_PATH", c.Cache.DBPath)
	c.Cache.DatabaseURL = Get("DATABASE_URL", c.Cache.DatabaseURL)
	c.Cache.RedisAddr = Get("REDIS_ADDR", c.Cache.RedisAddr)
	if v := Get("CACHE_TTL", ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("CACHE_TTL: %w", err)
		}
		c.Cache.TTL = d
	}

	if err := parseFloatEnv("CURRENT_LAT", &c.Location.Lat); err != nil {
		return err
	}
	if err := parseFloatEnv("CURRENT_LON", &c.Location.Lon); err != nil {
		return err
	}
	c.Location.Address = Get("CURRENT_ADDRESS", c.Location.Address)

	c.OutputDir = Get("OUTPUT_DIR", c.OutputDir)
	c.SeedPath = Get("SEED_PATH", c.SeedPath)

	return nil
}

func parseFloatEnv(key string, dst *float64) error {
	v := Get(key, "")
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = f
	return nil
}

// Validate reports the first inconsistent setting.
func (c Config) Validate() error {
	switch c.DistanceMethod {
	case MethodGeodesic, MethodGreatCircle:
	case MethodRoad:
		if c.ORS.APIKey == "" {
			return errors.New("distance method road requires ORS_API_KEY")
		}
	default:
		return fmt.Errorf("unknown distance method %q", c.DistanceMethod)
	}

	switch c.Cache.Backend {
	case BackendNone:
	case BackendSQLite:
		if c.Cache.DBPath == "" {
			return errors.New("cache backend sqlite requires DB_PATH")
		}
	case BackendPostgres:
		if c.Cache.DatabaseURL == "" {
			return errors.New("cache backend postgres requires DATABASE_URL")
		}
	case BackendRedis:
		if c.Cache.RedisAddr == "" {
			return errors.New("cache backend redis requires REDIS_ADDR")
		}
	default:
		return fmt.Errorf("unknown cache backend %q", c.Cache.Backend)
	}

	if c.Cache.TTL < 0 {
		return errors.New("cache ttl must not be negative")
	}

	if !(domain.GeoCoordinate{Lat: c.Location.Lat, Lon: c.Location.Lon}).InRange() {
		return fmt.Errorf("current location (%g, %g) out of range", c.Location.Lat, c.Location.Lon)
	}

	return nil
}
