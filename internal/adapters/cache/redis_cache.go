package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"navigation-service/internal/domain"
	"navigation-service/internal/platform/obs"
	"navigation-service/internal/ports"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	geocodeKeyPrefix  = "nav:geocode:"
	distanceKeyPrefix = "nav:distance:"
)

type redisCoord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type redisDistance struct {
	Meters  float64 `json:"meters"`
	Seconds int     `json:"seconds"`
}

// RedisGeocodeCache stores address -> coordinate entries as JSON strings.
// A zero TTL keeps entries forever.
type RedisGeocodeCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisGeocodeCache(client *redis.Client, ttl time.Duration) *RedisGeocodeCache {
	return &RedisGeocodeCache{Client: client, TTL: ttl}
}

func (r *RedisGeocodeCache) GetMany(ctx context.Context, addresses []string) (_ map[string]domain.GeoCoordinate, err error) {
	defer obs.Time(ctx, "geocode.redis.GetMany")(&err)

	if r.Client == nil {
		return nil, errors.New("geocode cache: redis client is nil")
	}

	uniq := uniqueKeys(addresses)
	if len(uniq) == 0 {
		return map[string]domain.GeoCoordinate{}, nil
	}

	keys := make([]string, 0, len(uniq))
	for _, a := range uniq {
		keys = append(keys, geocodeKeyPrefix+a)
	}

	vals, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: mget: %w", err)
	}

	out := make(map[string]domain.GeoCoordinate, len(uniq))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var c redisCoord
		if err := json.Unmarshal([]byte(s), &c); err != nil {
			return nil, fmt.Errorf("get geocode cache: decode %q: %w", uniq[i], err)
		}
		out[uniq[i]] = domain.GeoCoordinate{Lat: c.Lat, Lon: c.Lon}
	}

	return out, nil
}

func (r *RedisGeocodeCache) PutMany(ctx context.Context, results map[string]domain.GeoCoordinate) (err error) {
	defer obs.Time(ctx, "geocode.redis.PutMany")(&err)

	if r.Client == nil {
		return errors.New("geocode cache: redis client is nil")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := r.Client.TxPipeline()
	for addr, c := range results {
		if strings.TrimSpace(addr) == "" {
			return fmt.Errorf("insert geocode cache: empty address key")
		}
		b, err := json.Marshal(redisCoord{Lat: c.Lat, Lon: c.Lon})
		if err != nil {
			return fmt.Errorf("insert geocode cache: encode %q: %w", addr, err)
		}
		pipe.Set(ctx, geocodeKeyPrefix+addr, b, r.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert geocode cache: exec pipeline: %w", err)
	}
	return nil
}

// RedisDistanceCache stores one JSON entry per origin/destination pair.
type RedisDistanceCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDistanceCache(client *redis.Client, ttl time.Duration) *RedisDistanceCache {
	return &RedisDistanceCache{Client: client, TTL: ttl}
}

func distanceKey(origin, destination string) string {
	return distanceKeyPrefix + origin + "|" + destination
}

func (r *RedisDistanceCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "distance.redis.GetMany")(&err)

	if r.Client == nil {
		return nil, errors.New("distance cache: redis client is nil")
	}

	if origin == "" {
		return nil, errors.New("get distance cache: origin must not be empty")
	}

	uniq := uniqueKeys(destinations)
	if len(uniq) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	keys := make([]string, 0, len(uniq))
	for _, d := range uniq {
		keys = append(keys, distanceKey(origin, d))
	}

	vals, err := r.Client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("get distance cache: mget: %w", err)
	}

	out := make(map[string]ports.DistanceResult, len(uniq))
	for i, v := range vals {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var d redisDistance
		if err := json.Unmarshal([]byte(s), &d); err != nil {
			return nil, fmt.Errorf("get distance cache: decode %q: %w", uniq[i], err)
		}
		out[uniq[i]] = ports.DistanceResult{DistanceMeters: d.Meters, DurationSeconds: d.Seconds}
	}

	return out, nil
}

func (r *RedisDistanceCache) PutMany(
	ctx context.Context,
	origin string,
	results map[string]ports.DistanceResult,
) (err error) {
	defer obs.Time(ctx, "distance.redis.PutMany")(&err)

	if r.Client == nil {
		return errors.New("distance cache: redis client is nil")
	}

	if origin == "" {
		return errors.New("insert distance cache: origin must not be empty")
	}

	if len(results) == 0 {
		return nil
	}

	pipe := r.Client.TxPipeline()
	for dest, res := range results {
		if strings.TrimSpace(dest) == "" {
			return fmt.Errorf("insert distance cache: empty destination key")
		}
		b, err := json.Marshal(redisDistance{Meters: res.DistanceMeters, Seconds: res.DurationSeconds})
		if err != nil {
			return fmt.Errorf("insert distance cache: encode %q: %w", dest, err)
		}
		pipe.Set(ctx, distanceKey(origin, dest), b, r.TTL)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("insert distance cache: exec pipeline: %w", err)
	}
	return nil
}
