package cache

import (
	"context"
	"database/sql"
	"navigation-service/internal/domain"
	"navigation-service/internal/ports"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// Each connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, InitSchema(context.Background(), db))
	return db
}

func newTestRedis(t *testing.T) *redis.Client {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func geocodeCaches(t *testing.T) map[string]ports.GeocodeCache {
	return map[string]ports.GeocodeCache{
		"sqlite": NewSQLGeocodeCache(openTestDB(t), SQLite),
		"redis":  NewRedisGeocodeCache(newTestRedis(t), 0),
	}
}

func distanceCaches(t *testing.T) map[string]ports.DistanceCache {
	return map[string]ports.DistanceCache{
		"sqlite": NewSQLDistanceCache(openTestDB(t), SQLite),
		"redis":  NewRedisDistanceCache(newTestRedis(t), time.Hour),
	}
}

func TestGeocodeCacheRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, c := range geocodeCaches(t) {
		t.Run(name, func(t *testing.T) {
			la := domain.GeoCoordinate{Lat: 34.0522, Lon: -118.2437}
			require.NoError(t, c.PutMany(ctx, map[string]domain.GeoCoordinate{"los angeles": la}))

			got, err := c.GetMany(ctx, []string{"los angeles", " los angeles ", "paris", ""})
			require.NoError(t, err)
			assert.Equal(t, map[string]domain.GeoCoordinate{"los angeles": la}, got)

			moved := domain.GeoCoordinate{Lat: 1, Lon: 2}
			require.NoError(t, c.PutMany(ctx, map[string]domain.GeoCoordinate{"los angeles": moved}))
			got, err = c.GetMany(ctx, []string{"los angeles"})
			require.NoError(t, err)
			assert.Equal(t, moved, got["los angeles"])

			empty, err := c.GetMany(ctx, nil)
			require.NoError(t, err)
			assert.Empty(t, empty)

			assert.Error(t, c.PutMany(ctx, map[string]domain.GeoCoordinate{"  ": la}))
		})
	}
}

func TestDistanceCacheRoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, c := range distanceCaches(t) {
		t.Run(name, func(t *testing.T) {
			origin := domain.GeoCoordinate{Lat: 34.0522, Lon: -118.2437}.Key()
			dest := domain.GeoCoordinate{Lat: 40.7128, Lon: -74.006}.Key()

			require.NoError(t, c.PutMany(ctx, origin, map[string]ports.DistanceResult{
				dest: {DistanceMeters: 4489012.5, DurationSeconds: 147600},
			}))

			got, err := c.GetMany(ctx, origin, []string{dest, "0.000000,0.000000"})
			require.NoError(t, err)
			require.Len(t, got, 1)
			assert.InDelta(t, 4489012.5, got[dest].DistanceMeters, 1e-6)
			assert.Equal(t, 147600, got[dest].DurationSeconds)

			other, err := c.GetMany(ctx, dest, []string{origin})
			require.NoError(t, err)
			assert.Empty(t, other)

			_, err = c.GetMany(ctx, "", []string{dest})
			assert.Error(t, err)
			assert.Error(t, c.PutMany(ctx, "", map[string]ports.DistanceResult{dest: {}}))
		})
	}
}

func TestInitSchemaIsIdempotent(t *testing.T) {
	db := openTestDB(t)
	assert.NoError(t, InitSchema(context.Background(), db))
	assert.Error(t, InitSchema(context.Background(), nil))
}

func TestNilBackends(t *testing.T) {
	ctx := context.Background()

	_, err := (&SQLGeocodeCache{}).GetMany(ctx, []string{"a"})
	assert.Error(t, err)
	_, err = (&RedisGeocodeCache{}).GetMany(ctx, []string{"a"})
	assert.Error(t, err)
	_, err = (&SQLDistanceCache{}).GetMany(ctx, "o", []string{"a"})
	assert.Error(t, err)
	_, err = (&RedisDistanceCache{}).GetMany(ctx, "o", []string{"a"})
	assert.Error(t, err)
}

func TestSeedPlacesAndPlaceGeocoder(t *testing.T) {
	ctx := context.Background()
	c := NewSQLGeocodeCache(openTestDB(t), SQLite)

	path := filepath.Join(t.TempDir(), "places.json")
	seed := `[
		{"name": "Los Angeles", "lat": 34.0522, "lon": -118.2437},
		{"name": "KITSW  ECE   Block", "lat": 18.054431, "lon": 79.537703}
	]`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))

	n, err := SeedPlacesFromJSON(ctx, c, path)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	g := NewPlaceGeocoder(c)
	got, err := g.Geocode(ctx, "kitsw ece block")
	require.NoError(t, err)
	assert.Equal(t, domain.GeoCoordinate{Lat: 18.054431, Lon: 79.537703}, got)

	_, err = g.Geocode(ctx, "Atlantis")
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)

	_, err = g.Geocode(ctx, "   ")
	assert.Error(t, err)
}

func TestSeedPlacesRejectsBadInput(t *testing.T) {
	ctx := context.Background()
	c := NewRedisGeocodeCache(newTestRedis(t), 0)
	dir := t.TempDir()

	cases := map[string]string{
		"empty name":  `[{"name": " ", "lat": 0, "lon": 0}]`,
		"bad lat":     `[{"name": "x", "lat": 91, "lon": 0}]`,
		"broken json": `[{`,
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".json")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := SeedPlacesFromJSON(ctx, c, path)
			assert.Error(t, err)
		})
	}

	_, err := SeedPlacesFromJSON(ctx, c, filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestDialectInSet(t *testing.T) {
	cond, args := Postgres.inSet("address", 2, []string{"a", "b"})
	assert.Equal(t, "address = ANY($2::text[])", cond)
	assert.Equal(t, []any{[]string{"a", "b"}}, args)

	cond, args = SQLite.inSet("address", 2, []string{"a", "b"})
	assert.Equal(t, "address IN (?,?)", cond)
	assert.Equal(t, []any{"a", "b"}, args)
}

func TestDialectUpsert(t *testing.T) {
	assert.Equal(t,
		"INSERT INTO geocode_cache (address, lat, lon) VALUES ($1, $2, $3)"+
			" ON CONFLICT (address) DO UPDATE SET lat = excluded.lat, lon = excluded.lon",
		Postgres.upsert("geocode_cache", []string{"address"}, []string{"lat", "lon"}))

	assert.Equal(t,
		"INSERT INTO distance_cache (origin, destination, distance_meters) VALUES (?, ?, ?)"+
			" ON CONFLICT (origin, destination) DO UPDATE SET distance_meters = excluded.distance_meters",
		SQLite.upsert("distance_cache", []string{"origin", "destination"}, []string{"distance_meters"}))
}
