package app

import (
	"context"
	"navigation-service/internal/adapters/cache"
	"navigation-service/internal/adapters/distance"
	"navigation-service/internal/adapters/location"
	"navigation-service/internal/config"
	"navigation-service/internal/domain"
	"navigation-service/internal/services"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSeed(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places.json")
	seed := `[{"name": "KITSW  ECE Block", "lat": 18.054431, "lon": 79.537703}]`
	require.NoError(t, os.WriteFile(path, []byte(seed), 0o644))
	return path
}

func TestBuildDefaults(t *testing.T) {
	p, err := Build(context.Background(), config.Default())
	require.NoError(t, err)
	defer p.Close()

	assert.IsType(t, &distance.GeodesicDistanceProvider{}, p.Distances)
	assert.IsType(t, &location.StaticLocationProvider{}, p.Locations)
	assert.Nil(t, p.Geocoder)
	assert.Nil(t, p.GeocodeCache)

	_, err = p.SeedPlaces(context.Background(), writeSeed(t))
	assert.Error(t, err)
}

func TestBuildGreatCircle(t *testing.T) {
	cfg := config.Default()
	cfg.DistanceMethod = config.MethodGreatCircle

	p, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer p.Close()

	assert.IsType(t, &distance.GreatCircleDistanceProvider{}, p.Distances)
}

func TestBuildRoadUsesORS(t *testing.T) {
	cfg := config.Default()
	cfg.DistanceMethod = config.MethodRoad
	cfg.ORS.APIKey = "key"

	p, err := Build(context.Background(), cfg)
	require.NoError(t, err)
	defer p.Close()

	assert.IsType(t, &distance.ORSDistanceProvider{}, p.Distances)
	assert.Same(t, p.Distances, p.Geocoder)
}

func TestBuildRoadWithoutKey(t *testing.T) {
	cfg := config.Default()
	cfg.DistanceMethod = config.MethodRoad

	_, err := Build(context.Background(), cfg)
	assert.Error(t, err)
}

func TestBuildAddressWithoutGeocoder(t *testing.T) {
	cfg := config.Default()
	cfg.Location.Address = "Los Angeles"

	_, err := Build(context.Background(), cfg)
	assert.Error(t, err)
}

func TestBuildSQLiteSeedAndNavigate(t *testing.T) {
	ctx := context.Background()

	cfg := config.Default()
	cfg.Cache.Backend = config.BackendSQLite
	cfg.Cache.DBPath = filepath.Join(t.TempDir(), "cache.db")

	p, err := Build(ctx, cfg)
	require.NoError(t, err)
	defer p.Close()

	require.IsType(t, &cache.PlaceGeocoder{}, p.Geocoder)

	n, err := p.SeedPlaces(ctx, writeSeed(t))
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	res, err := p.Navigator().Navigate(ctx, services.NavigateRequest{
		Angle1Deg:   45,
		Angle2Deg:   30,
		TargetPlace: "kitsw ece block",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.GeoCoordinate{Lat: 18.054431, Lon: 79.537703}, res.Target)
	assert.Equal(t, distance.MethodGeodesic, res.DistanceMethod)
	assert.InDelta(t, 13939754.38, res.DistanceMeters, 1)
}

func TestBuildRedisGeocodedLocation(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)

	cfg := config.Default()
	cfg.Cache.Backend = config.BackendRedis
	cfg.Cache.RedisAddr = mr.Addr()
	cfg.Location.Address = "KITSW ECE block"

	p, err := Build(ctx, cfg)
	require.NoError(t, err)
	defer p.Close()

	assert.IsType(t, &location.GeocodedLocationProvider{}, p.Locations)

	_, err = p.Locations.ProvideLocation(ctx)
	assert.ErrorIs(t, err, domain.ErrPlaceNotFound)

	_, err = p.SeedPlaces(ctx, writeSeed(t))
	require.NoError(t, err)

	got, err := p.Locations.ProvideLocation(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.GeoCoordinate{Lat: 18.054431, Lon: 79.537703}, got)
}

func TestBuildRedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	cfg := config.Default()
	cfg.Cache.Backend = config.BackendRedis
	cfg.Cache.RedisAddr = addr

	_, err := Build(context.Background(), cfg)
	assert.Error(t, err)
}
