package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"navigation-service/internal/adapters/cache"
	"navigation-service/internal/adapters/distance"
	"navigation-service/internal/adapters/location"
	"navigation-service/internal/config"
	"navigation-service/internal/domain"
	"navigation-service/internal/platform/db"
	"navigation-service/internal/platform/obs"
	"navigation-service/internal/ports"
	"navigation-service/internal/services"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Providers holds the concrete adapters behind the navigation ports.
// Close releases any database or Redis connections they share.
type Providers struct {
	Locations ports.LocationProvider
	Distances ports.DistanceProvider
	// Geocoder is nil when neither ORS nor a cache backend is configured.
	Geocoder ports.Geocoder

	GeocodeCache  ports.GeocodeCache
	DistanceCache ports.DistanceCache

	closers []func() error
}

// Build wires adapters from configuration. cfg is expected to be validated.
func Build(ctx context.Context, cfg config.Config) (_ *Providers, err error) {
	p := &Providers{}
	defer func() {
		if err != nil {
			_ = p.Close()
		}
	}()

	if err := p.openCaches(ctx, cfg.Cache); err != nil {
		return nil, fmt.Errorf("build providers: %w", err)
	}

	var ors *distance.ORSDistanceProvider
	if cfg.ORS.APIKey != "" {
		ors, err = distance.NewORSDistanceProvider(cfg.ORS.APIKey, cfg.ORS.BaseURL, p.DistanceCache, p.GeocodeCache)
		if err != nil {
			return nil, fmt.Errorf("build providers: %w", err)
		}
		p.Geocoder = ors
	} else if p.GeocodeCache != nil {
		p.Geocoder = cache.NewPlaceGeocoder(p.GeocodeCache)
	}

	switch cfg.DistanceMethod {
	case config.MethodRoad:
		if ors == nil {
			return nil, errors.New("build providers: road distance requires an ORS api key")
		}
		p.Distances = ors
	case config.MethodGreatCircle:
		p.Distances = distance.NewGreatCircleDistanceProvider()
	default:
		p.Distances = distance.NewGeodesicDistanceProvider()
	}

	if addr := cfg.Location.Address; addr != "" {
		if p.Geocoder == nil {
			return nil, fmt.Errorf("build providers: current address %q needs ORS or a cache backend", addr)
		}
		loc, err := location.NewGeocodedLocationProvider(addr, p.Geocoder)
		if err != nil {
			return nil, fmt.Errorf("build providers: %w", err)
		}
		p.Locations = loc
	} else {
		p.Locations = location.NewStaticLocationProvider(domain.GeoCoordinate{
			Lat: cfg.Location.Lat,
			Lon: cfg.Location.Lon,
		})
	}

	obs.L().Info("providers ready",
		zap.String("distance_method", cfg.DistanceMethod),
		zap.String("cache_backend", cfg.Cache.Backend),
		zap.Bool("geocoder", p.Geocoder != nil),
	)

	return p, nil
}

func (p *Providers) openCaches(ctx context.Context, cfg config.CacheConfig) error {
	switch cfg.Backend {
	case config.BackendSQLite:
		conn, err := db.OpenSQLite(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		return p.useSQL(ctx, conn, cache.SQLite)

	case config.BackendPostgres:
		conn, err := db.OpenPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		return p.useSQL(ctx, conn, cache.Postgres)

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		p.closers = append(p.closers, client.Close)
		if err := client.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("open redis %q: %w", cfg.RedisAddr, err)
		}
		p.GeocodeCache = cache.NewRedisGeocodeCache(client, cfg.TTL)
		p.DistanceCache = cache.NewRedisDistanceCache(client, cfg.TTL)
	}

	return nil
}

func (p *Providers) useSQL(ctx context.Context, conn *sql.DB, dialect cache.Dialect) error {
	p.closers = append(p.closers, conn.Close)
	if err := cache.InitSchema(ctx, conn); err != nil {
		return err
	}
	p.GeocodeCache = cache.NewSQLGeocodeCache(conn, dialect)
	p.DistanceCache = cache.NewSQLDistanceCache(conn, dialect)
	return nil
}

// SeedPlaces loads named places into the geocode cache.
func (p *Providers) SeedPlaces(ctx context.Context, path string) (int, error) {
	if p.GeocodeCache == nil {
		return 0, errors.New("seed places: no cache backend configured")
	}
	return cache.SeedPlacesFromJSON(ctx, p.GeocodeCache, path)
}

func (p *Providers) Navigator() *services.Navigator {
	return services.NewNavigator(p.Locations, p.Distances, p.Geocoder)
}

func (p *Providers) Close() error {
	var errs []error
	for i := len(p.closers) - 1; i >= 0; i-- {
		if err := p.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	p.closers = nil
	return errors.Join(errs...)
}
