package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"navigation-service/internal/domain"
	"navigation-service/internal/platform/obs"
	"strings"
)

// SQLGeocodeCache stores normalized address -> coordinate rows in geocode_cache.
type SQLGeocodeCache struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLGeocodeCache(db *sql.DB, dialect Dialect) *SQLGeocodeCache {
	return &SQLGeocodeCache{DB: db, Dialect: dialect}
}

func (s *SQLGeocodeCache) GetMany(
	ctx context.Context,
	addresses []string,
) (_ map[string]domain.GeoCoordinate, err error) {
	defer obs.Time(ctx, "geocode.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("get geocode cache: db is nil")
	}

	keys := uniqueKeys(addresses)
	if len(keys) == 0 {
		return map[string]domain.GeoCoordinate{}, nil
	}

	cond, args := s.Dialect.inSet("address", 1, keys)
	rows, err := s.DB.QueryContext(ctx, "SELECT address, lat, lon FROM geocode_cache WHERE "+cond, args...)
	if err != nil {
		return nil, fmt.Errorf("get geocode cache: %w", err)
	}
	defer rows.Close()

	out := make(map[string]domain.GeoCoordinate, len(keys))
	for rows.Next() {
		var addr string
		var c domain.GeoCoordinate
		if err := rows.Scan(&addr, &c.Lat, &c.Lon); err != nil {
			return nil, fmt.Errorf("get geocode cache: scan: %w", err)
		}
		out[addr] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get geocode cache: %w", err)
	}

	return out, nil
}

func (s *SQLGeocodeCache) PutMany(ctx context.Context, results map[string]domain.GeoCoordinate) (err error) {
	defer obs.Time(ctx, "geocode.cache.PutMany")(&err)

	if s.DB == nil {
		return errors.New("put geocode cache: db is nil")
	}

	rows := make([][]any, 0, len(results))
	for addr, c := range results {
		if strings.TrimSpace(addr) == "" {
			return errors.New("put geocode cache: empty address key")
		}
		rows = append(rows, []any{addr, c.Lat, c.Lon})
	}
	if len(rows) == 0 {
		return nil
	}

	q := s.Dialect.upsert("geocode_cache", []string{"address"}, []string{"lat", "lon"})
	if err := execBatch(ctx, s.DB, q, rows); err != nil {
		return fmt.Errorf("put geocode cache: %w", err)
	}
	return nil
}
