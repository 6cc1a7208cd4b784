package cache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"navigation-service/internal/platform/obs"
	"navigation-service/internal/ports"
	"strings"
)

// SQLDistanceCache stores road distances in the distance_cache table.
// Keys are GeoCoordinate.Key values produced by the caller.
type SQLDistanceCache struct {
	DB      *sql.DB
	Dialect Dialect
}

func NewSQLDistanceCache(db *sql.DB, dialect Dialect) *SQLDistanceCache {
	return &SQLDistanceCache{DB: db, Dialect: dialect}
}

func (s *SQLDistanceCache) GetMany(
	ctx context.Context,
	origin string,
	destinations []string,
) (_ map[string]ports.DistanceResult, err error) {
	defer obs.Time(ctx, "distance.cache.GetMany")(&err)

	if s.DB == nil {
		return nil, errors.New("get distance cache: db is nil")
	}
	if origin == "" {
		return nil, errors.New("get distance cache: origin must not be empty")
	}

	keys := uniqueKeys(destinations)
	if len(keys) == 0 {
		return map[string]ports.DistanceResult{}, nil
	}

	cond, condArgs := s.Dialect.inSet("destination", 2, keys)
	q := "SELECT destination, distance_meters, duration_seconds FROM distance_cache" +
		" WHERE origin = " + s.Dialect.placeholder(1) + " AND " + cond

	rows, err := s.DB.QueryContext(ctx, q, append([]any{origin}, condArgs...)...)
	if err != nil {
		return nil, fmt.Errorf("get distance cache: %w", err)
	}
	defer rows.Close()

	out := make(map[string]ports.DistanceResult, len(keys))
	for rows.Next() {
		var dest string
		var r ports.DistanceResult
		if err := rows.Scan(&dest, &r.DistanceMeters, &r.DurationSeconds); err != nil {
			return nil, fmt.Errorf("get distance cache: scan: %w", err)
		}
		out[dest] = r
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("get distance cache: %w", err)
	}

	return out, nil
}

func (s *SQLDistanceCache) PutMany(
	ctx context.Context,
	origin string,
	results map[string]ports.DistanceResult,
) (err error) {
	defer obs.Time(ctx, "distance.cache.PutMany")(&err)

	if s.DB == nil {
		return errors.New("put distance cache: db is nil")
	}
	if origin == "" {
		return errors.New("put distance cache: origin must not be empty")
	}

	rows := make([][]any, 0, len(results))
	for dest, r := range results {
		if strings.TrimSpace(dest) == "" {
			return errors.New("put distance cache: empty destination key")
		}
		rows = append(rows, []any{origin, dest, r.DistanceMeters, r.DurationSeconds})
	}
	if len(rows) == 0 {
		return nil
	}

	q := s.Dialect.upsert("distance_cache",
		[]string{"origin", "destination"},
		[]string{"distance_meters", "duration_seconds"})
	if err := execBatch(ctx, s.DB, q, rows); err != nil {
		return fmt.Errorf("put distance cache: %w", err)
	}
	return nil
}
