package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/db"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"github.com/yigit/jobsearch/internal/pkg/logger"
)

// psql builds PostgreSQL statements with $n placeholders
var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// LocationRepository reads locations. Locations are written only as a side
// effect of job writes, see upsertLocations.
type LocationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewLocationRepository creates a new LocationRepository
func NewLocationRepository(db *pgxpool.Pool) *LocationRepository {
	return &LocationRepository{db: db, sb: psql}
}

// GetByID retrieves a location by ID
func (r *LocationRepository) GetByID(ctx context.Context, id int64) (*models.Location, error) {
	loc := &models.Location{}
	err := r.db.QueryRow(ctx, `SELECT id, name FROM locations WHERE id = $1`, id).Scan(&loc.ID, &loc.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Location not found.")
		}
		return nil, fmt.Errorf("error retrieving location: %w", err)
	}
	return loc, nil
}

// List returns one page of locations ordered by ID and the total count.
func (r *LocationRepository) List(ctx context.Context, page models.Page) ([]*models.Location, int64, error) {
	// Get total count
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM locations`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting locations: %w", err)
	}

	// Get page
	sql, args, err := r.sb.Select("id", "name").
		From("locations").
		OrderBy("id").
		Offset(page.Offset).
		Limit(uint64(page.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list locations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list locations query")
		return nil, 0, fmt.Errorf("error listing locations: %w", err)
	}
	defer rows.Close()

	locations := []*models.Location{}
	for rows.Next() {
		l := &models.Location{}
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, 0, fmt.Errorf("error scanning location row: %w", err)
		}
		locations = append(locations, l)
	}
	return locations, total, rows.Err()
}

// uniqueNames drops duplicates while keeping first-seen order.
func uniqueNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, n)
	}
	return out
}

// upsertLocations creates the missing names and returns a location for every
// distinct name, in the order given.
func upsertLocations(ctx context.Context, q db.Querier, names []string) ([]models.Location, error) {
	names = uniqueNames(names)
	if len(names) == 0 {
		return []models.Location{}, nil
	}

	// Insert the missing names in one statement
	insert := psql.Insert("locations").Columns("name").Suffix("ON CONFLICT (name) DO NOTHING")
	for _, n := range names {
		insert = insert.Values(n)
	}
	sql, args, err := insert.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build upsert locations query: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return nil, fmt.Errorf("error creating locations: %w", err)
	}

	// Read back new and existing rows alike
	sql, args, err = psql.Select("id", "name").From("locations").Where(squirrel.Eq{"name": names}).ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build select locations query: %w", err)
	}
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("error loading locations: %w", err)
	}
	defer rows.Close()

	byName := make(map[string]models.Location, len(names))
	for rows.Next() {
		var l models.Location
		if err := rows.Scan(&l.ID, &l.Name); err != nil {
			return nil, fmt.Errorf("error scanning location row: %w", err)
		}
		byName[l.Name] = l
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Restore the caller's order
	locations := make([]models.Location, 0, len(names))
	for _, n := range names {
		l, ok := byName[n]
		if !ok {
			return nil, fmt.Errorf("location %q missing after upsert", n)
		}
		locations = append(locations, l)
	}
	return locations, nil
}
