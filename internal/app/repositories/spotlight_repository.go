package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"github.com/yigit/jobsearch/internal/pkg/logger"
)

// SpotlightRepository handles spotlight database operations
type SpotlightRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewSpotlightRepository creates a new SpotlightRepository
func NewSpotlightRepository(db *pgxpool.Pool) *SpotlightRepository {
	return &SpotlightRepository{db: db, sb: psql}
}

// Create inserts a spotlight and sets its ID.
func (r *SpotlightRepository) Create(ctx context.Context, s *models.Spotlight) error {
	sql, args, err := r.sb.Insert("spotlights").
		Columns("title", "img", "description").
		Values(s.Title, s.Img, s.Description).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create spotlight SQL")
		return fmt.Errorf("failed to build create spotlight query: %w", err)
	}

	if err = r.db.QueryRow(ctx, sql, args...).Scan(&s.ID); err != nil {
		logger.Error().Err(err).Msg("Error executing create spotlight query")
		return fmt.Errorf("error creating spotlight: %w", err)
	}
	return nil
}

// GetByID retrieves a spotlight by ID
func (r *SpotlightRepository) GetByID(ctx context.Context, id int64) (*models.Spotlight, error) {
	s := &models.Spotlight{}
	err := r.db.QueryRow(ctx, `SELECT id, title, img, description FROM spotlights WHERE id = $1`, id).
		Scan(&s.ID, &s.Title, &s.Img, &s.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Spotlight not found.")
		}
		return nil, fmt.Errorf("error retrieving spotlight: %w", err)
	}
	return s, nil
}

// List returns one page of spotlights ordered by ID and the total count.
func (r *SpotlightRepository) List(ctx context.Context, page models.Page) ([]*models.Spotlight, int64, error) {
	// Get total count
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM spotlights`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting spotlights: %w", err)
	}

	// Get page
	sql, args, err := r.sb.Select("id", "title", "img", "description").
		From("spotlights").
		OrderBy("id").
		Offset(page.Offset).
		Limit(uint64(page.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list spotlights query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list spotlights query")
		return nil, 0, fmt.Errorf("error listing spotlights: %w", err)
	}
	defer rows.Close()

	spotlights := []*models.Spotlight{}
	for rows.Next() {
		s := &models.Spotlight{}
		if err := rows.Scan(&s.ID, &s.Title, &s.Img, &s.Description); err != nil {
			return nil, 0, fmt.Errorf("error scanning spotlight row: %w", err)
		}
		spotlights = append(spotlights, s)
	}
	return spotlights, total, rows.Err()
}

// Update overwrites every column of the spotlight.
func (r *SpotlightRepository) Update(ctx context.Context, s *models.Spotlight) error {
	sql, args, err := r.sb.Update("spotlights").
		Set("title", s.Title).
		Set("img", s.Img).
		Set("description", s.Description).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build update spotlight query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("spotlightID", s.ID).Msg("Error executing update spotlight query")
		return fmt.Errorf("error updating spotlight: %w", err)
	}
	// Check if spotlight exists
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Spotlight not found.")
	}
	return nil
}

// Delete removes a spotlight.
func (r *SpotlightRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM spotlights WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting spotlight: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Spotlight not found.")
	}
	return nil
}

// GetOrCreate finds a spotlight with identical content or inserts it.
func (r *SpotlightRepository) GetOrCreate(ctx context.Context, s *models.Spotlight) (bool, error) {
	err := r.db.QueryRow(ctx, `
		SELECT id FROM spotlights WHERE title = $1 AND img = $2 AND description = $3 LIMIT 1`,
		s.Title, s.Img, s.Description).Scan(&s.ID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("error looking up spotlight: %w", err)
	}
	return true, r.Create(ctx, s)
}
