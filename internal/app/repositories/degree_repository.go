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
	"github.com/yigit/jobsearch/internal/pkg/dberrors"
	"github.com/yigit/jobsearch/internal/pkg/logger"
)

const duplicateDegreeMessage = "degree with this name already exists."

// DegreeRepository handles degree database operations
type DegreeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewDegreeRepository creates a new DegreeRepository
func NewDegreeRepository(db *pgxpool.Pool) *DegreeRepository {
	return &DegreeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts a degree and sets its ID.
func (r *DegreeRepository) Create(ctx context.Context, degree *models.Degree) error {
	// Build query
	sql, args, err := r.sb.Insert("degrees").
		Columns("name").
		Values(degree.Name).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create degree SQL")
		return fmt.Errorf("failed to build create degree query: %w", err)
	}

	if err = r.db.QueryRow(ctx, sql, args...).Scan(&degree.ID); err != nil {
		// Duplicate names are reported on the offending column
		if dberrors.IsUniqueViolation(err) {
			return dberrors.MapUniqueViolation(err, duplicateDegreeMessage)
		}
		logger.Error().Err(err).Str("name", degree.Name).Msg("Error executing create degree query")
		return fmt.Errorf("error creating degree: %w", err)
	}
	return nil
}

// getOne retrieves the single degree matching where
func (r *DegreeRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Degree, error) {
	sql, args, err := r.sb.Select("id", "name").From("degrees").Where(where).Limit(1).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get degree SQL")
		return nil, fmt.Errorf("failed to build get degree query: %w", err)
	}

	degree := &models.Degree{}
	if err = r.db.QueryRow(ctx, sql, args...).Scan(&degree.ID, &degree.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Degree not found.")
		}
		return nil, fmt.Errorf("error retrieving degree: %w", err)
	}
	return degree, nil
}

// GetByID retrieves a degree by ID
func (r *DegreeRepository) GetByID(ctx context.Context, id int64) (*models.Degree, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByName retrieves a degree by its exact name.
func (r *DegreeRepository) GetByName(ctx context.Context, name string) (*models.Degree, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

// List returns one page of degrees ordered by ID and the total count.
func (r *DegreeRepository) List(ctx context.Context, page models.Page) ([]*models.Degree, int64, error) {
	// Get total count
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM degrees`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting degrees: %w", err)
	}

	// Get page
	sql, args, err := r.sb.Select("id", "name").
		From("degrees").
		OrderBy("id").
		Offset(page.Offset).
		Limit(uint64(page.Limit)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build list degrees query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list degrees query")
		return nil, 0, fmt.Errorf("error listing degrees: %w", err)
	}
	defer rows.Close()

	degrees := []*models.Degree{}
	for rows.Next() {
		d := &models.Degree{}
		if err := rows.Scan(&d.ID, &d.Name); err != nil {
			return nil, 0, fmt.Errorf("error scanning degree row: %w", err)
		}
		degrees = append(degrees, d)
	}
	return degrees, total, rows.Err()
}

// Update renames a degree.
func (r *DegreeRepository) Update(ctx context.Context, degree *models.Degree) error {
	tag, err := r.db.Exec(ctx, `UPDATE degrees SET name = $1 WHERE id = $2`, degree.Name, degree.ID)
	if err != nil {
		// Duplicate names are reported on the offending column
		if dberrors.IsUniqueViolation(err) {
			return dberrors.MapUniqueViolation(err, duplicateDegreeMessage)
		}
		logger.Error().Err(err).Int64("degreeID", degree.ID).Msg("Error executing update degree query")
		return fmt.Errorf("error updating degree: %w", err)
	}
	// Check if degree exists
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Degree not found.")
	}
	return nil
}

// Delete removes a degree and returns the IDs of the jobs deleted with it.
func (r *DegreeRepository) Delete(ctx context.Context, id int64) ([]int64, error) {
	return deleteWithJobs(ctx, r.db, r.sb, "degrees", "degree_id", id, "Degree not found.")
}

// GetOrCreate returns the degree named name, creating it when missing.
func (r *DegreeRepository) GetOrCreate(ctx context.Context, name string) (*models.Degree, bool, error) {
	degree := &models.Degree{Name: name}
	err := r.db.QueryRow(ctx, `
		INSERT INTO degrees (name) VALUES ($1)
		ON CONFLICT (name) DO NOTHING
		RETURNING id`, name).Scan(&degree.ID)
	if err == nil {
		return degree, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("error creating degree: %w", err)
	}

	existing, err := r.GetByName(ctx, name)
	return existing, false, err
}
