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

const duplicateOrganizationMessage = "organization with this name already exists."

// OrganizationRepository handles organization database operations
type OrganizationRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *pgxpool.Pool) *OrganizationRepository {
	return &OrganizationRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// Create inserts an organization and sets its ID.
func (r *OrganizationRepository) Create(ctx context.Context, org *models.Organization) error {
	// Build query
	sql, args, err := r.sb.Insert("organizations").
		Columns("name", "creator_id").
		Values(org.Name, org.CreatorID).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create organization SQL")
		return fmt.Errorf("failed to build create organization query: %w", err)
	}

	if err = r.db.QueryRow(ctx, sql, args...).Scan(&org.ID); err != nil {
		// Duplicate names are reported on the offending column
		if dberrors.IsUniqueViolation(err) {
			return dberrors.MapUniqueViolation(err, duplicateOrganizationMessage)
		}
		logger.Error().Err(err).Str("name", org.Name).Msg("Error executing create organization query")
		return fmt.Errorf("error creating organization: %w", err)
	}
	return nil
}

// getOne retrieves the single organization matching where
func (r *OrganizationRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*models.Organization, error) {
	sql, args, err := r.sb.Select("id", "name", "creator_id").
		From("organizations").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get organization SQL")
		return nil, fmt.Errorf("failed to build get organization query: %w", err)
	}

	org := &models.Organization{}
	if err = r.db.QueryRow(ctx, sql, args...).Scan(&org.ID, &org.Name, &org.CreatorID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Organization not found.")
		}
		logger.Error().Err(err).Msg("Error scanning organization row")
		return nil, fmt.Errorf("error retrieving organization: %w", err)
	}
	return org, nil
}

// GetByID retrieves an organization by ID
func (r *OrganizationRepository) GetByID(ctx context.Context, id int64) (*models.Organization, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id})
}

// GetByName retrieves an organization by its exact name.
func (r *OrganizationRepository) GetByName(ctx context.Context, name string) (*models.Organization, error) {
	return r.getOne(ctx, squirrel.Eq{"name": name})
}

// List returns one page of organizations ordered by ID and the total count.
func (r *OrganizationRepository) List(ctx context.Context, page models.Page) ([]*models.Organization, int64, error) {
	// Get total count
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM organizations`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("error counting organizations: %w", err)
	}

	// Get page
	sql, args, err := r.sb.Select("id", "name", "creator_id").
		From("organizations").
		OrderBy("id").
		Offset(page.Offset).
		Limit(uint64(page.Limit)).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list organizations SQL")
		return nil, 0, fmt.Errorf("failed to build list organizations query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list organizations query")
		return nil, 0, fmt.Errorf("error listing organizations: %w", err)
	}
	defer rows.Close()

	// Scan rows; an empty page encodes as []
	orgs := []*models.Organization{}
	for rows.Next() {
		org := &models.Organization{}
		if err := rows.Scan(&org.ID, &org.Name, &org.CreatorID); err != nil {
			return nil, 0, fmt.Errorf("error scanning organization row: %w", err)
		}
		orgs = append(orgs, org)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating organization rows: %w", err)
	}
	return orgs, total, nil
}

// Update renames an organization. The creator never changes.
func (r *OrganizationRepository) Update(ctx context.Context, org *models.Organization) error {
	// Build query
	sql, args, err := r.sb.Update("organizations").
		Set("name", org.Name).
		Where(squirrel.Eq{"id": org.ID}).
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building update organization SQL")
		return fmt.Errorf("failed to build update organization query: %w", err)
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		// Duplicate names are reported on the offending column
		if dberrors.IsUniqueViolation(err) {
			return dberrors.MapUniqueViolation(err, duplicateOrganizationMessage)
		}
		logger.Error().Err(err).Int64("organizationID", org.ID).Msg("Error executing update organization query")
		return fmt.Errorf("error updating organization: %w", err)
	}
	// Check if organization exists
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Organization not found.")
	}
	return nil
}

// Delete removes an organization and returns the IDs of the jobs deleted
// with it.
func (r *OrganizationRepository) Delete(ctx context.Context, id int64) ([]int64, error) {
	return deleteWithJobs(ctx, r.db, r.sb, "organizations", "organization_id", id, "Organization not found.")
}

// GetOrCreate returns the organization named name, creating it for
// creatorID when missing. An existing organization keeps its creator.
func (r *OrganizationRepository) GetOrCreate(ctx context.Context, name string, creatorID int64) (*models.Organization, bool, error) {
	org := &models.Organization{Name: name, CreatorID: creatorID}
	// Insert unless the name is taken; RETURNING yields no row on conflict
	err := r.db.QueryRow(ctx, `
		INSERT INTO organizations (name, creator_id) VALUES ($1, $2)
		ON CONFLICT (name) DO NOTHING
		RETURNING id`, name, creatorID).Scan(&org.ID)
	if err == nil {
		return org, true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, false, fmt.Errorf("error creating organization: %w", err)
	}

	// Someone else owns it already
	existing, err := r.GetByName(ctx, name)
	return existing, false, err
}
