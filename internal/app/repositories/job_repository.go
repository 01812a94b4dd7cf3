package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/db"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"github.com/yigit/jobsearch/internal/pkg/dberrors"
	"github.com/yigit/jobsearch/internal/pkg/logger"
)

// jobColumns selects a job with its organization and degree from jobJoins
var jobColumns = []string{
	"j.id", "j.title", "j.preferred_qualifications", "j.minimum_qualifications", "j.description",
	"j.job_type", "j.date_added", "j.date_updated",
	"o.id", "o.name", "o.creator_id", "d.id", "d.name",
}

const jobJoins = "jobs j JOIN organizations o ON o.id = j.organization_id JOIN degrees d ON d.id = j.degree_id"

// likeEscaper makes user input literal inside ILIKE patterns
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// JobRepository handles job database operations. Every write touching
// job_locations runs in a single transaction.
type JobRepository struct {
	db *db.PostgresDB
	sb squirrel.StatementBuilderType
}

// NewJobRepository creates a new JobRepository
func NewJobRepository(database *db.PostgresDB) *JobRepository {
	return &JobRepository{db: database, sb: psql}
}

// applyJobFilter adds the WHERE clauses of f to q. q must select from jobJoins.
func applyJobFilter(q squirrel.SelectBuilder, f models.JobFilter) squirrel.SelectBuilder {
	// Title is a case-insensitive substring match
	if f.Title != "" {
		q = q.Where(squirrel.ILike{"j.title": "%" + likeEscaper.Replace(f.Title) + "%"})
	}
	// Names match case-insensitively but in full
	if f.Organization != "" {
		q = q.Where("UPPER(o.name) = UPPER(?)", f.Organization)
	}
	if f.Degree != "" {
		q = q.Where("UPPER(d.name) = UPPER(?)", f.Degree)
	}
	// Any of the locations may match
	if len(f.LocationIDs) > 0 {
		q = q.Where("EXISTS (SELECT 1 FROM job_locations jl WHERE jl.job_id = j.id AND jl.location_id = ANY(?))", f.LocationIDs)
	}
	if f.JobType != "" {
		q = q.Where(squirrel.Eq{"j.job_type": string(f.JobType)})
	}
	return q
}

// scanJob reads one row selected with jobColumns
func scanJob(row pgx.Row) (*models.Job, error) {
	job := &models.Job{}
	var jobType string
	err := row.Scan(
		&job.ID, &job.Title, &job.PreferredQualifications, &job.MinimumQualifications, &job.Description,
		&jobType, &job.DateAdded, &job.DateUpdated,
		&job.Organization.ID, &job.Organization.Name, &job.Organization.CreatorID,
		&job.Degree.ID, &job.Degree.Name)
	if err != nil {
		return nil, err
	}
	job.JobType = models.JobType(jobType)
	job.Locations = []models.Location{}
	return job, nil
}

// attachLocations loads the locations of jobs with one query.
func (r *JobRepository) attachLocations(ctx context.Context, q db.Querier, jobs []*models.Job) error {
	if len(jobs) == 0 {
		return nil
	}

	// Index jobs by ID
	ids := make([]int64, 0, len(jobs))
	byID := make(map[int64]*models.Job, len(jobs))
	for _, j := range jobs {
		ids = append(ids, j.ID)
		byID[j.ID] = j
	}

	rows, err := q.Query(ctx, `
		SELECT jl.job_id, l.id, l.name
		FROM job_locations jl JOIN locations l ON l.id = jl.location_id
		WHERE jl.job_id = ANY($1)
		ORDER BY l.id`, ids)
	if err != nil {
		return fmt.Errorf("error loading job locations: %w", err)
	}
	defer rows.Close()

	// Attach each location to its job
	for rows.Next() {
		var jobID int64
		var l models.Location
		if err := rows.Scan(&jobID, &l.ID, &l.Name); err != nil {
			return fmt.Errorf("error scanning job location row: %w", err)
		}
		if j, ok := byID[jobID]; ok {
			j.Locations = append(j.Locations, l)
		}
	}
	return rows.Err()
}

// linkLocations inserts the job_locations rows for jobID
func linkLocations(ctx context.Context, q db.Querier, jobID int64, locations []models.Location) error {
	if len(locations) == 0 {
		return nil
	}
	insert := psql.Insert("job_locations").Columns("job_id", "location_id").Suffix("ON CONFLICT DO NOTHING")
	for _, l := range locations {
		insert = insert.Values(jobID, l.ID)
	}
	sql, args, err := insert.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build link locations query: %w", err)
	}
	if _, err := q.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("error linking job locations: %w", err)
	}
	return nil
}

// referenceError reports an organization or degree deleted after the
// service resolved it by name the same way an unknown name is reported.
// It returns nil when err is not such a violation.
func referenceError(err error, job *models.Job) error {
	switch dberrors.ForeignKeyConstraint(err) {
	case "jobs_organization_id_fkey":
		return apperrors.NewValidationError("organization",
			fmt.Sprintf("Organization %q does not exist.", job.Organization.Name))
	case "jobs_degree_id_fkey":
		return apperrors.NewValidationError("degree",
			fmt.Sprintf("Degree %q does not exist.", job.Degree.Name))
	}
	return nil
}

// Create inserts job with its locations, creating missing locations by
// name. ID, dates and Locations are filled in on success.
func (r *JobRepository) Create(ctx context.Context, job *models.Job, locationNames []string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// Insert job
		sql, args, err := r.sb.Insert("jobs").
			Columns("title", "degree_id", "organization_id", "preferred_qualifications",
				"minimum_qualifications", "description", "job_type").
			Values(job.Title, job.Degree.ID, job.Organization.ID, nonNilStrings(job.PreferredQualifications),
				nonNilStrings(job.MinimumQualifications), nonNilStrings(job.Description), string(job.JobType)).
			Suffix("RETURNING id, date_added, date_updated").
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building create job SQL")
			return fmt.Errorf("failed to build create job query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&job.ID, &job.DateAdded, &job.DateUpdated); err != nil {
			if refErr := referenceError(err, job); refErr != nil {
				return refErr
			}
			logger.Error().Err(err).Str("title", job.Title).Msg("Error executing create job query")
			return fmt.Errorf("error creating job: %w", err)
		}

		// Create missing locations, then link them
		locations, err := upsertLocations(ctx, tx, locationNames)
		if err != nil {
			return err
		}
		if err := linkLocations(ctx, tx, job.ID, locations); err != nil {
			return err
		}
		job.Locations = locations
		return nil
	})
}

// Update writes every scalar column of job and bumps date_updated. A nil
// locationNames keeps the current locations; otherwise the set is replaced.
func (r *JobRepository) Update(ctx context.Context, job *models.Job, locationNames []string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		// Update scalar columns
		sql, args, err := r.sb.Update("jobs").
			Set("title", job.Title).
			Set("degree_id", job.Degree.ID).
			Set("organization_id", job.Organization.ID).
			Set("preferred_qualifications", nonNilStrings(job.PreferredQualifications)).
			Set("minimum_qualifications", nonNilStrings(job.MinimumQualifications)).
			Set("description", nonNilStrings(job.Description)).
			Set("job_type", string(job.JobType)).
			Set("date_updated", squirrel.Expr("CURRENT_DATE")).
			Where(squirrel.Eq{"id": job.ID}).
			Suffix("RETURNING date_added, date_updated").
			ToSql()
		if err != nil {
			logger.Error().Err(err).Msg("Error building update job SQL")
			return fmt.Errorf("failed to build update job query: %w", err)
		}

		if err := tx.QueryRow(ctx, sql, args...).Scan(&job.DateAdded, &job.DateUpdated); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewResourceNotFoundError("Job not found.")
			}
			if refErr := referenceError(err, job); refErr != nil {
				return refErr
			}
			logger.Error().Err(err).Int64("jobID", job.ID).Msg("Error executing update job query")
			return fmt.Errorf("error updating job: %w", err)
		}

		// Keep current locations
		if locationNames == nil {
			job.Locations = []models.Location{}
			return r.attachLocations(ctx, tx, []*models.Job{job})
		}

		// Replace the location set
		if _, err := tx.Exec(ctx, `DELETE FROM job_locations WHERE job_id = $1`, job.ID); err != nil {
			return fmt.Errorf("error clearing job locations: %w", err)
		}
		locations, err := upsertLocations(ctx, tx, locationNames)
		if err != nil {
			return err
		}
		if err := linkLocations(ctx, tx, job.ID, locations); err != nil {
			return err
		}
		job.Locations = locations
		return nil
	})
}

// AddLocations links additional locations to an existing job.
func (r *JobRepository) AddLocations(ctx context.Context, jobID int64, locationNames []string) error {
	return r.db.WithTransaction(ctx, func(ctx context.Context, tx pgx.Tx) error {
		locations, err := upsertLocations(ctx, tx, locationNames)
		if err != nil {
			return err
		}
		return linkLocations(ctx, tx, jobID, locations)
	})
}

// GetByID retrieves a job with its organization, degree and locations.
func (r *JobRepository) GetByID(ctx context.Context, id int64) (*models.Job, error) {
	// Build query
	sql, args, err := r.sb.Select(jobColumns...).From(jobJoins).Where(squirrel.Eq{"j.id": id}).Limit(1).ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building get job SQL")
		return nil, fmt.Errorf("failed to build get job query: %w", err)
	}

	job, err := scanJob(r.db.Pool.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewResourceNotFoundError("Job not found.")
		}
		logger.Error().Err(err).Int64("jobID", id).Msg("Error scanning job row")
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}

	// Get locations
	if err := r.attachLocations(ctx, r.db.Pool, []*models.Job{job}); err != nil {
		return nil, err
	}
	return job, nil
}

// FindID looks up a job by its natural key, used when loading fixtures.
func (r *JobRepository) FindID(ctx context.Context, title string, organizationID, degreeID int64, jobType models.JobType) (int64, bool, error) {
	var id int64
	err := r.db.Pool.QueryRow(ctx, `
		SELECT id FROM jobs
		WHERE title = $1 AND organization_id = $2 AND degree_id = $3 AND job_type = $4
		ORDER BY id LIMIT 1`, title, organizationID, degreeID, string(jobType)).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("error looking up job: %w", err)
	}
	return id, true, nil
}

// query runs a jobColumns select and loads locations for the result
func (r *JobRepository) query(ctx context.Context, q squirrel.SelectBuilder) ([]*models.Job, error) {
	sql, args, err := q.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list jobs SQL")
		return nil, fmt.Errorf("failed to build list jobs query: %w", err)
	}

	rows, err := r.db.Pool.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list jobs query")
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	defer rows.Close()

	jobs := []*models.Job{}
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning job row: %w", err)
		}
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating job rows: %w", err)
	}
	// Release the connection before the locations query
	rows.Close()

	if err := r.attachLocations(ctx, r.db.Pool, jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

// List returns one page of jobs matching filter, ordered by ID, and the
// number of matching jobs.
func (r *JobRepository) List(ctx context.Context, filter models.JobFilter, page models.Page) ([]*models.Job, int64, error) {
	// Get total count
	countSQL, countArgs, err := applyJobFilter(r.sb.Select("COUNT(*)").From(jobJoins), filter).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build count jobs query: %w", err)
	}

	var total int64
	if err := r.db.Pool.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting jobs")
		return nil, 0, fmt.Errorf("error counting jobs: %w", err)
	}

	// Apply filters
	q := applyJobFilter(r.sb.Select(jobColumns...).From(jobJoins), filter).
		OrderBy("j.id").
		Offset(page.Offset).
		Limit(uint64(page.Limit))

	jobs, err := r.query(ctx, q)
	if err != nil {
		return nil, 0, err
	}
	return jobs, total, nil
}

// ForEachBatch walks every job in ID order, calling fn with up to
// batchSize jobs at a time.
func (r *JobRepository) ForEachBatch(ctx context.Context, batchSize int, fn func([]*models.Job) error) error {
	if batchSize <= 0 {
		return fmt.Errorf("invalid batch size %d", batchSize)
	}

	// Keyset pagination; rows inserted behind lastID are not revisited
	var lastID int64
	for {
		q := r.sb.Select(jobColumns...).From(jobJoins).
			Where(squirrel.Gt{"j.id": lastID}).
			OrderBy("j.id").
			Limit(uint64(batchSize))

		jobs, err := r.query(ctx, q)
		if err != nil {
			return err
		}
		if len(jobs) == 0 {
			return nil
		}
		if err := fn(jobs); err != nil {
			return err
		}
		// Continue after the last job seen
		lastID = jobs[len(jobs)-1].ID
	}
}

// Delete removes a job and its location links.
func (r *JobRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
	if err != nil {
		logger.Error().Err(err).Int64("jobID", id).Msg("Error executing delete job query")
		return fmt.Errorf("error deleting job: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("Job not found.")
	}
	return nil
}

// nonNilStrings keeps NOT NULL array columns from receiving NULL
func nonNilStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
