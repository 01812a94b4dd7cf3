package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/yigit/jobsearch/internal/pkg/apperrors"
	"github.com/yigit/jobsearch/internal/pkg/logger"
)

// deleteWithJobs deletes one row of table and returns the IDs of the jobs
// that ON DELETE CASCADE removed with it. jobColumn is the jobs column
// referencing table.
func deleteWithJobs(ctx context.Context, pool *pgxpool.Pool, sb squirrel.StatementBuilderType, table, jobColumn string, id int64, notFound string) ([]int64, error) {
	var jobIDs []int64

	err := pgx.BeginFunc(ctx, pool, func(tx pgx.Tx) error {
		// Lock the parent row first so no job can reference it until the delete commits
		lockSQL, args, err := sb.Select("id").From(table).Where(squirrel.Eq{"id": id}).Suffix("FOR UPDATE").ToSql()
		if err != nil {
			return fmt.Errorf("failed to build lock %s query: %w", table, err)
		}
		var locked int64
		if err := tx.QueryRow(ctx, lockSQL, args...).Scan(&locked); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.NewResourceNotFoundError(notFound)
			}
			return fmt.Errorf("error locking %s row: %w", table, err)
		}

		// Collect the jobs the cascade is about to remove
		jobsSQL, args, err := sb.Select("id").From("jobs").Where(squirrel.Eq{jobColumn: id}).OrderBy("id").ToSql()
		if err != nil {
			return fmt.Errorf("failed to build cascaded jobs query: %w", err)
		}
		rows, err := tx.Query(ctx, jobsSQL, args...)
		if err != nil {
			return fmt.Errorf("error listing cascaded jobs: %w", err)
		}
		if jobIDs, err = pgx.CollectRows(rows, pgx.RowTo[int64]); err != nil {
			return fmt.Errorf("error scanning cascaded jobs: %w", err)
		}

		deleteSQL, args, err := sb.Delete(table).Where(squirrel.Eq{"id": id}).ToSql()
		if err != nil {
			return fmt.Errorf("failed to build delete %s query: %w", table, err)
		}
		if _, err := tx.Exec(ctx, deleteSQL, args...); err != nil {
			return fmt.Errorf("error deleting %s row: %w", table, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceNotFound) {
			logger.Error().Err(err).Str("table", table).Int64("id", id).Msg("Error executing cascading delete")
		}
		return nil, err
	}
	return jobIDs, nil
}
