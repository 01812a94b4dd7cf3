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

// APITokenRepository stores the single persistent API key of each user.
type APITokenRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewAPITokenRepository creates a new APITokenRepository
func NewAPITokenRepository(db *pgxpool.Pool) *APITokenRepository {
	return &APITokenRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// GetOrCreate returns the user's existing key, storing candidateKey first
// if the user has none yet.
func (r *APITokenRepository) GetOrCreate(ctx context.Context, userID int64, candidateKey string) (string, error) {
	// One key per user; a concurrent first request loses the race quietly
	sql, args, err := r.sb.Insert("api_tokens").
		Columns("key", "user_id").
		Values(candidateKey, userID).
		Suffix("ON CONFLICT (user_id) DO NOTHING").
		ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building create api token SQL")
		return "", fmt.Errorf("failed to build create api token query: %w", err)
	}

	if _, err = r.db.Exec(ctx, sql, args...); err != nil {
		logger.Error().Err(err).Int64("userID", userID).Msg("Error executing create api token query")
		return "", fmt.Errorf("error creating api token: %w", err)
	}

	// Read back whichever key won
	var key string
	if err = r.db.QueryRow(ctx, `SELECT key FROM api_tokens WHERE user_id = $1`, userID).Scan(&key); err != nil {
		return "", fmt.Errorf("error retrieving api token: %w", err)
	}
	return key, nil
}

// GetUserIDByKey resolves an API key to its owner.
func (r *APITokenRepository) GetUserIDByKey(ctx context.Context, key string) (int64, error) {
	var userID int64
	err := r.db.QueryRow(ctx, `SELECT user_id FROM api_tokens WHERE key = $1`, key).Scan(&userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.ErrTokenInvalid
		}
		logger.Error().Err(err).Msg("Error scanning api token row")
		return 0, fmt.Errorf("error retrieving api token: %w", err)
	}
	return userID, nil
}
