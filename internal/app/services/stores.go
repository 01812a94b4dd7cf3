package services

import (
	"context"
	"time"

	"github.com/yigit/jobsearch/internal/app/models"
	"github.com/yigit/jobsearch/internal/app/models/dto"
)

// UserStore persists users.
type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, userID int64) error
}

// RefreshTokenStore persists JWT refresh tokens.
type RefreshTokenStore interface {
	CreateToken(ctx context.Context, token string, userID int64, expiresAt time.Time) error
	GetUserIDByToken(ctx context.Context, token string) (int64, error)
	RotateToken(ctx context.Context, oldToken, newToken string, userID int64, expiresAt time.Time) error
	RevokeAllUserTokens(ctx context.Context, userID int64) error
	CleanupExpiredTokens(ctx context.Context) (int64, error)
}

// APITokenStore persists the per-user API key.
type APITokenStore interface {
	GetOrCreate(ctx context.Context, userID int64, candidateKey string) (string, error)
	GetUserIDByKey(ctx context.Context, key string) (int64, error)
}

// OrganizationStore persists organizations. Delete returns the IDs of the
// jobs removed along with the organization.
type OrganizationStore interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id int64) (*models.Organization, error)
	GetByName(ctx context.Context, name string) (*models.Organization, error)
	List(ctx context.Context, page models.Page) ([]*models.Organization, int64, error)
	Update(ctx context.Context, org *models.Organization) error
	Delete(ctx context.Context, id int64) ([]int64, error)
}

// DegreeStore persists degrees. Delete returns the IDs of the jobs removed
// along with the degree.
type DegreeStore interface {
	Create(ctx context.Context, degree *models.Degree) error
	GetByID(ctx context.Context, id int64) (*models.Degree, error)
	GetByName(ctx context.Context, name string) (*models.Degree, error)
	List(ctx context.Context, page models.Page) ([]*models.Degree, int64, error)
	Update(ctx context.Context, degree *models.Degree) error
	Delete(ctx context.Context, id int64) ([]int64, error)
}

// LocationStore reads locations.
type LocationStore interface {
	GetByID(ctx context.Context, id int64) (*models.Location, error)
	List(ctx context.Context, page models.Page) ([]*models.Location, int64, error)
}

// SpotlightStore persists spotlights.
type SpotlightStore interface {
	Create(ctx context.Context, s *models.Spotlight) error
	GetByID(ctx context.Context, id int64) (*models.Spotlight, error)
	List(ctx context.Context, page models.Page) ([]*models.Spotlight, int64, error)
	Update(ctx context.Context, s *models.Spotlight) error
	Delete(ctx context.Context, id int64) error
}

// JobStore persists jobs. A nil locationNames on Update keeps the current
// locations; any other value replaces them.
type JobStore interface {
	Create(ctx context.Context, job *models.Job, locationNames []string) error
	Update(ctx context.Context, job *models.Job, locationNames []string) error
	GetByID(ctx context.Context, id int64) (*models.Job, error)
	List(ctx context.Context, filter models.JobFilter, page models.Page) ([]*models.Job, int64, error)
	Delete(ctx context.Context, id int64) error
}

// JobIndexer keeps the search index in step with committed job writes.
type JobIndexer interface {
	IndexJob(ctx context.Context, job *models.Job) error
	DeleteJob(ctx context.Context, id int64) error
}

// JobSearcher queries the search index.
type JobSearcher interface {
	Search(ctx context.Context, query models.JobSearchQuery) ([]dto.JobSearchItem, int64, error)
	Suggest(ctx context.Context, prefix string, fuzzy bool) ([]string, error)
	Get(ctx context.Context, id int64) (*dto.JobSearchItem, error)
}
