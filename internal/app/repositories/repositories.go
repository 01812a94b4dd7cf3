package repositories

import (
	"github.com/yigit/jobsearch/internal/db"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository         *UserRepository
	TokenRepository        *TokenRepository
	APITokenRepository     *APITokenRepository
	OrganizationRepository *OrganizationRepository
	DegreeRepository       *DegreeRepository
	LocationRepository     *LocationRepository
	SpotlightRepository    *SpotlightRepository
	JobRepository          *JobRepository
}

// NewRepositories initializes all repositories
func NewRepositories(database *db.PostgresDB) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(database.Pool),
		TokenRepository:        NewTokenRepository(database.Pool),
		APITokenRepository:     NewAPITokenRepository(database.Pool),
		OrganizationRepository: NewOrganizationRepository(database.Pool),
		DegreeRepository:       NewDegreeRepository(database.Pool),
		LocationRepository:     NewLocationRepository(database.Pool),
		SpotlightRepository:    NewSpotlightRepository(database.Pool),
		JobRepository:          NewJobRepository(database),
	}
}
