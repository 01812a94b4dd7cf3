package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appAuth "github.com/yigit/jobsearch/internal/app/auth"
	appControllers "github.com/yigit/jobsearch/internal/app/controllers"
	appMigrations "github.com/yigit/jobsearch/internal/app/migrations"
	appRepos "github.com/yigit/jobsearch/internal/app/repositories"
	appRoutes "github.com/yigit/jobsearch/internal/app/routes"
	appServices "github.com/yigit/jobsearch/internal/app/services"
	"github.com/yigit/jobsearch/internal/config"
	"github.com/yigit/jobsearch/internal/db"
	appMiddleware "github.com/yigit/jobsearch/internal/middleware"
	pkgAuth "github.com/yigit/jobsearch/internal/pkg/auth"
	"github.com/yigit/jobsearch/internal/pkg/cache"
	"github.com/yigit/jobsearch/internal/pkg/helpers"
	"github.com/yigit/jobsearch/internal/pkg/logger"
	"github.com/yigit/jobsearch/internal/pkg/validation"
	"github.com/yigit/jobsearch/internal/search"
	"github.com/yigit/jobsearch/internal/seed"
)

// DefaultConfigPath is used when no path is given on the command line.
const DefaultConfigPath = "configs/config.yaml"

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos      *appRepos.Repositories
	JWTService *pkgAuth.JWTService
	Authz      *appAuth.AuthorizationService

	AuthService         appServices.AuthService
	UserService         appServices.UserService
	OrganizationService appServices.OrganizationService
	DegreeService       appServices.DegreeService
	LocationService     appServices.LocationService
	SpotlightService    appServices.SpotlightService
	JobService          appServices.JobService
	SearchService       appServices.SearchService

	AuthMiddleware *appMiddleware.AuthMiddleware

	// Indexer is the search client, or a no-op when search is disabled.
	Indexer appServices.JobIndexer
	Search  *search.Client
	Cache   *cache.RedisCache

	Logger zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	lgr := logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection. Migrations run when
// migrate is true.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger, migrate bool) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	if !migrate {
		return database, nil
	}
	if _, err := RunMigrations(context.Background(), cfg, database, lgr); err != nil {
		database.Close()
		return nil, err
	}
	return database, nil
}

// RunMigrations applies pending SQL files from the configured directory.
func RunMigrations(ctx context.Context, cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (int, error) {
	migrationsDir := cfg.Database.MigrationsDir
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return 0, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	lgr.Info().Str("path", migrationsDir).Msg("Running database migrations...")
	applied, err := appMigrations.NewMigrator(database.Pool, lgr).MigrateFromDirectory(ctx, migrationsDir)
	if err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return applied, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Int("applied", applied).Msg("Database migrations successfully applied.")
	return applied, nil
}

// SetupRedis connects to Redis when caching or throttling is enabled.
// An unreachable server is logged, not fatal: both features fail open.
func SetupRedis(cfg *config.Config, lgr zerolog.Logger) (*redis.Client, *cache.RedisCache) {
	if !cfg.Cache.Enabled && !cfg.Throttle.Enabled {
		lgr.Info().Msg("Redis disabled: caching and throttling are both off")
		return nil, nil
	}

	client := cache.NewRedisClient(cache.RedisConfig{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	redisCache := cache.NewRedisCache(client)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Health(ctx); err != nil {
		lgr.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("Redis is not reachable, continuing without it until it recovers")
	} else {
		lgr.Info().Str("addr", cfg.Redis.Addr).Msg("Redis connection established")
	}
	return client, redisCache
}

// SetupSearch creates the search client and makes sure the index exists.
// It returns nil when search is disabled.
func SetupSearch(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*search.Client, error) {
	if !cfg.Search.Enabled {
		lgr.Info().Msg("Search disabled")
		return nil, nil
	}

	client, err := search.NewClient(search.Config{
		Addresses: cfg.SearchAddresses(),
		Username:  cfg.Search.Username,
		Password:  cfg.Search.Password,
		Index:     cfg.Search.Index,
	}, lgr)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := client.EnsureIndex(ctx); err != nil {
		lgr.Warn().Err(err).Str("index", client.Index()).Msg("Could not ensure search index, search requests will fail until the cluster is reachable")
	}
	return client, nil
}

// BuildDependencies initializes application repositories and services.
// redisCache and searchClient may be nil.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, redisCache *cache.RedisCache, searchClient *search.Client, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Repos:  appRepos.NewRepositories(database),
		Authz:  appAuth.NewAuthorizationService(),
		Search: searchClient,
		Cache:  redisCache,
		Logger: lgr,
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 5*time.Minute),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 24*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	// Interfaces stay untyped nil when search is off.
	var searcher appServices.JobSearcher
	deps.Indexer = search.NopIndexer{}
	if searchClient != nil {
		searcher = searchClient
		deps.Indexer = searchClient
	}

	repos := deps.Repos
	deps.AuthService = appServices.NewAuthService(repos.UserRepository, repos.TokenRepository, repos.APITokenRepository, deps.JWTService, lgr)
	deps.UserService = appServices.NewUserService(repos.UserRepository, repos.TokenRepository, lgr)
	deps.OrganizationService = appServices.NewOrganizationService(repos.OrganizationRepository, deps.Indexer, deps.Authz, lgr)
	deps.DegreeService = appServices.NewDegreeService(repos.DegreeRepository, deps.Indexer, deps.Authz, lgr)
	deps.LocationService = appServices.NewLocationService(repos.LocationRepository)
	deps.SpotlightService = appServices.NewSpotlightService(repos.SpotlightRepository, deps.Authz)
	deps.JobService = appServices.NewJobService(repos.JobRepository, repos.OrganizationRepository, repos.DegreeRepository, deps.Indexer, deps.Authz, lgr)
	deps.SearchService = appServices.NewSearchService(searcher)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService)

	return deps, nil
}

// NewFixtureLoader wires the fixture loader to the repositories and index.
func NewFixtureLoader(cfg *config.Config, deps *Dependencies) *seed.Loader {
	var indexer seed.JobIndexer
	if deps.Search != nil {
		indexer = deps.Search
	}
	repos := deps.Repos
	return seed.NewLoader(
		repos.DegreeRepository,
		repos.OrganizationRepository,
		repos.SpotlightRepository,
		repos.JobRepository,
		indexer,
		cfg.Seed.CreatorUserID,
		deps.Logger,
	)
}

// LoadFixture loads the file at path, or the configured fixture when path is empty.
func LoadFixture(ctx context.Context, cfg *config.Config, deps *Dependencies, path string) (seed.Stats, error) {
	if path == "" {
		path = cfg.Seed.FixturePath
	}
	fixture, err := seed.ReadFixture(path)
	if err != nil {
		return seed.Stats{}, err
	}
	return NewFixtureLoader(cfg, deps).Load(ctx, fixture)
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, database *db.PostgresDB, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	validation.RegisterBindingRules()

	throttleRules, err := appMiddleware.NewThrottleRules(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid throttle configuration: %w", err)
	}

	checks := map[string]appControllers.HealthCheck{
		"database": func(ctx context.Context) error { return database.Pool.Ping(ctx) },
	}
	if deps.Cache != nil {
		checks["redis"] = deps.Cache.Health
	}
	if deps.Search != nil {
		checks["search"] = deps.Search.Ping
	}

	routeDeps := appRoutes.RouterDeps{
		AuthController:         appControllers.NewAuthController(deps.AuthService, lgr),
		UserController:         appControllers.NewUserController(deps.UserService),
		OrganizationController: appControllers.NewOrganizationController(deps.OrganizationService),
		DegreeController:       appControllers.NewDegreeController(deps.DegreeService),
		LocationController:     appControllers.NewLocationController(deps.LocationService),
		SpotlightController:    appControllers.NewSpotlightController(deps.SpotlightService),
		JobController:          appControllers.NewJobController(deps.JobService),
		SearchController:       appControllers.NewSearchController(deps.SearchService),
		HealthController:       appControllers.NewHealthController(checks),
		AuthMiddleware:         deps.AuthMiddleware,
		ShortTTL:               helpers.ParseDuration(cfg.Cache.ShortTTL, 120*time.Second),
		LongTTL:                helpers.ParseDuration(cfg.Cache.LongTTL, 300*time.Second),
		ThrottleRules:          throttleRules,
		Logger:                 lgr,
	}
	if deps.Cache != nil && cfg.Cache.Enabled {
		routeDeps.ResponseStore = deps.Cache
	}
	if deps.Cache != nil && cfg.Throttle.Enabled {
		routeDeps.ThrottleCounter = deps.Cache
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, routeDeps)

	return router, nil
}
