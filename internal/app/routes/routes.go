package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yigit/jobsearch/internal/app/controllers"
	"github.com/yigit/jobsearch/internal/middleware"
)

// RouterDeps carries everything the route table needs.
type RouterDeps struct {
	AuthController         *controllers.AuthController
	UserController         *controllers.UserController
	OrganizationController *controllers.OrganizationController
	DegreeController       *controllers.DegreeController
	LocationController     *controllers.LocationController
	SpotlightController    *controllers.SpotlightController
	JobController          *controllers.JobController
	SearchController       *controllers.SearchController
	HealthController       *controllers.HealthController
	AuthMiddleware         *middleware.AuthMiddleware

	// ResponseStore backs the response cache; nil disables it.
	ResponseStore middleware.ResponseStore
	ShortTTL      time.Duration
	LongTTL       time.Duration

	// ThrottleCounter backs request throttling; nil disables it.
	ThrottleCounter middleware.WindowCounter
	ThrottleRules   middleware.ThrottleRules

	Logger zerolog.Logger
}

// SetupRouter configures all application routes
func SetupRouter(router *gin.Engine, deps RouterDeps) {
	router.GET("/ping", deps.HealthController.Ping)

	shortCache := middleware.ResponseCache(deps.ResponseStore, deps.ShortTTL, deps.Logger)
	longCache := middleware.ResponseCache(deps.ResponseStore, deps.LongTTL, deps.Logger)
	requireAuth := middleware.RequireAuth()
	requireStaff := middleware.RequireStaff()

	// API version group
	v1 := router.Group("/api/v1")
	v1.Use(
		deps.AuthMiddleware.Authenticate(),
		middleware.Throttle(deps.ThrottleCounter, deps.ThrottleRules, deps.Logger),
	)

	v1.GET("/health", deps.HealthController.Health)

	accounts := v1.Group("/accounts")
	{
		accounts.POST("/create", deps.AuthController.Register)
		accounts.POST("/token", deps.AuthController.ObtainToken)
		accounts.POST("/jwt", deps.AuthController.Login)
		accounts.POST("/jwt/refresh", deps.AuthController.RefreshToken)

		me := accounts.Group("/me", requireAuth)
		{
			me.GET("", deps.UserController.GetProfile)
			me.PUT("", deps.UserController.ReplaceProfile)
			me.PATCH("", deps.UserController.PatchProfile)
		}
	}

	organizations := v1.Group("/organizations")
	{
		organizations.GET("", shortCache, deps.OrganizationController.ListOrganizations)
		organizations.GET("/:id", shortCache, deps.OrganizationController.GetOrganization)
		organizations.POST("", requireAuth, deps.OrganizationController.CreateOrganization)
		organizations.PUT("/:id", requireAuth, deps.OrganizationController.ReplaceOrganization)
		organizations.PATCH("/:id", requireAuth, deps.OrganizationController.PatchOrganization)
		organizations.DELETE("/:id", requireAuth, deps.OrganizationController.DeleteOrganization)
	}

	degrees := v1.Group("/degrees")
	{
		degrees.GET("", longCache, deps.DegreeController.ListDegrees)
		degrees.GET("/:id", longCache, deps.DegreeController.GetDegree)
		degrees.POST("", requireStaff, deps.DegreeController.CreateDegree)
		degrees.PUT("/:id", requireStaff, deps.DegreeController.UpdateDegree)
		degrees.PATCH("/:id", requireStaff, deps.DegreeController.UpdateDegree)
		degrees.DELETE("/:id", requireStaff, deps.DegreeController.DeleteDegree)
	}

	locations := v1.Group("/locations")
	{
		locations.GET("", shortCache, deps.LocationController.ListLocations)
		locations.GET("/:id", shortCache, deps.LocationController.GetLocation)
	}

	spotlights := v1.Group("/spotlights")
	{
		spotlights.GET("", longCache, deps.SpotlightController.ListSpotlights)
		spotlights.GET("/:id", longCache, deps.SpotlightController.GetSpotlight)
		spotlights.POST("", requireStaff, deps.SpotlightController.CreateSpotlight)
		spotlights.PUT("/:id", requireStaff, deps.SpotlightController.ReplaceSpotlight)
		spotlights.PATCH("/:id", requireStaff, deps.SpotlightController.PatchSpotlight)
		spotlights.DELETE("/:id", requireStaff, deps.SpotlightController.DeleteSpotlight)
	}

	jobs := v1.Group("/jobs")
	{
		jobs.GET("", shortCache, deps.JobController.ListJobs)
		jobs.GET("/:id", shortCache, deps.JobController.GetJob)
		jobs.POST("", requireAuth, deps.JobController.CreateJob)
		jobs.PUT("/:id", requireAuth, deps.JobController.ReplaceJob)
		jobs.PATCH("/:id", requireAuth, deps.JobController.PatchJob)
		jobs.DELETE("/:id", requireAuth, deps.JobController.DeleteJob)
	}

	search := v1.Group("/search/jobs")
	{
		search.GET("", deps.SearchController.SearchJobs)
		search.GET("/suggest", deps.SearchController.SuggestTitles)
		search.GET("/:id", deps.SearchController.GetJobDocument)
	}
}
