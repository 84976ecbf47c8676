package routes

import (
	"dispatch-portal-backend/internal/api/handlers"
	"dispatch-portal-backend/internal/api/middleware"
	"dispatch-portal-backend/internal/auth"
	"dispatch-portal-backend/internal/config"
	"dispatch-portal-backend/internal/metrics"
	"dispatch-portal-backend/internal/repository"
	"dispatch-portal-backend/internal/service"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Initialize metrics sink; a registration failure downgrades to a no-op
	// sink rather than blocking startup
	var sink metrics.Sink
	promSink, err := metrics.NewPromSink()
	if err != nil {
		log.Printf("Warning: Prometheus metrics registration failed: %v", err)
		sink = metrics.NopSink{}
	} else {
		sink = promSink
	}

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.Metrics(sink))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	workerRepo := repository.NewWorkerRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	externalTeamRepo := repository.NewExternalTeamRepository(db)
	calendarBlockRepo := repository.NewCalendarBlockRepository(db)
	leaveRequestRepo := repository.NewLeaveRequestRepository(db)
	publicHolidayRepo := repository.NewPublicHolidayRepository(db)
	workItemRepo := repository.NewWorkItemRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	workerService := service.NewWorkerService(workerRepo, validator)
	teamService := service.NewTeamService(teamRepo, organizationRepo, workerRepo, validator)
	calendarBlockService := service.NewCalendarBlockService(calendarBlockRepo, workerRepo, validator)
	leaveRequestService := service.NewLeaveRequestService(leaveRequestRepo, workerRepo, validator)
	publicHolidayService := service.NewPublicHolidayService(publicHolidayRepo, organizationRepo, validator)
	workItemService := service.NewWorkItemService(workItemRepo, organizationRepo, workerRepo, validator)

	fieldClient := service.NewFieldServiceClient(cfg)
	identityService := service.NewIdentityService(workerRepo, teamRepo)
	calendarService := service.NewCalendarService(cfg, fieldClient, identityService, workerRepo, workItemRepo, leaveRequestRepo, publicHolidayRepo, calendarBlockRepo, sink)
	availabilityService := service.NewAvailabilityService(cfg, fieldClient, workerRepo, teamRepo, leaveRequestRepo, publicHolidayRepo, calendarBlockRepo)
	feedService := service.NewFeedService(calendarService)
	directoryService := service.NewDirectoryService(cfg)
	externalTeamService := service.NewExternalTeamService(cfg, externalTeamRepo, fieldClient, sink)

	// Initialize auth services
	authService := auth.NewAuthService(cfg)
	authMiddleware := auth.NewAuthMiddleware(authService)
	authHandler := auth.NewAuthHandler(authService, workerRepo, cfg.IsProduction())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	workerHandler := handlers.NewWorkerHandler(workerService)
	teamHandler := handlers.NewTeamHandler(teamService)
	calendarBlockHandler := handlers.NewCalendarBlockHandler(calendarBlockService)
	leaveRequestHandler := handlers.NewLeaveRequestHandler(leaveRequestService)
	publicHolidayHandler := handlers.NewPublicHolidayHandler(publicHolidayService)
	workItemHandler := handlers.NewWorkItemHandler(workItemService)
	calendarHandler := handlers.NewCalendarHandler(calendarService, feedService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	externalTeamHandler := handlers.NewExternalTeamHandler(externalTeamService)
	directoryHandler := handlers.NewDirectoryHandler(directoryService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus metrics route
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/validate", authHandler.ValidateToken)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
		authGroup.POST("/dev-token", authHandler.DevToken) // Disabled in production
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.GET("", organizationHandler.ListOrganizations)
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
			organizations.GET("/by-name/:name", organizationHandler.GetOrganizationByName)
			organizations.GET("/by-domain/:domain", organizationHandler.GetOrganizationByDomain)
			organizations.PUT("/:id", organizationHandler.UpdateOrganization)
			organizations.DELETE("/:id", organizationHandler.DeleteOrganization)
			organizations.GET("/:id/workers", workerHandler.GetWorkersByOrganization)
			organizations.GET("/:id/teams", organizationHandler.GetOrganizationTeams)
		}

		// Worker routes
		workers := v1.Group("/workers")
		{
			workers.GET("", workerHandler.GetWorkersByOrganization) // Requires organization_id parameter
			workers.POST("", workerHandler.CreateWorker)
			workers.GET("/:id", workerHandler.GetWorker)
			workers.PUT("/:id", workerHandler.UpdateWorker)
			workers.DELETE("/:id", workerHandler.DeleteWorker)
			workers.PUT("/:id/admin-mapping", workerHandler.SetAdminMapping)
			workers.DELETE("/:id/admin-mapping", workerHandler.ClearAdminMapping)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams) // Requires organization_id parameter
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
			teams.PUT("/:id", teamHandler.UpdateTeam)
			teams.DELETE("/:id", teamHandler.DeleteTeam)
			teams.GET("/:id/full", teamHandler.GetTeamWithMembers)
			teams.GET("/:id/members", teamHandler.ListMembers)
			teams.POST("/:id/members", teamHandler.AddMember)
			teams.DELETE("/:id/members/:workerId", teamHandler.RemoveMember)
			teams.GET("/by-name/:name", teamHandler.GetTeamByName) // Requires organization_id parameter
		}

		// Calendar block routes
		calendarBlocks := v1.Group("/calendar-blocks")
		{
			calendarBlocks.GET("", calendarBlockHandler.ListCalendarBlocks) // Requires worker_id parameter
			calendarBlocks.POST("", calendarBlockHandler.CreateCalendarBlock)
			calendarBlocks.GET("/:id", calendarBlockHandler.GetCalendarBlock)
			calendarBlocks.PUT("/:id", calendarBlockHandler.UpdateCalendarBlock)
			calendarBlocks.DELETE("/:id", calendarBlockHandler.DeleteCalendarBlock)
		}

		// Leave request routes
		leaveRequests := v1.Group("/leave-requests")
		{
			leaveRequests.GET("", leaveRequestHandler.ListLeaveRequests) // Requires worker_id parameter
			leaveRequests.POST("", leaveRequestHandler.CreateLeaveRequest)
			leaveRequests.GET("/:id", leaveRequestHandler.GetLeaveRequest)
			leaveRequests.PUT("/:id", leaveRequestHandler.UpdateLeaveRequest)
			leaveRequests.POST("/:id/approve", leaveRequestHandler.ApproveLeaveRequest)
			leaveRequests.POST("/:id/reject", leaveRequestHandler.RejectLeaveRequest)
			leaveRequests.DELETE("/:id", leaveRequestHandler.DeleteLeaveRequest)
		}

		// Public holiday routes
		publicHolidays := v1.Group("/public-holidays")
		{
			publicHolidays.GET("", publicHolidayHandler.ListPublicHolidays) // Requires organization_id parameter
			publicHolidays.POST("", publicHolidayHandler.CreatePublicHoliday)
			publicHolidays.GET("/:id", publicHolidayHandler.GetPublicHoliday)
			publicHolidays.PUT("/:id", publicHolidayHandler.UpdatePublicHoliday)
			publicHolidays.DELETE("/:id", publicHolidayHandler.DeletePublicHoliday)
		}

		// Work item routes
		workItems := v1.Group("/work-items")
		{
			workItems.GET("", workItemHandler.ListWorkItems) // Requires organization_id parameter
			workItems.POST("", workItemHandler.CreateWorkItem)
			workItems.GET("/:id", workItemHandler.GetWorkItem)
			workItems.PUT("/:id", workItemHandler.UpdateWorkItem)
			workItems.DELETE("/:id", workItemHandler.DeleteWorkItem)
		}

		// Combined calendar routes
		calendar := v1.Group("/calendar")
		{
			calendar.GET("/combined", calendarHandler.GetCombinedCalendar)
			calendar.GET("/feed", calendarHandler.GetCalendarFeed)
		}

		// Availability routes
		availability := v1.Group("/availability")
		{
			availability.GET("/workers/:id", availabilityHandler.GetWorkerAvailability)
			availability.GET("/teams/:id", availabilityHandler.GetTeamAvailability)
		}

		// External team snapshot routes
		externalTeams := v1.Group("/external-teams")
		{
			externalTeams.GET("", externalTeamHandler.ListExternalTeams)
			externalTeams.GET("/administrators", externalTeamHandler.ListAdministrators)
			externalTeams.GET("/:external_id", externalTeamHandler.GetExternalTeam)
			externalTeams.POST("/sync", externalTeamHandler.SyncExternalTeams)
		}

		// Directory routes
		directory := v1.Group("/directory")
		{
			directory.GET("/search", directoryHandler.Search)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
