package routes

import (
	"net/http"

	"admissions-crm-backend/internal/api/handlers"
	"admissions-crm-backend/internal/api/middleware"
	"admissions-crm-backend/internal/auth"
	"admissions-crm-backend/internal/config"
	"admissions-crm-backend/internal/database/models"
	"admissions-crm-backend/internal/repository"
	"admissions-crm-backend/internal/service"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes wires repositories, services and handlers into a gin engine
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	roleRepo := repository.NewRoleRepository(db)
	agentRepo := repository.NewAgentRepository(db)
	leadRepo := repository.NewLeadRepository(db)

	roleCache := service.NewRoleCache(func() ([]models.Role, error) {
		return roleRepo.GetAll()
	}, cfg.RoleCacheTTL(), nil)

	assignmentService := service.NewAssignmentService(agentRepo, roleCache, cfg.ScoreTolerance)
	leadService := service.NewLeadService(leadRepo, agentRepo, assignmentService, cfg.DefaultPhoneRegion)
	agentService := service.NewAgentService(agentRepo, roleRepo)
	roleService := service.NewRoleService(roleRepo)
	authService := auth.NewService(cfg.JWTSecret, cfg.JWTTTL())

	healthHandler := handlers.NewHealthHandler(db)
	leadHandler := handlers.NewLeadHandler(leadService)
	agentHandler := handlers.NewAgentHandler(agentService)
	roleHandler := handlers.NewRoleHandler(roleService)

	router := gin.New()
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))

	router.GET("/health", healthHandler.Check)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Unauthenticated intake from public website forms
	public := router.Group("/api/public")
	{
		public.POST("/leads", leadHandler.CreateLeadPublic)
	}

	v1 := router.Group("/api/v1")
	v1.Use(auth.RequireAuth(authService))
	{
		v1.POST("/leads", leadHandler.CreateLead)
		v1.POST("/leads/bulk", leadHandler.BulkCreateLeads)
		v1.GET("/leads", leadHandler.ListLeads)
		v1.GET("/leads/:id", leadHandler.GetLead)

		v1.POST("/agents", agentHandler.CreateAgent)
		v1.GET("/agents", agentHandler.ListAgents)
		v1.GET("/agents/:id", agentHandler.GetAgent)
		v1.PUT("/agents/:id/availability", agentHandler.SetAvailability)

		v1.POST("/roles", roleHandler.CreateRole)
		v1.GET("/roles", roleHandler.ListRoles)
		v1.GET("/roles/:id", roleHandler.GetRole)
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "route not found"})
	})

	return router
}
