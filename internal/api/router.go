package api

import (
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/SKH-TMS/tms-api/internal/api/handler"
	"github.com/SKH-TMS/tms-api/internal/api/middleware"
	"github.com/SKH-TMS/tms-api/internal/core/domain"
	"github.com/SKH-TMS/tms-api/internal/core/ports"
	"github.com/SKH-TMS/tms-api/internal/core/service"
	mongodb "github.com/SKH-TMS/tms-api/internal/infrastructure/db/mongo"
	redisdb "github.com/SKH-TMS/tms-api/internal/infrastructure/db/redis"
	"github.com/SKH-TMS/tms-api/internal/infrastructure/http/handlers"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, rdb *redis.Client, jwtSecret string, audit ports.AuditRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("tms"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	teamRepo := mongodb.NewTeamRepository(db)
	assignmentRepo := mongodb.NewAssignmentRepository(db)
	loginGuard := redisdb.NewLoginGuard(rdb)

	authService := service.NewAuthService(userRepo, loginGuard, jwtSecret, 24*time.Hour)
	directoryService := service.NewDirectoryService(userRepo, audit, log)
	projectService := service.NewProjectService(projectRepo, teamRepo, assignmentRepo, userRepo, audit, log)
	teamService := service.NewTeamService(teamRepo, projectRepo, assignmentRepo, userRepo, audit, log)
	assignmentService := service.NewAssignmentService(projectRepo, teamRepo, assignmentRepo, userRepo, audit, log)

	authHandler := handler.NewAuthHandler(authService)
	adminHandler := handler.NewAdminHandler(directoryService)
	projectHandler := handler.NewProjectHandler(projectService, assignmentService)
	teamHandler := handler.NewTeamHandler(teamService)

	authMiddleware := middleware.Auth(jwtSecret)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- Admin routes ---
	admin := e.Group("/api/adminData", authMiddleware, middleware.RBAC(domain.RoleAdmin))
	admin.PUT("/assignProjectManager", adminHandler.AssignProjectManager)

	// --- Project manager routes ---
	pm := e.Group("/api/projectManagerData", authMiddleware, middleware.RBAC(domain.RoleProjectManager))
	pm.POST("/createProject", projectHandler.Create)
	pm.POST("/createTeam", teamHandler.Create)
	pm.POST("/assignProject", projectHandler.Assign)
	pm.GET("/projects", projectHandler.List)
	pm.GET("/projects/:projectId", projectHandler.Get)
	pm.GET("/teams", teamHandler.List)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
