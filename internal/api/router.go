package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/roadworthy/pti-system/docs"
	"github.com/roadworthy/pti-system/internal/api/handler"
	"github.com/roadworthy/pti-system/internal/api/middleware"
	"github.com/roadworthy/pti-system/internal/core/domain"
	"github.com/roadworthy/pti-system/internal/core/service"
	mongodb "github.com/roadworthy/pti-system/internal/infrastructure/db/mongo"
	"github.com/roadworthy/pti-system/internal/infrastructure/http/handlers"
	"github.com/roadworthy/pti-system/internal/pkg/config"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *mongo.Database, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("pti"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	inspectionRepo := mongodb.NewInspectionRepository(db)

	accountService := service.NewAccountService(userRepo, cfg.JWTSecret, cfg.InspectorSignupSecret, cfg.TokenTTL(), log)
	inspectionService := service.NewInspectionService(inspectionRepo, log)

	authHandler := handler.NewAuthHandler(accountService)
	userHandler := handler.NewUserHandler(accountService)
	inspectionHandler := handler.NewInspectionHandler(inspectionService)

	auth := middleware.Auth(cfg.JWTSecret, userRepo)
	inspectorOnly := middleware.RequireRole(domain.RoleInspector)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/me", authHandler.Me, auth)

	// --- Car list routes ---
	e.POST("/users/add-car", userHandler.AddCar, auth)
	e.DELETE("/users/remove-car/:license_plate", userHandler.RemoveCar, auth)

	// --- Inspection routes ---
	e.POST("/inspections", inspectionHandler.Create, auth, inspectorOnly)
	e.GET("/inspections", inspectionHandler.List, auth)
	e.GET("/inspections/search/:license_plate", inspectionHandler.Search, auth)
	e.PUT("/inspections/:id", inspectionHandler.Update, auth, inspectorOnly)
	e.DELETE("/inspections/:id", inspectionHandler.Delete, auth, inspectorOnly)
	e.GET("/inspections/expiring/soon", inspectionHandler.ExpiringSoon, auth)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(db)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
