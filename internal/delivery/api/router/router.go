// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bizease/internal/delivery/api/middleware"
	"bizease/internal/delivery/api/router/handler"
	"bizease/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler        *handler.UserHandler
	ProfileHandler     *handler.ProfileHandler
	DashboardHandler   *handler.DashboardHandler
	CatalogHandler     *handler.CatalogHandler
	ApplicationHandler *handler.ApplicationHandler
	DocumentHandler    *handler.DocumentHandler
	ComplianceHandler  *handler.ComplianceHandler
	AuthMiddleware     *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler        *handler.UserHandler
	profileHandler     *handler.ProfileHandler
	dashboardHandler   *handler.DashboardHandler
	catalogHandler     *handler.CatalogHandler
	applicationHandler *handler.ApplicationHandler
	documentHandler    *handler.DocumentHandler
	complianceHandler  *handler.ComplianceHandler
	authMiddleware     *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:        params.UserHandler,
		profileHandler:     params.ProfileHandler,
		dashboardHandler:   params.DashboardHandler,
		catalogHandler:     params.CatalogHandler,
		applicationHandler: params.ApplicationHandler,
		documentHandler:    params.DocumentHandler,
		complianceHandler:  params.ComplianceHandler,
		authMiddleware:     params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public routes
	e.GET("/api/home", r.catalogHandler.Home)
	e.Any("/api/status/:application_number", r.applicationHandler.Status)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.Register)
		authGroup.POST("/login", r.userHandler.Login)
	}

	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.Authenticate)
	{
		apiV1.GET("/me", r.userHandler.Me)
		apiV1.GET("/profile", r.profileHandler.GetProfile)
		apiV1.PUT("/profile", r.profileHandler.UpsertProfile)
		apiV1.GET("/dashboard", r.dashboardHandler.Dashboard)

		apiV1.GET("/approval-types", r.catalogHandler.ListApprovalTypes)
		apiV1.GET("/approval-types/:id", r.catalogHandler.GetApprovalType)
		apiV1.GET("/schemes", r.catalogHandler.ListSchemes)
		apiV1.GET("/schemes/:id", r.catalogHandler.GetScheme)
		apiV1.GET("/news", r.catalogHandler.ListNews)
		apiV1.GET("/news/:id", r.catalogHandler.GetNews)
	}

	applications := apiV1.Group("/applications")
	{
		applications.GET("", r.applicationHandler.List)
		applications.POST("", r.applicationHandler.Create)
		applications.GET("/:id", r.applicationHandler.Get)
		applications.POST("/:id/submit", r.applicationHandler.Submit)
		applications.POST("/:id/documents", r.documentHandler.Upload)
		applications.GET("/:id/qr", r.applicationHandler.TrackingQR)
	}

	documents := apiV1.Group("/documents")
	{
		documents.GET("/:id/file", r.documentHandler.OpenFile)
		documents.POST("/:id/signatures", r.documentHandler.Sign)
	}

	compliances := apiV1.Group("/compliances")
	{
		compliances.GET("", r.complianceHandler.List)
		compliances.POST("", r.complianceHandler.Create)
		compliances.POST("/:id/complete", r.complianceHandler.Complete)
	}

	// Administrator routes
	admin := apiV1.Group("/admin")
	admin.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		admin.POST("/approval-types", r.catalogHandler.CreateApprovalType)
		admin.PUT("/approval-types/:id", r.catalogHandler.UpdateApprovalType)
		admin.POST("/schemes", r.catalogHandler.CreateScheme)
		admin.PUT("/schemes/:id", r.catalogHandler.UpdateScheme)
		admin.POST("/news", r.catalogHandler.CreateNews)
		admin.PUT("/news/:id", r.catalogHandler.UpdateNews)
		admin.POST("/news/:id/image", r.catalogHandler.UploadNewsImage)
		admin.POST("/applications/:id/review", r.applicationHandler.Review)
		admin.POST("/reminders/sweep", r.complianceHandler.SweepReminders)
	}
}
