// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"vouch/internal/delivery/http/middleware"
	"vouch/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	KYCHandler      *handler.KYCHandler
	BusinessHandler *handler.BusinessHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	kycHandler      *handler.KYCHandler
	businessHandler *handler.BusinessHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		kycHandler:      params.KYCHandler,
		businessHandler: params.BusinessHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/email-verification/confirm", r.authHandler.ConfirmEmail)
		authGroup.POST("/password-reset/request", r.authHandler.RequestPasswordReset)
		authGroup.POST("/password-reset/confirm", r.authHandler.ConfirmPasswordReset)

		// Issuing an email verification token requires a logged-in caller
		authGroup.POST("/email-verification/request",
			r.authHandler.RequestEmailVerification, r.authMiddleware.Authenticate)
	}

	// User routes that require authentication
	userGroup := e.Group("/user")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.authHandler.GetProfile)
	}

	// Verification lifecycle routes
	kycGroup := e.Group("/kyc")
	kycGroup.Use(r.authMiddleware.Authenticate)
	{
		kycGroup.GET("/document-types", r.kycHandler.ListDocumentTypes)
		kycGroup.GET("/status", r.kycHandler.GetVerificationStatus)
		kycGroup.POST("/submissions", r.kycHandler.CreateSubmission)
		kycGroup.GET("/submissions/:id", r.kycHandler.GetSubmission)
		kycGroup.POST("/submissions/:id/documents", r.kycHandler.UploadDocument)
		kycGroup.POST("/submissions/:id/submit", r.kycHandler.SubmitForReview)
	}

	// Business registry routes
	businessGroup := e.Group("/business")
	businessGroup.Use(r.authMiddleware.Authenticate)
	{
		businessGroup.POST("", r.businessHandler.CreateBusiness)
		businessGroup.GET("", r.businessHandler.ListOwnedBusinesses)
		businessGroup.GET("/:id", r.businessHandler.GetBusiness)
		businessGroup.POST("/:id/owners", r.businessHandler.AddOwner)
		businessGroup.DELETE("/:id/owners/:userId", r.businessHandler.RemoveOwner)
		businessGroup.POST("/:id/submissions", r.businessHandler.CreateKYBSubmission)
	}

	// Review and catalog administration, gated on the admin capability
	adminGroup := e.Group("/admin/kyc")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireAdmin)
	{
		adminGroup.POST("/submissions/:id/resolve", r.adminHandler.ResolveSubmission)
		adminGroup.POST("/submissions/bulk-review", r.adminHandler.BulkReview)
		adminGroup.POST("/documents/:id/review", r.adminHandler.ReviewDocument)
		adminGroup.GET("/document-types", r.adminHandler.ListAllDocumentTypes)
		adminGroup.POST("/document-types", r.adminHandler.CreateDocumentType)
		adminGroup.PUT("/document-types/:id", r.adminHandler.UpdateDocumentType)
		adminGroup.DELETE("/document-types/:id", r.adminHandler.DeleteDocumentType)
	}
}
