// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"directory/internal/delivery/http/middleware"
	"directory/internal/delivery/http/router/handler"
	"directory/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	BusinessHandler *handler.BusinessHandler
	ReviewHandler   *handler.ReviewHandler
	CategoryHandler *handler.CategoryHandler
	OwnerHandler    *handler.OwnerHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler     *handler.UserHandler
	businessHandler *handler.BusinessHandler
	reviewHandler   *handler.ReviewHandler
	categoryHandler *handler.CategoryHandler
	ownerHandler    *handler.OwnerHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:     params.UserHandler,
		businessHandler: params.BusinessHandler,
		reviewHandler:   params.ReviewHandler,
		categoryHandler: params.CategoryHandler,
		ownerHandler:    params.OwnerHandler,
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
		authGroup.POST("/register/user", r.userHandler.RegisterUser)
		authGroup.POST("/register/owner", r.userHandler.RegisterOwner)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/refresh", r.userHandler.Refresh)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Public directory. Optional auth lets owners and admins see their own
	// non-approved listings through the same endpoints.
	businessGroup := e.Group("/businesses", r.authMiddleware.AuthenticateOptional)
	{
		businessGroup.GET("", r.businessHandler.List)
		businessGroup.GET("/nearby", r.businessHandler.ListNearby)
		businessGroup.GET("/slug/:slug", r.businessHandler.GetBySlug)
		businessGroup.GET("/:id", r.businessHandler.GetByID)
		businessGroup.GET("/:id/qr", r.businessHandler.QRCode)
	}

	businessMutGroup := e.Group("/businesses", r.authMiddleware.Authenticate)
	{
		businessMutGroup.POST("", r.businessHandler.Create)
		businessMutGroup.PUT("/:id", r.businessHandler.Update)
		businessMutGroup.DELETE("/:id", r.businessHandler.Delete)
	}

	// Reviews
	e.GET("/reviews/business/:businessId", r.reviewHandler.ListByBusiness)
	reviewGroup := e.Group("/reviews", r.authMiddleware.Authenticate)
	{
		reviewGroup.POST("/business/:businessId", r.reviewHandler.Create)
		reviewGroup.PUT("/:id", r.reviewHandler.Update)
		reviewGroup.DELETE("/:id", r.reviewHandler.Delete)
		reviewGroup.POST("/:id/reactions", r.reviewHandler.AddReaction)
		reviewGroup.DELETE("/:id/reactions", r.reviewHandler.RemoveReaction)
	}

	// Categories: public read, admin write
	e.GET("/categories", r.categoryHandler.List)
	e.GET("/categories/:slug", r.categoryHandler.GetBySlug)
	categoryGroup := e.Group("/categories", r.authMiddleware.Authenticate)
	{
		categoryGroup.POST("", r.categoryHandler.Create)
		categoryGroup.PUT("/:id", r.categoryHandler.Update)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete)
	}

	// Authenticated user routes
	userGroup := e.Group("/users", r.authMiddleware.Authenticate)
	{
		userGroup.GET("/profile", r.userHandler.GetProfile)
		userGroup.GET("/favorites", r.userHandler.ListFavorites)
		userGroup.POST("/favorites/:businessId", r.userHandler.AddFavorite)
		userGroup.DELETE("/favorites/:businessId", r.userHandler.RemoveFavorite)
	}

	// Owner dashboard routes
	ownerGroup := e.Group("/owner", r.authMiddleware.Authenticate)
	{
		ownerGroup.GET("/businesses", r.businessHandler.ListOwned)
		ownerGroup.GET("/stats", r.ownerHandler.Stats)
		ownerGroup.POST("/reviews/:id/respond", r.ownerHandler.Respond)
		ownerGroup.PUT("/reviews/:id/respond", r.ownerHandler.UpdateResponse)
		ownerGroup.DELETE("/reviews/:id/respond", r.ownerHandler.DeleteResponse)
	}

	// Admin moderation console
	adminGroup := e.Group("/admin", r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/pending", r.adminHandler.ListPending)
		adminGroup.PUT("/approve/:id", r.adminHandler.Approve)
		adminGroup.PUT("/reject/:id", r.adminHandler.Reject)
		adminGroup.PUT("/deactivate/:id", r.adminHandler.Deactivate)
		adminGroup.GET("/reviews", r.adminHandler.ListReviews)
		adminGroup.DELETE("/reviews/:id", r.adminHandler.DeleteReview)
		adminGroup.GET("/users", r.adminHandler.ListUsers)
		adminGroup.PUT("/users/:id/ban", r.adminHandler.SetUserBanned)
		adminGroup.GET("/stats", r.adminHandler.Stats)
	}
}
