// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"kuliner/internal/delivery/http/middleware"
	"kuliner/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	ProfileHandler    *handler.ProfileHandler
	RestaurantHandler *handler.RestaurantHandler
	ReviewHandler     *handler.ReviewHandler
	PlaceListHandler  *handler.PlaceListHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	profileHandler    *handler.ProfileHandler
	restaurantHandler *handler.RestaurantHandler
	reviewHandler     *handler.ReviewHandler
	placeListHandler  *handler.PlaceListHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		profileHandler:    params.ProfileHandler,
		restaurantHandler: params.RestaurantHandler,
		reviewHandler:     params.ReviewHandler,
		placeListHandler:  params.PlaceListHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.userHandler.RegisterUser)
		authGroup.POST("/login", r.userHandler.Login)
		authGroup.POST("/google", r.userHandler.GoogleLogin)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Public catalog routes
	restaurantGroup := e.Group("/restaurants")
	{
		restaurantGroup.GET("", r.restaurantHandler.ListRestaurants)
		restaurantGroup.GET("/:id", r.restaurantHandler.GetRestaurant)
		restaurantGroup.GET("/:id/reviews", r.restaurantHandler.ListRestaurantReviews)
	}

	// Review submission and likes require authentication
	restaurantGroup.POST("/:id/reviews", r.reviewHandler.SubmitReview, r.authMiddleware.Authenticate)

	reviewGroup := e.Group("/reviews", r.authMiddleware.Authenticate)
	{
		reviewGroup.GET("/:id", r.reviewHandler.GetReview)
		reviewGroup.POST("/:id/like", r.reviewHandler.ToggleLike)
		reviewGroup.GET("/:id/liked", r.reviewHandler.HasLiked)
	}

	// Profile routes for the authenticated user
	meGroup := e.Group("/me")
	meGroup.Use(r.authMiddleware.Authenticate)
	{
		meGroup.GET("", r.profileHandler.GetProfile)
		meGroup.PATCH("", r.profileHandler.UpdateProfile)
		meGroup.GET("/reviews", r.profileHandler.GetMyReviews)
		meGroup.GET("/level", r.profileHandler.GetLevelPage)
	}

	// Bookmark list routes; the list is keyed by the authenticated owner
	placeListGroup := e.Group("/placelist")
	placeListGroup.Use(r.authMiddleware.Authenticate)
	{
		placeListGroup.GET("", r.placeListHandler.GetPlaceList)
		placeListGroup.POST("", r.placeListHandler.CreatePlaceList)
		placeListGroup.POST("/restaurants/:restaurantId", r.placeListHandler.AddRestaurant)
		placeListGroup.DELETE("/restaurants/:restaurantId", r.placeListHandler.RemoveRestaurant)
		placeListGroup.GET("/restaurants/:restaurantId", r.placeListHandler.IsBookmarked)
		placeListGroup.GET("/qr", r.placeListHandler.ShareQR)
	}
}
