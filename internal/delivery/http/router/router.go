// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"quickdash/internal/delivery/http/middleware"
	"quickdash/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	LocationHandler *handler.LocationHandler
	CartHandler     *handler.CartHandler
	AddressHandler  *handler.AddressHandler
	AuthHandler     *handler.AuthHandler
	PickerHandler   *handler.PickerHandler
	SessionHandler  *handler.SessionHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	locationHandler *handler.LocationHandler
	cartHandler     *handler.CartHandler
	addressHandler  *handler.AddressHandler
	authHandler     *handler.AuthHandler
	pickerHandler   *handler.PickerHandler
	sessionHandler  *handler.SessionHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		locationHandler: params.LocationHandler,
		cartHandler:     params.CartHandler,
		addressHandler:  params.AddressHandler,
		authHandler:     params.AuthHandler,
		pickerHandler:   params.PickerHandler,
		sessionHandler:  params.SessionHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Session routes never reach the backend
	e.GET("/session", r.sessionHandler.GetSession)
	e.POST("/session/reload", r.sessionHandler.Reload)
	e.GET("/notifications", r.sessionHandler.GetNotifications)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/otp", r.authHandler.SendOTP)
		authGroup.POST("/verify", r.authHandler.VerifyOTP)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/status", r.authHandler.Status)
	}

	// Everything below may call the backend, so the token is refreshed first
	locationGroup := e.Group("/location", r.authMiddleware.EnsureFresh)
	{
		locationGroup.GET("", r.locationHandler.GetLocation)
		locationGroup.GET("/display", r.locationHandler.GetDisplayLabel)
		locationGroup.PUT("/browsing", r.locationHandler.SetBrowsing)
		locationGroup.PUT("/delivery", r.locationHandler.SetDelivery)
		locationGroup.DELETE("", r.locationHandler.ClearLocation)
		locationGroup.POST("/detect", r.locationHandler.DetectLocation)
	}

	e.GET("/warehouse", r.locationHandler.GetWarehouse, r.authMiddleware.EnsureFresh)

	pickerGroup := e.Group("/picker", r.authMiddleware.EnsureFresh)
	{
		pickerGroup.POST("", r.pickerHandler.Open)
		pickerGroup.GET("/:id", r.pickerHandler.Get)
		pickerGroup.PUT("/:id/pin", r.pickerHandler.MovePin)
		pickerGroup.POST("/:id/confirm", r.pickerHandler.Confirm)
		pickerGroup.DELETE("/:id", r.pickerHandler.Cancel)
	}

	// Guests can read the empty cart and its badge
	cartGroup := e.Group("/cart", r.authMiddleware.EnsureFresh)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.GET("/count", r.cartHandler.GetCount)
		cartGroup.GET("/status", r.cartHandler.GetStatus)
		cartGroup.POST("/validate", r.cartHandler.Validate)
		cartGroup.POST("/items", r.cartHandler.AddItem, r.authMiddleware.RequireSignIn)
		cartGroup.DELETE("/items/:id", r.cartHandler.RemoveItem, r.authMiddleware.RequireSignIn)
		cartGroup.DELETE("", r.cartHandler.ClearCart, r.authMiddleware.RequireSignIn)
		cartGroup.POST("/conflict", r.cartHandler.ResolveConflict, r.authMiddleware.RequireSignIn)
	}

	addressGroup := e.Group("/addresses", r.authMiddleware.EnsureFresh, r.authMiddleware.RequireSignIn)
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressGroup.POST("/:id/select", r.addressHandler.SelectAddress)
	}
}
