// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"voltstore/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProductHandler *handler.ProductHandler
	OrderHandler   *handler.OrderHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	productHandler *handler.ProductHandler
	orderHandler   *handler.OrderHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		productHandler: params.ProductHandler,
		orderHandler:   params.OrderHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Catalog routes. The literal subpaths are registered before the :id
	// parameter so "category" and "brand" are never parsed as product IDs.
	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/category/:category", r.productHandler.ListByCategory)
		productGroup.GET("/brand/:brand", r.productHandler.ListByBrand)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.POST("", r.productHandler.Create)
		productGroup.PUT("/:id", r.productHandler.Update)
		productGroup.DELETE("/:id", r.productHandler.Delete)
	}

	// Order routes
	orderGroup := api.Group("/orders")
	{
		orderGroup.POST("", r.orderHandler.Place)
		orderGroup.GET("/user/:userID", r.orderHandler.ListByUser)
		orderGroup.GET("/status/:status", r.orderHandler.ListByStatus)
		orderGroup.PUT("/:id/status", r.orderHandler.UpdateStatus)
	}
}
