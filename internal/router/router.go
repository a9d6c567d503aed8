// Package router wires HTTP routes to their handlers and middleware.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/giarts/atelie-api/internal/auth"
	"github.com/giarts/atelie-api/internal/handler"
	"github.com/giarts/atelie-api/internal/middleware"
)

// Handlers bundles every route handler the API exposes.
type Handlers struct {
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Products      *handler.ProductHandler
	Events        *handler.EventHandler
	ProductImages *handler.ProductImageHandler
	EventImages   *handler.EventImageHandler
}

// Middleware bundles the cross-cutting middleware applied per route group.
type Middleware struct {
	Authenticate echo.MiddlewareFunc
	RateLimit    echo.MiddlewareFunc
	Cache        echo.MiddlewareFunc
}

// Register attaches all routes. Authenticate runs globally so that a valid
// bearer token yields a principal on every route; enforcement happens per
// group via RequireAuth and RequireRole.
func Register(e *echo.Echo, h Handlers, m Middleware) {
	e.Use(m.Authenticate)

	e.GET("/healthz", handler.Health)

	// Login and register are the only endpoints guests hammer, so the token
	// bucket sits on this group alone.
	ag := e.Group("/auth", m.RateLimit)
	ag.POST("/login", h.Auth.Login)
	ag.POST("/register", h.Auth.Register)

	ug := e.Group("/users", middleware.RequireAuth())
	ug.GET("", h.Users.List)
	ug.GET("/:id", h.Users.Get)
	ug.PUT("/:id", h.Users.Update)
	ug.DELETE("/:id", h.Users.Delete)

	admin := middleware.RequireRole(auth.RoleAdmin)

	pg := e.Group("/products")
	pg.GET("", h.Products.List, m.Cache)
	pg.GET("/:id", h.Products.Get, m.Cache)
	pg.POST("", h.Products.Create, admin)
	pg.PUT("/:id", h.Products.Update, admin)
	pg.DELETE("/:id", h.Products.Delete, admin)
	pg.GET("/:id/images", h.ProductImages.List, m.Cache)
	pg.POST("/:id/images", h.ProductImages.Upload, admin)
	pg.DELETE("/:id/images/:imageId", h.ProductImages.Delete, admin)

	eg := e.Group("/events")
	eg.GET("", h.Events.List, m.Cache)
	eg.GET("/:id", h.Events.Get, m.Cache)
	eg.POST("", h.Events.Create, admin)
	eg.PUT("/:id", h.Events.Update, admin)
	eg.DELETE("/:id", h.Events.Delete, admin)
	eg.GET("/:id/images", h.EventImages.List, m.Cache)
	eg.POST("/:id/images", h.EventImages.Upload, admin)
	eg.DELETE("/:id/images/:imageId", h.EventImages.Delete, admin)
}
