package router

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/hotel-reservation/internal/handler"
)

// Handlers bundles the per-entity handlers registered by Register.
type Handlers struct {
	Customers    *handler.CustomerHandler
	Rooms        *handler.RoomHandler
	Reservations *handler.ReservationHandler
	Services     *handler.ExtrasHandler
}

// RegisterRoutes registers routes that carry no entity logic. Currently
// it exposes only a health check for load balancers and monitoring.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// Register wires the entity CRUD routes under /v1. The optional cache
// middleware is applied to read endpoints only; writes always reach the
// database.
func Register(e *echo.Echo, h Handlers, cache echo.MiddlewareFunc) {
	g := e.Group("/v1")

	g.GET("/customers", h.Customers.List, cache)
	g.GET("/customers/:id", h.Customers.Get, cache)
	g.POST("/customers", h.Customers.Create)
	g.PATCH("/customers/:id", h.Customers.Update)
	g.DELETE("/customers/:id", h.Customers.Delete)

	g.GET("/rooms", h.Rooms.List, cache)
	g.GET("/rooms/:id", h.Rooms.Get, cache)
	g.POST("/rooms", h.Rooms.Create)
	g.PATCH("/rooms/:id", h.Rooms.Update)
	g.DELETE("/rooms/:id", h.Rooms.Delete)

	g.GET("/reservations", h.Reservations.List, cache)
	g.GET("/reservations/:id", h.Reservations.Get, cache)
	g.POST("/reservations", h.Reservations.Create)
	g.PATCH("/reservations/:id", h.Reservations.Update)
	g.DELETE("/reservations/:id", h.Reservations.Delete)

	g.GET("/services", h.Services.List, cache)
	g.GET("/services/:id", h.Services.Get, cache)
	g.POST("/services", h.Services.Create)
	g.PATCH("/services/:id", h.Services.Update)
	g.DELETE("/services/:id", h.Services.Delete)
}
