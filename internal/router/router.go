// Package router defines how HTTP routes are registered for the API.
package router

import (
	"github.com/labstack/echo/v4"

	"github.com/villastay/property-reservation/internal/handler"
	"github.com/villastay/property-reservation/internal/middleware"
)

// RegisterRoutes registers routes that do not belong to any feature
// group.  Currently only the health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers registration and login under /v1/auth, plus the
// JWT-protected /v1/me endpoint.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)

	auth := e.Group("/v1")
	auth.Use(middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
}

// RegisterBooking registers the reservation engine endpoints: booking
// creation, reserved-date enumeration, per-user listings and the
// expiration-sweep trigger.
func RegisterBooking(e *echo.Echo, b *handler.BookingHandler) {
	e.POST("/v1/reserve", b.Reserve)
	e.GET("/v1/properties/:id/reserved-dates", b.ReservedDates)
	e.GET("/v1/users/:id/reservations/active", b.ActiveReservations)
	e.GET("/v1/users/:id/reservations/past", b.PastReservations)
	e.POST("/v1/reservations/sweep", b.TriggerSweep)
}

// RegisterCatalog registers the read-only property catalog and the
// feedback endpoints.
func RegisterCatalog(e *echo.Echo, p *handler.PropertyHandler, f *handler.FeedbackHandler) {
	e.GET("/v1/properties", p.List)
	e.GET("/v1/properties/:id", p.Get)
	e.POST("/v1/feedback", f.Create)
	e.GET("/v1/properties/:id/feedback", f.ListByProperty)
}
