package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes wires the server's handlers into the echo router under
// /api/v1, plus the unversioned health probe.
func RegisterRoutes(e *echo.Echo, s *Server) {
	e.GET("/health", func(ctx echo.Context) error {
		return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
	})

	api := e.Group("/api/v1")

	api.POST("/quotes", s.GetQuote)

	api.POST("/orders", s.CreateOrder)
	api.GET("/orders", s.GetOrders)
	api.GET("/orders/:id", s.GetOrder)
	api.PUT("/orders/:id", s.UpdateOrder)
	api.PATCH("/orders/:id/status", s.ChangeOrderStatus)
	api.DELETE("/orders/:id", s.DeleteOrder)
	api.POST("/orders/:id/resend-confirmation", s.ResendConfirmation)

	api.GET("/customers", s.GetCustomers)
	api.GET("/dashboard", s.GetDashboard)

	api.GET("/pricing-config", s.GetPricingConfig)
	api.PUT("/pricing-config", s.SavePricingConfig)
}
