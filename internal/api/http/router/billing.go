package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medora-health/medora_backend/internal/api/http/handler"
)

func (r *Router) registerBillingRoutes(api fiber.Router, bh *handler.BillingHandler) {
	b := api.Group("/billing")

	b.Get("/", bh.List)
	b.Post("/", bh.CreateCharge)
	b.Get("/:id", bh.GetByID)
	b.Patch("/:id/pay", bh.MarkPaid)
}
