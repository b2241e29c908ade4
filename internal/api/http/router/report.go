package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medora-health/medora_backend/internal/api/http/handler"
)

func (r *Router) registerReportRoutes(api fiber.Router, rh *handler.ReportHandler) {
	reports := api.Group("/reports")

	reports.Get("/summary", rh.Summary)
}
