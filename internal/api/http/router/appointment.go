package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medora-health/medora_backend/internal/api/http/handler"
)

func (r *Router) registerAppointmentRoutes(api fiber.Router, ah *handler.AppointmentHandler) {
	appts := api.Group("/appointments")

	appts.Get("/", ah.List)
	appts.Post("/", ah.Book)

	a := appts.Group("/:id")
	a.Get("/", ah.GetByID)
	a.Patch("/reschedule", ah.Reschedule)
	a.Patch("/confirm", ah.Confirm)
	a.Patch("/complete", ah.Complete)
	a.Patch("/cancel", ah.Cancel)
}
