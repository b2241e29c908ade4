package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medora-health/medora_backend/internal/api/http/handler"
)

func (r *Router) registerScheduleRoutes(api fiber.Router, sh *handler.ScheduleHandler) {
	d := api.Group("/doctors/:doctorId")

	d.Get("/slots", sh.ListSlots)
	d.Post("/slots", sh.CreateSlot)
	d.Post("/slots/generate", sh.GenerateSlots)
	d.Delete("/slots/:id", sh.DeleteSlot)

	d.Get("/availability", sh.ListAvailability)
	d.Post("/availability", sh.CreateAvailability)
	d.Delete("/availability/:id", sh.DeleteAvailability)
}
