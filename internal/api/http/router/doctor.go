package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medora-health/medora_backend/internal/api/http/handler"
)

func (r *Router) registerDoctorRoutes(api fiber.Router, dh *handler.DoctorHandler) {
	doctors := api.Group("/doctors")

	doctors.Get("/", dh.List)
	doctors.Post("/", dh.Create)

	d := doctors.Group("/:id")
	d.Get("/", dh.GetByID)
	d.Patch("/", dh.Update)
	d.Delete("/", dh.Delete)

	departments := api.Group("/departments")
	departments.Get("/", dh.ListDepartments)
	departments.Post("/", dh.CreateDepartment)
	departments.Delete("/:id", dh.DeleteDepartment)
}
