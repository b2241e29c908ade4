package router

import (
	"github.com/gofiber/fiber/v3"

	"github.com/medora-health/medora_backend/internal/api/http/handler"
)

func (r *Router) registerPatientRoutes(api fiber.Router, ph *handler.PatientHandler, bh *handler.BillingHandler) {
	patients := api.Group("/patients")

	patients.Get("/", ph.List)
	patients.Post("/", ph.Create)

	p := patients.Group("/:id")
	p.Get("/", ph.GetByID)
	p.Patch("/", ph.Update)
	p.Delete("/", ph.Delete)

	p.Get("/records", ph.ListRecords)
	p.Post("/records", ph.AddRecord)
	p.Get("/prescriptions", ph.ListPrescriptions)
	p.Post("/prescriptions", ph.AddPrescription)
	p.Get("/vaccinations", ph.ListVaccinations)
	p.Post("/vaccinations", ph.AddVaccination)
	p.Get("/medications", ph.ListMedications)
	p.Post("/medications", ph.AddMedication)
	p.Get("/treatment-plans", ph.ListTreatmentPlans)
	p.Post("/treatment-plans", ph.AddTreatmentPlan)

	p.Get("/balance", bh.OutstandingBalance)
}
