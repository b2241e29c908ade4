package router

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"

	"github.com/medora-health/medora_backend/config"
	"github.com/medora-health/medora_backend/internal/api/http/handler"
	"github.com/medora-health/medora_backend/internal/service/appointment"
	"github.com/medora-health/medora_backend/internal/service/billing"
	"github.com/medora-health/medora_backend/internal/service/doctor"
	"github.com/medora-health/medora_backend/internal/service/message"
	"github.com/medora-health/medora_backend/internal/service/patient"
	"github.com/medora-health/medora_backend/internal/service/report"
	"github.com/medora-health/medora_backend/internal/service/scheduling"
)

// Module provides the Router to the fx graph.
var Module = fx.Module("router", fx.Provide(NewRouter))

type Params struct {
	fx.In

	Cfg            *config.Config
	PatientSvc     patient.Service
	DoctorSvc      doctor.Service
	SchedulingSvc  scheduling.Service
	AppointmentSvc appointment.Service
	BillingSvc     billing.Service
	MessageSvc     message.Service
	ReportSvc      report.Service
}

type Router struct {
	p Params
}

func NewRouter(p Params) *Router {
	return &Router{p: p}
}

func (r *Router) Register(app *fiber.App) {
	r.registerSystemRoutes(app)

	patientH := handler.NewPatientHandler(r.p.PatientSvc)
	doctorH := handler.NewDoctorHandler(r.p.DoctorSvc)
	scheduleH := handler.NewScheduleHandler(r.p.SchedulingSvc)
	appointmentH := handler.NewAppointmentHandler(r.p.AppointmentSvc)
	billingH := handler.NewBillingHandler(r.p.BillingSvc)
	messageH := handler.NewMessageHandler(r.p.MessageSvc)
	reportH := handler.NewReportHandler(r.p.ReportSvc)

	api := app.Group("/api/v1")

	r.registerPatientRoutes(api, patientH, billingH)
	r.registerDoctorRoutes(api, doctorH)
	r.registerScheduleRoutes(api, scheduleH)
	r.registerAppointmentRoutes(api, appointmentH)
	r.registerBillingRoutes(api, billingH)
	r.registerMessageRoutes(api, messageH)
	r.registerReportRoutes(api, reportH)
}

func (r *Router) registerSystemRoutes(app *fiber.App) {
	app.Get(healthcheck.LivenessEndpoint, healthcheck.New())
	app.Get(healthcheck.ReadinessEndpoint, healthcheck.New())
	app.Get(healthcheck.StartupEndpoint, healthcheck.New())

	if r.p.Cfg.Observability.Enabled && r.p.Cfg.Observability.Metrics.Enabled {
		path := r.p.Cfg.Observability.Metrics.Path
		if path == "" {
			path = "/metrics"
		}
		app.Get(path, adaptor.HTTPHandler(promhttp.Handler()))
	}
}
