package app

import (
	"github.com/benbjohnson/clock"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/medora-health/medora_backend/config"
	"github.com/medora-health/medora_backend/internal/repo"
	"github.com/medora-health/medora_backend/internal/service/appointment"
	"github.com/medora-health/medora_backend/internal/service/billing"
	"github.com/medora-health/medora_backend/internal/service/doctor"
	"github.com/medora-health/medora_backend/internal/service/message"
	"github.com/medora-health/medora_backend/internal/service/notification"
	"github.com/medora-health/medora_backend/internal/service/patient"
	"github.com/medora-health/medora_backend/internal/service/report"
	"github.com/medora-health/medora_backend/internal/service/scheduling"
	"github.com/medora-health/medora_backend/pkg/email"
	redispkg "github.com/medora-health/medora_backend/pkg/redis"
	"github.com/medora-health/medora_backend/pkg/sms"
)

// ServiceModule provides all application service dependencies.
var ServiceModule = fx.Module("services",
	fx.Provide(
		ProvidePatientService,
		ProvideDoctorService,
		ProvideSchedulingService,
		ProvideAppointmentService,
		ProvideBillingService,
		ProvideMessageService,
		ProvideReportService,
		ProvideNotificationService,
	),
)

func ProvidePatientService(db *repo.Client, clk clock.Clock) patient.Service {
	return patient.New(db, clk)
}

func ProvideDoctorService(db *repo.Client, clk clock.Clock) doctor.Service {
	return doctor.New(db, clk)
}

func ProvideSchedulingService(db *repo.Client, clk clock.Clock) scheduling.Service {
	return scheduling.New(db, clk)
}

func ProvideAppointmentService(
	db *repo.Client,
	locker redispkg.Locker,
	nc *nats.Conn,
	clk clock.Clock,
	cfg *config.Config,
) appointment.Service {
	return appointment.New(db, locker, nc, clk, cfg.Scheduling)
}

func ProvideBillingService(db *repo.Client, clk clock.Clock) billing.Service {
	return billing.New(db, clk)
}

func ProvideMessageService(db *repo.Client, nc *nats.Conn) message.Service {
	return message.New(db, nc)
}

func ProvideReportService(db *repo.Client) report.Service {
	return report.New(db)
}

func ProvideNotificationService(db *repo.Client, smsCli *sms.Client, mailer *email.Client, cfg *config.Config) notification.Service {
	return notification.New(db, smsCli, mailer, cfg.SMS)
}
