package notification

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/medora-health/medora_backend/config"
	"github.com/medora-health/medora_backend/internal/repo"
	"github.com/medora-health/medora_backend/pkg/email"
	"github.com/medora-health/medora_backend/pkg/sms"
)

// Service sends appointment notifications to patients. All sends are
// best-effort: a delivery failure is logged and never propagated to the
// caller, so booking flows are not blocked by a provider outage.
type Service interface {
	AppointmentBooked(ctx context.Context, apptID uuid.UUID)
	AppointmentCancelled(ctx context.Context, apptID uuid.UUID)
}

type notificationService struct {
	db     *repo.Client
	smsCli *sms.Client
	mailer *email.Client
	cfg    config.SMSConfig
}

func New(db *repo.Client, smsCli *sms.Client, mailer *email.Client, cfg config.SMSConfig) Service {
	return &notificationService{db: db, smsCli: smsCli, mailer: mailer, cfg: cfg}
}

func (s *notificationService) AppointmentBooked(ctx context.Context, apptID uuid.UUID) {
	appt, patient, doctor, err := s.load(ctx, apptID)
	if err != nil {
		slog.Warn("notification: load appointment failed", "appointment_id", apptID, "err", err)
		return
	}

	s.sendSMS(ctx, patient.Phone, s.cfg.SMSIR.ConfirmTemplateID, map[string]string{
		"DOCTOR": doctor.Name,
		"DATE":   appt.StartTime.Format("2006-01-02 15:04"),
	})

	if patient.Email != "" {
		msg := email.BuildAppointmentConfirmationEmail(email.AppointmentEmailData{
			PatientName: patient.Name,
			DoctorName:  doctor.Name,
			Email:       patient.Email,
			StartTime:   appt.StartTime,
			Duration:    time.Duration(appt.DurationMinutes) * time.Minute,
		})
		if err := s.mailer.Send(ctx, msg); err != nil {
			slog.Warn("notification: confirmation email failed", "appointment_id", apptID, "err", err)
		}
	}
}

func (s *notificationService) AppointmentCancelled(ctx context.Context, apptID uuid.UUID) {
	appt, patient, doctor, err := s.load(ctx, apptID)
	if err != nil {
		slog.Warn("notification: load appointment failed", "appointment_id", apptID, "err", err)
		return
	}

	s.sendSMS(ctx, patient.Phone, s.cfg.SMSIR.CancelTemplateID, map[string]string{
		"DOCTOR": doctor.Name,
		"DATE":   appt.StartTime.Format("2006-01-02 15:04"),
	})

	if patient.Email != "" {
		msg := email.BuildAppointmentCancellationEmail(email.AppointmentEmailData{
			PatientName: patient.Name,
			DoctorName:  doctor.Name,
			Email:       patient.Email,
			StartTime:   appt.StartTime,
		})
		if err := s.mailer.Send(ctx, msg); err != nil {
			slog.Warn("notification: cancellation email failed", "appointment_id", apptID, "err", err)
		}
	}
}

func (s *notificationService) load(ctx context.Context, apptID uuid.UUID) (*repo.Appointment, *repo.Patient, *repo.Doctor, error) {
	appt, err := s.db.Appointment.Get(ctx, apptID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get appointment: %w", err)
	}
	patient, err := s.db.Patient.Get(ctx, appt.PatientID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get patient: %w", err)
	}
	doctor, err := s.db.Doctor.Get(ctx, appt.DoctorID)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("get doctor: %w", err)
	}
	return appt, patient, doctor, nil
}

func (s *notificationService) sendSMS(ctx context.Context, phone, templateID string, params map[string]string) {
	if phone == "" || templateID == "" || !s.smsCli.IsEnabled() {
		return
	}
	if err := s.smsCli.SendTemplate(ctx, phone, templateID, params); err != nil {
		slog.Warn("notification: sms failed", "template_id", templateID, "err", err)
	}
}
