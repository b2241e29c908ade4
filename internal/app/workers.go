package app

import (
	"context"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/fx"

	"github.com/medora-health/medora_backend/internal/service/notification"
)

// WorkerModule registers all NATS event workers.
var WorkerModule = fx.Module("workers",
	fx.Invoke(RegisterWorkers),
)

type WorkerParams struct {
	fx.In

	Lc       fx.Lifecycle
	NC       *nats.Conn
	NotifSvc notification.Service
}

func RegisterWorkers(p WorkerParams) {
	p.Lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			startNotificationWorker(p.NC, p.NotifSvc)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			// Drain handled by ProvideNatsClient
			return nil
		},
	})
}

// ---------------------------------------------------------------------------
// notification_worker
// ---------------------------------------------------------------------------

func startNotificationWorker(nc *nats.Conn, notifSvc notification.Service) {
	_, err := nc.Subscribe("medora.appointment.created.*", func(msg *nats.Msg) {
		apptID, ok := appointmentIDFromMsg(msg)
		if !ok {
			return
		}
		notifSvc.AppointmentBooked(context.Background(), apptID)
	})
	if err != nil {
		slog.Error("notification_worker: subscribe appointment.created failed", "err", err)
	}

	_, err = nc.Subscribe("medora.appointment.cancelled.*", func(msg *nats.Msg) {
		apptID, ok := appointmentIDFromMsg(msg)
		if !ok {
			return
		}
		notifSvc.AppointmentCancelled(context.Background(), apptID)
	})
	if err != nil {
		slog.Error("notification_worker: subscribe appointment.cancelled failed", "err", err)
	}

	slog.Info("notification_worker: started")
}

func appointmentIDFromMsg(msg *nats.Msg) (uuid.UUID, bool) {
	apptID, err := uuid.Parse(strings.TrimSpace(string(msg.Data)))
	if err != nil {
		slog.Warn("notification_worker: bad appointment id", "subject", msg.Subject)
		return uuid.Nil, false
	}
	return apptID, true
}
