package email

import (
	"strings"
	"testing"
	"time"
)

func TestBuildAppointmentConfirmationEmail(t *testing.T) {
	data := AppointmentEmailData{
		PatientName: "Jordan Reyes",
		DoctorName:  "Okafor",
		Email:       "jordan@example.com",
		StartTime:   time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
		Duration:    45 * time.Minute,
	}

	msg := BuildAppointmentConfirmationEmail(data)

	if len(msg.To) != 1 || msg.To[0] != "jordan@example.com" {
		t.Errorf("To = %v, want [jordan@example.com]", msg.To)
	}
	if !strings.Contains(msg.Subject, "Dr. Okafor") {
		t.Errorf("subject missing doctor name: %q", msg.Subject)
	}
	if !strings.Contains(msg.TextBody, "Jordan Reyes") {
		t.Errorf("text body missing patient name")
	}
	if !strings.Contains(msg.TextBody, "45 minutes") {
		t.Errorf("text body missing duration: %q", msg.TextBody)
	}
	if !strings.Contains(msg.HTMLBody, "Dr. Okafor") {
		t.Errorf("html body missing doctor name")
	}
}

func TestBuildAppointmentCancellationEmail(t *testing.T) {
	data := AppointmentEmailData{
		DoctorName: "Okafor",
		Email:      "jordan@example.com",
		StartTime:  time.Date(2026, 3, 10, 14, 30, 0, 0, time.UTC),
	}

	msg := BuildAppointmentCancellationEmail(data)

	if !strings.Contains(msg.Subject, "cancelled") {
		t.Errorf("subject missing cancelled: %q", msg.Subject)
	}
	// Empty patient name falls back to a generic greeting.
	if !strings.Contains(msg.TextBody, "Hi there,") {
		t.Errorf("text body missing fallback greeting: %q", msg.TextBody)
	}
	if !strings.Contains(msg.HTMLBody, "cancelled") {
		t.Errorf("html body missing cancelled")
	}
}
