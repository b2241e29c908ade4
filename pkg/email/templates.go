package email

import (
	"fmt"
	"time"
)

// AppointmentEmailData contains the data needed for appointment email templates.
type AppointmentEmailData struct {
	PatientName string
	DoctorName  string
	Email       string
	StartTime   time.Time
	Duration    time.Duration
	AppName     string
}

func (d AppointmentEmailData) appName() string {
	if d.AppName == "" {
		return "Medora"
	}
	return d.AppName
}

func (d AppointmentEmailData) patientName() string {
	if d.PatientName == "" {
		return "there"
	}
	return d.PatientName
}

// BuildAppointmentConfirmationEmail creates a confirmation email for a newly
// booked appointment.
func BuildAppointmentConfirmationEmail(data AppointmentEmailData) Message {
	appName := data.appName()
	firstName := data.patientName()
	when := data.StartTime.Format("Monday, 2 Jan 2006 at 15:04")

	subject := fmt.Sprintf("Your appointment with Dr. %s is booked", data.DoctorName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with Dr. %s has been booked.

When: %s
Duration: %d minutes

If you need to change or cancel this appointment, please contact the clinic.

Thanks,
The %s Team`,
		firstName, data.DoctorName, when, int(data.Duration.Minutes()), appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your appointment with <strong>Dr. %s</strong> has been booked.</p>
    <p style="background-color: #f3f4f6; padding: 15px; border-radius: 6px;">
        <strong>When:</strong> %s<br>
        <strong>Duration:</strong> %d minutes
    </p>
    <p>If you need to change or cancel this appointment, please contact the clinic.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, data.DoctorName, when, int(data.Duration.Minutes()), appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}

// BuildAppointmentCancellationEmail creates a cancellation notice.
func BuildAppointmentCancellationEmail(data AppointmentEmailData) Message {
	appName := data.appName()
	firstName := data.patientName()
	when := data.StartTime.Format("Monday, 2 Jan 2006 at 15:04")

	subject := fmt.Sprintf("Your appointment with Dr. %s was cancelled", data.DoctorName)

	textBody := fmt.Sprintf(`Hi %s,

Your appointment with Dr. %s scheduled for %s has been cancelled.

You can book a new appointment at any time.

Thanks,
The %s Team`,
		firstName, data.DoctorName, when, appName)

	htmlBody := fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h2 style="color: #2563eb;">Hi %s,</h2>
    <p>Your appointment with <strong>Dr. %s</strong> scheduled for %s has been <span style="color: #ef4444;">cancelled</span>.</p>
    <p>You can book a new appointment at any time.</p>
    <p style="color: #6b7280; font-size: 14px; margin-top: 30px;">Thanks,<br>The %s Team</p>
</body>
</html>`,
		firstName, data.DoctorName, when, appName)

	return Message{
		To:       []string{data.Email},
		Subject:  subject,
		TextBody: textBody,
		HTMLBody: htmlBody,
	}
}
