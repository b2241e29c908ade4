package appointment

import "errors"

var (
	ErrNotFound          = errors.New("appointment not found")
	ErrDoctorNotFound    = errors.New("doctor not found")
	ErrPatientNotFound   = errors.New("patient not found")
	ErrInvalidTimeRange  = errors.New("end time must be after start time")
	ErrPastTime          = errors.New("appointment time is in the past")
	ErrConflict          = errors.New("appointment overlaps an existing appointment for this doctor")
	ErrInvalidTransition = errors.New("status transition not allowed")
	ErrDoctorBusy        = errors.New("another booking for this doctor is in progress")
	ErrSlotNotAvailable  = errors.New("time slot is not available for booking")
)
