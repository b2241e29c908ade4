package billing

import "errors"

var (
	ErrChargeNotFound  = errors.New("billing charge not found")
	ErrPatientNotFound = errors.New("patient not found")
	ErrInvalidAmount   = errors.New("amount must be positive")
	ErrAlreadyPaid     = errors.New("charge is already paid")
)
