package message

import "errors"

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrEmptyContent    = errors.New("message content is empty")
	ErrInvalidSender   = errors.New("exactly one of patient or doctor sender is required")
	ErrSenderNotFound  = errors.New("sender not found")
)
