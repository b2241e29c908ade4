package doctor

import "errors"

var (
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrDepartmentNotFound  = errors.New("department not found")
	ErrDepartmentNotEmpty  = errors.New("department still has doctors assigned")
	ErrDuplicateDepartment = errors.New("department name already exists")
	ErrInvalidName         = errors.New("name is required")
)
