package services

import "errors"

// Domain errors returned by services and translated to HTTP statuses in
// the handlers. Anything else that escapes a service is treated as an
// internal error and never echoed to the client verbatim.
var (
	ErrNotFound            = errors.New("resource not found")
	ErrInvalidInput        = errors.New("invalid input")
	ErrAccessDenied        = errors.New("access denied")
	ErrEmailTaken          = errors.New("email already registered")
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrAlreadyEnrolled     = errors.New("already enrolled in course")
	ErrNotEnrolled         = errors.New("not enrolled in course")
	ErrCourseNotCompleted  = errors.New("course not completed")
	ErrDuplicateSubmission = errors.New("quiz already submitted")
	ErrCertificateExists   = errors.New("certificate already issued")
)
