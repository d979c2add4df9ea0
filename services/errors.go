package services

import "errors"

var (
	ErrFormNotFound      = errors.New("form not found")
	ErrSubformNotFound   = errors.New("subform not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrInvalidState      = errors.New("invalid form state")
	ErrApprovalConflict  = errors.New("competing approval target")

	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrLicenseNotFound    = errors.New("license not found")
	ErrLicenseNotUnused   = errors.New("license not unused")

	ErrFunctionNotFound = errors.New("function not found")
	ErrBlockNotFound    = errors.New("block not found")
	ErrMessageNotFound  = errors.New("message not found")
	ErrFileNotFound     = errors.New("file not found")
)
