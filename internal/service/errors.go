package service

import "errors"

var (
	// ErrInvalidLicenseRef is returned when an assignment points at a license that does not exist.
	ErrInvalidLicenseRef = errors.New("license reference does not resolve")
	// ErrIntegrationDisabled is returned by features whose backing service is not configured.
	ErrIntegrationDisabled = errors.New("integration not configured")
	// ErrInvalidCredentials is returned by Login for an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")
)
