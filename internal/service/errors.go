package service

import "errors"

var (
	// ErrAdminVariablesMissing is returned when the admin email or password
	// is not configured.
	ErrAdminVariablesMissing = errors.New("admin email and password must be provided")
	// ErrAdminCreationFailed is returned when the account creation command
	// exits with an error.
	ErrAdminCreationFailed = errors.New("could not create admin user")
	// ErrReadingSchemaFile is returned when a schema file cannot be read.
	ErrReadingSchemaFile = errors.New("error reading schema file")
)
