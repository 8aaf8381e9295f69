package service

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SchemaBootstrapper prepares an empty MySQL server for SeaTable.
type SchemaBootstrapper interface {
	Bootstrap(ctx context.Context) error
}

// AdminProvisioner creates the first administrator account.
type AdminProvisioner interface {
	EnsureAdmin(ctx context.Context, email, password string) error
}

// CommandRunner runs an external program with extra environment variables
// and returns its combined output.
type CommandRunner interface {
	Run(ctx context.Context, env []string, name string, args ...string) ([]byte, error)
}
