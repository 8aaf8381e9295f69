package service

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"github.com/MKhiriev/seatable-init/internal/logger"
	"github.com/MKhiriev/seatable-init/internal/store"
)

type adminProvisioner struct {
	repo    store.AdminRepository
	runner  CommandRunner
	command []string
	logger  *logger.Logger
}

// NewAdminProvisioner returns an [AdminProvisioner]. command is split on
// whitespace into the program and its arguments.
func NewAdminProvisioner(repo store.AdminRepository, runner CommandRunner, command string, logger *logger.Logger) AdminProvisioner {
	return &adminProvisioner{
		repo:    repo,
		runner:  runner,
		command: strings.Fields(command),
		logger:  logger,
	}
}

// EnsureAdmin runs the creation command unless a profile with email
// already exists. The credentials are handed to the command through the
// SEATABLE_ADMIN_EMAIL and SEATABLE_ADMIN_PASSWORD variables.
func (p *adminProvisioner) EnsureAdmin(ctx context.Context, email, password string) error {
	if email == "" || password == "" {
		return ErrAdminVariablesMissing
	}

	count, err := p.repo.CountProfilesByEmail(ctx, email)
	if err != nil {
		return err
	}

	if count > 0 {
		p.logger.Info().Str("email", email).Msg("admin user already exists")
		return nil
	}

	if len(p.command) == 0 {
		return fmt.Errorf("%w: no command configured", ErrAdminCreationFailed)
	}

	p.logger.Info().Str("email", email).Msg("creating admin user")

	env := []string{
		"SEATABLE_ADMIN_EMAIL=" + email,
		"SEATABLE_ADMIN_PASSWORD=" + password,
	}
	output, err := p.runner.Run(ctx, env, p.command[0], p.command[1:]...)
	if err != nil {
		p.logger.Error().Err(err).Bytes("output", output).Msg("admin user creation command failed")
		return fmt.Errorf("%w: %w", ErrAdminCreationFailed, err)
	}

	p.logger.Info().Msg("successfully created admin user")
	return nil
}

// ExecRunner runs commands with os/exec, inheriting the current
// environment.
type ExecRunner struct{}

// Run implements [CommandRunner].
func (ExecRunner) Run(ctx context.Context, env []string, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Env = append(cmd.Environ(), env...)

	return cmd.CombinedOutput()
}
