package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/seatable-init/internal/logger"
	"github.com/MKhiriev/seatable-init/internal/mock"
	"github.com/MKhiriev/seatable-init/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const adminCommand = "/templates/seatable.sh auto-create-superuser"

func newTestAdminProvisioner(t *testing.T, ctrl *gomock.Controller) (AdminProvisioner, *mock.MockAdminRepository, *mock.MockCommandRunner) {
	t.Helper()

	repo := mock.NewMockAdminRepository(ctrl)
	runner := mock.NewMockCommandRunner(ctrl)
	return NewAdminProvisioner(repo, runner, adminCommand, logger.Nop()), repo, runner
}

func TestAdminProvisioner_EnsureAdmin_CreatesMissingAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Arrange
	svc, repo, runner := newTestAdminProvisioner(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().CountProfilesByEmail(ctx, "admin@example.com").Return(0, nil),
		runner.EXPECT().Run(
			ctx,
			[]string{"SEATABLE_ADMIN_EMAIL=admin@example.com", "SEATABLE_ADMIN_PASSWORD=secret"},
			"/templates/seatable.sh",
			"auto-create-superuser",
		).Return([]byte("ok"), nil),
	)

	// Act
	err := svc.EnsureAdmin(ctx, "admin@example.com", "secret")

	// Assert
	require.NoError(t, err)
}

func TestAdminProvisioner_EnsureAdmin_ExistingAdminSkipsCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, runner := newTestAdminProvisioner(t, ctrl)
	repo.EXPECT().CountProfilesByEmail(gomock.Any(), "admin@example.com").Return(1, nil)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	err := svc.EnsureAdmin(context.Background(), "admin@example.com", "secret")

	require.NoError(t, err)
}

func TestAdminProvisioner_EnsureAdmin_MissingVariables(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
	}{
		{name: "no email", password: "secret"},
		{name: "no password", email: "admin@example.com"},
		{name: "nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, _, _ := newTestAdminProvisioner(t, ctrl)

			err := svc.EnsureAdmin(context.Background(), tt.email, tt.password)

			assert.ErrorIs(t, err, ErrAdminVariablesMissing)
		})
	}
}

func TestAdminProvisioner_EnsureAdmin_QueryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, _ := newTestAdminProvisioner(t, ctrl)
	repo.EXPECT().CountProfilesByEmail(gomock.Any(), gomock.Any()).Return(0, store.ErrExecutingQuery)

	err := svc.EnsureAdmin(context.Background(), "admin@example.com", "secret")

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestAdminProvisioner_EnsureAdmin_CommandFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, repo, runner := newTestAdminProvisioner(t, ctrl)
	repo.EXPECT().CountProfilesByEmail(gomock.Any(), gomock.Any()).Return(0, nil)
	runner.EXPECT().Run(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]byte("boom"), errors.New("exit status 1"))

	err := svc.EnsureAdmin(context.Background(), "admin@example.com", "secret")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAdminCreationFailed)
}

func TestAdminProvisioner_EnsureAdmin_EmptyCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mock.NewMockAdminRepository(ctrl)
	repo.EXPECT().CountProfilesByEmail(gomock.Any(), gomock.Any()).Return(0, nil)
	svc := NewAdminProvisioner(repo, mock.NewMockCommandRunner(ctrl), "  ", logger.Nop())

	err := svc.EnsureAdmin(context.Background(), "admin@example.com", "secret")

	assert.ErrorIs(t, err, ErrAdminCreationFailed)
}

func TestExecRunner_Run(t *testing.T) {
	out, err := ExecRunner{}.Run(context.Background(), []string{"SEATABLE_ADMIN_EMAIL=a@b.c"}, "sh", "-c", "printf %s \"$SEATABLE_ADMIN_EMAIL\"")

	require.NoError(t, err)
	assert.Equal(t, "a@b.c", string(out))
}

func TestExecRunner_RunNonZeroExit(t *testing.T) {
	_, err := ExecRunner{}.Run(context.Background(), nil, "sh", "-c", "exit 3")

	assert.Error(t, err)
}
