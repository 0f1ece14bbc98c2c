package admin_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/promptvault/promptvault/internal/domain/export"
	"github.com/promptvault/promptvault/internal/mocks"
	adminsvc "github.com/promptvault/promptvault/internal/service/admin"
)

func newAdminSvc(t *testing.T) (*adminsvc.Service, *mocks.MockAdminRepository, *mocks.MockAdvisoryLocker, *mocks.MockEventBus) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAdminRepository(ctrl)
	locker := mocks.NewMockAdvisoryLocker(ctrl)
	bus := mocks.NewMockEventBus(ctrl)
	return adminsvc.NewService(repo, locker, bus), repo, locker, bus
}

func TestExport_Success(t *testing.T) {
	svc, repo, _, _ := newAdminSvc(t)
	snap := export.Snapshot{Version: export.Version, Type: export.ScopeAll}
	repo.EXPECT().Export(gomock.Any(), export.ScopeAll).Return(snap, nil)

	got, err := svc.Export(context.Background(), export.ScopeAll)
	require.NoError(t, err)
	assert.Equal(t, export.Version, got.Version)
}

func TestExport_Error(t *testing.T) {
	svc, repo, _, _ := newAdminSvc(t)
	repo.EXPECT().Export(gomock.Any(), gomock.Any()).Return(export.Snapshot{}, errors.New("db error"))

	_, err := svc.Export(context.Background(), export.ScopePrompts)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "export data")
}

func TestReset_RunsUnderLock(t *testing.T) {
	svc, repo, locker, bus := newAdminSvc(t)

	locker.EXPECT().WithLock(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, fn func(context.Context) error) error {
			return fn(ctx)
		})
	repo.EXPECT().Reset(gomock.Any()).Return(nil)
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	resetAt, err := svc.Reset(context.Background())
	require.NoError(t, err)
	assert.False(t, resetAt.IsZero())
}

func TestReset_RepoErrorPropagates(t *testing.T) {
	svc, repo, locker, _ := newAdminSvc(t)

	locker.EXPECT().WithLock(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ int64, fn func(context.Context) error) error {
			return fn(ctx)
		})
	repo.EXPECT().Reset(gomock.Any()).Return(errors.New("db error"))

	_, err := svc.Reset(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reset data")
}

func TestReset_LockFailure(t *testing.T) {
	svc, _, locker, _ := newAdminSvc(t)
	locker.EXPECT().WithLock(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("lock unavailable"))

	_, err := svc.Reset(context.Background())
	require.Error(t, err)
}
