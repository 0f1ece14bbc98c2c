package contextprofile_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domaincontext "github.com/promptvault/promptvault/internal/domain/contextprofile"
	"github.com/promptvault/promptvault/internal/mocks"
	contextsvc "github.com/promptvault/promptvault/internal/service/contextprofile"
)

func newContextSvc(t *testing.T) (*contextsvc.Service, *mocks.MockContextProfileRepository, *mocks.MockEventBus) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContextProfileRepository(ctrl)
	bus := mocks.NewMockEventBus(ctrl)
	return contextsvc.NewService(repo, bus), repo, bus
}

func TestCreate_NormalizesJSON(t *testing.T) {
	svc, repo, bus := newContextSvc(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cp domaincontext.ContextProfile) (domaincontext.ContextProfile, error) {
			assert.JSONEq(t, `{"role":"reviewer"}`, string(cp.JSONData))
			return cp, nil
		})
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Create(context.Background(), "Reviewer", "", json.RawMessage(`{"role": "reviewer"}`))
	require.NoError(t, err)
	assert.Equal(t, "Reviewer", got.Name)
}

func TestCreate_AcceptsStringifiedJSON(t *testing.T) {
	svc, repo, bus := newContextSvc(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cp domaincontext.ContextProfile) (domaincontext.ContextProfile, error) {
			assert.JSONEq(t, `{"a":1}`, string(cp.JSONData))
			return cp, nil
		})
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Create(context.Background(), "Stringy", "", json.RawMessage(`"{\"a\": 1}"`))
	require.NoError(t, err)
}

func TestCreate_InvalidJSONRejected(t *testing.T) {
	svc, _, _ := newContextSvc(t)

	_, err := svc.Create(context.Background(), "Broken", "", json.RawMessage(`{not json`))
	assert.ErrorIs(t, err, domaincontext.ErrInvalidJSON)
}

func TestCreate_RepoError(t *testing.T) {
	svc, repo, _ := newContextSvc(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(domaincontext.ContextProfile{}, errors.New("db error"))

	_, err := svc.Create(context.Background(), "Reviewer", "", json.RawMessage(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create context profile")
}

func TestUpdate_EmptyPatchRejected(t *testing.T) {
	svc, _, _ := newContextSvc(t)

	_, err := svc.Update(context.Background(), uuid.New(), domaincontext.Patch{})
	assert.ErrorIs(t, err, domaincontext.ErrEmptyPatch)
}

func TestUpdate_InvalidJSONRejectedBeforeStore(t *testing.T) {
	svc, _, _ := newContextSvc(t)
	bad := json.RawMessage(`oops`)

	_, err := svc.Update(context.Background(), uuid.New(), domaincontext.Patch{JSONData: &bad})
	assert.ErrorIs(t, err, domaincontext.ErrInvalidJSON)
}

func TestUpdate_NormalizesPatchJSON(t *testing.T) {
	svc, repo, bus := newContextSvc(t)
	id := uuid.New()
	raw := json.RawMessage(`{"k": "v"}`)

	repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).
		DoAndReturn(func(_ context.Context, _ uuid.UUID, patch domaincontext.Patch) (domaincontext.ContextProfile, error) {
			require.NotNil(t, patch.JSONData)
			assert.JSONEq(t, `{"k":"v"}`, string(*patch.JSONData))
			return domaincontext.ContextProfile{ID: id}, nil
		})
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.Update(context.Background(), id, domaincontext.Patch{JSONData: &raw})
	require.NoError(t, err)
}

func TestGetByID_NotFound(t *testing.T) {
	svc, repo, _ := newContextSvc(t)
	repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(domaincontext.ContextProfile{}, domaincontext.ErrNotFound)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domaincontext.ErrNotFound)
}

func TestList_Success(t *testing.T) {
	svc, repo, _ := newContextSvc(t)
	filters := domaincontext.ListFilters{Search: "review"}
	repo.EXPECT().List(gomock.Any(), filters).Return([]domaincontext.ContextProfile{{Name: "Reviewer"}}, nil)

	got, err := svc.List(context.Background(), filters)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestDelete_Success(t *testing.T) {
	svc, repo, bus := newContextSvc(t)
	id := uuid.New()
	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, svc.Delete(context.Background(), id))
}
