package knowledge_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainknowledge "github.com/promptvault/promptvault/internal/domain/knowledge"
	"github.com/promptvault/promptvault/internal/mocks"
	knowledgesvc "github.com/promptvault/promptvault/internal/service/knowledge"
)

func newKnowledgeSvc(t *testing.T) (*knowledgesvc.Service, *mocks.MockKnowledgeRepository, *mocks.MockEventBus) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockKnowledgeRepository(ctrl)
	bus := mocks.NewMockEventBus(ctrl)
	return knowledgesvc.NewService(repo, bus), repo, bus
}

func TestCreate_Success(t *testing.T) {
	svc, repo, bus := newKnowledgeSvc(t)

	repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Nil()).
		DoAndReturn(func(_ context.Context, kb domainknowledge.KnowledgeBase, _ []uuid.UUID) (domainknowledge.KnowledgeBase, error) {
			assert.Equal(t, "Style Guide", kb.Title)
			assert.Equal(t, domainknowledge.DefaultCategory, kb.Category)
			return kb, nil
		})
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Create(context.Background(), "Style Guide", "", "markdown body", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "Style Guide", got.Title)
}

func TestCreate_Error(t *testing.T) {
	svc, repo, _ := newKnowledgeSvc(t)
	repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(domainknowledge.KnowledgeBase{}, errors.New("db error"))

	_, err := svc.Create(context.Background(), "Style Guide", "", "body", "Docs", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create knowledge base")
}

func TestGetByID_NotFound(t *testing.T) {
	svc, repo, _ := newKnowledgeSvc(t)
	repo.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(domainknowledge.KnowledgeBase{}, domainknowledge.ErrNotFound)

	_, err := svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainknowledge.ErrNotFound)
}

func TestList_Success(t *testing.T) {
	svc, repo, _ := newKnowledgeSvc(t)
	filters := domainknowledge.ListFilters{Search: "guide"}
	repo.EXPECT().List(gomock.Any(), filters).Return([]domainknowledge.KnowledgeBase{{Title: "a"}}, nil)

	got, err := svc.List(context.Background(), filters)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestUpdate_EmptyPatchRejected(t *testing.T) {
	svc, _, _ := newKnowledgeSvc(t)

	_, err := svc.Update(context.Background(), uuid.New(), domainknowledge.Patch{})
	assert.ErrorIs(t, err, domainknowledge.ErrEmptyPatch)
}

func TestUpdate_Success(t *testing.T) {
	svc, repo, bus := newKnowledgeSvc(t)
	id := uuid.New()
	content := "updated body"
	patch := domainknowledge.Patch{Content: &content}

	repo.EXPECT().Update(gomock.Any(), id, patch).Return(domainknowledge.KnowledgeBase{ID: id, Content: content}, nil)
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil)

	got, err := svc.Update(context.Background(), id, patch)
	require.NoError(t, err)
	assert.Equal(t, content, got.Content)
}

func TestDelete_NotFound(t *testing.T) {
	svc, repo, _ := newKnowledgeSvc(t)
	repo.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(domainknowledge.ErrNotFound)

	err := svc.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domainknowledge.ErrNotFound)
}
