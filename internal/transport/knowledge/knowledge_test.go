package knowledge_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domainknowledge "github.com/promptvault/promptvault/internal/domain/knowledge"
	"github.com/promptvault/promptvault/internal/mocks"
	knowledgesvc "github.com/promptvault/promptvault/internal/service/knowledge"
	transportknowledge "github.com/promptvault/promptvault/internal/transport/knowledge"
)

func init() { gin.SetMode(gin.TestMode) }

func newRouter(svc *knowledgesvc.Service) *gin.Engine {
	r := gin.New()
	transportknowledge.Register(r.Group("/knowledge-bases"), svc)
	return r
}

func newKnowledgeSvc(t *testing.T) (*knowledgesvc.Service, *mocks.MockKnowledgeRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockKnowledgeRepository(ctrl)
	bus := mocks.NewMockEventBus(ctrl)
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return knowledgesvc.NewService(repo, bus), repo
}

func TestCreateKnowledgeBase_Success(t *testing.T) {
	svc, repo := newKnowledgeSvc(t)
	r := newRouter(svc)

	repo.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, kb domainknowledge.KnowledgeBase, _ []uuid.UUID) (domainknowledge.KnowledgeBase, error) {
			return kb, nil
		})

	body, _ := json.Marshal(map[string]string{"title": "Style Guide", "content": "markdown body"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/knowledge-bases/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got domainknowledge.KnowledgeBase
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Style Guide", got.Title)
}

func TestCreateKnowledgeBase_MissingContent(t *testing.T) {
	svc, _ := newKnowledgeSvc(t)
	r := newRouter(svc)

	body, _ := json.Marshal(map[string]string{"title": "no content"})
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/knowledge-bases/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListKnowledgeBases_FiltersFromQuery(t *testing.T) {
	svc, repo := newKnowledgeSvc(t)
	r := newRouter(svc)

	repo.EXPECT().
		List(gomock.Any(), domainknowledge.ListFilters{Search: "style", Category: "Docs"}).
		Return([]domainknowledge.KnowledgeBase{{Title: "a"}}, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/knowledge-bases/?search=style&category=Docs", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestUpdateKnowledgeBase_EmptyBody(t *testing.T) {
	svc, _ := newKnowledgeSvc(t)
	r := newRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPut, "/knowledge-bases/"+uuid.New().String(), bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteKnowledgeBase_NotFound(t *testing.T) {
	svc, repo := newKnowledgeSvc(t)
	r := newRouter(svc)
	id := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), id).Return(domainknowledge.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodDelete, "/knowledge-bases/"+id.String(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
