package contextprofile_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	domaincontext "github.com/promptvault/promptvault/internal/domain/contextprofile"
	"github.com/promptvault/promptvault/internal/mocks"
	contextsvc "github.com/promptvault/promptvault/internal/service/contextprofile"
	transportcontext "github.com/promptvault/promptvault/internal/transport/contextprofile"
)

func init() { gin.SetMode(gin.TestMode) }

func newRouter(svc *contextsvc.Service) *gin.Engine {
	r := gin.New()
	transportcontext.Register(r.Group("/context-profiles"), svc)
	return r
}

func newContextSvc(t *testing.T) (*contextsvc.Service, *mocks.MockContextProfileRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockContextProfileRepository(ctrl)
	bus := mocks.NewMockEventBus(ctrl)
	bus.EXPECT().Publish(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	return contextsvc.NewService(repo, bus), repo
}

// ── POST / (createContextProfile) ────────────────────────────────────────────

func TestCreateContextProfile_Success(t *testing.T) {
	svc, repo := newContextSvc(t)
	r := newRouter(svc)

	repo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cp domaincontext.ContextProfile) (domaincontext.ContextProfile, error) {
			assert.JSONEq(t, `{"tone":"strict"}`, string(cp.JSONData))
			return cp, nil
		})

	body := []byte(`{"name":"Reviewer","json_data":{"tone":"strict"}}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/context-profiles/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	var got domaincontext.ContextProfile
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Reviewer", got.Name)
}

func TestCreateContextProfile_MissingJSONData(t *testing.T) {
	svc, _ := newContextSvc(t)
	r := newRouter(svc)

	body := []byte(`{"name":"Reviewer"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/context-profiles/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateContextProfile_InvalidStringifiedJSON(t *testing.T) {
	svc, _ := newContextSvc(t)
	r := newRouter(svc)

	// json_data is a JSON string whose contents do not parse.
	body := []byte(`{"name":"Broken","json_data":"not json at all"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPost, "/context-profiles/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid JSON data")
}

// ── GET / and GET /:id ───────────────────────────────────────────────────────

func TestListContextProfiles_NilBecomesEmptyArray(t *testing.T) {
	svc, repo := newContextSvc(t)
	r := newRouter(svc)

	repo.EXPECT().List(gomock.Any(), domaincontext.ListFilters{Search: "rev"}).Return(nil, nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/context-profiles/?search=rev", nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestGetContextProfile_NotFound(t *testing.T) {
	svc, repo := newContextSvc(t)
	r := newRouter(svc)
	id := uuid.New()

	repo.EXPECT().GetByID(gomock.Any(), id).Return(domaincontext.ContextProfile{}, domaincontext.ErrNotFound)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, "/context-profiles/"+id.String(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// ── PUT /:id (updateContextProfile) ──────────────────────────────────────────

func TestUpdateContextProfile_EmptyBody(t *testing.T) {
	svc, _ := newContextSvc(t)
	r := newRouter(svc)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPut, "/context-profiles/"+uuid.New().String(), bytes.NewReader([]byte(`{}`)))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateContextProfile_Success(t *testing.T) {
	svc, repo := newContextSvc(t)
	r := newRouter(svc)
	id := uuid.New()

	repo.EXPECT().Update(gomock.Any(), id, gomock.Any()).Return(domaincontext.ContextProfile{ID: id, Name: "renamed"}, nil)

	body := []byte(`{"name":"renamed"}`)
	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodPut, "/context-profiles/"+id.String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

// ── DELETE /:id ──────────────────────────────────────────────────────────────

func TestDeleteContextProfile_Success(t *testing.T) {
	svc, repo := newContextSvc(t)
	r := newRouter(svc)
	id := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), id).Return(nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodDelete, "/context-profiles/"+id.String(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeleteContextProfile_ServiceError(t *testing.T) {
	svc, repo := newContextSvc(t)
	r := newRouter(svc)
	id := uuid.New()

	repo.EXPECT().Delete(gomock.Any(), id).Return(errors.New("db error"))

	w := httptest.NewRecorder()
	req, _ := http.NewRequestWithContext(context.Background(), http.MethodDelete, "/context-profiles/"+id.String(), nil)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
