package category_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeflix/catalog/internal/catalog/category"
	"github.com/codeflix/catalog/internal/platform/ctxutil"
	"github.com/codeflix/catalog/internal/platform/sec"
)

// newTestRouter mounts the category routes the way the API server does. The
// asAdmin wrapper injects verified claims so admin-gated routes are reachable
// without running the full authentication middleware.
func newTestRouter(t *testing.T) (http.Handler, *category.MemoryRepository) {
	t.Helper()

	repo := category.NewMemoryRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handler := category.NewHandler(category.NewService(repo, logger))

	router := chi.NewRouter()
	router.Route("/api/v1/categories", handler.RegisterRoutes)
	return router, repo
}

func asAdmin(request *http.Request) *http.Request {
	claims := &sec.AuthClaims{SessionID: "test-session", Username: "admin"}
	return request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
}

func doJSON(t *testing.T, router http.Handler, request *http.Request) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	body := map[string]any{}
	if recorder.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	}
	return recorder, body
}

func TestHTTPCreateCategory(t *testing.T) {
	router, _ := newTestRouter(t)

	request := asAdmin(httptest.NewRequest("POST", "/api/v1/categories/",
		strings.NewReader(`{"name":"Movies","description":"All feature films"}`)))
	recorder, body := doJSON(t, router, request)

	require.Equal(t, http.StatusCreated, recorder.Code)

	assert.Equal(t, "Movies", body["name"])
	assert.Equal(t, "All feature films", body["description"])
	assert.Equal(t, true, body["is_active"])
	assert.NotEmpty(t, body["id"])
	assert.NotEmpty(t, body["created_at"])

	assert.Equal(t, "/api/v1/categories/"+body["id"].(string), recorder.Header().Get("Location"))
}

func TestHTTPCreateCategory_Validation(t *testing.T) {
	router, _ := newTestRouter(t)

	request := asAdmin(httptest.NewRequest("POST", "/api/v1/categories/",
		strings.NewReader(`{"name":"ab"}`)))
	recorder, body := doJSON(t, router, request)

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Equal(t, "UnprocessableEntity", body["type"])
	assert.Equal(t, "One or more validation errors occurred", body["title"])
	assert.Equal(t, "Name should be at least 3 characters long", body["detail"])

	details := body["details"].([]any)
	require.Len(t, details, 1)
	assert.Equal(t, "Name", details[0].(map[string]any)["field"])
}

func TestHTTPCreateCategory_InvalidJSON(t *testing.T) {
	router, _ := newTestRouter(t)

	request := asAdmin(httptest.NewRequest("POST", "/api/v1/categories/",
		strings.NewReader(`{not json`)))
	recorder, body := doJSON(t, router, request)

	require.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	assert.Equal(t, "Invalid JSON payload", body["detail"])
}

func TestHTTPCreateCategory_RequiresAuth(t *testing.T) {
	router, _ := newTestRouter(t)

	request := httptest.NewRequest("POST", "/api/v1/categories/",
		strings.NewReader(`{"name":"Movies"}`))
	recorder, _ := doJSON(t, router, request)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestHTTPGetCategory(t *testing.T) {
	router, repo := newTestRouter(t)
	seeded := seedCategories(t, repo, "Movies")

	recorder, body := doJSON(t, router, httptest.NewRequest("GET", "/api/v1/categories/"+seeded[0].ID, nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Movies", body["name"])
}

func TestHTTPGetCategory_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	missing := "0191e2f0-0000-7000-8000-000000000000"

	recorder, body := doJSON(t, router, httptest.NewRequest("GET", "/api/v1/categories/"+missing, nil))

	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Category '"+missing+"' not found.", body["detail"])
}

func TestHTTPGetCategory_MalformedID(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder, body := doJSON(t, router, httptest.NewRequest("GET", "/api/v1/categories/not-a-uuid", nil))

	// A malformed id is indistinguishable from a missing resource.
	require.Equal(t, http.StatusNotFound, recorder.Code)
	assert.Equal(t, "Category 'not-a-uuid' not found.", body["detail"])
}

func TestHTTPListCategories(t *testing.T) {
	router, repo := newTestRouter(t)
	seedCategories(t, repo, "Drama", "Action", "Comedy")

	recorder, body := doJSON(t, router, httptest.NewRequest("GET", "/api/v1/categories/?per_page=2&sort=name", nil))

	require.Equal(t, http.StatusOK, recorder.Code)

	assert.Equal(t, float64(1), body["current_page"])
	assert.Equal(t, float64(2), body["per_page"])
	assert.Equal(t, float64(3), body["total"])

	items := body["items"].([]any)
	require.Len(t, items, 2)
	assert.Equal(t, "Action", items[0].(map[string]any)["name"])
	assert.Equal(t, "Comedy", items[1].(map[string]any)["name"])
}

func TestHTTPListCategories_EmptyIsOK(t *testing.T) {
	router, _ := newTestRouter(t)

	recorder, body := doJSON(t, router, httptest.NewRequest("GET", "/api/v1/categories/", nil))

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, []any{}, body["items"])
	assert.Equal(t, float64(0), body["total"])
}

func TestHTTPUpdateCategory(t *testing.T) {
	router, repo := newTestRouter(t)
	seeded := seedCategories(t, repo, "Movies")

	request := asAdmin(httptest.NewRequest("PUT", "/api/v1/categories/"+seeded[0].ID,
		strings.NewReader(`{"name":"Series","is_active":false}`)))
	recorder, body := doJSON(t, router, request)

	require.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "Series", body["name"])
	assert.Equal(t, false, body["is_active"])
	// Description was absent from the payload, so the stored value survives.
	assert.Equal(t, "", body["description"])
}

func TestHTTPUpdateCategory_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)
	missing := "0191e2f0-0000-7000-8000-000000000000"

	request := asAdmin(httptest.NewRequest("PUT", "/api/v1/categories/"+missing,
		strings.NewReader(`{"name":"Series"}`)))
	recorder, _ := doJSON(t, router, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestHTTPDeleteCategory(t *testing.T) {
	router, repo := newTestRouter(t)
	seeded := seedCategories(t, repo, "Movies")

	request := asAdmin(httptest.NewRequest("DELETE", "/api/v1/categories/"+seeded[0].ID, nil))
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	require.Equal(t, http.StatusNoContent, recorder.Code)
	assert.Zero(t, recorder.Body.Len())

	_, err := repo.Get(context.Background(), seeded[0].ID)
	assert.Error(t, err)
}

func TestHTTPDeleteCategory_NotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	request := asAdmin(httptest.NewRequest("DELETE", "/api/v1/categories/0191e2f0-0000-7000-8000-000000000000", nil))
	recorder, _ := doJSON(t, router, request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
