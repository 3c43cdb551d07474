package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"engagemate/internal/config"
	"engagemate/internal/discovery"
	"engagemate/internal/engage"
	"engagemate/internal/events"
	"engagemate/internal/logger"
	"engagemate/internal/models"
	"engagemate/internal/settings"
	"engagemate/internal/store/local"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func newTestServer(t *testing.T) *Server {
	t.Helper()

	st, err := local.Open(filepath.Join(t.TempDir(), "engagemate.db"), logger.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	manager := engage.NewManager(st, engage.NewCanned(0), events.Nop{}, logger.NewNop())

	return New(
		&config.Config{Env: "test", LogLevel: "error"},
		logger.NewNop(),
		Deps{
			Products:  st,
			Manager:   manager,
			Settings:  settings.NewService(st, "EngageMate:v1.0.0"),
			Searcher:  discovery.NewSimulated(logger.NewNop(), 0),
			Publisher: events.Nop{},
		},
	)
}

func doJSON(t *testing.T, s *Server, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var payload []byte
	if body != nil {
		var err error
		payload, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Router().ServeHTTP(rec, req)
	return rec
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.Contains(t, envelope, "data")
	require.NoError(t, json.Unmarshal(envelope["data"], out))
}

func createProduct(t *testing.T, s *Server) models.Product {
	t.Helper()
	rec := doJSON(t, s, http.MethodPost, "/api/v1/products", map[string]string{
		"name":        "Acme Widget",
		"description": "A widget for widgets",
		"link":        "https://acme.example",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var product models.Product
	decodeData(t, rec, &product)
	return product
}

func configureSettings(t *testing.T, s *Server) {
	t.Helper()
	rec := doJSON(t, s, http.MethodPut, "/api/v1/settings", map[string]string{
		"client_id":     "id",
		"client_secret": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestProductCRUD(t *testing.T) {
	s := newTestServer(t)

	product := createProduct(t, s)
	assert.NotEmpty(t, product.ID)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/products", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var products []models.Product
	decodeData(t, rec, &products)
	require.Len(t, products, 1)

	rec = doJSON(t, s, http.MethodPut, "/api/v1/products/"+product.ID, map[string]string{"name": "Renamed"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var updated models.Product
	decodeData(t, rec, &updated)
	assert.Equal(t, "Renamed", updated.Name)
	assert.Equal(t, "A widget for widgets", updated.Description)

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/products/"+product.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Idempotent delete
	rec = doJSON(t, s, http.MethodDelete, "/api/v1/products/"+product.ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCreateProductValidation(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/products", map[string]string{"name": " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateUnknownProduct(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPut, "/api/v1/products/missing", map[string]string{"name": "x"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDiscoveryRequiresConfiguredSettings(t *testing.T) {
	s := newTestServer(t)
	product := createProduct(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/discovery/search", map[string]interface{}{
		"product_id": product.ID,
		"subreddits": []string{"productivity"},
	})
	assert.Equal(t, http.StatusPreconditionFailed, rec.Code)
}

func TestDiscoverySearch(t *testing.T) {
	s := newTestServer(t)
	product := createProduct(t, s)
	configureSettings(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/discovery/search", map[string]interface{}{
		"product_id": product.ID,
		"subreddits": []string{"productivity", "entrepreneur"},
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var posts []models.CandidatePost
	decodeData(t, rec, &posts)
	assert.Len(t, posts, 2)
}

func TestDiscoveryRejectsEmptySubreddits(t *testing.T) {
	s := newTestServer(t)
	product := createProduct(t, s)
	configureSettings(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/discovery/search", map[string]interface{}{
		"product_id": product.ID,
		"subreddits": []string{},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestGenerateAndLifecycle(t *testing.T) {
	s := newTestServer(t)
	product := createProduct(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/comments/generate", map[string]interface{}{
		"product_id": product.ID,
		"posts": []map[string]interface{}{
			{"id": "1", "title": "Need a widget tool", "subreddit": "widgets"},
			{"id": "2", "title": "Widget advice?", "subreddit": "tools"},
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var comments []models.GeneratedComment
	decodeData(t, rec, &comments)
	require.Len(t, comments, 2)
	assert.Equal(t, models.CommentGenerated, comments[0].Status)
	assert.Contains(t, comments[0].Content, "Acme Widget")

	// Post the first comment, twice; the second call is a no-op success.
	rec = doJSON(t, s, http.MethodPost, "/api/v1/comments/"+comments[0].ID+"/post", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, s, http.MethodPost, "/api/v1/comments/"+comments[0].ID+"/post", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/stats", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var stats struct {
		Products int `json:"products"`
		Comments int `json:"comments"`
		Posted   int `json:"posted"`
	}
	decodeData(t, rec, &stats)
	assert.Equal(t, 1, stats.Products)
	assert.Equal(t, 2, stats.Comments)
	assert.Equal(t, 1, stats.Posted)

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/comments/"+comments[1].ID, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestGenerateRejectsEmptyPosts(t *testing.T) {
	s := newTestServer(t)
	product := createProduct(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/comments/generate", map[string]interface{}{
		"product_id": product.ID,
		"posts":      []map[string]interface{}{},
	})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/comments", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var comments []models.GeneratedComment
	decodeData(t, rec, &comments)
	assert.Empty(t, comments)
}

func TestGenerateUnknownProduct(t *testing.T) {
	s := newTestServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/comments/generate", map[string]interface{}{
		"product_id": "missing",
		"posts":      []map[string]interface{}{{"id": "1", "title": "t"}},
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCommentSnapshotSurvivesProductDelete(t *testing.T) {
	s := newTestServer(t)
	product := createProduct(t, s)

	rec := doJSON(t, s, http.MethodPost, "/api/v1/comments/generate", map[string]interface{}{
		"product_id": product.ID,
		"posts":      []map[string]interface{}{{"id": "1", "title": "Need a widget tool", "subreddit": "widgets"}},
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, s, http.MethodDelete, "/api/v1/products/"+product.ID, nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/v1/comments", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var comments []models.GeneratedComment
	decodeData(t, rec, &comments)
	require.Len(t, comments, 1)
	assert.Equal(t, "Acme Widget", comments[0].Product.Name, "embedded snapshot unchanged")
}

func TestSettingsRedaction(t *testing.T) {
	s := newTestServer(t)
	configureSettings(t, s)

	rec := doJSON(t, s, http.MethodGet, "/api/v1/settings", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var cfg models.RedditSettings
	decodeData(t, rec, &cfg)
	assert.Equal(t, "id", cfg.ClientID)
	assert.NotEqual(t, "secret", cfg.ClientSecret)
}
