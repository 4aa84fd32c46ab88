package apihandlers

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cerberus/internal/app"
	"cerberus/internal/config"
)

func newTestRouter(t *testing.T, backendHandler http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	backend := httptest.NewServer(backendHandler)
	t.Cleanup(backend.Close)

	cfg := &config.Config{}
	cfg.Backend.BaseURL = backend.URL
	cfg.Backend.TimeoutSeconds = 5
	cfg.Auth.Username = "demo"
	cfg.Auth.Password = "demo"
	cfg.Audit.Path = ":memory:"
	cfg.Sanitize.Enabled = true

	a, err := app.NewApp(context.Background(), cfg)
	require.NoError(t, err)
	t.Cleanup(a.Close)

	handler := NewAPIHandler(a)
	router := gin.New()
	router.POST("/api/v1/moderate", handler.ModerateHandler)
	router.GET("/api/v1/history", handler.HistoryHandler)
	return router
}

func fakeBackend(t *testing.T, moderationBody string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			w.Write([]byte(`{"token": "tok-test"}`))
		case "/moderate":
			w.Write([]byte(moderationBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}
}

func postModerateForm(t *testing.T, router *gin.Engine, fields map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, writer.WriteField(k, v))
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/moderate", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestModerateHandler_Success(t *testing.T) {
	router := newTestRouter(t, fakeBackend(t, `{
		"classification": {"normal": 0.95},
		"risk_score": {"level": "Low", "score": 0.05},
		"action": {"actions": ["Post Content"]}
	}`))

	w := postModerateForm(t, router, map[string]string{
		"content": "hello world",
		"user_id": "alice",
	})

	require.Equal(t, http.StatusOK, w.Code)
	var body struct {
		Presentation struct {
			Verdict struct {
				Recommendation string `json:"recommendation"`
			} `json:"verdict"`
		} `json:"presentation"`
		Classification map[string]float64 `json:"classification"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Post", body.Presentation.Verdict.Recommendation)
	assert.Equal(t, 0.95, body.Classification["normal"])
}

func TestModerateHandler_EmptyForm(t *testing.T) {
	router := newTestRouter(t, fakeBackend(t, `{}`))

	w := postModerateForm(t, router, map[string]string{"content": "   "})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "provide text, an image, or both")
}

func TestModerateHandler_BackendAuthFailure(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	w := postModerateForm(t, router, map[string]string{"content": "hello"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestModerateHandler_BackendFailure(t *testing.T) {
	router := newTestRouter(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/auth/login" {
			w.Write([]byte(`{"token": "tok-test"}`))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	w := postModerateForm(t, router, map[string]string{"content": "hello"})

	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestHistoryHandler_RecordsDecisions(t *testing.T) {
	router := newTestRouter(t, fakeBackend(t, `{
		"classification": {"violence": 0.8},
		"risk_score": {"level": "High", "score": 0.82},
		"action": {"actions": ["Remove Content"]},
		"audit_id": "audit-77"
	}`))

	w := postModerateForm(t, router, map[string]string{"content": "flag me"})
	require.Equal(t, http.StatusOK, w.Code)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/history", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Data []map[string]interface{} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, "audit-77", body.Data[0]["AuditID"])
}

func TestHistoryHandler_InvalidLimit(t *testing.T) {
	router := newTestRouter(t, fakeBackend(t, `{}`))

	for _, raw := range []string{"abc", "0", "-5"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/history?limit="+raw, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "limit=%s", raw)
	}
}
