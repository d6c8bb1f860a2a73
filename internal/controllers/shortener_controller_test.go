package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"linkcut/internal/apperr"
	"linkcut/internal/models"
)

func setupShortenerRouter(svc *fakeURLService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	sc := NewShortenerController(svc, zap.NewNop())

	r := gin.New()
	r.POST("/", sc.CreateShortURL)
	r.GET("/ping", sc.Ping)
	r.GET("/:code", sc.Redirect)
	r.GET("/:code/status", sc.Status)
	r.PUT("/:code/update", sc.Update)
	r.DELETE("/:code/delete", sc.Delete)
	return r
}

func TestCreateShortURLHandler(t *testing.T) {
	resp := &models.URLResponse{
		ShortCode:   "abc123XY",
		ShortURL:    "http://localhost:8080/abc123XY",
		OriginalURL: "www.example.com/test",
		URLType:     "public",
	}

	t.Run("created returns 201", func(t *testing.T) {
		svc := &fakeURLService{createResp: resp, created: true}
		r := setupShortenerRouter(svc)

		body, _ := json.Marshal(map[string]string{
			"original_url": "www.example.com/test",
			"url_type":     "public",
		})
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)

		var got models.URLResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, "http://localhost:8080/abc123XY", got.ShortURL)
	})

	t.Run("idempotent match returns 200", func(t *testing.T) {
		svc := &fakeURLService{createResp: resp, created: false}
		r := setupShortenerRouter(svc)

		body, _ := json.Marshal(map[string]string{"original_url": "www.example.com/test"})
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing original_url returns 400", func(t *testing.T) {
		r := setupShortenerRouter(&fakeURLService{})

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"url_type":"public"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("bad url_type returns 400", func(t *testing.T) {
		r := setupShortenerRouter(&fakeURLService{})

		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(`{"original_url":"www.example.com","url_type":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("storage conflict returns 409", func(t *testing.T) {
		svc := &fakeURLService{createErr: apperr.ErrConflict}
		r := setupShortenerRouter(svc)

		body, _ := json.Marshal(map[string]string{"original_url": "www.example.com/test"})
		req := httptest.NewRequest(http.MethodPost, "/", bytes.NewBuffer(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
	})
}

func TestRedirectHandler(t *testing.T) {
	t.Run("temporary redirect with client info recorded", func(t *testing.T) {
		svc := &fakeURLService{redirectURL: "www.example.com/test"}
		r := setupShortenerRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/abc123XY", nil)
		req.Header.Set("User-Agent", "test-agent")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, "www.example.com/test", w.Header().Get("Location"))
		assert.Equal(t, "test-agent", svc.gotClient)
	})

	t.Run("unknown code returns 404", func(t *testing.T) {
		r := setupShortenerRouter(&fakeURLService{redirectErr: apperr.ErrNotFound})

		req := httptest.NewRequest(http.MethodGet, "/missing1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("private url returns 403", func(t *testing.T) {
		r := setupShortenerRouter(&fakeURLService{redirectErr: apperr.ErrForbidden})

		req := httptest.NewRequest(http.MethodGet, "/private1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestStatusHandler(t *testing.T) {
	t.Run("count only with defaults", func(t *testing.T) {
		svc := &fakeURLService{stats: &models.URLStatsResponse{NumberOfCalls: 3}}
		r := setupShortenerRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/abc123XY/status", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.False(t, svc.gotFullInfo)
		assert.Equal(t, 10, svc.gotMaxResult)
		assert.Equal(t, 0, svc.gotOffset)

		var got map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		assert.Equal(t, float64(3), got["number_of_calls"])
		assert.NotContains(t, got, "details")
	})

	t.Run("full info with paging", func(t *testing.T) {
		svc := &fakeURLService{stats: &models.URLStatsResponse{NumberOfCalls: 3}}
		r := setupShortenerRouter(svc)

		req := httptest.NewRequest(http.MethodGet, "/abc123XY/status?full_info=1&max_result=2&offset=1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.True(t, svc.gotFullInfo)
		assert.Equal(t, 2, svc.gotMaxResult)
		assert.Equal(t, 1, svc.gotOffset)
	})
}

func TestUpdateHandler(t *testing.T) {
	t.Run("updated", func(t *testing.T) {
		svc := &fakeURLService{updateResp: &models.URLResponse{ShortCode: "abc123XY", URLType: "private"}}
		r := setupShortenerRouter(svc)

		req := httptest.NewRequest(http.MethodPut, "/abc123XY/update", bytes.NewBufferString(`{"url_type":"private"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("forbidden", func(t *testing.T) {
		r := setupShortenerRouter(&fakeURLService{updateErr: apperr.ErrForbidden})

		req := httptest.NewRequest(http.MethodPut, "/abc123XY/update", bytes.NewBufferString(`{"url_type":"private"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("invalid visibility value", func(t *testing.T) {
		r := setupShortenerRouter(&fakeURLService{})

		req := httptest.NewRequest(http.MethodPut, "/abc123XY/update", bytes.NewBufferString(`{"url_type":"secret"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("soft delete returns 410", func(t *testing.T) {
		r := setupShortenerRouter(&fakeURLService{})

		req := httptest.NewRequest(http.MethodDelete, "/abc123XY/delete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusGone, w.Code)
	})

	t.Run("already deleted returns 404", func(t *testing.T) {
		r := setupShortenerRouter(&fakeURLService{deleteErr: apperr.ErrNotFound})

		req := httptest.NewRequest(http.MethodDelete, "/abc123XY/delete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPingHandler(t *testing.T) {
	t.Run("database reachable", func(t *testing.T) {
		r := setupShortenerRouter(&fakeURLService{})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("database down", func(t *testing.T) {
		r := setupShortenerRouter(&fakeURLService{pingErr: assert.AnError})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
