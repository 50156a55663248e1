package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/config"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/auth"
	"github.com/parthodeb03/Project-Comfy-Go-sub000/internal/service/session"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func newSessionRouter() (*gin.Engine, *session.Registry) {
	gin.SetMode(gin.TestMode)

	registry := session.NewRegistry(time.Minute, nil, zap.NewNop())
	authenticator := auth.NewStaticAuthenticator(config.AuthConfig{
		Users: []config.AuthUser{
			{Username: "alice", Password: "secret", OwnerID: "owner-1", Role: "customer", DisplayName: "Alice"},
		},
	})

	router := gin.New()
	handler := NewSessionHandler(authenticator, registry)
	handler.Register(router.Group("/sessions"), RequireSession(registry))
	return router, registry
}

func login(t *testing.T, router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	t.Helper()
	body, _ := json.Marshal(loginRequest{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/sessions/", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestLoginEndpoint(t *testing.T) {
	router, registry := newSessionRouter()

	w := login(t, router, "alice", "secret")

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp loginResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "owner-1", resp.OwnerID)
	assert.Equal(t, "customer", resp.Role)
	assert.Equal(t, 1, registry.ActiveCount())
}

func TestLoginEndpoint_BadCredentials(t *testing.T) {
	router, registry := newSessionRouter()

	w := login(t, router, "alice", "wrong")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, 0, registry.ActiveCount())
}

func TestLoginEndpoint_SecondLoginInvalidatesFirstToken(t *testing.T) {
	router, registry := newSessionRouter()

	var first, second loginResponse
	json.Unmarshal(login(t, router, "alice", "secret").Body.Bytes(), &first)
	json.Unmarshal(login(t, router, "alice", "secret").Body.Bytes(), &second)

	ctx := httptest.NewRequest(http.MethodGet, "/", nil).Context()
	assert.False(t, registry.Validate(ctx, "owner-1", first.Token))
	assert.True(t, registry.Validate(ctx, "owner-1", second.Token))
}

func TestLogoutEndpoint(t *testing.T) {
	router, registry := newSessionRouter()

	var resp loginResponse
	json.Unmarshal(login(t, router, "alice", "secret").Body.Bytes(), &resp)

	req := httptest.NewRequest(http.MethodDelete, "/sessions/", nil)
	req.Header.Set("X-Owner-ID", "owner-1")
	req.Header.Set("Authorization", "Bearer "+resp.Token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, registry.ActiveCount())
}

func TestLogoutEndpoint_MissingToken(t *testing.T) {
	router, _ := newSessionRouter()

	req := httptest.NewRequest(http.MethodDelete, "/sessions/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	registry := session.NewRegistry(time.Minute, nil, zap.NewNop())

	router := gin.New()
	router.GET("/protected", RequireSession(registry), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"owner": c.GetString(ContextOwnerID)})
	})

	s, _ := registry.Create(httptest.NewRequest(http.MethodGet, "/", nil).Context(), "owner-1", "customer")

	testCases := []struct {
		name   string
		owner  string
		header string
		want   int
	}{
		{"valid", "owner-1", "Bearer " + s.Token, http.StatusOK},
		{"wrong token", "owner-1", "Bearer nope", http.StatusUnauthorized},
		{"missing owner header", "", "Bearer " + s.Token, http.StatusUnauthorized},
		{"malformed authorization", "owner-1", s.Token, http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tc.owner != "" {
				req.Header.Set("X-Owner-ID", tc.owner)
			}
			req.Header.Set("Authorization", tc.header)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tc.want, w.Code)
		})
	}
}
