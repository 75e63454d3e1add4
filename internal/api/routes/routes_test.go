package routes

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"guardops-backend/internal/auth"
	"guardops-backend/internal/config"
	"guardops-backend/internal/database/models"
	"guardops-backend/internal/testutils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "routes-test-secret"

func testConfig() *config.Config {
	return &config.Config{
		Environment:        "test",
		JWTSecret:          testSecret,
		AuthConfigPath:     "testdata/missing-auth.yaml",
		RateLimitRequests:  1,
		RateLimitWindowSec: 60,
	}
}

func tokenFor(t *testing.T, role models.UserRole) string {
	t.Helper()
	service, err := auth.NewAuthService(&auth.AuthConfig{
		JWTSecret: testSecret,
		Issuer:    auth.DefaultIssuer,
		TokenTTL:  time.Hour,
	})
	require.NoError(t, err)

	user := &models.User{Username: "user." + string(role), Role: role}
	user.ID = uuid.New()
	token, err := service.GenerateJWT(user)
	require.NoError(t, err)
	return token
}

func do(router http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	client := testutils.SetupHTTPTest(router)
	var payload interface{}
	if body != "" {
		payload = body
	}
	if token == "" {
		return client.MakeRequest(method, path, payload)
	}
	return client.MakeRequestWithHeaders(method, path, payload, testutils.BearerHeader(token))
}

func setupRouter(t *testing.T, redisClient *redis.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	t.Setenv("JWT_SECRET", "")

	router, err := SetupRoutes(nil, redisClient, testConfig())
	require.NoError(t, err)
	return router
}

func TestSetupRoutesRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	cfg := testConfig()
	cfg.JWTSecret = ""

	_, err := SetupRoutes(nil, nil, cfg)
	assert.Error(t, err)
}

func TestPublicAndUnknownRoutes(t *testing.T) {
	router := setupRouter(t, nil)

	w := do(router, http.MethodGet, "/health/live", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = do(router, http.MethodGet, "/api/v2/nothing", "", "")
	testutils.AssertErrorResponse(t, w, http.StatusNotFound, "Endpoint not found")
}

func TestAPIRequiresToken(t *testing.T) {
	router := setupRouter(t, nil)

	w := do(router, http.MethodGet, "/api/v1/patterns", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = do(router, http.MethodGet, "/api/v1/patterns", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminRoutesRejectGuards(t *testing.T) {
	router := setupRouter(t, nil)
	guard := tokenFor(t, models.UserRoleGuard)

	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/v1/patterns"},
		{http.MethodPut, "/api/v1/patterns/" + uuid.NewString()},
		{http.MethodDelete, "/api/v1/patterns/" + uuid.NewString()},
		{http.MethodPost, "/api/v1/shifts"},
		{http.MethodPost, "/api/v1/pattern-assignments"},
		{http.MethodPost, "/api/v1/roster/generate"},
		{http.MethodPost, "/api/v1/roster/preview"},
	}
	for _, tc := range cases {
		w := do(router, tc.method, tc.path, guard, `{}`)
		assert.Equal(t, http.StatusForbidden, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestGenerateIsRateLimited(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	router := setupRouter(t, client)
	admin := tokenFor(t, models.UserRoleAdmin)

	// malformed body is rejected before any store access
	w := do(router, http.MethodPost, "/api/v1/roster/generate", admin, `{`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = do(router, http.MethodPost, "/api/v1/roster/generate", admin, `{`)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}
