package routes

import (
	"fitconsole/api/handlers"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupTestRouter(basePath string) *Router {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	return NewRouter(engine, basePath)
}

func TestNewRouter(t *testing.T) {
	router := setupTestRouter("")

	assert.NotNil(t, router)
	assert.NotNil(t, router.Engine)
	assert.NotNil(t, router.api)
	assert.Equal(t, "/", router.api.BasePath())
}

func TestSetupRoutes(t *testing.T) {
	router := setupTestRouter("/make-server-91550dad/")

	router.SetupRoutes(
		&handlers.MemberHandler{},
		&handlers.PaymentHandler{},
		&handlers.AccessLogHandler{},
		&handlers.DashboardHandler{},
		&handlers.SeedHandler{},
	)

	registered := map[string]bool{}
	for _, route := range router.Engine.Routes() {
		registered[route.Method+" "+route.Path] = true
	}

	expected := []string{
		"GET /make-server-91550dad/healthz",
		"GET /make-server-91550dad/members",
		"POST /make-server-91550dad/members",
		"GET /make-server-91550dad/payments",
		"POST /make-server-91550dad/payments",
		"GET /make-server-91550dad/access-logs",
		"POST /make-server-91550dad/access-logs",
		"GET /make-server-91550dad/dashboard-stats",
		"GET /make-server-91550dad/dashboard-stats/history",
		"POST /make-server-91550dad/seed-data",
	}
	for _, route := range expected {
		assert.True(t, registered[route], route)
	}
	assert.Len(t, registered, len(expected))
}

func TestHealthz(t *testing.T) {
	router := setupTestRouter("")
	router.SetupRoutes()

	w := httptest.NewRecorder()
	router.Engine.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
