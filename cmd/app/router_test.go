package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fooding/internal/api/controllers"
	"fooding/internal/config"
	mem "fooding/pkg/memcache"
	"fooding/pkg/middleware"
	"fooding/pkg/utils"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return ProvideRouter(RouterParams{
		Config:      config.Config{LogLevel: "debug", CORSOrigins: []string{"http://localhost:3000"}},
		Logger:      zap.NewNop(),
		Auth:        middleware.NewAuthenticator(utils.NewTokenIssuer("secret", time.Hour), mem.NewRevokedSessions()),
		Accounts:    controllers.NewAccountController(nil, false),
		Search:      controllers.NewSearchController(nil, nil),
		Pantry:      controllers.NewPantryController(nil),
		CustomFoods: controllers.NewCustomFoodController(nil),
		Recipes:     controllers.NewRecipeController(nil),
	})
}

func TestRegisterRoutes(t *testing.T) {
	r := testRouter()

	got := map[string]bool{}
	for _, route := range r.Routes() {
		got[route.Method+" "+route.Path] = true
	}

	for _, want := range []string{
		"GET /healthz",
		"GET /metrics",
		"GET /search",
		"GET /food/:fdcId",
		"POST /register",
		"POST /login",
		"POST /logout",
		"GET /current_user",
		"POST /onboarding",
		"POST /oauth2callback",
		"GET /pantry",
		"POST /add_to_pantry",
		"POST /update_quantity",
		"POST /remove_item",
		"GET /custom_foods",
		"POST /create_new_food",
		"POST /add_custom_food",
		"POST /update_custom_food_ingredients",
		"POST /recipes/suggest",
	} {
		assert.True(t, got[want], want)
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	r := testRouter()

	for _, path := range []string{"/pantry", "/custom_foods", "/current_user"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	testRouter().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "ok", w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Trace-ID"))
}
