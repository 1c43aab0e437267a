// internal/handlers/auth_test.go
package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/clothify/clothify-backend/internal/config"
	"github.com/clothify/clothify-backend/internal/services"
)

func setupActivationRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	authService := services.NewAuthService(nil, &config.Config{})
	authHandler := NewAuthHandler(authService)

	r := gin.New()
	r.GET("/activate/:uid/:token", authHandler.Activate)
	return r
}

// A malformed uid fails before any lookup, so this exercises the full
// HTTP mapping without a database.
func TestActivateRejectsMalformedUID(t *testing.T) {
	r := setupActivationRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/activate/not-a-uuid/sometoken", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid activation link")
}
