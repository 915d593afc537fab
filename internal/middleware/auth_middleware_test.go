package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/foodiespot/foodiespot-backend/internal/app/model"
	"github.com/foodiespot/foodiespot-backend/pkg/util"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func issueTestToken(t *testing.T, role string, expiry time.Duration) string {
	t.Helper()
	tokens, err := util.GenerateTokenPair(1, "test@example.com", role, testSecret, expiry, 24*time.Hour)
	require.NoError(t, err)
	return tokens.AccessToken
}

func setupAuthMiddlewareTest(roles ...model.UserRole) *gin.Engine {
	gin.SetMode(gin.TestMode)
	authMiddleware := NewAuthMiddleware(testSecret)

	router := gin.New()
	handlers := []gin.HandlerFunc{authMiddleware.Authenticate()}
	if len(roles) > 0 {
		handlers = append(handlers, authMiddleware.RequireRole(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		userID, _ := GetUserID(c)
		role, _ := GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "role": role})
	})
	router.GET("/protected", handlers...)

	return router
}

func doRequest(router *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("GET", "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	router := setupAuthMiddlewareTest()

	tests := []struct {
		name       string
		authHeader string
		wantStatus int
		wantCode   string
	}{
		{
			name:       "Valid token",
			authHeader: "Bearer " + issueTestToken(t, "customer", 15*time.Minute),
			wantStatus: http.StatusOK,
		},
		{
			name:       "Missing header",
			authHeader: "",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_UNAUTHORIZED",
		},
		{
			name:       "Malformed header",
			authHeader: "NotBearer token",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_TOKEN_INVALID",
		},
		{
			name:       "Garbage token",
			authHeader: "Bearer not-a-jwt",
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_TOKEN_INVALID",
		},
		{
			name:       "Expired token",
			authHeader: "Bearer " + issueTestToken(t, "customer", -time.Minute),
			wantStatus: http.StatusUnauthorized,
			wantCode:   "AUTH_TOKEN_EXPIRED",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRequest(router, tt.authHeader)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantCode != "" {
				assert.Contains(t, w.Body.String(), tt.wantCode)
			}
		})
	}
}

func TestAuthMiddleware_RequireRole(t *testing.T) {
	ownerOnly := setupAuthMiddlewareTest(model.RoleShopOwner)

	t.Run("Matching role passes", func(t *testing.T) {
		w := doRequest(ownerOnly, "Bearer "+issueTestToken(t, "shop_owner", 15*time.Minute))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Wrong role gets 403", func(t *testing.T) {
		w := doRequest(ownerOnly, "Bearer "+issueTestToken(t, "customer", 15*time.Minute))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("Any listed role passes", func(t *testing.T) {
		either := setupAuthMiddlewareTest(model.RoleCustomer, model.RoleShopOwner)
		w := doRequest(either, "Bearer "+issueTestToken(t, "customer", 15*time.Minute))
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthMiddleware_OptionalAuthenticate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	authMiddleware := NewAuthMiddleware(testSecret)

	router := gin.New()
	router.GET("/public", authMiddleware.OptionalAuthenticate(), func(c *gin.Context) {
		if userID, ok := GetUserID(c); ok {
			c.JSON(http.StatusOK, gin.H{"user_id": userID})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": nil})
	})

	t.Run("Guest passes through", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/public", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "null")
	})

	t.Run("Signed-in user is recognized", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/public", nil)
		req.Header.Set("Authorization", "Bearer "+issueTestToken(t, "customer", 15*time.Minute))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"user_id":1`)
	})
}
