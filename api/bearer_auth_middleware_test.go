package api_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/matchup-app/matchup-backend/api"
	mock_api "github.com/matchup-app/matchup-backend/api/mocks"
	"github.com/matchup-app/matchup-backend/auth"
	lb "github.com/matchup-app/matchup-backend/lobby"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func setupProtectedRoute(t *testing.T) (*gin.Engine, *gomock.Controller, *mock_api.MockTokenVerifier) {
	t.Helper()
	ctrl := gomock.NewController(t)

	gin.SetMode(gin.TestMode)
	router := gin.Default()
	verifier := mock_api.NewMockTokenVerifier(ctrl)

	router.GET("/protected", api.BearerAuth(verifier), func(c *gin.Context) {
		user := c.MustGet("user").(lb.Member)
		c.JSON(http.StatusOK, gin.H{"userId": user.UserID, "email": user.Email})
	})

	return router, ctrl, verifier
}

func TestBearerAuth(t *testing.T) {

	t.Run("valid token puts the member in context", func(t *testing.T) {
		router, ctrl, verifier := setupProtectedRoute(t)
		defer ctrl.Finish()

		verifier.EXPECT().Verify("good-token").Return(&auth.Claims{
			UserID:   "user-b",
			Email:    "b@example.com",
			Nickname: "bob",
		}, nil).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer good-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, 200, w.Code)
		assert.JSONEq(t, `{"userId":"user-b","email":"b@example.com"}`, w.Body.String())
	})

	t.Run("missing header", func(t *testing.T) {
		router, ctrl, _ := setupProtectedRoute(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.Contains(t, w.Body.String(), `"UNAUTHENTICATED"`)
	})

	t.Run("malformed header", func(t *testing.T) {
		router, ctrl, _ := setupProtectedRoute(t)
		defer ctrl.Finish()

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "token-without-scheme")
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
	})

	t.Run("rejected token", func(t *testing.T) {
		router, ctrl, verifier := setupProtectedRoute(t)
		defer ctrl.Finish()

		verifier.EXPECT().Verify("bad-token").Return(nil, auth.ErrInvalidToken).Times(1)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", "Bearer bad-token")
		router.ServeHTTP(w, req)

		assert.Equal(t, 401, w.Code)
		assert.Contains(t, w.Body.String(), `"UNAUTHENTICATED"`)
	})
}
