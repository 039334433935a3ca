package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/JGS-JAVA/albaing-personalpart/domain"
	"github.com/JGS-JAVA/albaing-personalpart/internal/mocks"
)

func newFindRouter(findSvc *mocks.MockFindService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewFindHandlers(findSvc, zap.NewNop())
	r := gin.New()
	r.GET("/api/auth/find/user/id", h.FindUserEmail)
	r.GET("/api/auth/find/company/id", h.FindCompanyEmail)
	r.POST("/api/auth/verify/user", h.VerifyUser)
	r.POST("/api/auth/update/user/password", h.UpdateUserPassword)
	return r
}

func TestFindUserEmailEndpoint(t *testing.T) {
	findSvc := mocks.NewMockFindService()
	findSvc.FindUserEmailFunc = func(ctx context.Context, name, phone string) (*domain.User, error) {
		if name == "김철수" && phone == "010-1234-5678" {
			return &domain.User{Email: "person@example.com"}, nil
		}
		return nil, domain.ErrUserNotFound
	}
	r := newFindRouter(findSvc)

	w := performJSON(r, http.MethodGet,
		"/api/auth/find/user/id?userName=김철수&userPhone=010-1234-5678", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "person@example.com")

	// A miss is still a 200 with an empty body.
	w = performJSON(r, http.MethodGet,
		"/api/auth/find/user/id?userName=김철수&userPhone=010-0000-0000", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "{}", w.Body.String())

	w = performJSON(r, http.MethodGet, "/api/auth/find/user/id?userName=김철수", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestVerifyUserEndpoint(t *testing.T) {
	findSvc := mocks.NewMockFindService()
	findSvc.VerifyUserCredentialsFunc = func(ctx context.Context, email, password string) (bool, error) {
		return password == "secret1!a", nil
	}
	r := newFindRouter(findSvc)

	w := performJSON(r, http.MethodPost, "/api/auth/verify/user",
		gin.H{"userEmail": "person@example.com", "userPassword": "secret1!a"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(r, http.MethodPost, "/api/auth/verify/user",
		gin.H{"userEmail": "person@example.com", "userPassword": "wrong"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestUpdateUserPasswordEndpoint(t *testing.T) {
	findSvc := mocks.NewMockFindService()
	findSvc.ResetUserPasswordFunc = func(ctx context.Context, email, newPassword string) error {
		if newPassword == "weak" {
			return domain.NewValidationError("userPassword", "password too weak")
		}
		return nil
	}
	r := newFindRouter(findSvc)

	w := performJSON(r, http.MethodPost, "/api/auth/update/user/password",
		gin.H{"email": "person@example.com", "newPassword": "newpass1!"})
	assert.Equal(t, http.StatusOK, w.Code)

	w = performJSON(r, http.MethodPost, "/api/auth/update/user/password",
		gin.H{"email": "person@example.com", "newPassword": "weak"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
