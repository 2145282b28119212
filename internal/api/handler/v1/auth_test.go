package v1

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/starevents/starevents-api/internal/api/handler/v1/response"
	"github.com/starevents/starevents-api/internal/api/middleware"
	"github.com/starevents/starevents-api/internal/config"
	"github.com/starevents/starevents-api/internal/domain"
	"github.com/starevents/starevents-api/internal/pkg/jwthelper"
	"github.com/starevents/starevents-api/internal/service"
)

func newAuthRouter(svc AuthService) *gin.Engine {
	h := NewAuthHandler(&config.APIConfig{JWTSigningKey: testSigningKey, JWTTTL: time.Hour}, svc)

	router := newTestRouter(false, func(g *gin.RouterGroup) {
		g.POST("/auth/signup", h.HandleSignup)
		g.POST("/auth/login", h.HandleLogin)
	})
	secured := router.Group("/api/v1", middleware.NewAuthenticator(testSigningKey).VerifyJWT())
	secured.POST("/auth/password", h.HandleChangePassword)

	return router
}

func TestAuthHandler_HandleSignup(t *testing.T) {
	t.Run("invalid fields", func(t *testing.T) {
		svc := &mockAuthService{}
		rec := doRequest(t, newAuthRouter(svc), http.MethodPost, "/api/v1/auth/signup", "", gin.H{
			"email":    "not-an-email",
			"password": "lettersonly",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		body := decodeErr(t, rec)
		assert.Contains(t, body.Fields, "email")
		assert.Contains(t, body.Fields, "password")
		assert.Contains(t, body.Fields, "first_name")
		svc.AssertNotCalled(t, "Signup")
	})

	t.Run("admin cannot self register", func(t *testing.T) {
		svc := &mockAuthService{}
		rec := doRequest(t, newAuthRouter(svc), http.MethodPost, "/api/v1/auth/signup", "", gin.H{
			"email":            "root@example.com",
			"password":         "secret123",
			"confirm_password": "secret123",
			"first_name":       "Root",
			"last_name":        "User",
			"role":             "Admin",
		})

		require.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeErr(t, rec).Fields, "role")
	})

	t.Run("created", func(t *testing.T) {
		svc := &mockAuthService{}
		svc.On("Signup", mock.Anything, mock.MatchedBy(func(u domain.User) bool {
			return u.Email == "jane@example.com" && u.Role == domain.RoleOrganizer && u.Password == "secret123"
		})).Return(domain.User{ID: 4, Email: "jane@example.com", Role: domain.RoleOrganizer}, nil)

		rec := doRequest(t, newAuthRouter(svc), http.MethodPost, "/api/v1/auth/signup", "", gin.H{
			"email":            "jane@example.com",
			"password":         "secret123",
			"confirm_password": "secret123",
			"first_name":       "Jane",
			"last_name":        "Doe",
			"role":             "Organizer",
		})

		require.Equal(t, http.StatusCreated, rec.Code)
		var user domain.User
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &user))
		assert.Equal(t, uint(4), user.ID)
		assert.NotContains(t, rec.Body.String(), "secret123")
		svc.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		svc := &mockAuthService{}
		svc.On("Signup", mock.Anything, mock.Anything).Return(domain.User{}, service.ErrUserEmailExists)

		rec := doRequest(t, newAuthRouter(svc), http.MethodPost, "/api/v1/auth/signup", "", gin.H{
			"email":            "jane@example.com",
			"password":         "secret123",
			"confirm_password": "secret123",
			"first_name":       "Jane",
			"last_name":        "Doe",
		})

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestAuthHandler_HandleLogin(t *testing.T) {
	svc := &mockAuthService{}
	svc.On("Login", mock.Anything, "jane@example.com", "wrong-pass1").Return(domain.User{}, service.ErrWrongPassword)
	svc.On("Login", mock.Anything, "jane@example.com", "secret123").
		Return(domain.User{ID: 4, Email: "jane@example.com", Role: domain.RoleCustomer}, nil)
	router := newAuthRouter(svc)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "jane@example.com", "password": "wrong-pass1"})
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "wrong email or password", decodeErr(t, rec).ErrorText)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/login", "", gin.H{"email": "jane@example.com", "password": "secret123"})
	require.Equal(t, http.StatusOK, rec.Code)

	var body response.LoginResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	claims, err := jwthelper.ParseToken([]byte(testSigningKey), body.Token)
	require.NoError(t, err)
	assert.Equal(t, uint(4), claims.UserID)
	assert.Equal(t, string(domain.RoleCustomer), claims.Role)
}

func TestAuthHandler_HandleChangePassword(t *testing.T) {
	svc := &mockAuthService{}
	actor := domain.Actor{UserID: 4, Role: domain.RoleCustomer}
	svc.On("ChangePassword", mock.Anything, actor, "secret123", "another123").Return(nil)
	router := newAuthRouter(svc)

	rec := doRequest(t, router, http.MethodPost, "/api/v1/auth/password", "", gin.H{})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/password", tokenFor(t, 4, domain.RoleCustomer), gin.H{
		"current_password": "secret123",
		"new_password":     "another123",
		"confirm_password": "another12",
	})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeErr(t, rec).Fields, "confirm_password")

	rec = doRequest(t, router, http.MethodPost, "/api/v1/auth/password", tokenFor(t, 4, domain.RoleCustomer), gin.H{
		"current_password": "secret123",
		"new_password":     "another123",
		"confirm_password": "another123",
	})
	assert.Equal(t, http.StatusNoContent, rec.Code)
	svc.AssertExpectations(t)
}
