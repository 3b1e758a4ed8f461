package api

import (
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/service"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestAuthHandler(t *testing.T) {
	s := newTestServer()

	t.Run("register maps a duplicate email to 409", func(t *testing.T) {
		s.auth.On("Register", mock.Anything, "Ann", "taken@example.com", "password1").
			Return(nil, service.ErrUserAlreadyExists)

		w := s.do(t, http.MethodPost, "/api/v1/auth/register",
			RegisterRequest{Name: "Ann", Email: "taken@example.com", Password: "password1"}, "")
		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, service.ErrUserAlreadyExists.Error(), errorMessage(t, w))
	})

	t.Run("register rejects short passwords before the service", func(t *testing.T) {
		w := s.do(t, http.MethodPost, "/api/v1/auth/register",
			RegisterRequest{Name: "Bo", Email: "bo@example.com", Password: "short"}, "")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.auth.AssertNotCalled(t, "Register", mock.Anything, "Bo", mock.Anything, mock.Anything)
	})

	t.Run("login returns the token and user", func(t *testing.T) {
		user := &domain.User{ID: primitive.NewObjectID(), Name: "Cy", Email: "cy@example.com", Role: domain.RoleMember}
		s.auth.On("Login", mock.Anything, "cy@example.com", "password1").Return("tok", user, nil)

		w := s.do(t, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: "cy@example.com", Password: "password1"}, "")
		require.Equal(t, http.StatusOK, w.Code)
		var resp LoginResponse
		decode(t, w, &resp)
		assert.Equal(t, "tok", resp.Token)
		assert.Equal(t, user.ID.Hex(), resp.User.ID)
	})

	t.Run("bad credentials are 401", func(t *testing.T) {
		s.auth.On("Login", mock.Anything, "cy@example.com", "wrong-pass").Return("", nil, service.ErrAuthenticationFailed)

		w := s.do(t, http.MethodPost, "/api/v1/auth/login", LoginRequest{Email: "cy@example.com", Password: "wrong-pass"}, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("me echoes the token subject", func(t *testing.T) {
		userID := primitive.NewObjectID()
		w := s.do(t, http.MethodGet, "/api/v1/me", nil, signToken(t, userID, domain.RoleAdmin, time.Hour))
		require.Equal(t, http.StatusOK, w.Code)
		var id IdentityResponse
		decode(t, w, &id)
		assert.Equal(t, userID.Hex(), id.UserID)
		assert.Equal(t, domain.RoleAdmin, id.Role)
	})
}
