//go:build unit

package usecase_test

import (
	"testing"
	"time"

	"leather-sandals-store/internal/domain/user"
	"leather-sandals-store/internal/pkg/jwt"
	"leather-sandals-store/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateToken(t *testing.T) {
	svc := jwt.NewService("unit-test-secret-unit-test-secret", 15*time.Minute, time.Hour)
	v := usecase.NewTokenValidator(svc)
	userID := uuid.New()

	t.Run("access token resolves the caller", func(t *testing.T) {
		token, err := svc.GenerateAccessToken(userID, user.RoleAdmin)
		require.NoError(t, err)

		id, role, err := v.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, userID, id)
		assert.Equal(t, user.RoleAdmin, role)
	})

	t.Run("refresh token is refused", func(t *testing.T) {
		token, err := svc.GenerateRefreshToken(userID, user.RoleCustomer)
		require.NoError(t, err)

		_, _, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, usecase.ErrNotAccessToken)
	})

	t.Run("token from another key", func(t *testing.T) {
		other := jwt.NewService("some-other-secret-some-other-secret", time.Minute, time.Hour)
		token, err := other.GenerateAccessToken(userID, user.RoleCustomer)
		require.NoError(t, err)

		_, _, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		expired := jwt.NewService("unit-test-secret-unit-test-secret", -time.Minute, time.Hour)
		token, err := expired.GenerateAccessToken(userID, user.RoleCustomer)
		require.NoError(t, err)

		_, _, err = v.ValidateToken(token)
		assert.ErrorIs(t, err, jwt.ErrExpiredToken)
	})
}
