package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sukryu/pAdmin/pkg/errors"
)

func TestJWTManager_RoundTrip(t *testing.T) {
	manager := NewJWTManager("test-secret-key", time.Hour)

	tests := []struct {
		name   string
		userID string
		roles  []string
	}{
		{"admin with roles", "admin", []string{"admin", "editor"}},
		{"empty user id", "", []string{"admin"}},
		{"nil roles", "admin", nil},
		{"empty roles", "admin", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token, err := manager.GenerateToken(tt.userID, tt.roles)
			require.NoError(t, err)
			assert.NotEmpty(t, token)

			claims, err := manager.ValidateToken(token)
			require.NoError(t, err)
			assert.Equal(t, tt.userID, claims.UserID)
			assert.Equal(t, tt.userID, claims.Subject)
			if len(tt.roles) == 0 {
				assert.Empty(t, claims.Roles)
			} else {
				assert.Equal(t, tt.roles, claims.Roles)
			}
		})
	}
}

func TestJWTManager_Rejects(t *testing.T) {
	manager := NewJWTManager("test-secret-key", time.Hour)

	t.Run("malformed token", func(t *testing.T) {
		claims, err := manager.ValidateToken("invalid.token.string")
		assert.ErrorIs(t, err, errors.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("expired token", func(t *testing.T) {
		short := NewJWTManager("test-secret-key", time.Nanosecond)
		token, err := short.GenerateToken("admin", []string{"admin"})
		require.NoError(t, err)

		time.Sleep(time.Millisecond)

		claims, err := short.ValidateToken(token)
		assert.ErrorIs(t, err, errors.ErrTokenExpired)
		assert.Contains(t, err.Error(), "token is expired")
		assert.Nil(t, claims)
	})

	t.Run("unsigned token", func(t *testing.T) {
		// alg "none"
		token := "eyJhbGciOiJub25lIiwidHlwIjoiSldUIn0.eyJzdWIiOiIxMjM0NTY3ODkwIiwibmFtZSI6IkpvaG4gRG9lIiwiaWF0IjoxNTE2MjM5MDIyfQ."
		claims, err := manager.ValidateToken(token)
		assert.ErrorIs(t, err, errors.ErrInvalidToken)
		assert.Nil(t, claims)
	})

	t.Run("different secret", func(t *testing.T) {
		token, err := manager.GenerateToken("admin", nil)
		require.NoError(t, err)

		claims, err := NewJWTManager("different-secret", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, errors.ErrInvalidToken)
		assert.Nil(t, claims)
	})
}
