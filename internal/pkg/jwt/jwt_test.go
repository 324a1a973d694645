package jwt

import (
	"testing"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAccessToken(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("test-secret-key-for-jwt", "1h")

	tokenStr, expiresAt, err := svc.GenerateAccessToken("user-123", "emp@example.com", user.RoleEmployee)
	require.NoError(t, err)
	require.NotEmpty(t, tokenStr)
	assert.Greater(t, expiresAt, time.Now().Unix())

	decoded, err := svc.JWTAuth().Decode(tokenStr)
	require.NoError(t, err)

	uid, _ := decoded.Get("user_id")
	assert.Equal(t, "user-123", uid)
	role, _ := decoded.Get("role")
	assert.Equal(t, "employee", role)
	typ, _ := decoded.Get("type")
	assert.Equal(t, "access", typ)
}

func TestGenerateAccessTokenBadExpiration(t *testing.T) {
	t.Parallel()
	svc := NewJWTService("test-secret-key-for-jwt", "not-a-duration")

	_, _, err := svc.GenerateAccessToken("user-123", "emp@example.com", user.RoleAdmin)
	assert.Error(t, err)
}
