package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"liyu1981.xyz/vitals-console/pkg/models"
)

func TestIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)

	token, err := issuer.Issue(&models.User{ID: 7, Username: "root", Role: models.RoleSuperAdmin})
	require.NoError(t, err)

	claims, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "root", claims.Username)
	assert.Equal(t, models.RoleSuperAdmin, claims.Role)
}

func TestParseRejectsForeignAndExpiredTokens(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Hour)
	other := NewTokenIssuer("other-secret", time.Hour)
	expired := NewTokenIssuer("test-secret", -time.Minute)

	user := &models.User{ID: 1, Username: "u", Role: models.RoleUser}

	foreign, err := other.Issue(user)
	require.NoError(t, err)
	_, err = issuer.Parse(foreign)
	assert.ErrorIs(t, err, ErrInvalidToken)

	stale, err := expired.Issue(user)
	require.NoError(t, err)
	_, err = issuer.Parse(stale)
	assert.ErrorIs(t, err, ErrInvalidToken)

	_, err = issuer.Parse("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestBearerToken(t *testing.T) {
	token, ok := BearerToken("Bearer abc.def")
	assert.True(t, ok)
	assert.Equal(t, "abc.def", token)

	_, ok = BearerToken("Basic abc")
	assert.False(t, ok)

	_, ok = BearerToken("Bearer ")
	assert.False(t, ok)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cretpass")
	require.NoError(t, err)
	assert.True(t, CheckPassword("s3cretpass", hash))
	assert.False(t, CheckPassword("wrong", hash))
}

func TestGenerateTempPassword(t *testing.T) {
	for range 20 {
		pw, err := GenerateTempPassword(12)
		require.NoError(t, err)
		assert.Len(t, pw, 12)
		assert.True(t, strings.ContainsAny(pw, tempLower))
		assert.True(t, strings.ContainsAny(pw, tempUpper))
		assert.True(t, strings.ContainsAny(pw, tempDigits))
		assert.True(t, strings.ContainsAny(pw, tempSymbol))
		assert.NoError(t, CheckPasswordStrength(pw))
	}
}

func TestCheckPasswordStrength(t *testing.T) {
	assert.Error(t, CheckPasswordStrength("short1"))
	assert.Error(t, CheckPasswordStrength("onlyletters"))
	assert.Error(t, CheckPasswordStrength("1234567890"))
	assert.NoError(t, CheckPasswordStrength("letters123"))
}

func TestRoleRanking(t *testing.T) {
	assert.True(t, models.RoleSuperAdmin.AtLeast(models.RoleAdmin))
	assert.True(t, models.RoleAdmin.AtLeast(models.RoleAdmin))
	assert.False(t, models.RoleUser.AtLeast(models.RoleAdmin))
	assert.False(t, models.Role("GUEST").AtLeast(models.RoleAdmin))
}
