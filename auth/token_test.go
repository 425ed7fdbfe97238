package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NoobOtaku-terminal/vibe-commerce-cart/models"
)

func testUser() models.User {
	return models.User{
		ID:    "user-1",
		Email: "a@x.com",
		Role:  models.RoleUser,
	}
}

func TestIssueAndVerify(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.Equal(t, models.RoleUser, claims.Role)
}

func TestVerifyExpiredToken(t *testing.T) {
	svc := NewTokenService("test-secret", -time.Minute)

	token, err := svc.Issue(testUser())
	require.NoError(t, err)

	_, err = svc.Verify(token)
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestVerifyWrongSecret(t *testing.T) {
	issuer := NewTokenService("test-secret", time.Hour)
	verifier := NewTokenService("other-secret", time.Hour)

	token, err := issuer.Issue(testUser())
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrTokenInvalid)
}

func TestVerifyGarbage(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	for _, tok := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.Verify(tok)
		assert.ErrorIs(t, err, ErrTokenInvalid)
	}
}

func TestRoleFrozenAtIssuance(t *testing.T) {
	svc := NewTokenService("test-secret", time.Hour)

	admin := testUser()
	admin.Role = models.RoleAdmin
	token, err := svc.Issue(admin)
	require.NoError(t, err)

	// The token keeps the role it was issued with; verification never
	// consults the user store.
	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, claims.Role)
}
