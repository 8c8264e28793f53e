package security

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecomovil/platform/pkg/logger"
)

const testSecret = "test-signing-secret"

func TestIssuerAndVerifierAgree(t *testing.T) {
	issuer := NewIssuer(testSecret, 7)
	verifier := NewVerifier(testSecret, logger.NewNoopLogger())

	token, err := issuer.IssueForUser("alice", []string{RoleUser}, 42)
	require.NoError(t, err)

	assert.True(t, verifier.Verify(context.Background(), token))

	subject, err := verifier.SubjectOf(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)

	roles, err := verifier.RolesOf(token)
	require.NoError(t, err)
	assert.Equal(t, []string{RoleUser}, roles)

	userID, err := verifier.UserIDOf(token)
	require.NoError(t, err)
	require.NotNil(t, userID)
	assert.Equal(t, int64(42), *userID)
}

func TestIssuerExpirationHonorsConfiguredDays(t *testing.T) {
	issuer := NewIssuer(testSecret, 7)
	issuedAt := time.Now().Truncate(time.Second)
	issuer.now = func() time.Time { return issuedAt }

	token, err := issuer.Issue("alice")
	require.NoError(t, err)

	claims, err := NewCodec().Decode(token, []byte(testSecret))
	require.NoError(t, err)
	assert.Equal(t, issuedAt.AddDate(0, 0, 7).Unix(), claims.ExpiresAt.Unix())
	assert.Equal(t, issuedAt.Unix(), claims.IssuedAt.Unix())
}

func TestVerifierRejectsForeignAndBrokenTokens(t *testing.T) {
	verifier := NewVerifier(testSecret, logger.NewNoopLogger())
	foreign := NewIssuer("some-other-secret", 7)

	token, err := foreign.Issue("mallory")
	require.NoError(t, err)

	ctx := context.Background()
	assert.False(t, verifier.Verify(ctx, token))
	assert.False(t, verifier.Verify(ctx, "not-a-token"))
	assert.False(t, verifier.Verify(ctx, ""))
}

func TestRolesOfTokenWithoutRolesIsEmpty(t *testing.T) {
	issuer := NewIssuer(testSecret, 7)
	verifier := NewVerifier(testSecret, logger.NewNoopLogger())

	token, err := issuer.Issue("bob")
	require.NoError(t, err)

	roles, err := verifier.RolesOf(token)
	require.NoError(t, err)
	assert.Empty(t, roles)
	assert.NotNil(t, roles)

	userID, err := verifier.UserIDOf(token)
	require.NoError(t, err)
	assert.Nil(t, userID)
}

func TestResolvePrincipal(t *testing.T) {
	issuer := NewIssuer(testSecret, 7)
	verifier := NewVerifier(testSecret, logger.NewNoopLogger())

	token, err := issuer.IssueForUser("alice", []string{RoleAdmin, RoleUser}, 7)
	require.NoError(t, err)

	principal, err := ResolvePrincipal(verifier, token)
	require.NoError(t, err)
	assert.Equal(t, "alice", principal.Username)
	assert.True(t, principal.HasAuthority(RoleAdmin))
	assert.True(t, principal.HasAuthority(RoleUser))
	assert.False(t, principal.HasAuthority("ROLE_AUDITOR"))
	require.NotNil(t, principal.UserID)
	assert.Equal(t, int64(7), *principal.UserID)
}
