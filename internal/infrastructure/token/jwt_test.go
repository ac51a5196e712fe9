package token

import (
	"testing"
	"time"

	domain "github.com/aromahub/perfumeshop/internal/domain/account"
	"github.com/stretchr/testify/require"
)

var testClaims = domain.TokenClaims{
	ID:    "64a0f5f5f5f5f5f5f5f5f5f5",
	Email: "ada@example.com",
	Name:  "Ada",
}

func TestIssueAndVerify(t *testing.T) {
	issuer := NewJWTIssuer("secret", time.Hour)

	issued, err := issuer.Issue(testClaims)
	require.NoError(t, err)
	require.NotEmpty(t, issued.Token)
	require.Equal(t, int64(3600), issued.ExpiresIn)

	got, err := issuer.Verify(issued.Token)
	require.NoError(t, err)
	require.Equal(t, &testClaims, got)
}

func TestDefaultTTL(t *testing.T) {
	issuer := NewJWTIssuer("secret", 0)

	issued, err := issuer.Issue(testClaims)
	require.NoError(t, err)
	require.Equal(t, int64(DefaultTTL.Seconds()), issued.ExpiresIn)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	issued, err := NewJWTIssuer("secret-a", time.Hour).Issue(testClaims)
	require.NoError(t, err)

	_, err = NewJWTIssuer("secret-b", time.Hour).Verify(issued.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	issuer := NewJWTIssuer("secret", time.Hour)

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := issuer.Verify(tok)
		require.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestVerifyRejectsExpired(t *testing.T) {
	issuer := NewJWTIssuer("secret", time.Hour)
	issuer.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }

	issued, err := issuer.Issue(testClaims)
	require.NoError(t, err)

	issuer.now = time.Now
	_, err = issuer.Verify(issued.Token)
	require.ErrorIs(t, err, ErrInvalidToken)
}
