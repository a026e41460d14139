// internal/identity/verifier_test.go
package identity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestVerifyRoundTrip(t *testing.T) {
	verifier := NewJWTVerifier("test-secret", "test-issuer")

	token, err := IssueToken("test-secret", "test-issuer", Identity{
		UserID:    "user-1",
		Email:     "user-1@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}, time.Hour)
	assert.NoError(t, err)

	id, err := verifier.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "user-1", id.UserID)
	assert.Equal(t, "user-1@example.com", id.Email)
	assert.Equal(t, "Ada", id.FirstName)
}

func TestVerifyRejectsWrongSecret(t *testing.T) {
	verifier := NewJWTVerifier("test-secret", "test-issuer")

	token, err := IssueToken("other-secret", "test-issuer", Identity{UserID: "user-1"}, time.Hour)
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsWrongIssuer(t *testing.T) {
	verifier := NewJWTVerifier("test-secret", "test-issuer")

	token, err := IssueToken("test-secret", "other-issuer", Identity{UserID: "user-1"}, time.Hour)
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpiredToken(t *testing.T) {
	verifier := NewJWTVerifier("test-secret", "test-issuer")

	token, err := IssueToken("test-secret", "test-issuer", Identity{UserID: "user-1"}, -time.Minute)
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRequiresSubject(t *testing.T) {
	verifier := NewJWTVerifier("test-secret", "test-issuer")

	token, err := IssueToken("test-secret", "test-issuer", Identity{}, time.Hour)
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	verifier := NewJWTVerifier("test-secret", "test-issuer")

	_, err := verifier.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
