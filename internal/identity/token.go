// internal/identity/token.go
package identity

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// IssueToken mints a provider-style token. Only development tooling and
// tests use this; production tokens come from the identity provider.
func IssueToken(secret, issuer string, id Identity, ttl time.Duration) (string, error) {
	claims := profileClaims{
		Email:           id.Email,
		FirstName:       id.FirstName,
		LastName:        id.LastName,
		ProfileImageURL: id.ProfileImageURL,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    issuer,
			Subject:   id.UserID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
