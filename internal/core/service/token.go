package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskvault/todo-api/internal/core/domain"
)

// TokenManager issues and verifies HS256-signed bearer tokens. Validity is
// purely a function of signature and expiry; there is no revocation list.
type TokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &TokenManager{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the user id as subject and the display name
// under the usuario claim, valid for the configured window.
func (m *TokenManager) Issue(userID, name string) (string, error) {
	claims := jwt.MapClaims{
		"sub":     userID,
		"usuario": name,
		"exp":     time.Now().Add(m.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(m.secret)
}

// Verify parses and validates a token, returning its subject. Malformed,
// mis-signed, and expired tokens all collapse to domain.ErrInvalidToken.
func (m *TokenManager) Verify(token string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil || !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", domain.ErrInvalidToken
	}
	return sub, nil
}
