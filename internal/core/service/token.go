package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/orchidarium/catalog-api/internal/core/domain"
)

const defaultTokenTTL = 30 * 24 * time.Hour

// TokenIssuer issues and verifies the HS256 access tokens used by the
// authorization gate. Tokens carry the account id, username, and admin flag,
// expire after the configured TTL, and are not revocable server-side.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime, used to align cookie expiry.
func (t *TokenIssuer) TTL() time.Duration {
	return t.ttl
}

// Issue signs a token for user. Two tokens for the same user differ only in
// their issuance timestamp.
func (t *TokenIssuer) Issue(user *domain.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       user.ID,
		"username": user.Username,
		"isAdmin":  user.IsAdmin,
		"iat":      now.Unix(),
		"exp":      now.Add(t.ttl).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks signature and expiry as a single step and only then exposes
// the embedded claims. Unverified token contents never leave this method.
func (t *TokenIssuer) Verify(raw string) (*domain.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}

	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	isAdmin, _ := claims["isAdmin"].(bool)
	if id == "" || username == "" {
		return nil, domain.ErrTokenInvalid
	}

	return &domain.Claims{UserID: id, Username: username, IsAdmin: isAdmin}, nil
}
