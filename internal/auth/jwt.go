package auth

import (
	"errors"
	"time"

	"condopark/internal/entities"

	jwt "github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	Role   entities.Role `json:"role"`
	Tenant *string       `json:"tenant,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (t *TokenIssuer) Issue(id entities.Identity) (string, error) {
	now := t.now()
	claims := Claims{
		Role:   id.Role,
		Tenant: id.TenantID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(t.secret)
}

// Parse validates tokenStr and returns the identity it carries.
func (t *TokenIssuer) Parse(tokenStr string) (entities.Identity, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(*jwt.Token) (interface{}, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(t.now))
	if err != nil {
		return entities.Identity{}, err
	}
	c, ok := tok.Claims.(*Claims)
	if !ok || !tok.Valid {
		return entities.Identity{}, errors.New("invalid token")
	}
	if c.Subject == "" || !c.Role.Valid() {
		return entities.Identity{}, errors.New("invalid token claims")
	}
	return entities.Identity{UserID: c.Subject, Role: c.Role, TenantID: c.Tenant}, nil
}
