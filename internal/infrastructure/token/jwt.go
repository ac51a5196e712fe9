package token

import (
	"errors"
	"fmt"
	"time"

	domain "github.com/aromahub/perfumeshop/internal/domain/account"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTTL is the token validity window.
const DefaultTTL = 7 * 24 * time.Hour

var ErrInvalidToken = errors.New("token: invalid or expired")

type signedClaims struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	jwt.RegisteredClaims
}

// JWTIssuer signs and verifies HS256 bearer tokens carrying an account
// identity.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (i *JWTIssuer) Issue(claims domain.TokenClaims) (domain.IssuedToken, error) {
	now := i.now()
	expiresAt := now.Add(i.ttl)

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, signedClaims{
		Email: claims.Email,
		Name:  claims.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   claims.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := t.SignedString(i.secret)
	if err != nil {
		return domain.IssuedToken{}, fmt.Errorf("sign token: %w", err)
	}

	return domain.IssuedToken{
		Token:     signed,
		ExpiresAt: expiresAt.Unix(),
		ExpiresIn: int64(i.ttl.Seconds()),
	}, nil
}

func (i *JWTIssuer) Verify(tokenString string) (*domain.TokenClaims, error) {
	var claims signedClaims
	t, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Header["alg"])
		}
		return i.secret, nil
	}, jwt.WithTimeFunc(i.now))
	if err != nil || !t.Valid {
		return nil, ErrInvalidToken
	}

	return &domain.TokenClaims{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, nil
}
