// Package auth implements token issuance and password hashing for the
// to-do backend. Tokens are HMAC-SHA256 JWTs carrying the user id as the
// subject claim.
package auth

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/taskhive/todo-api/internal/core/domain"
)

// ErrInvalidToken covers every validation failure: bad signature, wrong
// issuer or audience, expired or malformed token. Callers get no detail
// about which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Identity is the authenticated caller derived from validated claims.
// UserID 0 means the token carried no usable subject; data scoped to owner
// 0 matches nothing because real ids start at 1.
type Identity struct {
	UserID   int64
	Username string
}

// Claims is the token payload: a display-name claim on top of the
// registered set. The subject carries the user id in decimal.
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Issuer mints and validates tokens with a shared HMAC secret. The zero
// value is unusable; construct with NewIssuer.
type Issuer struct {
	secret   []byte
	issuer   string
	audience string
	ttl      time.Duration
}

func NewIssuer(secret, issuer, audience string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		ttl:      ttl,
	}
}

// Issue signs a token for user, valid for the configured window.
func (i *Issuer) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(user.ID, 10),
			Issuer:    i.issuer,
			Audience:  jwt.ClaimStrings{i.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Validate checks signature, algorithm, issuer, audience and expiry, and
// returns the caller identity on success.
func (i *Issuer) Validate(raw string) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(i.issuer),
		jwt.WithAudience(i.audience),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return Identity{}, ErrInvalidToken
	}
	return identityFromClaims(claims), nil
}

// identityFromClaims maps a validated claim set to an Identity. An absent
// or non-numeric subject becomes user id 0 rather than an error: such a
// caller is authenticated but owns nothing.
func identityFromClaims(c *Claims) Identity {
	id, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil {
		id = 0
	}
	return Identity{UserID: id, Username: c.Username}
}
