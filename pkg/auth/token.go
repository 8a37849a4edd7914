package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token verification failures. Expiry is reported separately so callers can
// tell an operator to log in again rather than rejecting the account.
var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("invalid token")
)

// operatorClaims embeds the operator's public identity in the credential.
type operatorClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// TokenIssuer issues and verifies signed, time-bounded bearer credentials
// for operator sessions. The secret is process-wide and handed in explicitly.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
}

// NewTokenIssuer creates a TokenIssuer signing HS256 tokens valid for ttl.
func NewTokenIssuer(secret []byte, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: secret, ttl: ttl, issuer: "portfolio-backend"}
}

// Issue produces a bearer credential embedding the operator's username.
func (t *TokenIssuer) Issue(username string) (string, error) {
	now := time.Now()
	claims := &operatorClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    t.issuer,
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

// Verify checks the credential's signature and expiry and returns the
// embedded username. Expired tokens return ErrTokenExpired; anything else
// wrong with the token returns ErrTokenInvalid.
func (t *TokenIssuer) Verify(tokenString string) (string, error) {
	claims := &operatorClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrTokenExpired
		}
		return "", ErrTokenInvalid
	}
	if claims.Username == "" {
		return "", ErrTokenInvalid
	}
	return claims.Username, nil
}
