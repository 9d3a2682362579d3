// Package token issues and verifies bearer tokens. Two verification schemes
// coexist: self-issued tokens (subject = username) and Supabase-issued tokens
// (subject = opaque external id, issuer pinned to the project URL). Verifiers
// are tried in a fixed order; the first to accept the token wins.
package token

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

// Verifier validates a raw bearer token and extracts its subject claim.
type Verifier interface {
	Verify(tokenString string) (subject string, err error)
}

// LocalVerifier validates tokens produced by Issuer.
type LocalVerifier struct {
	secret []byte
}

func NewLocalVerifier(secret string) *LocalVerifier {
	return &LocalVerifier{secret: []byte(secret)}
}

func (v *LocalVerifier) Verify(tokenString string) (string, error) {
	return verifyHS256(tokenString, v.secret, "")
}

// SupabaseVerifier validates tokens minted by a Supabase project. The issuer
// claim must equal "<project-url>/auth/v1" and expiry is mandatory.
type SupabaseVerifier struct {
	secret []byte
	issuer string
}

func NewSupabaseVerifier(secret, projectURL string) *SupabaseVerifier {
	return &SupabaseVerifier{
		secret: []byte(secret),
		issuer: projectURL + "/auth/v1",
	}
}

func (v *SupabaseVerifier) Verify(tokenString string) (string, error) {
	return verifyHS256(tokenString, v.secret, v.issuer)
}

// verifyHS256 parses and validates an HS256 token, optionally pinning the
// issuer, and returns the subject claim.
func verifyHS256(tokenString string, secret []byte, issuer string) (string, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secret, nil
	}, opts...)
	if err != nil || !tkn.Valid {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return sub, nil
}

// VerifyAny tries each verifier in order and returns the first accepted
// subject. All verifiers failing yields ErrInvalidToken.
func VerifyAny(tokenString string, verifiers ...Verifier) (string, error) {
	for _, v := range verifiers {
		if sub, err := v.Verify(tokenString); err == nil {
			return sub, nil
		}
	}
	return "", ErrInvalidToken
}
