package service

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/campus/pkg/jwtx"
)

// TokenService issues and verifies stateless HS256 session tokens.
// There is no revocation list; a token stays valid until it expires.
// It satisfies jwtx.Verifier so the HTTP auth middleware can use it directly.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration
	Clock    Clock
}

// NewTokenService builds signer and verifier from one shared secret.
func NewTokenService(secret []byte, issuer string, ttl time.Duration) (*TokenService, error) {
	signer, err := jwtx.NewSignerHS256(secret)
	if err != nil {
		return nil, err
	}
	if ttl <= 0 {
		ttl = jwtx.DefaultSessionTTL
	}
	return &TokenService{
		Signer:   signer,
		Verifier: jwtx.NewVerifierHS256(secret, jwtx.VerifyOptions{Issuer: issuer}),
		Issuer:   issuer,
		TTL:      ttl,
	}, nil
}

// Issue signs a session token for the account.
func (s *TokenService) Issue(accountID, email string) (string, error) {
	claims := jwtx.NewSessionClaims(accountID, email, s.TTL, s.Issuer, s.Clock.now())
	return s.Signer.Sign(claims)
}

// Verify checks algorithm, signature, issuer and expiry. Every failure
// wraps ErrInvalidToken around the underlying jwtx error.
func (s *TokenService) Verify(token string) (jwtx.Claims, error) {
	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims, nil
}
