package jwtx_test

import (
	"strings"
	"testing"
	"time"

	"github.com/aussiebroadwan/campus/pkg/jwtx"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

const exampleIssuer = "campus-qa"

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func newTestSigner(t *testing.T) jwtx.Signer {
	t.Helper()
	signer, err := jwtx.NewSignerHS256(testSecret)
	require.NoError(t, err)
	return signer
}

func TestHS256SignAndVerify(t *testing.T) {
	signer := newTestSigner(t)
	require.Equal(t, "HS256", signer.Alg())

	now := time.Now().UTC()
	claims := jwtx.NewSessionClaims("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "student@uni.edu", jwtx.DefaultSessionTTL, exampleIssuer, now)

	token, err := signer.Sign(claims)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	verifier := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: exampleIssuer})

	parsed, err := verifier.Verify(token)
	require.NoError(t, err)
	require.Equal(t, claims.Subject, parsed.Subject)
	require.Equal(t, claims.Email, parsed.Email)
	require.Equal(t, claims.Issuer, parsed.Issuer)
	require.Equal(t, claims.ID, parsed.ID)
}

func TestHS256WeakSecret(t *testing.T) {
	_, err := jwtx.NewSignerHS256([]byte("short"))
	require.ErrorIs(t, err, jwtx.ErrWeakSecret)
}

func TestHS256VerifyFailures(t *testing.T) {
	signer := newTestSigner(t)
	now := time.Now().UTC()

	valid, err := signer.Sign(jwtx.NewSessionClaims("acct", "a@uni.edu", time.Hour, exampleIssuer, now))
	require.NoError(t, err)

	expired, err := signer.Sign(jwtx.NewSessionClaims("acct", "a@uni.edu", jwtx.DefaultSessionTTL, exampleIssuer, now.Add(-8*24*time.Hour)))
	require.NoError(t, err)

	wrongIssuer, err := signer.Sign(jwtx.NewSessionClaims("acct", "a@uni.edu", time.Hour, "someone-else", now))
	require.NoError(t, err)

	noSubject, err := signer.Sign(jwtx.NewSessionClaims("", "a@uni.edu", time.Hour, exampleIssuer, now))
	require.NoError(t, err)

	otherSigner, err := jwtx.NewSignerHS256([]byte(strings.Repeat("z", 32)))
	require.NoError(t, err)
	foreign, err := otherSigner.Sign(jwtx.NewSessionClaims("acct", "a@uni.edu", time.Hour, exampleIssuer, now))
	require.NoError(t, err)

	unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwtx.NewSessionClaims("acct", "a@uni.edu", time.Hour, exampleIssuer, now)).
		SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	tampered := valid[:len(valid)-2] + "xx"
	if tampered == valid {
		tampered = valid[:len(valid)-2] + "yy"
	}

	verifier := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: exampleIssuer})

	tests := []struct {
		name  string
		token string
		want  error
	}{
		{"empty", "", jwtx.ErrMalformed},
		{"garbage", "not.a.jwt", jwtx.ErrMalformed},
		{"expired", expired, jwtx.ErrExpired},
		{"wrong issuer", wrongIssuer, jwtx.ErrIssuer},
		{"missing subject", noSubject, jwtx.ErrInvalidClaim},
		{"foreign secret", foreign, jwtx.ErrInvalidSig},
		{"tampered signature", tampered, jwtx.ErrInvalidSig},
		{"alg none", unsigned, jwtx.ErrInvalidSig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := verifier.Verify(tt.token)
			require.ErrorIs(t, err, tt.want)
		})
	}
}

func TestHS256VerifyLeeway(t *testing.T) {
	signer := newTestSigner(t)
	now := time.Now().UTC()

	token, err := signer.Sign(jwtx.NewSessionClaims("acct", "a@uni.edu", time.Minute, exampleIssuer, now.Add(-70*time.Second)))
	require.NoError(t, err)

	strict := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: exampleIssuer})
	_, err = strict.Verify(token)
	require.ErrorIs(t, err, jwtx.ErrExpired)

	lenient := jwtx.NewVerifierHS256(testSecret, jwtx.VerifyOptions{Issuer: exampleIssuer, Leeway: 30 * time.Second})
	_, err = lenient.Verify(token)
	require.NoError(t, err)
}
