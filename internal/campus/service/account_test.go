package service

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestEmailPolicy(t *testing.T) {
	p := NewEmailPolicy(nil)

	tests := []struct {
		email string
		want  bool
	}{
		{"student@college.edu", true},
		{"Student@College.EDU", true},
		{"  student@college.edu  ", true},
		{"a@iitb.ac.in", true},
		{"a@cse.iitb.ac.in", true},
		{"first.last@state-uni.edu", true},
		{"student@gmail.com", false},
		{"student@edu", false},
		{"student@.edu", false},
		{"student@college.edu.com", false},
		{"student@ac.in", false},
		{"student@college.edu.", false},
		{"@college.edu", false},
		{"student@", false},
		{"student", false},
		{"", false},
		{"student@-bad.edu", false},
		{"student@col lege.edu", false},
	}

	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			require.Equal(t, tt.want, p.Allows(tt.email))
		})
	}
}

func TestEmailPolicyCustomSuffixes(t *testing.T) {
	p := NewEmailPolicy([]string{" .EDU.AU ", ""})
	require.Equal(t, []string{"edu.au"}, p.Suffixes)
	require.True(t, p.Allows("x@unimelb.edu.au"))
	require.False(t, p.Allows("x@college.edu"))
}

func TestTokenRoundTrip(t *testing.T) {
	f := newFixture(t)

	token, err := f.tokens.Issue("01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", "student@college.edu")
	require.NoError(t, err)

	claims, err := f.tokens.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "01HQ7T3Z1MZ0JQ3M6MZQ1FQ3ZV", claims.Subject)
	require.Equal(t, "student@college.edu", claims.Email)
	require.WithinDuration(t, time.Now().Add(7*24*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestExpiredTokenIsInvalid(t *testing.T) {
	tokens, err := NewTokenService(testSecret, "campus-qa", 0)
	require.NoError(t, err)
	tokens.Clock = func() time.Time { return time.Now().Add(-8 * 24 * time.Hour) }

	token, err := tokens.Issue("acct", "student@college.edu")
	require.NoError(t, err)

	tokens.Clock = nil
	_, err = tokens.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenFromOtherSecretIsInvalid(t *testing.T) {
	other, err := NewTokenService([]byte(strings.Repeat("x", 32)), "campus-qa", 0)
	require.NoError(t, err)
	token, err := other.Issue("acct", "student@college.edu")
	require.NoError(t, err)

	f := newFixture(t)
	_, err = f.tokens.Verify(token)
	require.ErrorIs(t, err, ErrInvalidToken)

	_, err = f.tokens.Verify("  ")
	require.ErrorIs(t, err, ErrInvalidToken)
}

func TestNewTokenServiceRejectsShortSecret(t *testing.T) {
	_, err := NewTokenService([]byte("short"), "campus-qa", 0)
	require.Error(t, err)
}

func TestSignupThenDuplicate(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	res, err := f.accounts.Signup(ctx, "student@college.edu", "secret1")
	require.NoError(t, err)
	require.NotEmpty(t, res.Token)
	require.Equal(t, "student@college.edu", res.Account.Email)
	require.NotEqual(t, "secret1", res.Account.PasswordHash)

	claims, err := f.tokens.Verify(res.Token)
	require.NoError(t, err)
	require.Equal(t, res.Account.ID, claims.Subject)

	_, err = f.accounts.Signup(ctx, "student@college.edu", "secret1")
	require.ErrorIs(t, err, ErrEmailTaken)

	_, err = f.accounts.Signup(ctx, "STUDENT@college.EDU", "another1")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignupValidation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		email    string
		password string
		want     error
	}{
		{"missing email", "", "secret1", ErrMissingFields},
		{"missing password", "a@college.edu", "", ErrMissingFields},
		{"non institutional", "a@gmail.com", "secret1", ErrEmailNotInstitutional},
		{"short password", "a@college.edu", "12345", ErrPasswordTooShort},
		{"short multibyte password", "a@college.edu", "ééé", ErrPasswordTooShort},
		{"long password", "a@college.edu", strings.Repeat("p", 73), ErrPasswordTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.accounts.Signup(ctx, tt.email, tt.password)
			require.ErrorIs(t, err, tt.want)
		})
	}

	// Boundary lengths are accepted
	_, err := f.accounts.Signup(ctx, "six@college.edu", "123456")
	require.NoError(t, err)
	_, err = f.accounts.Signup(ctx, "max@college.edu", strings.Repeat("p", 72))
	require.NoError(t, err)

	// Six characters pass even though they are twelve bytes
	_, err = f.accounts.Signup(ctx, "accents@college.edu", "éééééé")
	require.NoError(t, err)
}

func TestLogin(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	acct := f.signup(t, "student@college.edu")

	res, err := f.accounts.Login(ctx, " Student@College.edu ", "secret1")
	require.NoError(t, err)
	require.Equal(t, acct.ID, res.Account.ID)

	claims, err := f.tokens.Verify(res.Token)
	require.NoError(t, err)
	require.Equal(t, acct.ID, claims.Subject)

	_, err = f.accounts.Login(ctx, "student@college.edu", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.accounts.Login(ctx, "nobody@college.edu", "secret1")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = f.accounts.Login(ctx, "", "")
	require.ErrorIs(t, err, ErrMissingFields)
}
