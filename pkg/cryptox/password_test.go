package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	// Keep the suite fast, production uses bcrypt.DefaultCost
	PasswordCost = bcrypt.MinCost
	m.Run()
}

func TestHashPassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{"simple password", "secret1"},
		{"complex password", "P@ssw0rd!#$%^&*()"},
		{"max length password", strings.Repeat("a", MaxPasswordLength)},
		{"unicode password", "пароль🔒密码"},
		{"whitespace password", "   spaces   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := HashPassword(tt.password)
			require.NoError(t, err)
			require.NotEmpty(t, hash)
			require.NotContains(t, hash, tt.password)
			require.True(t, strings.HasPrefix(hash, "$2a$"), "hash should be bcrypt encoded")

			require.NoError(t, VerifyPassword(tt.password, hash))
		})
	}
}

func TestHashPassword_UniqueSalts(t *testing.T) {
	hash1, err := HashPassword("samepassword")
	require.NoError(t, err)
	hash2, err := HashPassword("samepassword")
	require.NoError(t, err)

	require.NotEqual(t, hash1, hash2, "hashes should differ due to unique salts")
	require.NoError(t, VerifyPassword("samepassword", hash1))
	require.NoError(t, VerifyPassword("samepassword", hash2))
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordLength+1))
	require.ErrorIs(t, err, ErrPasswordTooLong)
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	hash, err := HashPassword("correct-password")
	require.NoError(t, err)

	for _, wrong := range []string{
		"wrong-password",
		"Correct-Password",
		"correct-password ",
		"",
		"correct-passwor",
	} {
		t.Run(wrong, func(t *testing.T) {
			require.ErrorIs(t, VerifyPassword(wrong, hash), ErrPasswordMismatch)
		})
	}
}

func TestVerifyPassword_InvalidHash(t *testing.T) {
	for _, bad := range []string{"", "plaintext", "$2a$10$short"} {
		err := VerifyPassword("anything", bad)
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrPasswordMismatch)
	}
}

func TestDummyHashFollowsPasswordCost(t *testing.T) {
	t.Cleanup(func() { PasswordCost = bcrypt.MinCost })

	cost, err := bcrypt.Cost(dummyHash())
	require.NoError(t, err)
	require.Equal(t, PasswordCost, cost)

	PasswordCost = bcrypt.MinCost + 1
	cost, err = bcrypt.Cost(dummyHash())
	require.NoError(t, err)
	require.Equal(t, bcrypt.MinCost+1, cost)

	stored, err := HashPassword("secret1")
	require.NoError(t, err)
	storedCost, err := bcrypt.Cost([]byte(stored))
	require.NoError(t, err)
	require.Equal(t, storedCost, cost)
}

func TestBurnPasswordCheck(t *testing.T) {
	require.NotPanics(t, func() { BurnPasswordCheck("whatever") })
}
