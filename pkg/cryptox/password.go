package cryptox

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"
)

// Password policy limits. bcrypt only looks at the first 72 bytes of input so
// anything longer is refused instead of being silently truncated.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// PasswordCost is the bcrypt cost factor used for new hashes.
var PasswordCost = bcrypt.DefaultCost

var (
	ErrPasswordMismatch = errors.New("password does not match")
	ErrPasswordTooLong  = errors.New("password exceeds 72 bytes")
)

// HashPassword returns a bcrypt hash of the password suitable for storage.
func HashPassword(password string) (string, error) {
	if len(password) > MaxPasswordLength {
		return "", ErrPasswordTooLong
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// VerifyPassword compares a plaintext password against a bcrypt hash using
// bcrypt's own constant-time comparison. A mismatch returns
// ErrPasswordMismatch; a malformed hash returns a wrapped bcrypt error.
func VerifyPassword(password, encodedHash string) error {
	err := bcrypt.CompareHashAndPassword([]byte(encodedHash), []byte(password))
	switch {
	case err == nil:
		return nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return ErrPasswordMismatch
	default:
		return fmt.Errorf("cryptox: invalid hash: %w", err)
	}
}

// dummy is compared against when an account does not exist so a failed
// login costs the same bcrypt work either way. It is rebuilt whenever
// PasswordCost changes.
var dummy struct {
	mu   sync.Mutex
	cost int
	hash []byte
}

// BurnPasswordCheck performs a throwaway comparison against a hash built at
// PasswordCost.
func BurnPasswordCheck(password string) {
	_ = bcrypt.CompareHashAndPassword(dummyHash(), []byte(password))
}

func dummyHash() []byte {
	dummy.mu.Lock()
	defer dummy.mu.Unlock()

	if dummy.hash == nil || dummy.cost != PasswordCost {
		h, err := bcrypt.GenerateFromPassword([]byte("campus-dummy-password"), PasswordCost)
		if err != nil {
			panic(fmt.Sprintf("cryptox: failed to build dummy hash: %v", err))
		}
		dummy.hash, dummy.cost = h, PasswordCost
	}
	return dummy.hash
}
