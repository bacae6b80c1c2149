package domain

import (
	"time"

	"github.com/aussiebroadwan/campus/pkg/idx"
)

type Account struct {
	ID           string
	Email        string // lower-cased, institutional
	PasswordHash string // bcrypt encoded
	CreatedAt    time.Time
}

// SameAccount reports whether two account ids name the same account. Empty
// ids never match, so an anonymous viewer is never treated as an owner.
func SameAccount(a, b string) bool {
	ca, cb := idx.Canonical(a), idx.Canonical(b)
	if ca == "" || cb == "" {
		return false
	}
	return ca == cb
}
