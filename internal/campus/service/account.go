package service

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
	"github.com/aussiebroadwan/campus/internal/campus/metrics"
	"github.com/aussiebroadwan/campus/internal/campus/store"
	"github.com/aussiebroadwan/campus/pkg/cryptox"
	"github.com/aussiebroadwan/campus/pkg/idx"
)

// AuthResult is returned by Signup and Login.
type AuthResult struct {
	Token   string
	Account domain.Account
}

type AccountService struct {
	Store  store.Store
	Tokens *TokenService
	Policy EmailPolicy
	Clock  Clock
}

// Signup registers an institutional account and signs it in.
func (s *AccountService) Signup(ctx context.Context, email, password string) (AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrMissingFields
	}
	if !s.Policy.Allows(email) {
		return AuthResult{}, ErrEmailNotInstitutional
	}
	if err := checkPassword(password); err != nil {
		return AuthResult{}, err
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return AuthResult{}, fmt.Errorf("hash password: %w", err)
	}

	acct := domain.Account{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.Clock.now(),
	}
	if err := s.Store.Accounts().CreateAccount(ctx, acct); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			return AuthResult{}, ErrEmailTaken
		}
		return AuthResult{}, fmt.Errorf("create account: %w", err)
	}
	metrics.AccountsCreated.Inc()

	token, err := s.Tokens.Issue(acct.ID, acct.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	return AuthResult{Token: token, Account: acct}, nil
}

// Login checks credentials. Unknown email and wrong password are
// indistinguishable to the caller, both in result and in bcrypt work done.
func (s *AccountService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return AuthResult{}, ErrMissingFields
	}

	acct, err := s.Store.Accounts().GetAccountByEmail(ctx, email)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return AuthResult{}, fmt.Errorf("lookup account: %w", err)
		}
		cryptox.BurnPasswordCheck(password)
		metrics.RecordLogin(false)
		return AuthResult{}, ErrInvalidCredentials
	}

	if err := cryptox.VerifyPassword(password, acct.PasswordHash); err != nil {
		metrics.RecordLogin(false)
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			return AuthResult{}, ErrInvalidCredentials
		}
		return AuthResult{}, fmt.Errorf("verify password: %w", err)
	}

	token, err := s.Tokens.Issue(acct.ID, acct.Email)
	if err != nil {
		return AuthResult{}, fmt.Errorf("issue token: %w", err)
	}
	metrics.RecordLogin(true)
	return AuthResult{Token: token, Account: acct}, nil
}

// checkPassword counts characters for the minimum and bytes for the maximum,
// which is a bcrypt limit.
func checkPassword(password string) error {
	switch {
	case utf8.RuneCountInString(password) < cryptox.MinPasswordLength:
		return ErrPasswordTooShort
	case len(password) > cryptox.MaxPasswordLength:
		return ErrPasswordTooLong
	}
	return nil
}
