package service

import "errors"

// Validation
var (
	ErrMissingFields    = errors.New("missing_fields")
	ErrPasswordTooShort = errors.New("password_too_short")
	ErrPasswordTooLong  = errors.New("password_too_long")
	ErrToxicContent     = errors.New("toxic_content")
)

// Authentication
var (
	ErrInvalidToken       = errors.New("invalid_token")
	ErrInvalidCredentials = errors.New("invalid_credentials")
)

// Authorisation
var (
	ErrNotQueryOwner         = errors.New("not_query_owner")
	ErrEmailNotInstitutional = errors.New("email_not_institutional")
)

// Lookup / conflict
var (
	ErrQueryNotFound = errors.New("query_not_found")
	ErrEmailTaken    = errors.New("email_taken")
)
