package sqlite

import (
	"context"

	"github.com/aussiebroadwan/campus/internal/campus/domain"
)

type accountsRepo struct {
	db dbtx
}

const createAccount = `
INSERT INTO accounts (id, email, password_hash, created_at)
VALUES (?, ?, ?, ?)`

func (r *accountsRepo) CreateAccount(ctx context.Context, a domain.Account) error {
	_, err := r.db.ExecContext(ctx, createAccount, a.ID, a.Email, a.PasswordHash, toMillis(a.CreatedAt))
	if err != nil {
		return mapConstraint(err)
	}
	return nil
}

const getAccountByEmail = `
SELECT id, email, password_hash, created_at
FROM accounts
WHERE email = ?`

func (r *accountsRepo) GetAccountByEmail(ctx context.Context, email string) (domain.Account, error) {
	return scanAccount(r.db.QueryRowContext(ctx, getAccountByEmail, email))
}

func scanAccount(row interface{ Scan(...any) error }) (domain.Account, error) {
	var (
		a         domain.Account
		createdAt int64
	)
	if err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &createdAt); err != nil {
		return domain.Account{}, mapNotFound(err)
	}
	a.CreatedAt = fromMillis(createdAt)
	return a, nil
}
