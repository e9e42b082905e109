package domain

import "context"

//go:generate mockgen -source=credentials.go -destination=../../../gen/mocks/auth/credentials.go -package=mocks

type CredentialsRepository interface {
	FindByUsername(ctx context.Context, username string) (Credentials, bool, error)
	FindByAccountID(ctx context.Context, accountID int64) (Credentials, bool, error)
	UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error
	CreateAccount(ctx context.Context, username, passwordHash, role string) (Credentials, error)
}

// Credentials is the sign-in view of an account. The password is only ever
// held as an argon2id hash.
type Credentials struct {
	AccountID    int64
	Username     string
	PasswordHash string
	Role         string
}
