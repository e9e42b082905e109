package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/auth/domain"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

type CredentialsRepository struct {
	queryExecuter database.QueryExecuter
}

func NewCredentialsRepository(queryExecuter database.QueryExecuter) *CredentialsRepository {
	return &CredentialsRepository{
		queryExecuter: queryExecuter,
	}
}

func (r *CredentialsRepository) FindByUsername(ctx context.Context, username string) (domain.Credentials, bool, error) {
	querySQL := `SELECT id, username, password_hash, role FROM accounts WHERE username = $1`
	return scanCredentials(r.queryExecuter.QueryRow(ctx, querySQL, username))
}

func (r *CredentialsRepository) FindByAccountID(ctx context.Context, accountID int64) (domain.Credentials, bool, error) {
	querySQL := `SELECT id, username, password_hash, role FROM accounts WHERE id = $1`
	return scanCredentials(r.queryExecuter.QueryRow(ctx, querySQL, accountID))
}

func (r *CredentialsRepository) UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error {
	updateSQL := `UPDATE accounts SET password_hash = $1 WHERE id = $2`

	tag, err := r.queryExecuter.Exec(ctx, updateSQL, passwordHash, accountID)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return &domain.CredentialsMismatchError{Msg: fmt.Sprintf("account with id %d not found", accountID)}
	}

	return nil
}

func (r *CredentialsRepository) CreateAccount(ctx context.Context, username, passwordHash, role string) (domain.Credentials, error) {
	creationSQL := `INSERT INTO accounts (username, password_hash, role) VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, role`

	var credentials domain.Credentials
	err := r.queryExecuter.QueryRow(ctx, creationSQL, username, passwordHash, role).
		Scan(&credentials.AccountID, &credentials.Username, &credentials.PasswordHash, &credentials.Role)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
			return domain.Credentials{}, &domain.AccountExistsError{Msg: fmt.Sprintf("username %s is already taken", username)}
		}

		return domain.Credentials{}, fmt.Errorf("failed to create account: %w", err)
	}

	return credentials, nil
}

func scanCredentials(row pgx.Row) (domain.Credentials, bool, error) {
	var credentials domain.Credentials

	err := row.Scan(&credentials.AccountID, &credentials.Username, &credentials.PasswordHash, &credentials.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Credentials{}, false, nil
		}

		return domain.Credentials{}, false, fmt.Errorf("failed to fetch credentials: %w", err)
	}

	return credentials, true, nil
}
