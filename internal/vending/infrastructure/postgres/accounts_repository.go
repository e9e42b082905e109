package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
	"github.com/jackc/pgx/v5"
)

type AccountsRepository struct {
}

func NewAccountsRepository() *AccountsRepository {
	return &AccountsRepository{}
}

func (r *AccountsRepository) FetchAccount(ctx context.Context, querier database.Querier, accountID int64) (domain.Account, error) {
	fetchSQL := `SELECT id, username, role, deposit FROM accounts WHERE id = $1`
	return scanAccount(querier.QueryRow(ctx, fetchSQL, accountID), accountID)
}

func (r *AccountsRepository) LockAccount(ctx context.Context, querier database.Querier, accountID int64) (domain.Account, error) {
	lockSQL := `SELECT id, username, role, deposit FROM accounts WHERE id = $1 FOR UPDATE`
	return scanAccount(querier.QueryRow(ctx, lockSQL, accountID), accountID)
}

func (r *AccountsRepository) UpdateBalance(ctx context.Context, executor database.Executor, accountID int64, balance int64) error {
	updateSQL := `UPDATE accounts SET deposit = $1 WHERE id = $2`

	tag, err := executor.Exec(ctx, updateSQL, balance, accountID)
	if err != nil {
		return fmt.Errorf("failed to update account deposit: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return accountNotFound(accountID)
	}

	return nil
}

func (r *AccountsRepository) UpdateUsername(ctx context.Context, executor database.Executor, accountID int64, username string) error {
	updateSQL := `UPDATE accounts SET username = $1 WHERE id = $2`

	tag, err := executor.Exec(ctx, updateSQL, username, accountID)
	if err != nil {
		if isUniqueViolation(err) {
			return &domain.UsernameTakenError{Msg: fmt.Sprintf("username %s is already taken", username)}
		}

		return fmt.Errorf("failed to update account username: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return accountNotFound(accountID)
	}

	return nil
}

func (r *AccountsRepository) CountOwnedProducts(ctx context.Context, querier database.Querier, accountID int64) (int, error) {
	countSQL := `SELECT COUNT(*) FROM products WHERE seller_id = $1`

	var count int
	err := querier.QueryRow(ctx, countSQL, accountID).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count owned products: %w", err)
	}

	return count, nil
}

func (r *AccountsRepository) DeleteAccount(ctx context.Context, executor database.Executor, accountID int64) error {
	deleteSQL := `DELETE FROM accounts WHERE id = $1`

	tag, err := executor.Exec(ctx, deleteSQL, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return accountNotFound(accountID)
	}

	return nil
}

func scanAccount(row pgx.Row, accountID int64) (domain.Account, error) {
	var account domain.Account
	var role string

	err := row.Scan(&account.ID, &account.Username, &role, &account.Balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Account{}, accountNotFound(accountID)
		}

		return domain.Account{}, fmt.Errorf("failed to fetch account: %w", err)
	}

	account.Role = domain.Role(role)
	return account, nil
}

func accountNotFound(accountID int64) error {
	return &domain.AccountNotFoundError{Msg: fmt.Sprintf("account with id %d not found", accountID)}
}
