package domain

import (
	"context"
	"fmt"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
)

//go:generate mockgen -source=accounts.go -destination=../../../gen/mocks/vending/accounts.go -package=mocks

type Role string

const (
	RoleBuyer  Role = "buyer"
	RoleSeller Role = "seller"
)

func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

type AccountsRepository interface {
	FetchAccount(ctx context.Context, querier database.Querier, accountID int64) (Account, error)
	LockAccount(ctx context.Context, querier database.Querier, accountID int64) (Account, error)
	UpdateBalance(ctx context.Context, executor database.Executor, accountID int64, balance int64) error
	UpdateUsername(ctx context.Context, executor database.Executor, accountID int64, username string) error
	CountOwnedProducts(ctx context.Context, querier database.Querier, accountID int64) (int, error)
	DeleteAccount(ctx context.Context, executor database.Executor, accountID int64) error
}

// Account is the ledger side of a user. Balance is the deposit in cents and is
// always a non-negative sum of accepted coins.
type Account struct {
	ID       int64
	Username string
	Role     Role
	Balance  int64
}

func (a *Account) Actor() Actor {
	return Actor{ID: a.ID, Role: a.Role}
}

func (a *Account) Deposit(amount int64) (int64, error) {
	if a.Role != RoleBuyer {
		return 0, &RoleViolationError{Msg: "only buyers can deposit coins"}
	}

	if !IsValidDenomination(amount) {
		return 0, &InvalidDenominationError{Amount: amount}
	}

	a.Balance += amount
	return a.Balance, nil
}

// ResetDeposit zeroes the balance and returns what was refunded.
func (a *Account) ResetDeposit() (int64, error) {
	if a.Role != RoleBuyer {
		return 0, &RoleViolationError{Msg: "only buyers can reset deposit"}
	}

	if a.Balance == 0 {
		return 0, &NothingToRefundError{Msg: "you have not deposited any money"}
	}

	refunded := a.Balance
	a.Balance = 0

	return refunded, nil
}

func (a *Account) Debit(amount int64) error {
	if amount < 0 {
		return &InvalidArgumentsError{Msg: fmt.Sprintf("debit amount %d must not be negative", amount)}
	}

	if amount > a.Balance {
		return &InsufficientFundsError{Shortfall: amount - a.Balance}
	}

	a.Balance -= amount
	return nil
}
