package application

import (
	"context"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
)

type DepositCase struct {
	accountsRepository domain.AccountsRepository
	txManager          database.TxManager
}

func NewDepositCase(accountsRepository domain.AccountsRepository, txManager database.TxManager) *DepositCase {
	return &DepositCase{
		accountsRepository: accountsRepository,
		txManager:          txManager,
	}
}

// Deposit adds one coin to the actor's balance and returns the new total.
func (dc *DepositCase) Deposit(ctx context.Context, actorID int64, amount int64) (int64, error) {
	var balance int64

	err := dc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		account, err := dc.accountsRepository.LockAccount(ctx, executor, actorID)
		if err != nil {
			return err
		}

		balance, err = account.Deposit(amount)
		if err != nil {
			return err
		}

		return dc.accountsRepository.UpdateBalance(ctx, executor, actorID, balance)
	})
	if err != nil {
		return 0, err
	}

	return balance, nil
}
