package application

import (
	"context"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
)

type ResetCase struct {
	accountsRepository domain.AccountsRepository
	txManager          database.TxManager
}

func NewResetCase(accountsRepository domain.AccountsRepository, txManager database.TxManager) *ResetCase {
	return &ResetCase{
		accountsRepository: accountsRepository,
		txManager:          txManager,
	}
}

func (rc *ResetCase) Reset(ctx context.Context, actorID int64) (domain.Refund, error) {
	var refunded int64

	err := rc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		account, err := rc.accountsRepository.LockAccount(ctx, executor, actorID)
		if err != nil {
			return err
		}

		refunded, err = account.ResetDeposit()
		if err != nil {
			return err
		}

		return rc.accountsRepository.UpdateBalance(ctx, executor, actorID, account.Balance)
	})
	if err != nil {
		return domain.Refund{}, err
	}

	return domain.Refund{
		RefundedAmount: refunded,
		Change:         domain.ComputeChange(refunded),
	}, nil
}
