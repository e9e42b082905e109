package application

import (
	"context"
	"strings"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
)

type AccountCase struct {
	accountsRepository domain.AccountsRepository
	txManager          database.TxManager
}

func NewAccountCase(accountsRepository domain.AccountsRepository, txManager database.TxManager) *AccountCase {
	return &AccountCase{
		accountsRepository: accountsRepository,
		txManager:          txManager,
	}
}

func (ac *AccountCase) UpdateUsername(ctx context.Context, actorID int64, accountID int64, username string) (domain.Account, error) {
	if !domain.CanMutateAccount(domain.Actor{ID: actorID}, accountID) {
		return domain.Account{}, &domain.PermissionDeniedError{Msg: permissionDeniedMsg}
	}

	username = strings.TrimSpace(username)
	if username == "" {
		return domain.Account{}, &domain.InvalidArgumentsError{Msg: "username is required"}
	}

	var updated domain.Account

	err := ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		account, err := ac.accountsRepository.LockAccount(ctx, executor, accountID)
		if err != nil {
			return err
		}

		err = ac.accountsRepository.UpdateUsername(ctx, executor, accountID, username)
		if err != nil {
			return err
		}

		account.Username = username
		updated = account
		return nil
	})
	if err != nil {
		return domain.Account{}, err
	}

	return updated, nil
}

// Delete removes the account. Sellers must delete their products first.
func (ac *AccountCase) Delete(ctx context.Context, actorID int64, accountID int64) error {
	if !domain.CanMutateAccount(domain.Actor{ID: actorID}, accountID) {
		return &domain.PermissionDeniedError{Msg: permissionDeniedMsg}
	}

	return ac.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		_, err := ac.accountsRepository.LockAccount(ctx, executor, accountID)
		if err != nil {
			return err
		}

		owned, err := ac.accountsRepository.CountOwnedProducts(ctx, executor, accountID)
		if err != nil {
			return err
		}

		if owned > 0 {
			return &domain.AccountHasProductsError{Products: owned}
		}

		return ac.accountsRepository.DeleteAccount(ctx, executor, accountID)
	})
}
