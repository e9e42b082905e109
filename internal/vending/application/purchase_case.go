package application

import (
	"context"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
)

type PurchaseCase struct {
	accountsRepository  domain.AccountsRepository
	productsRepository  domain.ProductsRepository
	purchasesRepository domain.PurchasesRepository
	txManager           database.TxManager
}

func NewPurchaseCase(
	accountsRepository domain.AccountsRepository,
	productsRepository domain.ProductsRepository,
	purchasesRepository domain.PurchasesRepository,
	txManager database.TxManager,
) *PurchaseCase {
	return &PurchaseCase{
		accountsRepository:  accountsRepository,
		productsRepository:  productsRepository,
		purchasesRepository: purchasesRepository,
		txManager:           txManager,
	}
}

// Buy debits the buyer and decrements stock in a single transaction. Rows are
// always locked account first, product second.
func (pc *PurchaseCase) Buy(ctx context.Context, actorID int64, productID int64, quantity int) (domain.Receipt, error) {
	if quantity < 1 {
		return domain.Receipt{}, &domain.InvalidArgumentsError{Msg: "quantity must be at least 1"}
	}

	var receipt domain.Receipt

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		account, err := pc.accountsRepository.LockAccount(ctx, executor, actorID)
		if err != nil {
			return err
		}

		if account.Role != domain.RoleBuyer {
			return &domain.RoleViolationError{Msg: "only buyers can buy products"}
		}

		product, err := pc.productsRepository.LockProduct(ctx, executor, productID)
		if err != nil {
			return err
		}

		totalCost, err := domain.Purchase(&account, &product, quantity)
		if err != nil {
			return err
		}

		err = pc.productsRepository.UpdateProduct(ctx, executor, product)
		if err != nil {
			return err
		}

		err = pc.accountsRepository.UpdateBalance(ctx, executor, account.ID, account.Balance)
		if err != nil {
			return err
		}

		err = pc.purchasesRepository.RecordPurchase(ctx, executor, domain.PurchaseRecord{
			AccountID: account.ID,
			ProductID: product.ID,
			Quantity:  quantity,
			TotalCost: totalCost,
		})
		if err != nil {
			return err
		}

		receipt = domain.Receipt{
			ProductName:      product.Name,
			Quantity:         quantity,
			TotalSpent:       totalCost,
			RemainingDeposit: account.Balance,
		}

		return nil
	})
	if err != nil {
		return domain.Receipt{}, err
	}

	receipt.Change = domain.ComputeChange(receipt.RemainingDeposit)
	return receipt, nil
}
