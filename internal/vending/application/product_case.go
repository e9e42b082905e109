package application

import (
	"context"
	"errors"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
)

const permissionDeniedMsg = "permission denied"

type ProductCase struct {
	accountsRepository domain.AccountsRepository
	productsRepository domain.ProductsRepository
	txManager          database.TxManager
	querier            database.Querier
}

func NewProductCase(
	accountsRepository domain.AccountsRepository,
	productsRepository domain.ProductsRepository,
	txManager database.TxManager,
	querier database.Querier,
) *ProductCase {
	return &ProductCase{
		accountsRepository: accountsRepository,
		productsRepository: productsRepository,
		txManager:          txManager,
		querier:            querier,
	}
}

func (pc *ProductCase) Create(ctx context.Context, actorID int64, name string, cost int64, amountAvailable int) (domain.Product, error) {
	account, err := pc.accountsRepository.FetchAccount(ctx, pc.querier, actorID)
	if err != nil {
		return domain.Product{}, err
	}

	if account.Role != domain.RoleSeller {
		return domain.Product{}, &domain.RoleViolationError{Msg: "only sellers can add products"}
	}

	err = domain.ValidateProductFields(name, cost, amountAvailable)
	if err != nil {
		return domain.Product{}, err
	}

	return pc.productsRepository.CreateProduct(ctx, pc.querier, domain.Product{
		Name:            name,
		Cost:            cost,
		AmountAvailable: amountAvailable,
		SellerID:        account.ID,
	})
}

func (pc *ProductCase) Update(ctx context.Context, actorID int64, productID int64, patch domain.ProductPatch) (domain.Product, error) {
	if patch.Empty() {
		return domain.Product{}, &domain.InvalidArgumentsError{Msg: "at least one field must be provided for update"}
	}

	var updated domain.Product

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		product, err := pc.lockMutableProduct(ctx, executor, actorID, productID)
		if err != nil {
			return err
		}

		updated, err = product.Apply(patch)
		if err != nil {
			return err
		}

		return pc.productsRepository.UpdateProduct(ctx, executor, updated)
	})
	if err != nil {
		return domain.Product{}, err
	}

	return updated, nil
}

// Delete removes the product and returns it as it was before removal.
func (pc *ProductCase) Delete(ctx context.Context, actorID int64, productID int64) (domain.Product, error) {
	var deleted domain.Product

	err := pc.txManager.WithinTransaction(ctx, func(ctx context.Context, executor database.QueryExecuter) error {
		product, err := pc.lockMutableProduct(ctx, executor, actorID, productID)
		if err != nil {
			return err
		}

		err = pc.productsRepository.DeleteProduct(ctx, executor, product.ID)
		if err != nil {
			return err
		}

		deleted = product
		return nil
	})
	if err != nil {
		return domain.Product{}, err
	}

	return deleted, nil
}

// lockMutableProduct locks the product row and checks that the actor may
// change it. Actors that could never mutate any product learn nothing about
// whether the id exists.
func (pc *ProductCase) lockMutableProduct(ctx context.Context, executor database.QueryExecuter, actorID int64, productID int64) (domain.Product, error) {
	account, err := pc.accountsRepository.FetchAccount(ctx, executor, actorID)
	if err != nil {
		return domain.Product{}, err
	}
	actor := account.Actor()

	product, err := pc.productsRepository.LockProduct(ctx, executor, productID)
	if err != nil {
		if isProductNotFound(err) && actor.Role != domain.RoleSeller {
			return domain.Product{}, &domain.PermissionDeniedError{Msg: permissionDeniedMsg}
		}

		return domain.Product{}, err
	}

	if !domain.CanMutateProduct(actor, product) {
		return domain.Product{}, &domain.PermissionDeniedError{Msg: permissionDeniedMsg}
	}

	return product, nil
}

func isProductNotFound(err error) bool {
	return errors.Is(err, &domain.ProductNotFoundError{})
}
