package features

import (
	"context"
	"maps"
	"slices"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
)

// memoryStore keeps accounts and products in maps. A failed transaction
// restores the snapshot taken when it began.
type memoryStore struct {
	accounts  map[int64]domain.Account
	products  map[int64]domain.Product
	purchases []domain.PurchaseRecord
	nextID    int64
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		accounts: make(map[int64]domain.Account),
		products: make(map[int64]domain.Product),
	}
}

func (s *memoryStore) WithinTransaction(ctx context.Context, txFn database.TxFunc) error {
	accounts := maps.Clone(s.accounts)
	products := maps.Clone(s.products)
	purchases := slices.Clone(s.purchases)

	if err := txFn(ctx, nil); err != nil {
		s.accounts, s.products, s.purchases = accounts, products, purchases
		return err
	}

	return nil
}

func (s *memoryStore) addAccount(username string, role domain.Role, balance int64) domain.Account {
	s.nextID++
	account := domain.Account{ID: s.nextID, Username: username, Role: role, Balance: balance}
	s.accounts[account.ID] = account

	return account
}

//region accounts

func (s *memoryStore) FetchAccount(_ context.Context, _ database.Querier, accountID int64) (domain.Account, error) {
	account, ok := s.accounts[accountID]
	if !ok {
		return domain.Account{}, &domain.AccountNotFoundError{Msg: "account not found"}
	}

	return account, nil
}

func (s *memoryStore) LockAccount(ctx context.Context, querier database.Querier, accountID int64) (domain.Account, error) {
	return s.FetchAccount(ctx, querier, accountID)
}

func (s *memoryStore) UpdateBalance(_ context.Context, _ database.Executor, accountID int64, balance int64) error {
	account, ok := s.accounts[accountID]
	if !ok {
		return &domain.AccountNotFoundError{Msg: "account not found"}
	}

	account.Balance = balance
	s.accounts[accountID] = account
	return nil
}

func (s *memoryStore) UpdateUsername(_ context.Context, _ database.Executor, accountID int64, username string) error {
	account, ok := s.accounts[accountID]
	if !ok {
		return &domain.AccountNotFoundError{Msg: "account not found"}
	}

	account.Username = username
	s.accounts[accountID] = account
	return nil
}

func (s *memoryStore) CountOwnedProducts(_ context.Context, _ database.Querier, accountID int64) (int, error) {
	count := 0
	for _, product := range s.products {
		if product.SellerID == accountID {
			count++
		}
	}

	return count, nil
}

func (s *memoryStore) DeleteAccount(_ context.Context, _ database.Executor, accountID int64) error {
	if _, ok := s.accounts[accountID]; !ok {
		return &domain.AccountNotFoundError{Msg: "account not found"}
	}

	delete(s.accounts, accountID)
	return nil
}

//endregion

//region products

func (s *memoryStore) CreateProduct(_ context.Context, _ database.Querier, product domain.Product) (domain.Product, error) {
	s.nextID++
	product.ID = s.nextID
	s.products[product.ID] = product

	return product, nil
}

func (s *memoryStore) LockProduct(_ context.Context, _ database.Querier, productID int64) (domain.Product, error) {
	product, ok := s.products[productID]
	if !ok {
		return domain.Product{}, &domain.ProductNotFoundError{Msg: "product not found"}
	}

	return product, nil
}

func (s *memoryStore) UpdateProduct(_ context.Context, _ database.Executor, product domain.Product) error {
	if _, ok := s.products[product.ID]; !ok {
		return &domain.ProductNotFoundError{Msg: "product not found"}
	}

	s.products[product.ID] = product
	return nil
}

func (s *memoryStore) DeleteProduct(_ context.Context, _ database.Executor, productID int64) error {
	if _, ok := s.products[productID]; !ok {
		return &domain.ProductNotFoundError{Msg: "product not found"}
	}

	delete(s.products, productID)
	return nil
}

//endregion

func (s *memoryStore) RecordPurchase(_ context.Context, _ database.Executor, record domain.PurchaseRecord) error {
	s.purchases = append(s.purchases, record)
	return nil
}
