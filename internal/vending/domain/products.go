package domain

import (
	"context"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
)

//go:generate mockgen -source=products.go -destination=../../../gen/mocks/vending/products.go -package=mocks

const (
	MinProductCost = 5
	MaxProductCost = 1_000_000
)

type ProductsRepository interface {
	CreateProduct(ctx context.Context, querier database.Querier, product Product) (Product, error)
	LockProduct(ctx context.Context, querier database.Querier, productID int64) (Product, error)
	UpdateProduct(ctx context.Context, executor database.Executor, product Product) error
	DeleteProduct(ctx context.Context, executor database.Executor, productID int64) error
}

type Product struct {
	ID              int64
	Name            string
	Cost            int64
	AmountAvailable int
	SellerID        int64
}

// ProductPatch carries the fields of a partial product update. Nil means
// "leave unchanged".
type ProductPatch struct {
	Name            *string
	Cost            *int64
	AmountAvailable *int
}

func (p ProductPatch) Empty() bool {
	return p.Name == nil && p.Cost == nil && p.AmountAvailable == nil
}

func ValidateProductFields(name string, cost int64, amountAvailable int) error {
	if name == "" {
		return &InvalidArgumentsError{Msg: "product name is required"}
	}

	if cost < MinProductCost {
		return &InvalidArgumentsError{Msg: "the minimum cost is 5 cents"}
	}

	if cost > MaxProductCost {
		return &InvalidArgumentsError{Msg: "the maximum cost is 1000000 cents"}
	}

	if amountAvailable < 0 {
		return &InvalidArgumentsError{Msg: "amount available cannot be negative"}
	}

	return nil
}

// Apply returns the product with the patch applied, validated as a whole.
func (p Product) Apply(patch ProductPatch) (Product, error) {
	if patch.Empty() {
		return Product{}, &InvalidArgumentsError{Msg: "at least one field must be provided for update"}
	}

	updated := p
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Cost != nil {
		updated.Cost = *patch.Cost
	}
	if patch.AmountAvailable != nil {
		updated.AmountAvailable = *patch.AmountAvailable
	}

	if err := ValidateProductFields(updated.Name, updated.Cost, updated.AmountAvailable); err != nil {
		return Product{}, err
	}

	return updated, nil
}

func (p *Product) Reserve(quantity int) error {
	if quantity > p.AmountAvailable {
		return &OutOfStockError{Available: p.AmountAvailable}
	}

	p.AmountAvailable -= quantity
	return nil
}
