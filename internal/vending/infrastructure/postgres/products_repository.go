package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
	"github.com/jackc/pgx/v5"
)

type ProductsRepository struct {
}

func NewProductsRepository() *ProductsRepository {
	return &ProductsRepository{}
}

func (r *ProductsRepository) CreateProduct(ctx context.Context, querier database.Querier, product domain.Product) (domain.Product, error) {
	insertSQL := `INSERT INTO products (name, cost, amount_available, seller_id)
		VALUES ($1, $2, $3, $4) RETURNING id`

	err := querier.QueryRow(ctx, insertSQL, product.Name, product.Cost, product.AmountAvailable, product.SellerID).
		Scan(&product.ID)
	if err != nil {
		return domain.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}

	return product, nil
}

func (r *ProductsRepository) LockProduct(ctx context.Context, querier database.Querier, productID int64) (domain.Product, error) {
	lockSQL := `SELECT id, name, cost, amount_available, seller_id FROM products WHERE id = $1 FOR UPDATE`

	var product domain.Product
	err := querier.QueryRow(ctx, lockSQL, productID).
		Scan(&product.ID, &product.Name, &product.Cost, &product.AmountAvailable, &product.SellerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Product{}, productNotFound(productID)
		}

		return domain.Product{}, fmt.Errorf("failed to lock product row: %w", err)
	}

	return product, nil
}

func (r *ProductsRepository) UpdateProduct(ctx context.Context, executor database.Executor, product domain.Product) error {
	updateSQL := `UPDATE products SET name = $1, cost = $2, amount_available = $3 WHERE id = $4`

	tag, err := executor.Exec(ctx, updateSQL, product.Name, product.Cost, product.AmountAvailable, product.ID)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return productNotFound(product.ID)
	}

	return nil
}

func (r *ProductsRepository) DeleteProduct(ctx context.Context, executor database.Executor, productID int64) error {
	deleteSQL := `DELETE FROM products WHERE id = $1`

	tag, err := executor.Exec(ctx, deleteSQL, productID)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return productNotFound(productID)
	}

	return nil
}

func productNotFound(productID int64) error {
	return &domain.ProductNotFoundError{Msg: fmt.Sprintf("product with id %d not found", productID)}
}
