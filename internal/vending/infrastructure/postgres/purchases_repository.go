package postgres

import (
	"context"
	"fmt"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
)

type PurchasesRepository struct {
}

func NewPurchasesRepository() *PurchasesRepository {
	return &PurchasesRepository{}
}

func (r *PurchasesRepository) RecordPurchase(ctx context.Context, executor database.Executor, record domain.PurchaseRecord) error {
	insertSQL := `INSERT INTO purchases (account_id, product_id, quantity, total_cost) VALUES ($1, $2, $3, $4)`

	_, err := executor.Exec(ctx, insertSQL, record.AccountID, record.ProductID, record.Quantity, record.TotalCost)
	if err != nil {
		return fmt.Errorf("failed to insert purchase record: %w", err)
	}

	return nil
}
