package domain

import (
	"context"
	"math"
	"math/bits"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/pkg/database"
)

//go:generate mockgen -source=purchases.go -destination=../../../gen/mocks/vending/purchases.go -package=mocks

type PurchasesRepository interface {
	RecordPurchase(ctx context.Context, executor database.Executor, record PurchaseRecord) error
}

type PurchaseRecord struct {
	AccountID int64
	ProductID int64
	Quantity  int
	TotalCost int64
}

type Receipt struct {
	ProductName      string
	Quantity         int
	TotalSpent       int64
	RemainingDeposit int64
	Change           Change
}

type Refund struct {
	RefundedAmount int64
	Change         Change
}

// Purchase checks stock then funds and, only when both hold, applies the
// balance debit and the stock decrement. On error neither side is changed.
func Purchase(account *Account, product *Product, quantity int) (int64, error) {
	if quantity <= 0 {
		return 0, &InvalidArgumentsError{Msg: "quantity must be at least 1"}
	}

	if product.Cost < MinProductCost {
		return 0, &InvalidArgumentsError{Msg: "product has an invalid cost"}
	}

	if quantity > product.AmountAvailable {
		return 0, &OutOfStockError{Available: product.AmountAvailable}
	}

	totalCost, ok := purchaseCost(product.Cost, quantity)
	if !ok {
		return 0, &InsufficientFundsError{Shortfall: math.MaxInt64}
	}

	if totalCost > account.Balance {
		return 0, &InsufficientFundsError{Shortfall: totalCost - account.Balance}
	}

	if err := account.Debit(totalCost); err != nil {
		return 0, err
	}

	if err := product.Reserve(quantity); err != nil {
		account.Balance += totalCost
		return 0, err
	}

	return totalCost, nil
}

// purchaseCost is cost*quantity, false when the product overflows int64.
func purchaseCost(cost int64, quantity int) (int64, bool) {
	hi, lo := bits.Mul64(uint64(cost), uint64(quantity))
	if hi != 0 || lo > math.MaxInt64 {
		return 0, false
	}

	return int64(lo), true
}
