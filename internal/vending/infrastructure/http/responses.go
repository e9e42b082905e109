package http

import "github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"

type productResponse struct {
	ID              int64  `json:"id"`
	ProductName     string `json:"productName"`
	Cost            int64  `json:"cost"`
	AmountAvailable int    `json:"amountAvailable"`
	SellerID        int64  `json:"sellerId"`
}

func toProductResponse(product domain.Product) productResponse {
	return productResponse{
		ID:              product.ID,
		ProductName:     product.Name,
		Cost:            product.Cost,
		AmountAvailable: product.AmountAvailable,
		SellerID:        product.SellerID,
	}
}

type accountResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Deposit  int64  `json:"deposit"`
}

func toAccountResponse(account domain.Account) accountResponse {
	return accountResponse{
		ID:       account.ID,
		Username: account.Username,
		Role:     string(account.Role),
		Deposit:  account.Balance,
	}
}

type depositResponse struct {
	TotalDeposit int64 `json:"totalDeposit"`
}

type resetResponse struct {
	RefundedAmount int64            `json:"refundedAmount"`
	Change         map[string]int64 `json:"change"`
}

type purchasedProduct struct {
	ProductName string `json:"productName"`
	Quantity    int    `json:"quantity"`
}

type buyResponse struct {
	TotalSpent        int64            `json:"totalSpent"`
	ProductsPurchased purchasedProduct `json:"productsPurchased"`
	RemainingDeposit  int64            `json:"remainingDeposit"`
	Change            map[string]int64 `json:"change"`
}
