package http

import (
	"context"

	"github.com/Ahmeddsamy/VendingMachine-Backend/internal/vending/domain"
)

//go:generate mockgen -source=services.go -destination=../../../../gen/mocks/vendinghttp/services.go -package=mocks

type Authenticator interface {
	SignIn(ctx context.Context, username, password string) (string, error)
}

type PasswordChanger interface {
	ChangePassword(ctx context.Context, accountID int64, oldPassword, newPassword string) error
}

type Depositor interface {
	Deposit(ctx context.Context, actorID int64, amount int64) (int64, error)
}

type Resetter interface {
	Reset(ctx context.Context, actorID int64) (domain.Refund, error)
}

type Buyer interface {
	Buy(ctx context.Context, actorID int64, productID int64, quantity int) (domain.Receipt, error)
}

type ProductManager interface {
	Create(ctx context.Context, actorID int64, name string, cost int64, amountAvailable int) (domain.Product, error)
	Update(ctx context.Context, actorID int64, productID int64, patch domain.ProductPatch) (domain.Product, error)
	Delete(ctx context.Context, actorID int64, productID int64) (domain.Product, error)
}

type AccountManager interface {
	UpdateUsername(ctx context.Context, actorID int64, accountID int64, username string) (domain.Account, error)
	Delete(ctx context.Context, actorID int64, accountID int64) error
}

type Pinger interface {
	Ping(ctx context.Context) error
}
