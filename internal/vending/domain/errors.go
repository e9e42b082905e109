package domain

import "fmt"

//region RoleViolationError

type RoleViolationError struct {
	Msg string
}

func (e *RoleViolationError) Error() string {
	return e.Msg
}

func (e *RoleViolationError) Is(target error) bool {
	_, ok := target.(*RoleViolationError)
	return ok
}

//endregion

//region PermissionDeniedError

type PermissionDeniedError struct {
	Msg string
}

func (e *PermissionDeniedError) Error() string {
	return e.Msg
}

func (e *PermissionDeniedError) Is(target error) bool {
	_, ok := target.(*PermissionDeniedError)
	return ok
}

//endregion

//region AccountNotFoundError

type AccountNotFoundError struct {
	Msg string
}

func (e *AccountNotFoundError) Error() string {
	return e.Msg
}

func (e *AccountNotFoundError) Is(target error) bool {
	_, ok := target.(*AccountNotFoundError)
	return ok
}

//endregion

//region ProductNotFoundError

type ProductNotFoundError struct {
	Msg string
}

func (e *ProductNotFoundError) Error() string {
	return e.Msg
}

func (e *ProductNotFoundError) Is(target error) bool {
	_, ok := target.(*ProductNotFoundError)
	return ok
}

//endregion

//region InvalidDenominationError

type InvalidDenominationError struct {
	Amount int64
}

func (e *InvalidDenominationError) Error() string {
	return fmt.Sprintf("invalid coin %d, use only 5, 10, 20, 50, 100 coins", e.Amount)
}

func (e *InvalidDenominationError) Is(target error) bool {
	_, ok := target.(*InvalidDenominationError)
	return ok
}

//endregion

//region InsufficientFundsError

type InsufficientFundsError struct {
	Shortfall int64
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient deposit for this purchase, you need to deposit an additional %d cents", e.Shortfall)
}

func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

//endregion

//region OutOfStockError

type OutOfStockError struct {
	Available int
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("only %d pieces of product are left in stock", e.Available)
}

func (e *OutOfStockError) Is(target error) bool {
	_, ok := target.(*OutOfStockError)
	return ok
}

//endregion

//region NothingToRefundError

type NothingToRefundError struct {
	Msg string
}

func (e *NothingToRefundError) Error() string {
	return e.Msg
}

func (e *NothingToRefundError) Is(target error) bool {
	_, ok := target.(*NothingToRefundError)
	return ok
}

//endregion

//region InvalidArgumentsError

type InvalidArgumentsError struct {
	Msg string
}

func (e *InvalidArgumentsError) Error() string {
	return e.Msg
}

func (e *InvalidArgumentsError) Is(target error) bool {
	_, ok := target.(*InvalidArgumentsError)
	return ok
}

//endregion

//region UsernameTakenError

type UsernameTakenError struct {
	Msg string
}

func (e *UsernameTakenError) Error() string {
	return e.Msg
}

func (e *UsernameTakenError) Is(target error) bool {
	_, ok := target.(*UsernameTakenError)
	return ok
}

//endregion

//region AccountHasProductsError

type AccountHasProductsError struct {
	Products int
}

func (e *AccountHasProductsError) Error() string {
	return fmt.Sprintf("account still owns %d products, delete them first", e.Products)
}

func (e *AccountHasProductsError) Is(target error) bool {
	_, ok := target.(*AccountHasProductsError)
	return ok
}

//endregion
