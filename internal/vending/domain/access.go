package domain

// Actor is the authenticated identity performing a mutation.
type Actor struct {
	ID   int64
	Role Role
}

// CanMutateProduct allows any seller, or the product's owner.
//
// The any-seller part mirrors the behaviour the service has always had: a
// seller may edit or delete products listed by other sellers.
func CanMutateProduct(actor Actor, product Product) bool {
	return actor.Role == RoleSeller || actor.ID == product.SellerID
}

// CanMutateAccount allows an actor to change only its own account.
func CanMutateAccount(actor Actor, accountID int64) bool {
	return actor.ID == accountID
}
