package models

import (
	"errors"
	"fmt"
)

// Domain error kinds. Handlers branch on these to pick a status code and a
// user-visible message; anything else surfacing from the persistence layer
// is treated as an internal failure.
var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateUsername  = errors.New("user already exists")
)

// OutOfStockError reports which product blocked a checkout during the
// validation pass.
type OutOfStockError struct {
	Product string
}

func (e *OutOfStockError) Error() string {
	return fmt.Sprintf("'%s' is out of stock.", e.Product)
}
