package game

import (
	"errors"
	"fmt"
)

// Failure classes. Every one of them is recoverable: the operation that
// returns it leaves the game unchanged.
var (
	ErrInvalidInput         = errors.New("invalid input")
	ErrInsufficientResource = errors.New("insufficient resource")
	ErrNoCapacity           = errors.New("no empty weapon slot")

	ErrInsufficientFuel  = fmt.Errorf("fuel: %w", ErrInsufficientResource)
	ErrInsufficientMoney = fmt.Errorf("money: %w", ErrInsufficientResource)
)

// Recoverable returns true if err is one of the failure classes above.
func Recoverable(err error) bool {
	return errors.Is(err, ErrInvalidInput) ||
		errors.Is(err, ErrInsufficientResource) ||
		errors.Is(err, ErrNoCapacity)
}
