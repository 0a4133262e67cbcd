package order

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrInvalidTransition = errors.New("invalid state transition")
	ErrValidation        = errors.New("invalid order input")
)
