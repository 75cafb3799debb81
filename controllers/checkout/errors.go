package checkoutControllers

import "errors"

var (
	ErrEmptyCart         = errors.New("cart is empty")
	ErrValidation        = errors.New("missing or invalid delivery fields")
	ErrGateway           = errors.New("payment gateway error")
	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidCallback   = errors.New("callback missing required fields")
	ErrSignatureMismatch = errors.New("payment signature mismatch")
)
