package catalog

import "errors"

var (
	ErrInvalidCatalog        = errors.New("catalog: invalid data")
	ErrProjectNotFound       = errors.New("catalog: project not found")
	ErrPaymentMethodNotFound = errors.New("catalog: payment method not found")
	ErrLoadCancelled         = errors.New("catalog: load cancelled")
)
