package purchase

import "errors"

var (
	ErrVendorNotFound = errors.New("vendor not found")
	ErrItemNotFound   = errors.New("item not found")
	ErrValidation     = errors.New("invalid purchase input")
)
