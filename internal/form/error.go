package form

import "errors"

var (
	ErrNoLineItems      = errors.New("order must contain at least one line item")
	ErrSignatureMissing = errors.New("digital signature is required")
)
