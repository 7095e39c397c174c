package businessinfo

import "errors"

var (
	ErrBusinessInfoNotFound = errors.New("business info not found")
	ErrInvalidInput         = errors.New("invalid input data")
	ErrInternal             = errors.New("service: internal error")
)
