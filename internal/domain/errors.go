package domain

import "errors"

// Domain errors
var (
	ErrNotFound       = errors.New("not found")
	ErrKeyNotFound    = errors.New("key not found")
	ErrDuplicateEmail = errors.New("email already registered")
)
