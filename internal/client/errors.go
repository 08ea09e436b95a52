package client

import "errors"

var (
	ErrUnknownOperation = errors.New("unknown operation")
	ErrUserRequired     = errors.New("a user name is required")
	ErrNoSpecs          = errors.New("specs file holds no users")
)
