package driver

import "errors"

var (
	ErrInvalidDriverID = errors.New("invalid driver id")
	ErrDriverNotFound  = errors.New("driver not found")
)
