package location

import "errors"

var (
	ErrInvalidDriverID    = errors.New("invalid driver id")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrInvalidTimestamp   = errors.New("invalid timestamp")
	ErrDriverNotFound     = errors.New("driver not found")
)
