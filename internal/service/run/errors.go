package run

import "errors"

var (
	ErrInvalidDriverID     = errors.New("invalid driver id")
	ErrInvalidRunID        = errors.New("invalid run id")
	ErrInvalidStatusFilter = errors.New("invalid status filter")

	// ErrRunNotFound возвращается и для несуществующего рана, и для чужого:
	// водитель не должен узнавать о ранах других водителей.
	ErrRunNotFound = errors.New("run not found")
)
