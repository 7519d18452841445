package stop

import "errors"

var (
	ErrInvalidStopID = errors.New("invalid stop id")

	ErrStopNotFound  = errors.New("stop not found")
	ErrNotAuthorized = errors.New("stop is not assigned to driver")

	ErrInvalidTransition = errors.New("invalid status transition")
	ErrMissingProof      = errors.New("delivered requires a signature or a photo")
	ErrMissingReason     = errors.New("failed requires a failure reason")

	// ErrConflict - гонка на терминальном переходе: побеждает первая запись.
	ErrConflict = errors.New("stop was updated concurrently")
)
