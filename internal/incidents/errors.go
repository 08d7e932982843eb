package incidents

import "errors"

// Domain errors returned by the service and repository layers.
var (
	ErrNotFound      = errors.New("incident not found")
	ErrInvalidStatus = errors.New("invalid incident status")
)
